package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gedigi/peekaboox/internal/ocr"
	"github.com/gedigi/peekaboox/internal/vision"
)

// printJSON writes v as a single JSON line. Used for error payloads and the
// trailing machine-readable line in find text output.
func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printPrettyJSON writes v as indented JSON for the --json output mode.
func printPrettyJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// coordString renders a coordinate, or "?" when the model omitted it.
func coordString(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}

// renderFind writes a find result. In text mode the human-readable lines are
// always followed by one raw JSON line so downstream tooling can scrape it.
func renderFind(w io.Writer, result *vision.FindResult, asJSON bool) error {
	if asJSON {
		return printPrettyJSON(w, result)
	}

	if result.Found {
		desc := result.Description
		if desc == "" {
			desc = result.Element
		}
		confidence := result.Confidence
		if confidence == "" {
			confidence = "unknown"
		}
		fmt.Fprintf(w, "Found: %s\n", desc)
		fmt.Fprintf(w, "Coordinates: (%s, %s)\n", coordString(result.X), coordString(result.Y))
		fmt.Fprintf(w, "Confidence: %s\n", confidence)
	} else {
		fmt.Fprintf(w, "Not found: %s\n", result.Element)
	}
	return printJSON(w, result)
}

// describePayload is the --json wrapper around a describe result.
type describePayload struct {
	Success     bool    `json:"success"`
	Description string  `json:"description"`
	Error       *string `json:"error"`
}

// renderDescribe writes a describe result: raw text, or the JSON wrapper in
// --json mode.
func renderDescribe(w io.Writer, description string, asJSON bool) error {
	if asJSON {
		return printPrettyJSON(w, describePayload{Success: true, Description: description})
	}
	_, err := fmt.Fprintln(w, description)
	return err
}

// renderOCR writes a local OCR result: the extracted text, or the full
// word-region object in --json mode.
func renderOCR(w io.Writer, result *ocr.Result, asJSON bool) error {
	if asJSON {
		return printPrettyJSON(w, result)
	}
	_, err := fmt.Fprintln(w, result.FullText)
	return err
}
