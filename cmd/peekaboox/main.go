package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gedigi/peekaboox/internal/imaging"
	"github.com/gedigi/peekaboox/internal/ocr"
	"github.com/gedigi/peekaboox/internal/vision"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	flagImage    string
	flagFind     string
	flagDescribe bool
	flagOCR      bool
	flagJSON     bool
	flagMark     string
	flagModel    string
	flagTimeout  time.Duration
)

// errReported signals that the failure payload was already printed; main only
// needs to exit non-zero.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "peekaboox",
	Short: "Interpret screenshots and locate UI elements with a vision model",
	Long: `peekaboox sends a screenshot to a multimodal vision model and relays back
either a located pixel coordinate or a textual description.

Examples:
  $ peekaboox --image /tmp/shot.png --find "the Save button"
  $ peekaboox --image /tmp/shot.png --describe
  $ peekaboox --image /tmp/shot.png --find "Firefox address bar" --json
  $ peekaboox --image /tmp/shot.png --ocr

The API key is read from ANTHROPIC_API_KEY (a .env file is honored).
All errors are reported as a JSON object on stdout with exit code 1;
"not found" is a successful answer and exits 0.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagImage, "image", "", "path to the screenshot image file")
	rootCmd.Flags().StringVar(&flagFind, "find", "", "description of the UI element to find")
	rootCmd.Flags().BoolVar(&flagDescribe, "describe", false, "describe the screen contents")
	rootCmd.Flags().BoolVar(&flagOCR, "ocr", false, "extract visible text locally (no network)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "force JSON output")
	rootCmd.Flags().StringVar(&flagMark, "mark", "", "write a copy of the image with a crosshair at the found coordinate")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "model identifier (default $PEEKABOOX_MODEL or "+vision.DefaultModel+")")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", vision.DefaultTimeout, "timeout for the remote call")
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// fail prints a one-line JSON error payload on stdout and returns errReported.
func fail(payload map[string]any) error {
	if err := printJSON(os.Stdout, payload); err != nil {
		return err
	}
	return errReported
}

func run(cmd *cobra.Command, args []string) error {
	// A .env file is honored but optional.
	_ = godotenv.Load()

	// Stdout carries results only; diagnostics go to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)
	debug := os.Getenv("PEEKABOOX_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("peekaboox %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if flagImage == "" {
		return fail(map[string]any{"success": false, "error": "Specify --image <path>"})
	}
	if _, err := os.Stat(flagImage); err != nil {
		return fail(map[string]any{"success": false, "error": fmt.Sprintf("Image file not found: %s", flagImage)})
	}

	modes := 0
	if flagFind != "" {
		modes++
	}
	if flagDescribe {
		modes++
	}
	if flagOCR {
		modes++
	}
	if modes != 1 {
		return fail(map[string]any{"success": false, "error": "Specify exactly one of --find 'element', --describe, or --ocr"})
	}

	if flagOCR {
		return runOCR()
	}

	model := flagModel
	if model == "" {
		model = os.Getenv("PEEKABOOX_MODEL")
	}
	client, err := vision.NewClient(os.Getenv("ANTHROPIC_API_KEY"),
		vision.WithModel(model), vision.WithTimeout(flagTimeout))
	if err != nil {
		return fail(map[string]any{"success": false, "error": err.Error()})
	}

	asset, err := imaging.Load(flagImage)
	if err != nil {
		return fail(map[string]any{"found": false, "error": fmt.Sprintf("Unexpected error: %s", err)})
	}
	if debug {
		log.Printf("loaded %s: %dx%d %s, %d bytes", asset.Path, asset.Width, asset.Height, asset.MediaType, len(asset.Data))
	}

	// No cancellation beyond the client timeout; the process either finishes
	// the one round trip or is killed externally.
	ctx := context.Background()

	if flagFind != "" {
		return runFind(ctx, client, asset)
	}
	return runDescribe(ctx, client, asset)
}

func runFind(ctx context.Context, client *vision.Client, asset *imaging.ImageAsset) error {
	result, err := client.Locate(ctx, asset, flagFind)
	if err != nil {
		return fail(map[string]any{"found": false, "error": callErrorMessage(err)})
	}

	if flagMark != "" && result.Found && result.X != nil && result.Y != nil {
		if err := writeMarker(asset, *result.X, *result.Y); err != nil {
			// The located coordinate is still a completed answer.
			log.Printf("marker not written: %v", err)
		}
	}

	return renderFind(os.Stdout, result, flagJSON)
}

func runDescribe(ctx context.Context, client *vision.Client, asset *imaging.ImageAsset) error {
	description, err := client.Describe(ctx, asset)
	if err != nil {
		return fail(map[string]any{"found": false, "error": callErrorMessage(err)})
	}
	return renderDescribe(os.Stdout, description, flagJSON)
}

func runOCR() error {
	// Detect a binary built without the Tesseract bindings before doing any
	// image work, the same way a missing client library is reported up front.
	if !ocr.Available() {
		return fail(map[string]any{"success": false, "error": ocr.ErrUnavailable.Error()})
	}
	result, err := ocr.ExtractText(flagImage, "eng")
	if err != nil {
		return fail(map[string]any{"success": false, "error": err.Error()})
	}
	return renderOCR(os.Stdout, result, flagJSON)
}

// callErrorMessage flattens a remote-call failure into the single message
// string the error payload carries.
func callErrorMessage(err error) string {
	var authErr *vision.AuthError
	var transportErr *vision.TransportError
	var malformedErr *vision.MalformedResponseError
	switch {
	case errors.As(err, &authErr), errors.As(err, &transportErr), errors.As(err, &malformedErr):
		return err.Error()
	default:
		return fmt.Sprintf("Unexpected error: %s", err)
	}
}

// writeMarker re-decodes the original screenshot and writes a crosshair copy.
func writeMarker(asset *imaging.ImageAsset, x, y int) error {
	img, err := asset.Decode()
	if err != nil {
		return err
	}
	return imaging.Mark(img, x, y, flagMark)
}
