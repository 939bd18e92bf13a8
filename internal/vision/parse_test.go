package vision

import (
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "no fences",
			reply: `{"found": true}`,
			want:  `{"found": true}`,
		},
		{
			name:  "plain fences",
			reply: "```\n{\"found\": true}\n```",
			want:  `{"found": true}`,
		},
		{
			name:  "fences with language tag",
			reply: "```json\n{\"found\": true}\n```",
			want:  `{"found": true}`,
		},
		{
			name:  "surrounding whitespace",
			reply: "\n  ```json\n{\"found\": true}\n```\n",
			want:  `{"found": true}`,
		},
		{
			name:  "trailing prose after closing fence",
			reply: "```json\n{\"found\": true}\n```\nHope that helps!",
			want:  `{"found": true}`,
		},
		{
			name:  "multiline content",
			reply: "```\n{\n  \"found\": true\n}\n```",
			want:  "{\n  \"found\": true\n}",
		},
		{
			name:  "unterminated fence keeps inner content",
			reply: "```json\n{\"found\": true}",
			want:  `{"found": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.reply)
			if got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.reply, got, tt.want)
			}
			// Stripping a stripped reply must not change it further.
			if again := StripFences(got); again != got {
				t.Errorf("StripFences not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseFindResult_InjectsElement(t *testing.T) {
	reply := `{"found": true, "x": 120, "y": 45, "confidence": "high", "description": "a blue button"}`

	result, err := parseFindResult(reply, "the Save button")
	if err != nil {
		t.Fatalf("parseFindResult failed: %v", err)
	}
	if result.Element != "the Save button" {
		t.Errorf("element = %q, want injected query text", result.Element)
	}
	if !result.Found {
		t.Error("found = false, want true")
	}
	if result.X == nil || *result.X != 120 {
		t.Errorf("x = %v, want 120", result.X)
	}
	if result.Y == nil || *result.Y != 45 {
		t.Errorf("y = %v, want 45", result.Y)
	}
	if result.Confidence != "high" {
		t.Errorf("confidence = %q, want %q", result.Confidence, "high")
	}
}

func TestParseFindResult_KeepsModelElement(t *testing.T) {
	reply := `{"found": true, "x": 1, "y": 2, "element": "save icon"}`

	result, err := parseFindResult(reply, "the Save button")
	if err != nil {
		t.Fatalf("parseFindResult failed: %v", err)
	}
	if result.Element != "save icon" {
		t.Errorf("element = %q, want model-supplied %q", result.Element, "save icon")
	}
}

func TestParseFindResult_FencedReply(t *testing.T) {
	reply := "```json\n{\"found\": false}\n```"

	result, err := parseFindResult(reply, "missing widget")
	if err != nil {
		t.Fatalf("parseFindResult failed: %v", err)
	}
	if result.Found {
		t.Error("found = true, want false")
	}
	if result.Element != "missing widget" {
		t.Errorf("element = %q, want injected query text", result.Element)
	}
}

func TestParseFindResult_OmittedCoordinatesStayNil(t *testing.T) {
	reply := `{"found": false, "description": "not visible"}`

	result, err := parseFindResult(reply, "x")
	if err != nil {
		t.Fatalf("parseFindResult failed: %v", err)
	}
	if result.X != nil || result.Y != nil {
		t.Errorf("coordinates = (%v, %v), want nil for omitted fields", result.X, result.Y)
	}
}

func TestParseFindResult_MalformedReply(t *testing.T) {
	replies := []string{
		"I could not find the element, sorry.",
		"```json\nnot json at all\n```",
		`{"found": true`,
		"",
	}
	for _, reply := range replies {
		_, err := parseFindResult(reply, "x")
		if err == nil {
			t.Errorf("parseFindResult(%q) succeeded, want MalformedResponseError", reply)
			continue
		}
		var malformed *MalformedResponseError
		if !errors.As(err, &malformed) {
			t.Errorf("parseFindResult(%q) error = %T, want *MalformedResponseError", reply, err)
		}
	}
}
