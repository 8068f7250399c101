package gemini

import (
	"strings"
	"testing"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	first := BuildPrompt("What time is it in Tokyo?", "Nova", "Ana")
	second := BuildPrompt("What time is it in Tokyo?", "Nova", "Ana")

	if first != second {
		t.Fatal("expected identical prompts for identical inputs")
	}
}

func TestBuildPrompt_ContainsQuotedCommand(t *testing.T) {
	prompt := BuildPrompt("open Spotify", "Nova", "Ana")

	if !strings.Contains(prompt, `User Command: "open Spotify"`) {
		t.Errorf("prompt does not contain the quoted command:\n%s", prompt)
	}
}

func TestBuildPrompt_ExamplesInOrder(t *testing.T) {
	prompt := BuildPrompt("hello", "Nova", "Ana")

	intents := []string{
		"weather",
		"youtube_search",
		"google_search",
		"time",
		"identity",
		"open_instagram",
		"open_youtube_channel",
		"open_generic_link",
		"greeting",
	}

	last := -1
	for _, intent := range intents {
		idx := strings.Index(prompt, "Intent: "+intent)
		if idx < 0 {
			t.Fatalf("prompt is missing example intent %q", intent)
		}
		if idx <= last {
			t.Errorf("example intent %q appears out of order", intent)
		}
		last = idx
	}
}

func TestBuildPrompt_NamesInterpolated(t *testing.T) {
	prompt := BuildPrompt("who are you", "Jarvis", "Tony")

	if !strings.Contains(prompt, "virtual assistant named Jarvis") {
		t.Error("assistant name not interpolated into the instruction")
	}
	if !strings.Contains(prompt, "users like Tony") {
		t.Error("username not interpolated into the instruction")
	}
	if !strings.Contains(prompt, "I am Jarvis, a smart assistant") {
		t.Error("assistant name not interpolated into the identity example")
	}
	if !strings.Contains(prompt, "Hello Tony, I'm doing well") {
		t.Error("username not interpolated into the greeting example")
	}
}

func TestBuildPrompt_OutputDirective(t *testing.T) {
	prompt := BuildPrompt("hello", "Nova", "Ana")

	if !strings.Contains(prompt, "Only respond with the JSON object.") {
		t.Error("prompt is missing the JSON-only output directive")
	}
	for _, field := range []string{`"assistant"`, `"user"`, `"intent"`, `"response"`, `"data"`} {
		if !strings.Contains(prompt, field) {
			t.Errorf("output schema is missing field %s", field)
		}
	}
}
