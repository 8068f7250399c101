package voiceloop

import (
	"testing"

	"github.com/seu-repo/vocalis/internal/domain"
)

func TestChooseVoice_ExactMatch(t *testing.T) {
	voices := []Voice{
		{Name: "Maria", Lang: "pt-BR"},
		{Name: "Samantha", Lang: "en-US"},
		{Name: "Daniel", Lang: "en-GB"},
	}

	v, ok := ChooseVoice(voices, "en-US")
	if !ok || v.Name != "Samantha" {
		t.Errorf("expected exact en-US match Samantha, got %+v ok=%v", v, ok)
	}
}

func TestChooseVoice_PrefixFallback(t *testing.T) {
	voices := []Voice{
		{Name: "Maria", Lang: "pt-BR"},
		{Name: "Daniel", Lang: "en-GB"},
	}

	v, ok := ChooseVoice(voices, "en-US")
	if !ok || v.Name != "Daniel" {
		t.Errorf("expected primary-subtag fallback to en-GB, got %+v ok=%v", v, ok)
	}
}

func TestChooseVoice_AnyFallback(t *testing.T) {
	voices := []Voice{{Name: "Maria", Lang: "pt-BR"}}

	v, ok := ChooseVoice(voices, "ja-JP")
	if !ok || v.Name != "Maria" {
		t.Errorf("expected any-voice fallback, got %+v ok=%v", v, ok)
	}
}

func TestChooseVoice_NoVoices(t *testing.T) {
	if _, ok := ChooseVoice(nil, "en-US"); ok {
		t.Error("expected ok=false with no voices")
	}
}

func TestChooseVoice_DefaultLanguage(t *testing.T) {
	voices := []Voice{
		{Name: "Maria", Lang: "pt-BR"},
		{Name: "Samantha", Lang: "en-US"},
	}

	v, _ := ChooseVoice(voices, "")
	if v.Name != "Samantha" {
		t.Errorf("expected empty language to default to en-US, got %+v", v)
	}
}

func TestSpokenText(t *testing.T) {
	interp := &domain.Interpretation{Response: "The weather is sunny."}
	if got := SpokenText(interp); got != "The weather is sunny." {
		t.Errorf("unexpected spoken text %q", got)
	}

	if got := SpokenText(&domain.Interpretation{}); got != RetryPrompt {
		t.Errorf("empty response should yield the retry prompt, got %q", got)
	}
	if got := SpokenText(nil); got != RetryPrompt {
		t.Errorf("nil result should yield the retry prompt, got %q", got)
	}
}

func TestLinkTarget(t *testing.T) {
	interp := &domain.Interpretation{
		Data: &domain.Payload{Type: "link", Value: "https://www.spotify.com/"},
	}
	url, ok := LinkTarget(interp)
	if !ok || url != "https://www.spotify.com/" {
		t.Errorf("expected link target, got %q ok=%v", url, ok)
	}

	if _, ok := LinkTarget(&domain.Interpretation{Data: &domain.Payload{Type: "text", Value: "x"}}); ok {
		t.Error("non-link payload must not open")
	}
	if _, ok := LinkTarget(&domain.Interpretation{}); ok {
		t.Error("nil payload must not open")
	}
}
