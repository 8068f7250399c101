package voiceloop

import (
	"strings"

	"github.com/seu-repo/vocalis/internal/domain"
)

// DefaultLanguage is the synthesis language used when none is configured.
const DefaultLanguage = "en-US"

// RetryPrompt is spoken when a result arrives without any response text.
const RetryPrompt = "I encountered an issue. Please try again."

// Voice describes one available speech-synthesis voice.
type Voice struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
}

// ChooseVoice picks a synthesis voice for the given language tag: exact tag
// match first, then any voice sharing the primary subtag, then the first
// voice available. Returns false only when no voices exist at all.
func ChooseVoice(voices []Voice, lang string) (Voice, bool) {
	if lang == "" {
		lang = DefaultLanguage
	}

	for _, v := range voices {
		if v.Lang == lang {
			return v, true
		}
	}

	primary := strings.SplitN(lang, "-", 2)[0]
	for _, v := range voices {
		if strings.Contains(v.Lang, primary) {
			return v, true
		}
	}

	if len(voices) > 0 {
		return voices[0], true
	}
	return Voice{}, false
}

// SpokenText returns what the client should speak for a result: the response
// text, or the generic retry prompt when the result carries none (treated as
// a soft failure, never silence).
func SpokenText(interp *domain.Interpretation) string {
	if interp == nil || interp.Response == "" {
		return RetryPrompt
	}
	return interp.Response
}

// LinkTarget reports the URL the client should open alongside speaking, if
// the result carries a link payload.
func LinkTarget(interp *domain.Interpretation) (string, bool) {
	if interp == nil || interp.Data == nil {
		return "", false
	}
	if interp.Data.Type != domain.PayloadTypeLink || interp.Data.Value == "" {
		return "", false
	}
	return interp.Data.Value, true
}
