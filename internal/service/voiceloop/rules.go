// Package voiceloop holds the decision logic of the client voice pipeline as
// pure functions: wake-word gating, local command shortcuts, voice selection
// and response presentation. Keeping it free of any speech API lets thin
// clients delegate the decisions over HTTP and lets tests cover them
// directly.
package voiceloop

import (
	"strings"
)

type Action int

const (
	// ActionIgnore drops the transcript silently: the wake name was absent.
	ActionIgnore Action = iota
	// ActionLogout ends the session locally without a server round-trip.
	ActionLogout
	// ActionCustomize opens the persona customization flow locally.
	ActionCustomize
	// ActionForward sends the transcript to the command handler.
	ActionForward
)

func (a Action) String() string {
	switch a {
	case ActionIgnore:
		return "ignore"
	case ActionLogout:
		return "logout"
	case ActionCustomize:
		return "customize"
	case ActionForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Decision is the outcome of classifying one transcript. Say carries the
// canned acknowledgement spoken locally for shortcut actions.
type Decision struct {
	Action Action `json:"action"`
	Say    string `json:"say,omitempty"`
}

type shortcutRule struct {
	substrings []string
	action     Action
	say        string
}

// Ordered rule table evaluated after the wake gate and before falling
// through to the remote interpreter.
var shortcuts = []shortcutRule{
	{substrings: []string{"logout"}, action: ActionLogout, say: "Logging you out."},
	{substrings: []string{"customize", "customise"}, action: ActionCustomize, say: "Opening customization page."},
}

// Classify gates a transcript on the assistant's wake name and intercepts
// local shortcuts. The wake gate is a case-insensitive substring test with
// no word-boundary check, so an assistant named "Al" triggers on "Alright";
// that looseness is kept for compatibility with existing personas.
func Classify(transcript, assistantName string) Decision {
	lower := strings.ToLower(transcript)

	if assistantName == "" || !strings.Contains(lower, strings.ToLower(assistantName)) {
		return Decision{Action: ActionIgnore}
	}

	for _, rule := range shortcuts {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return Decision{Action: rule.action, Say: rule.say}
			}
		}
	}

	return Decision{Action: ActionForward}
}
