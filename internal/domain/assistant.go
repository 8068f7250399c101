package domain

// Sentinel intents produced when the upstream model call fails or returns
// unparseable content, rather than a genuine classification.
const (
	IntentError   = "error"
	IntentUnknown = "unknown"
)

// FallbackResponse replaces the model's response text whenever a sentinel
// intent reaches the command handler. This collapsing happens exactly once,
// at the presentation boundary.
const FallbackResponse = "I can't understand"

// PayloadTypeLink marks a payload whose value should be opened as a URL by
// the client in addition to being spoken.
const PayloadTypeLink = "link"

// ResultKind distinguishes failure classes internally. Users only ever see
// FallbackResponse; the kind survives for logs, metrics, and queue events.
type ResultKind string

const (
	KindOK         ResultKind = "ok"
	KindValidation ResultKind = "validation"
	KindTransport  ResultKind = "transport"
	KindFormat     ResultKind = "format"
)

// Payload carries structured data alongside the spoken response, e.g. a link
// to open.
type Payload struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Interpretation is the structured result of running one voice command
// through the language model. Constructed once per request and never
// mutated after it leaves the command handler.
type Interpretation struct {
	Assistant string   `json:"assistant"`
	User      string   `json:"user"`
	Intent    string   `json:"intent"`
	Response  string   `json:"response"`
	Data      *Payload `json:"data"`
}

// IsSentinel reports whether the interpretation carries a failure intent.
func (i *Interpretation) IsSentinel() bool {
	return i.Intent == IntentError || i.Intent == IntentUnknown
}

// AssistantProfile identifies the persona answering a command. Immutable for
// the duration of one interpretation.
type AssistantProfile struct {
	AssistantName string `json:"assistant_name"`
	Username      string `json:"username"`
}

// CommandRequest is the inbound body of an ask-to-assistant call.
type CommandRequest struct {
	Command string `json:"command"`
}
