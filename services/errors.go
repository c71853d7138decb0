package services

// ErrorKind classifies a service failure so handlers can map it to an
// HTTP status without inspecting message text.
type ErrorKind int

const (
	KindInvalidRequest ErrorKind = iota
	KindNotFound
	KindForbidden
	KindInsufficientFunds
	KindUpstreamFailure
)

// Error carries a user-facing message plus structured fields that the
// handler merges into the JSON error envelope (offending dish ids,
// required vs. current balance, upstream details).
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) withField(key string, value any) *Error {
	if e.Fields == nil {
		e.Fields = map[string]any{}
	}
	e.Fields[key] = value
	return e
}
