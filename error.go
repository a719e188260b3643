package l10ncheck

import "fmt"

// ParseError reports a file that is not valid JSON. The run aborts on the
// first one; there is no per-file recovery.
type ParseError struct {
	File string
	err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.File, e.err)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func newParseError(file string, err error) error {
	return &ParseError{File: file, err: err}
}

// SchemaError reports a message entry that does not match the expected
// shape, e.g. a missing "message" field.
type SchemaError struct {
	File      string
	MessageID string
	Reason    string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid message %q in %s: %s", e.MessageID, e.File, e.Reason)
}

func newSchemaError(file string, messageID string, reason string) error {
	return &SchemaError{File: file, MessageID: messageID, Reason: reason}
}
