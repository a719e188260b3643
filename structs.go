package l10ncheck

import "encoding/json"

// Message is one translatable entry: its display text and the placeholder
// names declared in its metadata. Declared placeholders come from the
// "placeholders" section of the JSON file only; they are never inferred from
// the text. Placeholders is nil when the section is absent and an empty
// slice when the section is present but empty.
type Message struct {
	Text         string
	Placeholders []string
}

// Catalog maps "<file name>:<message id>" to the message parsed from a
// locale directory. When the same id appears in several files, the file
// read last wins.
type Catalog map[string]Message

// rawMessage is the wire shape of one entry in a messages JSON file.
type rawMessage struct {
	Message      *string                    `json:"message"`
	Placeholders map[string]json.RawMessage `json:"placeholders"`
}

type IssueKind int

const (
	IssuePlaceholderMismatch IssueKind = iota
	IssuePilcrow
	IssueEllipsis
)

// Issue is one finding for a (locale, message key) pair.
type Issue struct {
	Locale string
	Kind   IssueKind
	Key    string
	Text   string // translated text the finding refers to
	Ref    string // reference text, set for placeholder mismatches
}

// Exceptions is the decoded exceptions file. Under "placeholders" only key
// presence matters; values are ignored.
type Exceptions struct {
	Placeholders map[string]map[string]json.RawMessage `json:"placeholders"`
	Ellipsis     EllipsisExceptions                    `json:"ellipsis"`
}

// EllipsisExceptions exempts whole locales or single message keys from the
// three-dot ellipsis check.
type EllipsisExceptions struct {
	ExcludedLocales []string            `json:"excluded_locales"`
	Locales         map[string][]string `json:"locales"`
}

// PlaceholderExempt returns the message keys exempt from the placeholder
// check for the given locale. Pilcrow findings are never suppressed.
func (e Exceptions) PlaceholderExempt(locale string) map[string]json.RawMessage {
	return e.Placeholders[locale]
}

// EllipsisExcluded reports whether the whole locale is exempt from the
// ellipsis check.
func (e Exceptions) EllipsisExcluded(locale string) bool {
	for _, excluded := range e.Ellipsis.ExcludedLocales {
		if excluded == locale {
			return true
		}
	}
	return false
}

// EllipsisExempt returns the message keys exempt from the ellipsis check
// for the given locale.
func (e Exceptions) EllipsisExempt(locale string) map[string]struct{} {
	keys := e.Ellipsis.Locales[locale]
	if len(keys) == 0 {
		return nil
	}
	exempt := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		exempt[key] = struct{}{}
	}
	return exempt
}
