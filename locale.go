package l10ncheck

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLocaleTag canonicalizes a locale directory name to a BCP 47 tag,
// e.g. "zh_TW" -> "zh-TW". Tags that do not parse fall back to replacing
// underscores with hyphens.
func NormalizeLocaleTag(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return strings.ReplaceAll(locale, "_", "-")
	}
	return tag.String()
}
