// Package l10ncheck validates translated webextension-style JSON message
// files against a reference locale: placeholder tokens referenced in
// translated text must match the placeholders declared in the reference
// message's metadata, and translated text must not contain stray paragraph
// marks.
package l10ncheck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

//go:generate mockgen -source=$GOFILE -package mock_l10ncheck -destination=test/mock/$GOFILE

// Pilcrow is the paragraph mark character, disallowed in translated text.
const Pilcrow = "¶"

var placeholderPattern = regexp.MustCompile(`\$([a-zA-Z0-9_@]+)\$`)

// Loader discovers locales and builds their catalogs.
type Loader interface {
	// ListLocales returns the locale codes to validate: every immediate
	// subdirectory of basePath except hidden ones and the reference
	// locale, sorted lexicographically.
	ListLocales(basePath string, refLocale string) ([]string, error)
	// LoadCatalog parses every *.json file directly inside
	// <basePath>/<locale> into a catalog.
	LoadCatalog(basePath string, locale string) (Catalog, error)
}

// DirLoader is the filesystem Loader.
type DirLoader struct{}

func (DirLoader) ListLocales(basePath string, refLocale string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales dir: %w", err)
	}
	locales := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == refLocale {
			continue
		}
		locales = append(locales, name)
	}
	sort.Strings(locales)
	return locales, nil
}

func (DirLoader) LoadCatalog(basePath string, locale string) (Catalog, error) {
	localeDir := filepath.Join(basePath, locale)
	entries, err := os.ReadDir(localeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale dir: %w", err)
	}
	catalog := Catalog{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		if err := readMessageFile(filepath.Join(localeDir, name), name, catalog); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// readMessageFile parses one messages JSON file into catalog, keyed
// "<fileID>:<message id>". Malformed JSON or a missing "message" field is
// fatal for the whole run.
func readMessageFile(path string, fileID string, catalog Catalog) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read message file: %w", err)
	}
	raw := map[string]rawMessage{}
	if err := json.Unmarshal(content, &raw); err != nil {
		return newParseError(fileID, err)
	}
	for id, entry := range raw {
		if entry.Message == nil {
			return newSchemaError(fileID, id, `missing required field "message"`)
		}
		var names []string
		if entry.Placeholders != nil {
			names = make([]string, 0, len(entry.Placeholders))
			for name := range entry.Placeholders {
				names = append(names, name)
			}
			sort.Strings(names)
		}
		catalog[fileID+":"+id] = Message{Text: *entry.Message, Placeholders: names}
	}
	return nil
}

// LoadExceptions reads and decodes an exceptions file.
func LoadExceptions(path string) (Exceptions, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Exceptions{}, fmt.Errorf("failed to read exceptions file: %w", err)
	}
	var exceptions Exceptions
	if err := json.Unmarshal(content, &exceptions); err != nil {
		return Exceptions{}, newParseError(filepath.Base(path), err)
	}
	return exceptions, nil
}

// ExtractPlaceholders returns the $name$ tokens found in text, in match
// order, duplicates included. Matching is greedy and non-overlapping.
func ExtractPlaceholders(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

// PlaceholderOptions controls how extracted tokens are compared against
// declared placeholder names.
type PlaceholderOptions struct {
	// FoldCase lowercases both sides and deduplicates extracted tokens
	// before comparing. The default is an exact multiset comparison with
	// no normalization.
	FoldCase bool
}

// CheckPlaceholders compares, for every reference message that declares at
// least one placeholder, the declared names against the tokens extracted
// from the locale's translated text. Untranslated messages and keys in
// exempt are skipped. The returned issues are in sorted reference key
// order.
func CheckPlaceholders(ref Catalog, locale string, catalog Catalog, exempt map[string]json.RawMessage, opts PlaceholderOptions) []Issue {
	var issues []Issue
	for _, key := range sortedKeys(ref) {
		declared := ref[key].Placeholders
		if len(declared) == 0 {
			continue
		}
		translated, found := catalog[key]
		if !found {
			// Translation completeness is out of scope.
			continue
		}
		if _, exemptKey := exempt[key]; exemptKey {
			continue
		}
		want := append([]string(nil), declared...)
		got := ExtractPlaceholders(translated.Text)
		if opts.FoldCase {
			want = foldNames(want)
			got = dedupeNames(foldNames(got))
		}
		sort.Strings(want)
		sort.Strings(got)
		if !equalNames(want, got) {
			issues = append(issues, Issue{
				Locale: locale,
				Kind:   IssuePlaceholderMismatch,
				Key:    key,
				Text:   translated.Text,
				Ref:    ref[key].Text,
			})
		}
	}
	return issues
}

// TextOptions controls the per-message text checks.
type TextOptions struct {
	// Ellipsis additionally flags three-dot ellipses.
	Ellipsis bool
	// EllipsisExempt holds message keys excluded from the ellipsis check.
	EllipsisExempt map[string]struct{}
}

// CheckText flags forbidden characters in every message of the catalog,
// regardless of reference presence or placeholder exemptions. The returned
// issues are in sorted key order.
func CheckText(locale string, catalog Catalog, opts TextOptions) []Issue {
	var issues []Issue
	for _, key := range sortedKeys(catalog) {
		text := catalog[key].Text
		if strings.Contains(text, Pilcrow) {
			issues = append(issues, Issue{Locale: locale, Kind: IssuePilcrow, Key: key, Text: text})
		}
		if opts.Ellipsis && strings.Contains(text, "...") {
			if _, exemptKey := opts.EllipsisExempt[key]; !exemptKey {
				issues = append(issues, Issue{Locale: locale, Kind: IssueEllipsis, Key: key, Text: text})
			}
		}
	}
	return issues
}

// Validator runs the full validation pass: reference catalog, locale
// discovery, then placeholder and text checks per locale.
type Validator struct {
	Loader     Loader // defaults to DirLoader
	BasePath   string
	RefLocale  string
	Exceptions Exceptions
	// NormalizeTags canonicalizes locale directory names to BCP 47 tags
	// (e.g. zh_TW -> zh-TW) for exception lookup and reporting.
	NormalizeTags bool
	Placeholder   PlaceholderOptions
	Text          TextOptions
}

// Run returns all issues, grouped per locale in sorted locale order. It
// aborts on the first load error.
func (v *Validator) Run() ([]Issue, error) {
	loader := v.Loader
	if loader == nil {
		loader = DirLoader{}
	}
	ref, err := loader.LoadCatalog(v.BasePath, v.RefLocale)
	if err != nil {
		return nil, err
	}
	locales, err := loader.ListLocales(v.BasePath, v.RefLocale)
	if err != nil {
		return nil, err
	}
	var issues []Issue
	for _, locale := range locales {
		catalog, err := loader.LoadCatalog(v.BasePath, locale)
		if err != nil {
			return nil, err
		}
		name := locale
		if v.NormalizeTags {
			name = NormalizeLocaleTag(locale)
		}
		issues = append(issues, CheckPlaceholders(ref, name, catalog, v.Exceptions.PlaceholderExempt(name), v.Placeholder)...)
		text := v.Text
		if text.Ellipsis {
			if v.Exceptions.EllipsisExcluded(name) {
				text.Ellipsis = false
			} else {
				text.EllipsisExempt = v.Exceptions.EllipsisExempt(name)
			}
		}
		issues = append(issues, CheckText(name, catalog, text)...)
	}
	return issues, nil
}

func sortedKeys(catalog Catalog) []string {
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func foldNames(names []string) []string {
	folded := make([]string, 0, len(names))
	for _, name := range names {
		folded = append(folded, strings.ToLower(name))
	}
	return folded
}

func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, found := seen[name]; found {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}

func equalNames(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
