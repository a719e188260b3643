package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReport_writesDestWithNormalizedLocales(t *testing.T) {
	dir := writeLocaleTree(t, map[string]string{
		"en/greeting.json":    `{"hello": {"message": "Hello, $name$!", "placeholders": {"name": {}}}}`,
		"fr/greeting.json":    `{"hello": {"message": "Bonjour, $nom$!"}}`,
		"zh_TW/greeting.json": `{"hello": {"message": "你好, $name$!¶"}}`,
	})
	dest := filepath.Join(t.TempDir(), "report.txt")
	err := runReport(&reportConfig{
		localesPath: dir,
		refLocale:   "en",
		destFile:    dest,
		ellipsis:    true,
	})
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("runReport() = %v, want errIssuesFound", err)
	}
	out, readErr := os.ReadFile(dest)
	if readErr != nil {
		t.Fatal(readErr)
	}
	content := string(out)
	for _, want := range []string{
		"Locale: fr (1)",
		"Locale: zh-TW (1)",
		"Placeholder mismatch in greeting.json:hello",
		"Reference: Hello, $name$!",
		"'¶' in greeting.json:hello",
		"Total errors: 2",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report should contain %q; got:\n%s", want, content)
		}
	}
}

func TestRunReport_foldCaseAcceptsCaseVariants(t *testing.T) {
	dir := writeLocaleTree(t, map[string]string{
		"en/app.json": `{"hello": {"message": "Hello, $name$!", "placeholders": {"Name": {}}}}`,
		"fr/app.json": `{"hello": {"message": "Bonjour, $NAME$ et $name$!"}}`,
	})
	if err := runReport(&reportConfig{localesPath: dir, refLocale: "en"}); err != nil {
		t.Errorf("case variants should pass in report mode, got %v", err)
	}
}

func TestRunReport_ellipsisExceptions(t *testing.T) {
	dir := writeLocaleTree(t, map[string]string{
		"en/app.json": `{"wait": {"message": "Wait"}}`,
		"de/app.json": `{"wait": {"message": "Warten..."}}`,
		"ja/app.json": `{"wait": {"message": "待つ..."}}`,
	})
	exceptions := filepath.Join(t.TempDir(), "exceptions.json")
	if err := os.WriteFile(exceptions, []byte(`{"ellipsis": {"excluded_locales": ["ja"]}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(t.TempDir(), "report.txt")
	err := runReport(&reportConfig{
		localesPath:    dir,
		refLocale:      "en",
		destFile:       dest,
		exceptionsPath: exceptions,
		ellipsis:       true,
	})
	if !errors.Is(err, errIssuesFound) {
		t.Fatalf("runReport() = %v, want errIssuesFound", err)
	}
	out, readErr := os.ReadFile(dest)
	if readErr != nil {
		t.Fatal(readErr)
	}
	content := string(out)
	if !strings.Contains(content, "Locale: de (1)") {
		t.Errorf("de ellipsis should be reported; got:\n%s", content)
	}
	if strings.Contains(content, "Locale: ja") {
		t.Errorf("ja is excluded from the ellipsis check; got:\n%s", content)
	}
}

func TestRunReport_ellipsisDisabled(t *testing.T) {
	dir := writeLocaleTree(t, map[string]string{
		"en/app.json": `{"wait": {"message": "Wait"}}`,
		"de/app.json": `{"wait": {"message": "Warten..."}}`,
	})
	if err := runReport(&reportConfig{localesPath: dir, refLocale: "en"}); err != nil {
		t.Errorf("ellipsis check disabled, got %v", err)
	}
}

func TestParseReportFlags_requiresL10n(t *testing.T) {
	if _, err := parseReportFlags([]string{"-ref", "en"}); err == nil {
		t.Error("missing -l10n should error")
	}
}
