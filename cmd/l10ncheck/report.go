package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/loopcontext/l10ncheck"
)

// reportConfig holds flags for the report command.
type reportConfig struct {
	localesPath    string
	refLocale      string
	destFile       string
	exceptionsPath string
	ellipsis       bool
}

func usageReport() {
	fmt.Fprintf(os.Stderr, `usage: l10ncheck report [options]

Report runs the placeholder check in case-folded mode (placeholder names
are case insensitive and deduplicated), flags ¶ and three-dot ellipses,
groups findings per normalized locale (zh_TW -> zh-TW) and prints a total.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseReportFlags(args []string) (*reportConfig, error) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	fs.Usage = usageReport
	defaults, err := l10ncheck.LoadConfig(l10ncheck.ConfigFileName)
	if err != nil {
		return nil, err
	}
	ref := defaults.Ref
	if ref == "" {
		ref = "en"
	}
	var cfg reportConfig
	fs.StringVar(&cfg.localesPath, "l10n", "", "Path to folder including subfolders for all locales. Required.")
	fs.StringVar(&cfg.refLocale, "ref", ref, "Reference locale code.")
	fs.StringVar(&cfg.destFile, "dest", "", "Save output to file.")
	fs.StringVar(&cfg.exceptionsPath, "exceptions", defaults.Exceptions, "Path to JSON exceptions file.")
	fs.BoolVar(&cfg.ellipsis, "ellipsis", defaults.EllipsisEnabled(), "Check for '...' in translations.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.localesPath == "" {
		return nil, fmt.Errorf("report: -l10n is required")
	}
	return &cfg, nil
}

func runReport(cfg *reportConfig) error {
	basePath, err := filepath.Abs(cfg.localesPath)
	if err != nil {
		return err
	}
	if err := requireRefLocale(basePath, cfg.refLocale); err != nil {
		return err
	}
	var exceptions l10ncheck.Exceptions
	if cfg.exceptionsPath != "" {
		exceptions, err = l10ncheck.LoadExceptions(cfg.exceptionsPath)
		if err != nil {
			return err
		}
	}
	validator := &l10ncheck.Validator{
		BasePath:      basePath,
		RefLocale:     cfg.refLocale,
		Exceptions:    exceptions,
		NormalizeTags: true,
		Placeholder:   l10ncheck.PlaceholderOptions{FoldCase: true},
		Text:          l10ncheck.TextOptions{Ellipsis: cfg.ellipsis},
	}
	issues, err := validator.Run()
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		color.New(color.FgGreen).Println("No issues found.")
		return nil
	}

	byLocale := map[string][]l10ncheck.Issue{}
	for _, issue := range issues {
		byLocale[issue.Locale] = append(byLocale[issue.Locale], issue)
	}
	locales := make([]string, 0, len(byLocale))
	for locale := range byLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	var lines []string
	total := 0
	for _, locale := range locales {
		localeIssues := byLocale[locale]
		lines = append(lines, fmt.Sprintf("\nLocale: %s (%d)", locale, len(localeIssues)))
		total += len(localeIssues)
		for _, issue := range localeIssues {
			lines = append(lines, "\n  "+formatReportIssue(issue))
		}
	}
	lines = append(lines, fmt.Sprintf("\nTotal errors: %d", total))
	output := strings.Join(lines, "\n")

	if cfg.destFile != "" {
		fmt.Printf("Saving output to %s\n", cfg.destFile)
		if err := os.WriteFile(cfg.destFile, []byte(output), 0o644); err != nil {
			return err
		}
	}
	fmt.Println(output)
	return errIssuesFound
}

func formatReportIssue(issue l10ncheck.Issue) string {
	switch issue.Kind {
	case l10ncheck.IssuePilcrow:
		return fmt.Sprintf("'¶' in %s\n  Translation: %s", issue.Key, issue.Text)
	case l10ncheck.IssueEllipsis:
		return fmt.Sprintf("'...' in %s\n  Translation: %s", issue.Key, issue.Text)
	default:
		return fmt.Sprintf("Placeholder mismatch in %s\n  Translation: %s\n  Reference: %s", issue.Key, issue.Text, issue.Ref)
	}
}
