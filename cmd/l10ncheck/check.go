package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/loopcontext/l10ncheck"
)

// exceptionsFileName is resolved next to the executable; a missing file is
// a warning, not an error.
const exceptionsFileName = "check_exceptions.json"

// checkConfig holds flags for the check command.
type checkConfig struct {
	localesPath string
	refLocale   string
}

func usageCheck() {
	fmt.Fprintf(os.Stderr, `usage: l10ncheck check [options] <locales_path>

Check validates every locale subdirectory of <locales_path> against the
reference locale: $name$ tokens in translated text must exactly match the
placeholders declared in the reference message, and translated text must
not contain the paragraph mark ¶.

Exceptions are read from %s next to the executable.

Exit status is 0 when no discrepancies are found, 1 otherwise.

Flags:
`, exceptionsFileName)
	flag.CommandLine.PrintDefaults()
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Usage = usageCheck
	defaults, err := l10ncheck.LoadConfig(l10ncheck.ConfigFileName)
	if err != nil {
		return nil, err
	}
	ref := defaults.Ref
	if ref == "" {
		ref = "en"
	}
	var cfg checkConfig
	fs.StringVar(&cfg.refLocale, "ref", ref, "Reference locale code.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("check: expected exactly one locales path argument")
	}
	cfg.localesPath = fs.Arg(0)
	return &cfg, nil
}

func runCheck(cfg *checkConfig) error {
	basePath, err := filepath.Abs(cfg.localesPath)
	if err != nil {
		return err
	}
	if err := requireRefLocale(basePath, cfg.refLocale); err != nil {
		return err
	}
	exceptions, err := loadFixedExceptions()
	if err != nil {
		return err
	}
	validator := &l10ncheck.Validator{
		BasePath:   basePath,
		RefLocale:  cfg.refLocale,
		Exceptions: exceptions,
	}
	issues, err := validator.Run()
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		color.New(color.FgGreen).Println("No errors found.")
		return nil
	}
	color.New(color.FgRed).Println("ERRORS:")
	for _, issue := range issues {
		fmt.Println(formatCheckIssue(issue))
	}
	return errIssuesFound
}

// requireRefLocale fails fast when the reference locale directory does not
// exist, before any locale scanning.
func requireRefLocale(basePath string, refLocale string) error {
	info, err := os.Stat(filepath.Join(basePath, refLocale))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("the folder for the reference locale (%s) does not exist", refLocale)
	}
	return nil
}

func loadFixedExceptions() (l10ncheck.Exceptions, error) {
	exe, err := os.Executable()
	if err != nil {
		return l10ncheck.Exceptions{}, err
	}
	path := filepath.Join(filepath.Dir(exe), exceptionsFileName)
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("%s is missing\n", path)
		return l10ncheck.Exceptions{}, nil
	}
	return l10ncheck.LoadExceptions(path)
}

func formatCheckIssue(issue l10ncheck.Issue) string {
	switch issue.Kind {
	case l10ncheck.IssuePilcrow:
		return fmt.Sprintf("%s:\n  '¶' in %s\n  Text: %s", issue.Locale, issue.Key, issue.Text)
	default:
		return fmt.Sprintf("%s:\n  Placeholder mismatch in %s\n  Text: %s", issue.Locale, issue.Key, issue.Text)
	}
}
