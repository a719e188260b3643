package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loopcontext/l10ncheck"
)

// referenceConfig holds flags for the reference command.
type referenceConfig struct {
	refPath string
}

func usageReference() {
	fmt.Fprintf(os.Stderr, `usage: l10ncheck reference -path <dir>

Reference lints the reference locale's JSON files themselves: straight
apostrophes, three-dot ellipses, and $name$ tokens used in text but not
declared in the placeholders section.

Flags:
`)
	flag.CommandLine.PrintDefaults()
}

func parseReferenceFlags(args []string) (*referenceConfig, error) {
	fs := flag.NewFlagSet("reference", flag.ExitOnError)
	fs.Usage = usageReference
	var cfg referenceConfig
	fs.StringVar(&cfg.refPath, "path", "", "Path to folder with reference JSON files. Required.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.refPath == "" {
		return nil, fmt.Errorf("reference: -path is required")
	}
	return &cfg, nil
}

func runReference(cfg *referenceConfig) error {
	findings, err := l10ncheck.LintReference(cfg.refPath)
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		color.New(color.FgGreen).Println("No issues found.")
		return nil
	}
	current := ""
	for _, finding := range findings {
		if finding.File != current {
			current = finding.File
			fmt.Printf("File: %s\n", current)
		}
		fmt.Printf("  %s\n", finding.Detail)
	}
	return errIssuesFound
}
