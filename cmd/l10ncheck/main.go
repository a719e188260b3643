package main

import (
	"errors"
	"fmt"
	"os"
)

// errIssuesFound signals a run that completed and reported findings; main
// exits non-zero without the error prefix, findings were already printed.
var errIssuesFound = errors.New("issues found")

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	sub := os.Args[1]
	args := os.Args[2:]
	var err error
	switch sub {
	case "check":
		cfg, e := parseCheckFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runCheck(cfg)
	case "report":
		cfg, e := parseReportFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runReport(cfg)
	case "reference":
		cfg, e := parseReferenceFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runReference(cfg)
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "l10ncheck: unknown subcommand %q\n", sub)
		usage()
		os.Exit(1)
	}
	if err != nil {
		if errors.Is(err, errIssuesFound) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "l10ncheck: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `l10ncheck - locale validation CLI for webextension-style JSON messages

usage: l10ncheck <command> [options] [args]

commands:
  check      Validate translated locales against a reference locale.
  report     Per-locale report with case-folded placeholder and style checks.
  reference  Lint the reference locale files themselves.

Use 'l10ncheck check -h', 'l10ncheck report -h' or 'l10ncheck reference -h'
for command-specific flags.
`)
}
