package l10ncheck

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// RefFinding is one reference-locale lint finding.
type RefFinding struct {
	File   string // path relative to the scanned root
	Detail string
}

// LintReference walks root recursively and checks every JSON message file
// for straight apostrophes, three-dot ellipses and $name$ tokens used in
// text but not declared in the placeholders section. Findings are ordered
// by file walk order, then sorted message key.
func LintReference(root string) ([]RefFinding, error) {
	var findings []RefFinding
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		catalog := Catalog{}
		if err := readMessageFile(path, rel, catalog); err != nil {
			return err
		}
		findings = append(findings, lintCatalog(rel, catalog)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findings, nil
}

func lintCatalog(file string, catalog Catalog) []RefFinding {
	var findings []RefFinding
	for _, key := range sortedKeys(catalog) {
		msg := catalog[key]
		id := strings.TrimPrefix(key, file+":")
		if strings.Contains(msg.Text, "'") {
			findings = append(findings, RefFinding{File: file, Detail: "Use an apostrophe ’ instead of straight quotes '"})
		}
		if strings.Contains(msg.Text, "...") {
			findings = append(findings, RefFinding{File: file, Detail: "Use the ellipsis character … instead of 3 dots ..."})
		}
		used := dedupeNames(foldNames(ExtractPlaceholders(msg.Text)))
		sort.Strings(used)
		if len(used) == 0 {
			continue
		}
		if msg.Placeholders == nil {
			findings = append(findings, RefFinding{File: file, Detail: fmt.Sprintf("Section 'placeholders' missing in %s", id)})
			continue
		}
		declared := make(map[string]struct{}, len(msg.Placeholders))
		for _, name := range foldNames(msg.Placeholders) {
			declared[name] = struct{}{}
		}
		for _, name := range used {
			if _, found := declared[name]; !found {
				findings = append(findings, RefFinding{File: file, Detail: fmt.Sprintf("Placeholder %s is used in string '%s' but not defined in the placeholders section", name, id)})
			}
		}
	}
	return findings
}
