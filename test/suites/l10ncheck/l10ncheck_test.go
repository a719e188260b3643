package test_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/loopcontext/l10ncheck"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Locale validation", func() {
	var basePath string

	writeFile := func(relPath string, content string) {
		path := filepath.Join(basePath, filepath.FromSlash(relPath))
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	}

	run := func(validator *l10ncheck.Validator) []l10ncheck.Issue {
		validator.BasePath = basePath
		validator.RefLocale = "en"
		issues, err := validator.Run()
		Expect(err).NotTo(HaveOccurred())
		return issues
	}

	BeforeEach(func() {
		var err error
		basePath, err = os.MkdirTemp("", "l10ncheck-suite-*")
		Expect(err).NotTo(HaveOccurred())
		writeFile("en/greeting.json", `{
  "hello": {"message": "Hello, $name$!", "placeholders": {"name": {"content": "$1"}}},
  "bye": {"message": "Goodbye!"}
}`)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(basePath)).To(Succeed())
	})

	It("should report a placeholder mismatch for a wrong token name", func() {
		writeFile("fr/greeting.json", `{"hello": {"message": "Bonjour, $nom$!"}}`)
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Locale).To(Equal("fr"))
		Expect(issues[0].Kind).To(Equal(l10ncheck.IssuePlaceholderMismatch))
		Expect(issues[0].Key).To(Equal("greeting.json:hello"))
	})

	It("should report a pilcrow even when placeholders match", func() {
		writeFile("de/greeting.json", `{"hello": {"message": "Hallo, $name$!¶"}}`)
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Kind).To(Equal(l10ncheck.IssuePilcrow))
	})

	It("should report a pilcrow in a message without placeholders", func() {
		writeFile("de/greeting.json", `{"bye": {"message": "Tschüss!¶"}}`)
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Kind).To(Equal(l10ncheck.IssuePilcrow))
		Expect(issues[0].Key).To(Equal("greeting.json:bye"))
	})

	It("should not report untranslated messages", func() {
		writeFile("fr/greeting.json", `{"bye": {"message": "Au revoir!"}}`)
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(BeEmpty())
	})

	It("should suppress placeholder mismatches for exempt keys but keep the pilcrow check", func() {
		writeFile("fr/greeting.json", `{"hello": {"message": "Bonjour, $nom$!¶"}}`)
		var exceptions l10ncheck.Exceptions
		exceptions.Placeholders = map[string]map[string]json.RawMessage{
			"fr": {"greeting.json:hello": json.RawMessage(`""`)},
		}
		issues := run(&l10ncheck.Validator{Exceptions: exceptions})
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Kind).To(Equal(l10ncheck.IssuePilcrow))
	})

	It("should contribute no issues for a locale directory without JSON files", func() {
		Expect(os.MkdirAll(filepath.Join(basePath, "it"), 0o755)).To(Succeed())
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(BeEmpty())
	})

	It("should skip hidden directories", func() {
		writeFile(".git/greeting.json", `{"hello": {"message": "¶"}}`)
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(BeEmpty())
	})

	It("should produce identical results on repeated runs", func() {
		writeFile("fr/greeting.json", `{"hello": {"message": "Bonjour, $nom$!"}}`)
		writeFile("de/greeting.json", `{"hello": {"message": "Hallo, $name$!¶"}}`)
		first := run(&l10ncheck.Validator{})
		second := run(&l10ncheck.Validator{})
		Expect(second).To(Equal(first))
		Expect(first[0].Locale).To(Equal("de"))
		Expect(first[1].Locale).To(Equal("fr"))
	})

	It("should count duplicate placeholder tokens", func() {
		writeFile("fr/greeting.json", `{"hello": {"message": "Bonjour, $name$ $name$!"}}`)
		issues := run(&l10ncheck.Validator{})
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Kind).To(Equal(l10ncheck.IssuePlaceholderMismatch))
	})

	It("should abort on a file with a missing message field", func() {
		writeFile("fr/greeting.json", `{"hello": {"placeholders": {"name": {}}}}`)
		validator := &l10ncheck.Validator{BasePath: basePath, RefLocale: "en"}
		_, err := validator.Run()
		Expect(err).To(HaveOccurred())
		var schemaErr *l10ncheck.SchemaError
		Expect(errors.As(err, &schemaErr)).To(BeTrue())
	})
})
