package eln

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FAIRmat-NFDI/nxem/internal/checksum"
	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
)

// Parser extracts entry, sample, and user metadata from an eln_data.yaml
// instance written by a NOMAD Oasis ELN.
type Parser struct {
	FilePath string
	EntryID  int

	// Checksum is the SHA-256 of the file content, set by Parse.
	Checksum string
}

// NewParser constructs a parser; entry ids below 1 are coerced to 1.
func NewParser(filePath string, entryID int) *Parser {
	if entryID < 1 {
		entryID = 1
	}

	return &Parser{FilePath: filePath, EntryID: entryID}
}

// Supported reports whether the file name marks an ELN data document.
func (p *Parser) Supported() bool {
	return strings.HasSuffix(p.FilePath, "eln_data.yaml") ||
		strings.HasSuffix(p.FilePath, "eln_data.yml")
}

// Parse maps the document onto the template and records the file's
// fingerprint for provenance.
func (p *Parser) Parse(a *mapping.Applier, tpl *template.Template) error {
	raw, err := os.ReadFile(p.FilePath)
	if err != nil {
		return fmt.Errorf("reading eln data: %w", err)
	}

	p.Checksum = checksum.OfBytes(raw)
	a.Diagnostics.AddInfo("", fmt.Sprintf("parsing %s with SHA256 %s", p.FilePath, p.Checksum), "", "")

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing eln data %s: %w", p.FilePath, err)
	}

	meta := Flatten(doc)
	ids := []int{p.EntryID}

	if err := a.Apply(&EntryTable, meta, ids, tpl); err != nil {
		return err
	}

	if err := a.Apply(&SampleTable, meta, ids, tpl); err != nil {
		return err
	}

	return p.parseUsers(meta, a, tpl)
}

// parseUsers iterates the user list; each entry gets its own USER instance.
func (p *Parser) parseUsers(meta mapping.Metadata, a *mapping.Applier, tpl *template.Template) error {
	users, ok := meta["user"].([]any)
	if !ok {
		return nil
	}

	userID := 1

	for _, entry := range users {
		userDoc, isMap := entry.(map[string]any)
		if !isMap || len(userDoc) == 0 {
			continue
		}

		userMeta := Flatten(userDoc)
		ids := []int{p.EntryID, userID}

		if err := a.Apply(&UserTable, userMeta, ids, tpl); err != nil {
			return err
		}

		if _, hasORCID := userMeta["orcid"]; hasORCID {
			if err := a.Apply(&UserIdentifierTable, userMeta, ids, tpl); err != nil {
				return err
			}
		}

		userID++
	}

	return nil
}
