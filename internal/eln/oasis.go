package eln

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
)

// OasisParser extracts deployment specific defaults (coordinate systems,
// citations) from a *.oasis.specific.yaml configuration.
type OasisParser struct {
	FilePath string
	EntryID  int
}

// NewOasisParser constructs a parser; entry ids below 1 are coerced to 1.
func NewOasisParser(filePath string, entryID int) *OasisParser {
	if entryID < 1 {
		entryID = 1
	}

	return &OasisParser{FilePath: filePath, EntryID: entryID}
}

// Supported reports whether the file name marks a deployment configuration.
func (p *OasisParser) Supported() bool {
	return strings.HasSuffix(p.FilePath, ".oasis.specific.yaml") ||
		strings.HasSuffix(p.FilePath, ".oasis.specific.yml")
}

// Parse maps the configuration onto the template.
func (p *OasisParser) Parse(a *mapping.Applier, tpl *template.Template) error {
	raw, err := os.ReadFile(p.FilePath)
	if err != nil {
		return fmt.Errorf("reading oasis configuration: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing oasis configuration %s: %w", p.FilePath, err)
	}

	meta := Flatten(doc)

	if err := p.applyList(meta, "coordinate_system_set", &CoordinateSystemTable, a, tpl); err != nil {
		return err
	}

	return p.applyList(meta, "citation", &CitationTable, a, tpl)
}

// applyList iterates a list-valued key; each entry gets its own instance.
func (p *OasisParser) applyList(meta mapping.Metadata, key string, tbl *mapping.Table, a *mapping.Applier, tpl *template.Template) error {
	entries, ok := meta[key].([]any)
	if !ok {
		return nil
	}

	instanceID := 1

	for _, entry := range entries {
		doc, isMap := entry.(map[string]any)
		if !isMap || len(doc) == 0 {
			continue
		}

		if err := a.Apply(tbl, Flatten(doc), []int{p.EntryID, instanceID}, tpl); err != nil {
			return err
		}

		instanceID++
	}

	return nil
}
