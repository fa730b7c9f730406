package convention

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/eln"
	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
)

// Parser extracts rotation and reference frame conventions from a YAML
// document produced by an ELN.
type Parser struct {
	FilePath string
	EntryID  int
}

// NewParser constructs a parser; entry ids below 1 are coerced to 1.
func NewParser(filePath string, entryID int) *Parser {
	if entryID < 1 {
		entryID = 1
	}

	return &Parser{FilePath: filePath, EntryID: entryID}
}

// Supported reports whether the file name marks a conventions document.
func (p *Parser) Supported() bool {
	return strings.HasSuffix(p.FilePath, "conventions.yaml") ||
		strings.HasSuffix(p.FilePath, "conventions.yml")
}

// Parse maps the conventions document onto the template and appends
// consistency findings to the applier's diagnostics. Findings are advisory:
// an unusual but documented convention set is valid input.
func (p *Parser) Parse(a *mapping.Applier, tpl *template.Template) error {
	raw, err := os.ReadFile(p.FilePath)
	if err != nil {
		return fmt.Errorf("reading conventions: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing conventions %s: %w", p.FilePath, err)
	}

	meta := eln.Flatten(doc)
	ids := []int{p.EntryID, 1}

	for _, tbl := range Tables() {
		if err := a.Apply(tbl, meta, ids, tpl); err != nil {
			return err
		}
	}

	p.checkRotations(a, tpl)
	p.checkFrames(a, tpl)

	return nil
}

// checkRotations compares the documented rotation conventions against the
// community suggestion.
func (p *Parser) checkRotations(a *mapping.Applier, tpl *template.Template) {
	prefix := fmt.Sprintf("/ENTRY[entry%d]/coordinate_system_set", p.EntryID)

	used := make(map[string]any)
	for _, field := range msmseFields {
		if v, ok := tpl.Get(prefix + "/" + field); ok {
			used[field] = v
		}
	}

	if ConsistencyWithMSMSE(used) == Inconsistent {
		a.Diagnostics.AddWarning(diagnostic.CodeConventionDiffers,
			"rotation conventions differ from the community suggestion",
			RotationsTable.Name, "")
	}
}

// checkFrames verifies the processing and sample reference frames are well
// defined when they are documented at all.
func (p *Parser) checkFrames(a *mapping.Applier, tpl *template.Template) {
	prefix := fmt.Sprintf("/ENTRY[entry%d]/coordinate_system_set", p.EntryID)

	for _, frame := range []string{"processing_reference_frame", "sample_reference_frame"} {
		base := prefix + "/" + frame

		handedness, anyDocumented := textAt(tpl, base+"/handedness")

		directions := make([]string, 0, 3)
		for _, axis := range []string{"x", "y", "z"} {
			if d, ok := textAt(tpl, base+"/"+axis+"_direction"); ok {
				directions = append(directions, d)
				anyDocumented = true
			}
		}

		if !anyDocumented {
			continue
		}

		if !WellDefinedCartesian(handedness, directions) {
			a.Diagnostics.AddWarning(diagnostic.CodeFrameIllDefined,
				fmt.Sprintf("%s is not well defined", frame), "", "")
		}
	}
}

func textAt(tpl *template.Template, path string) (string, bool) {
	v, ok := tpl.Get(path)
	if !ok {
		return "", false
	}

	s, isStr := v.(string)

	return s, isStr
}
