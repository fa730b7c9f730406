package reader

import (
	"fmt"
	"time"

	"github.com/FAIRmat-NFDI/nxem/internal/convention"
	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/eln"
	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
	"github.com/FAIRmat-NFDI/nxem/internal/units"
)

// Object carries metadata already extracted from a vendor file by an
// external decoder, together with the tables mapping it onto the template.
type Object struct {
	Tables   []*mapping.Table
	Metadata mapping.Metadata
}

// Reader fills an NXem template from the given inputs.
type Reader struct {
	EntryID     int
	Registry    *units.Registry
	Diagnostics *diagnostic.Diagnostics
}

// New constructs a reader; entry ids below 1 are coerced to 1.
func New(entryID int) *Reader {
	if entryID < 1 {
		entryID = 1
	}

	return &Reader{
		EntryID:     entryID,
		Registry:    units.NewRegistry(),
		Diagnostics: &diagnostic.Diagnostics{},
	}
}

// Read clears the template and fills it from the given file paths and
// pre-extracted vendor objects. An unsupported input combination leaves the
// template empty and is reported through the diagnostics, not as an error;
// errors are reserved for unreadable or unparsable accepted inputs.
func (r *Reader) Read(tpl *template.Template, filePaths []string, objects []Object) error {
	start := time.Now()
	tpl.Clear()

	applier := mapping.NewApplier(r.Registry, r.Diagnostics)

	selector := NewUseCaseSelector(filePaths)
	if !selector.IsValid {
		r.Diagnostics.AddError(diagnostic.CodeInputUnsupported,
			"this combination of input files is not supported", "", "")
		return nil
	}

	// Deployment-specific configuration is optional.
	if len(selector.Cfg) == 1 {
		p := eln.NewOasisParser(selector.Cfg[0], r.EntryID)
		if err := p.Parse(applier, tpl); err != nil {
			return err
		}
	}

	if len(selector.Eln) == 1 {
		p := eln.NewParser(selector.Eln[0], r.EntryID)
		if err := p.Parse(applier, tpl); err != nil {
			return err
		}
	}

	applyAppDef(r.EntryID, tpl)

	// Documenting conventions is optional.
	if len(selector.Cvn) == 1 {
		p := convention.NewParser(selector.Cvn[0], r.EntryID)
		if err := p.Parse(applier, tpl); err != nil {
			return err
		}
	}

	for _, obj := range objects {
		ids := []int{r.EntryID, 1, 1}
		for _, tbl := range obj.Tables {
			if err := applier.Apply(tbl, obj.Metadata, ids, tpl); err != nil {
				return err
			}
		}
	}

	trg := fmt.Sprintf("/ENTRY[entry%d]/profiling/template_filling_elapsed_time", r.EntryID)
	tpl.Set(trg, time.Since(start).Seconds())
	tpl.Set(trg+"/@units", "s")

	return nil
}
