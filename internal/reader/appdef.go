package reader

import (
	"fmt"

	"github.com/FAIRmat-NFDI/nxem/internal/template"
)

// Name and version of this converter as documented in every produced entry.
// Version is meant to be overridden at link time from the build metadata.
var (
	ProgramName    = "nxem"
	ProgramVersion = "dev"
)

// applyAppDef documents which software produced the entry.
func applyAppDef(entryID int, tpl *template.Template) {
	trg := fmt.Sprintf("/ENTRY[entry%d]/profiling/PROGRAM[program1]/program", entryID)
	tpl.Set(trg, ProgramName)
	tpl.Set(trg+"/@version", ProgramVersion)
}
