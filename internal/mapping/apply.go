package mapping

import (
	"fmt"
	"os"
	"time"

	"github.com/FAIRmat-NFDI/nxem/internal/checksum"
	"github.com/FAIRmat-NFDI/nxem/internal/common"
	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/humanbool"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
	"github.com/FAIRmat-NFDI/nxem/internal/units"
)

// Applier applies mapping tables against one unit registry and collects
// diagnostics for the whole run.
type Applier struct {
	Registry    *units.Registry
	Diagnostics *diagnostic.Diagnostics
}

// NewApplier constructs an applier around an explicit unit registry.
func NewApplier(reg *units.Registry, diags *diagnostic.Diagnostics) *Applier {
	return &Applier{Registry: reg, Diagnostics: diags}
}

// Apply walks the table's typed field lists and writes resolved values into
// the template. Absent source keys are skipped silently (soft miss);
// malformed human booleans and invalid timezone names are hard errors.
func (a *Applier) Apply(tbl *Table, meta Metadata, ids []int, tpl *template.Template) error {
	if err := tbl.Validate(a.Registry); err != nil {
		return err
	}

	a.applyUse(tbl, ids, tpl)
	a.applyMap(tbl, meta, ids, tpl)
	a.applyMapToStr(tbl, meta, ids, tpl)

	if err := a.applyMapToBool(tbl, meta, ids, tpl); err != nil {
		return err
	}

	a.applyMapToF8(tbl, meta, ids, tpl)

	if err := a.applyTimestamps(tbl, meta, ids, tpl); err != nil {
		return err
	}

	if err := a.applyFileHashes(tbl, meta, ids, tpl); err != nil {
		return err
	}

	return nil
}

// resolveTrg builds the specific template path for a target name.
func (a *Applier) resolveTrg(tbl *Table, trg string, ids []int) (string, bool) {
	path, ok := template.ResolveVariadic(tbl.PrefixTrg+"/"+trg, ids)
	if !ok {
		a.Diagnostics.AddWarning(diagnostic.CodeFieldSkipped,
			fmt.Sprintf("cannot resolve variadic target %q with %d ids", trg, len(ids)),
			tbl.Name, "")
	}

	return path, ok
}

func (a *Applier) applyUse(tbl *Table, ids []int, tpl *template.Template) {
	for _, f := range tbl.Use {
		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		if q, isQty := f.Value.(units.Quantity); isQty {
			tpl.Set(trg, q.Magnitude)

			if !q.Unit.IsSpecial() {
				tpl.Set(trg+"/@units", q.Unit.String())
			}

			continue
		}

		tpl.Set(trg, f.Value)
	}
}

func (a *Applier) applyMap(tbl *Table, meta Metadata, ids []int, tpl *template.Template) {
	for _, f := range tbl.Map {
		raw, found := tbl.lookup(meta, f.Src)
		if !found {
			continue
		}

		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		tpl.Set(trg, raw)
	}
}

func (a *Applier) applyMapToStr(tbl *Table, meta Metadata, ids []int, tpl *template.Template) {
	for _, f := range tbl.MapToStr {
		raw, found := tbl.lookup(meta, f.Src)
		if !found {
			continue
		}

		s, isStr := raw.(string)
		if !isStr {
			a.Diagnostics.AddWarning(diagnostic.CodeFieldSkipped,
				fmt.Sprintf("expected text for %q, got %T", f.Src, raw), tbl.Name, f.Src)
			continue
		}

		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		tpl.Set(trg, s)
	}
}

func (a *Applier) applyMapToBool(tbl *Table, meta Metadata, ids []int, tpl *template.Template) error {
	for _, f := range tbl.MapToBool {
		raw, found := tbl.lookup(meta, f.Src)
		if !found {
			continue
		}

		val, err := humanbool.Interpret(raw)
		if err != nil {
			return fmt.Errorf("table %s, source %s: %w", tbl.Name, f.Src, err)
		}

		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		tpl.Set(trg, val)
	}

	return nil
}

func (a *Applier) applyMapToF8(tbl *Table, meta Metadata, ids []int, tpl *template.Template) {
	for _, f := range tbl.MapToF8 {
		raw, found := tbl.lookup(meta, f.Src)
		if !found {
			continue
		}

		mag, ok := coerceFloat64(raw)
		if !ok {
			a.Diagnostics.AddWarning(diagnostic.CodeFieldSkipped,
				fmt.Sprintf("expected number for %q, got %T", f.Src, raw), tbl.Name, f.Src)
			continue
		}

		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		if f.TrgUnit == "" {
			tpl.Set(trg, mag)
			continue
		}

		trgUnit := a.Registry.MustLookup(f.TrgUnit)

		srcUnit, haveSrcUnit, skip := a.sourceUnit(tbl, f, meta)
		if skip {
			continue
		}

		if haveSrcUnit {
			q, err := (units.Quantity{Magnitude: mag, Unit: srcUnit}).Convert(trgUnit)
			if err != nil {
				a.Diagnostics.AddWarning(diagnostic.CodeUnitUncategorized,
					fmt.Sprintf("cannot convert %q: %v", f.Src, err), tbl.Name, f.Src)
				continue
			}

			mag = q.Magnitude
		}

		tpl.Set(trg, mag)

		if !trgUnit.IsSpecial() {
			tpl.Set(trg+"/@units", trgUnit.String())
		}
	}
}

// sourceUnit resolves the unit the source value is recorded in. The third
// return is true when the entry must be skipped because a declared unit key
// is absent or unresolvable.
func (a *Applier) sourceUnit(tbl *Table, f Field, meta Metadata) (units.Unit, bool, bool) {
	if f.SrcUnit != "" {
		return a.Registry.MustLookup(f.SrcUnit), true, false
	}

	if f.SrcUnitKey == "" {
		// Source assumed to be recorded in the target unit already.
		return units.Unit{}, false, false
	}

	raw, found := tbl.lookup(meta, f.SrcUnitKey)
	if !found {
		a.Diagnostics.AddWarning(diagnostic.CodeFieldSkipped,
			fmt.Sprintf("unit key %q absent", f.SrcUnitKey), tbl.Name, f.Src)
		return units.Unit{}, false, true
	}

	symbol, isStr := raw.(string)
	if !isStr {
		a.Diagnostics.AddWarning(diagnostic.CodeUnitUndefined,
			fmt.Sprintf("unit key %q holds %T, expected text", f.SrcUnitKey, raw), tbl.Name, f.Src)
		return units.Unit{}, false, true
	}

	u, ok := a.Registry.Lookup(symbol)
	if !ok {
		a.Diagnostics.AddWarning(diagnostic.CodeUnitUndefined,
			fmt.Sprintf("unit symbol %q from key %q is not defined", symbol, f.SrcUnitKey), tbl.Name, f.Src)
		return units.Unit{}, false, true
	}

	return u, true, false
}

func (a *Applier) applyTimestamps(tbl *Table, meta Metadata, ids []int, tpl *template.Template) error {
	for _, f := range tbl.UnixToISO8601 {
		raw, found := tbl.lookup(meta, f.Src)
		if !found {
			continue
		}

		if s, isStr := raw.(string); isStr && s == "" {
			continue
		}

		secs, ok := coerceFloat64(raw)
		if !ok {
			a.Diagnostics.AddWarning(diagnostic.CodeFieldSkipped,
				fmt.Sprintf("expected unix timestamp for %q, got %T", f.Src, raw), tbl.Name, f.Src)
			continue
		}

		zone := f.Zone
		if zone == "" {
			zone = "UTC"
		}

		loc, err := time.LoadLocation(zone)
		if err != nil {
			return fmt.Errorf("table %s, source %s: %q is not a known timezone", tbl.Name, f.Src, zone)
		}

		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		tpl.Set(trg, time.Unix(int64(secs), 0).In(loc).Format(time.RFC3339))
	}

	return nil
}

func (a *Applier) applyFileHashes(tbl *Table, meta Metadata, ids []int, tpl *template.Template) error {
	for _, f := range tbl.SHA256 {
		raw, found := tbl.lookup(meta, f.Src)
		if !found {
			continue
		}

		path, isStr := raw.(string)
		if !isStr || path == "" {
			continue
		}

		trg, ok := a.resolveTrg(tbl, f.Trg, ids)
		if !ok {
			continue
		}

		fp, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("table %s, source %s: %w", tbl.Name, f.Src, err)
		}

		digest, err := checksum.OfReader(fp)
		fp.Close()

		if err != nil {
			return fmt.Errorf("table %s, source %s: %w", tbl.Name, f.Src, err)
		}

		base := common.RChop(trg, "checksum")
		tpl.Set(base+"checksum", digest)
		tpl.Set(base+"type", "file")
		tpl.Set(base+"path", path)
		tpl.Set(base+"algorithm", checksum.Algorithm)
	}

	return nil
}

// coerceFloat64 widens numbers and parses numeric text; vendors frequently
// serialize numerical values as strings.
func coerceFloat64(v any) (float64, bool) {
	if f, ok := toFloat64(v); ok {
		return f, true
	}

	if s, ok := v.(string); ok {
		switch n := common.StringToNumber(s).(type) {
		case int64:
			return float64(n), true
		case float64:
			return n, true
		}
	}

	return 0, false
}
