package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
	"github.com/FAIRmat-NFDI/nxem/internal/vendors/jeol"
)

func writeFile(t *testing.T, name, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func TestReadFillsTemplateFromAllSources(t *testing.T) {
	elnPath := writeFile(t, "eln_data.yaml", `entry:
  experiment_alias: overview
sample:
  name: CG-2024-0001
`)
	cvnPath := writeFile(t, "ebsd.conventions.yaml", `rotation_conventions:
  rotation_handedness: counter_clockwise
  rotation_convention: passive
  euler_angle_convention: zxz
  axis_angle_convention: rotation_angle_on_interval_zero_to_pi
`)
	cfgPath := writeFile(t, "sem.oasis.specific.yaml", `citation:
- doi: 10.5281/zenodo.1234567
`)

	r := New(1)
	tpl := template.New()

	objects := []Object{{
		Tables:   jeol.Tables(),
		Metadata: mapping.Metadata{"SM_WD": 10.3, "CM_INSTRUMENT": "JEM-2100"},
	}}

	require.NoError(t, r.Read(tpl, []string{elnPath, cvnPath, cfgPath}, objects))
	require.False(t, r.Diagnostics.HasErrors())

	v, ok := tpl.Get("/ENTRY[entry1]/experiment_alias")
	require.True(t, ok)
	assert.Equal(t, "overview", v)

	v, ok = tpl.Get("/ENTRY[entry1]/coordinate_system_set/euler_angle_convention")
	require.True(t, ok)
	assert.Equal(t, "zxz", v)

	v, ok = tpl.Get("/ENTRY[entry1]/CITE[cite1]/doi")
	require.True(t, ok)
	assert.Equal(t, "10.5281/zenodo.1234567", v)

	v, ok = tpl.Get("/ENTRY[entry1]/measurement/events/EVENT_DATA_EM[event_data_em1]/instrument/optics/working_distance")
	require.True(t, ok)
	assert.InDelta(t, 0.0103, v.(float64), 1e-12)

	v, ok = tpl.Get("/ENTRY[entry1]/profiling/PROGRAM[program1]/program")
	require.True(t, ok)
	assert.Equal(t, ProgramName, v)

	elapsed, ok := tpl.Get("/ENTRY[entry1]/profiling/template_filling_elapsed_time")
	require.True(t, ok)
	assert.GreaterOrEqual(t, elapsed.(float64), 0.0)

	v, ok = tpl.Get("/ENTRY[entry1]/profiling/template_filling_elapsed_time/@units")
	require.True(t, ok)
	assert.Equal(t, "s", v)
}

func TestReadUnsupportedCombinationLeavesTemplateEmpty(t *testing.T) {
	r := New(1)
	tpl := template.New()
	tpl.Set("/stale", 1)

	require.NoError(t, r.Read(tpl, []string{"a.tif", "b.tif", "c.tif"}, nil))

	assert.Zero(t, tpl.Len())
	require.True(t, r.Diagnostics.HasErrors())
	assert.Equal(t, diagnostic.CodeInputUnsupported, r.Diagnostics.Errors[0].Code)
}

func TestReadNoInputStillDocumentsProgram(t *testing.T) {
	r := New(2)
	tpl := template.New()

	require.NoError(t, r.Read(tpl, nil, nil))
	assert.True(t, tpl.Has("/ENTRY[entry2]/profiling/PROGRAM[program1]/program"))
	assert.True(t, tpl.Has("/ENTRY[entry2]/profiling/template_filling_elapsed_time"))
}
