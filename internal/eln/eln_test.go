package eln

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
	"github.com/FAIRmat-NFDI/nxem/internal/units"
)

const elnDoc = `entry:
  experiment_alias: su3500_su
  start_time: "2024-04-05T09:00:00+00:00"
  experiment_description: overview imaging
sample:
  method: experiment
  name: CG-2024-0001
  atom_types: Ga;N
  preparation_date: "2024-04-04T12:00:00+00:00"
  thickness:
    value: 50.0
    unit: nm
  identifier:
    identifier: CG-2024-0001
    service: lab
    is_persistent: no
user:
- name: Jane Doe
  affiliation: FHI
  orcid: 0000-0001-2345-6789
- name: John Doe
  role: technician
`

func writeFile(t *testing.T, name, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func newApplier() *mapping.Applier {
	return mapping.NewApplier(units.NewRegistry(), &diagnostic.Diagnostics{})
}

func TestFlatten(t *testing.T) {
	meta := Flatten(map[string]any{
		"a": map[string]any{"b": map[string]any{"c": 1}, "d": "x"},
		"e": []any{map[string]any{"f": 2}},
	})

	assert.Equal(t, 1, meta["a/b/c"])
	assert.Equal(t, "x", meta["a/d"])

	// Sequences stay leaf values.
	list, ok := meta["e"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestParserSupported(t *testing.T) {
	assert.True(t, NewParser("sem.eln_data.yaml", 1).Supported())
	assert.True(t, NewParser("eln_data.yml", 1).Supported())
	assert.False(t, NewParser("sem.oasis.specific.yaml", 1).Supported())
}

func TestParseElnDocument(t *testing.T) {
	p := NewParser(writeFile(t, "eln_data.yaml", elnDoc), 1)
	a := newApplier()
	tpl := template.New()

	require.NoError(t, p.Parse(a, tpl))

	v, ok := tpl.Get("/ENTRY[entry1]/experiment_alias")
	require.True(t, ok)
	assert.Equal(t, "su3500_su", v)

	v, ok = tpl.Get("/ENTRY[entry1]/sample/type")
	require.True(t, ok)
	assert.Equal(t, "experiment", v)

	// 50 nm arrives in meter.
	v, ok = tpl.Get("/ENTRY[entry1]/sample/thickness")
	require.True(t, ok)
	assert.InDelta(t, 50.0e-9, v.(float64), 1e-18)

	v, ok = tpl.Get("/ENTRY[entry1]/sample/thickness/@units")
	require.True(t, ok)
	assert.Equal(t, "m", v)

	v, ok = tpl.Get("/ENTRY[entry1]/sample/identifier/is_persistent")
	require.True(t, ok)
	assert.Equal(t, false, v)

	v, ok = tpl.Get("/ENTRY[entry1]/USER[user1]/name")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", v)

	v, ok = tpl.Get("/ENTRY[entry1]/USER[user1]/identifier/identifier")
	require.True(t, ok)
	assert.Equal(t, "0000-0001-2345-6789", v)

	v, ok = tpl.Get("/ENTRY[entry1]/USER[user1]/identifier/is_persistent")
	require.True(t, ok)
	assert.Equal(t, true, v)

	// The second user gave no ORCID.
	v, ok = tpl.Get("/ENTRY[entry1]/USER[user2]/role")
	require.True(t, ok)
	assert.Equal(t, "technician", v)
	assert.False(t, tpl.Has("/ENTRY[entry1]/USER[user2]/identifier/identifier"))

	assert.Len(t, p.Checksum, 64)
}

func TestParseMalformedBooleanIsHardError(t *testing.T) {
	doc := `sample:
  identifier:
    is_persistent: maybe
`
	p := NewParser(writeFile(t, "eln_data.yaml", doc), 1)
	assert.Error(t, p.Parse(newApplier(), template.New()))
}

func TestOasisParserSupported(t *testing.T) {
	assert.True(t, NewOasisParser("sem.oasis.specific.yaml", 1).Supported())
	assert.False(t, NewOasisParser("eln_data.yaml", 1).Supported())
}

func TestParseOasisConfiguration(t *testing.T) {
	doc := `coordinate_system_set:
- alias: lab
  type: cartesian
  handedness: right_handed
  xaxis_direction: east
  yaxis_direction: in
  zaxis_direction: north
  origin: front_top_left
citation:
- doi: 10.5281/zenodo.1234567
  description: reference dataset
- url: https://example.org/protocol
`
	p := NewOasisParser(writeFile(t, "sem.oasis.specific.yaml", doc), 1)
	a := newApplier()
	tpl := template.New()

	require.NoError(t, p.Parse(a, tpl))

	v, ok := tpl.Get("/ENTRY[entry1]/COORDINATE_SYSTEM[coordinate_system1]/x_direction")
	require.True(t, ok)
	assert.Equal(t, "east", v)

	v, ok = tpl.Get("/ENTRY[entry1]/CITE[cite1]/doi")
	require.True(t, ok)
	assert.Equal(t, "10.5281/zenodo.1234567", v)

	v, ok = tpl.Get("/ENTRY[entry1]/CITE[cite2]/url")
	require.True(t, ok)
	assert.Equal(t, "https://example.org/protocol", v)
}
