package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateSetGet(t *testing.T) {
	tpl := New()
	assert.Equal(t, 0, tpl.Len())

	tpl.Set("/ENTRY[entry1]/sample/name", "bicrystal")
	tpl.Set("/ENTRY[entry1]/sample/thickness", 1.5e-7)
	tpl.Set("/ENTRY[entry1]/sample/thickness/@units", "m")

	v, ok := tpl.Get("/ENTRY[entry1]/sample/name")
	require.True(t, ok)
	assert.Equal(t, "bicrystal", v)

	_, ok = tpl.Get("/ENTRY[entry1]/sample/atom_types")
	assert.False(t, ok)

	assert.True(t, tpl.Has("/ENTRY[entry1]/sample/thickness/@units"))
	assert.Equal(t, 3, tpl.Len())
}

func TestTemplatePathsSorted(t *testing.T) {
	tpl := New()
	tpl.Set("/b", 2)
	tpl.Set("/a", 1)
	tpl.Set("/c", 3)

	assert.Equal(t, []string{"/a", "/b", "/c"}, tpl.Paths())
}

func TestTemplateClear(t *testing.T) {
	tpl := New()
	tpl.Set("/a", 1)
	tpl.Clear()

	assert.Equal(t, 0, tpl.Len())
	assert.Empty(t, tpl.Entries())
}

func TestNewObject(t *testing.T) {
	obj, err := NewObject("voltage", "V", 200.0, KindDataset)
	require.NoError(t, err)
	assert.Equal(t, "V", obj.Unit)
	assert.Contains(t, obj.String(), "dataset")
}

func TestNewObjectNilValueForcesUnitless(t *testing.T) {
	obj, err := NewObject("comment", "m", nil, KindAttribute)
	require.NoError(t, err)
	assert.Equal(t, "unitless", obj.Unit)
}

func TestNewObjectRejectsBadInputs(t *testing.T) {
	_, err := NewObject("", "m", 1, KindGroup)
	assert.Error(t, err)

	_, err = NewObject("name", "", 1, KindGroup)
	assert.Error(t, err)

	_, err = NewObject("name", "m", 1, ObjectKind("hyperslab"))
	assert.ErrorIs(t, err, ErrInvalidKind)
}
