package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorClassification(t *testing.T) {
	s := NewUseCaseSelector([]string{
		"sem.oasis.specific.yaml",
		"eln_data.yaml",
		"ebsd.conventions.yml",
	})

	require.True(t, s.IsValid)
	assert.Equal(t, []string{"sem.oasis.specific.yaml"}, s.Cfg)
	assert.Equal(t, []string{"eln_data.yaml"}, s.Eln)
	assert.Equal(t, []string{"ebsd.conventions.yml"}, s.Cvn)
	assert.Empty(t, s.Dat)
}

func TestSelectorDataSuffixPriority(t *testing.T) {
	s := NewUseCaseSelector([]string{"scan.tif", "project.nsproj"})
	require.True(t, s.IsValid)
	// .tif outranks .nsproj in the acceptance order.
	assert.Equal(t, []string{"scan.tif", "project.nsproj"}, s.Dat)
}

func TestSelectorMtexShadowsH5(t *testing.T) {
	s := NewUseCaseSelector([]string{"orientation.mtex.h5"})
	require.True(t, s.IsValid)
	assert.Equal(t, []string{"orientation.mtex.h5"}, s.Dat)
}

func TestSelectorNoInputIsValid(t *testing.T) {
	assert.True(t, NewUseCaseSelector(nil).IsValid)
}

func TestSelectorTooManyDataFiles(t *testing.T) {
	s := NewUseCaseSelector([]string{"a.tif", "b.tif", "c.tif"})
	assert.False(t, s.IsValid)
}

func TestSelectorTooManyConfigFiles(t *testing.T) {
	s := NewUseCaseSelector([]string{"a.yaml", "b.yaml", "c.yaml", "d.yaml"})
	assert.False(t, s.IsValid)
}

func TestSelectorCaseInsensitiveSuffix(t *testing.T) {
	s := NewUseCaseSelector([]string{"SCAN.TIF"})
	require.True(t, s.IsValid)
	assert.Equal(t, []string{"SCAN.TIF"}, s.Dat)
}

func TestSelectorDeduplicatesRepeatedPath(t *testing.T) {
	s := NewUseCaseSelector([]string{"scan.tif", "scan.tif"})
	require.True(t, s.IsValid)
	assert.Equal(t, []string{"scan.tif"}, s.Dat)
}

func TestSelectorUnknownSuffixIgnored(t *testing.T) {
	s := NewUseCaseSelector([]string{"notes.docx"})
	require.True(t, s.IsValid)
	assert.Empty(t, s.Dat)
	assert.Empty(t, s.Cfg)
}
