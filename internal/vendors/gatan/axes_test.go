package gatan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/units"
)

func axis(name, unit string) Axis {
	return Axis{
		"name":           name,
		"size":           512,
		"index_in_array": 0,
		"scale":          1.0,
		"offset":         0.0,
		"units":          unit,
		"navigate":       false,
	}
}

func TestSignatureImage(t *testing.T) {
	reg := units.NewRegistry()
	diags := &diagnostic.Diagnostics{}

	sig := Signature([]Axis{axis("y", "nm"), axis("x", "nm")}, reg, diags)
	assert.Equal(t, "m_m", sig)

	cls, ok := WhichImage[sig]
	require.True(t, ok)
	assert.Equal(t, "image_2d", cls.Class)
	assert.Equal(t, []string{"axis_j", "axis_i"}, cls.AxisNames)
	assert.Empty(t, diags.Warnings)
}

func TestSignatureDiffractionImage(t *testing.T) {
	reg := units.NewRegistry()
	diags := &diagnostic.Diagnostics{}

	sig := Signature([]Axis{axis("qy", "1/nm"), axis("qx", "1/nm")}, reg, diags)
	assert.Equal(t, "1/m_1/m", sig)
	assert.Equal(t, "image_2d", WhichImage[sig].Class)
}

func TestSignatureSpectrum(t *testing.T) {
	reg := units.NewRegistry()
	diags := &diagnostic.Diagnostics{}

	sig := Signature([]Axis{axis("E", "eV")}, reg, diags)
	assert.Equal(t, "eV", sig)
	assert.Equal(t, "spectrum_0d", WhichSpectrum[sig].Class)
}

func TestSignatureUndefinedUnit(t *testing.T) {
	reg := units.NewRegistry()
	diags := &diagnostic.Diagnostics{}

	sig := Signature([]Axis{axis("x", "counts")}, reg, diags)
	assert.Empty(t, sig)

	require.NotEmpty(t, diags.Warnings)
	assert.Equal(t, diagnostic.CodeUnitUndefined, diags.Warnings[0].Code)
}

func TestSignatureMalformedAxisSkipped(t *testing.T) {
	reg := units.NewRegistry()
	diags := &diagnostic.Diagnostics{}

	broken := Axis{"units": "nm"}
	sig := Signature([]Axis{broken, axis("x", "nm")}, reg, diags)
	assert.Equal(t, "m", sig)

	require.NotEmpty(t, diags.Warnings)
	assert.Equal(t, diagnostic.CodeAxisShapeUnexpected, diags.Warnings[0].Code)
}

func TestSignatureEmpty(t *testing.T) {
	reg := units.NewRegistry()
	assert.Empty(t, Signature(nil, reg, &diagnostic.Diagnostics{}))
}

func TestSignatureUnitlessAxis(t *testing.T) {
	reg := units.NewRegistry()
	diags := &diagnostic.Diagnostics{}

	sig := Signature([]Axis{axis("frame", ""), axis("x", "nm")}, reg, diags)
	assert.Equal(t, "unitless_m", sig)
}
