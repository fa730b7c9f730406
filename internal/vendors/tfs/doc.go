// Package tfs maps metadata embedded by ThermoFisher Scientific (formerly
// FEI) microscope software into TIFF files onto NXem concepts.
package tfs
