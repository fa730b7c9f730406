// Package pointelectronic maps metadata written by the point electronic
// DISS software into TIFF files onto NXem concepts.
package pointelectronic
