// Package gatan maps content from Gatan DigitalMicrograph files onto NXem
// concepts. Whether a dataset is an image, a spectrum, or generic data is
// decided from the physical units of its calibration axes.
package gatan
