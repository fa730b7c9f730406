// Package jeol maps metadata from the sidecar text files JEOL microscope
// software writes next to TIFF images onto NXem concepts.
package jeol
