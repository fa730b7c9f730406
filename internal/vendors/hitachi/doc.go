// Package hitachi maps metadata from the sidecar text files Hitachi
// microscope software writes next to TIFF images onto NXem concepts.
package hitachi
