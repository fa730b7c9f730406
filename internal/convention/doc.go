// Package convention documents rotation and reference frame conventions and
// checks them against the suggestions of the EBSD community
// (https://dx.doi.org/10.1088/0965-0393/23/8/083501).
package convention
