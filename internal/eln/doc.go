// Package eln maps user supplied metadata from electronic lab notebooks and
// NOMAD Oasis deployment configuration onto NXem concepts. The approach is
// not to copy over everything but only the pieces relevant from the NeXus
// perspective.
package eln
