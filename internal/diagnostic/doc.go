// Package diagnostic collects non-fatal findings produced while mapping
// vendor metadata onto NeXus template paths.
//
// Appliers and classifiers receive a *Diagnostics collector instead of
// printing: a missing unit category, a malformed axis dictionary, or a
// skipped field becomes a structured, leveled record the caller can inspect
// after the run.
package diagnostic
