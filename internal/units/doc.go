// Package units provides a small physical-quantity registry for attaching
// and converting units while mapping vendor metadata onto NeXus paths.
//
// A Registry is an explicitly constructed object passed by reference, not
// ambient process state, so tests can instantiate isolated registries.
//
// Besides real units the registry knows the three NeXus sentinel
// categories: unitless (no unit exists), dimensionless (units cancelled
// out), and any (any unit acceptable). The schema treats these as distinct
// even though all three render without a unit suffix; that distinction is a
// hard invariant and is preserved by Unit equality.
package units
