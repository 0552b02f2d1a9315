// Package catalog loads one release's documented API surface into an
// immutable in-memory snapshot.
//
// A release directory holds member pages: YAML files each describing
// zero or more API members. Loading is a two-phase build: phase one
// parses every page and concatenates the members in scan order, phase
// two indexes members by uid and resolves every parent link. Forward
// references across pages are fine; a catalog that resolves at all
// resolves completely or the load fails.
package catalog
