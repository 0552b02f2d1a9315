// Package diagnostic provides structured error collection for catalog
// loading and validation.
//
// Loading a release snapshot is fail-closed: any finding aborts the run.
// Collecting findings instead of returning on the first one means a
// single run reports every duplicate uid and unresolved parent in the
// input data, not just the first.
package diagnostic
