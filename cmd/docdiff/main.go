// Package main provides the CLI entrypoint for docdiff.
//
// docdiff compares the documented API surface of two release snapshots:
//   - Loads the member pages of each release into a catalog
//   - Computes added/removed members, suppressing members whose
//     containing type is itself wholly new or removed
//   - Writes a grouped Markdown change report into the new release
//   - Links the report from the new release's table of contents
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"docdiff/internal/catalog"
	"docdiff/internal/diff"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: docdiff <old-release-dir> <new-release-dir>")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintln(os.Stderr, "docdiff:", err)
		os.Exit(1)
	}
}

func run(oldDir, newDir string) error {
	cfg := catalog.Config{}

	oldCat, err := catalog.Load(oldDir, filepath.Base(filepath.Clean(oldDir)), cfg)
	if err != nil {
		return err
	}

	newCat, err := catalog.Load(newDir, filepath.Base(filepath.Clean(newDir)), cfg)
	if err != nil {
		return err
	}

	d := diff.Compute(oldCat, newCat)

	path, err := diff.WriteReport(newDir, diff.Render(d))
	if err != nil {
		return err
	}

	if err := diff.PatchTOC(newDir); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d added, %d removed)\n", path, len(d.Added), len(d.Removed))

	return nil
}
