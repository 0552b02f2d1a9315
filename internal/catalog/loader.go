package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// tocFileName is excluded from member loading. The table of contents
// describes document navigation, not API members, and has a different
// schema; the exclusion is an exact filename match.
const tocFileName = "toc.yml"

// Config controls how member pages are read. The zero value is the
// production behavior. An explicit Config is passed into Load rather
// than held in package state so two loads can never interfere.
type Config struct {
	// Strict rejects unknown fields in member pages. Useful for
	// surfacing toolchain drift; never on in normal runs.
	Strict bool
}

// Load reads every member page under dir (recursively) and builds the
// catalog for one release. All parent links are resolved before Load
// returns; there is no partially built catalog.
func Load(dir, version string, cfg Config) (*Catalog, error) {
	paths, err := memberPages(dir)
	if err != nil {
		return nil, err
	}

	var members []*Member

	for _, path := range paths {
		ms, err := loadPage(path, cfg)
		if err != nil {
			return nil, err
		}

		members = append(members, ms...)
	}

	return New(version, members)
}

// memberPages lists every YAML file under dir except the TOC, in walk
// order. Walk order is lexical per directory, so the member sequence
// is stable across runs.
func memberPages(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || d.Name() == tocFileName {
			return nil
		}

		switch filepath.Ext(path) {
		case ".yml", ".yaml":
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning release directory %s: %w", dir, err)
	}

	return paths, nil
}

// loadPage reads and parses one member page into Members.
// Any schema violation is fatal; a malformed page means a broken
// documentation toolchain, not data to skip.
func loadPage(path string, cfg Config) ([]*Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading member page %s: %w", path, err)
	}

	p, err := parsePage(data, cfg.Strict)
	if err != nil {
		return nil, fmt.Errorf("parsing member page %s: %w", path, err)
	}

	members := make([]*Member, 0, len(p.Items))

	for _, r := range p.Items {
		m, err := r.toMember(path)
		if err != nil {
			return nil, fmt.Errorf("parsing member page %s: %w", path, err)
		}

		members = append(members, m)
	}

	return members, nil
}
