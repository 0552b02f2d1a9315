package catalog

import (
	"fmt"

	"docdiff/internal/diagnostic"
)

// Catalog is an immutable snapshot of one release's API surface.
type Catalog struct {
	// Version is the release label, typically the directory name.
	Version string

	// Members holds every member in page scan order.
	Members []*Member

	// ByUID indexes Members. Complete and bijective with Members.
	ByUID map[string]*Member
}

// New indexes members by uid and resolves parent links. Both passes
// collect every finding before failing, so one run reports all
// duplicate uids and unresolved parents in the input data.
func New(version string, members []*Member) (*Catalog, error) {
	diags := &diagnostic.Diagnostics{}

	byUID := make(map[string]*Member, len(members))

	for _, m := range members {
		if prev, ok := byUID[m.UID]; ok {
			diags.AddError("duplicate_uid",
				fmt.Sprintf("uid already declared in %s", prev.File), m.UID, m.File)
			continue
		}

		byUID[m.UID] = m
	}

	for _, m := range members {
		if m.ParentUID == "" {
			continue
		}

		parent, ok := byUID[m.ParentUID]
		if !ok {
			diags.AddError("unresolved_parent",
				fmt.Sprintf("parent %q is not part of this release", m.ParentUID), m.UID, m.File)
			continue
		}

		m.parent = parent
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("release %s: %w", version, diags.Error())
	}

	return &Catalog{Version: version, Members: members, ByUID: byUID}, nil
}

// Contains returns true if uid is part of this release.
func (c *Catalog) Contains(uid string) bool {
	_, ok := c.ByUID[uid]
	return ok
}
