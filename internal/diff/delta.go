package diff

import (
	"docdiff/internal/catalog"
	"docdiff/internal/common"
)

// Delta is the public-API difference between two releases.
type Delta struct {
	// Old and New are the compared catalogs.
	Old *catalog.Catalog
	New *catalog.Catalog

	// Added holds members present only in New, uid-sorted.
	Added []*catalog.Member

	// Removed holds members present only in Old, uid-sorted.
	Removed []*catalog.Member
}

// Compute diffs the uid sets of two catalogs. Pure: both catalogs are
// fully loaded inputs and neither is touched.
func Compute(oldCat, newCat *catalog.Catalog) Delta {
	return Delta{
		Old:     oldCat,
		New:     newCat,
		Added:   minus(newCat, oldCat),
		Removed: minus(oldCat, newCat),
	}
}

// minus returns the members of a absent from b, sorted by uid in byte
// order. A member whose parent is itself absent from b is suppressed:
// its containing type already appears in the result.
func minus(a, b *catalog.Catalog) []*catalog.Member {
	only := make(map[string]struct{})

	for uid := range a.ByUID {
		if !b.Contains(uid) {
			only[uid] = struct{}{}
		}
	}

	var out []*catalog.Member

	for _, uid := range common.SortedKeys(only) {
		m := a.ByUID[uid]
		if m.Parent() != nil && !b.Contains(m.ParentUID) {
			continue
		}

		out = append(out, m)
	}

	return out
}
