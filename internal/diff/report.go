package diff

import (
	"fmt"
	"strings"

	"docdiff/internal/catalog"
	"docdiff/internal/common"
)

// kindSections fixes the per-kind section order of the report.
var kindSections = []struct {
	kind   catalog.Kind
	plural string
}{
	{catalog.KindNamespace, "namespaces"},
	{catalog.KindClass, "classes"},
	{catalog.KindStruct, "structs"},
	{catalog.KindInterface, "interfaces"},
	{catalog.KindDelegate, "delegates"},
	{catalog.KindEnum, "enums"},
}

// Render produces the Markdown change report. Output is deterministic
// for a given pair of catalogs: section order is fixed, per-kind lists
// are uid-sorted, and by-type groups keep catalog order.
func Render(d Delta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# API changes from %s to %s\n", d.Old.Version, d.New.Version)

	renderSide(&b, "New", d.Added, d.New, true)
	renderSide(&b, "Removed", d.Removed, d.Old, false)

	return b.String()
}

// renderSide writes the per-kind sections and the by-type section for
// one direction of the delta. from is the catalog the members belong
// to; linked controls whether bullets carry an xref (there is nothing
// to link a removed member to).
func renderSide(b *strings.Builder, label string, members []*catalog.Member, from *catalog.Catalog, linked bool) {
	for _, sec := range kindSections {
		var ofKind []*catalog.Member

		for _, m := range members {
			if m.Kind == sec.kind {
				ofKind = append(ofKind, m)
			}
		}

		if common.IsEmpty(ofKind) {
			continue
		}

		fmt.Fprintf(b, "\n## %s %s\n\n", label, sec.plural)

		for _, m := range ofKind {
			b.WriteString(bullet(m, linked))
		}
	}

	renderByType(b, label, members, from, linked)
}

// renderByType writes the type-member section, grouped under the
// containing type. Groups are ordered by parent uid; within a group,
// members keep the order they were loaded in.
func renderByType(b *strings.Builder, label string, members []*catalog.Member, from *catalog.Catalog, linked bool) {
	selected := make(map[string]struct{})

	for _, m := range members {
		if m.Kind.IsTypeMember() && m.Parent() != nil {
			selected[m.UID] = struct{}{}
		}
	}

	if len(selected) == 0 {
		return
	}

	// Walk the catalog, not the uid-sorted delta, so group contents
	// keep catalog order.
	groups := make(map[string][]*catalog.Member)

	for _, m := range from.Members {
		if _, ok := selected[m.UID]; ok {
			groups[m.ParentUID] = append(groups[m.ParentUID], m)
		}
	}

	fmt.Fprintf(b, "\n## %s type members, by type\n", label)

	for _, parentUID := range common.SortedKeys(groups) {
		fmt.Fprintf(b, "\n### %s\n\n", from.ByUID[parentUID].Name)

		for _, m := range groups[parentUID] {
			b.WriteString(bullet(m, linked))
		}
	}
}

// bullet renders one member as a list item. Added members link to the
// new documentation via xref; removed members are plain text. The
// obsolete marker is independent of direction.
func bullet(m *catalog.Member, linked bool) string {
	var b strings.Builder

	if linked {
		fmt.Fprintf(&b, "- [%s](xref:%s)", m.Name, m.UID)
	} else {
		fmt.Fprintf(&b, "- %s", m.Name)
	}

	if m.Obsolete {
		b.WriteString(" (obsolete)")
	}

	b.WriteString("\n")

	return b.String()
}
