package catalog

// Member is one documented API element: a namespace, a type, or a
// type member. Members are immutable once the owning catalog is built.
type Member struct {
	// UID is the stable identifier, unique within one release.
	UID string

	// ParentUID references the containing member's uid, empty for
	// top-level members. Always resolvable within the same release.
	ParentUID string

	// Kind categorizes the member.
	Kind Kind

	// Name is the human-readable display name.
	Name string

	// Obsolete marks members documented as deprecated.
	Obsolete bool

	// File is the member page the record came from. Diagnostic only.
	File string

	parent *Member
}

// Parent returns the resolved containing member, nil for top-level members.
func (m *Member) Parent() *Member {
	return m.parent
}
