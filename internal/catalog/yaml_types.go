package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// page mirrors one member page on disk. A page lists the members it
// documents; reference and navigation data in the same document is not
// consumed by this tool.
type page struct {
	Items []record `yaml:"items"`
}

// record is the raw on-disk form of a member, before kind parsing and
// validation. Unknown fields are ignored so newer documentation
// toolchains can add fields without breaking older readers.
type record struct {
	UID      string   `yaml:"uid"`
	Parent   string   `yaml:"parent"`
	Type     string   `yaml:"type"`
	Name     string   `yaml:"name"`
	FullName string   `yaml:"fullName"`
	Obsolete flexBool `yaml:"isObsolete"`
}

// flexBool accepts both YAML booleans and the quoted string forms some
// page emitters produce ("true", "False").
type flexBool bool

// UnmarshalYAML implements custom YAML unmarshaling for flexBool.
func (b *flexBool) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected boolean scalar, got %v", node.Kind)
	}

	var v bool
	if err := node.Decode(&v); err == nil {
		*b = flexBool(v)
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}

	*b = flexBool(parsed)

	return nil
}

// parsePage parses one member page. An empty document yields an empty
// page. With strict set, unknown fields are rejected instead of ignored.
func parsePage(data []byte, strict bool) (page, error) {
	var p page

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)

	err := dec.Decode(&p)
	if errors.Is(err, io.EOF) {
		return page{}, nil
	}

	if err != nil {
		return page{}, err
	}

	return p, nil
}

// toMember validates a raw record and converts it to a Member.
func (r record) toMember(file string) (*Member, error) {
	if r.UID == "" {
		return nil, errors.New("member record has no uid")
	}

	kind, err := ParseKind(r.Type)
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", r.UID, err)
	}

	name := r.Name
	if name == "" {
		name = r.FullName
	}

	if name == "" {
		name = r.UID
	}

	return &Member{
		UID:       r.UID,
		ParentUID: r.Parent,
		Kind:      kind,
		Name:      name,
		Obsolete:  bool(r.Obsolete),
		File:      file,
	}, nil
}
