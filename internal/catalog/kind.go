package catalog

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a documented API member.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNamespace
	KindClass
	KindStruct
	KindInterface
	KindEnum
	KindDelegate
	KindConstructor
	KindMethod
	KindProperty
	KindOperator
	KindField
)

// kindNames maps the type strings found in member pages to kinds.
var kindNames = map[string]Kind{
	"namespace":   KindNamespace,
	"class":       KindClass,
	"struct":      KindStruct,
	"interface":   KindInterface,
	"enum":        KindEnum,
	"delegate":    KindDelegate,
	"constructor": KindConstructor,
	"method":      KindMethod,
	"property":    KindProperty,
	"operator":    KindOperator,
	"field":       KindField,
}

// ParseKind maps a member page type string to a Kind.
// Matching is case-insensitive; documentation toolchains disagree on casing.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown member kind %q", s)
	}

	return k, nil
}

// IsTypeMember returns true if the kind belongs to a containing type
// (constructor, method, property, operator, field) rather than being a
// namespace or a type itself.
func (k Kind) IsTypeMember() bool {
	switch k {
	default:
		return false
	case KindConstructor, KindMethod, KindProperty, KindOperator, KindField:
		return true
	}
}
