package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds all findings from loading and validating one catalog.
type Diagnostics struct {
	Errors []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Code is a unique identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// UID identifies which member this relates to (if any).
	UID string
	// File identifies the member page this relates to (if any).
	File string
}

// String formats the finding for user-facing output.
func (d Diagnostic) String() string {
	var b strings.Builder

	b.WriteString(d.Code)

	if d.UID != "" {
		fmt.Fprintf(&b, " [%s]", d.UID)
	}

	if d.File != "" {
		fmt.Fprintf(&b, " (%s)", d.File)
	}

	b.WriteString(": ")
	b.WriteString(d.Message)

	return b.String()
}

// AddError adds an error finding.
func (d *Diagnostics) AddError(code, message, uid, file string) {
	d.Errors = append(d.Errors, Diagnostic{
		Code:    code,
		Message: message,
		UID:     uid,
		File:    file,
	})
}

// HasErrors returns true if there are any findings.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
}

// Error returns a combined error from all findings, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
