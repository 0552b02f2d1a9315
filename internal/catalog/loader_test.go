package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	writePage(t, dir, "api/Foo.yml", `
items:
  - uid: "T:Foo"
    name: Foo
    type: Class
  - uid: "M:Foo.Bar"
    parent: "T:Foo"
    name: Bar
    type: Method
    isObsolete: true
`)
	// Forward reference: the namespace page comes later in walk order
	// than the type that names it as parent.
	writePage(t, dir, "api/Bar.yml", `
items:
  - uid: "T:Sub.Widget"
    parent: "N:Sub"
    fullName: Sub.Widget
    type: Struct
`)
	writePage(t, dir, "api/Sub.yml", `
items:
  - uid: "N:Sub"
    name: Sub
    type: Namespace
`)
	// Navigation file, excluded by exact name.
	writePage(t, dir, "api/toc.yml", `
items:
  - uid: "not-a-member"
`)
	// Non-YAML files are not member pages.
	writePage(t, dir, "api/readme.txt", "hello")

	cat, err := Load(dir, "2.0", Config{})
	require.NoError(t, err)
	require.NotNil(t, cat)

	assert.Equal(t, "2.0", cat.Version)
	require.Len(t, cat.Members, 4)
	require.Len(t, cat.ByUID, 4)

	// Index round trip: the uid map is bijective with the member list.
	for _, m := range cat.Members {
		assert.Same(t, m, cat.ByUID[m.UID])
	}

	// Resolution completeness.
	for _, m := range cat.Members {
		if m.ParentUID == "" {
			assert.Nil(t, m.Parent())
			continue
		}

		require.NotNil(t, m.Parent(), m.UID)
		assert.Same(t, cat.ByUID[m.ParentUID], m.Parent())
	}

	bar := cat.ByUID["M:Foo.Bar"]
	require.NotNil(t, bar)
	assert.Equal(t, KindMethod, bar.Kind)
	assert.True(t, bar.Obsolete)
	assert.Equal(t, "Bar", bar.Name)
	assert.Same(t, cat.ByUID["T:Foo"], bar.Parent())

	// Display name falls back to fullName when name is absent.
	widget := cat.ByUID["T:Sub.Widget"]
	require.NotNil(t, widget)
	assert.Equal(t, "Sub.Widget", widget.Name)
}

func TestLoadDuplicateUID(t *testing.T) {
	dir := t.TempDir()

	writePage(t, dir, "a.yml", `
items:
  - uid: "T:Foo"
    type: class
`)
	writePage(t, dir, "b.yml", `
items:
  - uid: "T:Foo"
    type: class
`)

	_, err := Load(dir, "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_uid")
	assert.Contains(t, err.Error(), "T:Foo")
}

func TestLoadUnresolvedParent(t *testing.T) {
	dir := t.TempDir()

	writePage(t, dir, "a.yml", `
items:
  - uid: "M:Foo.Bar"
    parent: "T:Foo"
    type: method
`)

	_, err := Load(dir, "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved_parent")
	assert.Contains(t, err.Error(), `"T:Foo"`)
}

func TestLoadReportsAllFindings(t *testing.T) {
	dir := t.TempDir()

	writePage(t, dir, "a.yml", `
items:
  - uid: "T:Foo"
    type: class
  - uid: "T:Foo"
    type: class
  - uid: "M:Gone.Bar"
    parent: "T:Gone"
    type: method
`)

	_, err := Load(dir, "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_uid")
	assert.Contains(t, err.Error(), "unresolved_parent")
}

func TestLoadMalformedPage(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "broken.yml", "items: [whoops: {")

	_, err := Load(dir, "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing member page")
}

func TestLoadUnknownKind(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.yml", `
items:
  - uid: "T:Foo"
    type: widget
`)

	_, err := Load(dir, "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown member kind")
}

func TestLoadMissingUID(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.yml", `
items:
  - name: Foo
    type: class
`)

	_, err := Load(dir, "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no uid")
}

func TestLoadEmptyPage(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "empty.yml", "")
	writePage(t, dir, "a.yml", `
items:
  - uid: "T:Foo"
    type: class
`)

	cat, err := Load(dir, "1.0", Config{})
	require.NoError(t, err)
	assert.Len(t, cat.Members, 1)
}

func TestLoadStrict(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.yml", `
items:
  - uid: "T:Foo"
    type: class
    summary: some prose the reader ignores
`)

	// Unknown fields are ignored by default (forward compatibility).
	cat, err := Load(dir, "1.0", Config{})
	require.NoError(t, err)
	assert.Len(t, cat.Members, 1)

	// Strict mode rejects them.
	_, err = Load(dir, "1.0", Config{Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing member page")
}

func TestLoadObsoleteStringForm(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.yml", `
items:
  - uid: "T:Foo"
    type: class
    isObsolete: "True"
`)

	cat, err := Load(dir, "1.0", Config{})
	require.NoError(t, err)
	assert.True(t, cat.ByUID["T:Foo"].Obsolete)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), "1.0", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning release directory")
}
