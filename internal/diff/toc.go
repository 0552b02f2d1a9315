package diff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Lines inserted into the TOC, directly after its first line.
const (
	tocEntryName = "- name: Changes"
	tocEntryHref = "  href: changes.md"
)

// PatchTOC links the change report from the new release's table of
// contents by inserting a Changes entry after the first line. The TOC
// is treated as line-oriented text, not parsed as YAML: a positional
// insert must leave every other byte untouched.
//
// Patching an already patched TOC is a no-op, so re-running the tool
// over the same release is safe.
func PatchTOC(newDir string) error {
	path := filepath.Join(newDir, tocRelPath)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading toc %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return fmt.Errorf("toc %s: expected at least two lines, got %d", path, len(lines))
	}

	if strings.Contains(lines[1], "Changes") {
		return nil
	}

	patched := make([]string, 0, len(lines)+2)
	patched = append(patched, lines[0], tocEntryName, tocEntryHref)
	patched = append(patched, lines[1:]...)

	return writeFile(path, []byte(strings.Join(patched, "\n")))
}
