package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commentPrefix marks lines the parser ignores. Hex colors start with '#',
// so comments can't.
const commentPrefix = ";"

// Editor handles editor resolution and invocation.
type Editor struct {
	configured string
}

// NewEditor creates a new Editor. configured is the palette file's editor
// setting and may be empty.
func NewEditor(configured string) *Editor {
	return &Editor{configured: configured}
}

// Resolve returns the editor command to use.
// Order: palette file > $EDITOR > vim
func (e *Editor) Resolve() string {
	// 1. Palette file
	if e.configured != "" {
		return e.configured
	}

	// 2. Environment variable
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// 3. Default
	return "vim"
}

// Edit opens the editor with the given content and returns the edited content.
func (e *Editor) Edit(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "hue-edit-*.txt")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	// Allow "code --wait" style commands
	parts := strings.Fields(e.Resolve())
	if len(parts) == 0 {
		return "", fmt.Errorf("no editor configured")
	}
	cmd := exec.Command(parts[0], append(parts[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %q failed: %w", parts[0], err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", err
	}

	return string(edited), nil
}

// EditColors round-trips a palette's colors through the editor, one per line.
func (e *Editor) EditColors(name string, colors []string) ([]string, error) {
	edited, err := e.Edit(FormatColors(name, colors))
	if err != nil {
		return nil, err
	}
	return ParseColors(edited), nil
}

// FormatColors renders colors one per line under a comment header.
func FormatColors(name string, colors []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Colors for palette %q, one per line.\n", commentPrefix, name)
	fmt.Fprintf(&b, "%s Hex (#rrggbb), CSS names and code letters (bgrmyck) are accepted.\n", commentPrefix)
	for _, c := range colors {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseColors reads one color per line, skipping blanks and comments.
func ParseColors(content string) []string {
	var colors []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		colors = append(colors, line)
	}
	return colors
}
