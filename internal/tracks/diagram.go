package tracks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Diagram is a reference entity-relationship diagram.
type Diagram struct {
	Name string
	// Path is the image file.
	Path string
	// Text is a terminal rendering of the diagram, when one exists.
	Text string
}

// LoadDiagram locates diagram name under dir. The image itself cannot be
// drawn in a terminal, so a "<name>.txt" rendering next to it is read when
// present.
func LoadDiagram(dir, name string) (Diagram, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return Diagram{}, fmt.Errorf("invalid diagram name %q", name)
	}
	d := Diagram{
		Name: name,
		Path: filepath.Join(dir, name+".png"),
	}
	if _, err := os.Stat(d.Path); err != nil {
		return Diagram{}, fmt.Errorf("diagram %s: %w", name, err)
	}

	text, err := os.ReadFile(filepath.Join(dir, name+".txt"))
	switch {
	case err == nil:
		d.Text = strings.TrimRight(string(text), "\n")
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Diagram{}, fmt.Errorf("diagram %s: %w", name, err)
	}
	return d, nil
}
