// Package reader turns statement export files into raw grids, one per
// sheet, dispatching on file extension.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrato-dev/extrato/internal/model"
)

// ErrUnsupportedFormat marks a file extension no opener handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Sheet is one tabular section of a source file.
type Sheet struct {
	Name string
	Grid model.Grid
}

// Opener reads one physical format into raw grids.
type Opener interface {
	Open(path string) ([]Sheet, error)
	Extensions() []string
}

// Registry maps file extensions to openers.
type Registry struct {
	openers map[string]Opener
}

// NewRegistry creates an empty opener registry.
func NewRegistry() *Registry {
	return &Registry{openers: make(map[string]Opener)}
}

// Register adds an opener. Panics on a duplicate extension.
func (r *Registry) Register(o Opener) {
	for _, ext := range o.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.openers[key]; ok {
			panic("duplicate opener extension: " + key)
		}
		r.openers[key] = o
	}
}

// Open reads every sheet of the file at path.
func (r *Registry) Open(path string) ([]Sheet, error) {
	ext := strings.ToLower(filepath.Ext(path))
	o, ok := r.openers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return o.Open(path)
}

// DefaultRegistry returns a registry with all built-in openers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXOpener{})
	r.Register(&XLSOpener{})
	r.Register(&DelimitedOpener{})
	return r
}
