// Package iconset aggregates a directory of vector icons into a named
// collection of lazily loaded assets.
package iconset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ErrDuplicateIconName is returned when two files in one collection share a stem.
var ErrDuplicateIconName = errors.New("duplicate icon name")

// ReadFunc reads the content of an icon file.
type ReadFunc func(path string) (string, error)

// ReadFrom returns a ReadFunc backed by fs.
func ReadFrom(fs afero.Fs) ReadFunc {
	return func(path string) (string, error) {
		b, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Discover lists the files matching pattern on fs, sorted.
func Discover(fs afero.Fs, pattern string) ([]string, error) {
	paths, err := afero.Glob(fs, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Result is the outcome of one asynchronous load.
type Result struct {
	Content string
	Err     error
}

// Asset is one icon. Load reads the file on every call; nothing is cached.
type Asset struct {
	Name string `json:"name"`
	Path string `json:"path"`
	read ReadFunc
}

// Load reads the icon content.
func (a Asset) Load() (string, error) {
	content, err := a.read(a.Path)
	if err != nil {
		return "", fmt.Errorf("load icon %q: %w", a.Name, err)
	}
	return content, nil
}

// LoadAsync starts a read and delivers exactly one Result on the returned channel.
// The read cannot be cancelled; callers that lose interest may drop the channel.
func (a Asset) LoadAsync() <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		content, err := a.Load()
		ch <- Result{Content: content, Err: err}
	}()
	return ch
}

// Collection maps icon names to assets.
type Collection map[string]Asset

// Names returns the icon names sorted.
func (c Collection) Names() []string {
	names := lo.Keys(c)
	sort.Strings(names)
	return names
}

// Name derives an icon name from its path: the base name up to the first dot.
func Name(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i >= 0 {
		return base[:i]
	}
	return base
}

// Build creates a collection from paths. Content is not read until an asset is loaded.
func Build(paths []string, read ReadFunc) (Collection, error) {
	c := make(Collection, len(paths))
	for _, p := range paths {
		name := Name(p)
		if name == "" {
			return nil, fmt.Errorf("icon %q has an empty name", p)
		}
		if prev, dup := c[name]; dup {
			return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateIconName, name, prev.Path, p)
		}
		c[name] = Asset{Name: name, Path: p, read: read}
	}
	return c, nil
}

// Registry holds named collections.
type Registry map[string]Collection

// Add registers a collection under name. Names are unique within a registry.
func (r Registry) Add(name string, c Collection) error {
	if _, dup := r[name]; dup {
		return fmt.Errorf("collection %q already registered", name)
	}
	r[name] = c
	return nil
}

// Get resolves "collection:icon".
func (r Registry) Get(ref string) (Asset, bool) {
	collection, name, ok := strings.Cut(ref, ":")
	if !ok {
		return Asset{}, false
	}
	a, ok := r[collection][name]
	return a, ok
}

// Scan discovers the files matching pattern under dir on fs and builds a collection from them.
func Scan(fs afero.Fs, dir, pattern string) (Collection, error) {
	paths, err := Discover(fs, filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	return Build(paths, ReadFrom(fs))
}
