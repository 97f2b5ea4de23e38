// Package manifest records digests of compiled outputs so unchanged builds can be skipped.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"sync"

	"github.com/metafates/gache"
	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/where"
	"github.com/spf13/afero"
)

// Manifest maps an output path to the SHA-256 of the content last written there.
type Manifest struct {
	cache *gache.Cache[map[string]string]
	mu    sync.Mutex
}

// Open returns a manifest stored at path.
// Nothing is read until the first lookup.
func Open(path string) *Manifest {
	return &Manifest{
		cache: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

var (
	defaultManifest *Manifest
	defaultOnce     sync.Once
)

// Default returns the manifest in the cache directory.
func Default() *Manifest {
	defaultOnce.Do(func() {
		defaultManifest = Open(where.Manifest())
	})

	return defaultManifest
}

// Digest returns the hex encoded SHA-256 of content.
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func normalize(target string) string {
	if abs, err := filepath.Abs(target); err == nil {
		return abs
	}

	return filepath.Clean(target)
}

func (m *Manifest) load() (map[string]string, error) {
	cached, expired, err := m.cache.Get()
	if err != nil {
		return nil, err
	}

	if expired || cached == nil {
		return make(map[string]string), nil
	}

	return cached, nil
}

// Changed reports whether content differs from what was last recorded for target.
// Targets never recorded are always changed.
func (m *Manifest) Changed(target string, content []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return false, err
	}

	digest, ok := entries[normalize(target)]
	return !ok || digest != Digest(content), nil
}

// Record stores the digest of content for target.
func (m *Manifest) Record(target string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return err
	}

	entries[normalize(target)] = Digest(content)
	return m.cache.Set(entries)
}

// Forget removes target from the manifest.
func (m *Manifest) Forget(target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return err
	}

	delete(entries, normalize(target))
	return m.cache.Set(entries)
}

// Entries returns a copy of every recorded digest keyed by absolute path.
func (m *Manifest) Entries() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(entries))
	for k, v := range entries {
		out[k] = v
	}

	return out, nil
}

// Prune drops entries whose output no longer exists and returns how many were removed.
func (m *Manifest) Prune() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.load()
	if err != nil {
		return 0, err
	}

	var pruned int
	for target := range entries {
		exists, err := afero.Exists(filesystem.API(), target)
		if err != nil || exists {
			continue
		}

		delete(entries, target)
		pruned++
	}

	if pruned == 0 {
		return 0, nil
	}

	return pruned, m.cache.Set(entries)
}
