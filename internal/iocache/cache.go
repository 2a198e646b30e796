// Package iocache keeps taxon rows read from SFGA files in the cache
// directory, so parsing of scientific names happens once per file
// version.
package iocache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
)

const ext = ".gob"

// Cache stores GOB-encoded rows, one file per input file version.
type Cache struct {
	dir string
	enc gnfmt.Encoder
}

// New creates a cache at dir. The directory is created if it does not
// exist.
func New(dir string) (*Cache, error) {
	err := gnsys.MakeDir(dir)
	if err != nil {
		slog.Error("Cannot create cache directory", "error", err, "dir", dir)
		return nil, CacheError(dir, err)
	}
	return &Cache{dir: dir, enc: gnfmt.GNgob{}}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Key returns a name-based UUID of the absolute path, size and
// modification time of a file. A changed file gets a new key.
func (c *Cache) Key(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	s := fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())
	return gnuuid.New(s).String(), nil
}

// Get returns cached rows. The second value is false if there is no
// usable entry for the key.
func (c *Cache) Get(key string) ([]map[string]string, bool) {
	bs, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	var rows []map[string]string
	err = c.enc.Decode(bs, &rows)
	if err != nil {
		slog.Warn("Cannot decode cached rows", "error", err, "key", key)
		return nil, false
	}
	return rows, true
}

// Put stores rows under the key.
func (c *Cache) Put(key string, rows []map[string]string) error {
	bs, err := c.enc.Encode(rows)
	if err != nil {
		slog.Error("Cannot encode rows", "error", err, "key", key)
		return CacheError(c.dir, err)
	}

	err = os.WriteFile(c.path(key), bs, 0644)
	if err != nil {
		slog.Error("Cannot write cache file", "error", err, "key", key)
		return CacheError(c.dir, err)
	}
	return nil
}

// Clear removes all entries.
func (c *Cache) Clear() error {
	err := gnsys.CleanDir(c.dir)
	if err != nil {
		slog.Error("Cannot clean cache directory", "error", err, "dir", c.dir)
		return CacheError(c.dir, err)
	}
	slog.Info("Cache cleaned up", "dir", c.dir)
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+ext)
}
