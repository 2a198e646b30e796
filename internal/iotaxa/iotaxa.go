// Package iotaxa reads taxa from CSV or SFGA files and builds the
// classification tree out of them.
package iotaxa

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnradial/internal/iocache"
	"github.com/gnames/gnradial/pkg/config"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/taxon"
)

// Supported input formats.
const (
	FormatCSV  = "csv"
	FormatSFGA = "sfga"
)

// DetectFormat returns the format set in the config, or guesses it from
// the file extension.
func DetectFormat(path, format string) (string, error) {
	if format != "" {
		format = strings.ToLower(format)
		if format != FormatCSV && format != FormatSFGA {
			return "", DataFormatError(path, format)
		}
		return format, nil
	}

	if isArchive(path) {
		return FormatSFGA, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".sqlite", ".sqlite3", ".db", ".sfga":
		return FormatSFGA, nil
	}
	return "", DataFormatError(path, ext)
}

// Rows reads raw rows from the configured data file. SFGA archives
// (.sqlite.zip, .sql.zip, .sql) are extracted to the cache directory
// first. SFGA rows are cached when cache is not nil.
func Rows(
	ctx context.Context,
	cfg *config.Config,
	cache *iocache.Cache,
) ([]map[string]string, error) {
	path := cfg.Data.Path
	if path == "" {
		return nil, NoDataPathError()
	}

	format, err := DetectFormat(path, cfg.Data.Format)
	if err != nil {
		return nil, err
	}

	if format == FormatCSV {
		return readCSV(path)
	}

	var key string
	if cache != nil {
		key, err = cache.Key(path)
		if err == nil {
			if rows, ok := cache.Get(key); ok {
				slog.Info("Using cached SFGA rows", "path", path, "key", key)
				return rows, nil
			}
		}
	}

	dbPath := path
	if isArchive(path) {
		dbPath, err = extractSFGA(path, archiveDir(cfg.HomeDir))
		if err != nil {
			return nil, err
		}
	}

	db, err := openSFGA(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	r := &sfgaReader{
		path:     path,
		db:       db,
		jobs:     cfg.JobsNumber,
		rootName: cfg.View.RootName,
		progress: cache != nil,
	}
	rows, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err = cache.Put(key, rows); err != nil {
			slog.Warn("Cannot cache SFGA rows", "error", err)
		}
	}
	return rows, nil
}

// Load reads the configured data file and builds the tree.
func Load(
	ctx context.Context,
	cfg *config.Config,
	cache *iocache.Cache,
) (*hierarchy.Tree, error) {
	start := time.Now()

	rows, err := Rows(ctx, cfg, cache)
	if err != nil {
		return nil, err
	}

	records, err := taxon.Load(rows)
	if err != nil {
		return nil, err
	}

	tree, err := hierarchy.Build(records)
	if err != nil {
		return nil, err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Classification loaded",
		"path", cfg.Data.Path,
		"taxa", tree.Len(),
		"root", tree.Root().Name,
		"duration", dur,
	)
	gn.Info("Loaded <em>%s</em> taxa in %s",
		humanize.Comma(int64(tree.Len())), dur)
	return tree, nil
}
