package iotaxa

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/gnsys"
	"github.com/gnames/gnradial/pkg/config"
	"github.com/sfborg/sflib"
)

// archiveSuffixes are SFGA distribution forms that need extraction
// before they can be opened as SQLite.
var archiveSuffixes = []string{".sqlite.zip", ".sql.zip", ".sql"}

var errNoDbPath = errors.New("no database after extraction")

// isArchive reports whether path is a zipped or SQL-dump SFGA.
func isArchive(path string) bool {
	path = strings.ToLower(path)
	for _, v := range archiveSuffixes {
		if strings.HasSuffix(path, v) {
			return true
		}
	}
	return false
}

// archiveDir returns the directory where SFGA archives are extracted.
func archiveDir(homeDir string) string {
	return filepath.Join(config.CacheDir(homeDir), "archive")
}

// extractSFGA unpacks an SFGA archive into dir and returns the path of
// the resulting SQLite file. The content of dir is replaced.
func extractSFGA(path, dir string) (string, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return "", SFGAReadError(path, err)
	}

	arc := sflib.NewSfga()
	if err := arc.Fetch(path, dir); err != nil {
		return "", SFGAReadError(path, err)
	}

	dbPath := arc.DbPath()
	if dbPath == "" {
		return "", SFGAReadError(path, errNoDbPath)
	}
	slog.Info("SFGA archive extracted", "archive", path, "sqlite", dbPath)
	return dbPath, nil
}
