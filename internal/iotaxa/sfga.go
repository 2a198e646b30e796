package iotaxa

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnradial/pkg/parserpool"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/taxon"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// Extra columns added to SFGA rows.
const (
	colStatus   = "status"
	colFullName = "full_name"
)

// nameUsage represents a row from the SFGA taxon/name join query.
type nameUsage struct {
	id             string
	parentID       string
	status         string
	scientificName string
	rank           string
}

// usage is a parsed nameUsage.
type usage struct {
	nameUsage
	canonical string
	rank      rank.Rank
	known     bool
}

// sfgaReader converts an SFGA file into taxon rows.
type sfgaReader struct {
	path     string
	db       *sql.DB
	jobs     int
	rootName string
	progress bool
}

func openSFGA(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, SFGAReadError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, SFGAReadError(path, err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, SFGAReadError(path, err)
	}
	return db, nil
}

// read returns classification of accepted taxa from an SFGA file.
//
// Only taxa with ranks known to the rank model become rows. Taxa with
// other ranks (kingdom, subclass in some datasets, infraspecies) are
// skipped and their children attach to the nearest kept ancestor. If
// several top-level taxa remain, only the one containing rootName is
// kept.
func (r *sfgaReader) read(ctx context.Context) ([]map[string]string, error) {
	usages, err := r.loadUsages(ctx)
	if err != nil {
		return nil, SFGAReadError(r.path, err)
	}

	vern, err := r.loadVernaculars(ctx)
	if err != nil {
		return nil, SFGAReadError(r.path, err)
	}

	areas, err := r.loadAreas(ctx)
	if err != nil {
		return nil, SFGAReadError(r.path, err)
	}

	rows := assembleRows(usages, vern, areas)
	if len(rows) == 0 {
		return nil, SFGAReadError(r.path, errNoTaxa)
	}
	return pruneRoots(rows, r.rootName), nil
}

// loadUsages parses scientific names concurrently and returns usages by
// taxon id.
func (r *sfgaReader) loadUsages(ctx context.Context) (map[string]*usage, error) {
	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM taxon").Scan(&total)
	if err != nil {
		return nil, err
	}

	pool := parserpool.NewPool(r.jobs, nomcode.Botanical)
	defer pool.Close()

	chIn := make(chan nameUsage)
	chOut := make(chan *usage)

	g, ctx := errgroup.WithContext(ctx)
	var wg sync.WaitGroup

	for range pool.Size() {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return usageWorker(ctx, pool, chIn, chOut)
		})
	}

	res := make(map[string]*usage, total)
	g.Go(func() error {
		return r.collectUsages(ctx, total, chOut, res)
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	err = r.loadNameUsage(ctx, chIn)
	close(chIn)
	if err != nil {
		_ = g.Wait()
		return nil, err
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *sfgaReader) loadNameUsage(
	ctx context.Context,
	chIn chan<- nameUsage,
) error {
	query := `
		SELECT t.col__id, IFNULL(t.col__parent_id, ''),
		       IFNULL(t.col__status_id, ''),
		       n.col__scientific_name, IFNULL(n.col__rank_id, '')
		FROM taxon t
		JOIN name n ON n.col__id = t.col__name_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var nu nameUsage
		err = rows.Scan(
			&nu.id,
			&nu.parentID,
			&nu.status,
			&nu.scientificName,
			&nu.rank,
		)
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chIn <- nu:
		}
	}

	return rows.Err()
}

func usageWorker(
	ctx context.Context,
	pool parserpool.Pool,
	chIn <-chan nameUsage,
	chOut chan<- *usage,
) error {
	for nu := range chIn {
		u := processUsage(pool, nu)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- u:
		}
	}
	return nil
}

// processUsage cleans up one name usage. Names that the parser cannot
// handle keep their verbatim form.
func processUsage(pool parserpool.Pool, nu nameUsage) *usage {
	nu.id = strings.TrimSpace(nu.id)
	nu.parentID = strings.TrimSpace(nu.parentID)
	nu.scientificName = gnlib.FixUtf8(strings.TrimSpace(nu.scientificName))

	// Handle self-referencing parent IDs
	if nu.parentID == nu.id {
		nu.parentID = ""
	}

	name, ok := pool.Canonical(nu.scientificName)
	if !ok {
		name = nu.scientificName
	}

	rnk, known := rank.Parse(nu.rank)
	return &usage{
		nameUsage: nu,
		canonical: name,
		rank:      rnk,
		known:     known,
	}
}

func (r *sfgaReader) collectUsages(
	ctx context.Context,
	total int,
	chOut <-chan *usage,
	res map[string]*usage,
) error {
	var bar *pb.ProgressBar
	if r.progress {
		bar = newProgressBar(total, "Reading taxa: ")
		defer bar.Finish()
	}

	for u := range chOut {
		if bar != nil {
			bar.Increment()
		}
		if u.id == "" {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			res[u.id] = u
		}
	}
	return nil
}

// loadVernaculars returns one common name per taxon. English names win
// over names in other languages.
func (r *sfgaReader) loadVernaculars(ctx context.Context) (map[string]string, error) {
	res := make(map[string]string)
	exists, err := r.tableExists(ctx, "vernacular")
	if err != nil || !exists {
		if err == nil {
			slog.Info("No vernacular table in SFGA, skipping common names")
		}
		return res, err
	}

	query := `
		SELECT col__taxon_id, col__name, IFNULL(col__language, '')
		FROM vernacular
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	english := make(map[string]bool)
	for rows.Next() {
		var id, name, lang string
		if err = rows.Scan(&id, &name, &lang); err != nil {
			return nil, err
		}
		name = gnlib.FixUtf8(strings.TrimSpace(name))
		if name == "" || english[id] {
			continue
		}
		isEng := isEnglish(lang)
		if _, ok := res[id]; ok && !isEng {
			continue
		}
		res[id] = name
		english[id] = isEng
	}
	return res, rows.Err()
}

func isEnglish(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en", "eng", "english":
		return true
	}
	return false
}

// loadAreas returns distribution areas joined by comma for every taxon.
func (r *sfgaReader) loadAreas(ctx context.Context) (map[string]string, error) {
	res := make(map[string]string)
	exists, err := r.tableExists(ctx, "distribution")
	if err != nil || !exists {
		return res, err
	}

	query := `
		SELECT col__taxon_id, IFNULL(col__area, '')
		FROM distribution
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make(map[string][]string)
	for rows.Next() {
		var id, area string
		if err = rows.Scan(&id, &area); err != nil {
			return nil, err
		}
		area = gnlib.FixUtf8(strings.TrimSpace(area))
		if area == "" || slices.Contains(areas[id], area) {
			continue
		}
		areas[id] = append(areas[id], area)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for k, v := range areas {
		res[k] = strings.Join(v, ", ")
	}
	return res, nil
}

func (r *sfgaReader) tableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) > 0 FROM sqlite_master
		WHERE type='table' AND name=?
	`, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s table: %w", table, err)
	}
	return exists, nil
}

// assembleRows turns usages with known ranks into taxon rows. Parents
// with unknown ranks are skipped over. Rows are sorted by id.
func assembleRows(
	usages map[string]*usage,
	vern, areas map[string]string,
) []map[string]string {
	ids := make([]string, 0, len(usages))
	for id, u := range usages {
		if u.known {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	res := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		u := usages[id]
		row := map[string]string{
			taxon.ColID:     u.id,
			taxon.ColParent: knownParent(u, usages),
			taxon.ColName:   u.canonical,
			taxon.ColRank:   u.rank.String(),
		}
		if v := vern[id]; v != "" {
			row[taxon.ColCommonName] = v
		}
		if a := areas[id]; a != "" {
			row[taxon.ColArea] = a
		}
		if u.status != "" {
			row[colStatus] = u.status
		}
		if u.scientificName != u.canonical {
			row[colFullName] = u.scientificName
		}
		res = append(res, row)
	}
	return res
}

// knownParent returns the id of the nearest ancestor with a known rank.
// Broken parent references are kept, so they are reported while the
// tree is built.
func knownParent(u *usage, usages map[string]*usage) string {
	pid := u.parentID
	for range len(usages) {
		if pid == "" {
			return ""
		}
		p, ok := usages[pid]
		if !ok || p.known {
			return pid
		}
		pid = p.parentID
	}
	// a cycle of unknown ranks
	return ""
}

// pruneRoots keeps only the tree that contains a taxon called rootName
// when rows describe more than one tree.
func pruneRoots(rows []map[string]string, rootName string) []map[string]string {
	byID := make(map[string]map[string]string, len(rows))
	var roots int
	for _, row := range rows {
		byID[row[taxon.ColID]] = row
		if row[taxon.ColParent] == "" {
			roots++
		}
	}
	if roots < 2 || rootName == "" {
		return rows
	}

	top := func(row map[string]string) string {
		for range len(rows) {
			p, ok := byID[row[taxon.ColParent]]
			if !ok {
				break
			}
			row = p
		}
		return row[taxon.ColID]
	}

	var topID string
	for _, row := range rows {
		if row[taxon.ColName] == rootName {
			topID = top(row)
			break
		}
	}
	if topID == "" {
		return rows
	}

	res := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		if top(row) == topID {
			res = append(res, row)
		}
	}
	slog.Info("Several classification roots found, keeping one",
		"root", byID[topID][taxon.ColName], "roots", roots)
	return res
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}

var errNoTaxa = errors.New("no taxa with known ranks")
