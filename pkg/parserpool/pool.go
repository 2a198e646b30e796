// Package parserpool provides a pool of gnparser instances that reduce
// scientific names to their canonical form.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Pool shares a fixed number of parsers between goroutines.
type Pool interface {
	// Canonical returns the simple canonical form of a scientific name,
	// for example "Homo sapiens" for "Homo sapiens Linnaeus, 1758". The
	// second value is false when the name could not be parsed.
	// It is safe for concurrent use.
	Canonical(name string) (string, bool)

	// Size returns the number of parsers in the pool.
	Size() int

	// Close releases the parsers. The pool must not be used afterwards.
	Close()
}

type pool struct {
	ch   chan gnparser.GNparser
	size int
}

// NewPool creates a pool of parsers for the given nomenclatural code.
// If jobsNum is 0 or less, it defaults to runtime.NumCPU().
//
// Botanical code is a good default for classification data: it keeps
// "Aus (Bus)" as genus Aus, while zoological code reads Bus as the
// subgenus name.
func NewPool(jobsNum int, code nomcode.Code) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}
	cfg := gnparser.NewConfig(gnparser.OptCode(code))
	return &pool{
		ch:   gnparser.NewPool(cfg, size),
		size: size,
	}
}

func (p *pool) Canonical(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}

	parser := <-p.ch
	res := parser.ParseName(name)
	p.ch <- parser

	if !res.Parsed || res.Canonical == nil {
		return "", false
	}
	return res.Canonical.Simple, true
}

func (p *pool) Size() int {
	return p.size
}

func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
