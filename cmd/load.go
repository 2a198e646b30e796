/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/gnames/gnradial/internal/iocache"
	"github.com/gnames/gnradial/internal/iotaxa"
	app "github.com/gnames/gnradial/pkg"
	"github.com/gnames/gnradial/pkg/config"
	"github.com/gnames/gnradial/pkg/hierarchy"
)

// loadTree reads taxa from the configured file.
func loadTree(ctx context.Context) (*hierarchy.Tree, error) {
	var cache *iocache.Cache
	if !noCache {
		var err error
		dir := filepath.Join(config.CacheDir(cfg.HomeDir), "sfga")
		cache, err = iocache.New(dir)
		if err != nil {
			slog.Warn("Continue without cache", "error", err)
			cache = nil
		}
	}

	return iotaxa.Load(ctx, cfg, cache)
}

// loadViewer reads taxa and moves the display root as the flags ask.
func loadViewer(ctx context.Context, sel selectFlags) (*app.Viewer, error) {
	tree, err := loadTree(ctx)
	if err != nil {
		return nil, err
	}

	v := app.New(cfg, tree)

	choice, err := sel.choice()
	if err != nil {
		return nil, err
	}
	if !choice.IsEmpty() {
		if err = v.Select(choice); err != nil {
			return nil, err
		}
	}

	for _, name := range sel.drill {
		n, err := tree.ByName(name)
		if err != nil {
			return nil, err
		}
		if !v.DrillDown(n.ID) {
			slog.Warn("Drill down did not change the root", "name", name)
		}
	}

	slog.Info("Display root selected", "path", v.State().PathString())
	return v, nil
}
