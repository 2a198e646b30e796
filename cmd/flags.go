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
	"fmt"
	"strings"

	"github.com/gnames/gnradial/pkg/config"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/selector"
	"github.com/spf13/cobra"
)

// noCache disables the SFGA rows cache.
var noCache bool

// dataFlags are persistent flags that tell where taxa come from.
type dataFlags struct {
	path   string
	format string
	jobs   int
}

func (f *dataFlags) add(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.path, "data", "d", "",
		"path to a CSV or SFGA file with taxa")
	pf.StringVar(&f.format, "format", "",
		"input format: csv or sfga (default: by file extension)")
	pf.IntVarP(&f.jobs, "jobs", "j", 0,
		"number of workers parsing SFGA names")
	pf.BoolVar(&noCache, "no-cache", false,
		"do not use cached SFGA data")
}

// options returns config options for flags set by the user.
func (f *dataFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()
	if fs.Changed("data") {
		res = append(res, config.OptDataPath(f.path))
	}
	if fs.Changed("format") {
		res = append(res, config.OptDataFormat(f.format))
	}
	if fs.Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	return res
}

// selectFlags choose the display root.
type selectFlags struct {
	common string
	rank   string
	name   string
	drill  []string
}

func (f *selectFlags) add(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.common, "common", "c", "",
		"find the root by a common name (fuzzy)")
	fs.StringVarP(&f.rank, "rank", "r", "",
		"rank of the root taxon; without --name the first name of the rank")
	fs.StringVarP(&f.name, "name", "n", "",
		"scientific name of the root taxon")
	fs.StringSliceVar(&f.drill, "drill", nil,
		"names of taxa to drill down to, one after another")
}

func (f *selectFlags) choice() (selector.Choice, error) {
	res := selector.Choice{
		Common: strings.TrimSpace(f.common),
		Name:   strings.TrimSpace(f.name),
	}
	if f.rank != "" {
		r, ok := rank.Parse(f.rank)
		if !ok {
			return res, rank.UnknownRankError(f.rank)
		}
		res.Rank = r
	}
	return res, nil
}

// viewFlags override view settings of the config.
type viewFlags struct {
	budget          int
	labelLimit      int
	innerLabelLimit int
	outerRadius     int
	width           int
	height          int
}

func (f *viewFlags) add(cmd *cobra.Command, withSize bool) {
	fs := cmd.Flags()
	fs.IntVarP(&f.budget, "budget", "b", 0,
		"approximate number of taxa in a picture")
	fs.IntVar(&f.labelLimit, "label-limit", 0,
		"hide all labels when there are more taxa")
	fs.IntVar(&f.innerLabelLimit, "inner-label-limit", 0,
		"hide labels of non-species when there are more taxa")
	fs.IntVar(&f.outerRadius, "radius", 0,
		"radius of the outermost ring")
	if withSize {
		fs.IntVar(&f.width, "width", 0, "width of the picture")
		fs.IntVar(&f.height, "height", 0, "height of the picture")
	}
}

func (f *viewFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()
	ints := []struct {
		flag string
		val  int
		opt  func(int) config.Option
	}{
		{"budget", f.budget, config.OptViewBudget},
		{"label-limit", f.labelLimit, config.OptViewLabelLimit},
		{"inner-label-limit", f.innerLabelLimit, config.OptViewInnerLabelLimit},
		{"radius", f.outerRadius, config.OptViewOuterRadius},
		{"width", f.width, config.OptViewWidth},
		{"height", f.height, config.OptViewHeight},
	}
	for _, v := range ints {
		if fs.Lookup(v.flag) != nil && fs.Changed(v.flag) {
			res = append(res, v.opt(v.val))
		}
	}
	return res
}

// fileName makes a file name out of a taxon name.
func fileName(name, suffix string) string {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "gnradial"
	}
	return fmt.Sprintf("%s%s.svg", name, suffix)
}
