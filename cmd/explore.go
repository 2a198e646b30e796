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
	"fmt"
	"io"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/internal/iosvg"
	"github.com/gnames/gnradial/internal/iotui"
	"github.com/gnames/gnradial/pkg/view"
	"github.com/spf13/cobra"
)

// getExploreCmd returns the explore command.
func getExploreCmd() *cobra.Command {
	var (
		sel    selectFlags
		vf     viewFlags
		outDir string
	)

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the classification in the terminal",
		Long: `Browse the classification in the terminal.

The screen shows the current root with its common name and taxonomic
path, and lists its children with numbers of species.

Keys:
  ↑/↓ or k/j      move between children
  enter           drill down to the highlighted child
  backspace       drill up one rank
  /               search by a common name
  home            go to the top of the classification
  s               save the current radial tree as SVG
  q               quit

Examples:
  gnradial explore -d chordata.csv
  gnradial explore -d 0001-col.sqlite -c mammals --out-dir pictures`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExplore(cmd, sel, vf, outDir)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sel.add(exploreCmd)
	vf.add(exploreCmd, true)
	exploreCmd.Flags().StringVar(&outDir, "out-dir", ".",
		"directory for saved SVG files")

	return exploreCmd
}

func runExplore(
	cmd *cobra.Command,
	sel selectFlags,
	vf viewFlags,
	outDir string,
) error {
	cfg.Update(vf.options(cmd))

	v, err := loadViewer(context.Background(), sel)
	if err != nil {
		return err
	}

	m := iotui.New(v.State(), v.Options(), svgSaver(outDir))
	m, err = iotui.Run(m)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), m.Frame.PathString)
	return nil
}

// svgSaver returns a function that saves frames as SVG files named after
// the display root.
func svgSaver(dir string) iotui.Saver {
	opts := iosvg.Options{Width: cfg.View.Width, Height: cfg.View.Height}
	return func(f view.Frame) (string, error) {
		path := filepath.Join(dir, fileName(f.Root.Name, ""))
		err := iosvg.Save(path, func(w io.Writer) error {
			return iosvg.Tree(w, f, opts)
		})
		return path, err
	}
}
