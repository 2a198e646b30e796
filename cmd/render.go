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
	"io"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/internal/iosvg"
	"github.com/spf13/cobra"
)

const pieSize = 1000

// getRenderCmd returns the render command.
func getRenderCmd() *cobra.Command {
	var (
		sel    selectFlags
		vf     viewFlags
		output string
		pie    string
	)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the radial tree as SVG",
		Long: `Draw the radial tree of a taxon as an SVG file.

The root of the picture is chosen by a common name (--common), by a
scientific name with an optional rank (--name, --rank), or comes from
view.root_name of the config. Then --drill moves down the tree.

When the subtree is too big, whole ranks are hidden starting from
species until the number of taxa fits the budget (--budget).

The distribution of species among children of the root is drawn as a
separate pie chart with --pie.

Examples:
  gnradial render -d chordata.csv
  gnradial render -d chordata.csv -n Mammalia -r class -o mammals.svg
  gnradial render -d chordata.csv --drill Mammalia,Primates --pie pie.svg
  gnradial render -d chordata.csv -c "cats" --budget 300`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRender(cmd, sel, vf, output, pie)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sel.add(renderCmd)
	vf.add(renderCmd, true)
	renderCmd.Flags().StringVarP(&output, "output", "o", "",
		"SVG file for the tree (default: <root name>.svg)")
	renderCmd.Flags().StringVarP(&pie, "pie", "p", "",
		"SVG file for the species distribution chart")

	return renderCmd
}

func runRender(
	cmd *cobra.Command,
	sel selectFlags,
	vf viewFlags,
	output, pie string,
) error {
	cfg.Update(vf.options(cmd))

	v, err := loadViewer(context.Background(), sel)
	if err != nil {
		return err
	}

	f := v.Frame()
	if output == "" {
		output = fileName(f.Root.Name, "")
	}

	opts := iosvg.Options{Width: cfg.View.Width, Height: cfg.View.Height}
	err = iosvg.Save(output, func(w io.Writer) error {
		return iosvg.Tree(w, f, opts)
	})
	if err != nil {
		return err
	}
	slog.Info("Tree saved", "file", output, "taxa", len(f.Nodes))
	gn.Info("Saved <em>%s</em> (%d taxa shown)", output, len(f.Nodes))

	if pie == "" {
		return nil
	}
	err = iosvg.Save(pie, func(w io.Writer) error {
		return iosvg.Pie(w, f, pieSize)
	})
	if err != nil {
		return err
	}
	slog.Info("Pie chart saved", "file", pie)
	gn.Info("Saved <em>%s</em>", pie)
	return nil
}
