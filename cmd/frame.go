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
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnradial/internal/iofs"
	"github.com/spf13/cobra"
)

// getFrameCmd returns the frame command.
func getFrameCmd() *cobra.Command {
	var (
		sel     selectFlags
		vf      viewFlags
		output  string
		compact bool
	)

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "Print the positioned tree as JSON",
		Long: `Print everything needed to draw the radial tree as JSON.

The frame contains the title block, positioned taxa and links, hidden
ranks, label flags and the species distribution of the root. Taxa have
stable keys, so frames of consecutive navigation steps can be compared.

Examples:
  gnradial frame -d chordata.csv
  gnradial frame -d chordata.csv -n Felidae --compact
  gnradial frame -d chordata.csv --drill Aves -o aves.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runFrame(cmd, sel, vf, output, compact)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	sel.add(frameCmd)
	vf.add(frameCmd, false)
	frameCmd.Flags().StringVarP(&output, "output", "o", "",
		"JSON file (default: standard output)")
	frameCmd.Flags().BoolVar(&compact, "compact", false,
		"print JSON in one line")

	return frameCmd
}

func runFrame(
	cmd *cobra.Command,
	sel selectFlags,
	vf viewFlags,
	output string,
	compact bool,
) error {
	cfg.Update(vf.options(cmd))

	v, err := loadViewer(context.Background(), sel)
	if err != nil {
		return err
	}

	enc := gnfmt.GNjson{Pretty: !compact}
	bs, err := enc.Encode(v.Frame())
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bs))
		return err
	}

	err = os.WriteFile(output, append(bs, '\n'), 0644)
	if err != nil {
		return iofs.WriteFileError(output, err)
	}
	gn.Info("Saved <em>%s</em>", output)
	return nil
}
