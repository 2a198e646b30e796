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
	"errors"
	"fmt"
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/gnradial/pkg/hierarchy"
	"github.com/gnames/gnradial/pkg/rank"
	"github.com/gnames/gnradial/pkg/selector"
	"github.com/spf13/cobra"
)

// getLineageCmd returns the lineage command.
func getLineageCmd() *cobra.Command {
	var rnk string

	lineageCmd := &cobra.Command{
		Use:   "lineage [names...]",
		Short: "Print classification paths of taxa",
		Long: `Print classification of taxa from the top of the tree.

For every name three pipe-delimited lines are printed: names, ranks and
ids. Without names, --rank lists all scientific names of that rank, which
helps to pick a root for other commands.

Examples:
  gnradial lineage -d chordata.csv "Homo sapiens" Felidae
  gnradial lineage -d chordata.csv --rank class`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLineage(cmd, args, rnk)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	lineageCmd.Flags().StringVarP(&rnk, "rank", "r", "",
		"list names of this rank")

	return lineageCmd
}

func runLineage(cmd *cobra.Command, names []string, rnk string) error {
	if len(names) == 0 && rnk == "" {
		return errors.New("give at least one name or --rank")
	}

	tree, err := loadTree(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		r, ok := rank.Parse(rnk)
		if !ok {
			return rank.UnknownRankError(rnk)
		}
		names := selector.NamesAtRank(tree, r)
		if len(names) == 0 {
			return selector.EmptyRankError(r)
		}
		for _, v := range names {
			fmt.Fprintln(out, v)
		}
		return nil
	}

	for _, name := range names {
		n, err := tree.ByName(name)
		if err != nil {
			return err
		}
		printLineage(out, n)
	}
	return nil
}

func printLineage(w io.Writer, n *hierarchy.Node) {
	names, ranks, ids := hierarchy.Breadcrumbs(n)
	fmt.Fprintf(w, "%s\n  names: %s\n  ranks: %s\n  ids:   %s\n",
		n.Name, names, ranks, ids)
}
