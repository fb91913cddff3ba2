/*
 * groups.go, part of gohinge.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"fmt"
	"io"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/groupio"
	"github.com/spf13/cobra"
)

// groupsCmd is for reading and writing group files.
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Read and write group files",
	Long: `Read and write group files, which store the block id of each residue of both
conformations, one per line. Files are gzip-compressed, or zstd-compressed if their name ends
in .zst, or not compressed if it ends in .txt.`,
}

// groupsSaveCmd writes the block ids of the input to a group file.
var groupsSaveCmd = &cobra.Command{
	Use:     "save [pair.json]",
	Short:   "Write the block ids in a JSON input to the group file given with --groups",
	Args:    cobra.ExactArgs(1),
	Example: "  gohinge groups save blocks.json -g blocks.zst",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, s, err := load(args[0], false, out)
		if err != nil {
			return err
		}
		if c.Groups == "" {
			return fmt.Errorf("no group file given")
		}
		n, err := groupio.Save(c.Groups, s.both())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d block ids written to %s\n", n, c.Groups)
		return nil
	},
}

// groupsShowCmd prints the block ids of each chain.
var groupsShowCmd = &cobra.Command{
	Use:   "show [pair.json]",
	Short: "Print the block id of each residue, read from the input or from --groups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		_, s, err := load(args[0], true, out)
		if err != nil {
			return err
		}
		showGroups(out, s.name1, s.chains1())
		showGroups(out, s.name2, s.chains2())
		name, _ := cmd.Flags().GetString("out")
		return save(name, s)
	},
}

// showGroups prints, for each chain, its sequence and, below it, the last
// digit of the block id of each residue, with '.' for residues in no block.
func showGroups(w io.Writer, name string, chains []hinge.Chain) {
	for _, c := range chains {
		ids := make([]byte, c.Len())
		for i := range ids {
			r := c.Residue(i)
			switch {
			case r.Gap():
				ids[i] = hinge.GapLetter
			case r.GroupID() == 0:
				ids[i] = '.'
			default:
				ids[i] = byte('0' + r.GroupID()%10)
			}
		}
		fmt.Fprintf(w, "%s %c\n%s\n%s\n", name, c.ID(), hinge.Sequence(c), ids)
	}
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.AddCommand(groupsSaveCmd)
	groupsCmd.AddCommand(groupsShowCmd)
	groupsShowCmd.Flags().StringP("out", "o", "", "write the structures, with the block ids, to this JSON file")
}
