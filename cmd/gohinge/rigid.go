/*
 * rigid.go, part of gohinge.
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

	"github.com/rmera/gohinge/groupio"
	"github.com/rmera/gohinge/rigid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rigidCmd finds the rigid blocks.
var rigidCmd = &cobra.Command{
	Use:   "rigid [pair.json]",
	Short: "Find the rigid blocks of a protein from two conformations",
	Long: `Find the rigid blocks of a protein from two conformations: sets of residues whose
interresidue distances change by less than --delta A between both conformations.

The report has one line per block, with its size and the runs of residues in it, as
(chain1 chain2, first residue 1, first residue 2, length). With --groups the block ids are
saved to a group file, which the motion command can read.`,
	Args:    cobra.ExactArgs(1),
	Example: "  gohinge rigid open-closed.json --delta 2 -g blocks.gz",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, s, err := load(args[0], false, out)
		if err != nil {
			return err
		}
		O := c.RigidOptions()
		F, err := rigid.FindRigids(s.chains1(), s.chains2(), O)
		if err != nil {
			return err
		}
		if F.NRigids < 0 {
			return fmt.Errorf("rigid block search failed")
		}
		if err := rigid.WriteReport(out, s.name1, s.name2, O, F.Report()); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d blocks, %.1f%% of the aligned residues, in %v\n", F.NRigids, 100*F.Coverage(), F.Elapsed)
		if c.Groups != "" {
			if _, err := groupio.Save(c.Groups, s.both()); err != nil {
				return err
			}
		}
		name, _ := cmd.Flags().GetString("out")
		return save(name, s)
	},
}

func init() {
	rootCmd.AddCommand(rigidCmd)
	rigidCmd.Flags().Float64P("delta", "d", rigid.DefaultDelta, "largest change of an interresidue distance in a block, in A")
	rigidCmd.Flags().Bool("refine", true, "refine the blocks")
	rigidCmd.Flags().Bool("cluster", true, "cluster short fragments with the blocks")
	rigidCmd.Flags().Bool("reverse", false, "search from the C-terminus")
	rigidCmd.Flags().Int("ntrace", rigid.DefaultNTrace, "candidate chains kept per residue")
	rigidCmd.Flags().Int("min-block", rigid.DefaultMinBlock, "smallest block size")
	rigidCmd.Flags().StringP("out", "o", "", "write the structures, with the block ids, to this JSON file")

	for _, f := range []string{"delta", "refine", "cluster", "reverse", "ntrace", "min-block"} {
		viper.BindPFlag("rigid."+f, rigidCmd.Flags().Lookup(f))
	}
}
