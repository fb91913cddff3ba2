/*
 * align.go, part of gohinge.
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
	"strings"

	"github.com/rmera/gohinge/align"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// alignCmd aligns the sequences of each pair of chains.
var alignCmd = &cobra.Command{
	Use:   "align [pair.json]",
	Short: "Align the sequences of both conformations",
	Long: `Align the sequence of each chain of the first conformation with that of the
corresponding chain of the second one, with affine gap penalties and free end gaps.
The alignments are printed, and the co-indexed chains can be written with --out.`,
	Args:    cobra.ExactArgs(1),
	Example: "  gohinge align open-closed.json --matrix PAM30 -o aligned.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, s, err := load(args[0], false, out)
		if err != nil {
			return err
		}
		if !c.Prealign {
			if err := alignAll(c.AlignOptions(), s, out); err != nil {
				return err
			}
		}
		name, _ := cmd.Flags().GetString("out")
		return save(name, s)
	},
}

func init() {
	rootCmd.AddCommand(alignCmd)
	alignCmd.Flags().String("matrix", align.DefaultMatrix, "substitution matrix: "+strings.Join(align.MatrixNames(), ", "))
	alignCmd.Flags().Int("gap-open", align.DefaultGapOpen, "gap opening penalty")
	alignCmd.Flags().Int("gap-extend", align.DefaultGapExtend, "gap extension penalty")
	alignCmd.Flags().StringP("out", "o", "", "write the aligned structures to this JSON file")

	viper.BindPFlag("align.matrix", alignCmd.Flags().Lookup("matrix"))
	viper.BindPFlag("align.gap-open", alignCmd.Flags().Lookup("gap-open"))
	viper.BindPFlag("align.gap-extend", alignCmd.Flags().Lookup("gap-extend"))
}
