/*
 * fit.go, part of gohinge.
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

	hinge "github.com/rmera/gohinge"
	"github.com/spf13/cobra"
)

// fitCmd superimposes both conformations.
var fitCmd = &cobra.Command{
	Use:   "fit [pair.json]",
	Short: "Superimpose the second conformation on the first one",
	Long: `Superimpose the second conformation on the first one, using all the aligned
residues, or only those of one block with --block. The transformation and the RMSD are printed,
and the moved structures can be written with --out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		_, s, err := load(args[0], true, out)
		if err != nil {
			return err
		}
		C, err := hinge.Correspond(s.chains1(), s.chains2())
		if err != nil {
			return err
		}
		block, _ := cmd.Flags().GetInt("block")
		handles := C.Interesting(C.First)
		if block > 0 {
			handles = C.Group(block)
		}
		T := C.Fit(handles, nil)
		if !T.Valid() {
			return fmt.Errorf("only %d usable residue pairs, at least 3 are needed", T.N)
		}
		fmt.Fprintf(out, "%s\n", T)
		hinge.Move(T, s.chains2()...)
		name, _ := cmd.Flags().GetString("out")
		return save(name, s)
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)
	fitCmd.Flags().IntP("block", "b", 0, "fit only the residues of this block, 0 for all")
	fitCmd.Flags().StringP("out", "o", "", "write the superimposed structures to this JSON file")
}
