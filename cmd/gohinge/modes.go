/*
 * modes.go, part of gohinge.
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
	"os"

	"github.com/rmera/gohinge/hingeplot"
	"github.com/rmera/gohinge/nma"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// modesCmd calculates normal modes.
var modesCmd = &cobra.Command{
	Use:   "modes [pair.json]",
	Short: "Calculate the normal modes of an elastic network of one conformation",
	Long: `Calculate the normal modes of an elastic network model of one conformation, with springs
between C-alpha atoms closer than --cutoff A. Springs between residues of the same block
are --gamma times stiffer. The eigenvalues are printed in ascending order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, s, err := load(args[0], true, out)
		if err != nil {
			return err
		}
		chains, name := s.chains1(), s.name1
		if c.Modes.Conformation == 2 {
			chains, name = s.chains2(), s.name2
		}
		M := nma.Calculate(chains, c.ModesOptions())
		if M.N == 0 {
			return fmt.Errorf("no normal modes for %s", name)
		}
		fmt.Fprintf(out, "%d modes for %s, %d with zero eigenvalue\n", M.N, name, M.NZero())
		if err := M.WriteValues(out); err != nil {
			return err
		}
		if vname, _ := cmd.Flags().GetString("vectors"); vname != "" {
			if err := writeFile(vname, func(f *os.File) error { return M.WriteModes(f) }); err != nil {
				return err
			}
		}
		if hname, _ := cmd.Flags().GetString("hessian"); hname != "" {
			if err := writeFile(hname, func(f *os.File) error { return M.WriteHessian(f) }); err != nil {
				return err
			}
		}
		if c.Plot == "" {
			return nil
		}
		if err := hingeplot.Spectrum(M.Values, nma.ZeroMode, "Modes of "+name, c.Plot+"_spectrum"); err != nil {
			return err
		}
		blocks := make([]int, len(M.Residues))
		for i, r := range M.Residues {
			blocks[i] = r.GroupID()
		}
		return hingeplot.Profile(M.Fluctuations(), blocks, "Fluctuations of "+name, "<dr2>", c.Plot+"_fluctuations")
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
	modesCmd.Flags().Float64("gamma", nma.DefaultGamma, "spring constant multiplier within blocks")
	modesCmd.Flags().Float64("cutoff", nma.DefaultCutoff, "largest distance between connected residues, in A")
	modesCmd.Flags().IntP("conformation", "c", 1, "conformation to use, 1 or 2")
	modesCmd.Flags().String("vectors", "", "write the modes, one per line, to this file")
	modesCmd.Flags().String("hessian", "", "write the Hessian to this file")

	for _, f := range []string{"gamma", "cutoff", "conformation"} {
		viper.BindPFlag("modes."+f, modesCmd.Flags().Lookup(f))
	}
}
