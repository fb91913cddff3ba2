/*
 * motion.go, part of gohinge.
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
	"strings"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/hingeplot"
	"github.com/rmera/gohinge/motion"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// motionCmd describes the motions of the blocks.
var motionCmd = &cobra.Command{
	Use:   "motion [pair.json]",
	Short: "Describe the motions of the rigid blocks between both conformations",
	Long: `Describe the motions of the rigid blocks between both conformations: the displacement
statistics of each block, the tree of relative motions, and each motion in the tree as
a screw (rotation angle, axis, point on the axis and shift along it).

The block ids are taken from the input or, with --groups, from a group file written
by the rigid command. With --trajectory, an interpolation from the first conformation
to the second one, keeping the block --static fixed, is written as a multi-model PDB file.`,
	Args:    cobra.ExactArgs(1),
	Example: "  gohinge motion open-closed.json -g blocks.gz --trajectory morph.pdb --frames 20",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, s, err := load(args[0], true, out)
		if err != nil {
			return err
		}
		A, err := motion.NewAnalyzerChains(s.chains1(), s.chains2())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Global fit: RMSD %.3f A over %d residues, rotation %.2f deg\n",
			A.Transforms[0].RMSD, A.Transforms[0].N, hinge.Rad2Deg(A.Transforms[0].Angle))
		D := A.Displacement(c.Motion.PerBlock)
		fmt.Fprintf(out, "\nblock     n     mean   stddev      max\n")
		for _, st := range A.BlockStats(D) {
			if st.N > 0 {
				fmt.Fprintln(out, st)
			}
		}
		if T := A.MotionTree(); T != nil {
			fmt.Fprintf(out, "\nfix move    angle    shift   axis                      point\n")
			for _, o := range T.Order {
				S := A.Relative(o[0], o[1])
				if S == nil {
					continue
				}
				fmt.Fprintf(out, "%3d %4d %8.2f %8.3f   %s   %s\n", o[0], o[1], hinge.Rad2Deg(S.Angle), S.Shift, vec(S.Axis), vec(S.Point))
			}
		}
		if name, _ := cmd.Flags().GetString("displacement"); name != "" {
			if err := writeFile(name, func(f *os.File) error { return motion.WriteDisplacement(f, D) }); err != nil {
				return err
			}
		}
		if name, _ := cmd.Flags().GetString("trajectory"); name != "" {
			frames := A.Frames(c.Motion.Static, c.Motion.Frames, c.Motion.Screw)
			if frames == nil {
				return fmt.Errorf("can't interpolate with block %d fixed", c.Motion.Static)
			}
			T := A.Trace()
			write := T.WritePDB
			if strings.HasSuffix(strings.ToLower(name), ".xyz") {
				write = T.WriteXYZ
			}
			if err := writeFile(name, func(f *os.File) error { return write(f, frames...) }); err != nil {
				return err
			}
		}
		if c.Plot != "" {
			blocks := make([]int, A.NResidues())
			for i := range blocks {
				blocks[i] = A.Block(i)
			}
			return hingeplot.Profile(motion.Lengths(D), blocks, fmt.Sprintf("%s to %s", s.name1, s.name2), "Displacement (A)", c.Plot+"_displacement")
		}
		return nil
	},
}

func vec(v interface{ At(i, j int) float64 }) string {
	return fmt.Sprintf("(%7.3f %7.3f %7.3f)", v.At(0, 0), v.At(0, 1), v.At(0, 2))
}

func writeFile(name string, write func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(motionCmd)
	motionCmd.Flags().IntP("static", "s", 1, "block kept fixed in the interpolation, 0 for the whole structure")
	motionCmd.Flags().IntP("frames", "n", 10, "number of interpolation steps")
	motionCmd.Flags().Bool("screw", true, "interpolate each block as a screw motion")
	motionCmd.Flags().Bool("per-block", false, "superimpose each residue with its own block for the displacements")
	motionCmd.Flags().StringP("trajectory", "t", "", "write the interpolation to this PDB (or .xyz) file")
	motionCmd.Flags().String("displacement", "", "write the displacement of each residue to this file")

	for _, f := range []string{"static", "frames", "screw", "per-block"} {
		viper.BindPFlag("motion."+f, motionCmd.Flags().Lookup(f))
	}
}
