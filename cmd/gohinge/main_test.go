/*
 * main_test.go, part of gohinge.
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
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hinge "github.com/rmera/gohinge"
	"github.com/rmera/gohinge/kabsch"
	v3 "github.com/rmera/gohinge/v3"
)

func helix(n int, x float64) *v3.Matrix {
	ret := v3.Zeros(n)
	for i := 0; i < n; i++ {
		a := float64(i) * 100 * math.Pi / 180
		ret.Set(i, 0, x+2.3*math.Cos(a))
		ret.Set(i, 1, 2.3*math.Sin(a))
		ret.Set(i, 2, 1.5*float64(i))
	}
	return ret
}

// pairFile writes a JSON input with two helices, 20 A apart. In the second conformation
// the second helix is rotated 40 degrees about its axis and moved 15 A away.
func pairFile(Te *testing.T, dir string) string {
	Te.Helper()
	d1, d2 := helix(10, 0), helix(10, 20)
	idx1 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	idx2 := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	A := v3.Zeros(20)
	A.SetVecs(d1, idx1)
	A.SetVecs(d2, idx2)
	T := kabsch.Identity()
	T.Rot = kabsch.Rotator(v3.Vec(0, 0, 1), 40*math.Pi/180)
	T.Center.Copy(v3.Vec(20, 0, 0))
	T.Trans.Copy(v3.Vec(15, 0, 0))
	B := v3.Zeros(20)
	B.SetVecs(d1, idx1)
	B.SetVecs(T.Apply(d2), idx2)
	seq := strings.Repeat("A", 20)
	c1, err := hinge.NewChain('A', seq, 1, A)
	if err != nil {
		Te.Fatal(err)
	}
	c2, err := hinge.NewChain('A', seq, 1, B)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(dir, "pair.json")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	if err := hinge.NewJSONPair("open", "closed", []hinge.Chain{c1}, []hinge.Chain{c2}).Encode(f); err != nil {
		Te.Fatal(err)
	}
	return name
}

func run(Te *testing.T, args ...string) string {
	Te.Helper()
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		Te.Fatalf("gohinge %s: %v", strings.Join(args, " "), err)
	}
	return b.String()
}

func TestCommands(Te *testing.T) {
	dir := Te.TempDir()
	in := pairFile(Te, dir)
	groups := filepath.Join(dir, "blocks.gz")
	blocks := filepath.Join(dir, "blocks.json")

	out := run(Te, "rigid", in, "--delta", "1", "-g", groups, "-o", blocks)
	if !strings.HasPrefix(out, "open closed 1.0 refine cluster\n") || !strings.Contains(out, "2 blocks") {
		Te.Errorf("rigid output:\n%s", out)
	}
	if _, err := os.Stat(groups); err != nil {
		Te.Error(err)
	}

	traj := filepath.Join(dir, "morph.pdb")
	plots := filepath.Join(dir, "plot")
	out = run(Te, "motion", in, "-g", groups, "-t", traj, "--frames", "4", "-p", plots)
	if !strings.Contains(out, "fix move") {
		Te.Errorf("motion output:\n%s", out)
	}
	pdb, err := os.ReadFile(traj)
	if err != nil {
		Te.Fatal(err)
	}
	if n := strings.Count(string(pdb), "ENDMDL"); n != 5 {
		Te.Errorf("%d models in the trajectory, expected 5", n)
	}
	if _, err := os.Stat(plots + "_displacement.png"); err != nil {
		Te.Error(err)
	}

	out = run(Te, "modes", blocks, "--cutoff", "15")
	if !strings.HasPrefix(out, "60 modes for open") {
		Te.Errorf("modes output:\n%s", out)
	}

	out = run(Te, "groups", "show", blocks, "-g", "")
	if !strings.Contains(out, "1111111111") {
		Te.Errorf("groups output:\n%s", out)
	}

	out = run(Te, "fit", in, "-b", "1", "-g", groups)
	if !strings.Contains(out, "rmsd:") {
		Te.Errorf("fit output:\n%s", out)
	}

	out = run(Te, "align", in)
	if !strings.Contains(out, "Chains A/A") {
		Te.Errorf("align output:\n%s", out)
	}
}
