/*
 * plot_test.go, part of gohinge.
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

package hingeplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestProfile(Te *testing.T) {
	dir := Te.TempDir()
	values := make([]float64, 30)
	blocks := make([]int, 30)
	for i := range values {
		values[i] = 1 + math.Sin(float64(i)/3)
		blocks[i] = i / 10
	}
	name := filepath.Join(dir, "displacement")
	if err := Profile(values, blocks, "Displacement", "Length (A)", name); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name + ".png"); err != nil || fi.Size() == 0 {
		Te.Errorf("No plot written (%v)", err)
	}
	if err := Profile(values, nil, "Fluctuations", "<dr2>", filepath.Join(dir, "fluct")); err != nil {
		Te.Error(err)
	}
	if err := Profile(values, blocks[:3], "", "", filepath.Join(dir, "bad")); err == nil {
		Te.Error("Mismatched group ids should give an error")
	}
	if err := Profile(nil, nil, "", "", filepath.Join(dir, "empty")); err == nil {
		Te.Error("Empty profiles should give an error")
	}
}

func TestSpectrum(Te *testing.T) {
	dir := Te.TempDir()
	values := []float64{1e-9, -1e-10, 0, 0, 0, 0, 0.5, 1.2, 2.0, 3.1}
	name := filepath.Join(dir, "spectrum")
	if err := Spectrum(values, 1e-6, "Modes", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error(err)
	}
	if err := Spectrum(values[:6], 1e-6, "Modes", name); err == nil {
		Te.Error("A spectrum of zero modes should give an error")
	}
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 6; i++ {
		r, g, b := colors(i, 6)
		seen[[3]uint8{r, g, b}] = true
	}
	if len(seen) != 6 {
		Te.Errorf("Only %d different colors for 6 blocks", len(seen))
	}
}
