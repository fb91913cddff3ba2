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

/*Package nma calculates the normal modes of a protein with an anisotropic elastic network
model, where residues closer than a cutoff are joined by harmonic springs.

Reference:
Atilgan AR, Durell SR, Jernigan RL, Demirel MC, Keskin O, Bahar I. Anisotropy of fluctuation
dynamics of proteins with an elastic network model. Biophys J. 2001 80:505.
*/
package nma

import (
	"fmt"
	"io"
	"log"

	hinge "github.com/rmera/gohinge"
	v3 "github.com/rmera/gohinge/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ZeroMode is the eigenvalue below which a mode is considered a
// rigid-body motion of the whole network.
const ZeroMode = 1e-6

// Modes contains the normal modes of a network.
type Modes struct {
	N        int //number of modes, 3 times the number of residues. 0 if nothing was calculated.
	Residues []hinge.Residue
	Hessian  *mat.SymDense
	Values   []float64  //eigenvalues, in ascending order.
	Vectors  *mat.Dense //each column is a mode, in the order of Values.
}

// Calculate builds the network for the residues of chains, with the options O (DefaultOptions if nil),
// and obtains its normal modes. Gaps, residues without coordinates, and residues not
// selected by O are left out. If no residue is left, or the diagonalization fails, the returned Modes
// has N=0, and a warning is logged.
func Calculate(chains []hinge.Chain, O *Options) *Modes {
	if O == nil {
		O = DefaultOptions()
	}
	M := new(Modes)
	for _, c := range chains {
		if c == nil {
			continue
		}
		for i := 0; i < c.Len(); i++ {
			if r := c.Residue(i); O.use(r) {
				M.Residues = append(M.Residues, r)
			}
		}
	}
	if len(M.Residues) == 0 {
		if O.Selected() != nil {
			log.Printf("nma: No selected residues found")
		} else {
			log.Printf("nma: No residues found")
		}
		return M
	}
	M.Hessian = Hessian(M.Residues, O)
	var es mat.EigenSym
	if ok := es.Factorize(M.Hessian, true); !ok {
		log.Printf("nma: Diagonalization of the %dx%d Hessian failed", 3*len(M.Residues), 3*len(M.Residues))
		return M
	}
	M.Values = es.Values(nil)
	M.Vectors = new(mat.Dense)
	es.VectorsTo(M.Vectors)
	M.N = len(M.Values)
	return M
}

// Hessian returns the Hessian matrix of the network formed by residues. For each pair of residues
// closer than the cutoff, the off-diagonal 3x3 block is -gamma*d*dT/|d|^2, where d is the vector between them,
// and the same amount is subtracted from both diagonal blocks, so each row of blocks sums to zero. The gamma
// is that given in O for pairs in the same rigid block, and 1 for the others.
func Hessian(residues []hinge.Residue, O *Options) *mat.SymDense {
	n := 3 * len(residues)
	H := mat.NewSymDense(n, nil)
	cut2 := O.Cutoff() * O.Cutoff()
	d := make([]float64, 3)
	for i1, r1 := range residues {
		x1 := r1.Coords()
		for i2 := i1 + 1; i2 < len(residues); i2++ {
			r2 := residues[i2]
			x2 := r2.Coords()
			for k := 0; k < 3; k++ {
				d[k] = x1.At(0, k) - x2.At(0, k)
			}
			d2 := floats.Dot(d, d)
			if d2 > cut2 || d2 == 0 {
				continue
			}
			gamma := 1.0
			if g := r1.GroupID(); g > 0 && g == r2.GroupID() {
				gamma = O.Gamma()
			}
			for a := 0; a < 3; a++ {
				for b := a; b < 3; b++ {
					v := -gamma * d[a] * d[b] / d2
					H.SetSym(3*i1+a, 3*i2+b, v)
					H.SetSym(3*i1+b, 3*i2+a, v)
					H.SetSym(3*i1+a, 3*i1+b, H.At(3*i1+a, 3*i1+b)-v)
					H.SetSym(3*i2+a, 3*i2+b, H.At(3*i2+a, 3*i2+b)-v)
				}
			}
		}
	}
	return H
}

// Mode returns mode i as one displacement vector per residue.
func (M *Modes) Mode(i int) *v3.Matrix {
	if i < 0 || i >= M.N {
		panic(fmt.Sprintf("nma: Mode %d out of range [0,%d)", i, M.N))
	}
	ret := v3.Zeros(M.N / 3)
	for j := 0; j < M.N; j++ {
		ret.Set(j/3, j%3, M.Vectors.At(j, i))
	}
	return ret
}

// NZero returns the number of modes with eigenvalues below ZeroMode, normally 6.
func (M *Modes) NZero() int {
	ret := 0
	for _, v := range M.Values {
		if v < ZeroMode {
			ret++
		}
	}
	return ret
}

// Fluctuations returns, for each residue, the mean square fluctuation predicted by the network (in units
// of kT over the spring constant), which is the sum over all non-zero modes of the squared
// residue component of the mode divided by its eigenvalue.
func (M *Modes) Fluctuations() []float64 {
	ret := make([]float64, M.N/3)
	comp := make([]float64, 3)
	for i, v := range M.Values {
		if v < ZeroMode {
			continue
		}
		for r := range ret {
			for k := 0; k < 3; k++ {
				comp[k] = M.Vectors.At(3*r+k, i)
			}
			ret[r] += floats.Dot(comp, comp) / v
		}
	}
	return ret
}

// WriteMatrix writes the matrix m to w, one row per line, with
// the format %10.5f for each element.
func WriteMatrix(w io.Writer, m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if _, err := fmt.Fprintf(w, "%10.5f", m.At(i, j)); err != nil {
				return Error{err.Error(), []string{"WriteMatrix"}, true}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return Error{err.Error(), []string{"WriteMatrix"}, true}
		}
	}
	return nil
}

// WriteHessian writes the Hessian matrix to w.
func (M *Modes) WriteHessian(w io.Writer) error {
	if M.N == 0 {
		return nil
	}
	return WriteMatrix(w, M.Hessian)
}

// WriteModes writes the modes to w, one per line, in the order of their eigenvalues.
func (M *Modes) WriteModes(w io.Writer) error {
	if M.N == 0 {
		return nil
	}
	return WriteMatrix(w, M.Vectors.T())
}

// WriteValues writes the eigenvalues to w, one per line.
func (M *Modes) WriteValues(w io.Writer) error {
	for i, v := range M.Values {
		if _, err := fmt.Fprintf(w, "%5d %10.5f\n", i+1, v); err != nil {
			return Error{err.Error(), []string{"WriteValues"}, true}
		}
	}
	return nil
}

//Errors

// Error is the error type for the nma package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
