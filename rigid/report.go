/*
 * report.go, part of gohinge.
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

package rigid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	hinge "github.com/rmera/gohinge"
)

// Report returns a description of the rigid blocks assigned to the co-indexed chains1 and chains2, one line per block,
// from block 1 on. Each line starts with the number of residue pairs in the block, followed by one
// (c1c2,start1,start2,length) descriptor per run of consecutive residues of the block, where c1c2 are the
// ids of both chains, start1 and start2 the serial numbers of the first residue of the run in each chain,
// and length the length of the run. It returns an empty string if there are no blocks or the
// chain numbers differ.
func Report(chains1, chains2 []hinge.Chain) string {
	if len(chains1) != len(chains2) {
		return ""
	}
	nrigids := 0
	for _, chains := range [][]hinge.Chain{chains1, chains2} {
		for _, c := range chains {
			for i := 0; i < c.Len(); i++ {
				if r := c.Residue(i); !r.Gap() && r.GroupID() > nrigids {
					nrigids = r.GroupID()
				}
			}
		}
	}
	var b strings.Builder
	for r := 1; r <= nrigids; r++ {
		count := 0
		for i, c1 := range chains1 {
			c2 := chains2[i]
			for k := 0; k < c1.Len() && k < c2.Len(); k++ {
				if c1.Residue(k).GroupID() == r && c2.Residue(k).GroupID() == r {
					count++
				}
			}
		}
		fmt.Fprintf(&b, "%d", count)
		for i, c1 := range chains1 {
			c2 := chains2[i]
			start1, start2, length := 0, 0, 0
			flush := func() {
				if length != 0 {
					fmt.Fprintf(&b, " (%c%c,%d,%d,%d)", c1.ID(), c2.ID(), start1, start2, length)
				}
				length = 0
			}
			for k := 0; k < c1.Len() && k < c2.Len(); k++ {
				a1, a2 := c1.Residue(k), c2.Residue(k)
				if a1.GroupID() != r || a2.GroupID() != r {
					flush()
					continue
				}
				if length > 0 && a1.Serial() == start1+length && a2.Serial() == start2+length {
					length++
					continue
				}
				flush()
				start1, start2, length = a1.Serial(), a2.Serial(), 1
			}
			flush()
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Report returns the description of the blocks in the chains of the Finder's Correspondence. See Report.
func (F *Finder) Report() string {
	return Report(F.C.Chains1, F.C.Chains2)
}

// WriteReport writes to w a header line with the names of both structures and the options O, followed
// by the block report.
func WriteReport(w io.Writer, name1, name2 string, O *Options, report string) error {
	if O == nil {
		O = DefaultOptions()
	}
	ref, clus := "norefine", "nocluster"
	if O.Refine() {
		ref = "refine"
	}
	if O.Cluster() {
		clus = "cluster"
	}
	delta := strconv.FormatFloat(O.Delta(), 'f', -1, 64)
	if !strings.ContainsAny(delta, ".eE") {
		delta += ".0"
	}
	if _, err := fmt.Fprintf(w, "%s %s %s %s %s\n", name1, name2, delta, ref, clus); err != nil {
		return Error{err.Error(), []string{"WriteReport"}, true}
	}
	if _, err := fmt.Fprintln(w, report); err != nil {
		return Error{err.Error(), []string{"WriteReport"}, true}
	}
	return nil
}

//Errors

// Error is the error type for the rigid package.
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
