/*
 * groupio.go, part of gohinge.
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

/*Package groupio reads and writes group files, which store the group (rigid block) id of each residue in a set
of chains. A group file has one integer per line, one line per residue that is not a gap, in the order
of the chains and of the residues in each chain.

Group files are normally gzip-compressed. Files with the extension .zst are compressed with
z-standard, and files with the extension .txt are not compressed. Compression is detected when reading,
regardless of the file name.
*/
package groupio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/zstd"
	hinge "github.com/rmera/gohinge"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Write writes the group ids of the non-gap residues in chains to w, one per line, and
// returns the number of ids written.
func Write(w io.Writer, chains []hinge.Chain) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, c := range chains {
		for i := 0; i < c.Len(); i++ {
			r := c.Residue(i)
			if r.Gap() {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d\n", r.GroupID()); err != nil {
				return n, Error{err.Error(), "", []string{"Write"}, true}
			}
			n++
		}
	}
	if err := bw.Flush(); err != nil {
		return n, Error{err.Error(), "", []string{"Write"}, true}
	}
	return n, nil
}

// Save writes the group ids of chains to the file name, compressed according to its extension,
// and returns the number of ids written.
func Save(name string, chains []hinge.Chain) (int, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, Error{err.Error(), name, []string{"Save"}, true}
	}
	defer f.Close()
	var zw io.WriteCloser
	switch ext := strings.ToLower(name); {
	case strings.HasSuffix(ext, ".zst"):
		zw, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(ext, ".txt"):
		zw = nopCloser{f}
	default:
		zw, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	}
	if err != nil {
		return 0, Error{err.Error(), name, []string{"Save"}, true}
	}
	n, err := Write(zw, chains)
	if err != nil {
		zw.Close()
		e := err.(Error)
		e.filename = name
		e.deco = e.Decorate("Save")
		return n, e
	}
	if err := zw.Close(); err != nil {
		return n, Error{err.Error(), name, []string{"Save"}, true}
	}
	if err := f.Close(); err != nil {
		return n, Error{err.Error(), name, []string{"Save"}, true}
	}
	return n, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Read reads group ids, one per line, from r. Empty lines are skipped.
func Read(r io.Reader) ([]int, error) {
	ret := make([]int, 0)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		t := strings.TrimSpace(s.Text())
		if t == "" {
			continue
		}
		id, err := strconv.Atoi(t)
		if err != nil {
			return nil, Error{fmt.Sprintf("Line %d: %s", line, err.Error()), "", []string{"Read"}, true}
		}
		ret = append(ret, id)
	}
	if err := s.Err(); err != nil {
		return nil, Error{err.Error(), "", []string{"Read"}, true}
	}
	return ret, nil
}

// Decompress returns a reader with the uncompressed contents of data, which can be
// gzip- or zstd-compressed, or plain text.
func Decompress(data []byte) (io.ReadCloser, error) {
	br := bytes.NewReader(data)
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return gzip.NewReader(br)
	case bytes.HasPrefix(data, zstdMagic):
		d, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(br), nil
	}
}

// Apply sets the group ids of the non-gap residues in chains to ids. The number of ids must be
// the same as the number of residues, otherwise nothing is changed and an error is returned.
func Apply(ids []int, chains []hinge.Chain) error {
	if n := hinge.CountResidues(chains...); n != len(ids) {
		return Error{fmt.Sprintf("%d group ids for %d residues", len(ids), n), "", []string{"Apply"}, true}
	}
	k := 0
	for _, c := range chains {
		for i := 0; i < c.Len(); i++ {
			if r := c.Residue(i); !r.Gap() {
				r.SetGroupID(ids[k])
				k++
			}
		}
	}
	return nil
}

// Load reads the group file name, and applies its ids to the residues of chains. If the
// number of ids in the file does not match the number of non-gap residues, the
// chains are not changed, and an error is returned.
func Load(name string, chains []hinge.Chain) error {
	ids, err := LoadIDs(name)
	if err != nil {
		return err
	}
	if err := Apply(ids, chains); err != nil {
		e := err.(Error)
		e.filename = name
		e.deco = e.Decorate("Load")
		return e
	}
	return nil
}

// LoadIDs returns the group ids in the file name.
func LoadIDs(name string) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"LoadIDs"}, true}
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, Error{err.Error(), name, []string{"LoadIDs"}, true}
	}
	if fi.Size() == 0 {
		//can't map an empty file.
		return []int{}, nil
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"LoadIDs"}, true}
	}
	defer mm.Unmap()
	r, err := Decompress(mm)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"LoadIDs"}, true}
	}
	defer r.Close()
	ids, err := Read(r)
	if err != nil {
		e := err.(Error)
		e.filename = name
		e.deco = e.Decorate("LoadIDs")
		return nil, e
	}
	return ids, nil
}

//Errors

// Error is the error type for the groupio package.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("group file error: %s", err.message)
	}
	return fmt.Sprintf("group file %s error: %s", err.filename, err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// FileName returns the file to which the failing operation was associated.
func (err Error) FileName() string { return err.filename }

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
