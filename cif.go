/*
 * cif.go, part of gocryst.
 *
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
 *
 * goCryst is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package cryst

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Terminator is the literal line ending every CIF block this package
// writes. When many blocks are concatenated into one file it doubles as
// the block delimiter, so its exact spelling is part of the format.
const Terminator = "#END"

//cifFloat prints a cell parameter with the shortest decimal text that
//reads back to the same float64, so 10.0 prints as "10" and 10.25 as
//"10.25". No exponents, CIF readers dislike them.
func cifFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CIFString renders the Crystal as a minimal CIF block: the cell
// parameters, the symmetry operators for its space group, and one
// atom-site line per atom of the molecule placed in the cell, all closed
// by the Terminator line. It fails with a MissingGeometryError if no
// molecule has been set, with an UnsupportedSpaceGroupError if the space
// group has no tabulated operators, and with a DegenerateLatticeError if
// the cell has zero volume. None of those failures invalidates the
// Crystal itself.
func (C *Crystal) CIFString() (string, error) {
	if !C.HasMolecule() {
		return "", &MissingGeometryError{}
	}
	ops, err := OpsText(C.SpaceGroup)
	if err != nil {
		return "", errDecorate(err, "CIFString")
	}
	symbols, frac, err := C.AtomFractCoords()
	if err != nil {
		return "", errDecorate(err, "CIFString")
	}
	var b strings.Builder
	b.WriteString("data_generated\n")
	b.WriteString("_audit_creation_method generated by goCryst\n")
	fmt.Fprintf(&b, "_symmetry_Int_Tables_number %d\n", C.SpaceGroup)
	fmt.Fprintf(&b, "_cell_length_a %s\n", cifFloat(C.Cell.A))
	fmt.Fprintf(&b, "_cell_length_b %s\n", cifFloat(C.Cell.B))
	fmt.Fprintf(&b, "_cell_length_c %s\n", cifFloat(C.Cell.C))
	fmt.Fprintf(&b, "_cell_angle_alpha %s\n", cifFloat(C.Cell.Alpha))
	fmt.Fprintf(&b, "_cell_angle_beta %s\n", cifFloat(C.Cell.Beta))
	fmt.Fprintf(&b, "_cell_angle_gamma %s\n", cifFloat(C.Cell.Gamma))
	b.WriteString("loop_\n")
	b.WriteString("_symmetry_equiv_pos_site_id\n")
	b.WriteString("_symmetry_equiv_pos_as_xyz") //no newline, the operator block starts with one.
	b.WriteString(ops)
	b.WriteString("\n")
	b.WriteString("loop_\n")
	b.WriteString("_atom_site_label\n")
	b.WriteString("_atom_site_type_symbol\n")
	b.WriteString("_atom_site_fract_x\n")
	b.WriteString("_atom_site_fract_y\n")
	b.WriteString("_atom_site_fract_z\n")
	b.WriteString("_atom_site_occupancy\n")
	for i, sym := range symbols {
		fmt.Fprintf(&b, "%s%d %s %.12f %.12f %.12f 1.000000000000\n",
			sym, i+1, sym, frac.At(i, 0), frac.At(i, 1), frac.At(i, 2))
	}
	b.WriteString(Terminator + "\n")
	return b.String(), nil
}

// CIF renders the Crystal as CIFString does and writes the block to out.
func (C *Crystal) CIF(out io.Writer) error {
	s, err := C.CIFString()
	if err != nil {
		return errDecorate(err, "CIF")
	}
	_, err = io.WriteString(out, s)
	return err
}

// CIFFileWrite renders the Crystal to a new CIF file.
func CIFFileWrite(name string, C *Crystal) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return C.CIF(f)
}

//zstd decoders have a Close without an error return, so they don't satisfy
//io.ReadCloser on their own. This wrapper fixes that.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

// BulkCIFWriter writes many CIF blocks, one after the other, to a single
// file. The file name extension picks the compression: .zst for zstd,
// .gz for gzip, .flate for raw DEFLATE, anything else for plain text.
// Blocks are separated only by their Terminator lines, so a plain bulk
// file is also valid input for tools that just want the concatenated
// text.
type BulkCIFWriter struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	blocks    int
}

// NewBulkCIFWriter creates the named bulk file, truncating any previous
// content.
func NewBulkCIFWriter(name string) (*BulkCIFWriter, error) {
	B := new(BulkCIFWriter)
	var err error
	B.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		B.h, err = zstd.NewWriter(B.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			B.f.Close()
			return nil, fmt.Errorf("gocryst: can't set up compression for %s: %w", name, err)
		}
	case ".gz":
		B.h = gzip.NewWriter(B.f)
	case ".flate":
		B.h, err = flate.NewWriter(B.f, flate.BestCompression)
		if err != nil {
			B.f.Close()
			return nil, fmt.Errorf("gocryst: can't set up compression for %s: %w", name, err)
		}
	default:
		B.h = nil //write straight to the file.
	}
	B.filename = name
	B.writeable = true
	return B, nil
}

// WNext renders one Crystal and appends the block to the bulk file.
func (B *BulkCIFWriter) WNext(C *Crystal) error {
	if !B.writeable {
		return fmt.Errorf("gocryst: bulk CIF file %s is closed for writing", B.filename)
	}
	s, err := C.CIFString()
	if err != nil {
		return errDecorate(err, "WNext")
	}
	out := io.Writer(B.f)
	if B.h != nil {
		out = B.h
	}
	if _, err := io.WriteString(out, s); err != nil {
		return fmt.Errorf("gocryst: writing block to %s: %w", B.filename, err)
	}
	B.blocks++
	return nil
}

// Blocks returns the number of blocks written so far.
func (B *BulkCIFWriter) Blocks() int {
	return B.blocks
}

// Close flushes and closes the bulk file. The writer can not be used
// after this call.
func (B *BulkCIFWriter) Close() error {
	if B == nil || !B.writeable {
		return nil
	}
	B.writeable = false
	if B.h != nil {
		if err := B.h.Close(); err != nil {
			B.f.Close()
			return err
		}
	}
	return B.f.Close()
}

// BulkCIFReader splits a bulk file back into CIF blocks. The compression
// is picked from the file name extension as in NewBulkCIFWriter. It does
// not parse the blocks, that is a job for a real CIF reader. It only cuts
// at Terminator lines.
type BulkCIFReader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Scanner
	filename string
	blocks   int
}

// NewBulkCIFReader opens a bulk file for block-by-block reading.
func NewBulkCIFReader(name string) (*BulkCIFReader, error) {
	B := new(BulkCIFReader)
	var err error
	B.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	var in io.Reader = B.f
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		d, err := zstd.NewReader(B.f)
		if err != nil {
			B.f.Close()
			return nil, fmt.Errorf("gocryst: can't set up decompression for %s: %w", name, err)
		}
		B.z = zstdql{d.Close, d}
		in = d
	case ".gz":
		g, err := gzip.NewReader(B.f)
		if err != nil {
			B.f.Close()
			return nil, fmt.Errorf("gocryst: can't set up decompression for %s: %w", name, err)
		}
		B.z = g
		in = g
	case ".flate":
		B.z = flate.NewReader(B.f)
		in = B.z
	}
	B.h = bufio.NewScanner(in)
	B.filename = name
	return B, nil
}

// Next returns the next CIF block, Terminator line included, or io.EOF
// after the last one. A final block missing its Terminator, as written by
// some older tools, is returned as is.
func (B *BulkCIFReader) Next() (string, error) {
	var b strings.Builder
	for B.h.Scan() {
		line := B.h.Text()
		b.WriteString(line)
		b.WriteString("\n")
		if line == Terminator {
			B.blocks++
			return b.String(), nil
		}
	}
	if err := B.h.Err(); err != nil {
		return "", fmt.Errorf("gocryst: reading %s: %w", B.filename, err)
	}
	if strings.TrimSpace(b.String()) != "" {
		B.blocks++
		return b.String(), nil
	}
	return "", io.EOF
}

// Blocks returns the number of blocks read so far.
func (B *BulkCIFReader) Blocks() int {
	return B.blocks
}

// Close closes the underlying file. The reader can not be used after this
// call.
func (B *BulkCIFReader) Close() error {
	if B == nil {
		return nil
	}
	if B.z != nil {
		if err := B.z.Close(); err != nil {
			B.f.Close()
			return err
		}
	}
	return B.f.Close()
}
