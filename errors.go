/*
 * errors.go, part of gocryst.
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

package cryst

import "fmt"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. The decorate slice should contain a list of functions
// in the calling stack, plus, for each function, any relevant information, or nothing. If information is to be added to an
// element of the slice, it should be in this format: "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. It will panic if given an error
// that does not implement Error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// UnknownTokenError reports a token, or a token id, that is not part of a
// vocabulary. There is no fallback token. Substituting anything here would
// corrupt the numeric reconstruction downstream, so the lookup just fails.
type UnknownTokenError struct {
	token string
	deco  []string
}

func (err *UnknownTokenError) Error() string {
	return fmt.Sprintf("gocryst: token %q not in the vocabulary", err.token)
}

// Decorate adds new information to the error. If given an empty string it
// just returns the current decoration.
func (err *UnknownTokenError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Token returns the offending token.
func (err *UnknownTokenError) Token() string { return err.token }

// MissingTagError reports a mandatory tag that is absent from a token
// sequence given for decoding. No partial Crystal is ever returned in
// this case.
type MissingTagError struct {
	tag  string
	deco []string
}

func (err *MissingTagError) Error() string {
	return fmt.Sprintf("gocryst: mandatory tag %s absent from token sequence", err.tag)
}

func (err *MissingTagError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Tag returns the name of the absent tag, without the angle brackets.
func (err *MissingTagError) Tag() string { return err.tag }

// MalformedSpaceGroupError reports an SG tag body that could not be parsed
// into a space group number.
type MalformedSpaceGroupError struct {
	body string
	deco []string
}

func (err *MalformedSpaceGroupError) Error() string {
	return fmt.Sprintf("gocryst: can't parse a space group number from %q", err.body)
}

func (err *MalformedSpaceGroupError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// MalformedNumberError reports a numeric tag whose body, after joining the
// digit tokens, does not parse as a real number.
type MalformedNumberError struct {
	tag  string
	body string
	deco []string
}

func (err *MalformedNumberError) Error() string {
	return fmt.Sprintf("gocryst: tag %s: can't parse a number from %q", err.tag, err.body)
}

func (err *MalformedNumberError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Tag returns the name of the offending tag, without the angle brackets.
func (err *MalformedNumberError) Tag() string { return err.tag }

// UnsupportedSpaceGroupError reports a space group for which no symmetry
// operators are tabulated. This is by far the most common reason for a CIF
// rendering to fail, so callers get a type they can test for and report,
// instead of a generic error. The Crystal that triggered it remains valid.
type UnsupportedSpaceGroupError struct {
	sg   int
	deco []string
}

func (err *UnsupportedSpaceGroupError) Error() string {
	return fmt.Sprintf("gocryst: no symmetry operators tabulated for space group %d", err.sg)
}

func (err *UnsupportedSpaceGroupError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// SpaceGroup returns the unsupported space group number.
func (err *UnsupportedSpaceGroupError) SpaceGroup() int { return err.sg }

// DegenerateLatticeError reports a zero-volume cell, i.e. a singular lattice
// basis, found while transforming between Cartesian and fractional
// coordinates.
type DegenerateLatticeError struct {
	deco []string
}

func (err *DegenerateLatticeError) Error() string {
	return "gocryst: degenerate (zero-volume) lattice basis"
}

func (err *DegenerateLatticeError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// MissingGeometryError reports an operation that needs the single-molecule
// geometry when none has been set. Decoding never fills the geometry in, it
// always comes from the caller via SetMolecule.
type MissingGeometryError struct {
	deco []string
}

func (err *MissingGeometryError) Error() string {
	return "gocryst: molecule local coordinates and atom symbols not set"
}

func (err *MissingGeometryError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
