/*
 * tokens.go, part of gocryst.
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

import "strconv"

//The number of decimal places each numeric field carries on the wire.
//These are part of the token format: changing them changes what a model
//trained on the format will see, so treat them like you would a file
//format version.
const (
	PrecCell   = 2 //cell lengths, A
	PrecAngle  = 1 //cell angles, degrees
	PrecCenter = 3 //center of mass, fractional
	PrecRod    = 2 //Rodrigues vector components
)

// Digitize renders a number with the given amount of decimals and splits
// the text into one token per character, so "12.35" becomes
// ["1" "2" "." "3" "5"]. Negative numbers get a "-" token. Rounding is
// half-to-even. Numbers already at the target precision survive a
// digitize, parse and digitize cycle unchanged.
func Digitize(value float64, decimals int) []string {
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	tokens := make([]string, 0, len(s))
	for _, c := range s {
		tokens = append(tokens, string(c))
	}
	return tokens
}

//numericFields returns tag, value and precision for the twelve numeric
//fields, in emission order.
func (C *Crystal) numericFields() []struct {
	tag      string
	value    float64
	decimals int
} {
	return []struct {
		tag      string
		value    float64
		decimals int
	}{
		{"A", C.Cell.A, PrecCell},
		{"B", C.Cell.B, PrecCell},
		{"C", C.Cell.C, PrecCell},
		{"ALPHA", C.Cell.Alpha, PrecAngle},
		{"BETA", C.Cell.Beta, PrecAngle},
		{"GAMMA", C.Cell.Gamma, PrecAngle},
		{"X", C.Center[0], PrecCenter},
		{"Y", C.Center[1], PrecCenter},
		{"Z", C.Center[2], PrecCenter},
		{"R0", C.Rod[0], PrecRod},
		{"R1", C.Rod[1], PrecRod},
		{"R2", C.Rod[2], PrecRod},
	}
}

// Tokens serializes the Crystal into its token sequence: the identity
// tokens, the space group and the twelve digitized numeric fields, each
// segment delimited by its tag pair, always in the same order. Properties
// and molecule geometry are not serialized. The output is ready for
// Vocab.IDs.
func (C *Crystal) Tokens() []string {
	tokens := make([]string, 0, len(C.Identity)+80)
	tokens = append(tokens, openTag("SELF"))
	tokens = append(tokens, C.Identity...)
	tokens = append(tokens, closeTag("SELF"))
	tokens = append(tokens, openTag("SG"), sgToken(C.SpaceGroup), closeTag("SG"))
	for _, f := range C.numericFields() {
		tokens = append(tokens, openTag(f.tag))
		tokens = append(tokens, Digitize(f.value, f.decimals)...)
		tokens = append(tokens, closeTag(f.tag))
	}
	return tokens
}

// TokenIDs serializes the Crystal and maps the tokens to ids in the given
// vocabulary, in one call. It fails with an UnknownTokenError if an
// identity token, or a space group token, is not in the vocabulary.
func (C *Crystal) TokenIDs(v *Vocab) ([]int, error) {
	ids, err := v.IDs(C.Tokens())
	if err != nil {
		return nil, errDecorate(err, "TokenIDs")
	}
	return ids, nil
}
