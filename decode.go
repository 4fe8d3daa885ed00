/*
 * decode.go, part of gocryst.
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
	"strconv"
	"strings"
)

//numericTags lists the numeric structural tags in emission order.
var numericTags = []string{"A", "B", "C", "ALPHA", "BETA", "GAMMA",
	"X", "Y", "Z", "R0", "R1", "R2"}

//propertyTags lists the optional property tags a sequence may carry.
var propertyTags = []string{"LE", "LE_HULL"}

//segment returns the tokens between the first opening tag and the first
//closing tag after it. The second return value is false if no such
//delimited segment exists.
func segment(tokens []string, tag string) ([]string, bool) {
	open := openTag(tag)
	clos := closeTag(tag)
	for i, t := range tokens {
		if t != open {
			continue
		}
		for j := i + 1; j < len(tokens); j++ {
			if tokens[j] == clos {
				return tokens[i+1 : j], true
			}
		}
		return nil, false
	}
	return nil, false
}

//parseSG extracts a space group number from the body of an SG segment,
//e.g. "14_sg" gives 14.
func parseSG(body []string) (int, error) {
	text := strings.Join(body, " ")
	sg, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(text, "_sg", "")))
	if err != nil {
		return 0, &MalformedSpaceGroupError{body: text}
	}
	return sg, nil
}

// FromTokens rebuilds a Crystal from its token sequence. All the
// structural segments (SELF, SG and the twelve numeric fields) are
// mandatory, in any order; a missing one fails the whole decode with a
// MissingTagError and no partial Crystal. The extra map, which may be nil,
// seeds the properties of the new Crystal. The optional LE and LE_HULL
// segments override entries of the same name in extra, and are dropped
// without complaint when absent or unparseable, since generative models do
// emit garbage there and an optional property is not worth failing an
// otherwise good structure for.
//
// The molecule geometry is never part of a token sequence. Set it with
// SetMolecule before asking for a CIF rendering.
func FromTokens(tokens []string, extra map[string]float64) (*Crystal, error) {
	identity, ok := segment(tokens, "SELF")
	if !ok {
		return nil, &MissingTagError{tag: "SELF"}
	}
	sgBody, ok := segment(tokens, "SG")
	if !ok || len(sgBody) == 0 {
		return nil, &MissingTagError{tag: "SG"}
	}
	sg, err := parseSG(sgBody)
	if err != nil {
		return nil, errDecorate(err, "FromTokens")
	}
	var vals [12]float64
	for i, tag := range numericTags {
		body, ok := segment(tokens, tag)
		if !ok {
			return nil, &MissingTagError{tag: tag}
		}
		text := strings.Join(body, "")
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &MalformedNumberError{tag: tag, body: text}
		}
		vals[i] = v
	}
	cell := Cell{A: vals[0], B: vals[1], C: vals[2],
		Alpha: vals[3], Beta: vals[4], Gamma: vals[5]}
	center := [3]float64{vals[6], vals[7], vals[8]}
	rod := [3]float64{vals[9], vals[10], vals[11]}
	ret := New(identity, sg, cell, center, rod)
	for k, v := range extra {
		ret.SetProperty(k, v)
	}
	for _, tag := range propertyTags {
		body, ok := segment(tokens, tag)
		if !ok || len(body) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(strings.Join(body, ""), 64)
		if err != nil {
			continue
		}
		ret.SetProperty(tag, v)
	}
	return ret, nil
}

// FromTokenIDs maps ids back to tokens in the given vocabulary and decodes
// the result as FromTokens does. It fails with an UnknownTokenError if an
// id is not in the vocabulary.
func FromTokenIDs(ids []int, v *Vocab, extra map[string]float64) (*Crystal, error) {
	tokens, err := v.Tokens(ids)
	if err != nil {
		return nil, errDecorate(err, "FromTokenIDs")
	}
	ret, err := FromTokens(tokens, extra)
	if err != nil {
		return nil, errDecorate(err, "FromTokenIDs")
	}
	return ret, nil
}
