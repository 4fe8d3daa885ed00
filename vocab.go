/*
 * vocab.go, part of gocryst.
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

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

//The tables in this file fix the shared vocabulary of the crystal token
//language. Every token maps to a small integer id, and both sides of any
//exchange (tokenizer, generative model, decoder) must agree on the mapping,
//so the order of these slices is part of the format and must not change.

//identityAlphabet is the molecular identity alphabet, one token per
//SELFIES-style symbol. The order is that of the reference vocabulary.
var identityAlphabet = []string{
	"[=C-1]",
	"[#Branch3]",
	"[#B]",
	"[Branch3]",
	"[#Branch1]",
	"[Branch2]",
	"[=Ring3]",
	"[#B-1]",
	"[#N+1]",
	"[=N-1]",
	"[Cl]",
	"[Branch1]",
	"[#C+1]",
	"[O-1]",
	"[S]",
	"[=P]",
	"[N-1]",
	"[#P]",
	"[=O]",
	"[O]",
	"[Ring2]",
	"[P]",
	"[#O+1]",
	"[=Ring1]",
	"[#N]",
	"[C]",
	"[F]",
	"[#S]",
	"[B+1]",
	"[=C]",
	"[=C+1]",
	"[=N]",
	"[S-1]",
	"[C-1]",
	"[O+1]",
	"[#C-1]",
	"[Ring1]",
	"[N+1]",
	"[#S+1]",
	"[#C]",
	"[I]",
	"[=P+1]",
	"[=B+1]",
	"[Br]",
	"[#P+1]",
	"[=S+1]",
	"[=B]",
	"[P+1]",
	"[=Branch1]",
	"[=P-1]",
	"[C+1]",
	"[S+1]",
	"[B-1]",
	"[Ring3]",
	"[=Ring2]",
	"[=B-1]",
	"[=S-1]",
	"[=Branch3]",
	"[#S-1]",
	"[B]",
	"[=O+1]",
	"[#P-1]",
	"[=Branch2]",
	"[#Branch2]",
	"[=N+1]",
	"[=S]",
	"[N]",
	"[P-1]",
	"[H]",
}

//crystalSpaceGroups lists the space groups the vocabulary can express,
//in vocabulary order. They are the Sohncke-plus-common groups seen in
//organic molecular crystals.
var crystalSpaceGroups = []int{1, 2, 4, 5, 7, 9, 13, 14, 15, 18, 19, 20,
	29, 33, 43, 56, 60, 61, 76, 86, 88, 96, 145, 148, 154, 169}

//crystalTags lists the tagged fields of a token sequence, in emission
//order. Each contributes an opening and a closing token to the
//vocabulary. LE and LE_HULL are property tags. The rest are structural.
var crystalTags = []string{"SELF", "SG", "A", "B", "C", "ALPHA", "BETA",
	"GAMMA", "X", "Y", "Z", "R0", "R1", "R2", "LE", "LE_HULL"}

//The placeholder is in the vocabulary for sequence padding on the model
//side. Nothing in this library ever emits it.
const placeholderToken = "<PH>"

func openTag(tag string) string  { return "<" + tag + ">" }
func closeTag(tag string) string { return "</" + tag + ">" }

//sgToken builds the vocabulary token for a space group number, e.g. "14_sg".
func sgToken(sg int) string { return strconv.Itoa(sg) + "_sg" }

// Vocab is an immutable token vocabulary, a bijection between tokens and
// dense integer ids starting at 0. Build one with NewVocab or VocabFromSpec,
// or use DefaultVocab. A Vocab is safe for concurrent use once built.
type Vocab struct {
	ids    map[string]int
	tokens map[int]string
}

// NewVocab builds a Vocab from a token to id mapping. The mapping is
// copied, so later changes to m do not affect the Vocab.
func NewVocab(m map[string]int) *Vocab {
	v := &Vocab{
		ids:    make(map[string]int, len(m)),
		tokens: make(map[int]string, len(m)),
	}
	for tok, id := range m {
		v.ids[tok] = id
		v.tokens[id] = tok
	}
	return v
}

//buildVocab assembles a vocabulary in the canonical order: the digit and
//number-symbol characters, the identity alphabet, the space group tokens,
//the open/close pair for each tag, and last the padding placeholder.
//Duplicated alphabet entries are kept only at their first position.
func buildVocab(alphabet []string, spaceGroups []int) *Vocab {
	v := &Vocab{ids: make(map[string]int), tokens: make(map[int]string)}
	add := func(tok string) {
		if _, ok := v.ids[tok]; ok {
			return
		}
		id := len(v.ids)
		v.ids[tok] = id
		v.tokens[id] = tok
	}
	for _, c := range "0123456789-." {
		add(string(c))
	}
	for _, tok := range alphabet {
		add(tok)
	}
	for _, sg := range spaceGroups {
		add(sgToken(sg))
	}
	for _, tag := range crystalTags {
		add(openTag(tag))
		add(closeTag(tag))
	}
	add(placeholderToken)
	return v
}

var defaultVocab = buildVocab(identityAlphabet, crystalSpaceGroups)

// DefaultVocab returns the built-in, 140-token vocabulary. The returned
// value is shared, do not modify it.
func DefaultVocab() *Vocab {
	return defaultVocab
}

// ID returns the id for a token.
func (v *Vocab) ID(token string) (int, error) {
	id, ok := v.ids[token]
	if !ok {
		return 0, &UnknownTokenError{token: token}
	}
	return id, nil
}

// Token returns the token for an id.
func (v *Vocab) Token(id int) (string, error) {
	tok, ok := v.tokens[id]
	if !ok {
		return "", &UnknownTokenError{token: fmt.Sprintf("id %d", id)}
	}
	return tok, nil
}

// IDs maps a token sequence to the corresponding id sequence. It fails on
// the first token absent from the vocabulary.
func (v *Vocab) IDs(tokens []string) ([]int, error) {
	ids := make([]int, len(tokens))
	for i, tok := range tokens {
		id, err := v.ID(tok)
		if err != nil {
			return nil, errDecorate(err, "IDs")
		}
		ids[i] = id
	}
	return ids, nil
}

// Tokens maps an id sequence back to tokens. It fails on the first id
// absent from the vocabulary.
func (v *Vocab) Tokens(ids []int) ([]string, error) {
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tok, err := v.Token(id)
		if err != nil {
			return nil, errDecorate(err, "Tokens")
		}
		tokens[i] = tok
	}
	return tokens, nil
}

// Len returns the number of tokens in the vocabulary.
func (v *Vocab) Len() int {
	return len(v.ids)
}

// VocabSpec describes a vocabulary to be generated: the molecular identity
// alphabet and the expressible space groups. The rest of the vocabulary
// (digits, tags, placeholder) is always the same.
type VocabSpec struct {
	Alphabet    []string `yaml:"alphabet"`
	SpaceGroups []int    `yaml:"space_groups"`
}

// ReadVocabSpec reads a YAML vocabulary spec.
func ReadVocabSpec(r io.Reader) (*VocabSpec, error) {
	spec := new(VocabSpec)
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(spec); err != nil {
		return nil, fmt.Errorf("gocryst: reading vocabulary spec: %w", err)
	}
	return spec, nil
}

// VocabFromSpec generates a vocabulary from a spec, in the same canonical
// order used for the built-in one. Generating from a spec holding the
// built-in alphabet and space groups reproduces DefaultVocab exactly.
func VocabFromSpec(spec *VocabSpec) *Vocab {
	return buildVocab(spec.Alphabet, spec.SpaceGroups)
}
