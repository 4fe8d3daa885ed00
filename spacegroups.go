/*
 * spacegroups.go, part of gocryst.
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
	"sort"
	"strings"
)

//hallNumbers maps each supported space group to its Hall number, should a
//downstream tool need the finer-grained setting identification.
var hallNumbers = map[int]int{
	1:   1,
	2:   2,
	4:   6,
	5:   9,
	7:   21,
	9:   39,
	13:  72,
	14:  81,
	15:  90,
	18:  112,
	19:  115,
	20:  116,
	29:  143,
	33:  164,
	43:  212,
	56:  266,
	60:  284,
	61:  290,
	76:  350,
	86:  362,
	88:  365,
	96:  373,
	145: 432,
	148: 436,
	154: 443,
	169: 463,
}

//symmetryOps holds, per supported space group, the symmetry operator block
//written verbatim into CIF files. Each block starts with a newline and does
//not end with one, so it can be appended right after the CIF loop header.
//The operator strings are in the standard xyz notation of the International
//Tables, one numbered operator per line.
var symmetryOps = map[int]string{
	1: `
1 +x,+y,+z`,
	2: `
1 -x,-y,-z
2 +x,+y,+z`,
	4: `
1 +x,+y,+z
2 -x,1/2+y,-z`,
	5: `
1 -x,+y,-z
2 +x,+y,+z
3 1/2-x,1/2+y,-z
4 1/2+x,1/2+y,+z`,
	7: `
1 +x,+y,+z
2 +x,-y,1/2+z`,
	9: `
1 +x,+y,+z
2 +x,-y,1/2+z
3 1/2+x,1/2+y,+z
4 1/2+x,1/2-y,1/2+z`,
	13: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,+y,1/2-z
4 +x,-y,1/2+z`,
	14: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,1/2+y,1/2-z
4 +x,1/2-y,1/2+z`,
	15: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,+y,1/2-z
4 +x,-y,1/2+z
5 1/2-x,1/2-y,-z
6 1/2+x,1/2+y,+z
7 1/2-x,1/2+y,1/2-z
8 1/2+x,1/2-y,1/2+z`,
	18: `
1 -x,-y,+z
2 +x,+y,+z
3 1/2-x,1/2+y,-z
4 1/2+x,1/2-y,-z`,
	19: `
1 +x,+y,+z
2 -x,1/2+y,1/2-z
3 1/2-x,-y,1/2+z
4 1/2+x,1/2-y,-z`,
	20: `
1 +x,-y,-z
2 +x,+y,+z
3 -x,-y,1/2+z
4 -x,+y,1/2-z
5 1/2+x,1/2-y,-z
6 1/2+x,1/2+y,+z
7 1/2-x,1/2-y,1/2+z
8 1/2-x,1/2+y,1/2-z`,
	29: `
1 +x,+y,+z
2 -x,-y,1/2+z
3 1/2+x,-y,+z
4 1/2-x,+y,1/2+z`,
	33: `
1 +x,+y,+z
2 -x,-y,1/2+z
3 1/2+x,1/2-y,+z
4 1/2-x,1/2+y,1/2+z`,
	43: `
1 -x,-y,+z
2 +x,+y,+z
3 -x,1/2-y,1/2+z
4 +x,1/2+y,1/2+z
5 1/4-x,1/4+y,1/4+z
6 1/4+x,1/4-y,1/4+z
7 1/4-x,3/4+y,3/4+z
8 1/4+x,3/4-y,3/4+z
9 1/2-x,-y,1/2+z
10 1/2+x,+y,1/2+z
11 1/2-x,1/2-y,+z
12 1/2+x,1/2+y,+z
13 3/4-x,1/4+y,3/4+z
14 3/4+x,1/4-y,3/4+z
15 3/4-x,3/4+y,1/4+z
16 3/4+x,3/4-y,1/4+z`,
	56: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,1/2+y,1/2-z
4 +x,1/2-y,1/2+z
5 1/2-x,+y,1/2+z
6 1/2+x,-y,1/2-z
7 1/2-x,1/2-y,+z
8 1/2+x,1/2+y,-z`,
	60: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,+y,1/2-z
4 +x,-y,1/2+z
5 1/2-x,1/2+y,+z
6 1/2+x,1/2-y,-z
7 1/2-x,1/2-y,1/2+z
8 1/2+x,1/2+y,1/2-z`,
	61: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,1/2+y,1/2-z
4 +x,1/2-y,1/2+z
5 1/2-x,-y,1/2+z
6 1/2+x,+y,1/2-z
7 1/2-x,1/2+y,+z
8 1/2+x,1/2-y,-z`,
	76: `
1 +x,+y,+z
2 -y,+x,1/4+z
3 -x,-y,1/2+z
4 +y,-x,3/4+z`,
	86: `
1 -x,-y,-z
2 +x,+y,+z
3 -y,1/2+x,1/2+z
4 +y,1/2-x,1/2-z
5 1/2-y,+x,1/2-z
6 1/2+y,-x,1/2+z
7 1/2-x,1/2-y,+z
8 1/2+x,1/2+y,-z`,
	88: `
1 -x,-y,-z
2 +x,+y,+z
3 -x,1/2-y,+z
4 +x,1/2+y,-z
5 1/4-y,1/4+x,1/4-z
6 1/4+y,1/4-x,1/4+z
7 1/4-y,3/4+x,3/4+z
8 1/4+y,3/4-x,3/4-z
9 1/2-x,-y,1/2+z
10 1/2+x,+y,1/2-z
11 1/2-x,1/2-y,1/2-z
12 1/2+x,1/2+y,1/2+z
13 3/4-y,1/4+x,1/4+z
14 3/4+y,1/4-x,1/4-z
15 3/4-y,3/4+x,3/4-z
16 3/4+y,3/4-x,3/4+z`,
	96: `
1 +y,+x,-z
2 +x,+y,+z
3 -x,-y,1/2+z
4 -y,-x,1/2-z
5 1/2+y,1/2-x,1/4+z
6 1/2+x,1/2-y,1/4-z
7 1/2-x,1/2+y,3/4-z
8 1/2-y,1/2+x,3/4+z`,
	145: `
1 +x,+y,+z
2 -x+y,-x,1/3+z
3 -y,+x-y,2/3+z`,
	148: `
1 -x,-y,-z
2 -x+y,-x,+z
3 -y,+x-y,+z
4 +y,-x+y,-z
5 +x-y,+x,-z
6 +x,+y,+z
7 1/3-x,2/3-y,2/3-z
8 1/3-x+y,2/3-x,2/3+z
9 1/3-y,2/3+x-y,2/3+z
10 1/3+y,2/3-x+y,2/3-z
11 1/3+x-y,2/3+x,2/3-z
12 1/3+x,2/3+y,2/3+z
13 2/3-x,1/3-y,1/3-z
14 2/3-x+y,1/3-x,1/3+z
15 2/3-y,1/3+x-y,1/3+z
16 2/3+y,1/3-x+y,1/3-z
17 2/3+x-y,1/3+x,1/3-z
18 2/3+x,1/3+y,1/3+z`,
	154: `
1 +y,+x,-z
2 +x,+y,+z
3 -x+y,-x,1/3+z
4 +x-y,-y,1/3-z
5 -x,-x+y,2/3-z
6 -y,+x-y,2/3+z`,
	169: `
1 +x,+y,+z
2 +x-y,+x,1/6+z
3 -y,+x-y,1/3+z
4 -x,-y,1/2+z
5 -x+y,-x,2/3+z
6 +y,-x+y,5/6+z`,
}

// OpsText returns the verbatim symmetry operator block for a space group.
// It fails with an UnsupportedSpaceGroupError if the group is not tabulated,
// which is the case for most of the 230 groups. SupportedSpaceGroups lists
// the tabulated ones.
func OpsText(sg int) (string, error) {
	ops, ok := symmetryOps[sg]
	if !ok {
		return "", &UnsupportedSpaceGroupError{sg: sg}
	}
	return ops, nil
}

// HallNumber returns the Hall number for a supported space group. The
// second return value is false if the group is not tabulated.
func HallNumber(sg int) (int, bool) {
	h, ok := hallNumbers[sg]
	return h, ok
}

// Multiplicity returns the number of symmetry operators of a supported
// space group, which is the number of copies of a molecule in a general
// position that the group places in the unit cell. It fails with an
// UnsupportedSpaceGroupError if the group is not tabulated.
func Multiplicity(sg int) (int, error) {
	ops, err := OpsText(sg)
	if err != nil {
		return 0, err
	}
	//each operator line is preceded by exactly one newline.
	return strings.Count(ops, "\n"), nil
}

// SupportedSpaceGroups returns the space group numbers with tabulated
// symmetry operators, in increasing order.
func SupportedSpaceGroups() []int {
	sgs := make([]int, 0, len(symmetryOps))
	for sg := range symmetryOps {
		sgs = append(sgs, sg)
	}
	sort.Ints(sgs)
	return sgs
}
