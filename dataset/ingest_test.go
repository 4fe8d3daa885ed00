/*
 * ingest_test.go, part of gocryst.
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
 */

package dataset

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	cryst "github.com/rmera/gocryst"
)

const testMoleculeXYZ = `2
carbon monoxide
C    0.000    0.000    0.000
O    1.128    0.000    0.000
`

//4 CO molecules in 1000 A3, in g/cm3. What the mass-over-volume estimate
//gives for the P21/c packings built by testStructures.
const testCODensity = 0.186047

func densityFromCryst(c *cryst.Crystal) (float64, error) {
	return c.Density()
}

//testStructures builds a structures.json payload with two good packings
//and three broken ones.
func testStructures(Te *testing.T) []byte {
	mk := func() []string {
		c := cryst.New([]string{"[C]", "[O]"}, 14,
			cryst.Cell{A: 10, B: 10, C: 10, Alpha: 90, Beta: 90, Gamma: 90},
			[3]float64{0.25, 0.25, 0.25}, [3]float64{})
		return c.Tokens()
	}
	payload := map[string]any{
		"alpha":   map[string]any{"tokens": mk(), "dft_energy": -1.25, "rho": 1.11, "rank": 1},
		"beta":    map[string]any{"tokens": mk(), "dft_energy": -2.5},
		"gamma":   map[string]any{"dft_energy": -3.0},
		"delta":   map[string]any{"tokens": mk()},
		"epsilon": map[string]any{"tokens": []string{"<SELF>", "[C]", "</SELF>"}, "dft_energy": -4.0},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		Te.Fatal(err)
	}
	return data
}

func TestIngest(Te *testing.T) {
	st := NewStore(Te.TempDir())
	in := NewIngester(st, nil, densityFromCryst)
	meta, err := in.Ingest("co-pack", []byte(testMoleculeXYZ), testStructures(Te), "dft_energy", "rho")
	if err != nil {
		Te.Fatal(err)
	}
	if meta.DSID != "co-pack" || meta.Title != "co-pack" {
		Te.Errorf("meta names the dataset %q/%q", meta.DSID, meta.Title)
	}
	if meta.Count != 2 {
		Te.Errorf("ingested %d structures, want 2", meta.Count)
	}
	if len(meta.Warnings) != 3 {
		Te.Fatalf("got warnings %v, want 3 of them", meta.Warnings)
	}
	//records are processed in name order, so the warnings are ordered too.
	for i, prefix := range []string{"delta:", "epsilon:", "gamma:"} {
		if !strings.HasPrefix(meta.Warnings[i], prefix) {
			Te.Errorf("warning %d = %q, want it about %q", i, meta.Warnings[i], prefix)
		}
	}
	for _, file := range []string{moleculeXYZFile, structuresFile, moleculeFile, manifestFile, metaFile} {
		if !st.Exists(dsKey("co-pack", file)) {
			Te.Errorf("ingestion did not store %s", file)
		}
	}
	manifest, err := in.Manifest("co-pack")
	if err != nil {
		Te.Fatal(err)
	}
	if len(manifest) != 2 || manifest[0].Name != "alpha" || manifest[1].Name != "beta" {
		Te.Fatalf("manifest = %+v", manifest)
	}
	alpha, beta := manifest[0], manifest[1]
	if alpha.Energy != -1.25 || beta.Energy != -2.5 {
		Te.Errorf("energies = %f, %f", alpha.Energy, beta.Energy)
	}
	if alpha.Density == nil || *alpha.Density != 1.11 {
		Te.Error("alpha should take its density straight from the rho field")
	}
	if beta.Density == nil || math.Abs(*beta.Density-testCODensity) > 1e-4 {
		Te.Error("beta should get its density from the estimator")
	}
	if alpha.SG != 14 || alpha.A != 10 || alpha.Alpha != 90 {
		Te.Errorf("alpha cell = sg %d, a %f, alpha %f", alpha.SG, alpha.A, alpha.Alpha)
	}
	if alpha.Com != [3]float64{0.25, 0.25, 0.25} {
		Te.Errorf("alpha com = %v", alpha.Com)
	}
	if alpha.Formula != "CO" {
		Te.Errorf("alpha formula = %q", alpha.Formula)
	}
	if len(alpha.Extra) != 3 || alpha.Extra["rank"] != 1 {
		Te.Errorf("alpha extras = %v", alpha.Extra)
	}
	if len(beta.Extra) != 1 {
		Te.Errorf("beta extras = %v", beta.Extra)
	}
}

func TestIngestBadInputs(Te *testing.T) {
	st := NewStore(Te.TempDir())
	in := NewIngester(st, nil, nil)
	if _, err := in.Ingest("x", []byte(testMoleculeXYZ), testStructures(Te), "", ""); err == nil {
		Te.Error("expected an error for a missing energy key")
	}
	if _, err := in.Ingest("x", []byte(testMoleculeXYZ), []byte("[1,2]"), "dft_energy", ""); err == nil {
		Te.Error("expected an error for a structures array instead of an object")
	}
	if _, err := in.Ingest("x", []byte("\n"), testStructures(Te), "dft_energy", ""); err == nil {
		Te.Error("expected an error for an atomless molecule file")
	}
}

func TestDatasetListing(Te *testing.T) {
	st := NewStore(Te.TempDir())
	in := NewIngester(st, nil, nil)
	if _, err := in.Ingest("older", []byte(testMoleculeXYZ), testStructures(Te), "dft_energy", ""); err != nil {
		Te.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := in.Ingest("newer", []byte(testMoleculeXYZ), testStructures(Te), "dft_energy", ""); err != nil {
		Te.Fatal(err)
	}
	metas, err := in.Datasets()
	if err != nil {
		Te.Fatal(err)
	}
	if len(metas) != 2 {
		Te.Fatalf("got %d datasets", len(metas))
	}
	if metas[0].DSID != "newer" || metas[1].DSID != "older" {
		Te.Errorf("datasets not newest first: %s, %s", metas[0].DSID, metas[1].DSID)
	}
	if _, err := in.Manifest("no-such-dataset"); err == nil {
		Te.Error("expected an error for a missing dataset")
	}
}

func TestCrystalFromDataset(Te *testing.T) {
	st := NewStore(Te.TempDir())
	in := NewIngester(st, nil, nil)
	if _, err := in.Ingest("co-pack", []byte(testMoleculeXYZ), testStructures(Te), "dft_energy", ""); err != nil {
		Te.Fatal(err)
	}
	c, err := in.Crystal("co-pack", "alpha")
	if err != nil {
		Te.Fatal(err)
	}
	if c.NAtoms() != 2 || c.SpaceGroup != 14 {
		Te.Errorf("rebuilt crystal: %d atoms, group %d", c.NAtoms(), c.SpaceGroup)
	}
	if e, ok := c.Property("dft_energy"); !ok || e != -1.25 {
		Te.Error("the record's properties should ride along into the crystal")
	}
	text, err := c.CIFString()
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasSuffix(text, cryst.Terminator+"\n") {
		Te.Error("the rebuilt crystal should render to a full CIF block")
	}
	if _, err := in.Crystal("co-pack", "nope"); err == nil {
		Te.Error("expected an error for an unknown structure name")
	}
	if _, err := in.Crystal("no-such-dataset", "alpha"); err == nil {
		Te.Error("expected an error for a missing dataset")
	}
}

func TestLandscape(Te *testing.T) {
	st := NewStore(Te.TempDir())
	plain := NewIngester(st, nil, nil)
	if _, err := plain.Ingest("scape", []byte(testMoleculeXYZ), testStructures(Te), "dft_energy", ""); err != nil {
		Te.Fatal(err)
	}
	//without a density engine nothing can be placed on the landscape.
	pts, err := plain.Landscape("scape")
	if err != nil {
		Te.Fatal(err)
	}
	if len(pts) != 0 {
		Te.Fatalf("got %d points without a density engine", len(pts))
	}
	rich := NewIngester(st, nil, densityFromCryst)
	pts, err = rich.Landscape("scape")
	if err != nil {
		Te.Fatal(err)
	}
	if len(pts) != 2 {
		Te.Fatalf("got %d points, want 2", len(pts))
	}
	if pts[0].Name != "alpha" || pts[0].Y != -1.25 || pts[1].Y != -2.5 {
		Te.Errorf("points = %+v", pts)
	}
	for _, p := range pts {
		if math.Abs(p.X-testCODensity) > 1e-4 {
			Te.Errorf("point %s at density %f", p.Name, p.X)
		}
		if p.Label != "CO" {
			Te.Errorf("point %s labeled %q", p.Name, p.Label)
		}
	}
	//the estimates must now be cached in the manifest, so even an Ingester
	//without a density engine sees the full landscape.
	manifest, err := plain.Manifest("scape")
	if err != nil {
		Te.Fatal(err)
	}
	for _, m := range manifest {
		if m.Density == nil {
			Te.Errorf("density of %s not cached back", m.Name)
		}
	}
	pts, err = plain.Landscape("scape")
	if err != nil {
		Te.Fatal(err)
	}
	if len(pts) != 2 {
		Te.Errorf("cached landscape has %d points", len(pts))
	}
}
