/*
 * ingest.go, part of gocryst.
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

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	cryst "github.com/rmera/gocryst"
	"gonum.org/v1/gonum/mat"
)

// A DensityFunc estimates the density of a crystal in g/cm3. The dataset
// layer stays agnostic about how densities are obtained: the simple
// mass-over-volume estimate of the cryst package works, and so does any
// external crystallography engine wrapped in this signature.
type DensityFunc func(*cryst.Crystal) (float64, error)

// An Ingester runs datasets into a Store and reads them back. The zero
// value is not usable, use NewIngester.
type Ingester struct {
	store   *Store
	log     *slog.Logger
	density DensityFunc
}

// NewIngester returns an Ingester over the given store. A nil logger
// silences it. The density function may be nil, in which case structures
// without an explicit density field keep a null density in the manifest.
func NewIngester(store *Store, logger *slog.Logger, density DensityFunc) *Ingester {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Ingester{store: store, log: logger, density: density}
}

//the manifest fields that never go into an Entry's Extra map, because they
//are already first-class columns.
var canonicalEntryFields = map[string]bool{
	"name": true, "energy": true, "density": true, "sg": true,
	"a": true, "b": true, "c": true,
	"alpha": true, "beta": true, "gamma": true,
	"com": true, "rod": true, "formula": true, "tokens": true,
}

// Ingest stores a new dataset and builds its manifest. moleculeXYZ is the
// shared molecular geometry in XYZ format; structures is a JSON object
// mapping structure names to records with a "tokens" array and scalar
// properties, of which the one named energyKey is mandatory. densityKey
// optionally names a property to take the density from; structures without
// it get their density from the Ingester's DensityFunc, or none. title
// names the dataset, an empty title gets a random one. Structures that
// fail to parse are skipped and reported in the returned Meta's Warnings,
// a bad structure never aborts the batch.
func (in *Ingester) Ingest(title string, moleculeXYZ, structures []byte, energyKey, densityKey string) (*Meta, error) {
	if energyKey == "" {
		return nil, fmt.Errorf("gocryst: dataset: an energy key is required")
	}
	dsid := title
	if dsid == "" {
		dsid = uuid.NewString()
	}
	if err := in.store.SaveBytes(dsKey(dsid, moleculeXYZFile), moleculeXYZ); err != nil {
		return nil, err
	}
	if err := in.store.SaveBytes(dsKey(dsid, structuresFile), structures); err != nil {
		return nil, err
	}
	symbols, coords, err := cryst.XyzRead(bytes.NewReader(moleculeXYZ))
	if err != nil {
		return nil, err
	}
	if coords == nil {
		return nil, fmt.Errorf("gocryst: dataset: the molecule file contains no atoms")
	}
	if err := in.store.SaveJSON(dsKey(dsid, moleculeFile), NewMolecule(symbols, coords)); err != nil {
		return nil, err
	}
	var records map[string]Record
	if err := json.Unmarshal(structures, &records); err != nil {
		return nil, fmt.Errorf("gocryst: dataset: structures must be a JSON object of named records: %w", err)
	}
	//map iteration order would make manifests non-reproducible.
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	manifest := make([]Entry, 0, len(records))
	warns := []string{}
	for _, name := range names {
		entry, warn := in.parseOne(name, records[name], energyKey, densityKey, symbols, coords)
		if warn != "" {
			in.log.Warn("structure skipped", "dataset", dsid, "reason", warn)
			warns = append(warns, warn)
			continue
		}
		manifest = append(manifest, entry)
	}
	if err := in.store.SaveJSON(dsKey(dsid, manifestFile), manifest); err != nil {
		return nil, err
	}
	meta := &Meta{
		DSID:       dsid,
		Title:      dsid,
		Count:      len(manifest),
		CreatedAt:  time.Now().UTC(),
		EnergyKey:  energyKey,
		DensityKey: densityKey,
		Warnings:   warns,
	}
	if err := in.store.SaveJSON(dsKey(dsid, metaFile), meta); err != nil {
		return nil, err
	}
	in.log.Info("dataset ingested", "dsid", dsid, "structures", len(manifest), "skipped", len(warns))
	return meta, nil
}

//parseOne extracts one manifest Entry from a record. A non-empty warn
//string means the record should be skipped.
func (in *Ingester) parseOne(name string, rec Record, energyKey, densityKey string, symbols []string, coords *mat.Dense) (Entry, string) {
	if len(rec.Tokens) == 0 {
		return Entry{}, fmt.Sprintf("%s: missing tokens", name)
	}
	energy, ok := rec.Props[energyKey]
	if !ok {
		return Entry{}, fmt.Sprintf("%s: missing energy key %q", name, energyKey)
	}
	c, err := buildCrystal(rec, symbols, coords)
	if err != nil {
		return Entry{}, fmt.Sprintf("%s: %v", name, err)
	}
	var density *float64
	if d, ok := rec.Props[densityKey]; densityKey != "" && ok {
		density = &d
	} else if in.density != nil {
		if d, err := in.density(c); err == nil {
			density = &d
		} else {
			//a failed estimate just leaves the density unknown.
			in.log.Debug("density estimate failed", "name", name, "error", err)
		}
	}
	formula, _ := c.Formula()
	var extra map[string]float64
	for k, v := range rec.Props {
		if canonicalEntryFields[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]float64)
		}
		extra[k] = v
	}
	return Entry{
		Name:    name,
		Energy:  energy,
		Density: density,
		SG:      c.SpaceGroup,
		A:       c.Cell.A,
		B:       c.Cell.B,
		C:       c.Cell.C,
		Alpha:   c.Cell.Alpha,
		Beta:    c.Cell.Beta,
		Gamma:   c.Cell.Gamma,
		Com:     c.Center,
		Rod:     c.Rod,
		Formula: formula,
		Extra:   extra,
	}, ""
}

//buildCrystal decodes a record's tokens and attaches the shared molecule.
func buildCrystal(rec Record, symbols []string, coords *mat.Dense) (*cryst.Crystal, error) {
	c, err := cryst.FromTokens(rec.Tokens, rec.Props)
	if err != nil {
		return nil, err
	}
	if err := c.SetMolecule(symbols, coords); err != nil {
		return nil, err
	}
	return c, nil
}

// Datasets returns the Meta of every dataset in the store, newest first.
// Unreadable meta files are skipped.
func (in *Ingester) Datasets() ([]Meta, error) {
	paths, err := in.store.MetaPaths()
	if err != nil {
		return nil, err
	}
	metas := make([]Meta, 0, len(paths))
	for _, p := range paths {
		var m Meta
		if err := in.store.LoadJSON(p, &m); err != nil {
			in.log.Debug("unreadable dataset meta", "path", p, "error", err)
			continue
		}
		metas = append(metas, m)
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Manifest returns the manifest of a dataset.
func (in *Ingester) Manifest(dsid string) ([]Entry, error) {
	if !in.store.Exists(dsKey(dsid, manifestFile)) {
		return nil, fmt.Errorf("gocryst: dataset %q not found", dsid)
	}
	var manifest []Entry
	if err := in.store.LoadJSON(dsKey(dsid, manifestFile), &manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Crystal rebuilds one structure of a dataset, molecule attached, ready
// for CIF rendering.
func (in *Ingester) Crystal(dsid, name string) (*cryst.Crystal, error) {
	if !in.store.Exists(dsKey(dsid, structuresFile)) {
		return nil, fmt.Errorf("gocryst: dataset %q not found", dsid)
	}
	var records map[string]Record
	if err := in.store.LoadJSON(dsKey(dsid, structuresFile), &records); err != nil {
		return nil, err
	}
	rec, ok := records[name]
	if !ok {
		return nil, fmt.Errorf("gocryst: no structure %q in dataset %q", name, dsid)
	}
	var mol Molecule
	if err := in.store.LoadJSON(dsKey(dsid, moleculeFile), &mol); err != nil {
		return nil, err
	}
	symbols, coords, err := mol.Geometry()
	if err != nil {
		return nil, err
	}
	return buildCrystal(rec, symbols, coords)
}
