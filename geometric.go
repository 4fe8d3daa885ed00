/*
 * geometric.go, part of gocryst.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Coordinates here follow the row-vector convention: an N-atom geometry is
//an Nx3 matrix with one atom per row, and operators multiply from the
//right. The lattice basis is likewise a 3x3 matrix of row vectors, so a
//fractional row f becomes Cartesian as f*B and goes back as c*inv(B).

const appzero float64 = 0.0000001 //used to get rid of floating point rounding before acos and before inverting a basis.

//absCap caps val to the [-m, m] interval. Trig intermediates that are
//mathematically bound to [-1, 1] can land just outside it through rounding,
//and acos turns that into NaN, so every acos argument in this file goes
//through here first.
func absCap(val, m float64) float64 {
	return math.Max(math.Min(val, m), -m)
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// LatticeBasis builds the 3x3 row-vector lattice basis for the given cell
// lengths (in A) and angles (in degrees). The orientation convention puts
// vector a in the xz plane and vector c along z, so the same cell always
// produces the same basis.
func LatticeBasis(a, b, c, alpha, beta, gamma float64) *mat.Dense {
	alphaR := deg2rad(alpha)
	betaR := deg2rad(beta)
	cosAlpha := math.Cos(alphaR)
	cosBeta := math.Cos(betaR)
	cosGamma := math.Cos(deg2rad(gamma))
	sinAlpha := math.Sin(alphaR)
	sinBeta := math.Sin(betaR)
	val := (cosAlpha*cosBeta - cosGamma) / (sinAlpha * sinBeta)
	val = absCap(val, 1)
	gammaStar := math.Acos(val)
	return mat.NewDense(3, 3, []float64{
		a * sinBeta, 0.0, a * cosBeta,
		-b * sinAlpha * math.Cos(gammaStar), b * sinAlpha * math.Sin(gammaStar), b * cosAlpha,
		0.0, 0.0, c,
	})
}

// RotatorFromRodrigues builds the 3x3 rotation matrix for a Rodrigues
// vector, whose direction is the rotation axis and whose norm is
// tan(theta/2). A vector with norm under 1e-8 gives the identity.
func RotatorFromRodrigues(rod [3]float64) *mat.Dense {
	ret := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	norm := math.Sqrt(rod[0]*rod[0] + rod[1]*rod[1] + rod[2]*rod[2])
	if norm < 1e-8 {
		return ret
	}
	theta := 2 * math.Atan(norm)
	kx := rod[0] / norm
	ky := rod[1] / norm
	kz := rod[2] / norm
	K := mat.NewDense(3, 3, []float64{
		0, -kz, ky,
		kz, 0, -kx,
		-ky, kx, 0,
	})
	K2 := mat.NewDense(3, 3, nil)
	K2.Mul(K, K)
	sin := math.Sin(theta)
	vers := 1 - math.Cos(theta)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret.Set(i, j, ret.At(i, j)+sin*K.At(i, j)+vers*K2.At(i, j))
		}
	}
	return ret
}

// RodriguesFromRotator extracts the Rodrigues vector from a rotation
// matrix. Rotations within 1e-8 rad of the identity give the zero vector,
// as the axis is undefined there.
func RodriguesFromRotator(R mat.Matrix) [3]float64 {
	cos := (R.At(0, 0) + R.At(1, 1) + R.At(2, 2) - 1) / 2
	cos = absCap(cos, 1)
	theta := math.Acos(cos)
	if math.Abs(theta) < 1e-8 {
		return [3]float64{}
	}
	s := 2 * math.Sin(theta)
	scale := math.Tan(theta / 2)
	return [3]float64{
		(R.At(2, 1) - R.At(1, 2)) / s * scale,
		(R.At(0, 2) - R.At(2, 0)) / s * scale,
		(R.At(1, 0) - R.At(0, 1)) / s * scale,
	}
}

// FracToCart transforms the rows of frac from fractional to Cartesian
// coordinates in the given lattice basis.
func FracToCart(frac, basis mat.Matrix) *mat.Dense {
	r, _ := frac.Dims()
	cart := mat.NewDense(r, 3, nil)
	cart.Mul(frac, basis)
	return cart
}

// CartToFrac transforms the rows of cart from Cartesian to fractional
// coordinates in the given lattice basis. It fails with a
// DegenerateLatticeError if the basis has (numerically) zero volume.
func CartToFrac(cart, basis mat.Matrix) (*mat.Dense, error) {
	if math.Abs(mat.Det(basis)) < appzero {
		return nil, &DegenerateLatticeError{}
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(basis); err != nil {
		return nil, &DegenerateLatticeError{}
	}
	r, _ := cart.Dims()
	frac := mat.NewDense(r, 3, nil)
	frac.Mul(cart, inv)
	return frac, nil
}

// AtomFractCoords places the molecule in the unit cell and returns the
// atom symbols with the corresponding fractional coordinates, one atom per
// row. The local geometry is rotated by the Rodrigues rotation, translated
// to the center of mass, and taken back to fractional coordinates. It
// fails with a MissingGeometryError if no molecule has been set (decoding
// a token sequence does not set one) and with a DegenerateLatticeError if
// the cell has zero volume.
func (C *Crystal) AtomFractCoords() ([]string, *mat.Dense, error) {
	if !C.HasMolecule() {
		return nil, nil, &MissingGeometryError{}
	}
	basis := C.Cell.Basis()
	rot := RotatorFromRodrigues(C.Rod)
	n, _ := C.local.Dims()
	cart := mat.NewDense(n, 3, nil)
	cart.Mul(C.local, rot.T())
	com := FracToCart(mat.NewDense(1, 3, []float64{C.Center[0], C.Center[1], C.Center[2]}), basis)
	for i := 0; i < n; i++ {
		row := cart.RawRowView(i)
		row[0] += com.At(0, 0)
		row[1] += com.At(0, 1)
		row[2] += com.At(0, 2)
	}
	frac, err := CartToFrac(cart, basis)
	if err != nil {
		return nil, nil, errDecorate(err, "AtomFractCoords")
	}
	symbols := make([]string, len(C.symbols))
	copy(symbols, C.symbols)
	return symbols, frac, nil
}
