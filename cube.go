/*
Copyright © 2018 the ascii2ncf authors.
This file is part of ascii2ncf.

ascii2ncf is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ascii2ncf is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ascii2ncf.  If not, see <http://www.gnu.org/licenses/>.
*/

package ascii2ncf

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// nanDense allocates a dense array of the given shape with every element
// set to NaN. Grid cells never touched by a record must read back as NaN
// rather than zero, so the prefill happens before any scatter-write.
func nanDense(shape ...int) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	for i := range a.Elements {
		a.Elements[i] = math.NaN()
	}
	return a
}

// accumulator scatters records into NaN-prefilled (time, lat, lon) cubes.
// In annual mode there is one cube of depth nYears per data column; in
// monthly mode there is one cube of depth 12 per year of the first
// point's series. All cubes are allocated up front, after the first
// point's extent is known, and stay in memory until the whole stream has
// been accumulated.
type accumulator struct {
	monthly bool
	cubes   []*sparse.DenseArray
}

func newAccumulator(g *Grid, monthly bool, nCubes, depth int) *accumulator {
	a := &accumulator{monthly: monthly}
	a.cubes = make([]*sparse.DenseArray, nCubes)
	for i := range a.cubes {
		a.cubes[i] = nanDense(depth, g.Ny(), g.Nx())
	}
	return a
}

// add scatters rec's values into the cell and year slot identified by st.
func (a *accumulator) add(st *pointState, rec *record) error {
	if a.monthly {
		if st.yearOff >= len(a.cubes) {
			return fmt.Errorf("ascii2ncf: point %d has more than the %d years of the first point",
				st.point, len(a.cubes))
		}
		cube := a.cubes[st.yearOff]
		for m, v := range rec.vals {
			cube.Set(v, m, st.iy, st.ix)
		}
		return nil
	}
	if st.yearOff >= a.cubes[0].Shape[0] {
		return fmt.Errorf("ascii2ncf: point %d has more than the %d years of the first point",
			st.point, a.cubes[0].Shape[0])
	}
	for c, v := range rec.vals {
		a.cubes[c].Set(v, st.yearOff, st.iy, st.ix)
	}
	return nil
}
