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
	"errors"
	"fmt"
	"math"
)

// Default extent used by the 1- and 2-value grid specifications. The high
// edges sit one cell inside the antimeridian and pole so that the global
// grid has exactly 360/dx × 180/dy cells with centers at
// -180+dx/2 … 180-dx/2 and -90+dy/2 … 90-dy/2.
const (
	defaultWest  = -180.
	defaultSouth = -90.
	defaultEast  = 180.
	defaultNorth = 90.
)

var (
	// ErrInvalidGrid is returned for grid specifications with a wrong
	// number of values or a non-positive resolution.
	ErrInvalidGrid = errors.New("invalid grid specification")

	// ErrIndexRange is returned when a record's coordinates map to a
	// cell outside the grid.
	ErrIndexRange = errors.New("coordinates outside of grid")
)

// Grid is a regular latitude-longitude lattice. Records are assigned to
// cells by CellIndex; cell center coordinates are given by Lons and Lats.
// A Grid is immutable once constructed.
type Grid struct {
	North, West, South, East float64 // grid edges [degrees]
	Dx, Dy                   float64 // cell size [degrees]

	// InvertLat causes latitude rows to be stored and written in
	// reversed order, so that row 0 is the northernmost row.
	InvertLat bool

	// CellCenter specifies that input coordinates refer to cell centers
	// rather than lower-left cell corners.
	CellCenter bool

	nx, ny int
}

// NewGrid creates a regular grid from a 1-, 2-, or 6-value specification:
// a single value sets both resolutions over the global extent, two values
// set the x and y resolutions over the global extent, and six values give
// north, west, south, east, dx, and dy explicitly.
func NewGrid(invertLat, cellCenter bool, spec ...float64) (*Grid, error) {
	g := &Grid{InvertLat: invertLat, CellCenter: cellCenter}
	switch len(spec) {
	case 1:
		g.Dx, g.Dy = spec[0], spec[0]
	case 2:
		g.Dx, g.Dy = spec[0], spec[1]
	case 6:
		g.North, g.West, g.South, g.East = spec[0], spec[1], spec[2], spec[3]
		g.Dx, g.Dy = spec[4], spec[5]
	default:
		return nil, fmt.Errorf("ascii2ncf: %w: expected 1, 2, or 6 values but got %d",
			ErrInvalidGrid, len(spec))
	}
	if g.Dx <= 0 || g.Dy <= 0 {
		return nil, fmt.Errorf("ascii2ncf: %w: resolution must be positive but is (%g, %g)",
			ErrInvalidGrid, g.Dx, g.Dy)
	}
	if len(spec) != 6 {
		g.West, g.South = defaultWest, defaultSouth
		g.East, g.North = defaultEast-g.Dx, defaultNorth-g.Dy
	}
	g.nx = int(math.Floor((g.East - g.West + g.Dx) / g.Dx))
	g.ny = int(math.Floor((g.North - g.South + g.Dy) / g.Dy))
	if g.nx < 1 || g.ny < 1 {
		return nil, fmt.Errorf("ascii2ncf: %w: extent (%g,%g)-(%g,%g) holds no cells",
			ErrInvalidGrid, g.West, g.South, g.East, g.North)
	}
	return g, nil
}

// Nx returns the number of grid cells in the West-East direction.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the number of grid cells in the South-North direction.
func (g *Grid) Ny() int { return g.ny }

// Lons returns the cell center longitudes.
func (g *Grid) Lons() []float64 {
	o := make([]float64, g.nx)
	for i := range o {
		o[i] = g.West + g.Dx*float64(i) + g.Dx/2
	}
	return o
}

// Lats returns the cell center latitudes, reversed if InvertLat is set.
func (g *Grid) Lats() []float64 {
	o := make([]float64, g.ny)
	for i := range o {
		o[i] = g.South + g.Dy*float64(i) + g.Dy/2
	}
	if g.InvertLat {
		for i, j := 0, len(o)-1; i < j; i, j = i+1, j-1 {
			o[i], o[j] = o[j], o[i]
		}
	}
	return o
}

// CellIndex returns the grid cell holding the point (lon, lat).
// Coordinates are interpreted as lower-left cell corners, or as cell
// centers if CellCenter is set; either way points on the lattice land on
// exact integers before rounding, so the result is insensitive to
// floating-point fuzz in the input. The returned iy accounts for
// InvertLat. Points outside the grid return ErrIndexRange.
func (g *Grid) CellIndex(lon, lat float64) (ix, iy int, err error) {
	x := (lon - g.West) / g.Dx
	y := (lat - g.South) / g.Dy
	if g.CellCenter {
		x -= 0.5
		y -= 0.5
	}
	ix = int(math.Round(x))
	iy = int(math.Round(y))
	if ix < 0 || ix >= g.nx || iy < 0 || iy >= g.ny {
		return 0, 0, fmt.Errorf("ascii2ncf: %w: point (%g, %g) maps to cell (%d, %d) of a %d×%d grid",
			ErrIndexRange, lon, lat, ix, iy, g.nx, g.ny)
	}
	if g.InvertLat {
		iy = g.ny - 1 - iy
	}
	return ix, iy, nil
}
