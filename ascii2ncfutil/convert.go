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

package ascii2ncfutil

import (
	"log"
	"os"

	"github.com/spatialmodel/ascii2ncf"
)

// Convert converts the ASCII point time series in inputFile into a
// gridded NetCDF file at outputFile.
//
// gridSpec holds 1, 2, or 6 values describing the output grid (see
// ascii2ncf.NewGrid).
//
// monthly specifies that each record holds 12 monthly values for one year
// instead of one annual value per output variable.
//
// invertLat reverses the latitude ordering of the output grid.
//
// centered specifies that record coordinates refer to cell centers rather
// than lower-left cell corners.
//
// year, if positive, overrides the reference year in the time units
// attribute.
//
// units is written to the units attribute of each output data variable.
func Convert(inputFile, outputFile string, gridSpec []float64, monthly, invertLat, centered bool, year int, units string) error {
	g, err := ascii2ncf.NewGrid(invertLat, centered, gridSpec...)
	if err != nil {
		return err
	}

	log.Println("Reading input data...")
	r, err := os.Open(inputFile)
	if err != nil {
		return err
	}
	defer r.Close()
	d, err := ascii2ncf.ReadPoints(r, g, monthly, year, units)
	if err != nil {
		return err
	}
	log.Printf("Gridded %d points over %d years onto a %d×%d grid",
		d.NPoints, d.NYears, g.Nx(), g.Ny())

	log.Println("Writing output...")
	w, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	if err := d.Write(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
