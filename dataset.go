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

// Package ascii2ncf converts point-indexed ASCII time-series records into
// dense (time, lat, lon) arrays and writes them to NetCDF files.
package ascii2ncf

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// Version gives the version number of this version of ascii2ncf.
const Version = "1.1.0"

// MonthlyVarName is the name of the single output variable holding the
// concatenated monthly data.
const MonthlyVarName = "data"

// Dataset holds a fully accumulated set of output cubes together with the
// grid geometry and time axis needed to write them. Memory use is
// proportional to grid cells × time depth × variable count; there is no
// streaming eviction, so that product is the capacity limit of a run.
type Dataset struct {
	Grid *Grid
	Time *TimeAxis

	// Names holds one output variable name per cube: the header tokens
	// in annual mode, or just MonthlyVarName in monthly mode.
	Names []string

	// Units is the value written to each data variable's units attribute.
	Units string

	Monthly bool
	NYears  int // length of the first point's year series
	NPoints int // number of spatial points accumulated

	cubes []*sparse.DenseArray
}

// ReadPoints reads the whole point-record stream from r and accumulates it
// onto g. The scan is strictly sequential and single-pass: record shapes
// are validated and the first point's year extent is discovered before any
// cube is allocated, and the NaN-prefilled cubes are then filled in one
// pure accumulation pass. refYear, if positive, overrides the reference
// year in the time units attribute; units is the data units attribute.
// Any error aborts the conversion.
func ReadPoints(r io.Reader, g *Grid, monthly bool, refYear int, units string) (*Dataset, error) {
	names, recs, err := readInput(r, monthly)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("ascii2ncf: input contains no records")
	}
	nYears := firstPointYears(recs)
	if refYear <= 0 {
		refYear = recs[0].year
	}

	d := &Dataset{Grid: g, Monthly: monthly, Units: units, NYears: nYears}
	var acc *accumulator
	if monthly {
		d.Names = []string{MonthlyVarName}
		d.Time = monthlyTimeAxis(nYears, refYear)
		acc = newAccumulator(g, true, nYears, monthsPerYear)
	} else {
		d.Names = names
		d.Time = annualTimeAxis(nYears, refYear)
		acc = newAccumulator(g, false, len(names), nYears)
	}

	st := newPointState()
	for _, rec := range recs {
		if _, err := st.advance(g, rec); err != nil {
			return nil, err
		}
		if err := acc.add(&st, rec); err != nil {
			return nil, err
		}
	}
	d.NPoints = st.point + 1
	d.cubes = acc.cubes
	return d, nil
}

// Value returns the accumulated value for output variable (or year, in
// monthly mode) cube c at time slot k and cell (ix, iy). Cells never
// touched by a record return NaN.
func (d *Dataset) Value(c, k, iy, ix int) float64 {
	return d.cubes[c].Get(k, iy, ix)
}

// Write writes d to NetCDF file w. The time dimension is the record
// (unlimited) dimension; the time axis and each cube are written as
// rectangular slabs, monthly cubes at record offset 12×year. Writes are
// synchronous and in order, so a failed run leaves at most a prefix of the
// output on disk.
func (d *Dataset) Write(w *os.File) error {
	lons, lats := d.Grid.Lons(), d.Grid.Lats()
	h := cdf.NewHeader(
		[]string{"time", "lat", "lon"},
		[]int{0, len(lats), len(lons)})
	h.AddAttribute("", "comment", "ascii2ncf gridded point time series")
	h.AddAttribute("", "history", "created by ascii2ncf v"+Version)

	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddAttribute("lon", "long_name", "longitude")
	h.AddAttribute("lon", "units", "degrees_east")
	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddAttribute("lat", "long_name", "latitude")
	h.AddAttribute("lat", "units", "degrees_north")
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "long_name", "time")
	h.AddAttribute("time", "units", d.Time.Units)
	h.AddAttribute("time", "calendar", d.Time.Calendar)
	for _, name := range d.Names {
		h.AddVariable(name, []string{"time", "lat", "lon"}, []float32{0})
		h.AddAttribute(name, "units", d.Units)
		h.AddAttribute(name, "missing_value", []float32{float32(math.NaN())})
	}
	h.Define()

	f, err := cdf.Create(w, h) // writes the header to w
	if err != nil {
		return fmt.Errorf("ascii2ncf: creating output file: %v", err)
	}
	if err := writeCoord(f, "lon", lons); err != nil {
		return err
	}
	if err := writeCoord(f, "lat", lats); err != nil {
		return err
	}
	tw := f.Writer("time", []int{0}, []int{len(d.Time.Values)})
	if _, err := tw.Write(d.Time.Values); err != nil {
		return fmt.Errorf("ascii2ncf: writing time axis: %v", err)
	}
	for c, cube := range d.cubes {
		name, offset := d.Names[0], c*monthsPerYear
		if !d.Monthly {
			name, offset = d.Names[c], 0
		}
		if err := writeSlab(f, name, cube, offset); err != nil {
			return err
		}
	}
	return cdf.UpdateNumRecs(w)
}

// writeSlab writes cube into variable Var starting at record offset.
func writeSlab(f *cdf.File, Var string, data *sparse.DenseArray, offset int) error {
	// Check that data matches dimensions.
	n := 1
	for _, v := range data.Shape {
		n *= v
	}
	if len(data.Elements) != n {
		return fmt.Errorf("ascii2ncf: dims of %s are %d but array length is %d",
			Var, n, len(data.Elements))
	}
	data32 := make([]float32, len(data.Elements))
	for i, e := range data.Elements {
		data32[i] = float32(e)
	}
	start := []int{offset, 0, 0}
	end := []int{offset + data.Shape[0], data.Shape[1], data.Shape[2]}
	w := f.Writer(Var, start, end)
	if _, err := w.Write(data32); err != nil {
		return fmt.Errorf("ascii2ncf: writing variable %s to netcdf file: %v", Var, err)
	}
	return nil
}

func writeCoord(f *cdf.File, name string, vals []float64) error {
	w := f.Writer(name, []int{0}, []int{len(vals)})
	if _, err := w.Write(vals); err != nil {
		return fmt.Errorf("ascii2ncf: writing coordinate %s: %v", name, err)
	}
	return nil
}

// ReadDataset reads a file previously written by (*Dataset).Write back
// into memory. It is mainly useful for inspecting conversion results.
// The header stores the unlimited time dimension as zero, so the record
// count is derived from the file size and the reads are given explicit
// extents.
func ReadDataset(r *os.File) (*Dataset, error) {
	f, err := cdf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("ascii2ncf: opening dataset: %v", err)
	}
	fi, err := r.Stat()
	if err != nil {
		return nil, fmt.Errorf("ascii2ncf: opening dataset: %v", err)
	}
	nrec := int(f.Header.NumRecs(fi.Size()))
	d := new(Dataset)
	d.Time = &TimeAxis{
		Units:    f.Header.GetAttribute("time", "units").(string),
		Calendar: f.Header.GetAttribute("time", "calendar").(string),
	}
	d.Time.Values = make([]float64, nrec)
	if _, err := f.Reader("time", []int{0}, []int{nrec}).Read(d.Time.Values); err != nil {
		return nil, fmt.Errorf("ascii2ncf: reading time axis: %v", err)
	}
	for _, v := range f.Header.Variables() {
		if v == "lon" || v == "lat" || v == "time" {
			continue
		}
		lengths := f.Header.Lengths(v)
		dims := []int{nrec, lengths[1], lengths[2]}
		tmp := make([]float32, dims[0]*dims[1]*dims[2])
		if _, err := f.Reader(v, []int{0, 0, 0}, dims).Read(tmp); err != nil {
			return nil, fmt.Errorf("ascii2ncf: reading variable %s: %v", v, err)
		}
		cube := sparse.ZerosDense(dims...)
		for i, val := range tmp {
			cube.Elements[i] = float64(val)
		}
		d.Names = append(d.Names, v)
		d.cubes = append(d.cubes, cube)
		d.Units = f.Header.GetAttribute(v, "units").(string)
	}
	d.Monthly = len(d.Names) == 1 && d.Names[0] == MonthlyVarName
	return d, nil
}
