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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// monthsPerYear is the number of data fields in a monthly-mode record.
const monthsPerYear = 12

var (
	// ErrColumnCount is returned when a record does not have the number
	// of fields implied by the header (annual mode) or exactly
	// 3+12 fields (monthly mode).
	ErrColumnCount = errors.New("record column count mismatch")

	// ErrUnsorted is returned when years do not strictly ascend within
	// a point.
	ErrUnsorted = errors.New("input years are not sorted")
)

// record is one parsed input line: a location, a year, and the year's
// data values (one per output variable in annual mode, one per month in
// monthly mode).
type record struct {
	lon, lat float64
	year     int
	vals     []float64
}

// pointState tracks the position of a scan within the point-sorted record
// stream. The input contract is that years strictly ascend within each
// point's run of records, so a year lower than the previous record's year
// marks the first record of a new point.
type pointState struct {
	prevYear int
	point    int // index of the current point; -1 before the first record
	yearOff  int // offset of the current year within the point's series
	ix, iy   int // grid cell of the current point
}

func newPointState() pointState {
	return pointState{prevYear: math.MaxInt32, point: -1}
}

// advance feeds rec to the state machine, resolving the grid cell when rec
// starts a new point. It reports whether rec is the first record of a new
// point. A repeated year is the one ordering violation the detector can
// see, and is rejected.
func (s *pointState) advance(g *Grid, rec *record) (newPoint bool, err error) {
	switch {
	case rec.year < s.prevYear:
		s.point++
		s.yearOff = 0
		s.ix, s.iy, err = g.CellIndex(rec.lon, rec.lat)
		if err != nil {
			return false, err
		}
		newPoint = true
	case rec.year == s.prevYear:
		return false, fmt.Errorf("ascii2ncf: %w: year %d repeats within point %d",
			ErrUnsorted, rec.year, s.point)
	default:
		s.yearOff++
	}
	s.prevYear = rec.year
	return newPoint, nil
}

// parseRecord parses one input line holding lon, lat, year, and nvals data
// values.
func parseRecord(line string, nvals int) (*record, error) {
	fields := strings.Fields(line)
	if len(fields) != nvals+3 {
		return nil, fmt.Errorf("ascii2ncf: %w: expected %d fields but got %d in %q",
			ErrColumnCount, nvals+3, len(fields), line)
	}
	rec := &record{vals: make([]float64, nvals)}
	var err error
	if rec.lon, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return nil, fmt.Errorf("ascii2ncf: parsing longitude: %v", err)
	}
	if rec.lat, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return nil, fmt.Errorf("ascii2ncf: parsing latitude: %v", err)
	}
	if rec.year, err = strconv.Atoi(fields[2]); err != nil {
		return nil, fmt.Errorf("ascii2ncf: parsing year: %v", err)
	}
	for i, f := range fields[3:] {
		if rec.vals[i], err = strconv.ParseFloat(f, 64); err != nil {
			return nil, fmt.Errorf("ascii2ncf: parsing data field %d: %v", i+4, err)
		}
	}
	return rec, nil
}

// readInput reads the whole point-record stream from r. The first line is
// a header; in annual mode its tokens past the third name the output
// variables and fix the per-record field count, while in monthly mode it
// is skipped and every record must hold exactly 12 data values. All
// records are validated here, before any array is allocated or written.
func readInput(r io.Reader, monthly bool) (names []string, recs []*record, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, fmt.Errorf("ascii2ncf: reading header: %v", err)
		}
		return nil, nil, fmt.Errorf("ascii2ncf: input is empty")
	}
	header := strings.Fields(scanner.Text())
	var nvals int
	if monthly {
		nvals = monthsPerYear
	} else {
		nvals = len(header) - 3
		if nvals < 1 {
			return nil, nil, fmt.Errorf("ascii2ncf: %w: header %q implies no data columns",
				ErrColumnCount, strings.Join(header, " "))
		}
		names = header[3:]
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseRecord(line, nvals)
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("ascii2ncf: reading records: %v", err)
	}
	return names, recs, nil
}

// firstPointYears returns the length of the first point's year series.
// The first point's extent fixes the time axis and cube depth for the
// whole file; other points are assumed to share it.
func firstPointYears(recs []*record) int {
	n := 0
	for i, rec := range recs {
		if i > 0 && rec.year < recs[i-1].year {
			break
		}
		n++
	}
	return n
}
