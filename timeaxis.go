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

	"gonum.org/v1/gonum/floats"
)

// daysPerMonth is the fixed no-leap month lengths; February is always 28.
var daysPerMonth = []float64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// TimeAxis is the output time coordinate together with its calendar
// metadata.
type TimeAxis struct {
	Values   []float64
	Units    string
	Calendar string
	RefYear  int
}

// annualTimeAxis returns a time axis with one entry per year at the day
// offset of the last day of each 365-day year: k*365 + 364.
func annualTimeAxis(nYears, refYear int) *TimeAxis {
	v := make([]float64, nYears)
	for k := range v {
		v[k] = float64(k)*365 + 364
	}
	return &TimeAxis{
		Values:   v,
		Units:    fmt.Sprintf("days since %d-01-01 00:00:00", refYear),
		Calendar: "noleap",
		RefYear:  refYear,
	}
}

// monthlyTimeAxis returns a time axis with one entry per month: the
// cumulative end-of-month day offset within the year minus one, plus 365
// days for each prior year.
func monthlyTimeAxis(nYears, refYear int) *TimeAxis {
	bounds := make([]float64, len(daysPerMonth))
	floats.CumSum(bounds, daysPerMonth)
	v := make([]float64, 0, nYears*len(bounds))
	for k := 0; k < nYears; k++ {
		for _, b := range bounds {
			v = append(v, float64(k)*365+b-1)
		}
	}
	return &TimeAxis{
		Values:   v,
		Units:    fmt.Sprintf("day since %d-01-01 00:00:00", refYear),
		Calendar: "gregorian",
		RefYear:  refYear,
	}
}
