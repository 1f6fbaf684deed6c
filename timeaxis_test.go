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
	"reflect"
	"testing"
)

func TestAnnualTimeAxis(t *testing.T) {
	ta := annualTimeAxis(3, 1901)
	if want := []float64{364, 729, 1094}; !reflect.DeepEqual(ta.Values, want) {
		t.Errorf("want %v but have %v", want, ta.Values)
	}
	for k := 1; k < len(ta.Values); k++ {
		if ta.Values[k]-ta.Values[k-1] != 365 {
			t.Errorf("entries %d and %d are not 365 days apart", k-1, k)
		}
	}
	if ta.Units != "days since 1901-01-01 00:00:00" {
		t.Errorf("unexpected units %q", ta.Units)
	}
	if ta.Calendar != "noleap" {
		t.Errorf("unexpected calendar %q", ta.Calendar)
	}
}

func TestMonthlyTimeAxis(t *testing.T) {
	ta := monthlyTimeAxis(2, 1961)
	wantYear1 := []float64{30, 58, 89, 119, 150, 180, 211, 242, 272, 303, 333, 364}
	if !reflect.DeepEqual(ta.Values[:12], wantYear1) {
		t.Errorf("first year: want %v but have %v", wantYear1, ta.Values[:12])
	}
	if len(ta.Values) != 24 {
		t.Fatalf("want 24 entries but have %d", len(ta.Values))
	}
	for m := 0; m < 12; m++ {
		if ta.Values[12+m] != wantYear1[m]+365 {
			t.Errorf("month %d of year 2: want %g but have %g", m, wantYear1[m]+365, ta.Values[12+m])
		}
	}
	// Steps between entries reproduce the no-leap month lengths,
	// including across the year boundary.
	for k := 1; k < len(ta.Values); k++ {
		if want := daysPerMonth[k%12]; ta.Values[k]-ta.Values[k-1] != want {
			t.Errorf("step into entry %d: want %g days but have %g", k, want, ta.Values[k]-ta.Values[k-1])
		}
	}
	if ta.Units != "day since 1961-01-01 00:00:00" {
		t.Errorf("unexpected units %q", ta.Units)
	}
	if ta.Calendar != "gregorian" {
		t.Errorf("unexpected calendar %q", ta.Calendar)
	}
}
