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
	"reflect"
	"strings"
	"testing"
)

func TestParseRecord(t *testing.T) {
	rec, err := parseRecord("-100.0 30.0 1901 1.5 -2.5", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := &record{lon: -100, lat: 30, year: 1901, vals: []float64{1.5, -2.5}}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("want %+v but have %+v", want, rec)
	}

	if _, err := parseRecord("-100.0 30.0 1901 1.5", 2); !errors.Is(err, ErrColumnCount) {
		t.Errorf("short record: want ErrColumnCount but have %v", err)
	}
	if _, err := parseRecord("-100.0 30.0 1901 1.5 2.5 3.5", 2); !errors.Is(err, ErrColumnCount) {
		t.Errorf("long record: want ErrColumnCount but have %v", err)
	}
	if _, err := parseRecord("-100.0 thirty 1901 1.5 2.5", 2); err == nil {
		t.Error("unparsable latitude: want error but have none")
	}
}

func TestPointStateAdvance(t *testing.T) {
	g, err := NewGrid(false, false, 2)
	if err != nil {
		t.Fatal(err)
	}
	recs := []*record{
		{lon: -100, lat: 30, year: 1901},
		{lon: -100, lat: 30, year: 1902},
		{lon: -100, lat: 30, year: 1903},
		{lon: -50, lat: -10, year: 1901},
		{lon: -50, lat: -10, year: 1902},
	}
	wantPoint := []int{0, 0, 0, 1, 1}
	wantYearOff := []int{0, 1, 2, 0, 1}
	wantNew := []bool{true, false, false, true, false}

	st := newPointState()
	for i, rec := range recs {
		newPoint, err := st.advance(g, rec)
		if err != nil {
			t.Fatal(err)
		}
		if newPoint != wantNew[i] || st.point != wantPoint[i] || st.yearOff != wantYearOff[i] {
			t.Errorf("record %d: want (new=%v, point=%d, yearOff=%d) but have (%v, %d, %d)",
				i, wantNew[i], wantPoint[i], wantYearOff[i], newPoint, st.point, st.yearOff)
		}
	}
	if st.ix != 65 || st.iy != 40 {
		t.Errorf("second point: want cell (65, 40) but have (%d, %d)", st.ix, st.iy)
	}
}

func TestPointStateUnsorted(t *testing.T) {
	g, err := NewGrid(false, false, 2)
	if err != nil {
		t.Fatal(err)
	}
	st := newPointState()
	if _, err := st.advance(g, &record{lon: -100, lat: 30, year: 1901}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.advance(g, &record{lon: -100, lat: 30, year: 1901}); !errors.Is(err, ErrUnsorted) {
		t.Errorf("want ErrUnsorted but have %v", err)
	}
}

func TestReadInputAnnual(t *testing.T) {
	input := `Lon Lat Year NPP Rh
-100.0 30.0 1901 1.0 2.0

-100.0 30.0 1902 1.1 2.1
`
	names, recs, err := readInput(strings.NewReader(input), false)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"NPP", "Rh"}) {
		t.Errorf("want names [NPP Rh] but have %v", names)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records but have %d", len(recs))
	}
	if recs[1].year != 1902 || recs[1].vals[1] != 2.1 {
		t.Errorf("unexpected second record %+v", recs[1])
	}

	if _, _, err := readInput(strings.NewReader("Lon Lat Year\n"), false); !errors.Is(err, ErrColumnCount) {
		t.Errorf("header without data columns: want ErrColumnCount but have %v", err)
	}
	if _, _, err := readInput(strings.NewReader(""), false); err == nil {
		t.Error("empty input: want error but have none")
	}
}

func TestReadInputMonthly(t *testing.T) {
	input := `Lon Lat Year Jan-Dec
-100.0 30.0 1961 1 2 3 4 5 6 7 8 9 10 11 12
`
	names, recs, err := readInput(strings.NewReader(input), true)
	if err != nil {
		t.Fatal(err)
	}
	if names != nil {
		t.Errorf("monthly mode should have no header names but has %v", names)
	}
	if len(recs) != 1 || len(recs[0].vals) != 12 {
		t.Fatalf("want 1 record with 12 values but have %+v", recs)
	}

	short := `Lon Lat Year Jan-Dec
-100.0 30.0 1961 1 2 3 4 5 6 7 8 9 10 11
`
	if _, _, err := readInput(strings.NewReader(short), true); !errors.Is(err, ErrColumnCount) {
		t.Errorf("14-field monthly record: want ErrColumnCount but have %v", err)
	}
}

func TestFirstPointYears(t *testing.T) {
	recs := []*record{
		{year: 1901}, {year: 1902}, {year: 1903},
		{year: 1901}, {year: 1902}, {year: 1903},
	}
	if n := firstPointYears(recs); n != 3 {
		t.Errorf("want 3 years but have %d", n)
	}
	if n := firstPointYears(recs[:2]); n != 2 {
		t.Errorf("single point: want 2 years but have %d", n)
	}
}
