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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
)

// parseGridSpec parses a grid specification given as space-separated
// numbers, e.g. "0.5" or "90 -180 -90 180 1 1".
func parseGridSpec(s string) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("ascii2ncf: the GridSpec configuration variable is empty")
	}
	o := make([]float64, len(fields))
	for i, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, fmt.Errorf("ascii2ncf: parsing GridSpec value %q: %v", f, err)
		}
		o[i] = v
	}
	return o, nil
}

// checkInputFile makes sure that the input file is specified and exists.
func checkInputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an input file configuration variable (for example: InputFile="points.txt")`)
	}
	if _, err := os.Stat(f); err != nil {
		return "", fmt.Errorf("ascii2ncf: the input file you have specified, %v, does not appear to exist: %v", f, err)
	}
	return f, nil
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="points.ncf")`)
	}
	if d := filepath.Dir(f); d != "." {
		if _, err := os.Stat(d); err != nil {
			return "", fmt.Errorf("ascii2ncf: the directory of the output file you have specified, %v, does not appear to exist", d)
		}
	}
	return f, nil
}
