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

// Command ascii2ncf is a command-line interface for converting ASCII point
// time series to gridded NetCDF files.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/ascii2ncf/ascii2ncfutil"
)

func main() {
	if err := ascii2ncfutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
