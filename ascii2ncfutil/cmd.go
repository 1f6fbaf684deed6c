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

	"github.com/lnashier/viper"
	"github.com/spatialmodel/ascii2ncf"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to ascii2ncf.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path to the ASCII point time series file to
              be converted. The first line is a header; every following
              line is one record: lon, lat, year, and the year's data
              values, whitespace separated.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the output NetCDF file should
              be written.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "GridSpec",
			usage: `
              GridSpec describes the output grid as 1, 2, or 6
              space-separated numbers: "dx" (both resolutions, global
              extent), "dx dy" (global extent), or
              "north west south east dx dy".`,
			defaultVal: "0.5",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Monthly",
			usage: `
              Monthly specifies that each record holds 12 monthly values
              for one year instead of one annual value per output
              variable.`,
			shorthand:  "m",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Invertlat",
			usage: `
              Invertlat reverses the latitude ordering of the output grid
              so that row 0 is the northernmost row.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Centered",
			usage: `
              Centered specifies that record coordinates refer to grid
              cell centers rather than lower-left cell corners.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Year",
			usage: `
              Year overrides the reference year used in the time units
              attribute. If zero, the first year observed in the input is
              used.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "Units",
			usage: `
              Units is the value written to the units attribute of each
              output data variable.`,
			defaultVal: "unknown",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ASCII2NCF")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ascii2ncf: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ascii2ncf",
	Short: "Convert ASCII point time series to gridded NetCDF files.",
	Long: `ascii2ncf converts point-indexed ASCII time series records
(longitude, latitude, year, and one or more data values per year or per
month) into dense (time, lat, lon) arrays and saves them as a NetCDF file
with calendar metadata.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'ASCII2NCF_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of ascii2ncf.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ascii2ncf v%s\n", ascii2ncf.Version)
	},
	DisableAutoGenTag: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an ASCII point time series file.",
	Long: `convert reads the ASCII point time series in InputFile, grids it
as specified by GridSpec, and writes the result to the NetCDF file given
by OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(os.ExpandEnv(Cfg.GetString("InputFile")))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(os.ExpandEnv(Cfg.GetString("OutputFile")))
		if err != nil {
			return err
		}
		gridSpec, err := parseGridSpec(Cfg.GetString("GridSpec"))
		if err != nil {
			return err
		}
		return Convert(inputFile, outputFile, gridSpec,
			Cfg.GetBool("Monthly"),
			Cfg.GetBool("Invertlat"),
			Cfg.GetBool("Centered"),
			Cfg.GetInt("Year"),
			Cfg.GetString("Units"))
	},
	DisableAutoGenTag: true,
}
