/*
Copyright © 2026 the IsoGrid authors.
This file is part of IsoGrid.

IsoGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IsoGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IsoGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package isogridutil holds the command-line interface for the IsoGrid
// contour generator.
package isogridutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/isogrid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is the logger used by the commands in this package.
var Log logrus.FieldLogger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Log = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Options are the configuration options available to IsoGrid.
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
              InputFile is the path to the NetCDF file holding the gridded
              data to be contoured. It can contain environment variables.`,
			shorthand:  "i",
			defaultVal: "grid.nc",
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), bandsCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the result should be written. The
              extension chooses the format: .geojson or .json for GeoJSON and
              .shp for an ESRI shapefile. It can contain environment
              variables.`,
			shorthand:  "o",
			defaultVal: "contours.geojson",
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), bandsCmd.Flags()},
		},
		{
			name: "ZVar",
			usage: `
              ZVar is the name of the NetCDF variable holding the gridded
              values to be contoured.`,
			defaultVal: "z",
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), bandsCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "XVar",
			usage: `
              XVar is the name of the NetCDF variable holding the grid
              column coordinates.`,
			defaultVal: "x",
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), bandsCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "YVar",
			usage: `
              YVar is the name of the NetCDF variable holding the grid
              row coordinates.`,
			defaultVal: "y",
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), bandsCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Levels",
			usage: `
              Levels specifies the contour levels. If empty, NLevels evenly
              spaced levels spanning the data range are used instead.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "NLevels",
			usage: `
              NLevels is the number of evenly spaced contour levels to
              generate when Levels is not given.`,
			shorthand:  "n",
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{linesCmd.Flags(), renderCmd.Flags()},
		},
		{
			name: "Breaks",
			usage: `
              Breaks specifies the sorted break values between contour bands:
              band i covers Breaks[i] ≤ z < Breaks[i+1]. At least two values
              are required.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{bandsCmd.Flags()},
		},
		{
			name: "RenderFile",
			usage: `
              RenderFile is the path of the PNG image the render command
              creates. It can contain environment variables.`,
			defaultVal: "contours.png",
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "RenderWidth",
			usage: `
              RenderWidth is the width of the rendered image in inches.`,
			defaultVal: 8.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
		{
			name: "RenderHeight",
			usage: `
              RenderHeight is the height of the rendered image in inches.`,
			defaultVal: 8.0,
			flagsets:   []*pflag.FlagSet{renderCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ISOGRID")
	Cfg.AutomaticEnv()

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
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
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
	Root.AddCommand(linesCmd)
	Root.AddCommand(bandsCmd)
	Root.AddCommand(renderCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("isogrid: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "isogrid",
	Short: "A contour generator for gridded data.",
	Long: `IsoGrid computes contour lines (isolines) and filled contour bands
(isobands) from regular grids of scalar data using the marching squares
algorithm. Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'ISOGRID_var'
where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of IsoGrid.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("IsoGrid v%s\n", isogrid.Version)
	},
	DisableAutoGenTag: true,
}

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Compute contour lines.",
	Long: `lines reads a gridded scalar field from a NetCDF file, computes the
contour lines at the requested levels, and writes them to a GeoJSON file or
shapefile with one feature per polyline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLines(Cfg)
	},
	DisableAutoGenTag: true,
}

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Compute contour bands.",
	Long: `bands reads a gridded scalar field from a NetCDF file, computes the
filled contour bands between the requested break values, and writes them to a
GeoJSON file or shapefile with one feature per polygon of each band.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunBands(Cfg)
	},
	DisableAutoGenTag: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render contour lines to an image.",
	Long: `render reads a gridded scalar field from a NetCDF file, computes the
contour lines at the requested levels, and draws them into a PNG image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunRender(Cfg)
	},
	DisableAutoGenTag: true,
}
