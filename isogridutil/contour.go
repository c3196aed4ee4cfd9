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

package isogridutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/carto"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/isogrid"
	"github.com/spf13/cast"
)

// loadGrid reads the gridded input data named in the configuration.
func loadGrid(cfg *viper.Viper) (*isogrid.Grid, error) {
	fname := os.ExpandEnv(cfg.GetString("InputFile"))
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("isogrid: opening input file: %v", err)
	}
	defer f.Close()
	g, err := isogrid.ReadCDF(f, cfg.GetString("XVar"), cfg.GetString("YVar"), cfg.GetString("ZVar"))
	if err != nil {
		return nil, err
	}
	Log.WithFields(logrus.Fields{
		"file": fname,
		"nrow": g.Nrow,
		"ncol": g.Ncol,
	}).Info("loaded grid")
	return g, nil
}

// contourLevels returns the levels to contour at: the explicitly
// configured ones, or NLevels evenly spaced levels spanning the data
// range.
func contourLevels(cfg *viper.Viper, g *isogrid.Grid) ([]float64, error) {
	if s := cfg.GetStringSlice("Levels"); len(s) > 0 {
		return toFloats(s)
	}
	min, max, ok := g.Range()
	if !ok {
		return nil, fmt.Errorf("isogrid: grid holds no finite values")
	}
	n := cfg.GetInt("NLevels")
	if n < 1 {
		return nil, fmt.Errorf("isogrid: NLevels must be positive (have %d)", n)
	}
	return isogrid.Span(min, max, n), nil
}

func toFloats(s []string) ([]float64, error) {
	out := make([]float64, len(s))
	for i, v := range s {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("isogrid: invalid level %q: %v", v, err)
		}
		out[i] = f
	}
	return out, nil
}

// RunLines computes contour lines as configured in cfg and writes them
// to the configured output file.
func RunLines(cfg *viper.Viper) error {
	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	levels, err := contourLevels(cfg, g)
	if err != nil {
		return err
	}

	l := isogrid.NewIsolinerGrid(g)
	var geoms []geom.Geom
	var props []map[string]float64
	for _, v := range levels {
		l.SetLevel(v)
		if err := l.Compute(); err != nil {
			return err
		}
		ps := l.Collect()
		Log.WithFields(logrus.Fields{
			"level":    v,
			"paths":    ps.NumPaths(),
			"vertices": ps.Len(),
		}).Info("computed isolines")
		for _, ls := range ps.LineStrings() {
			geoms = append(geoms, ls)
			props = append(props, map[string]float64{"level": v})
		}
	}
	return writeOutput(cfg, geoms, props, goshp.POLYLINE)
}

// RunBands computes contour bands as configured in cfg and writes them
// to the configured output file.
func RunBands(cfg *viper.Viper) error {
	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	breaks, err := toFloats(cfg.GetStringSlice("Breaks"))
	if err != nil {
		return err
	}
	if len(breaks) < 2 {
		return fmt.Errorf("isogrid: at least 2 break values are required for bands (have %d)", len(breaks))
	}
	lo, hi := isogrid.BandLevels(breaks)

	b := isogrid.NewIsobanderGrid(g)
	var geoms []geom.Geom
	var props []map[string]float64
	for i := range lo {
		b.SetLevels(lo[i], hi[i])
		if err := b.Compute(); err != nil {
			return err
		}
		ps := b.Collect()
		Log.WithFields(logrus.Fields{
			"lo":       lo[i],
			"hi":       hi[i],
			"rings":    ps.NumPaths(),
			"vertices": ps.Len(),
		}).Info("computed isoband")
		// One feature per polygon so every encoder can represent it;
		// holes stay attached to their outer rings.
		for _, poly := range ps.MultiPolygon() {
			geoms = append(geoms, poly)
			props = append(props, map[string]float64{"lo": lo[i], "hi": hi[i]})
		}
	}
	return writeOutput(cfg, geoms, props, goshp.POLYGON)
}

// writeOutput writes one feature per geometry to the configured output
// file, in the format chosen by the file extension.
func writeOutput(cfg *viper.Viper, geoms []geom.Geom, props []map[string]float64, shpType goshp.ShapeType) error {
	fname := os.ExpandEnv(cfg.GetString("OutputFile"))
	var err error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".geojson", ".json":
		err = writeGeoJSON(fname, geoms, props)
	case ".shp":
		err = writeShapefile(fname, geoms, props, shpType)
	default:
		return fmt.Errorf("isogrid: unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"file":     fname,
		"features": len(geoms),
	}).Info("wrote output")
	return nil
}

func writeGeoJSON(fname string, geoms []geom.Geom, props []map[string]float64) error {
	o := new(carto.GeoJSON)
	o.Type = "FeatureCollection"
	o.Features = make([]*carto.GeoJSONfeature, len(geoms))
	for i, g := range geoms {
		gg, err := geojson.ToGeoJSON(g)
		if err != nil {
			return fmt.Errorf("isogrid: encoding feature %d: %v", i, err)
		}
		o.Features[i] = &carto.GeoJSONfeature{
			Type:       "Feature",
			Geometry:   gg,
			Properties: props[i],
		}
	}
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, b, 0644)
}

func writeShapefile(fname string, geoms []geom.Geom, props []map[string]float64, shpType goshp.ShapeType) error {
	// Collect the union of the attribute names so every record has the
	// same fields; sort them so they write in the same order every time.
	nameSet := make(map[string]struct{})
	for _, p := range props {
		for k := range p {
			nameSet[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(nameSet))
	for k := range nameSet {
		names = append(names, k)
	}
	sort.Strings(names)

	fields := make([]goshp.Field, len(names))
	for i, v := range names {
		fields[i] = goshp.FloatField(v, 14, 8)
	}
	e, err := shp.NewEncoderFromFields(fname, shpType, fields...)
	if err != nil {
		return fmt.Errorf("isogrid: creating output shapefile: %v", err)
	}
	for i, g := range geoms {
		vals := make([]interface{}, len(names))
		for j, v := range names {
			vals[j] = props[i][v]
		}
		if err := e.EncodeFields(g, vals...); err != nil {
			return fmt.Errorf("isogrid: writing output shapefile: %v", err)
		}
	}
	e.Close()
	return nil
}
