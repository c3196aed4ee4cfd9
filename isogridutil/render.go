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
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/isogrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RunRender computes contour lines as configured in cfg and draws them
// into a PNG image.
func RunRender(cfg *viper.Viper) error {
	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	levels, err := contourLevels(cfg, g)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = cfg.GetString("ZVar")
	p.X.Label.Text = cfg.GetString("XVar")
	p.Y.Label.Text = cfg.GetString("YVar")

	l := isogrid.NewIsolinerGrid(g)
	for i, v := range levels {
		l.SetLevel(v)
		if err := l.Compute(); err != nil {
			return err
		}
		ps := l.Collect()
		for _, ls := range ps.LineStrings() {
			pts := make(plotter.XYs, len(ls))
			for j, pt := range ls {
				pts[j] = plotter.XY{X: pt.X, Y: pt.Y}
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			line.Width = vg.Points(1)
			line.Color = plotutil.Color(i)
			p.Add(line)
		}
	}

	fname := os.ExpandEnv(cfg.GetString("RenderFile"))
	w := vg.Length(cfg.GetFloat64("RenderWidth")) * vg.Inch
	h := vg.Length(cfg.GetFloat64("RenderHeight")) * vg.Inch
	if err := p.Save(w, h, fname); err != nil {
		return err
	}
	Log.WithFields(logrus.Fields{
		"file":   fname,
		"levels": len(levels),
	}).Info("rendered contours")
	return nil
}
