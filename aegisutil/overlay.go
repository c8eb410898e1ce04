/*
Copyright © 2026 the Aegis authors.
This file is part of Aegis.

Aegis is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Aegis is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Aegis.  If not, see <http://www.gnu.org/licenses/>.
*/

package aegisutil

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	aegis "github.com/krr0land/aegis-origin"
	"github.com/krr0land/aegis-origin/algorithm"
	"github.com/krr0land/aegis-origin/internal/shputil"
	"github.com/krr0land/aegis-origin/topology"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay [subject shapefile] [clipping shapefile]",
	Short: "Compute a boolean set operation between two shapefiles.",
	Long: `overlay reads the polygons of two shapefiles, applies the boolean
set operation given by --op between them and writes the result to the
shapefile given by --out. Multiple polygons within one file are treated
as one multi-polygon operand.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := parseOp(Cfg.GetString("op"))
		if err != nil {
			return err
		}
		return RunOverlay(op, args[0], args[1],
			Cfg.GetString("out"), aegis.ReferenceSystem(Cfg.GetString("rs")))
	},
	DisableAutoGenTag: true,
}

func parseOp(name string) (topology.Op, error) {
	switch strings.ToLower(name) {
	case "union":
		return topology.Union, nil
	case "intersection":
		return topology.Intersection, nil
	case "difference":
		return topology.Difference, nil
	case "symmetricdifference", "xor":
		return topology.SymmetricDifference, nil
	default:
		return 0, fmt.Errorf("aegis: unknown operation %q", name)
	}
}

// RunOverlay applies op between the polygons of two shapefiles and
// writes the result to outPath.
func RunOverlay(op topology.Op, subjectPath, clippingPath, outPath string, rs aegis.ReferenceSystem) error {
	subject, err := readOperand(subjectPath, rs)
	if err != nil {
		return err
	}
	clipping, err := readOperand(clippingPath, rs)
	if err != nil {
		return err
	}

	overlay := topology.NewOverlay(aegis.NewGeometryFactory(rs, nil))
	var result aegis.Geom
	switch op {
	case topology.Union:
		result, err = overlay.Union(subject, clipping)
	case topology.Intersection:
		result, err = overlay.Intersection(subject, clipping)
	case topology.Difference:
		result, err = overlay.Difference(subject, clipping)
	case topology.SymmetricDifference:
		result, err = overlay.SymmetricDifference(subject, clipping)
	}
	if err != nil {
		return err
	}
	if result == nil {
		logger.WithFields(logrus.Fields{"op": op.String()}).Info("empty result")
	}

	if err := shputil.WriteGeom(outPath, result); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"op":  op.String(),
		"out": outPath,
	}).Info("overlay finished")
	return nil
}

// readOperand reads a shapefile into a single polygonal operand.
func readOperand(path string, rs aegis.ReferenceSystem) (aegis.Geom, error) {
	polys, err := shputil.ReadPolygons(path)
	if err != nil {
		return nil, err
	}
	switch len(polys) {
	case 0:
		return &aegis.Polygon{RS: rs}, nil
	case 1:
		polys[0].RS = rs
		return polys[0], nil
	}
	gc := &aegis.GeometryCollection{RS: rs}
	for _, p := range polys {
		p.RS = rs
		gc.Geoms = append(gc.Geoms, p)
	}
	return gc, nil
}

var validateCmd = &cobra.Command{
	Use:   "validate [shapefile]",
	Short: "Check the polygons of a shapefile.",
	Long: `validate scans every polygon of a shapefile and reports its
validity, orientation and area. Degenerate rings yield an undefined
(NaN) area instead of aborting the scan.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		polys, err := shputil.ReadPolygons(args[0])
		if err != nil {
			return err
		}
		for i, p := range polys {
			cmd.Printf("polygon %d: valid=%t simple=%t orientation=%s area=%g\n",
				i,
				algorithm.IsValid(p),
				algorithm.IsSimple(p),
				algorithm.RingOrientation(p.Shell),
				algorithm.PolygonArea(p),
			)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
