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

// Package shputil converts between shapefile polygon records and the
// aegis geometry model. Shapefiles wind outer rings clockwise and
// holes counter-clockwise, the opposite of the kernel's convention,
// so conversion re-orients every ring.
package shputil

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"

	aegis "github.com/krr0land/aegis-origin"
	"github.com/krr0land/aegis-origin/algorithm"
)

// PolygonsFromShape converts a shapefile polygon record into aegis
// polygons. Each clockwise part (shapefile outer order) starts a new
// polygon with a counter-clockwise shell; each counter-clockwise part
// becomes a clockwise hole of the polygon it follows.
func PolygonsFromShape(s *shp.Polygon) ([]*aegis.Polygon, error) {
	rings := splitParts(s)
	if len(rings) == 0 {
		return nil, fmt.Errorf("shputil: polygon record has no parts")
	}
	var polys []*aegis.Polygon
	for _, ring := range rings {
		switch algorithm.RingOrientation(ring) {
		case algorithm.Clockwise:
			polys = append(polys, &aegis.Polygon{Shell: ring.Reverse()})
		case algorithm.Counterclockwise:
			if len(polys) == 0 {
				// Tolerate files that wind outer rings backwards.
				polys = append(polys, &aegis.Polygon{Shell: ring})
				continue
			}
			last := polys[len(polys)-1]
			last.Holes = append(last.Holes, ring.Reverse())
		default:
			return nil, fmt.Errorf("shputil: part with undefined orientation")
		}
	}
	return polys, nil
}

func splitParts(s *shp.Polygon) []aegis.LinearRing {
	var rings []aegis.LinearRing
	for pi := 0; pi < len(s.Parts); pi++ {
		start := int(s.Parts[pi])
		end := len(s.Points)
		if pi+1 < len(s.Parts) {
			end = int(s.Parts[pi+1])
		}
		if end-start < 3 {
			continue
		}
		ring := make(aegis.LinearRing, 0, end-start+1)
		for _, pt := range s.Points[start:end] {
			ring = append(ring, aegis.Coord(pt.X, pt.Y))
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		rings = append(rings, ring)
	}
	return rings
}

// ShapeFromGeom converts a polygon or a collection of polygons into a
// single multi-part shapefile polygon record.
func ShapeFromGeom(g aegis.Geom) (*shp.Polygon, error) {
	var rings []aegis.LinearRing
	if err := collectRings(g, &rings); err != nil {
		return nil, err
	}
	out := &shp.Polygon{}
	for _, ring := range rings {
		out.Parts = append(out.Parts, int32(len(out.Points)))
		for _, c := range ring {
			out.Points = append(out.Points, shp.Point{X: c.X, Y: c.Y})
		}
	}
	out.NumParts = int32(len(out.Parts))
	out.NumPoints = int32(len(out.Points))
	out.Box = boxOf(out.Points)
	return out, nil
}

// collectRings flattens g into shapefile ring order: shells
// clockwise, holes counter-clockwise.
func collectRings(g aegis.Geom, rings *[]aegis.LinearRing) error {
	switch gg := g.(type) {
	case *aegis.Polygon:
		if gg.IsEmpty() {
			return nil
		}
		*rings = append(*rings, gg.Shell.Reverse())
		for _, h := range gg.Holes {
			*rings = append(*rings, h.Reverse())
		}
		return nil
	case *aegis.GeometryCollection:
		for _, item := range gg.Geoms {
			if err := collectRings(item, rings); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return nil
	default:
		return aegis.NewUnsupportedGeometryError(g)
	}
}

func boxOf(points []shp.Point) shp.Box {
	if len(points) == 0 {
		return shp.Box{}
	}
	b := shp.Box{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// ReadPolygons reads all polygon records from a shapefile.
func ReadPolygons(path string) ([]*aegis.Polygon, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shputil: opening %s: %w", path, err)
	}
	defer r.Close()
	var polys []*aegis.Polygon
	for r.Next() {
		_, shape := r.Shape()
		sp, ok := shape.(*shp.Polygon)
		if !ok {
			return nil, fmt.Errorf("shputil: %s: record is %T, want polygon", path, shape)
		}
		ps, err := PolygonsFromShape(sp)
		if err != nil {
			return nil, err
		}
		polys = append(polys, ps...)
	}
	return polys, nil
}

// WriteGeom writes g to a polygon shapefile at path. A nil geometry
// writes an empty shapefile.
func WriteGeom(path string, g aegis.Geom) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("shputil: creating %s: %w", path, err)
	}
	defer w.Close()
	if g == nil {
		return nil
	}
	shape, err := ShapeFromGeom(g)
	if err != nil {
		return err
	}
	w.Write(shape)
	return nil
}
