// Package geo loads the King County GIS layers (school sites, park
// boundaries) and answers the location questions used by candidate scoring:
// distance to the nearest school and park containment/proximity.
package geo

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// SchoolSite is one school point with its lat/long centroid attributes.
type SchoolSite struct {
	Name string
	Kind string // e.g. "Elementary", "High"
	Lat  float64
	Long float64
}

// parkFeature is a park boundary polygon (possibly multi-part) in
// state-plane feet, with a bounding box for quick rejection.
type parkFeature struct {
	Parts [][][2]float64 // each part is a closed ring of [northing, easting]
	Name  string
	MinN  float64
	MinE  float64
	MaxN  float64
	MaxE  float64
}

// Layers holds the loaded GIS context. The zero value answers every query
// with "nothing nearby", so the analyses degrade gracefully when the
// shapefiles are absent.
type Layers struct {
	schools []SchoolSite
	parks   []parkFeature
}

// LoadLayers reads SCHOOL_SITES.shp and PARKS.shp from dir. A missing layer
// is logged and skipped rather than failing the whole load.
func LoadLayers(dir string) *Layers {
	l := &Layers{}

	schools, err := loadSchoolShapefile(filepath.Join(dir, "SCHOOL_SITES", "SCHOOL_SITES.shp"))
	if err != nil {
		slog.Warn("school layer unavailable", "error", err)
	} else {
		l.schools = schools
	}

	parks, err := loadParkShapefile(filepath.Join(dir, "PARKS", "PARKS.shp"))
	if err != nil {
		slog.Warn("park layer unavailable", "error", err)
	} else {
		l.parks = parks
	}

	slog.Info("geo layers loaded", "schools", len(l.schools), "parks", len(l.parks))
	return l
}

// loadSchoolShapefile reads school points. The centroid lat/long attribute
// columns are authoritative; rows without them are skipped.
func loadSchoolShapefile(path string) ([]SchoolSite, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open school shapefile %s: %w", path, err)
	}
	defer r.Close()

	fields := r.Fields()
	fieldIdx := make(map[string]int, len(fields))
	for i, f := range fields {
		fieldIdx[f.String()] = i
	}

	attr := func(idx int, name string) string {
		i, ok := fieldIdx[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(r.ReadAttribute(idx, i))
	}

	var sites []SchoolSite
	for r.Next() {
		idx, _ := r.Shape()

		lat, err1 := strconv.ParseFloat(attr(idx, "LAT_CEN"), 64)
		lon, err2 := strconv.ParseFloat(attr(idx, "LONG_CEN"), 64)
		if err1 != nil || err2 != nil {
			continue
		}

		kind := attr(idx, "FEATUREDES")
		kind = strings.TrimSpace(strings.TrimPrefix(kind, "School-"))

		sites = append(sites, SchoolSite{
			Name: attr(idx, "ABB_NAME"),
			Kind: kind,
			Lat:  lat,
			Long: lon,
		})
	}
	return sites, nil
}

// loadParkShapefile reads park boundary polygons into memory.
func loadParkShapefile(path string) ([]parkFeature, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open park shapefile %s: %w", path, err)
	}
	defer r.Close()

	fields := r.Fields()
	nameField := -1
	for i, f := range fields {
		if f.String() == "SITENAME" {
			nameField = i
		}
	}

	var features []parkFeature
	for r.Next() {
		idx, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			// Skip non-polygon geometries (shouldn't exist in the park layer)
			continue
		}

		numParts := len(poly.Parts)
		parts := make([][][2]float64, numParts)

		minN, minE := math.MaxFloat64, math.MaxFloat64
		maxN, maxE := -math.MaxFloat64, -math.MaxFloat64

		for partIdx := 0; partIdx < numParts; partIdx++ {
			start := poly.Parts[partIdx]
			end := int32(len(poly.Points))
			if partIdx+1 < numParts {
				end = poly.Parts[partIdx+1]
			}
			ring := make([][2]float64, int(end-start))
			j := 0
			for i := start; i < end; i++ {
				pt := poly.Points[i]
				ring[j] = [2]float64{pt.Y, pt.X} // northing, easting
				if pt.Y < minN {
					minN = pt.Y
				}
				if pt.Y > maxN {
					maxN = pt.Y
				}
				if pt.X < minE {
					minE = pt.X
				}
				if pt.X > maxE {
					maxE = pt.X
				}
				j++
			}
			parts[partIdx] = ring
		}

		name := ""
		if nameField >= 0 {
			name = strings.TrimSpace(r.ReadAttribute(idx, nameField))
		}

		features = append(features, parkFeature{
			Parts: parts,
			Name:  name,
			MinN:  minN,
			MinE:  minE,
			MaxN:  maxN,
			MaxE:  maxE,
		})
	}
	return features, nil
}

// NearestSchool returns the closest school site and its distance in miles.
// ok is false when no school layer is loaded.
func (l *Layers) NearestSchool(lat, lon float64) (site SchoolSite, miles float64, ok bool) {
	if l == nil || len(l.schools) == 0 {
		return SchoolSite{}, 0, false
	}
	best := math.MaxFloat64
	for _, s := range l.schools {
		d := DistanceMiles(lat, lon, s.Lat, s.Long)
		if d < best {
			best = d
			site = s
		}
	}
	return site, best, true
}

// SchoolScore maps nearest-school distance onto [0,1]: 1 at the school,
// 0 at or beyond maxMiles. Returns 0 when no layer is loaded.
func (l *Layers) SchoolScore(lat, lon, maxMiles float64) float64 {
	_, miles, ok := l.NearestSchool(lat, lon)
	if !ok || maxMiles <= 0 || miles >= maxMiles {
		return 0
	}
	return 1 - miles/maxMiles
}

// ParkAt returns the name of the park polygon containing the point, if any.
func (l *Layers) ParkAt(lat, lon float64) (string, bool) {
	if l == nil || len(l.parks) == 0 {
		return "", false
	}
	n, e := wgs84ToWaNorth(lat, lon)
	for _, p := range l.parks {
		if n < p.MinN || n > p.MaxN || e < p.MinE || e > p.MaxE {
			continue // quick bbox reject
		}
		for _, ring := range p.Parts {
			if pointInPolygon(n, e, ring) {
				return p.Name, true
			}
		}
	}
	return "", false
}

// NearPark reports whether any park bounding box lies within the given
// distance of the point. Bounding boxes overstate park extent slightly,
// which is acceptable for a proximity bonus.
func (l *Layers) NearPark(lat, lon, withinMiles float64) bool {
	if l == nil || len(l.parks) == 0 {
		return false
	}
	marginFt := withinMiles * 5280
	n, e := wgs84ToWaNorth(lat, lon)
	for _, p := range l.parks {
		if n >= p.MinN-marginFt && n <= p.MaxN+marginFt &&
			e >= p.MinE-marginFt && e <= p.MaxE+marginFt {
			return true
		}
	}
	return false
}

// pointInPolygon implements the ray-casting algorithm. Shapefile rings are
// already closed, so no closing point is required here.
func pointInPolygon(n, e float64, ring [][2]float64) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		ni, ei := ring[i][0], ring[i][1]
		nj, ej := ring[j][0], ring[j][1]
		intersect := ((ni > n) != (nj > n)) && (e < (ej-ei)*(n-ni)/(nj-ni)+ei)
		if intersect {
			inside = !inside
		}
		j = i
	}
	return inside
}
