package store

import (
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/paulmach/orb/geojson"
	log "github.com/sirupsen/logrus"
)

const (
	boundaryLogPrefix = "boundary"

	// BoundaryKeyProperty is the feature property matched against ISO codes
	BoundaryKeyProperty = "iso_a3"
)

// Boundaries is the static country boundary reference keyed by ISO alpha-3 code
type Boundaries struct {
	features map[string]*geojson.Feature
}

// LoadBoundaryFile reads a GeoJSON FeatureCollection file
func LoadBoundaryFile(filename string) (*Boundaries, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadBoundaries(file)
}

// LoadBoundaries parses a GeoJSON FeatureCollection. Features without an
// iso_a3 property are skipped.
func LoadBoundaries(r io.Reader) (*Boundaries, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	b := &Boundaries{
		features: make(map[string]*geojson.Feature),
	}
	skipped := 0
	for _, f := range fc.Features {
		key := strings.ToUpper(f.Properties.MustString(BoundaryKeyProperty, ""))
		if key == "" {
			skipped++
			continue
		}
		b.features[key] = f
	}

	log.WithFields(log.Fields{
		"prefix":   boundaryLogPrefix,
		"features": len(b.features),
		"skipped":  skipped,
	}).Info("boundaries loaded")

	return b, nil
}

func (b *Boundaries) Len() int {
	return len(b.features)
}

// Feature returns the boundary of one country
func (b *Boundaries) Feature(iso string) (*geojson.Feature, bool) {
	f, ok := b.features[strings.ToUpper(iso)]
	return f, ok
}

// Collection returns the boundaries of the given countries in the given
// order, leaving out the unknown ones.
func (b *Boundaries) Collection(isos []string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, iso := range isos {
		if f, ok := b.Feature(iso); ok {
			fc.Append(f)
		}
	}
	return fc
}

// Center returns the centre of the bounding box of a country boundary
func (b *Boundaries) Center(iso string) (float64, float64, bool) {
	f, ok := b.Feature(iso)
	if !ok || f.Geometry == nil {
		return 0, 0, false
	}

	c := f.Geometry.Bound().Center()
	return c.Lat(), c.Lon(), true
}
