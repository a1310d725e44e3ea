package tinder

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Geolocation struct {
	Lat float64 `json:"lat" yaml:"lat" mapstructure:"lat"`
	Lon float64 `json:"lon" yaml:"lon" mapstructure:"lon"`
}

// ParseGeolocation reads a location written either as JSON (`{"lat": 1, "lon": 2}`)
// or as YAML. JSON is accepted because it is a subset of YAML flow syntax.
func ParseGeolocation(raw string) (Geolocation, error) {
	var loc Geolocation

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return loc, errors.New("location is not configured")
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return loc, fmt.Errorf("parse location %q: %w", raw, err)
	}

	for _, key := range []string{"lat", "lon"} {
		if _, ok := fields[key]; !ok {
			return loc, fmt.Errorf("location %q: %s is missing", raw, key)
		}
	}

	if err := yaml.Unmarshal([]byte(raw), &loc); err != nil {
		return loc, fmt.Errorf("parse location %q: %w", raw, err)
	}

	return loc, loc.Validate()
}

func (g Geolocation) Validate() error {
	if g.Lat < -90 || g.Lat > 90 {
		return fmt.Errorf("latitude %v is out of range", g.Lat)
	}
	if g.Lon < -180 || g.Lon > 180 {
		return fmt.Errorf("longitude %v is out of range", g.Lon)
	}

	return nil
}
