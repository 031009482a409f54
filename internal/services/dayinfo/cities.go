package dayinfo

import (
	"fmt"
	"sort"
	"strings"

	"dayinfo-api/internal/models"
)

const DefaultCity = "Kyiv"

var knownCities = map[string]models.Coordinates{
	"Kyiv":         {Latitude: 50.4501, Longitude: 30.5234},
	"Lviv":         {Latitude: 49.8397, Longitude: 24.0297},
	"Odesa":        {Latitude: 46.4825, Longitude: 30.7233},
	"Kharkiv":      {Latitude: 49.9935, Longitude: 36.2304},
	"Dnipro":       {Latitude: 48.4647, Longitude: 35.0462},
	"Zaporizhzhia": {Latitude: 47.8388, Longitude: 35.1396},
	"Vinnytsia":    {Latitude: 49.2331, Longitude: 28.4682},
	"Chernihiv":    {Latitude: 51.4982, Longitude: 31.2893},
}

// CityResolver maps city names to coordinates using a fixed table. It is
// immutable after construction and safe for concurrent use.
type CityResolver struct {
	cities      map[string]models.Coordinates
	defaultName string
}

func NewCityResolver(defaultName string) (*CityResolver, error) {
	if defaultName == "" {
		defaultName = DefaultCity
	}

	if _, ok := knownCities[defaultName]; !ok {
		return nil, fmt.Errorf("default city %q is not in the city table", defaultName)
	}

	return &CityResolver{
		cities:      knownCities,
		defaultName: defaultName,
	}, nil
}

func (r *CityResolver) DefaultName() string {
	return r.defaultName
}

// Resolve returns the coordinates of name, or of the default city when name
// is unknown. Matching is case-sensitive after trimming surrounding whitespace.
func (r *CityResolver) Resolve(name string) models.Coordinates {
	if coords, ok := r.cities[strings.TrimSpace(name)]; ok {
		return coords
	}

	return r.cities[r.defaultName]
}

// Known reports whether name is in the table without falling back.
func (r *CityResolver) Known(name string) bool {
	_, ok := r.cities[strings.TrimSpace(name)]
	return ok
}

func (r *CityResolver) Names() []string {
	names := make([]string, 0, len(r.cities))
	for name := range r.cities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
