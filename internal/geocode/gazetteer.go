package geocode

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"storymap-cli/internal/model"
)

// Place is one gazetteer entry.
type Place struct {
	Name   string
	Coords model.Coordinates
}

// Gazetteer backs the add-chapter location autocomplete. It is a small
// offline index; an embedder with a real geocoding provider can construct
// one from its own results.
type Gazetteer struct {
	places []Place
}

func New(places []Place) *Gazetteer {
	return &Gazetteer{places: places}
}

// Default returns the built-in world-city index.
func Default() *Gazetteer {
	return New(defaultPlaces)
}

type placeSource []Place

func (s placeSource) String(i int) string { return s[i].Name }
func (s placeSource) Len() int            { return len(s) }

// Search fuzzy-ranks places against the query, best matches first.
func (g *Gazetteer) Search(query string, limit int) []Place {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, placeSource(g.places))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Place, 0, len(matches))
	for _, m := range matches {
		out = append(out, g.places[m.Index])
	}
	return out
}

// Lookup resolves an exact (case-insensitive) place name. ok=false means the
// selection carries no geometry and the caller should ignore it.
func (g *Gazetteer) Lookup(name string) (Place, bool) {
	name = strings.TrimSpace(name)
	for _, p := range g.places {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Place{}, false
}

var defaultPlaces = []Place{
	{Name: "Amsterdam", Coords: model.Coordinates{Lat: 52.37, Lon: 4.90}},
	{Name: "Athens", Coords: model.Coordinates{Lat: 37.98, Lon: 23.73}},
	{Name: "Bangkok", Coords: model.Coordinates{Lat: 13.76, Lon: 100.50}},
	{Name: "Berlin", Coords: model.Coordinates{Lat: 52.52, Lon: 13.40}},
	{Name: "Buenos Aires", Coords: model.Coordinates{Lat: -34.60, Lon: -58.38}},
	{Name: "Cairo", Coords: model.Coordinates{Lat: 30.04, Lon: 31.24}},
	{Name: "Cape Town", Coords: model.Coordinates{Lat: -33.92, Lon: 18.42}},
	{Name: "Delhi", Coords: model.Coordinates{Lat: 28.61, Lon: 77.21}},
	{Name: "Dublin", Coords: model.Coordinates{Lat: 53.35, Lon: -6.26}},
	{Name: "Istanbul", Coords: model.Coordinates{Lat: 41.01, Lon: 28.98}},
	{Name: "Jakarta", Coords: model.Coordinates{Lat: -6.21, Lon: 106.85}},
	{Name: "Kyoto", Coords: model.Coordinates{Lat: 35.01, Lon: 135.77}},
	{Name: "Lagos", Coords: model.Coordinates{Lat: 6.52, Lon: 3.38}},
	{Name: "Lima", Coords: model.Coordinates{Lat: -12.05, Lon: -77.04}},
	{Name: "Lisbon", Coords: model.Coordinates{Lat: 38.72, Lon: -9.14}},
	{Name: "London", Coords: model.Coordinates{Lat: 51.51, Lon: -0.13}},
	{Name: "Madrid", Coords: model.Coordinates{Lat: 40.42, Lon: -3.70}},
	{Name: "Marrakesh", Coords: model.Coordinates{Lat: 31.63, Lon: -7.99}},
	{Name: "Mexico City", Coords: model.Coordinates{Lat: 19.43, Lon: -99.13}},
	{Name: "Mumbai", Coords: model.Coordinates{Lat: 19.08, Lon: 72.88}},
	{Name: "Nairobi", Coords: model.Coordinates{Lat: -1.29, Lon: 36.82}},
	{Name: "New York", Coords: model.Coordinates{Lat: 40.71, Lon: -74.01}},
	{Name: "Oslo", Coords: model.Coordinates{Lat: 59.91, Lon: 10.75}},
	{Name: "Paris", Coords: model.Coordinates{Lat: 48.86, Lon: 2.35}},
	{Name: "Reykjavik", Coords: model.Coordinates{Lat: 64.15, Lon: -21.94}},
	{Name: "Rio de Janeiro", Coords: model.Coordinates{Lat: -22.91, Lon: -43.17}},
	{Name: "Rome", Coords: model.Coordinates{Lat: 41.90, Lon: 12.50}},
	{Name: "Samarkand", Coords: model.Coordinates{Lat: 39.65, Lon: 66.96}},
	{Name: "San Francisco", Coords: model.Coordinates{Lat: 37.77, Lon: -122.42}},
	{Name: "Seoul", Coords: model.Coordinates{Lat: 37.57, Lon: 126.98}},
	{Name: "Singapore", Coords: model.Coordinates{Lat: 1.35, Lon: 103.82}},
	{Name: "Sydney", Coords: model.Coordinates{Lat: -33.87, Lon: 151.21}},
	{Name: "Tokyo", Coords: model.Coordinates{Lat: 35.68, Lon: 139.69}},
	{Name: "Ulaanbaatar", Coords: model.Coordinates{Lat: 47.89, Lon: 106.91}},
	{Name: "Vancouver", Coords: model.Coordinates{Lat: 49.28, Lon: -123.12}},
	{Name: "Vienna", Coords: model.Coordinates{Lat: 48.21, Lon: 16.37}},
}
