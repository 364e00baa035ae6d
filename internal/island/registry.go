package island

import (
	"fmt"
	"sort"
	"strings"
)

// Corner selects which bottom corner of the cropped frame hosts the
// calendar widget. Most islands leave the bottom-right corner open; the
// ones that fill it (Catalana) move the widget bottom-left.
type Corner string

const (
	CornerRight Corner = "right"
	CornerLeft  Corner = "left"
)

// Rect is an island's crop region within the source tile, in pixels.
type Rect struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
}

// Island maps a name to the Sentinel-2 tile it appears on and the crop
// region that frames it. Crop extents were obtained manually from full
// tiles. Immutable reference data.
type Island struct {
	Name   string `yaml:"name"`
	Tile   string `yaml:"tile"`
	Crop   Rect   `yaml:"crop"`
	Corner Corner `yaml:"corner,omitempty"`
}

// CalendarCorner returns the configured corner, defaulting to bottom-right.
func (i Island) CalendarCorner() Corner {
	if i.Corner == CornerLeft {
		return CornerLeft
	}
	return CornerRight
}

// builtin covers the Loreto Bay islands the tool was written for.
var builtin = []Island{
	{Name: "Coronados", Tile: "RVP", Crop: Rect{Width: 800, Height: 800, X: 6800, Y: 700}},
	{Name: "Danzante", Tile: "RVP", Crop: Rect{Width: 400, Height: 800, X: 7275, Y: 4350}},
	{Name: "Carmen", Tile: "RVP", Crop: Rect{Width: 1900, Height: 3200, X: 7600, Y: 1500}},
	{Name: "Monserrate", Tile: "RVP", Crop: Rect{Width: 800, Height: 1200, X: 9300, Y: 5200}},
	{Name: "Catalana", Tile: "RWP", Crop: Rect{Width: 800, Height: 1500, X: 1800, Y: 5500}, Corner: CornerLeft},
}

// Registry resolves island names to their reference data.
type Registry struct {
	byName map[string]Island
}

// Builtin returns a registry with the compiled-in islands.
func Builtin() *Registry {
	r := &Registry{byName: make(map[string]Island, len(builtin))}
	for _, isl := range builtin {
		r.add(isl)
	}
	return r
}

func (r *Registry) add(isl Island) {
	r.byName[strings.ToLower(isl.Name)] = isl
}

// Lookup resolves an island by name, case-insensitively. An unknown name
// is a configuration error and has to surface before any renderer call.
func (r *Registry) Lookup(name string) (Island, error) {
	isl, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return Island{}, fmt.Errorf("unknown island %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return isl, nil
}

// Names lists the registered island names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for _, isl := range r.byName {
		names = append(names, isl.Name)
	}
	sort.Strings(names)
	return names
}
