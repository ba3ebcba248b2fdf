package radar

import "sort"

// Icon identifiers of the built-in marker set. See package icon.
const (
	IconBlueFlag   = "flag-blue"
	IconYellowFlag = "flag-yellow"
	IconRedFlag    = "flag-red"
	IconKey        = "key"
)

// DefaultSymbolRatio is the marker size as a fraction of the outer radius.
const DefaultSymbolRatio = 1.0 / 8

// MarkerIcon assigns an icon to a category index.
type MarkerIcon struct {
	Index int
	Icon  string
}

// MarkerLayer is a ring of icons at radius R − Offset·symbolSize.
type MarkerLayer struct {
	Name   string
	Offset float64
	Icons  []MarkerIcon
}

// MarkerConfig is the static marker policy. Markers are fixed by category
// index and do not depend on series values. Indices outside [0, N) are
// ignored.
type MarkerConfig struct {
	SymbolRatio float64
	Layers      []MarkerLayer
}

// DefaultMarkerConfig returns the stock flag and depot layers, laid out
// for 23 categories.
func DefaultMarkerConfig() MarkerConfig {
	return MarkerConfig{
		SymbolRatio: DefaultSymbolRatio,
		Layers: []MarkerLayer{
			{
				Name:   "flags",
				Offset: 1,
				Icons: []MarkerIcon{
					{Index: 0, Icon: IconBlueFlag},
					{Index: 1, Icon: IconYellowFlag},
					{Index: 2, Icon: IconYellowFlag},
					{Index: 22, Icon: IconRedFlag},
				},
			},
			{
				Name:   "depots",
				Offset: 2.5,
				Icons: []MarkerIcon{
					{Index: 2, Icon: IconKey},
					{Index: 4, Icon: IconKey},
					{Index: 9, Icon: IconKey},
					{Index: 17, Icon: IconKey},
				},
			},
		},
	}
}

// SymbolSize returns the marker edge length for outer radius r.
func (c MarkerConfig) SymbolSize(r float64) float64 {
	ratio := c.SymbolRatio
	if ratio <= 0 {
		ratio = DefaultSymbolRatio
	}
	return r * ratio
}

// Marker is a placed icon. Center lies on the layer ring; the icon is a
// Size×Size square around it.
type Marker struct {
	Layer  string
	Index  int
	Icon   string
	Center Point
	Size   float64
}

// TopLeft returns the icon's top-left corner.
func (m Marker) TopLeft() Point {
	return Point{X: m.Center.X - m.Size/2, Y: m.Center.Y - m.Size/2}
}

// PlaceMarkers computes the markers of every layer, layer by layer in
// configuration order and by ascending category index within a layer.
// When an index appears twice in a layer, the last entry wins. A layer
// whose offset reaches past the center is placed at the center.
func PlaceMarkers(l Layout, cfg MarkerConfig) []Marker {
	size := cfg.SymbolSize(l.Radius)
	var markers []Marker
	for _, layer := range cfg.Layers {
		byIndex := make(map[int]string, len(layer.Icons))
		for _, mi := range layer.Icons {
			if mi.Index < 0 || mi.Index >= l.N || mi.Icon == "" {
				continue
			}
			byIndex[mi.Index] = mi.Icon
		}
		if len(byIndex) == 0 {
			continue
		}
		indices := make([]int, 0, len(byIndex))
		for i := range byIndex {
			indices = append(indices, i)
		}
		sort.Ints(indices)

		r := l.Radius - layer.Offset*size
		if r < 0 {
			// A negative radius would mirror the layer onto the opposite spokes.
			Logger().Warn("radar: marker layer clamped to center", "layer", layer.Name, "offset", layer.Offset)
			r = 0
		}
		points := l.Vertices(r)
		for _, i := range indices {
			markers = append(markers, Marker{
				Layer:  layer.Name,
				Index:  i,
				Icon:   byIndex[i],
				Center: points[i],
				Size:   size,
			})
		}
	}
	return markers
}
