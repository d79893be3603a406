package facets

import "github.com/pkg/errors"

// Lighting is the fixed reflection model applied to a hit face.
type Lighting struct {
	Incident Vector3 `json:"incident"` // ray cast down the viewing axis
	Light    Vector3 `json:"light"`    // direction the reflected ray is compared against
	Ambient  uint8   `json:"ambient"`  // floor added to every hit
	MaxLight uint8   `json:"maxLight"` // direct light spans [0, MaxLight-Ambient]

	// cached
	lightUnit Vector3
}

// DefaultLighting returns the stock light setup.
func DefaultLighting() Lighting {
	l, _ := NewLighting(DefaultIncident, DefaultLightDir, Ambient, MaxLight)
	return l
}

// NewLighting validates the directions and levels and caches the unit light vector.
func NewLighting(incident, light Vector3, ambient, maxLight uint8) (Lighting, error) {
	if incident.IsZero() {
		return Lighting{}, errors.New("incident direction must be non-zero")
	}
	if light.IsZero() {
		return Lighting{}, errors.New("light direction must be non-zero")
	}
	if maxLight < ambient {
		return Lighting{}, errors.Errorf("maxLight (%d) must be >= ambient (%d)", maxLight, ambient)
	}
	return Lighting{
		Incident:  incident,
		Light:     light,
		Ambient:   ambient,
		MaxLight:  maxLight,
		lightUnit: light.Norm(),
	}, nil
}

// Direct returns the direct-light contribution of face abc: the incident ray
// reflected off the face normal, aligned against the light direction, scaled
// to [0, MaxLight-Ambient]. abc must not be degenerate.
func (l Lighting) Direct(a, b, c Vector3) uint8 {
	lu := l.lightUnit
	if lu.IsZero() {
		lu = l.Light.Norm()
	}
	r := l.Incident.Reflect(planeNormal(a, b, c)).Norm()
	return byteOf(r.Dot(lu) * Real(l.Span()))
}

// Intensity is the final hit value: direct light plus ambient, saturating at 255.
func (l Lighting) Intensity(a, b, c Vector3) uint8 {
	return addByte(l.Direct(a, b, c), l.Ambient)
}

// Span is the width of the direct-light range.
func (l Lighting) Span() uint8 {
	if l.MaxLight < l.Ambient {
		return 0
	}
	return l.MaxLight - l.Ambient
}
