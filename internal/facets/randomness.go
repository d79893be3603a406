package facets

import (
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Randomness is a named jitter severity tier.
type Randomness uint8

const (
	Regular Randomness = iota // no jitter, exact lattice
	Skewed                    // mild jitter
	Messy                     // strong jitter
)

var randomnessNames = [...]string{
	Regular: "regular",
	Skewed:  "skewed",
	Messy:   "messy",
}

// tier -> max absolute jitter in lattice units
var randomnessMagnitude = [...]int{
	Regular: 0,
	Skewed:  JitterRange,
	Messy:   2 * JitterRange,
}

var randomnessAliases = map[string]Randomness{
	"regular": Regular,
	"none":    Regular,
	"skewed":  Skewed,
	"mild":    Skewed,
	"messy":   Messy,
	"strong":  Messy,
}

func (r Randomness) valid() bool { return int(r) < len(randomnessNames) }

func (r Randomness) String() string {
	if !r.valid() {
		return "unknown"
	}
	return randomnessNames[r]
}

// Magnitude returns the largest absolute offset this tier may produce.
func (r Randomness) Magnitude() int {
	if !r.valid() {
		return 0
	}
	return randomnessMagnitude[r]
}

// Jitter draws a uniform offset in [-Magnitude, Magnitude].
// A zero magnitude never touches rng, so rng may be nil.
func (r Randomness) Jitter(rng *rand.Rand) int {
	m := r.Magnitude()
	if m == 0 || rng == nil {
		return 0
	}
	return rng.Intn(2*m+1) - m
}

// ParseRandomness accepts a tier name or one of its aliases (none/mild/strong).
func ParseRandomness(s string) (Randomness, error) {
	r, ok := randomnessAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Regular, errors.Errorf("unknown randomness %q", s)
	}
	return r, nil
}

func (r Randomness) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Randomness) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "randomness must be a string")
	}
	v, err := ParseRandomness(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
