package identity

import "unicode/utf16"

// DeriveDisplayName deterministically maps a PeerId to a two-word
// "Color Animal" display name. The same PeerId always yields the same name:
// the PeerId is folded into a 32-bit seed, and that seed drives a small
// deterministic PRNG that indexes once into each wordlist.
func DeriveDisplayName(id PeerId) string {
	seed := foldHash(string(id))
	rng := newSeededRand(seed)

	color := colors[rng.next()%uint32(len(colors))]
	animal := animals[rng.next()%uint32(len(animals))]
	return color + " " + animal
}

// foldHash computes h <- ((h<<5) - h + c) mod 2^32 over the UTF-16 code
// units of s, returned reinterpreted as a signed 32-bit integer. Unsigned
// wraparound in Go's uint32 arithmetic is exactly "mod 2^32", so no masking
// is needed.
func foldHash(s string) int32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + uint32(c)
	}
	return int32(h)
}

// seededRand is a small linear congruential generator seeded from foldHash's
// output, used only to pick wordlist indices deterministically.
type seededRand struct {
	state uint32
}

func newSeededRand(seed int32) *seededRand {
	return &seededRand{state: uint32(seed)}
}

func (r *seededRand) next() uint32 {
	// Constants from Numerical Recipes' minimal LCG.
	r.state = r.state*1664525 + 1013904223
	return r.state
}
