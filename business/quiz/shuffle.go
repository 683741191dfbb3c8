package quiz

// lcg is the linear-congruential generator used to order quiz questions.
// Numerical recipes constants; explicit so a re-fetch of the same session
// reproduces the same order regardless of the platform's random source.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

func (g *lcg) next() uint32 {
	g.state = g.state*1664525 + 1013904223
	return g.state
}

// shuffleQuestions is a Fisher-Yates shuffle driven by the seeded generator.
// Same seed, same order.
func shuffleQuestions[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)

	g := newLCG(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(g.next() % uint32(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// sessionSeed folds a session identifier into a 32-bit seed (FNV-1a).
func sessionSeed(sessionID string, userID uint) uint32 {
	const (
		offset31 = 2166136261
		prime32  = 16777619
	)

	h := uint32(offset31)
	for i := 0; i < len(sessionID); i++ {
		h ^= uint32(sessionID[i])
		h *= prime32
	}
	h ^= uint32(userID)
	h *= prime32

	return h
}
