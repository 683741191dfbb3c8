package quiz

import (
	"testing"

	"careerCompass/domain"
)

func TestLCGSequence(t *testing.T) {
	// state = state*1664525 + 1013904223 mod 2^32, from seed 1
	g := newLCG(1)

	want := []uint32{1015568748, 1586005467, 2165703038, 3027450565}
	for i, w := range want {
		if got := g.next(); got != w {
			t.Fatalf("step %d: expected %d, got %d", i, w, got)
		}
	}
}

func questions(n int) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, n)
	for i := range out {
		out[i] = domain.QuizQuestion{ID: uint64(i + 1)}
	}
	return out
}

func TestShuffleDeterministic(t *testing.T) {
	qs := questions(20)
	seed := sessionSeed("6b4a9c1e-0000-0000-0000-000000000001", 7)

	first := shuffleQuestions(qs, seed)
	second := shuffleQuestions(qs, seed)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("re-fetch changed order at %d: %d vs %d", i, first[i].ID, second[i].ID)
		}
	}
}

func TestShuffleDiffersAcrossSessions(t *testing.T) {
	qs := questions(20)

	a := shuffleQuestions(qs, sessionSeed("session-a", 7))
	b := shuffleQuestions(qs, sessionSeed("session-b", 7))

	same := true
	for i := range a {
		if a[i].ID != b[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different sessions produced identical order")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	qs := questions(15)
	out := shuffleQuestions(qs, sessionSeed("session-c", 3))

	if len(out) != len(qs) {
		t.Fatalf("length changed: %d vs %d", len(out), len(qs))
	}

	seen := make(map[uint64]bool, len(out))
	for _, q := range out {
		if seen[q.ID] {
			t.Fatalf("duplicate question %d after shuffle", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	qs := questions(10)
	_ = shuffleQuestions(qs, 42)

	for i, q := range qs {
		if q.ID != uint64(i+1) {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}
