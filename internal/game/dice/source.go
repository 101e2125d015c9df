package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"sync"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, n) for any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource is a reproducible pseudo-random Source.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a Source whose sequence is fully determined by seed.
//
// Postcondition: two sources built from the same seed yield identical sequences.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// ScriptedSource replays a fixed sequence of die faces. It is the deterministic
// substitute for tests: each call to Intn(n) consumes the next face f and
// returns f-1, so a resolver drawing a d6 observes exactly f.
type ScriptedSource struct {
	faces []int
	next  int
}

// NewScriptedSource returns a ScriptedSource that yields faces in order.
//
// Precondition: every face is >= 1.
func NewScriptedSource(faces ...int) *ScriptedSource {
	cp := make([]int, len(faces))
	copy(cp, faces)
	return &ScriptedSource{faces: cp}
}

// Intn returns the next scripted face minus one.
//
// Precondition: n > 0; a face remains; the face is in [1, n].
// Panics when the script is exhausted or a face does not fit the die.
func (s *ScriptedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	if s.next >= len(s.faces) {
		panic(fmt.Sprintf("dice: scripted source exhausted after %d draws", len(s.faces)))
	}
	f := s.faces[s.next]
	if f < 1 || f > n {
		panic(fmt.Sprintf("dice: scripted face %d does not fit a d%d", f, n))
	}
	s.next++
	return f - 1
}

// Remaining reports how many scripted faces have not been consumed.
func (s *ScriptedSource) Remaining() int {
	return len(s.faces) - s.next
}
