package engine

import "math/rand/v2"

// Roller draws die faces. Clone returns a roller that continues from the
// same position without sharing state with the receiver.
type Roller interface {
	// Roll returns a face drawn uniformly from [1, max].
	Roll(max int) int
	Clone() Roller
}

type globalRoller struct{}

func (globalRoller) Roll(max int) int { return rand.IntN(max) + 1 }

func (r globalRoller) Clone() Roller { return r }

// DefaultRoller draws from the global math/rand/v2 source, which is safe for
// concurrent use.
var DefaultRoller Roller = globalRoller{}

// PCGRoller draws from its own PCG generator, so a seeded driver produces
// repeatable games.
type PCGRoller struct {
	src *rand.PCG
	rng *rand.Rand
}

func NewPCGRoller(seed1, seed2 uint64) *PCGRoller {
	src := rand.NewPCG(seed1, seed2)
	return &PCGRoller{src: src, rng: rand.New(src)}
}

func (r *PCGRoller) Roll(max int) int {
	return r.rng.IntN(max) + 1
}

// Clone copies the generator state.
func (r *PCGRoller) Clone() Roller {
	src := *r.src
	return &PCGRoller{src: &src, rng: rand.New(&src)}
}

type sequenceRoller struct {
	faces []int
	next  int
}

// SequenceRoller returns the given faces in order and starts over when it runs out.
// Faces outside [1, max] are folded back into range.
func SequenceRoller(faces ...int) Roller {
	return &sequenceRoller{faces: append([]int(nil), faces...)}
}

func (s *sequenceRoller) Roll(max int) int {
	if len(s.faces) == 0 {
		return 1
	}
	v := s.faces[s.next%len(s.faces)]
	s.next++
	return ((v-1)%max+max)%max + 1
}

func (s *sequenceRoller) Clone() Roller {
	return &sequenceRoller{faces: s.faces, next: s.next}
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRoller replaces the die source.
func WithRoller(r Roller) Option {
	return func(g *Game) {
		if r != nil {
			g.roll = r
		}
	}
}
