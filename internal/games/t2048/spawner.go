package t2048

import (
	"math/rand"
	"time"
)

// Spawner produces the tiles introduced at game start and after each move.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// NewSpawner returns a spawner drawing from rng.
// fourProb is the probability (0.0-1.0) that a spawned tile is a 4.
func NewSpawner(rng *rand.Rand, fourProb float64) *Spawner {
	return &Spawner{rng: rng, fourProb: fourProb}
}

// NewSeededSpawner returns a spawner with the default 4-probability and a source seeded with seed.
func NewSeededSpawner(seed int64) *Spawner {
	return NewSpawner(rand.New(rand.NewSource(seed)), DefaultSpawnFourProbability)
}

func defaultSpawner() *Spawner {
	return NewSeededSpawner(time.Now().UnixNano())
}

// Cell returns a freshly spawned tile.
func (s *Spawner) Cell() Cell {
	return spawnCell(s.rng, s.fourProb)
}

// Intn returns a uniform int in [0, n).
func (s *Spawner) Intn(n int) int {
	return s.rng.Intn(n)
}
