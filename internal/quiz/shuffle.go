package quiz

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuidrill/internal/model"
)

// Shuffler permutes n elements in place through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a Shuffler seeded with the current time.
func NewShuffler() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleItems returns a shuffled copy of items; the input is left untouched.
func shuffleItems(sh Shuffler, items []model.Item) []model.Item {
	shuffled := make([]model.Item, len(items))
	copy(shuffled, items)
	if sh != nil && len(shuffled) > 1 {
		sh.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}
	return shuffled
}
