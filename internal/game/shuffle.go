package game

import (
	"math/rand/v2"

	"github.com/abhisek/neurobattle/internal/bank"
)

// Shuffler permutes questions in place.
type Shuffler func(qs []bank.Question)

// FisherYates returns an unbiased in-place shuffler drawing from r.
func FisherYates(r *rand.Rand) Shuffler {
	return func(qs []bank.Question) {
		for i := len(qs) - 1; i > 0; i-- {
			j := r.IntN(i + 1)
			qs[i], qs[j] = qs[j], qs[i]
		}
	}
}

// SeededShuffler returns a Fisher–Yates shuffler with a deterministic source.
// A zero seed draws a random seed instead.
func SeededShuffler(seed uint64) Shuffler {
	if seed == 0 {
		return FisherYates(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	return FisherYates(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Identity leaves the bank order untouched.
func Identity(qs []bank.Question) {}
