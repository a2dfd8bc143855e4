package ports

import "time"

// Clock abstracts time to keep services deterministic in tests
type Clock interface {
	Now() time.Time
}

// RandomSource picks fallback messages; *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	IntN(n int) int
}
