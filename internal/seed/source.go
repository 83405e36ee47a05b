package seed

import (
	"github.com/google/uuid"
	"math/rand"
	"time"
)

// Source supplies every random choice and the reference time of a generation run.
// Two sources built with the same seed and time produce identical datasets.
// A Source is not safe for concurrent use.
type Source struct {
	rnd *rand.Rand
	now time.Time
}

func NewSource(seed int64, now time.Time) *Source {
	return &Source{
		rnd: rand.New(rand.NewSource(seed)),
		now: now.UTC(),
	}
}

// Now returns the reference time all generated timestamps are relative to.
func (s *Source) Now() time.Time {
	return s.now
}

// between returns a uniform integer in [lo, hi]. It returns lo when hi <= lo.
func (s *Source) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rnd.Intn(hi-lo+1)
}

func (s *Source) chance(p float64) bool {
	return s.rnd.Float64() < p
}

func (s *Source) pick(items []string) string {
	return items[s.rnd.Intn(len(items))]
}

// sample returns n distinct items in random order. n is clamped to len(items).
func (s *Source) sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, n)
	for i, idx := range s.rnd.Perm(len(items))[:n] {
		out[i] = items[idx]
	}
	return out
}

// id returns a version 4 UUID read from the source, so ids are reproducible too.
func (s *Source) id() string {
	return uuid.Must(uuid.NewRandomFromReader(s.rnd)).String()
}

// pastWithin returns a time up to d before now, at minute granularity.
func (s *Source) pastWithin(d time.Duration) time.Time {
	return s.now.Add(-minutes(s.between(0, int(d/time.Minute))))
}

// after returns base advanced by a uniform number of minutes in [lo, hi].
func (s *Source) after(base time.Time, lo, hi int) time.Time {
	return base.Add(minutes(s.between(lo, hi)))
}

type weighted[T any] struct {
	value  T
	weight int
}

func pickWeighted[T any](s *Source, choices []weighted[T]) T {
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := s.rnd.Intn(total)
	for _, c := range choices {
		if n < c.weight {
			return c.value
		}
		n -= c.weight
	}
	return choices[len(choices)-1].value
}

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }
func hours(n int) time.Duration   { return time.Duration(n) * time.Hour }
func days(n int) time.Duration    { return time.Duration(n) * 24 * time.Hour }
