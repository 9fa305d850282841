package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/textspan/span"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformBlock generates a contiguous row-major block of rows*cell random
// values in range [0, 1). Locks only once per call.
func (r *RNG) UniformBlock(rows, cell int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	data := make([]float32, rows*cell)
	for i := range data {
		data[i] = r.rand.Float32()
	}
	return data
}

// RandomTokens generates a tokenization of n single-space-separated
// lowercase words of random length, wrapped as a char-span column over a
// fresh document.
func RandomTokens(rng *RNG, n int) *span.CharSpanArray {
	var sb strings.Builder
	begins := make([]int, n)
	ends := make([]int, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		begins[i] = sb.Len()
		wordLen := 1 + rng.Intn(8)
		for j := 0; j < wordLen; j++ {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
		ends[i] = sb.Len()
	}
	tokens, err := span.NewCharSpanArray(span.NewText(sb.String()), begins, ends)
	if err != nil {
		panic(err) // generated offsets are valid by construction
	}
	return tokens
}

// RandomTokenSpans generates n random valid token spans over tokens,
// each covering at most maxTokens tokens.
func RandomTokenSpans(rng *RNG, tokens *span.CharSpanArray, n, maxTokens int) *span.TokenSpanArray {
	begin := make([]int, n)
	end := make([]int, n)
	for i := 0; i < n; i++ {
		begin[i] = rng.Intn(tokens.Len())
		width := rng.Intn(maxTokens + 1)
		end[i] = begin[i] + width
		if end[i] > tokens.Len() {
			end[i] = tokens.Len()
		}
	}
	spans, err := span.NewTokenSpanArray(tokens, begin, end)
	if err != nil {
		panic(err)
	}
	return spans
}
