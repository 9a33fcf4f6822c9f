package idtoken

import (
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

var generatorMutex sync.Mutex
var generatorInstantiated atomic.Bool
var generator tokenGenerator

// tokenGenerator allocates fresh identities.
type tokenGenerator interface {
	Generate() Token
}

// UseSequentialGenerator configures New to draw identities from a
// process-wide 64-bit counter. This is the default.
func UseSequentialGenerator() {
	useGenerator(&sequentialGenerator{})
}

// UseRandomGenerator configures New to use random 122-bit identities. No
// shared counter is involved, so concurrent minting does not contend on a
// single memory location.
func UseRandomGenerator() {
	useGenerator(randomGenerator{})
}

func useGenerator(g tokenGenerator) {
	if generatorInstantiated.Load() {
		log.Panic("cannot change token generator type after using it")
	}

	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if generatorInstantiated.Load() {
		log.Panic("cannot change token generator type after using it")
	}

	generator = g
	generatorInstantiated.Store(true)
}

func getGenerator() tokenGenerator {
	if generatorInstantiated.Load() {
		return generator
	}

	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if !generatorInstantiated.Load() {
		generator = &sequentialGenerator{}
		generatorInstantiated.Store(true)
	}

	return generator
}

type sequentialGenerator struct {
	lastID atomic.Uint64
}

// Generate never wraps. Once every 64-bit value is taken it panics rather
// than hand out an identity a second time.
func (g *sequentialGenerator) Generate() Token {
	for {
		last := g.lastID.Load()
		if last == math.MaxUint64 {
			log.Panic("token id overflow")
		}

		if g.lastID.CompareAndSwap(last, last+1) {
			return Token{seq: last + 1}
		}
	}
}

type randomGenerator struct{}

func (randomGenerator) Generate() Token {
	return Token{rnd: uuid.New()}
}
