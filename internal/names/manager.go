// Package names hands out human-readable code names such as
// "Secret Squirrel" from a fixed pool.
package names

import (
	"math/rand"
	"sync"
	"time"
)

// NameManager selects names from a Pool. Build one with New.
type NameManager struct {
	pool   Pool
	policy Policy
	seed   *int64

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*NameManager)

// WithPool replaces the default pool. A zero Pool is ignored.
func WithPool(p Pool) Option {
	return func(m *NameManager) {
		if p.Len() > 0 {
			m.pool = p
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(m *NameManager) { m.policy = p }
}

// WithSeed fixes the random source used by PolicyRandom.
func WithSeed(seed int64) Option {
	return func(m *NameManager) { m.seed = &seed }
}

func New(opts ...Option) *NameManager {
	m := &NameManager{pool: DefaultPool(), policy: PolicyFixed}
	for _, opt := range opts {
		opt(m)
	}
	if m.policy == PolicyRandom {
		seed := time.Now().UnixNano()
		if m.seed != nil {
			seed = *m.seed
		}
		m.rng = rand.New(rand.NewSource(seed))
	}
	return m
}

// CreateName returns a member of the manager's pool. With the default
// policy that is always the first entry.
func (m *NameManager) CreateName() string {
	if m.policy != PolicyRandom {
		return m.pool.First()
	}
	m.mu.Lock()
	i := m.rng.Intn(m.pool.Len())
	m.mu.Unlock()
	return m.pool.At(i)
}

func (m *NameManager) Pool() Pool { return m.pool }

func (m *NameManager) Policy() Policy { return m.policy }
