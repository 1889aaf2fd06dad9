// internal/store/memory.go
//
// In-memory registry of games for the lifetime of the process.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Guards only the map; a stored Game still needs callers to serialize
//     their own mutations.
//   - State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/tennis/internal/game"
)

// ErrNotFound is returned by Get for an unknown game ID.
var ErrNotFound = errors.New("store: game not found")

// Store defines lookup of games by ID.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// List returns all games in the order they were first saved.
	List(ctx context.Context) ([]*game.Game, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and order
	games map[string]*game.Game // keyed by Game.ID
	order []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if g == nil {
		return errors.New("store: nil game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; !ok {
		m.order = append(m.order, g.ID)
	}
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) List(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Game, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.games[id])
	}
	return out, nil
}
