package tracking

import (
	"sync"

	"github.com/diegoclair/hackathon-bot/internal/domain/contract"
	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
)

// MemoryStore keeps tracked names in process memory. Everything is lost on
// restart, so the first poll afterwards announces every listed hackathon again.
type MemoryStore struct {
	mu     sync.RWMutex
	guilds map[string]entity.NameSet
}

var _ contract.TrackingStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{guilds: map[string]entity.NameSet{}}
}

func (s *MemoryStore) Get(guildID string) (entity.NameSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names, ok := s.guilds[guildID]
	if !ok {
		return entity.NameSet{}, false
	}
	return names.Clone(), true
}

func (s *MemoryStore) Replace(guildID string, names entity.NameSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guilds[guildID] = names.Clone()
}
