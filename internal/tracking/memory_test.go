package tracking

import (
	"sync"
	"testing"

	"github.com/diegoclair/hackathon-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetUnknownGuild(t *testing.T) {
	store := NewMemoryStore()

	names, ok := store.Get("T1")

	assert.False(t, ok)
	assert.Equal(t, 0, names.Len())
}

func TestMemoryStore_ReplaceDoesNotMerge(t *testing.T) {
	store := NewMemoryStore()

	store.Replace("T1", entity.NewNameSet("A", "B"))
	store.Replace("T1", entity.NewNameSet("B", "C"))

	names, ok := store.Get("T1")
	assert.True(t, ok)
	assert.Equal(t, []string{"B", "C"}, names.Sorted())
}

func TestMemoryStore_ReplaceWithEmptySet(t *testing.T) {
	store := NewMemoryStore()

	store.Replace("T1", nil)

	names, ok := store.Get("T1")
	assert.True(t, ok, "an empty set still marks the guild as seen")
	assert.Equal(t, 0, names.Len())
}

func TestMemoryStore_GuildsAreIndependent(t *testing.T) {
	store := NewMemoryStore()

	store.Replace("T1", entity.NewNameSet("A"))
	store.Replace("T2", entity.NewNameSet("Z"))

	t1, _ := store.Get("T1")
	t2, _ := store.Get("T2")
	assert.Equal(t, []string{"A"}, t1.Sorted())
	assert.Equal(t, []string{"Z"}, t2.Sorted())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	input := entity.NewNameSet("A")
	store.Replace("T1", input)

	input["B"] = struct{}{}
	got, _ := store.Get("T1")
	got["C"] = struct{}{}

	again, _ := store.Get("T1")
	assert.Equal(t, []string{"A"}, again.Sorted())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Replace("T1", entity.NewNameSet("A", "B"))
		}()
		go func() {
			defer wg.Done()
			store.Get("T1")
		}()
	}
	wg.Wait()

	names, ok := store.Get("T1")
	assert.True(t, ok)
	assert.Equal(t, 2, names.Len())
}
