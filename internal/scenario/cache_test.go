package scenario

import (
	"testing"
)

func TestCachingStoreReadThrough(t *testing.T) {
	backing := NewMemoryStore()
	cache := NewMapCache()
	store := NewCachingStore(backing, cache, nil)

	id, err := store.Save(validRecord("cached home"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, ok := cache.Get(cacheKey(id)); !ok {
		t.Error("Save() did not populate the cache")
	}

	// Remove from the backing store directly; the cached copy still serves.
	if _, err := backing.Delete(id); err != nil {
		t.Fatalf("backing Delete() error = %v", err)
	}

	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load() error = %v, expected cache hit", err)
	}
	if loaded.Name != "cached home" {
		t.Errorf("Load() Name = %s, expected cached home", loaded.Name)
	}
}

func TestCachingStoreEvictsOnDelete(t *testing.T) {
	backing := NewMemoryStore()
	cache := NewMapCache()
	store := NewCachingStore(backing, cache, nil)

	id, err := store.Save(validRecord("evicted"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	deleted, err := store.Delete(id)
	if err != nil || !deleted {
		t.Fatalf("Delete() = %v, %v; expected true, nil", deleted, err)
	}

	if _, ok := cache.Get(cacheKey(id)); ok {
		t.Error("Delete() left the record in the cache")
	}
	if _, err := store.Load(id); err == nil {
		t.Error("Load() after delete succeeded, expected ErrNotFound")
	}
}

func TestCachingStoreCorruptEntryFallsThrough(t *testing.T) {
	backing := NewMemoryStore()
	cache := NewMapCache()
	store := NewCachingStore(backing, cache, nil)

	id, err := backing.Save(validRecord("fallback"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	cache.Data[cacheKey(id)] = "{not json"

	loaded, err := store.Load(id)
	if err != nil {
		t.Fatalf("Load() error = %v, expected fallback to backing store", err)
	}
	if loaded.Name != "fallback" {
		t.Errorf("Load() Name = %s, expected fallback", loaded.Name)
	}
}
