// Package cache provides the in-process memoization store for loaded
// collection tables.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Store memoizes loaded tables keyed by file name. The underlying LRU is
// safe for concurrent handlers; eviction only matters when the configured
// size is smaller than the number of collections.
type Store struct {
	lru *lru.Cache[string, any]
}

func NewStore(size int) (*Store, error) {
	c, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &Store{lru: c}, nil
}

func (s *Store) Get(key string) (any, bool) {
	return s.lru.Get(key)
}

func (s *Store) Set(key string, value any) {
	s.lru.Add(key, value)
}

// Invalidate drops one key so the next read reloads from disk.
func (s *Store) Invalidate(key string) {
	s.lru.Remove(key)
}

// Purge drops every cached table.
func (s *Store) Purge() {
	s.lru.Purge()
}

// Len reports the number of cached tables.
func (s *Store) Len() int {
	return s.lru.Len()
}
