package utils

import (
	"sync"
)

// KeyedMutex serializes operations per key. Upload, unzip and delete
// hold the target folder's lock so the scan-then-insert name resolution
// never races with a concurrent writer or a folder delete.
//
// Entries are never removed: a waiter may hold a reference to a key's
// mutex at any time, so the map grows with the set of keys locked over
// the process lifetime.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (k *KeyedMutex) Lock(key int64) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
}

func (k *KeyedMutex) Unlock(key int64) {
	k.mu.Lock()
	m := k.locks[key]
	k.mu.Unlock()
	if m != nil {
		m.Unlock()
	}
}
