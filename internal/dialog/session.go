package dialog

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// SessionStore keeps one ConversationState per session key between turns.
// The caller must serialize turns within a session; the store itself only
// guarantees safe concurrent access across sessions.
type SessionStore interface {
	Get(sessionID string) (*ConversationState, bool)
	Put(sessionID string, state *ConversationState)
	Delete(sessionID string)
}

// LRUSessionStore bounds live conversations with an LRU cache, so abandoned
// sessions age out instead of leaking. Any external cache can replace it.
type LRUSessionStore struct {
	cache *lru.Cache[string, *ConversationState]
}

const DefaultSessionCapacity = 1024

func NewLRUSessionStore(capacity int) (*LRUSessionStore, error) {
	if capacity <= 0 {
		capacity = DefaultSessionCapacity
	}
	cache, err := lru.New[string, *ConversationState](capacity)
	if err != nil {
		return nil, err
	}
	return &LRUSessionStore{cache: cache}, nil
}

func (s *LRUSessionStore) Get(sessionID string) (*ConversationState, bool) {
	return s.cache.Get(sessionID)
}

func (s *LRUSessionStore) Put(sessionID string, state *ConversationState) {
	s.cache.Add(sessionID, state)
}

func (s *LRUSessionStore) Delete(sessionID string) {
	s.cache.Remove(sessionID)
}
