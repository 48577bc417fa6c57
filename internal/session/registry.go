// Package session keeps per-visitor state for the web front: the visitor's
// backend client, whose cookie jar carries the backend session, and the
// client view of their mock interview.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/fadilmartias/careercraft/internal/interview"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/google/uuid"
)

type Session struct {
	VisitorID uuid.UUID
	Backend   service.CareerCraftServiceInterface
	Interview *interview.Machine

	lastSeen time.Time
}

// BackendFactory builds a fresh backend client for a new visitor.
type BackendFactory func() service.CareerCraftServiceInterface

type Registry struct {
	mu         sync.Mutex
	sessions   map[uuid.UUID]*Session
	ttl        time.Duration
	newBackend BackendFactory
	now        func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

func NewRegistry(ttl time.Duration, newBackend BackendFactory) *Registry {
	return &Registry{
		sessions:   make(map[uuid.UUID]*Session),
		ttl:        ttl,
		newBackend: newBackend,
		now:        time.Now,
		stop:       make(chan struct{}),
	}
}

// Get returns the visitor's session, creating it on first use.
func (r *Registry) Get(visitorID uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	s, ok := r.sessions[visitorID]
	if ok && now.Sub(s.lastSeen) <= r.ttl {
		s.lastSeen = now
		return s
	}
	s = &Session{
		VisitorID: visitorID,
		Backend:   r.newBackend(),
		Interview: interview.NewMachine(),
		lastSeen:  now,
	}
	r.sessions[visitorID] = s
	return s
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// StartJanitor sweeps expired sessions every interval until Close.
func (r *Registry) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					log.Printf("Session cleanup: removed %d idle visitor sessions", n)
				}
			case <-r.stop:
				return
			}
		}
	}()
}

func (r *Registry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}
