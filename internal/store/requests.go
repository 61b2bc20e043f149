package store

import (
	"fmt"

	"eventAdmin/internal/models"
)

// Kind names a class of backend request the dashboard shows progress for.
type Kind string

const (
	KindEventList    Kind = "events.list"
	KindTicketList   Kind = "tickets.list"
	KindEventCreate  Kind = "events.create"
	KindTicketCreate Kind = "tickets.create"
)

var Kinds = []Kind{KindEventList, KindTicketList, KindEventCreate, KindTicketCreate}

type RequestState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Token identifies one issued request.
type Token struct {
	kind  Kind
	scope string
	seq   uint64
	key   string
}

type requestSlot struct {
	seq      uint64
	inflight map[string]struct{}
	state    RequestState
}

func slotKey(kind Kind, scope string) string {
	return scope + "|" + string(kind)
}

func (s *Store) slot(kind Kind, scope string) *requestSlot {
	k := slotKey(kind, scope)
	sl, ok := s.requests[k]
	if !ok {
		sl = &requestSlot{inflight: make(map[string]struct{})}
		s.requests[k] = sl
	}
	return sl
}

// Begin issues a sequenced request. A later Begin of the same kind and scope
// supersedes it.
func (s *Store) Begin(kind Kind, scope string) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slot(kind, scope)
	sl.seq++
	sl.state = RequestState{Loading: true}

	return Token{kind: kind, scope: scope, seq: sl.seq}
}

// Current reports whether tok is still the latest request of its kind.
func (s *Store) Current(tok Token) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.requests[slotKey(tok.kind, tok.scope)]
	return ok && sl.seq == tok.seq
}

// Finish records the outcome of a sequenced request. It returns
// models.ErrSuperseded when a newer request was issued after tok; the caller
// must then drop its result.
func (s *Store) Finish(tok Token, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slot(tok.kind, tok.scope)
	if tok.seq != sl.seq {
		return fmt.Errorf("%s #%d: %w", tok.kind, tok.seq, models.ErrSuperseded)
	}

	sl.state.Loading = false
	sl.state.Error = ""
	if err != nil {
		sl.state.Error = err.Error()
	}

	return nil
}

// Acquire starts a submission identified by key. The same key cannot be
// submitted again until Release.
func (s *Store) Acquire(kind Kind, scope, key string) (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slot(kind, scope)
	if _, busy := sl.inflight[key]; busy {
		return Token{}, fmt.Errorf("%s %q: %w", kind, key, models.ErrDuplicateSubmission)
	}

	sl.inflight[key] = struct{}{}
	sl.state = RequestState{Loading: true}

	return Token{kind: kind, scope: scope, key: key}, nil
}

func (s *Store) Release(tok Token, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := s.slot(tok.kind, tok.scope)
	delete(sl.inflight, tok.key)

	sl.state.Loading = len(sl.inflight) > 0
	sl.state.Error = ""
	if err != nil {
		sl.state.Error = err.Error()
	}
}

// State returns the progress of every request kind for scope.
func (s *Store) State(scope string) map[Kind]RequestState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Kind]RequestState, len(Kinds))
	for _, k := range Kinds {
		if sl, ok := s.requests[slotKey(k, scope)]; ok {
			out[k] = sl.state
		} else {
			out[k] = RequestState{}
		}
	}

	return out
}
