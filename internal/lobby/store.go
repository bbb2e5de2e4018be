// internal/lobby/store.go
package lobby

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/topguess/topguess/internal/models"
	"github.com/topguess/topguess/internal/question"
)

const (
	// DefaultMaxAge is how long a lobby may sit idle before the sweep
	// reaps it.
	DefaultMaxAge = 2 * time.Hour

	// publicListLimit caps ListPublic results.
	publicListLimit = 20
)

// Store owns every active lobby and is the single entry point for inbound
// commands: it locates the target lobby under its own short-held lock, then
// hands off to the lobby's per-record lock for the mutation. The store lock
// only ever guards the map shape, never a lobby mutation, so commands against
// different lobbies run fully in parallel.
type Store struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby

	bank   *question.Bank
	maxAge time.Duration
}

// NewStore returns an empty store drawing rounds from bank.
func NewStore(bank *question.Bank) *Store {
	return &Store{
		lobbies: make(map[string]*Lobby),
		bank:    bank,
		maxAge:  DefaultMaxAge,
	}
}

// CreateLobby registers a new lobby built from the draft and returns its
// snapshot. Creation also runs an opportunistic sweep, as does the public
// listing; there is no dedicated background reaper.
func (s *Store) CreateLobby(d Draft) *Snapshot {
	s.Sweep()

	l := newLobby(d)

	s.mu.Lock()
	// Regenerate on the off chance a client-supplied code collides.
	for {
		if _, exists := s.lobbies[l.ID]; !exists {
			break
		}
		l.ID = NewLobbyCode()
	}
	s.lobbies[l.ID] = l
	s.mu.Unlock()

	log.Printf("Store: created lobby %s (%q) hosted by %s.", l.ID, l.Name, l.HostID)
	return l.Snapshot()
}

// get looks a lobby up without touching it.
func (s *Store) get(id string) (*Lobby, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lobbies[id]
	return l, ok
}

// remove drops a lobby from the map. The lobby's deleted flag must already
// be set under its own lock so racing commands fail with ErrLobbyNotFound.
func (s *Store) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, id)
}

// Len reports how many lobbies are live.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lobbies)
}

// Join dispatches a join command to the target lobby.
func (s *Store) Join(lobbyID string, p models.Player) (*Snapshot, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, ErrLobbyNotFound
	}
	return l.Join(p)
}

// Leave dispatches a leave command. When the departing player was the last
// one, the lobby is deleted and the second return value reports it.
func (s *Store) Leave(lobbyID, playerID string) (*Snapshot, bool, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, false, ErrLobbyNotFound
	}
	snap, empty, err := l.Leave(playerID)
	if empty {
		s.remove(lobbyID)
	}
	return snap, empty, err
}

// SetReady dispatches a readiness change.
func (s *Store) SetReady(lobbyID, playerID string, ready bool) (*Snapshot, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, ErrLobbyNotFound
	}
	return l.SetReady(playerID, ready)
}

// UpdateSettings dispatches a host settings change.
func (s *Store) UpdateSettings(lobbyID, playerID string, settings models.Settings) (*Snapshot, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, ErrLobbyNotFound
	}
	return l.UpdateSettings(playerID, settings)
}

// StartGame dispatches a game start.
func (s *Store) StartGame(lobbyID, playerID string) (*Snapshot, bool, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, false, ErrLobbyNotFound
	}
	return l.StartGame(playerID, s.bank)
}

// AdvanceRound dispatches a round advance.
func (s *Store) AdvanceRound(lobbyID, playerID string) (*Snapshot, bool, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, false, ErrLobbyNotFound
	}
	return l.AdvanceRound(playerID, s.bank)
}

// SubmitAnswer dispatches an answer submission.
func (s *Store) SubmitAnswer(lobbyID, playerID string, points int, isCorrect bool) (*Snapshot, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, ErrLobbyNotFound
	}
	return l.SubmitAnswer(playerID, points, isCorrect)
}

// Status dispatches a client poll.
func (s *Store) Status(lobbyID, playerID string) (*Snapshot, error) {
	l, ok := s.get(lobbyID)
	if !ok {
		return nil, ErrLobbyNotFound
	}
	return l.Status(playerID)
}

// ListPublic sweeps, then returns snapshots of the non-private lobbies,
// most recently active first, capped at 20.
func (s *Store) ListPublic() []*Snapshot {
	s.Sweep()

	s.mu.Lock()
	candidates := make([]*Lobby, 0, len(s.lobbies))
	for _, l := range s.lobbies {
		candidates = append(candidates, l)
	}
	s.mu.Unlock()

	snaps := make([]*Snapshot, 0, len(candidates))
	for _, l := range candidates {
		snap := l.Snapshot()
		if !snap.IsPrivate {
			snaps = append(snaps, snap)
		}
	}
	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].LastActivity.After(snaps[j].LastActivity)
	})
	if len(snaps) > publicListLimit {
		snaps = snaps[:publicListLimit]
	}
	return snaps
}

// Sweep deletes every lobby idle longer than the max age. It never holds the
// store lock and a lobby lock at the same time: candidates are gathered
// under the store lock, each is checked and marked under its own lock, and
// only then removed from the map. A lobby mid-mutation refreshes its
// lastActivity under the same lock, so the sweep can never reap it.
func (s *Store) Sweep() {
	s.mu.Lock()
	candidates := make([]*Lobby, 0, len(s.lobbies))
	for _, l := range s.lobbies {
		candidates = append(candidates, l)
	}
	s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	var stale []string
	for _, l := range candidates {
		l.mu.Lock()
		if !l.deleted && l.LastActivity.Before(cutoff) {
			l.deleted = true
			stale = append(stale, l.ID)
		}
		l.mu.Unlock()
	}

	for _, id := range stale {
		s.remove(id)
		log.Printf("Store: swept stale lobby %s.", id)
	}
}
