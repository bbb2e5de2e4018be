// internal/lobby/membership.go
package lobby

import (
	"log"
	"strings"
	"time"

	"github.com/topguess/topguess/internal/models"
)

// Join adds a player, or refreshes the existing entry when the id is already
// a member (a rejoin after reconnect). A rejoin updates the name and clears
// readiness but never touches score or correctAnswers.
func (l *Lobby) Join(p models.Player) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, ErrLobbyNotFound
	}

	if len(l.Players) >= l.MaxPlayers && l.findPlayerLocked(p.ID) == nil {
		return nil, ErrLobbyFull
	}
	for _, q := range l.Players {
		if q.ID != p.ID && strings.EqualFold(q.Name, p.Name) {
			return nil, ErrNameTaken
		}
	}

	if existing := l.findPlayerLocked(p.ID); existing != nil {
		existing.Name = p.Name
		existing.IsReady = false
		existing.LastSeen = time.Now()
		log.Printf("Lobby %s: player %s rejoined as %q.", l.ID, p.ID, p.Name)
	} else {
		l.Players = append(l.Players, &models.Player{
			ID:       p.ID,
			Name:     p.Name,
			LastSeen: time.Now(),
		})
		log.Printf("Lobby %s: player %s (%q) joined, %d/%d seats.", l.ID, p.ID, p.Name, len(l.Players), l.MaxPlayers)
	}

	l.touchLocked()
	return l.snapshotLocked(), nil
}

// Leave removes the player. The second return value reports that the lobby
// emptied out and must be dropped from the store; an empty lobby is never
// retained. A departing host hands the role to the first remaining player.
func (l *Lobby) Leave(playerID string) (*Snapshot, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, false, ErrLobbyNotFound
	}

	kept := l.Players[:0]
	for _, p := range l.Players {
		if p.ID != playerID {
			kept = append(kept, p)
		}
	}
	l.Players = kept

	if len(l.Players) == 0 {
		l.deleted = true
		log.Printf("Lobby %s: last player left, deleting.", l.ID)
		return nil, true, nil
	}

	if l.HostID == playerID {
		l.HostID = l.Players[0].ID
		log.Printf("Lobby %s: host left, reassigned to %s.", l.ID, l.HostID)
	}

	l.touchLocked()
	return l.snapshotLocked(), false, nil
}

// SetReady flips a player's ready flag.
func (l *Lobby) SetReady(playerID string, ready bool) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, ErrLobbyNotFound
	}

	p := l.findPlayerLocked(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	p.IsReady = ready

	l.touchLocked()
	return l.snapshotLocked(), nil
}

// UpdateSettings applies new host-controlled settings. Calls from anyone but
// the current host are a silent no-op: the unchanged snapshot comes back with
// no error, so non-hosts learn nothing about host state.
func (l *Lobby) UpdateSettings(playerID string, s models.Settings) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, ErrLobbyNotFound
	}

	if playerID != l.HostID {
		return l.snapshotLocked(), nil
	}

	if s.MaxRounds < 1 {
		s.MaxRounds = l.Settings.MaxRounds
	}
	l.Settings = s

	l.touchLocked()
	return l.snapshotLocked(), nil
}

// Status is the poll every client issues on a fixed interval. It stamps the
// caller's lastSeen, stamps lobby activity, and returns the full snapshot
// (including the current quiz once the game has started). A removed or
// expired player gets ErrPlayerNotFound, which is how clients detect they are
// no longer members.
func (l *Lobby) Status(playerID string) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, ErrLobbyNotFound
	}

	p := l.findPlayerLocked(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	p.LastSeen = time.Now()

	l.touchLocked()
	return l.snapshotLocked(), nil
}
