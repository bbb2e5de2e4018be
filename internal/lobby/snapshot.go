// internal/lobby/snapshot.go
package lobby

import (
	"time"

	"github.com/topguess/topguess/internal/models"
)

// Snapshot is a deep copy of a lobby taken under its lock. It is what every
// command returns to the transport layer, so serialization happens on an
// immutable copy after the lock has been released.
type Snapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPrivate bool   `json:"isPrivate"`

	Players    []models.Player `json:"players"`
	MaxPlayers int             `json:"maxPlayers"`
	HostID     string          `json:"hostId"`

	Settings models.Settings `json:"settings"`

	CurrentRound int    `json:"currentRound"`
	GameStarted  bool   `json:"gameStarted"`
	GameState    string `json:"gameState"`

	UsedCommentSets []UsedSet         `json:"usedCommentSets"`
	CurrentQuiz     *models.QuizRound `json:"currentQuiz,omitempty"`

	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}

// snapshotLocked copies the lobby. Assumes the lock is held.
func (l *Lobby) snapshotLocked() *Snapshot {
	players := make([]models.Player, len(l.Players))
	for i, p := range l.Players {
		players[i] = *p
	}
	used := make([]UsedSet, len(l.UsedCommentSets))
	copy(used, l.UsedCommentSets)

	var quiz *models.QuizRound
	if l.CurrentQuiz != nil {
		q := *l.CurrentQuiz
		q.Comments = make([]models.QuizComment, len(l.CurrentQuiz.Comments))
		copy(q.Comments, l.CurrentQuiz.Comments)
		quiz = &q
	}

	return &Snapshot{
		ID:              l.ID,
		Name:            l.Name,
		IsPrivate:       l.IsPrivate,
		Players:         players,
		MaxPlayers:      l.MaxPlayers,
		HostID:          l.HostID,
		Settings:        l.Settings,
		CurrentRound:    l.CurrentRound,
		GameStarted:     l.GameStarted,
		GameState:       l.GameState,
		UsedCommentSets: used,
		CurrentQuiz:     quiz,
		CreatedAt:       l.CreatedAt,
		LastActivity:    l.LastActivity,
	}
}

// Snapshot returns a copy of the lobby's current state.
func (l *Lobby) Snapshot() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}
