// internal/lobby/lobby.go
package lobby

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/topguess/topguess/internal/models"
)

const (
	// DefaultMaxPlayers caps lobby membership when the draft does not set one.
	DefaultMaxPlayers = 8
	// DefaultMaxRounds is the soft round cap applied to new lobbies.
	DefaultMaxRounds = 10

	GameStateWaiting = "waiting"
	GameStatePlaying = "playing"
)

// UsedSet records one (post, comment set) pair already served to a lobby.
// A pair appears at most once between resets.
type UsedSet struct {
	PostID          string `json:"postId"`
	CommentSetIndex int    `json:"commentSetIndex"`
}

// Lobby is one shared game session: players, host, settings, and the active
// round. Every field is guarded by mu; exported methods take the lock, and
// helpers suffixed Locked assume the caller holds it. Locks on different
// lobbies are independent, so commands against different lobbies never block
// each other.
type Lobby struct {
	ID        string
	Name      string
	IsPrivate bool

	Players    []*models.Player
	MaxPlayers int
	HostID     string

	Settings models.Settings

	CurrentRound int
	GameStarted  bool
	GameState    string

	UsedCommentSets []UsedSet
	CurrentQuiz     *models.QuizRound

	CreatedAt    time.Time
	LastActivity time.Time

	// deleted marks a lobby that has been removed from the store. A command
	// racing with the removal observes it under the lock and reports
	// ErrLobbyNotFound instead of mutating an orphan.
	deleted bool

	mu sync.Mutex
}

// Draft is the client-supplied portion of a new lobby.
type Draft struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	IsPrivate  bool            `json:"isPrivate"`
	MaxPlayers int             `json:"maxPlayers"`
	Settings   models.Settings `json:"settings"`
	Host       models.Player   `json:"host"`
}

// newLobby builds a lobby from a draft, filling in server-owned fields and
// seating the host as the first player. Missing ids are generated here so
// clients may omit them.
func newLobby(d Draft) *Lobby {
	now := time.Now()

	id := d.ID
	if id == "" {
		id = NewLobbyCode()
	}
	hostID := d.Host.ID
	if hostID == "" {
		hostID = uuid.NewString()
	}

	maxPlayers := d.MaxPlayers
	if maxPlayers < 1 || maxPlayers > DefaultMaxPlayers {
		maxPlayers = DefaultMaxPlayers
	}
	settings := d.Settings
	if settings.MaxRounds < 1 {
		settings.MaxRounds = DefaultMaxRounds
	}

	host := &models.Player{
		ID:       hostID,
		Name:     d.Host.Name,
		LastSeen: now,
	}

	return &Lobby{
		ID:           id,
		Name:         d.Name,
		IsPrivate:    d.IsPrivate,
		Players:      []*models.Player{host},
		MaxPlayers:   maxPlayers,
		HostID:       hostID,
		Settings:     settings,
		GameState:    GameStateWaiting,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// NewLobbyCode returns a short join code. Derived from a UUID so collisions
// are no more likely than uuid collisions truncated to 8 hex chars, which is
// plenty for a store that holds a few hundred live lobbies.
func NewLobbyCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// findPlayerLocked returns the member with the given id, or nil.
func (l *Lobby) findPlayerLocked(playerID string) *models.Player {
	for _, p := range l.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// touchLocked stamps lastActivity. Called on every mutating operation so the
// sweep never reaps a lobby that is in use.
func (l *Lobby) touchLocked() {
	l.LastActivity = time.Now()
}
