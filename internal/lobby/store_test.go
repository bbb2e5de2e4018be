// internal/lobby/store_test.go
package lobby

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topguess/topguess/internal/models"
)

func TestCreateLobbyDefaults(t *testing.T) {
	s := testStore(t)

	snap := s.CreateLobby(Draft{
		Name: "defaults",
		Host: models.Player{Name: "Hosty"},
	})

	assert.NotEmpty(t, snap.ID)
	assert.NotEmpty(t, snap.HostID, "missing host id is generated server-side")
	assert.Equal(t, DefaultMaxPlayers, snap.MaxPlayers)
	assert.Equal(t, DefaultMaxRounds, snap.Settings.MaxRounds)
	assert.Equal(t, GameStateWaiting, snap.GameState)
	assert.Equal(t, 0, snap.CurrentRound)
	require.Len(t, snap.Players, 1)
	assert.Equal(t, snap.HostID, snap.Players[0].ID)
	assert.Empty(t, snap.UsedCommentSets)
}

func TestCreateLobbyClampsMaxPlayers(t *testing.T) {
	s := testStore(t)

	snap := s.CreateLobby(Draft{
		MaxPlayers: 50,
		Host:       models.Player{ID: "h", Name: "Hosty"},
	})
	assert.Equal(t, DefaultMaxPlayers, snap.MaxPlayers)
}

func TestSweepRemovesOnlyStaleLobbies(t *testing.T) {
	s := testStore(t)
	fresh := createTestLobby(t, s, 4)
	stale := s.CreateLobby(Draft{
		Name: "stale",
		Host: models.Player{ID: "h2", Name: "Other"},
	})

	l, ok := s.get(stale.ID)
	require.True(t, ok)
	l.mu.Lock()
	l.LastActivity = time.Now().Add(-3 * time.Hour)
	l.mu.Unlock()

	s.Sweep()

	_, ok = s.get(stale.ID)
	assert.False(t, ok, "stale lobby must be reaped")
	_, ok = s.get(fresh.ID)
	assert.True(t, ok, "active lobby must survive the sweep")
}

func TestSweptLobbyRejectsLateCommands(t *testing.T) {
	s := testStore(t)
	snap := createTestLobby(t, s, 4)

	l, ok := s.get(snap.ID)
	require.True(t, ok)
	l.mu.Lock()
	l.LastActivity = time.Now().Add(-3 * time.Hour)
	l.mu.Unlock()
	s.Sweep()

	_, err := l.Join(models.Player{ID: "b", Name: "Bea"})
	assert.ErrorIs(t, err, ErrLobbyNotFound, "commands racing a sweep see not-found")
}

func TestListPublicFiltersAndOrders(t *testing.T) {
	s := testStore(t)

	private := s.CreateLobby(Draft{
		Name: "hidden", IsPrivate: true,
		Host: models.Player{ID: "p0", Name: "Private"},
	})
	older := s.CreateLobby(Draft{
		Name: "older",
		Host: models.Player{ID: "p1", Name: "Older"},
	})
	newer := s.CreateLobby(Draft{
		Name: "newer",
		Host: models.Player{ID: "p2", Name: "Newer"},
	})

	l, ok := s.get(older.ID)
	require.True(t, ok)
	l.mu.Lock()
	l.LastActivity = time.Now().Add(-time.Minute)
	l.mu.Unlock()

	snaps := s.ListPublic()
	require.Len(t, snaps, 2)
	assert.Equal(t, newer.ID, snaps[0].ID)
	assert.Equal(t, older.ID, snaps[1].ID)
	for _, snap := range snaps {
		assert.NotEqual(t, private.ID, snap.ID)
	}
}

func TestListPublicCapsAtTwenty(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 25; i++ {
		s.CreateLobby(Draft{
			Name: fmt.Sprintf("lobby %d", i),
			Host: models.Player{ID: fmt.Sprintf("h%d", i), Name: fmt.Sprintf("Host %d", i)},
		})
	}
	assert.Len(t, s.ListPublic(), 20)
}

func TestCreateLobbyRegeneratesCollidingCode(t *testing.T) {
	s := testStore(t)
	first := s.CreateLobby(Draft{
		ID:   "SAMECODE",
		Host: models.Player{ID: "h1", Name: "First"},
	})
	second := s.CreateLobby(Draft{
		ID:   "SAMECODE",
		Host: models.Player{ID: "h2", Name: "Second"},
	})

	assert.Equal(t, "SAMECODE", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, s.Len())
}
