// internal/lobby/concurrency_test.go
package lobby

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topguess/topguess/internal/models"
)

func TestConcurrentJoinsRespectCapacity(t *testing.T) {
	s := testStore(t)
	snap := createTestLobby(t, s, DefaultMaxPlayers)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Join(snap.ID, models.Player{
				ID:   fmt.Sprintf("p%d", i),
				Name: fmt.Sprintf("Player %d", i),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	full := 0
	for err := range errs {
		if err != nil {
			require.ErrorIs(t, err, ErrLobbyFull)
			full++
		}
	}
	// Host holds one seat, so 7 of the 20 joins win the race.
	assert.Equal(t, 13, full)

	got, err := s.Status(snap.ID, "host")
	require.NoError(t, err)
	assert.Len(t, got.Players, DefaultMaxPlayers)
	assertHostIsMember(t, got)
}

func TestConcurrentOpsAcrossLobbies(t *testing.T) {
	s := testStore(t)
	a := createTestLobby(t, s, 8)
	b := s.CreateLobby(Draft{
		Name: "second",
		Host: models.Player{ID: "host", Name: "Host"},
	})

	var wg sync.WaitGroup
	errs := make(chan error, 2*31)
	for _, id := range []string{a.ID, b.ID} {
		wg.Add(1)
		go func(lobbyID string) {
			defer wg.Done()
			_, _, err := s.StartGame(lobbyID, "host")
			errs <- err
			for i := 0; i < 10; i++ {
				_, _, err := s.AdvanceRound(lobbyID, "host")
				errs <- err
				_, err = s.SubmitAnswer(lobbyID, "host", 100, true)
				errs <- err
				_, err = s.Status(lobbyID, "host")
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	for _, id := range []string{a.ID, b.ID} {
		got, err := s.Status(id, "host")
		require.NoError(t, err)
		assert.Equal(t, 11, got.CurrentRound)
		assert.Equal(t, 100*10, got.Players[0].Score)
	}
}
