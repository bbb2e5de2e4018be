// internal/lobby/errors.go
package lobby

import "errors"

// Engine errors, matched by the transport layer with errors.Is. Each failure
// is local to one command; no operation leaves a lobby partially mutated.
var (
	ErrLobbyNotFound  = errors.New("lobby not found")
	ErrLobbyFull      = errors.New("lobby is full")
	ErrNameTaken      = errors.New("a player with this name already exists")
	ErrPlayerNotFound = errors.New("player not in lobby")

	// ErrNoContent means every post was excluded by the lobby's content
	// filter. A configuration or catalog problem, surfaced to the host.
	ErrNoContent = errors.New("no suitable posts available")

	ErrNoPlayers      = errors.New("lobby has no players")
	ErrGameInProgress = errors.New("game already started")
	ErrGameNotStarted = errors.New("game has not started")
)
