package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/topguess/topguess/internal/lobby"
)

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the {"error": "..."} shape polling clients expect.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeEngineError maps engine errors onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lobby.ErrLobbyNotFound), errors.Is(err, lobby.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, lobby.ErrLobbyFull), errors.Is(err, lobby.ErrNameTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, lobby.ErrGameInProgress), errors.Is(err, lobby.ErrGameNotStarted), errors.Is(err, lobby.ErrNoPlayers):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, lobby.ErrNoContent):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// validPlayerName enforces the 2-20 character bound on display names.
func validPlayerName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 20
}

// requirePost rejects anything but POST, mirroring the route contract.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}
