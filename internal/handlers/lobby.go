// internal/handlers/lobby.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/topguess/topguess/internal/lobby"
	"github.com/topguess/topguess/internal/models"
)

// CreateLobbyHandler registers a new lobby from the client's draft and seats
// the drafting player as host.
func CreateLobbyHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var draft lobby.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, "bad lobby request payload")
			return
		}
		if !validPlayerName(draft.Host.Name) {
			writeError(w, http.StatusBadRequest, "player name must be 2-20 characters")
			return
		}

		snap := srv.Store.CreateLobby(draft)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"lobby":   snap,
		})
	}
}

// ListPublicLobbiesHandler returns the joinable public lobbies, most recently
// active first.
func ListPublicLobbiesHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		snaps := srv.Store.ListPublic()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"lobbies": snaps,
		})
	}
}

// JoinLobbyHandler adds (or re-adds) a player to a lobby.
func JoinLobbyHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID string        `json:"lobbyId"`
			Player  models.Player `json:"player"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad join request payload")
			return
		}
		if req.Player.ID == "" {
			writeError(w, http.StatusBadRequest, "player id is required")
			return
		}
		if !validPlayerName(req.Player.Name) {
			writeError(w, http.StatusBadRequest, "player name must be 2-20 characters")
			return
		}

		snap, err := srv.Store.Join(req.LobbyID, req.Player)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"lobby":   snap,
		})
	}
}

// LeaveLobbyHandler removes a player; an emptied lobby is deleted outright.
func LeaveLobbyHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID  string `json:"lobbyId"`
			PlayerID string `json:"playerId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad leave request payload")
			return
		}

		snap, deleted, err := srv.Store.Leave(req.LobbyID, req.PlayerID)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		if deleted {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success":      true,
				"lobbyDeleted": true,
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"lobby":   snap,
		})
	}
}

// SetReadyHandler flips a player's ready flag.
func SetReadyHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID  string `json:"lobbyId"`
			PlayerID string `json:"playerId"`
			IsReady  bool   `json:"isReady"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad ready request payload")
			return
		}

		snap, err := srv.Store.SetReady(req.LobbyID, req.PlayerID, req.IsReady)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"lobby":   snap,
		})
	}
}

// UpdateSettingsHandler applies host settings changes. Non-host calls come
// back successful but unchanged.
func UpdateSettingsHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID  string          `json:"lobbyId"`
			PlayerID string          `json:"playerId"`
			Settings models.Settings `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad settings request payload")
			return
		}

		snap, err := srv.Store.UpdateSettings(req.LobbyID, req.PlayerID, req.Settings)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"lobby":   snap,
		})
	}
}
