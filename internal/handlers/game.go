// internal/handlers/game.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/topguess/topguess/internal/cache"
	"github.com/topguess/topguess/internal/lobby"
)

// StartGameHandler begins the first round for a waiting lobby.
func StartGameHandler(srv *Server) http.HandlerFunc {
	return roundHandler(srv, srv.startGame)
}

// NextRoundHandler advances a playing lobby to its next round.
func NextRoundHandler(srv *Server) http.HandlerFunc {
	return roundHandler(srv, srv.advanceRound)
}

func (srv *Server) startGame(lobbyID, playerID string) (*lobby.Snapshot, bool, error) {
	return srv.Store.StartGame(lobbyID, playerID)
}

func (srv *Server) advanceRound(lobbyID, playerID string) (*lobby.Snapshot, bool, error) {
	return srv.Store.AdvanceRound(lobbyID, playerID)
}

// roundHandler is the shared shape of start and next-round: both select a
// fresh round and respond with the lobby plus the quiz payload.
func roundHandler(srv *Server, op func(lobbyID, playerID string) (*lobby.Snapshot, bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID  string `json:"lobbyId"`
			PlayerID string `json:"playerId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad round request payload")
			return
		}

		snap, selected, err := op(req.LobbyID, req.PlayerID)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		if selected {
			srv.publishRound(snap)
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"lobby":    snap,
			"quizData": snap.CurrentQuiz,
		})
	}
}

// SubmitAnswerHandler credits a player with a round result.
func SubmitAnswerHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID   string `json:"lobbyId"`
			PlayerID  string `json:"playerId"`
			Points    int    `json:"points"`
			IsCorrect bool   `json:"isCorrect"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad answer request payload")
			return
		}

		snap, err := srv.Store.SubmitAnswer(req.LobbyID, req.PlayerID, req.Points, req.IsCorrect)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		srv.publishAnswer(snap, req.PlayerID, req.Points, req.IsCorrect)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"lobby":   snap,
		})
	}
}

// StatusHandler is the poll endpoint. It returns the lobby snapshot plus the
// current quiz once the game has started; clients diff (postId, currentRound)
// against their last-seen values to detect new rounds.
func StatusHandler(srv *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requirePost(w, r) {
			return
		}

		var req struct {
			LobbyID  string `json:"lobbyId"`
			PlayerID string `json:"playerId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad status request payload")
			return
		}

		snap, err := srv.Store.Status(req.LobbyID, req.PlayerID)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		resp := map[string]interface{}{
			"lobby": snap,
		}
		if snap.GameStarted && snap.CurrentQuiz != nil {
			resp["currentQuiz"] = snap.CurrentQuiz
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// publishRound queues a round_started event when Redis is wired up. Engine
// behavior never depends on the publish succeeding.
func (srv *Server) publishRound(snap *lobby.Snapshot) {
	if cache.Rdb == nil || snap.CurrentQuiz == nil || len(snap.UsedCommentSets) == 0 {
		return
	}
	last := snap.UsedCommentSets[len(snap.UsedCommentSets)-1]
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cache.PublishRoundStarted(ctx, snap.ID, snap.CurrentRound, last.PostID, last.CommentSetIndex); err != nil {
			srv.Log.Warnf("failed to publish round event for lobby %s: %v", snap.ID, err)
		}
	}()
}

// publishAnswer queues an answer_submitted event when Redis is wired up.
func (srv *Server) publishAnswer(snap *lobby.Snapshot, playerID string, points int, isCorrect bool) {
	if cache.Rdb == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cache.PublishAnswer(ctx, snap.ID, playerID, snap.CurrentRound, points, isCorrect); err != nil {
			srv.Log.Warnf("failed to publish answer event for lobby %s: %v", snap.ID, err)
		}
	}()
}
