// internal/handlers/lobby_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topguess/topguess/internal/lobby"
	"github.com/topguess/topguess/internal/question"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	bank, err := question.NewBank(question.DefaultPosts())
	require.NoError(t, err)
	return NewServer(lobby.NewStore(bank), nil)
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type lobbyResponse struct {
	Success  bool            `json:"success"`
	Lobby    *lobby.Snapshot `json:"lobby"`
	QuizData json.RawMessage `json:"quizData"`
	Deleted  bool            `json:"lobbyDeleted"`
	Error    string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) lobbyResponse {
	t.Helper()
	var resp lobbyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateJoinStartFlow(t *testing.T) {
	srv := newTestServer(t)

	w := post(t, CreateLobbyHandler(srv), `{"name":"friday night","host":{"id":"h1","name":"Hosty"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode(t, w)
	require.NotNil(t, created.Lobby)
	lobbyID := created.Lobby.ID
	require.NotEmpty(t, lobbyID)
	assert.Equal(t, "h1", created.Lobby.HostID)

	w = post(t, JoinLobbyHandler(srv), `{"lobbyId":"`+lobbyID+`","player":{"id":"p2","name":"Bea"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	joined := decode(t, w)
	assert.Len(t, joined.Lobby.Players, 2)

	w = post(t, StartGameHandler(srv), `{"lobbyId":"`+lobbyID+`","playerId":"h1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	started := decode(t, w)
	require.NotNil(t, started.Lobby.CurrentQuiz)
	assert.Equal(t, 1, started.Lobby.CurrentRound)
	assert.NotEqual(t, "null", string(started.QuizData))
}

func TestJoinValidation(t *testing.T) {
	srv := newTestServer(t)

	w := post(t, CreateLobbyHandler(srv), `{"host":{"id":"h1","name":"Hosty"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	lobbyID := decode(t, w).Lobby.ID

	// Name too short.
	w = post(t, JoinLobbyHandler(srv), `{"lobbyId":"`+lobbyID+`","player":{"id":"p2","name":"x"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing player id.
	w = post(t, JoinLobbyHandler(srv), `{"lobbyId":"`+lobbyID+`","player":{"name":"Bea"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate name.
	w = post(t, JoinLobbyHandler(srv), `{"lobbyId":"`+lobbyID+`","player":{"id":"p2","name":"hosty"}}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnknownLobbyMapsTo404(t *testing.T) {
	srv := newTestServer(t)

	w := post(t, StatusHandler(srv), `{"lobbyId":"NOPE","playerId":"p1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, decode(t, w).Error)
}

func TestLeaveLastPlayerDeletesLobby(t *testing.T) {
	srv := newTestServer(t)

	w := post(t, CreateLobbyHandler(srv), `{"host":{"id":"h1","name":"Hosty"}}`)
	lobbyID := decode(t, w).Lobby.ID

	w = post(t, LeaveLobbyHandler(srv), `{"lobbyId":"`+lobbyID+`","playerId":"h1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Deleted)

	w = post(t, StatusHandler(srv), `{"lobbyId":"`+lobbyID+`","playerId":"h1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPublicLobbies(t *testing.T) {
	srv := newTestServer(t)

	post(t, CreateLobbyHandler(srv), `{"name":"open","host":{"id":"h1","name":"Hosty"}}`)
	post(t, CreateLobbyHandler(srv), `{"name":"secret","isPrivate":true,"host":{"id":"h2","name":"Other"}}`)

	req := httptest.NewRequest("GET", "/lobby/public", nil)
	w := httptest.NewRecorder()
	ListPublicLobbiesHandler(srv).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Lobbies []*lobby.Snapshot `json:"lobbies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Lobbies, 1)
	assert.Equal(t, "open", resp.Lobbies[0].Name)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/lobby/create", nil)
	w := httptest.NewRecorder()
	CreateLobbyHandler(srv).ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
