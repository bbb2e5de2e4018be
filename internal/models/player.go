// internal/models/player.go
package models

import "time"

// Player is one member of a lobby. The ID is generated client-side and stays
// stable across reconnects; joining again with the same ID updates the
// existing record instead of inserting a duplicate.
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	IsReady        bool      `json:"isReady"`
	CorrectAnswers int       `json:"correctAnswers"`
	LastSeen       time.Time `json:"lastSeen"`
	LastAnswered   time.Time `json:"lastAnswered,omitzero"`

	// AnsweredRound is the round number this player last scored in. A second
	// submission for the same round is accepted but does not score again.
	AnsweredRound int `json:"-"`
}
