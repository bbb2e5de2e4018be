// internal/models/quiz.go
package models

// QuizComment is one candidate comment shown during a round. Exactly one
// comment per round carries IsTopComment.
type QuizComment struct {
	Body         string `json:"body"`
	Score        int    `json:"score"`
	Author       string `json:"author"`
	IsTopComment bool   `json:"isTopComment"`
}

// QuizRound is the payload every player sees for the active round. Comments
// are in randomized display order; position carries no meaning, correctness
// is judged solely by the IsTopComment flag.
type QuizRound struct {
	PostID     string        `json:"postId"`
	PostTitle  string        `json:"postTitle"`
	PostScore  int           `json:"postScore"`
	PostAuthor string        `json:"postAuthor"`
	Comments   []QuizComment `json:"comments"`
}
