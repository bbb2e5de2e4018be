// internal/lobby/rounds.go
package lobby

import (
	"log"
	"math/rand"
	"time"

	"github.com/topguess/topguess/internal/models"
	"github.com/topguess/topguess/internal/question"
)

// StartGame begins the first round. Host-only; a call from anyone else is a
// silent no-op returning the unchanged snapshot with selected=false. The
// lobby must still be waiting and must have at least one player.
func (l *Lobby) StartGame(playerID string, bank *question.Bank) (snap *Snapshot, selected bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, false, ErrLobbyNotFound
	}
	if playerID != l.HostID {
		return l.snapshotLocked(), false, nil
	}
	if l.GameState != GameStateWaiting {
		return nil, false, ErrGameInProgress
	}
	if len(l.Players) == 0 {
		return nil, false, ErrNoPlayers
	}
	if err := l.selectRoundLocked(bank); err != nil {
		return nil, false, err
	}
	return l.snapshotLocked(), true, nil
}

// AdvanceRound moves a playing lobby to its next round, leaving scores
// intact. Host-only with the same silent no-op leniency as StartGame.
func (l *Lobby) AdvanceRound(playerID string, bank *question.Bank) (snap *Snapshot, selected bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, false, ErrLobbyNotFound
	}
	if playerID != l.HostID {
		return l.snapshotLocked(), false, nil
	}
	if l.GameState != GameStatePlaying {
		return nil, false, ErrGameNotStarted
	}
	if err := l.selectRoundLocked(bank); err != nil {
		return nil, false, err
	}
	return l.snapshotLocked(), true, nil
}

// SubmitAnswer credits a player with the caller-computed result. The engine
// trusts the supplied points and correctness; it only guards the score
// invariants: points never subtract, and one submission per round counts. A
// repeat submission for the same round succeeds without scoring so client
// retries stay idempotent.
func (l *Lobby) SubmitAnswer(playerID string, points int, isCorrect bool) (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.deleted {
		return nil, ErrLobbyNotFound
	}

	p := l.findPlayerLocked(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	if l.CurrentRound > 0 && p.AnsweredRound == l.CurrentRound {
		l.touchLocked()
		return l.snapshotLocked(), nil
	}

	if points > 0 {
		p.Score += points
	}
	if isCorrect {
		p.CorrectAnswers++
	}
	p.LastAnswered = time.Now()
	p.AnsweredRound = l.CurrentRound

	l.touchLocked()
	return l.snapshotLocked(), nil
}

// selectRoundLocked runs the question selection algorithm and installs the
// resulting round. Assumes the lock is held.
//
// Repeat avoidance is global across the lobby's lifetime: a (post, set) pair
// is never served twice until every eligible pair has been served, at which
// point the whole history resets.
func (l *Lobby) selectRoundLocked(bank *question.Bank) error {
	eligible := bank.Filtered(l.Settings.AllowNSFW)
	if len(eligible) == 0 {
		return ErrNoContent
	}

	available := l.postsWithUnusedSetsLocked(eligible)
	if len(available) == 0 {
		// Every eligible pair has been served; start the history over.
		log.Printf("Lobby %s: all %d comment sets exhausted, resetting history.", l.ID, len(l.UsedCommentSets))
		l.UsedCommentSets = nil
		available = eligible
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	post := available[r.Intn(len(available))]

	unused := l.unusedSetIndexesLocked(post)
	setIdx := unused[r.Intn(len(unused))]

	// Record before serving so a crash-free success path can never repeat
	// the pair until the next reset.
	l.UsedCommentSets = append(l.UsedCommentSets, UsedSet{
		PostID:          post.PostID,
		CommentSetIndex: setIdx,
	})

	set := post.CommentSets[setIdx]
	comments := make([]models.QuizComment, len(set))
	for i, c := range set {
		comments[i] = models.QuizComment{
			Body:         c.Body,
			Score:        c.Score,
			Author:       c.Author,
			IsTopComment: c.IsTopComment,
		}
	}
	r.Shuffle(len(comments), func(i, j int) {
		comments[i], comments[j] = comments[j], comments[i]
	})

	l.CurrentQuiz = &models.QuizRound{
		PostID:     post.PostID,
		PostTitle:  post.Title,
		PostScore:  post.Score,
		PostAuthor: post.Author,
		Comments:   comments,
	}
	l.CurrentRound++
	l.GameStarted = true
	l.GameState = GameStatePlaying
	l.touchLocked()

	log.Printf("Lobby %s: round %d serves post %s set %d.", l.ID, l.CurrentRound, post.PostID, setIdx)
	return nil
}

// postsWithUnusedSetsLocked returns the posts that still have at least one
// comment set absent from the used history. Assumes the lock is held.
func (l *Lobby) postsWithUnusedSetsLocked(posts []question.Post) []question.Post {
	out := make([]question.Post, 0, len(posts))
	for _, p := range posts {
		if len(l.unusedSetIndexesLocked(p)) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// unusedSetIndexesLocked returns the comment set indexes of p not yet in the
// used history. Assumes the lock is held.
func (l *Lobby) unusedSetIndexesLocked(p question.Post) []int {
	used := make(map[int]bool)
	for _, u := range l.UsedCommentSets {
		if u.PostID == p.PostID {
			used[u.CommentSetIndex] = true
		}
	}
	idxs := make([]int, 0, len(p.CommentSets))
	for i := range p.CommentSets {
		if !used[i] {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
