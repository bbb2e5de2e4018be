// internal/question/bank.go
package question

import (
	"errors"
	"fmt"
)

// Comment is one entry in a comment set.
type Comment struct {
	Body         string `json:"body"`
	Score        int    `json:"score"`
	Author       string `json:"author"`
	IsTopComment bool   `json:"isTopComment"`
}

// Post is one catalog entry: a post with several alternative comment sets,
// each containing exactly one top comment.
type Post struct {
	PostID      string      `json:"postId"`
	Title       string      `json:"postTitle"`
	Score       int         `json:"postScore"`
	Author      string      `json:"postAuthor"`
	IsNSFW      bool        `json:"isNSFW"`
	CommentSets [][]Comment `json:"commentSets"`
}

// ErrEmptyCatalog is returned by NewBank when there are no posts at all.
var ErrEmptyCatalog = errors.New("question: catalog has no posts")

// Bank is the immutable post catalog rounds are drawn from. It is built once
// at startup and never mutated afterwards, so concurrent reads need no lock.
type Bank struct {
	posts []Post
}

// NewBank validates the catalog and wraps it in a Bank. Every comment set
// must hold at least two comments with exactly one flagged as top, and post
// IDs must be unique.
func NewBank(posts []Post) (*Bank, error) {
	if len(posts) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if p.PostID == "" {
			return nil, fmt.Errorf("question: post %q has no id", p.Title)
		}
		if seen[p.PostID] {
			return nil, fmt.Errorf("question: duplicate post id %s", p.PostID)
		}
		seen[p.PostID] = true
		if len(p.CommentSets) == 0 {
			return nil, fmt.Errorf("question: post %s has no comment sets", p.PostID)
		}
		for i, set := range p.CommentSets {
			if len(set) < 2 {
				return nil, fmt.Errorf("question: post %s set %d has %d comments, need at least 2", p.PostID, i, len(set))
			}
			top := 0
			for _, c := range set {
				if c.IsTopComment {
					top++
				}
			}
			if top != 1 {
				return nil, fmt.Errorf("question: post %s set %d has %d top comments, want exactly 1", p.PostID, i, top)
			}
		}
	}
	return &Bank{posts: posts}, nil
}

// Posts returns every catalog entry, NSFW included.
func (b *Bank) Posts() []Post {
	return b.posts
}

// Filtered returns the posts eligible under the lobby's content setting.
func (b *Bank) Filtered(allowNSFW bool) []Post {
	if allowNSFW {
		return b.posts
	}
	out := make([]Post, 0, len(b.posts))
	for _, p := range b.posts {
		if !p.IsNSFW {
			out = append(out, p)
		}
	}
	return out
}

// Len reports how many posts the catalog holds.
func (b *Bank) Len() int {
	return len(b.posts)
}
