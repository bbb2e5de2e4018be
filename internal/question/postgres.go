// internal/question/postgres.go
package question

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadPostgres reads the catalog from Postgres in a single startup pass.
// Expected schema:
//
//	quiz_posts(post_id text primary key, title text, score int, author text, is_nsfw bool)
//	quiz_comments(post_id text, set_index int, position int, body text, score int, author text, is_top bool)
//
// The pool is closed before returning; the engine never touches the database
// again after the catalog is in memory.
func LoadPostgres(ctx context.Context, connStr string) ([]Post, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("question: create pgx pool: %w", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("question: ping question db: %w", err)
	}

	posts := []Post{}
	index := map[string]int{}

	rows, err := pool.Query(ctx, `
		SELECT post_id, title, score, author, is_nsfw
		FROM quiz_posts
		ORDER BY post_id
	`)
	if err != nil {
		return nil, fmt.Errorf("question: query quiz_posts: %w", err)
	}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.PostID, &p.Title, &p.Score, &p.Author, &p.IsNSFW); err != nil {
			rows.Close()
			return nil, fmt.Errorf("question: scan quiz_posts: %w", err)
		}
		index[p.PostID] = len(posts)
		posts = append(posts, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("question: iterate quiz_posts: %w", err)
	}

	rows, err = pool.Query(ctx, `
		SELECT post_id, set_index, body, score, author, is_top
		FROM quiz_comments
		ORDER BY post_id, set_index, position
	`)
	if err != nil {
		return nil, fmt.Errorf("question: query quiz_comments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			postID   string
			setIndex int
			c        Comment
		)
		if err := rows.Scan(&postID, &setIndex, &c.Body, &c.Score, &c.Author, &c.IsTopComment); err != nil {
			return nil, fmt.Errorf("question: scan quiz_comments: %w", err)
		}
		i, ok := index[postID]
		if !ok {
			return nil, fmt.Errorf("question: comment references unknown post %s", postID)
		}
		for len(posts[i].CommentSets) <= setIndex {
			posts[i].CommentSets = append(posts[i].CommentSets, nil)
		}
		posts[i].CommentSets[setIndex] = append(posts[i].CommentSets[setIndex], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("question: iterate quiz_comments: %w", err)
	}

	return posts, nil
}
