// internal/question/file.go
package question

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a catalog from a JSON file holding an array of posts in the
// same shape the Post struct marshals to.
func LoadFile(path string) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("question: read catalog file: %w", err)
	}
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("question: parse catalog file %s: %w", path, err)
	}
	return posts, nil
}
