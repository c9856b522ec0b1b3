package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mariana/talent-hub/internal/db"
)

// WriteJSON writes candidates as an indented JSON array.
func WriteJSON(w io.Writer, candidates []*db.Candidate) error {
	if candidates == nil {
		candidates = []*db.Candidate{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(candidates); err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}
	return nil
}
