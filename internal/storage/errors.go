package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/rendezvous/internal/models"
)

var (
	// ErrNotFound is returned when a requested row does not exist or is deleted.
	ErrNotFound = errors.New("not found")
	// ErrNotInitialized is returned by Load before 'rendezvous init' has run.
	ErrNotInitialized = errors.New("storage not initialized, run 'rendezvous init' first")
)

// JoinIndices encodes participant indices for a single text column.
func JoinIndices(indices []models.ContactIndex) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(int(idx))
	}
	return strings.Join(parts, ",")
}

// SplitIndices decodes a value written by JoinIndices.
func SplitIndices(s string) ([]models.ContactIndex, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []models.ContactIndex
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid participant index %q: %w", part, err)
		}
		out = append(out, models.ContactIndex(n))
	}
	return out, nil
}
