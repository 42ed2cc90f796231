package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLogAppendsAndCaps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.LogError(ctx, ErrorEntry{Message: "save failed", Context: "auto-save"})

	entries := s.ErrorLog(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "save failed", entries[0].Message)
	assert.False(t, entries[0].Timestamp.IsZero())

	for i := 0; i < maxErrorEntries+10; i++ {
		s.LogError(ctx, ErrorEntry{Message: fmt.Sprintf("err %d", i)})
	}

	entries = s.ErrorLog(ctx)
	require.Len(t, entries, maxErrorEntries)
	// Oldest entries are dropped first.
	assert.Equal(t, fmt.Sprintf("err %d", maxErrorEntries+9), entries[len(entries)-1].Message)
}
