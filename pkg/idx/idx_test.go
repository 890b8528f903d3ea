package idx_test

import (
	"testing"
	"time"

	"github.com/opengamebackend/auth/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewProducesValidUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[idx.ID]struct{})
	for range 100 {
		id := idx.New()
		_, err := idx.Parse(id.String())
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestIDsSortByCreationTime(t *testing.T) {
	t.Parallel()

	earlier := idx.NewAt(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	later := idx.NewAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Less(t, earlier.String(), later.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty", func(t *testing.T) {
		_, err := idx.Parse("")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("rejects malformed", func(t *testing.T) {
		_, err := idx.Parse("not-a-ulid")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("round trips", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	id := idx.NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)

	require.True(t, idx.Zero.Time().IsZero())
}
