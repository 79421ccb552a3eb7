package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mansakrishna23/simple-message-bank/database"
	"github.com/mansakrishna23/simple-message-bank/models"
)

func newTestRepository(t *testing.T) MessageRepository {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "messages.sqlite"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMessageRepository(db)
}

func seed(t *testing.T, repo MessageRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		msg := &models.Message{Handle: fmt.Sprintf("user%d", i), Content: fmt.Sprintf("message %d", i)}
		require.NoError(t, repo.Create(context.Background(), msg))
	}
}

func TestCreateThenSampleRoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newTestRepository(t)

	msg := &models.Message{Handle: "alice", Content: "hello"}
	req.NoError(repo.Create(ctx, msg))
	req.NotZero(msg.ID)

	sample, err := repo.SampleRandom(ctx, 1)
	req.NoError(err)
	req.Len(sample, 1)
	req.Equal("alice", sample[0].Handle)
	req.Equal("hello", sample[0].Content)
}

func TestRoundTripAmongMany(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newTestRepository(t)
	seed(t, repo, 10)
	req.NoError(repo.Create(ctx, &models.Message{Handle: "alice", Content: "hello"}))

	found := false
	for i := 0; i < 200 && !found; i++ {
		sample, err := repo.SampleRandom(ctx, 3)
		req.NoError(err)
		for _, m := range sample {
			if m.Handle == "alice" && m.Content == "hello" {
				found = true
			}
		}
	}
	req.True(found, "alice/hello never showed up in repeated samples")
}

func TestSampleBound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seed(t, repo, 4)

	for n := -1; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			sample, err := repo.SampleRandom(ctx, n)
			require.NoError(t, err)
			require.Len(t, sample, max(0, min(n, 4)))
		})
	}
}

func TestSampleHasNoDuplicates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newTestRepository(t)
	seed(t, repo, 5)

	for i := 0; i < 20; i++ {
		sample, err := repo.SampleRandom(ctx, 5)
		req.NoError(err)
		seen := map[uint]bool{}
		for _, m := range sample {
			req.False(seen[m.ID], "message %d sampled twice", m.ID)
			seen[m.ID] = true
		}
	}
}

func TestSampleEmptyStore(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	sample, err := repo.SampleRandom(context.Background(), 3)
	req.NoError(err)
	req.NotNil(sample)
	req.Empty(sample)
}

func TestCreateRejectsEmptyFields(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, msg := range []*models.Message{
		{Handle: "", Content: "hello"},
		{Handle: "alice", Content: ""},
		{},
	} {
		req.ErrorIs(repo.Create(ctx, msg), models.ErrValidation)
	}

	count, err := repo.Count(ctx)
	req.NoError(err)
	req.Zero(count)
}

func TestConcurrentCreates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newTestRepository(t)

	const writers, perWriter = 8, 10
	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				errs <- repo.Create(ctx, &models.Message{Handle: fmt.Sprintf("w%d", w), Content: fmt.Sprintf("m%d", i)})
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	count, err := repo.Count(ctx)
	req.NoError(err)
	req.Equal(int64(writers*perWriter), count)
}
