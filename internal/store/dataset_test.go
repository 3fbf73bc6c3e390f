package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizonlabs/media-analytics-go/internal/models"
)

type stubSource struct {
	mu    sync.Mutex
	loads int
	recs  []models.Record
	err   error
}

func (s *stubSource) Load(ctx context.Context) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.recs, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRecordsLoadsOnce(t *testing.T) {
	src := &stubSource{recs: []models.Record{{Partner: "Google", YearWeek: "2025-W02"}}}
	ds := NewDataset(src, discard())

	first, err := ds.Records(context.Background())
	require.NoError(t, err)
	second, err := ds.Records(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.loads, "second call must hit the cache")
}

func TestRecordsLoadFailureIsNotCached(t *testing.T) {
	src := &stubSource{err: errors.New("boom")}
	ds := NewDataset(src, discard())

	_, err := ds.Records(context.Background())
	require.Error(t, err)

	src.mu.Lock()
	src.err = nil
	src.recs = []models.Record{{Partner: "Meta", YearWeek: "2025-W02"}}
	src.mu.Unlock()

	recs, err := ds.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestReloadReplacesSnapshot(t *testing.T) {
	src := &stubSource{recs: []models.Record{{Partner: "Google", YearWeek: "2025-W02"}}}
	ds := NewDataset(src, discard())

	_, err := ds.Records(context.Background())
	require.NoError(t, err)

	src.mu.Lock()
	src.recs = []models.Record{
		{Partner: "Google", YearWeek: "2025-W02"},
		{Partner: "Meta", YearWeek: "2025-W03"},
	}
	src.mu.Unlock()

	n, err := ds.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs, err := ds.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestReloadFailureKeepsOldSnapshot(t *testing.T) {
	src := &stubSource{recs: []models.Record{{Partner: "Google", YearWeek: "2025-W02"}}}
	ds := NewDataset(src, discard())

	_, err := ds.Records(context.Background())
	require.NoError(t, err)

	src.mu.Lock()
	src.err = errors.New("source gone")
	src.mu.Unlock()

	_, err = ds.Reload(context.Background())
	require.Error(t, err)

	recs, err := ds.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1, "failed reload must not clobber the snapshot")
}

func TestConcurrentFirstLoadCollapses(t *testing.T) {
	src := &stubSource{recs: []models.Record{{Partner: "Google", YearWeek: "2025-W02"}}}
	ds := NewDataset(src, discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recs, err := ds.Records(context.Background())
			assert.NoError(t, err)
			assert.Len(t, recs, 1)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, src.loads)
}
