package store

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/horizonlabs/media-analytics-go/internal/analytics"
	"github.com/horizonlabs/media-analytics-go/internal/models"
	"github.com/horizonlabs/media-analytics-go/internal/utils"
)

// Source produces the full normalized record set.
type Source interface {
	Load(ctx context.Context) ([]models.Record, error)
}

// Dataset is the initialize-once cache of the normalized, sorted record
// set. The first request triggers the load; concurrent first requests are
// collapsed into a single load. The snapshot is immutable: callers must not
// mutate the returned slice.
type Dataset struct {
	src Source
	log *slog.Logger

	mu      sync.RWMutex
	records []models.Record
	loaded  bool

	sf singleflight.Group
}

func NewDataset(src Source, log *slog.Logger) *Dataset {
	return &Dataset{src: src, log: log}
}

// Records returns the cached snapshot, loading it on first use.
func (d *Dataset) Records(ctx context.Context) ([]models.Record, error) {
	d.mu.RLock()
	if d.loaded {
		recs := d.records
		d.mu.RUnlock()
		return recs, nil
	}
	d.mu.RUnlock()

	v, err, _ := d.sf.Do("load", func() (any, error) {
		// a racing caller may have finished the load already
		d.mu.RLock()
		if d.loaded {
			recs := d.records
			d.mu.RUnlock()
			return recs, nil
		}
		d.mu.RUnlock()
		return d.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Record), nil
}

// Reload re-reads the source and atomically replaces the snapshot. On
// failure the previous snapshot stays in place.
func (d *Dataset) Reload(ctx context.Context) (int, error) {
	recs, err := d.load(ctx)
	if err != nil {
		d.log.Error("reload failed", slog.String("err", err.Error()))
		return 0, err
	}
	return len(recs), nil
}

func (d *Dataset) load(ctx context.Context) ([]models.Record, error) {
	recs, err := d.src.Load(ctx)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.records = recs
	d.loaded = true
	d.mu.Unlock()

	utils.DatasetRecords.Set(float64(len(recs)))
	utils.DatasetWeeks.Set(float64(len(analytics.DistinctWeeks(recs))))
	utils.DatasetLoads.Inc()
	return recs, nil
}
