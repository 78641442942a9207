package dataset

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// Sources names the three dataset files. Each is a local path or an
// http(s) URL; ".parquet" files are read as Parquet, anything else as CSV.
type Sources struct {
	HomeHealth string
	Hospice    string
	Hospital   string
}

// Loader reads the datasets into an immutable Snapshot.
type Loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewLoader creates a loader. A nil logger disables logging.
func NewLoader(fetcher Fetcher, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fetcher: fetcher, logger: logger}
}

// Load reads all three datasets concurrently. The first failure cancels the
// remaining loads and is returned.
func (l *Loader) Load(ctx context.Context, src Sources) (*Snapshot, error) {
	start := time.Now()
	var (
		homeHealth []model.HomeHealthProvider
		hospice    []model.HospiceRecord
		hospital   []model.HospitalRecord
		stats      [3]model.LoadStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		homeHealth, stats[0], err = l.LoadHomeHealth(gctx, src.HomeHealth)
		return err
	})
	g.Go(func() error {
		var err error
		hospice, stats[1], err = l.LoadHospice(gctx, src.Hospice)
		return err
	})
	g.Go(func() error {
		var err error
		hospital, stats[2], err = l.LoadHospital(gctx, src.Hospital)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := NewSnapshot(homeHealth, hospice, hospital, stats[:]...)
	l.logger.Info("datasets loaded",
		zap.Int("homeHealthRows", len(homeHealth)),
		zap.Int("hospiceRows", len(hospice)),
		zap.Int("hospitalRows", len(hospital)),
		zap.Duration("elapsed", time.Since(start)))
	return snap, nil
}

// LoadHomeHealth reads the home health provider file.
func (l *Loader) LoadHomeHealth(ctx context.Context, source string) ([]model.HomeHealthProvider, model.LoadStats, error) {
	stats := model.LoadStats{Dataset: HomeHealthDataset, Source: source}
	t, err := l.open(ctx, HomeHealthDataset, source)
	if err != nil {
		return nil, stats, err
	}
	defer t.Close()

	rows, err := decodeHomeHealth(t, &stats)
	if err != nil {
		return nil, stats, wrapLoadError(HomeHealthDataset, source, err)
	}
	l.logStats(stats)
	return rows, stats, nil
}

// LoadHospice reads the hospice provider file.
func (l *Loader) LoadHospice(ctx context.Context, source string) ([]model.HospiceRecord, model.LoadStats, error) {
	stats := model.LoadStats{Dataset: HospiceDataset, Source: source}
	t, err := l.open(ctx, HospiceDataset, source)
	if err != nil {
		return nil, stats, err
	}
	defer t.Close()

	rows, err := decodeHospice(t, &stats)
	if err != nil {
		return nil, stats, wrapLoadError(HospiceDataset, source, err)
	}
	l.logStats(stats)
	return rows, stats, nil
}

// LoadHospital reads the hospital payment and value of care file.
func (l *Loader) LoadHospital(ctx context.Context, source string) ([]model.HospitalRecord, model.LoadStats, error) {
	stats := model.LoadStats{Dataset: HospitalDataset, Source: source}
	t, err := l.open(ctx, HospitalDataset, source)
	if err != nil {
		return nil, stats, err
	}
	defer t.Close()

	rows, err := decodeHospital(t, &stats)
	if err != nil {
		return nil, stats, wrapLoadError(HospitalDataset, source, err)
	}
	l.logStats(stats)
	return rows, stats, nil
}

func (l *Loader) open(ctx context.Context, dataset, source string) (table, error) {
	if source == "" {
		return nil, &DataLoadError{Dataset: dataset, Source: "<unset>", Err: errNoSource}
	}
	t, err := openTable(ctx, l.fetcher, source)
	if err != nil {
		return nil, &DataLoadError{Dataset: dataset, Source: source, Err: err}
	}
	return t, nil
}

func (l *Loader) logStats(stats model.LoadStats) {
	l.logger.Debug("dataset decoded",
		zap.String("dataset", stats.Dataset),
		zap.String("source", stats.Source),
		zap.Int("rows", stats.Rows),
		zap.Int("missingValues", stats.MissingValues),
		zap.Int("invalidPeriods", stats.InvalidPeriods))
}

func wrapLoadError(dataset, source string, err error) error {
	if _, ok := err.(*DataLoadError); ok {
		return err
	}
	return &DataLoadError{Dataset: dataset, Source: source, Err: err}
}
