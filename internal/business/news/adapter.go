package news

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/metrics"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/newsapi"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/util"
)

// MaxArticles caps every article list.
const MaxArticles = 5

// Upstream is the subset of the NewsAPI client the adapter needs.
type Upstream interface {
	TopHeadlines(ctx context.Context) ([]newsapi.Article, error)
	Everything(ctx context.Context, query string) ([]newsapi.Article, error)
	Sources(ctx context.Context) ([]newsapi.Source, error)
}

// Recorder counts upstream outcomes.
type Recorder interface {
	ObserveNews(operation, outcome string)
}

// Adapter turns NewsAPI responses into the five most recent articles. Upstream
// failures are logged and counted, and the caller gets an empty list.
type Adapter struct {
	upstream Upstream
	logger   *zap.Logger
	recorder Recorder
	timeout  time.Duration
}

// NewAdapter creates an adapter. timeout bounds each upstream call (10s when
// zero); logger and recorder may be nil.
func NewAdapter(upstream Upstream, logger *zap.Logger, recorder Recorder, timeout time.Duration) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Adapter{upstream: upstream, logger: logger, recorder: recorder, timeout: timeout}
}

// Headlines returns the latest US health headlines published by one outlet.
func (a *Adapter) Headlines(ctx context.Context, outletID string) []model.Article {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.upstream.TopHeadlines(ctx)
	if err != nil {
		a.fail("headlines", err, zap.String("outlet", outletID))
		return []model.Article{}
	}

	var matched []newsapi.Article
	for _, art := range raw {
		if art.Source.ID == outletID {
			matched = append(matched, art)
		}
	}
	return a.finish("headlines", matched)
}

// Search returns the latest articles mentioning topic. A blank topic returns
// an empty list without calling upstream.
func (a *Adapter) Search(ctx context.Context, topic string) []model.Article {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return []model.Article{}
	}
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.upstream.Everything(ctx, topic)
	if err != nil {
		a.fail("search", err, zap.String("topic", topic))
		return []model.Article{}
	}
	return a.finish("search", raw)
}

// Outlets lists news sources ordered by name.
func (a *Adapter) Outlets(ctx context.Context) []model.Outlet {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	sources, err := a.upstream.Sources(ctx)
	if err != nil {
		a.fail("outlets", err)
		return []model.Outlet{}
	}
	a.observe("outlets", outcomeFor(len(sources)))

	out := make([]model.Outlet, 0, len(sources))
	for _, s := range sources {
		if s.ID == "" {
			continue
		}
		out = append(out, model.Outlet{ID: s.ID, Name: s.Name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (a *Adapter) finish(op string, raw []newsapi.Article) []model.Article {
	a.observe(op, outcomeFor(len(raw)))
	return Latest(raw, MaxArticles)
}

func (a *Adapter) fail(op string, err error, fields ...zap.Field) {
	a.logger.Warn("news upstream failed", append(fields, zap.String("operation", op), zap.Error(err))...)
	a.observe(op, metrics.OutcomeError)
}

func (a *Adapter) observe(op, outcome string) {
	if a.recorder != nil {
		a.recorder.ObserveNews(op, outcome)
	}
}

func outcomeFor(n int) string {
	if n == 0 {
		return metrics.OutcomeEmpty
	}
	return metrics.OutcomeOK
}

// Latest converts raw articles, orders them newest first and keeps at most
// limit. Equal timestamps keep upstream order; unparseable ones sort last.
func Latest(raw []newsapi.Article, limit int) []model.Article {
	type item struct {
		article model.Article
		valid   bool
	}
	items := make([]item, 0, len(raw))
	for _, r := range raw {
		published, err := time.Parse(time.RFC3339, strings.TrimSpace(r.PublishedAt))
		items = append(items, item{
			article: model.Article{
				Title:       util.CleanText(r.Title),
				Author:      util.CleanText(r.Author),
				SourceID:    r.Source.ID,
				SourceName:  r.Source.Name,
				Description: util.CleanText(r.Description),
				URL:         r.URL,
				PublishedAt: published,
			},
			valid: err == nil,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].valid != items[j].valid {
			return items[i].valid
		}
		return items[i].article.PublishedAt.After(items[j].article.PublishedAt)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]model.Article, len(items))
	for i, it := range items {
		out[i] = it.article
	}
	return out
}
