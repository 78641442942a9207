package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// SummaryCollection holds the published dashboard documents.
const SummaryCollection = "dashboard"

const summaryDoc = "state_summary"

// SummaryRepository manages the dashboard/state_summary singleton document.
type SummaryRepository struct {
	client *firestore.Client
}

func NewSummaryRepository(client *firestore.Client) *SummaryRepository {
	return &SummaryRepository{client: client}
}

// SavePublishedSummary overwrites the published summary, stamping LastUpdated.
func (r *SummaryRepository) SavePublishedSummary(ctx context.Context, summary model.StateSummary, fingerprint string) (model.PublishedSummary, error) {
	doc := model.PublishedSummary{
		LastUpdated: time.Now().UTC(),
		Fingerprint: fingerprint,
		Summary:     summary,
	}
	ref := r.client.Collection(SummaryCollection).Doc(summaryDoc)
	if _, err := ref.Set(ctx, doc); err != nil {
		return model.PublishedSummary{}, fmt.Errorf("save state summary: %w", err)
	}
	return doc, nil
}

func (r *SummaryRepository) GetPublishedSummary(ctx context.Context) (model.PublishedSummary, error) {
	ref := r.client.Collection(SummaryCollection).Doc(summaryDoc)
	snap, err := ref.Get(ctx)
	if err != nil {
		return model.PublishedSummary{}, fmt.Errorf("get state summary: %w", err)
	}
	var doc model.PublishedSummary
	if err := snap.DataTo(&doc); err != nil {
		return model.PublishedSummary{}, fmt.Errorf("decode state summary: %w", err)
	}
	return doc, nil
}
