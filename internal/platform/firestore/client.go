package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/config"
)

// ErrNotConfigured is returned when no Firebase project or credentials are set.
var ErrNotConfigured = errors.New("firestore is not configured")

const defaultTimeout = 5 * time.Second

// Connection is an open Firestore client for the summary publisher.
type Connection struct {
	Client           *firestore.Client
	Project          string
	CredentialSource string // "base64" or "file"
	timeout          time.Duration
}

// Connect builds a client from the Firebase settings in cfg. Ping calls are
// bounded by cfg.FirestoreTimeout.
func Connect(ctx context.Context, cfg config.Config) (*Connection, error) {
	if !cfg.FirestoreEnabled() {
		return nil, ErrNotConfigured
	}
	creds, source, err := cfg.FirebaseCredentialsJSON()
	if err != nil {
		return nil, err
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("init firestore client for %s: %w", cfg.FirebaseProjectID, err)
	}
	return &Connection{
		Client:           client,
		Project:          cfg.FirebaseProjectID,
		CredentialSource: source,
		timeout:          pingTimeout(cfg.FirestoreTimeout),
	}, nil
}

func pingTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultTimeout
	}
	return d
}

// Ping reads at most one document of collection. An empty collection is fine;
// only an unreachable project or denied credentials fail.
func (c *Connection) Ping(ctx context.Context, collection string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.Client.Collection(collection).Limit(1).Documents(ctx).Next()
	if err == nil || errors.Is(err, iterator.Done) {
		return nil
	}
	return fmt.Errorf("ping %s/%s: %w", c.Project, collection, err)
}

func (c *Connection) Close() error {
	return c.Client.Close()
}
