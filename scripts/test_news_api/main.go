package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/news"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/config"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/newsapi"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// Smoke test for the NewsAPI credentials in .env: calls each endpoint once
// and prints what the dashboard would show.
func main() {
	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.NewsMock {
		fmt.Println("WARNING: NEWS_MOCK is true, responses are canned")
	} else if cfg.NewsAPIKey == "" {
		log.Fatal("NEWS_API_KEY is not set")
	}

	client := newsapi.New(nil, newsapi.Config{
		APIKey:     cfg.NewsAPIKey,
		BaseURL:    cfg.NewsBaseURL,
		Timeout:    cfg.NewsTimeout,
		Mock:       cfg.NewsMock,
		RatePerSec: cfg.NewsRatePerSec,
		Burst:      cfg.NewsBurst,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fmt.Println("=== Raw endpoints ===")
	headlines, err := client.TopHeadlines(ctx)
	report("top-headlines", len(headlines), err)
	results, err := client.Everything(ctx, "medicare")
	report("everything?q=medicare", len(results), err)
	sources, err := client.Sources(ctx)
	report("sources", len(sources), err)

	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()
	adapter := news.NewAdapter(client, logger, nil, cfg.NewsTimeout)

	fmt.Println("\n=== Top headlines ===")
	printArticles(adapter.Headlines(ctx, ""))

	fmt.Println("\n=== Search: medicare ===")
	printArticles(adapter.Search(ctx, "medicare"))

	fmt.Println("\n=== Outlets ===")
	outlets := adapter.Outlets(ctx)
	for _, o := range outlets {
		fmt.Printf("%-30s %s\n", o.ID, o.Name)
	}
	fmt.Printf("%d outlets\n", len(outlets))
}

func report(op string, n int, err error) {
	if err == nil {
		fmt.Printf("%-24s OK (%d results)\n", op, n)
		return
	}
	var ext *newsapi.ExternalServiceError
	if errors.As(err, &ext) {
		fmt.Printf("%-24s FAILED status=%d code=%q message=%q\n", op, ext.StatusCode, ext.Code, ext.Message)
		return
	}
	fmt.Printf("%-24s FAILED: %v\n", op, err)
}

func printArticles(articles []model.Article) {
	if len(articles) == 0 {
		fmt.Println("No articles.")
		return
	}
	for i, a := range articles {
		fmt.Printf("%d. %s\n", i+1, a.Title)
		fmt.Printf("   %s | %s\n", a.SourceName, a.PublishedAt.Format(time.RFC3339))
		fmt.Printf("   %s\n", a.URL)
	}
}
