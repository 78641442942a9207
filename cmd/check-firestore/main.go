package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/config"
	firestoreclient "github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/firestore"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/repository"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	conn, err := firestoreclient.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer conn.Close()
	fmt.Printf("Project: %s (credentials from %s)\n", conn.Project, conn.CredentialSource)

	doc, err := repository.NewSummaryRepository(conn.Client).GetPublishedSummary(ctx)
	if err != nil {
		log.Fatalf("Failed to get document: %v", err)
	}

	fmt.Printf("Last updated: %s\n", doc.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Fingerprint:  %s\n", doc.Fingerprint)
	fmt.Printf("States: %d, total providers: %d\n\n", len(doc.Summary.Rows), doc.Summary.TotalProviders)

	jsonData, err := json.MarshalIndent(doc.Summary.Rows, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal: %v", err)
	}
	fmt.Println("Published rows:")
	fmt.Println(string(jsonData))
}
