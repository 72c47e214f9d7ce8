package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"contact-scout/internal/storage"
)

// Maintenance tool: deletes search-history records older than the retention
// window across all users.
func main() {
	var dryRun bool
	var retentionDays int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not delete; just report what would be removed")
	flag.IntVar(&retentionDays, "retention-days", 90, "Delete history records older than this many days")
	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Connecting to DB...")
	db, err := storage.NewDB(dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	if dryRun {
		var count int64
		err := db.GetConnection().QueryRowContext(ctx,
			`SELECT COUNT(*) FROM search_history WHERE created_at < $1`, cutoff).Scan(&count)
		if err != nil {
			log.Fatalf("count query failed: %v", err)
		}
		log.Printf("dry-run: %d history record(s) older than %s would be deleted", count, cutoff.Format(time.RFC3339))
		return
	}

	deleted, err := db.PruneSearchHistory(ctx, cutoff)
	if err != nil {
		log.Fatalf("prune failed: %v", err)
	}
	log.Printf("deleted %d history record(s) older than %s", deleted, cutoff.Format(time.RFC3339))
}
