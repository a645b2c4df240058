package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/veracrm/crmcore/internal/config"
	"github.com/veracrm/crmcore/internal/repository/postgres"
	"github.com/veracrm/crmcore/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/match-product/main.go <description> [reference]")
		fmt.Println("Example: go run cmd/match-product/main.go \"Urovo DT50 scanner\" \"DT50-SC\"")
		os.Exit(1)
	}

	description := os.Args[1]
	reference := ""
	if len(os.Args) > 2 {
		reference = os.Args[2]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, logger)
	matchService := service.NewMatchService(repos, logger)

	fmt.Printf("🔍 Matching: %s\n\n", description)

	resp, err := matchService.MatchItem(context.Background(), description, reference, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to match: %v\n", err)
		os.Exit(1)
	}

	if len(resp.Matches) == 0 {
		fmt.Printf("❌ No catalog product matched '%s'.\n", description)
		fmt.Printf("\nMake sure:\n")
		fmt.Printf("  1. The product exists and is active\n")
		fmt.Printf("  2. The description is close to the catalog name\n")
		fmt.Printf("  3. The reference code is correct, if you passed one\n")
		os.Exit(1)
	}

	if resp.Best != nil {
		fmt.Printf("✅ Confident match!\n\n")
	} else {
		fmt.Printf("⚠️  Candidates found, but none confident enough to use unattended.\n\n")
	}

	for i, m := range resp.Matches {
		code := ""
		if m.Code != nil {
			code = " [" + *m.Code + "]"
		}
		fmt.Printf("%d. %s%s\n", i+1, m.Name, code)
		fmt.Printf("   Product ID: %s\n", m.ProductID)
		fmt.Printf("   Score: %.3f (%s)\n", m.Score, m.Kind)
	}
}
