package main

import (
	"fmt"
	"log"

	"linkedin-harvester/auth"
	"linkedin-harvester/config"
	"linkedin-harvester/extractor"
	"linkedin-harvester/persistence"
)

func main() {
	fmt.Println("📇 LinkedIn Profile Extractor")
	fmt.Println("=============================")

	cfg := config.Load()
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatal("❌ Could not create output directories:", err)
	}

	store, err := persistence.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatal("❌ Could not open ledger database:", err)
	}
	defer store.Close()

	session, err := auth.Bootstrap(cfg)
	if err != nil {
		log.Fatal("❌ Authentication failed:", err)
	}
	defer session.Close()

	ex := extractor.New(session, cfg, store)
	stats, err := ex.Run()
	if err != nil {
		if stats != nil {
			printSummary(stats, store)
		}
		log.Fatal("❌ Extraction failed:", err)
	}

	printSummary(stats, store)
}

func printSummary(stats *extractor.Stats, store *persistence.Store) {
	fmt.Println("\n📊 Extraction summary")
	fmt.Printf("   Total profiles: %d\n", stats.Total)
	fmt.Printf("   Extracted:      %d\n", stats.Extracted)
	fmt.Printf("   Skipped:        %d\n", stats.Skipped)
	fmt.Printf("   Failed:         %d\n", stats.Failed)

	if daily, err := store.TodayStats(); err == nil {
		fmt.Printf("   Today:          %d extracted, %d failed\n",
			daily.ProfilesExtracted, daily.ExtractionsFailed)
	}
}
