package main

import (
	"fmt"
	"log"

	"linkedin-harvester/auth"
	"linkedin-harvester/collector"
	"linkedin-harvester/config"
	"linkedin-harvester/persistence"
)

func main() {
	fmt.Println("🔗 LinkedIn Profile Link Collector")
	fmt.Println("==================================")

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

	c := collector.New(session, cfg, store)
	stats, err := c.Run()
	if err != nil {
		if stats != nil {
			printSummary(stats, store)
		}
		log.Fatal("❌ Collection failed:", err)
	}

	printSummary(stats, store)
}

func printSummary(stats *collector.Stats, store *persistence.Store) {
	fmt.Println("\n📊 Collection summary")
	fmt.Printf("   Pages processed: %d\n", stats.PagesProcessed)
	fmt.Printf("   Links found:     %d\n", stats.LinksFound)
	fmt.Printf("   New links:       %d\n", stats.NewLinks)
	fmt.Printf("   Total collected: %d\n", stats.TotalLinks)

	if total, err := store.CollectedCount(); err == nil {
		fmt.Printf("   Ledger total:    %d\n", total)
	}
	if daily, err := store.TodayStats(); err == nil {
		fmt.Printf("   Today:           %d pages, %d profiles found\n",
			daily.PagesProcessed, daily.ProfilesFound)
	}
}
