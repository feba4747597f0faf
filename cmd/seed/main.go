package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/TWO-MIX/mind-space/internal/cafes"
	"github.com/TWO-MIX/mind-space/internal/shared/config"
)

// Prints the seed catalog the server would start with, after running it
// through the same load-time validation. Useful for eyeballing slot
// generation and for diffing catalog changes.
func main() {
	fmt.Println("🌱 Generating Mind Space seed catalog...")

	cfg := config.Load()
	now := time.Now()

	catalog := cafes.SeedCatalog(cfg.Catalog.RandSeed, now)

	// Run the catalog through repository validation before printing
	if _, err := cafes.NewRepository(catalog); err != nil {
		log.Fatalf("Seed catalog failed validation: %v", err)
	}

	totalSlots := 0
	payItForward := 0
	for i := range catalog {
		if b := catalog[i].BookableSeats; b != nil {
			totalSlots += len(b.TimeSlots)
		}
		if p := catalog[i].PayItForwardSeats; p != nil && p.Enabled {
			payItForward++
		}
	}

	fmt.Printf("✅ Generated %d cafes, %d time slots, %d with pay-it-forward seats\n",
		len(catalog), totalSlots, payItForward)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(catalog); err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	fmt.Println("🎉 Seed catalog is ready.")
}
