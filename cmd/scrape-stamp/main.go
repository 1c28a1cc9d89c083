package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"stampscraper/config"
	"stampscraper/scrapers"
)

func main() {
	config.LoadConfig()

	// One listing per run, German page first. The German URL decides the
	// catalog family and becomes the record's canonical URL.
	primaryURL := "https://www.philatelie.li/pi/Kryptobriefmarken/Wertzeichen/Kryptobriefmarke-Nr-2-The-Meerkat.html"
	secondaryURL := "https://www.philatelie.li/pi/en/crypto-stamps/Stamps/Crypto-Stamp-Nr-2-The-Meerkat.html"

	scraper, resolved, err := scrapers.GetScraper(primaryURL)
	if err != nil {
		log.Fatalf("Failed to get scraper for %s: %v", primaryURL, err)
	}

	stamp, err := scraper.ScrapeStamp(resolved, secondaryURL)
	if err != nil {
		log.Fatalf("Failed to scrape stamp: %v", err)
	}

	b, err := json.MarshalIndent(stamp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode stamp: %v", err)
	}

	if scraper.Family().WriteFile {
		name := filepath.Join(config.OutputDir, stamp.StampNo+".json")
		if err := os.WriteFile(name, b, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", name, err)
		}
		fmt.Printf("Stamp data written to %s\n", name)
	} else {
		fmt.Println(string(b))
	}
}
