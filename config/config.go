package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	// SiteBaseURL resolves relative image paths on the shop pages.
	SiteBaseURL = "https://www.philatelie.li/"
	// OutputDir is where <stampNo>.json files are written.
	OutputDir = "."
	// HTTPTimeout bounds each page fetch.
	HTTPTimeout = 30 * time.Second
	// BrowserFallback enables the chromedp/selenium fetch strategies.
	// Off by default; the shop pages render server-side.
	BrowserFallback = false
)

// LoadConfig loads environment variables from a .env file and applies any
// overrides on top of the defaults above.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		SiteBaseURL = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		OutputDir = v
	}
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Printf("Ignoring invalid HTTP_TIMEOUT_SECONDS=%q", v)
		} else {
			HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BROWSER_FALLBACK"); v != "" {
		BrowserFallback = v == "1" || v == "true"
	}
}
