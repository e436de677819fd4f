package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pharmadesk/api/internal/catalog"
	"github.com/pharmadesk/api/internal/enum"
)

// Exports the built-in pharmacy catalogs as JSON, one file per document
// kind, in the same shape the catalog endpoint serves. Useful for
// inspecting the seed data or feeding a mock catalog source.
func main() {
	// CLI flags
	out := flag.String("out", "", "Output directory for catalog JSON files")
	flag.Parse()

	// Fall back to environment variable, then default
	if *out == "" {
		*out = os.Getenv("SEED_OUT")
	}
	if *out == "" {
		*out = "seed"
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Unable to create output directory: %v", err)
	}

	for _, kind := range enum.DocKinds {
		payload := struct {
			Kind    string          `json:"kind"`
			Entries []catalog.Entry `json:"entries"`
		}{Kind: kind, Entries: catalog.Seed(kind)}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			log.Fatalf("Unable to encode %s catalog: %v", kind, err)
		}

		path := filepath.Join(*out, "catalog_"+strings.ToLower(kind)+".json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			log.Fatalf("Unable to write %s: %v", path, err)
		}
		log.Printf("Wrote %s (%d entries)", path, len(payload.Entries))
	}
}
