// sync-validators regenerates the MongoDB validator artifacts from the
// collection schema catalog:
//
//  1. apply_validators_commands.json (collMod commands for Atlas)
//  2. ../bridges_physiotherapy_services_db_admin/schema.json (admin copy)
//
// Usage:
//
//	go run ./cmd/sync-validators
package main

import (
	"flag"
	"log"

	"github.com/bridges-physiotherapy/schema-sync/internal/config"
	"github.com/bridges-physiotherapy/schema-sync/internal/generate"
)

// Version info, injected at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	log.SetFlags(0) // Remove timestamp from logs

	showVersion := flag.Bool("version", false, "Display version information")
	flag.Parse()

	if *showVersion {
		log.Printf("sync-validators v%s (commit: %s)", Version, GitCommit)
		return
	}

	cfg := config.NewConfig()

	result, err := generate.Run(cfg)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	log.Printf("Wrote %d collMod commands to %s", result.CommandCount, result.CommandsPath)
	log.Printf("Updated %s", result.AdminSchemaPath)
}
