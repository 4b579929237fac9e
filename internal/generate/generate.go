// Package generate orchestrates a full run: catalog in, both artifacts out.
package generate

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bridges-physiotherapy/schema-sync/internal/catalog"
	"github.com/bridges-physiotherapy/schema-sync/internal/collmod"
	"github.com/bridges-physiotherapy/schema-sync/internal/config"
	"github.com/bridges-physiotherapy/schema-sync/internal/emitter"
	"github.com/bridges-physiotherapy/schema-sync/internal/translator"
)

// SchemaTitle is the title of the emitted admin schema document.
const SchemaTitle = "Bridges Physiotherapy Database Schemas"

// Result summarizes a completed run for the CLI.
type Result struct {
	CommandCount    int
	CommandsPath    string
	AdminSchemaPath string
}

// Run derives the collMod commands and the admin schema document from the
// catalog and writes both files. Either both writes succeed or the run fails
// with the underlying filesystem error.
func Run(cfg *config.Config) (*Result, error) {
	cols := catalog.Collections()

	commands := collmod.Commands(cols)
	if err := emitter.WriteJSON(cfg.CommandsPath, commands); err != nil {
		return nil, err
	}

	if err := emitter.WriteJSON(cfg.AdminSchemaPath, AdminSchema(cols)); err != nil {
		return nil, err
	}

	return &Result{
		CommandCount:    len(commands),
		CommandsPath:    cfg.CommandsPath,
		AdminSchemaPath: cfg.AdminSchemaPath,
	}, nil
}

// AdminSchema renders the catalog as a draft-07 JSON Schema document, one
// translated properties entry per collection in catalog order.
func AdminSchema(cols []catalog.Collection) bson.D {
	props := make(bson.D, 0, len(cols))
	for _, c := range cols {
		props = append(props, bson.E{Key: c.Name, Value: translator.Translate(c.Schema)})
	}
	return bson.D{
		{Key: "$schema", Value: "http://json-schema.org/draft-07/schema#"},
		{Key: "title", Value: SchemaTitle},
		{Key: "type", Value: "object"},
		{Key: "properties", Value: props},
	}
}
