package generate

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bridges-physiotherapy/schema-sync/internal/catalog"
	"github.com/bridges-physiotherapy/schema-sync/internal/collmod"
	"github.com/bridges-physiotherapy/schema-sync/internal/config"
	"github.com/bridges-physiotherapy/schema-sync/internal/emitter"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		CommandsPath:    filepath.Join(dir, "apply_validators_commands.json"),
		AdminSchemaPath: filepath.Join(dir, "schema.json"),
	}
}

func TestRunWritesBothArtifacts(t *testing.T) {
	cfg := testConfig(t)

	result, err := Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Collections()), result.CommandCount)
	assert.Equal(t, cfg.CommandsPath, result.CommandsPath)
	assert.Equal(t, cfg.AdminSchemaPath, result.AdminSchemaPath)

	commands, err := os.ReadFile(cfg.CommandsPath)
	require.NoError(t, err)
	require.True(t, json.Valid(commands))

	adminSchema, err := os.ReadFile(cfg.AdminSchemaPath)
	require.NoError(t, err)
	require.True(t, json.Valid(adminSchema))
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(cfg)
	require.NoError(t, err)
	firstCommands, err := os.ReadFile(cfg.CommandsPath)
	require.NoError(t, err)
	firstSchema, err := os.ReadFile(cfg.AdminSchemaPath)
	require.NoError(t, err)

	_, err = Run(cfg)
	require.NoError(t, err)
	secondCommands, err := os.ReadFile(cfg.CommandsPath)
	require.NoError(t, err)
	secondSchema, err := os.ReadFile(cfg.AdminSchemaPath)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(firstCommands, secondCommands))
	assert.True(t, bytes.Equal(firstSchema, secondSchema))
}

func TestRunFailsOnMissingTargetDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminSchemaPath = filepath.Join(t.TempDir(), "no-such-dir", "schema.json")

	_, err := Run(cfg)
	require.Error(t, err)

	// The commands file was written before the failure; regeneration is
	// cheap, so no cleanup is attempted.
	_, statErr := os.Stat(cfg.CommandsPath)
	assert.NoError(t, statErr)
}

func TestAdminSchemaHeader(t *testing.T) {
	doc := AdminSchema(catalog.Collections())

	require.Len(t, doc, 4)
	assert.Equal(t, bson.E{Key: "$schema", Value: "http://json-schema.org/draft-07/schema#"}, doc[0])
	assert.Equal(t, bson.E{Key: "title", Value: "Bridges Physiotherapy Database Schemas"}, doc[1])
	assert.Equal(t, bson.E{Key: "type", Value: "object"}, doc[2])

	props := doc[3].Value.(bson.D)
	require.Len(t, props, len(catalog.Collections()))
	assert.Equal(t, "users", props[0].Key)
}

func TestTranslatedSchemaValidatesDocuments(t *testing.T) {
	widgets := []catalog.Collection{
		{Name: "widgets", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"id"}},
			{Key: "properties", Value: bson.D{
				{Key: "id", Value: bson.D{{Key: "bsonType", Value: "int"}}},
				{Key: "tag", Value: bson.D{{Key: "bsonType", Value: bson.A{"string", "null"}}}},
			}},
			{Key: "additionalProperties", Value: true},
		}},
	}

	data, err := emitter.Marshal(AdminSchema(widgets))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	require.NoError(t, compiler.AddResource("schema.json", bytes.NewReader(data)))

	schema, err := compiler.Compile("schema.json")
	require.NoError(t, err)

	valid := map[string]any{
		"widgets": map[string]any{"id": 7.0, "tag": nil},
	}
	assert.NoError(t, schema.Validate(valid))

	invalid := map[string]any{
		"widgets": map[string]any{"id": 7.0, "tag": 3.0},
	}
	assert.Error(t, schema.Validate(invalid))
}

func TestWidgetsEndToEnd(t *testing.T) {
	widgets := []catalog.Collection{
		{Name: "widgets", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"id"}},
			{Key: "properties", Value: bson.D{
				{Key: "id", Value: bson.D{{Key: "bsonType", Value: "int"}}},
				{Key: "tag", Value: bson.D{{Key: "bsonType", Value: bson.A{"string", "null"}}}},
			}},
			{Key: "additionalProperties", Value: true},
		}},
	}

	cmds := collmod.Commands(widgets)
	require.Len(t, cmds, 1)
	assert.Equal(t, bson.E{Key: "collMod", Value: "widgets"}, cmds[0][0])
	assert.Equal(t, bson.E{Key: "validationLevel", Value: "moderate"}, cmds[0][2])
	assert.Equal(t, bson.E{Key: "validationAction", Value: "error"}, cmds[0][3])

	doc := AdminSchema(widgets)
	data, err := emitter.Marshal(doc)
	require.NoError(t, err)

	var parsed struct {
		Properties struct {
			Widgets struct {
				Properties struct {
					Tag struct {
						Type []string `json:"type"`
					} `json:"tag"`
					ID struct {
						Type string `json:"type"`
					} `json:"id"`
				} `json:"properties"`
			} `json:"widgets"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []string{"string", "null"}, parsed.Properties.Widgets.Properties.Tag.Type)
	assert.Equal(t, "number", parsed.Properties.Widgets.Properties.ID.Type)
}

func TestEmittedCommandBytes(t *testing.T) {
	counters := []catalog.Collection{
		{Name: "counters", Schema: bson.D{
			{Key: "bsonType", Value: "object"},
			{Key: "required", Value: bson.A{"key"}},
			{Key: "properties", Value: bson.D{
				{Key: "key", Value: bson.D{{Key: "bsonType", Value: "string"}}},
			}},
			{Key: "additionalProperties", Value: true},
		}},
	}

	data, err := emitter.Marshal(collmod.Commands(counters))
	require.NoError(t, err)

	want := `[
  {
    "collMod": "counters",
    "validator": {
      "$jsonSchema": {
        "bsonType": "object",
        "required": [
          "key"
        ],
        "properties": {
          "key": {
            "bsonType": "string"
          }
        },
        "additionalProperties": true
      }
    },
    "validationLevel": "moderate",
    "validationAction": "error"
  }
]`
	assert.Equal(t, want, string(data))
}
