// Package collmod wraps catalog schemas into MongoDB collMod commands.
package collmod

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bridges-physiotherapy/schema-sync/internal/catalog"
)

// Validation policy applied to every collection. Moderate level skips
// documents that already violate the schema; error action rejects new
// violations outright.
const (
	ValidationLevel  = "moderate"
	ValidationAction = "error"
)

// Commands builds one collMod command per catalog entry, in catalog order.
func Commands(cols []catalog.Collection) []bson.D {
	cmds := make([]bson.D, 0, len(cols))
	for _, c := range cols {
		cmds = append(cmds, bson.D{
			{Key: "collMod", Value: c.Name},
			{Key: "validator", Value: bson.D{{Key: "$jsonSchema", Value: c.Schema}}},
			{Key: "validationLevel", Value: ValidationLevel},
			{Key: "validationAction", Value: ValidationAction},
		})
	}
	return cmds
}
