// Package catalog defines the MongoDB validator schemas for every collection
// in the Bridges Physiotherapy services database. Schemas are expressed as
// bson.D documents so that key order is preserved all the way to the emitted
// JSON artifacts.
package catalog

import "go.mongodb.org/mongo-driver/bson"

// numericTypes are the bson kinds accepted for numeric fields. Mongoose may
// store a Number as any of these depending on value, so validators accept all
// four.
var numericTypes = bson.A{"int", "long", "double", "decimal"}

// withNull appends "null" to a list of type names, removing duplicates while
// preserving first-occurrence order.
func withNull(types bson.A) bson.A {
	out := make(bson.A, 0, len(types)+1)
	seen := make(map[any]bool, len(types)+1)
	for _, t := range types {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if !seen["null"] {
		out = append(out, "null")
	}
	return out
}

func scalar(bsonType string, nullable bool) bson.D {
	if !nullable {
		return bson.D{{Key: "bsonType", Value: bsonType}}
	}
	return bson.D{{Key: "bsonType", Value: withNull(bson.A{bsonType})}}
}

// Number returns a descriptor accepting any numeric bson kind.
func Number(nullable bool) bson.D {
	types := append(bson.A{}, numericTypes...)
	if nullable {
		types = withNull(types)
	}
	return bson.D{{Key: "bsonType", Value: types}}
}

// String returns a string field descriptor.
func String(nullable bool) bson.D { return scalar("string", nullable) }

// Bool returns a boolean field descriptor.
func Bool(nullable bool) bson.D { return scalar("bool", nullable) }

// Date returns a date field descriptor.
func Date(nullable bool) bson.D { return scalar("date", nullable) }

// ObjectID returns a descriptor for a reference to another document.
func ObjectID(nullable bool) bson.D { return scalar("objectId", nullable) }

// Enum returns a string field descriptor restricted to the given values.
func Enum(values ...string) bson.D {
	vals := make(bson.A, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return bson.D{
		{Key: "bsonType", Value: "string"},
		{Key: "enum", Value: vals},
	}
}

// ArrayOf wraps an item schema as an array whose elements all conform to it.
// The item schema is deep-copied, so a shared item-schema value can back
// several array fields without aliasing.
func ArrayOf(item any) bson.D {
	return bson.D{
		{Key: "bsonType", Value: "array"},
		{Key: "items", Value: deepCopy(item)},
	}
}

func deepCopy(node any) any {
	switch n := node.(type) {
	case bson.D:
		out := make(bson.D, len(n))
		for i, e := range n {
			out[i] = bson.E{Key: e.Key, Value: deepCopy(e.Value)}
		}
		return out
	case bson.A:
		out := make(bson.A, len(n))
		for i, v := range n {
			out[i] = deepCopy(v)
		}
		return out
	default:
		return n
	}
}

// object is the ["object", "null"] descriptor used for free-shaped embedded
// documents like address or metadata.
func object(nullable bool) bson.D { return scalar("object", nullable) }

// anyObject matches any embedded document.
func anyObject() bson.D {
	return bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "additionalProperties", Value: true},
	}
}
