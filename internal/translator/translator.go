// Package translator rewrites MongoDB validator schemas (bsonType vocabulary)
// into standard JSON Schema (type/pattern/format vocabulary) for the admin
// tool.
package translator

import "go.mongodb.org/mongo-driver/bson"

// ObjectIDPattern constrains a translated objectId to its canonical
// 24-character hex string form.
const ObjectIDPattern = "^[a-fA-F0-9]{24}$"

// typeMap rewrites bson type names into JSON Schema type names. Names not in
// the map pass through unmapped so unknown bson kinds degrade gracefully
// instead of aborting generation.
var typeMap = map[string]string{
	"bool":     "boolean",
	"string":   "string",
	"object":   "object",
	"array":    "array",
	"objectId": "string",
	"date":     "string",
	"int":      "number",
	"long":     "number",
	"double":   "number",
	"decimal":  "number",
	"null":     "null",
}

// Translate recursively converts a schema node. Documents are rewritten,
// lists are translated element-wise, and scalars pass through unchanged.
func Translate(node any) any {
	switch n := node.(type) {
	case bson.D:
		return translateDoc(n)
	case bson.A:
		out := make(bson.A, len(n))
		for i, v := range n {
			out[i] = Translate(v)
		}
		return out
	default:
		return node
	}
}

func translateDoc(node bson.D) bson.D {
	result := bson.D{}
	var emittedPattern, emittedFormat bool

	if raw, ok := lookup(node, "bsonType"); ok {
		var names bson.A
		if list, isList := raw.(bson.A); isList {
			names = list
		} else {
			names = bson.A{raw}
		}

		converted := make(bson.A, 0, len(names))
		var needsPattern, needsFormat bool
		for _, name := range names {
			s, isString := name.(string)
			if !isString {
				converted = append(converted, name)
				continue
			}
			if s == "objectId" {
				needsPattern = true
			}
			if s == "date" {
				needsFormat = true
			}
			if mapped, known := typeMap[s]; known {
				converted = append(converted, mapped)
			} else {
				converted = append(converted, s)
			}
		}

		if len(converted) == 1 {
			result = append(result, bson.E{Key: "type", Value: converted[0]})
		} else {
			result = append(result, bson.E{Key: "type", Value: converted})
		}

		// An explicit pattern or format on the node wins; the translated
		// value only fills the gap.
		if needsPattern {
			v, explicit := lookup(node, "pattern")
			if !explicit {
				v = ObjectIDPattern
			}
			result = append(result, bson.E{Key: "pattern", Value: v})
			emittedPattern = true
		}
		if needsFormat {
			v, explicit := lookup(node, "format")
			if !explicit {
				v = "date-time"
			}
			result = append(result, bson.E{Key: "format", Value: v})
			emittedFormat = true
		}
	}

	for _, e := range node {
		switch {
		case e.Key == "bsonType":
			continue
		case e.Key == "pattern" && emittedPattern:
			continue
		case e.Key == "format" && emittedFormat:
			continue
		case e.Key == "properties":
			props, isDoc := e.Value.(bson.D)
			if !isDoc {
				result = append(result, bson.E{Key: e.Key, Value: Translate(e.Value)})
				continue
			}
			out := make(bson.D, len(props))
			for i, p := range props {
				out[i] = bson.E{Key: p.Key, Value: Translate(p.Value)}
			}
			result = append(result, bson.E{Key: "properties", Value: out})
		default:
			// Covers items (single sub-schema or tuple list) and every
			// other key, whose values may themselves be sub-schemas.
			result = append(result, bson.E{Key: e.Key, Value: Translate(e.Value)})
		}
	}
	return result
}

func lookup(d bson.D, key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}
