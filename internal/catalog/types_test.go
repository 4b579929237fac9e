package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func typesOf(t *testing.T, d bson.D) bson.A {
	t.Helper()
	for _, e := range d {
		if e.Key == "bsonType" {
			if list, ok := e.Value.(bson.A); ok {
				return list
			}
			return bson.A{e.Value}
		}
	}
	t.Fatalf("descriptor has no bsonType: %v", d)
	return nil
}

func TestScalarConstructors(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "bsonType", Value: "string"}}, String(false))
	assert.Equal(t, bson.D{{Key: "bsonType", Value: "bool"}}, Bool(false))
	assert.Equal(t, bson.D{{Key: "bsonType", Value: "date"}}, Date(false))
	assert.Equal(t, bson.D{{Key: "bsonType", Value: "objectId"}}, ObjectID(false))
}

func TestNullableAppendsNullOnce(t *testing.T) {
	assert.Equal(t, bson.A{"string", "null"}, typesOf(t, String(true)))
	assert.Equal(t, bson.A{"int", "long", "double", "decimal", "null"}, typesOf(t, Number(true)))

	// Repeated construction must not accumulate nulls.
	for i := 0; i < 3; i++ {
		types := typesOf(t, Number(true))
		nulls := 0
		for _, v := range types {
			if v == "null" {
				nulls++
			}
		}
		assert.Equal(t, 1, nulls)
		assert.Equal(t, "null", types[len(types)-1])
	}
}

func TestWithNullDeduplicatesPreservingOrder(t *testing.T) {
	assert.Equal(t, bson.A{"string", "null"}, withNull(bson.A{"string", "string", "null"}))
	assert.Equal(t, bson.A{"date", "null", "string"}, withNull(bson.A{"date", "null", "string", "date"}))
}

func TestNumberDoesNotAliasNumericTypes(t *testing.T) {
	a := Number(false)
	typesOf(t, a)[0] = "mutated"

	assert.Equal(t, bson.A{"int", "long", "double", "decimal"}, typesOf(t, Number(false)))
	assert.Equal(t, bson.A{"int", "long", "double", "decimal"}, numericTypes)
}

func TestEnum(t *testing.T) {
	got := Enum("income", "expense")
	require.Len(t, got, 2)
	assert.Equal(t, bson.E{Key: "bsonType", Value: "string"}, got[0])
	assert.Equal(t, bson.E{Key: "enum", Value: bson.A{"income", "expense"}}, got[1])
}

func TestArrayOfWrapsItemSchema(t *testing.T) {
	got := ArrayOf(String(false))
	require.Len(t, got, 2)
	assert.Equal(t, bson.E{Key: "bsonType", Value: "array"}, got[0])
	assert.Equal(t, "items", got[1].Key)
	assert.Equal(t, bson.D{{Key: "bsonType", Value: "string"}}, got[1].Value)
}

func TestArrayOfDeepCopiesSharedItemSchema(t *testing.T) {
	shared := bson.D{
		{Key: "bsonType", Value: "object"},
		{Key: "properties", Value: bson.D{
			{Key: "note", Value: String(false)},
		}},
	}

	first := ArrayOf(shared)
	second := ArrayOf(shared)

	// Mutating one rendered item schema must not leak into the other or into
	// the shared constant.
	items := first[1].Value.(bson.D)
	items[0] = bson.E{Key: "bsonType", Value: "mutated"}
	props := items[1].Value.(bson.D)
	props[0] = bson.E{Key: "note", Value: "mutated"}

	assert.Equal(t, "object", second[1].Value.(bson.D)[0].Value)
	assert.Equal(t, String(false), second[1].Value.(bson.D)[1].Value.(bson.D)[0].Value)
	assert.Equal(t, "object", shared[0].Value)
	assert.Equal(t, String(false), shared[1].Value.(bson.D)[0].Value)
}
