package pokeapi

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const pokemonSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "name", "height", "weight", "types", "abilities", "sprites", "stats"],
  "properties": {
    "id": {"type": "integer"},
    "name": {"type": "string", "minLength": 1},
    "height": {"type": "integer", "minimum": 0},
    "weight": {"type": "integer", "minimum": 0},
    "types": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {"$ref": "#/definitions/named"}
        }
      }
    },
    "abilities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["ability"],
        "properties": {
          "ability": {"$ref": "#/definitions/named"}
        }
      }
    },
    "sprites": {"type": "object"},
    "stats": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["base_stat", "stat"],
        "properties": {
          "base_stat": {"type": "integer"},
          "stat": {"$ref": "#/definitions/named"}
        }
      }
    }
  },
  "definitions": {
    "named": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"}
      }
    }
  }
}`

var loadPokemonSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(pokemonSchema))
})

// decodePokemon validates body against pokemonSchema and decodes it. Every
// schema violation is reported in the returned ParseError.
func decodePokemon(name string, body []byte) (*Pokemon, error) {
	schema, err := loadPokemonSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pokemon schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &ParseError{Name: name, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !result.Valid() {
		return nil, &ParseError{
			Name:   name,
			Fields: violatedFields(result.Errors()),
			Err:    fmt.Errorf("response does not match schema"),
		}
	}

	var p Pokemon
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &ParseError{Name: name, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &p, nil
}

func violatedFields(errs []gojsonschema.ResultError) []string {
	seen := make(map[string]struct{}, len(errs))
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		field := e.Field()
		if e.Type() == "required" {
			if prop, ok := e.Details()["property"].(string); ok {
				if field == "(root)" {
					field = prop
				} else {
					field = field + "." + prop
				}
			}
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
