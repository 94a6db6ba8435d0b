package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// configSchema constrains the YAML document before it is decoded into Config.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "application": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "version": {"type": "string"},
        "log_level": {"type": "string", "enum": ["debug", "info", "warn", "error"]}
      }
    },
    "api": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "base_url": {"type": "string", "pattern": "^https?://"},
        "timeout": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?(ns|us|ms|s|m|h)$"},
        "user_agent": {"type": "string", "minLength": 1},
        "requests_per_minute": {"type": "integer", "minimum": 1},
        "burst": {"type": "integer", "minimum": 1}
      }
    },
    "artwork": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "width": {"type": "integer", "minimum": 1, "maximum": 4096},
        "height": {"type": "integer", "minimum": 1, "maximum": 4096}
      }
    },
    "gui": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "title": {"type": "string"},
        "width": {"type": "integer", "minimum": 1},
        "height": {"type": "integer", "minimum": 1},
        "theme": {"type": "string", "enum": ["light", "dark"]}
      }
    }
  }
}`

// defaultEnvMapping maps environment variables onto dotted config paths.
var defaultEnvMapping = map[string]string{
	"POKEAPI_BASE_URL": "api.base_url",
	"POKEAPI_TIMEOUT":  "api.timeout",
	"LOG_LEVEL":        "application.log_level",
	"GUI_THEME":        "gui.theme",
}

type lookupEnvFunc func(string) (string, bool)

// loadDocument parses YAML bytes into a generic document, applies environment
// overrides and validates the result against configSchema. The returned bytes
// are YAML ready to be decoded over the defaults.
func loadDocument(data []byte, lookup lookupEnvFunc) ([]byte, error) {
	doc := make(map[string]interface{})
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
		if doc == nil {
			doc = make(map[string]interface{})
		}
	}

	applyEnvOverrides(doc, defaultEnvMapping, lookup)

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return out, nil
}

func validateDocument(doc map[string]interface{}) error {
	jsonCompatible, err := toJSONCompatible(doc)
	if err != nil {
		return fmt.Errorf("convert yaml->json compatible: %w", err)
	}
	jb, err := json.Marshal(jsonCompatible)
	if err != nil {
		return fmt.Errorf("marshal to json: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(jb),
	)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, e := range result.Errors() {
			sb.WriteString("- ")
			sb.WriteString(e.String())
			sb.WriteString("\n")
		}
		return fmt.Errorf("config validation failed:\n%s", sb.String())
	}
	return nil
}

// applyEnvOverrides reads environment variables per mapping and sets dotted-paths in cfg.
func applyEnvOverrides(cfg map[string]interface{}, mapping map[string]string, lookup lookupEnvFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for env, path := range mapping {
		if v, ok := lookup(env); ok && v != "" {
			if i, err := tryParseInt(v); err == nil {
				setNestedField(cfg, path, i)
			} else {
				setNestedField(cfg, path, v)
			}
		}
	}
}

// setNestedField sets value at dotted path (e.g. "api.base_url") creating maps as needed.
func setNestedField(m map[string]interface{}, dotted string, value interface{}) {
	parts := strings.Split(dotted, ".")
	last := len(parts) - 1
	cur := m
	for i, p := range parts {
		if i == last {
			cur[p] = value
			return
		}
		next, exists := cur[p]
		if !exists {
			nm := make(map[string]interface{})
			cur[p] = nm
			cur = nm
			continue
		}
		switch typed := next.(type) {
		case map[string]interface{}:
			cur = typed
		default:
			// overwrite non-map with map to set deeper values
			nm := make(map[string]interface{})
			cur[p] = nm
			cur = nm
		}
	}
}

func tryParseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// toJSONCompatible converts yaml-parsed structures into map[string]interface{} recursively.
func toJSONCompatible(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprintf("%v", k)] = conv
		}
		return m, nil
	case []interface{}:
		arr := make([]interface{}, len(val))
		for i, vv := range val {
			conv, err := toJSONCompatible(vv)
			if err != nil {
				return nil, err
			}
			arr[i] = conv
		}
		return arr, nil
	default:
		return val, nil
	}
}
