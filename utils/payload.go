package utils

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Payload is the flat parameter mapping assembled from a request's body,
// path parameters and query string.
type Payload map[string]any

// GetPayload merges the request sources into a single mapping. Body
// values come first, path parameters override them and query parameters
// override both. It never fails: an unparsable JSON body simply
// contributes nothing. A query parameter literally named "params" that
// holds a JSON-encoded string is decoded in place, and left as the raw
// string when it does not parse.
func GetPayload(c *gin.Context) Payload {
	payload := Payload{}

	if raw, err := c.GetRawData(); err == nil && len(raw) > 0 {
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err == nil {
			for k, v := range body {
				payload[k] = v
			}
		}
	}

	for _, param := range c.Params {
		payload[param.Key] = param.Value
	}

	for key, values := range c.Request.URL.Query() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		if key == "params" {
			var decoded map[string]any
			if err := json.Unmarshal([]byte(value), &decoded); err == nil {
				payload[key] = decoded
				continue
			}
		}
		payload[key] = value
	}

	return payload
}

// String returns the first non-empty string value among keys. Declared
// order is the alias precedence, e.g. String("productId", "product_id")
// prefers the camel-case spelling.
func (p Payload) String(keys ...string) string {
	for _, key := range keys {
		if value, ok := p[key]; ok {
			if s, ok := value.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// Int returns the first value among keys that parses as an integer,
// accepting both JSON numbers and query-string digits, or def when
// nothing parses.
func (p Payload) Int(def int, keys ...string) int {
	for _, key := range keys {
		value, ok := p[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return def
}

// Float returns the numeric value under key, with ok reporting whether
// a parseable value was supplied at all.
func (p Payload) Float(key string) (float64, bool) {
	value, ok := p[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Lookup reports whether key was supplied in any source.
func (p Payload) Lookup(key string) (any, bool) {
	value, ok := p[key]
	return value, ok
}

// StringValue renders a payload value as a string regardless of the
// source type, for fields that are text in the schema.
func StringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
