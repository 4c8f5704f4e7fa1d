package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// JSONBMap is a schema-free column stored as JSON text.
// Raw bank rows keep every exported column here, keyed by the original header.
type JSONBMap map[string]interface{}

// Value implements driver.Valuer. A string is returned so the same column works on SQLite.
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	bytes, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = JSONBMap{}
		return nil
	}

	tmp := map[string]interface{}{}
	if err := json.Unmarshal(bytes, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = JSONBMap{}
		return nil
	}
	var tmp map[string]interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}

// StringValue returns the trimmed textual form of a scalar field and whether it was present and non-empty.
func (m JSONBMap) StringValue(key string) (string, bool) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return "", false
	}

	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int32, int64, uint, uint32, uint64, bool:
		s = fmt.Sprintf("%v", v)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}

// Merge copies every key of patch into m, overwriting existing values.
func (m JSONBMap) Merge(patch map[string]interface{}) {
	for k, v := range patch {
		m[k] = v
	}
}
