package mapper

import (
	"encoding/json"
	"strconv"
)

// jsonObject is a loosely typed JSON object used by the JSON fallback
// decoders. The platform emits camelCase keys; older exports use
// snake_case, so lookups try each candidate key in order.
type jsonObject map[string]json.RawMessage

func parseJSONObject(data []byte) (jsonObject, error) {
	var obj jsonObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// raw returns the first present key, in candidate order.
func (o jsonObject) raw(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := o[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// str returns the string under the first present key, or "".
func (o jsonObject) str(keys ...string) string {
	raw, ok := o.raw(keys...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// int64Val returns the integer under the first present key. Both JSON
// numbers and decimal strings are accepted, the gateway encodes 64-bit
// values as strings.
func (o jsonObject) int64Val(keys ...string) int64 {
	raw, ok := o.raw(keys...)
	if !ok {
		return 0
	}
	v, _ := looseInt64(raw)
	return v
}

// uint32Val is int64Val narrowed to uint32, negative values map to zero.
func (o jsonObject) uint32Val(keys ...string) uint32 {
	v := o.int64Val(keys...)
	if v < 0 {
		return 0
	}
	return uint32(v)
}

// strSlice returns the string array under the first present key, or nil.
func (o jsonObject) strSlice(keys ...string) []string {
	raw, ok := o.raw(keys...)
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// objSlice returns the object array under the first present key, or nil.
func (o jsonObject) objSlice(keys ...string) []jsonObject {
	raw, ok := o.raw(keys...)
	if !ok {
		return nil
	}
	var out []jsonObject
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// strMap returns the string map under the first present key, or nil.
func (o jsonObject) strMap(keys ...string) map[string]string {
	raw, ok := o.raw(keys...)
	if !ok {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// looseInt64 parses a JSON value as int64, accepting both the number form
// and the quoted decimal string form. It reports false for anything else,
// including the empty string.
func looseInt64(raw json.RawMessage) (int64, bool) {
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
