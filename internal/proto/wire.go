// Package proto implements the binary wire format of the governance rules
// container and its signature blob. The messages are maintained by hand
// against the platform schema; encoding follows the protobuf wire rules
// via protowire, so containers produced by the platform decode directly
// and marshaled containers are valid protobuf.
package proto

import (
	"sort"

	"google.golang.org/protobuf/encoding/protowire"
)

// appendStringMap encodes a map<string,string> field as repeated map
// entries. Keys are emitted in sorted order so encoding is deterministic.
func appendStringMap(b []byte, num protowire.Number, m map[string]string) []byte {
	if len(m) == 0 {
		return b
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, k)
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendString(entry, m[k])
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	return b
}

// consumeStringMapEntry decodes one map<string,string> entry message.
func consumeStringMapEntry(data []byte) (string, string, error) {
	var key, value string
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", "", protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", "", protowire.ParseError(n)
			}
			key = v
			data = data[n:]
		case num == 2 && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", "", protowire.ParseError(n)
			}
			value = v
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return "", "", protowire.ParseError(n)
			}
			data = data[n:]
		}
	}
	return key, value, nil
}

// skipField skips a field of any wire type, returning the remaining bytes.
func skipField(num protowire.Number, typ protowire.Type, data []byte) ([]byte, error) {
	n := protowire.ConsumeFieldValue(num, typ, data)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	return data[n:], nil
}
