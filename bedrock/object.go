package bedrock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	kindObject  = "object"
	kindArray   = "array"
	kindString  = "string"
	kindNumber  = "number"
	kindBoolean = "boolean"
	kindNull    = "null"
)

func kindOf(raw []byte) string {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return kindObject
	case '[':
		return kindArray
	case '"':
		return kindString
	case 't', 'f':
		return kindBoolean
	case 'n':
		return kindNull
	}
	return kindNumber
}

// object is a JSON object whose members are kept undecoded, in document order.
// A repeated key keeps its first position and takes the last value.
type object struct {
	path   string
	keys   []string
	values map[string]json.RawMessage
}

func decodeObject(raw []byte, path string) (*object, error) {
	if kindOf(raw) != kindObject {
		return nil, mismatch(path, kindObject, raw)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("bedrock: %s: %w", path, err)
	}
	o := &object{path: path, values: map[string]json.RawMessage{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("bedrock: %s: %w", path, err)
		}
		key, _ := tok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("bedrock: %s: %w", path, err)
		}
		if _, ok := o.values[key]; !ok {
			o.keys = append(o.keys, key)
		}
		o.values[key] = v
	}
	return o, nil
}

func decodeArray(raw []byte, path string) ([]json.RawMessage, error) {
	if kindOf(raw) != kindArray {
		return nil, mismatch(path, kindArray, raw)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("bedrock: %s: %w", path, err)
	}
	return elems, nil
}

// get returns a member that is present and not null.
func (o *object) get(name string) (json.RawMessage, bool) {
	v, ok := o.values[name]
	if !ok || kindOf(v) == kindNull {
		return nil, false
	}
	return v, true
}

func (o *object) child(name string) string {
	if o.path == "" {
		return name
	}
	return o.path + "." + name
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// scalarString returns the string form of a JSON primitive.
// Numbers keep the text they were written with.
func scalarString(raw []byte) (string, bool) {
	switch kindOf(raw) {
	case kindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case kindNumber, kindBoolean:
		return string(bytes.TrimSpace(raw)), true
	}
	return "", false
}
