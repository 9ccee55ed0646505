package bedrock

import (
	"bytes"
	"strconv"
)

func stringField(o *object, name, def string) string {
	raw, ok := o.get(name)
	if !ok {
		return def
	}
	if s, ok := scalarString(raw); ok {
		return s
	}
	return def
}

func boolField(o *object, name string, def bool) (bool, error) {
	raw, ok := o.get(name)
	if !ok {
		return def, nil
	}
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return def, mismatch(o.child(name), kindBoolean, raw)
}

func floatField(o *object, name string, def float32) (float32, error) {
	raw, ok := o.get(name)
	if !ok {
		return def, nil
	}
	if kindOf(raw) != kindNumber {
		return def, mismatch(o.child(name), kindNumber, raw)
	}
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 32)
	if err != nil {
		return def, mismatch(o.child(name), kindNumber, raw)
	}
	return float32(f), nil
}

func stringList(o *object, name string) ([]string, error) {
	raw, ok := o.get(name)
	if !ok {
		return []string{}, nil
	}
	return decodeStringList(raw, o.child(name))
}

func decodeStringList(raw []byte, path string) ([]string, error) {
	elems, err := decodeArray(raw, path)
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(elems))
	for i, e := range elems {
		s, ok := scalarString(e)
		if !ok {
			return nil, mismatch(index(path, i), kindString, e)
		}
		list = append(list, s)
	}
	return list, nil
}

// eachPair walks a list of single-level objects, calling fn for every key/value.
// Elements that are not objects are skipped.
func eachPair(o *object, name string, fn func(key, value string)) error {
	raw, ok := o.get(name)
	if !ok {
		return nil
	}
	path := o.child(name)
	elems, err := decodeArray(raw, path)
	if err != nil {
		return err
	}
	for i, e := range elems {
		if kindOf(e) != kindObject {
			continue
		}
		entry, err := decodeObject(e, index(path, i))
		if err != nil {
			return err
		}
		for _, k := range entry.keys {
			v := entry.values[k]
			s, ok := scalarString(v)
			if !ok {
				return mismatch(entry.child(k), kindString, v)
			}
			fn(k, s)
		}
	}
	return nil
}

func mergedMap(o *object, name string) (map[string]string, error) {
	m := map[string]string{}
	err := eachPair(o, name, func(k, v string) {
		m[k] = v
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func orderedMap(o *object, name string) (*PartVisibility, error) {
	pv := NewPartVisibility()
	err := eachPair(o, name, pv.set)
	if err != nil {
		return nil, err
	}
	return pv, nil
}
