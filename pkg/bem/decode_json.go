package bem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseModifiersJSON decodes a JSON document into a Modifier.
// Object key order is preserved. A repeated key keeps its first position
// and takes its last value, as JSON.parse does.
func ParseModifiersJSON(data []byte) (Modifier, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	m, err := jsonModifier(dec)
	if err != nil {
		return nil, errors.Join(ErrInvalidSpec, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidSpec)
	}
	return m, nil
}

func jsonModifier(dec *json.Decoder) (Modifier, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case string:
		return Name(v), nil
	case json.Delim:
		switch v {
		case '[':
			l := List{}
			for dec.More() {
				m, err := jsonModifier(dec)
				if err != nil {
					return nil, err
				}
				if m != nil {
					l = append(l, m)
				}
			}
			_, err := dec.Token()
			return l, err
		case '{':
			h := Hash{}
			index := make(map[string]int)
			err := jsonObject(dec, func(key string, value any) {
				if i, ok := index[key]; ok {
					h[i].Value = value
					return
				}
				index[key] = len(h)
				h = append(h, Flag{Name: key, Value: value})
			})
			return h, err
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	default:
		// numbers, booleans and null are inert
		return nil, nil
	}
}

// jsonObject reads the members of an object whose opening brace was consumed.
func jsonObject(dec *json.Decoder, set func(key string, value any)) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := jsonValue(dec)
		if err != nil {
			return fmt.Errorf("modifier %q: %w", key, err)
		}
		set(key, value)
	}
	_, err := dec.Token()
	return err
}

// jsonValue reads any value as the generic Go types used by IsTruthy.
func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '[':
		items := []any{}
		for dec.More() {
			v, err := jsonValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		_, err := dec.Token()
		return items, err
	case '{':
		obj := map[string]any{}
		err := jsonObject(dec, func(key string, value any) { obj[key] = value })
		return obj, err
	}
	return nil, fmt.Errorf("unexpected delimiter %q", d)
}
