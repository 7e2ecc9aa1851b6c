package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// checkKeys walks a JSON document and rejects object keys that do not match
// a json tag of t exactly, and keys that appear more than once. encoding/json
// alone would fold case and let the last duplicate win.
func checkKeys(data []byte, t reflect.Type) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		// Not an object; the decoder reports it.
		return nil
	}
	return checkObject(dec, t, "")
}

// checkObject consumes the rest of an object whose '{' was already read.
func checkObject(dec *json.Decoder, t reflect.Type, path string) error {
	fields := jsonFields(t)
	seen := make(map[string]bool, len(fields))

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		name := path + key

		field, ok := fields[key]
		if !ok {
			return fmt.Errorf("unknown field %q", name)
		}
		if seen[key] {
			return fmt.Errorf("duplicate field %q", name)
		}
		seen[key] = true

		if nested := structType(field); nested != nil {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if tok == json.Delim('{') {
				if err := checkObject(dec, nested, name+"."); err != nil {
					return err
				}
				continue
			}
			if err := skipRest(dec, tok); err != nil {
				return err
			}
			continue
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		if err := skipRest(dec, tok); err != nil {
			return err
		}
	}

	_, err := dec.Token() // closing '}'
	return err
}

// skipRest consumes the remainder of a value whose first token is tok.
func skipRest(dec *json.Decoder, tok json.Token) error {
	if tok != json.Delim('{') && tok != json.Delim('[') {
		return nil
	}
	for depth := 1; depth > 0; {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
	}
	return nil
}

func jsonFields(t reflect.Type) map[string]reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		fields[name] = f.Type
	}
	return fields
}

func structType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
