package main

import (
	"encoding/json"
	"reflect"
	"sort"

	"github.com/go-logfmt/logfmt"
)

// marshalText encodes a log entry as logfmt, with the keys sorted.
func marshalText(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return json.Marshal(v)
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	keyvals := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		val, err := textValue(rv.MapIndex(key).Interface())
		if err != nil {
			return nil, err
		}
		keyvals = append(keyvals, key.String(), val)
	}
	return logfmt.MarshalKeyvals(keyvals...)
}

// textValue turns composite values, which logfmt can't encode, into their JSON form.
func textValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		bs, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(bs), nil
	default:
		return v, nil
	}
}
