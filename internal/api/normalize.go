package api

import "encoding/json"

// The backend is inconsistent about response envelopes: the same endpoint
// family may answer with a bare array, {data: [...]}, or an entity-named
// key like {products: [...]}. Each decode below tries the known shapes in
// order and reports whether any of them matched, leaving the fallback
// policy to the per-entity function (some substitute a default list, some
// an empty one).

func decodeList[T any](data []byte, key string) ([]T, bool) {
	var bare []T
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, true
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, false
	}
	for _, k := range []string{"data", key} {
		raw, ok := envelope[k]
		if !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, true
		}
	}
	return nil, false
}

// decodeObject resolves a single entity from {data: {...}}, {<key>: {...}},
// or a bare object, in that order.
func decodeObject[T any](data []byte, key string) (T, bool) {
	var zero T

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err == nil {
		for _, k := range []string{"data", key} {
			raw, ok := envelope[k]
			if !ok {
				continue
			}
			var item T
			if err := json.Unmarshal(raw, &item); err == nil {
				return item, true
			}
		}
	}

	var item T
	if err := json.Unmarshal(data, &item); err == nil {
		return item, true
	}
	return zero, false
}
