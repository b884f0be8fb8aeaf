package client

// The backend wraps responses inconsistently: lists arrive bare, under
// a collection-named key or under "data"; single records arrive bare or
// as {success, data}. These helpers unwrap all of them.

// unwrapList extracts a list of raw records, trying the bare-array
// shape first and then each envelope key in order.
func unwrapList(v any, keys ...string) []map[string]any {
	if arr, ok := v.([]any); ok {
		return toRecords(arr)
	}
	env, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range append(keys, "data") {
		if arr, ok := env[key].([]any); ok {
			return toRecords(arr)
		}
	}
	return nil
}

// unwrapRecord extracts a single raw record, unwrapping one level of
// {success, data} enveloping if present.
func unwrapRecord(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	if inner, ok := m["data"].(map[string]any); ok {
		return inner
	}
	return m
}

func toRecords(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
