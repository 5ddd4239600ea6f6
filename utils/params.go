package utils

// Pick returns the subset of params whose keys appear in allowed.
// Values pass through untouched; unknown keys are silently dropped.
func Pick[V any](allowed []string, params map[string]V) map[string]V {
	safe := make(map[string]V)
	for _, field := range allowed {
		if v, ok := params[field]; ok {
			safe[field] = v
		}
	}
	return safe
}
