package reconcile

import "sort"

// Localize picks the value of the first preferred language present in values.
// Otherwise the value under the smallest remaining language key is returned,
// and "" for an empty map.
func Localize(values map[string]string, preferred []string) string {
	for _, lang := range preferred {
		if v, ok := values[lang]; ok {
			return v
		}
	}
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return values[keys[0]]
}
