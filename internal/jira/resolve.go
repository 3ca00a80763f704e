package jira

import "strings"

// resolveByName performs a case-insensitive exact match on name over a
// freshly fetched candidate list. The first match wins when duplicate names
// exist (the remote system permits them; the returned order decides). On a
// miss it returns the available names in original case and returned order,
// so callers can enumerate the valid alternatives.
func resolveByName[T any](candidates []T, name string, idName func(T) (string, string)) (string, []string, bool) {
	available := make([]string, 0, len(candidates))
	for _, c := range candidates {
		id, candidateName := idName(c)
		if strings.EqualFold(candidateName, name) {
			return id, nil, true
		}
		available = append(available, candidateName)
	}
	return "", available, false
}
