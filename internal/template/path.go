package template

import (
	"strconv"
	"strings"
)

// ResolveVariadic turns a variadic template path into a specific one by
// substituting each "*" with the corresponding instance identifier, e.g.
// "/ENTRY[entry*]/USER[user*]/name" with ids [1, 2] becomes
// "/ENTRY[entry1]/USER[user2]/name".
//
// A non-variadic path resolves to itself. Resolution fails when the path is
// empty or fewer identifiers are supplied than the path has placeholders.
func ResolveVariadic(path string, ids []int) (string, bool) {
	if path == "" {
		return "", false
	}

	n := strings.Count(path, "*")
	if n == 0 {
		return path, true
	}

	if len(ids) < n {
		return "", false
	}

	parts := strings.Split(path, "*")

	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(parts[i])
		sb.WriteString(strconv.Itoa(ids[i]))
	}

	sb.WriteString(parts[n])

	return sb.String(), true
}
