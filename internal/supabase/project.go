// Package supabase reaches a hosted project's SQL surface through its REST
// RPC endpoint instead of the Postgres wire protocol.
package supabase

import (
	"fmt"
	"regexp"
)

// projectURLPattern matches hosted project URLs of the form
// https://<ref>.supabase.co. Validation happens before any network I/O.
var projectURLPattern = regexp.MustCompile(`^https://([^./]+)\.supabase\.co`)

// ProjectRef extracts the project reference (the subdomain segment) from a
// project URL.
func ProjectRef(rawURL string) (string, error) {
	m := projectURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", fmt.Errorf("invalid SUPABASE_URL format: expected https://<project-ref>.supabase.co")
	}
	return m[1], nil
}
