package supabase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceRoleName is the role claim carried by keys allowed to run
// exec_sql.
const ServiceRoleName = "service_role"

// KeyInfo summarizes the claims of a Supabase API key.
type KeyInfo struct {
	Role       string
	ProjectRef string
	ExpiresAt  time.Time
}

// InspectKey decodes a Supabase API key without verifying its signature.
// The server is the authority on validity; the decode only exists to catch
// obvious mistakes (anon key instead of service key, key from another
// project) before a request is made.
func InspectKey(token string) (KeyInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return KeyInfo{}, fmt.Errorf("key is not a valid JWT: %w", err)
	}

	info := KeyInfo{}
	if role, ok := claims["role"].(string); ok {
		info.Role = role
	}
	if ref, ok := claims["ref"].(string); ok {
		info.ProjectRef = ref
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}

// IsServiceRole reports whether the key carries the service_role claim.
func (k KeyInfo) IsServiceRole() bool {
	return k.Role == ServiceRoleName
}

// Expired reports whether the key's expiry claim is in the past. Keys
// without an expiry claim are treated as unexpired.
func (k KeyInfo) Expired(now time.Time) bool {
	return !k.ExpiresAt.IsZero() && k.ExpiresAt.Before(now)
}
