package api

import (
	"net/http"
	"strings"
)

// Route classification: which requests must carry a valid admin session.
//
// The rule set is static. Auth endpoints are always public. Reads are public
// except the contact inbox. Writes to content endpoints require auth, except
// the public contact form POST. The admin UI route, locale-prefixed or not,
// requires auth and redirects to /login instead of returning JSON.

// RequiresAuth decides whether a request needs an authenticated session.
func RequiresAuth(method, path string) bool {
	path = normalizePath(path)

	if isAPIPath(path) {
		return requiresAuthAPI(method, path)
	}
	return isAdminPath(path)
}

func requiresAuthAPI(method, path string) bool {
	if path == "/api/auth" || strings.HasPrefix(path, "/api/auth/") {
		return false
	}

	switch method {
	case http.MethodGet, http.MethodHead:
		// Viewing contact messages is the one protected read.
		return path == "/api/contact" || strings.HasPrefix(path, "/api/contact/")
	case http.MethodOptions:
		// CORS preflight never authenticates.
		return false
	case http.MethodPost:
		// The public contact form.
		if path == "/api/contact" {
			return false
		}
	}

	return true
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// isAdminPath matches /admin and its locale-prefixed variants (/fr/admin).
func isAdminPath(path string) bool {
	trimmed := stripLocalePrefix(path)
	return trimmed == "/admin" || strings.HasPrefix(trimmed, "/admin/")
}

// stripLocalePrefix removes a leading two-letter locale segment, e.g.
// /fr/admin -> /admin. API paths are never locale-prefixed.
func stripLocalePrefix(path string) string {
	rest, found := strings.CutPrefix(path, "/")
	if !found {
		return path
	}
	segment, remainder, _ := strings.Cut(rest, "/")
	if len(segment) == 2 && isAlpha(segment) {
		return "/" + remainder
	}
	return path
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func normalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
