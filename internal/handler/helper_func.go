package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// decodeJSON is the single decode-and-close point so handlers report one
// consistent error for malformed bodies.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// maskRecipient hides most of an email or phone when echoed back in
// responses and logs.
func maskRecipient(identifier string) string {
	if at := strings.Index(identifier, "@"); at > 0 {
		local := identifier[:at]
		if len(local) <= 2 {
			return local[:1] + "***" + identifier[at:]
		}
		return local[:2] + "***" + identifier[at:]
	}
	if len(identifier) > 4 {
		return "******" + identifier[len(identifier)-4:]
	}
	return "****"
}
