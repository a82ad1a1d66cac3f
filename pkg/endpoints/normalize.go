package endpoints

import (
	"net"
	"net/url"
	"path"
	"strings"
)

// NormalizeAPIURI converts a raw API URI into its canonical form: scheme and
// host lower-cased, default ports dropped, dot segments resolved, and
// trailing slashes removed. The result of normalizing an already normalized
// URI is the URI itself.
//
// Input that does not parse as an http(s) URL is passed through with only
// whitespace and trailing slashes trimmed. Normalization is a best-effort
// tidy-up; rejecting bad input is the validator's job.
func NormalizeAPIURI(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimRight(raw, "/")
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return strings.TrimRight(raw, "/")
	}
	u.Scheme = scheme

	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && !isDefaultPort(scheme, port) {
		host = net.JoinHostPort(host, port)
	}
	u.Host = host

	if u.Path != "" {
		cleaned := path.Clean(u.Path)
		if cleaned == "." || cleaned == "/" {
			cleaned = ""
		}
		u.Path = cleaned
	}

	return strings.TrimRight(u.String(), "/")
}

// isDefaultPort reports whether port is the default for the given scheme.
func isDefaultPort(scheme, port string) bool {
	switch scheme {
	case "http":
		return port == "80"
	case "https":
		return port == "443"
	}
	return false
}
