package endpoints

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// commonPrefixHostnames are vanity prefixes removed when inferring a display
// name. Only the first match is stripped, and only once.
var commonPrefixHostnames = []string{
	"git.",
	"github.",
	"vcs.",
	"scm.",
	"source.",
}

// InferDisplayName makes a best effort to guess a sensible display name from
// the hostname in apiURI. It returns the empty string when nothing can be
// derived: inference is advisory, so unparseable input is never an error.
//
// The hostname is reduced to its organizational part by stripping a
// recognized public suffix (github.mycompany.com -> github.mycompany), then
// one vanity prefix (-> mycompany). The public-suffix dataset is compiled
// into golang.org/x/net/publicsuffix, so lookup itself cannot fail.
func InferDisplayName(apiURI string) string {
	if apiURI == "" {
		return ""
	}

	u, err := url.Parse(apiURI)
	if err != nil {
		// ignore, best effort
		return ""
	}

	host := u.Hostname()
	if host == "" {
		return ""
	}

	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if suffix, icann := publicsuffix.PublicSuffix(host); icann {
		host = strings.TrimSuffix(strings.TrimSuffix(host, suffix), ".")
	}

	for _, prefix := range commonPrefixHostnames {
		if strings.HasPrefix(host, prefix) {
			host = host[len(prefix):]
			break
		}
	}
	return host
}
