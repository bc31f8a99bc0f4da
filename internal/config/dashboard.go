package config

import (
	"fmt"
	"net/url"
	"strings"
)

// APIToDashboardURL converts a GitGuardian API endpoint into the base URL of
// the matching dashboard. SaaS hosts swap their "api." prefix for
// "dashboard."; on-premise installations serve the API under "/exposed",
// which is removed. stripped reports whether a trailing "/v1" version
// segment had to be dropped.
func APIToDashboardURL(apiURL string) (dashboardURL string, stripped bool, err error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", false, fmt.Errorf("invalid URL %q: %w", apiURL, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", false, fmt.Errorf("invalid protocol in URL %q, expected http or https", apiURL)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("missing host in URL %q", apiURL)
	}

	host := u.Host
	path := strings.TrimRight(u.Path, "/")
	if strings.HasSuffix(path, "/v1") {
		path = strings.TrimSuffix(path, "/v1")
		stripped = true
	}

	if strings.HasPrefix(host, "api.") {
		host = "dashboard." + strings.TrimPrefix(host, "api.")
	} else {
		path = strings.TrimSuffix(path, "/exposed")
	}

	return u.Scheme + "://" + host + path, stripped, nil
}
