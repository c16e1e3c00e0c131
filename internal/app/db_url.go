package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes to the connection
// URL when the config asks for it. An explicit value already in the URL wins.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	q := u.Query()
	if q.Has("disable_prepared_binary_result") {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// dbNameFromURL pulls the database name out of either a URL-style or a
// keyword/value connection string. Used for the db.name span attribute.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u != nil && u.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(u.Path, "/")); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		name, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"'`); name != "" {
			return name
		}
	}
	return ""
}
