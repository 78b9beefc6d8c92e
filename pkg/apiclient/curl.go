package apiclient

import (
	"net/http"
	"sort"
	"strings"
)

const masked = "<masked>"

// sensitiveHeaders are rendered as <masked> in curl output.
var sensitiveHeaders = map[string]bool{
	"Authorization":     true,
	"X-Openam-Password": true,
}

// curlCommand renders req as a curl command line with secrets masked.
func curlCommand(req *http.Request, payload []byte, cookieName string) string {
	parts := []string{"curl", "-X", req.Method, shellQuote(req.URL.String())}

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, v := range req.Header.Values(name) {
			if name == "Cookie" {
				continue
			}
			if sensitiveHeaders[http.CanonicalHeaderKey(name)] {
				v = masked
			}
			parts = append(parts, "-H", shellQuote(name+": "+v))
		}
	}

	if _, err := req.Cookie(cookieName); err == nil {
		parts = append(parts, "--cookie", shellQuote(cookieName+"="+masked))
	}
	if len(payload) > 0 {
		parts = append(parts, "--data-raw", shellQuote(string(payload)))
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
