package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the best guess of the caller address, preferring proxy
// headers over the connection remote address. The port is stripped.
func ClientIP(r *http.Request) string {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// the first entry is the original client
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			ipAddr = strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host
	}
	return ipAddr
}
