package httpapi

import (
	"net"
	"net/http"
)

// PeerIP returns the host part of the immediate TCP peer address. Forwarding
// headers are never consulted, so behind a proxy this is the proxy's address.
func PeerIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
