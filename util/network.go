package util

import (
	"net"
	"net/url"
	"strconv"
)

// FormatAddr returns "host:port".
func FormatAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// ConsoleURL builds the remote-console endpoint ws://host:port/credential.
// The credential is the entire path; characters that are not valid in a
// path segment are percent-encoded.
func ConsoleURL(host string, port uint16, credential string) string {
	u := url.URL{
		Scheme: "ws",
		Host:   FormatAddr(host, int(port)),
		Path:   "/" + credential,
	}
	return u.String()
}
