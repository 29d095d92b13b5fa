package network

import (
	"net"
	"net/url"
	"syscall"

	"github.com/cockroachdb/errors"
)

// ErrType represents network error type
type ErrType string

const (
	Nil ErrType = "Nil"

	// no such host
	NoSuchHost ErrType = "No such host"

	// http: server gave HTTP response to HTTPS client
	HTTPSClientHTTPServer ErrType = "HTTP response to HTTPS client"

	// No connection could be made because the target machine actively refused it
	Refused ErrType = "Connection refused"

	// context deadline exceeded (Client.timeout exceeded while awaiting headers)
	Timeout ErrType = "Timeout"

	Unknown ErrType = "Unknown"
)

// GetErrType returns network error type of <err> or any error it wraps
func GetErrType(err error) ErrType {
	if err == nil {
		return Nil
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return NoSuchHost
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil &&
		urlErr.Err.Error() == "http: server gave HTTP response to HTTPS client" {
		return HTTPSClientHTTPServer
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == 10061 || errno == syscall.ECONNREFUSED) {
		return Refused
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	return Unknown
}
