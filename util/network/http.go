package network

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewHttpClient returns new HTTP client.
//
// <insecure> disables TLS certificate verification.
//
// <timeout> is a time limit for requests made by returned client.
func NewHttpClient(insecure bool, timeout time.Duration) *http.Client {
	tlsCfg := &tls.Config{
		InsecureSkipVerify: insecure,
	}
	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsCfg,
		},
	}
	return client
}
