package server

import (
	"crypto/tls"
	"net/http"
	"time"
)

const readHeaderTimeout = 10 * time.Second

func newHTTPServer(handler http.Handler, address string, cert tls.Certificate) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		TLSConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}
}
