package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// A MakeTLSConfig returns [*tls.Config] for mutual TLS with the brokers.
//
// All args are the filepaths. Panics on unreadable or invalid files.
func MakeTLSConfig(ca, cert, key string) *tls.Config {
	const op = "adapter.MakeTLSConfig"

	caCert, err := os.ReadFile(ca)
	if err != nil {
		panic(fmt.Errorf("%s: failed to read CA certificate file: %w", op, err))
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		panic(fmt.Errorf("%s: failed to parse CA certificate", op))
	}

	clientCert, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		panic(fmt.Errorf("%s: failed to load client key pair: %w", op, err))
	}

	return &tls.Config{
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{clientCert},
		MinVersion:   tls.VersionTLS12,
	}
}
