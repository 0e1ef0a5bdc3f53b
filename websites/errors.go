// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package websites

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind classifies why a website could not be reached.
type ErrorKind int

const (
	// ErrorKindUnknown is any other failure.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindTimeout is a connect or read timeout.
	ErrorKindTimeout
	// ErrorKindDNS is a host that does not resolve.
	ErrorKindDNS
	// ErrorKindTLS is a certificate or handshake failure.
	ErrorKindTLS
	// ErrorKindConnection is a refused or reset connection.
	ErrorKindConnection
	// ErrorKindInvalidURL is a website that is not a usable URL.
	ErrorKindInvalidURL
)

// String returns the status label used in reports.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTimeout:
		return "TIMEOUT"
	case ErrorKindDNS:
		return "DNS ERROR"
	case ErrorKindTLS:
		return "SSL ERROR"
	case ErrorKindConnection:
		return "CONNECTION ERROR"
	case ErrorKindInvalidURL:
		return "INVALID URL"
	default:
		return "ERROR"
	}
}

// CheckError is a failure to reach a website.
type CheckError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.URL, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// ClassifyError determines the ErrorKind of a request error.
func ClassifyError(err error) ErrorKind {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorKindTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrorKindDNS
	}

	var (
		certErr    *tls.CertificateVerificationError
		unknownCA  x509.UnknownAuthorityError
		hostErr    x509.HostnameError
		invalidErr x509.CertificateInvalidError
	)

	if errors.As(err, &certErr) || errors.As(err, &unknownCA) ||
		errors.As(err, &hostErr) || errors.As(err, &invalidErr) {
		return ErrorKindTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrorKindConnection
	}

	// fall back to the message for wrapped errors from other layers
	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded"):
		return ErrorKindTimeout
	case strings.Contains(errStr, "no such host"):
		return ErrorKindDNS
	case strings.Contains(errStr, "tls") || strings.Contains(errStr, "certificate") || strings.Contains(errStr, "x509"):
		return ErrorKindTLS
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "connection reset"):
		return ErrorKindConnection
	default:
		return ErrorKindUnknown
	}
}
