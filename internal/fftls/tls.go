// Copyright © 2021 Kaleido, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fftls

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"

	"github.com/kaleido-io/emissionsledger/internal/config"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

const (
	// ConfTLSEnabled whether TLS is used on outbound connections
	ConfTLSEnabled = "enabled"
	// ConfTLSCAFile a PEM bundle of CAs trusted in place of the system pool
	ConfTLSCAFile = "caFile"
	// ConfTLSCertFile the client certificate for mutual TLS
	ConfTLSCertFile = "certFile"
	// ConfTLSKeyFile the client private key for mutual TLS
	ConfTLSKeyFile = "keyFile"
	// ConfTLSMinVersion the lowest protocol version accepted, "1.2" or "1.3"
	ConfTLSMinVersion = "minVersion"
	// ConfTLSInsecureSkipVerify disables server certificate checks, for development only
	ConfTLSInsecureSkipVerify = "insecureSkipVerify"
)

// InitTLSPrefix registers the client TLS keys under a prefix
func InitTLSPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(ConfTLSEnabled, false)
	prefix.AddKnownKey(ConfTLSCAFile)
	prefix.AddKnownKey(ConfTLSCertFile)
	prefix.AddKnownKey(ConfTLSKeyFile)
	prefix.AddKnownKey(ConfTLSMinVersion, "1.2")
	prefix.AddKnownKey(ConfTLSInsecureSkipVerify, false)
}

// ConstructTLSConfig builds a client TLS config, or returns nil when TLS is disabled
func ConstructTLSConfig(ctx context.Context, prefix config.Prefix) (*tls.Config, error) {
	if !prefix.GetBool(ConfTLSEnabled) {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: prefix.GetBool(ConfTLSInsecureSkipVerify), //nolint:gosec
	}

	switch prefix.GetString(ConfTLSMinVersion) {
	case "", "1.2":
	case "1.3":
		tlsConfig.MinVersion = tls.VersionTLS13
	default:
		return nil, i18n.NewError(ctx, i18n.MsgInvalidTLSVersion, prefix.GetString(ConfTLSMinVersion))
	}

	if caFile := prefix.GetString(ConfTLSCAFile); caFile != "" {
		caBytes, err := ioutil.ReadFile(caFile)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, i18n.MsgTLSConfigFailed)
		}
		rootCAs := x509.NewCertPool()
		if !rootCAs.AppendCertsFromPEM(caBytes) {
			return nil, i18n.WrapError(ctx, i18n.NewError(ctx, i18n.MsgInvalidCAFile), i18n.MsgTLSConfigFailed)
		}
		tlsConfig.RootCAs = rootCAs
	}

	certFile := prefix.GetString(ConfTLSCertFile)
	keyFile := prefix.GetString(ConfTLSKeyFile)
	if certFile != "" || keyFile != "" {
		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return nil, i18n.WrapError(ctx, err, i18n.MsgTLSConfigFailed)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
