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

package keys

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"github.com/kaleido-io/emissionsledger/internal/i18n"
)

const (
	SuiteEd25519      = "ed25519"
	SuiteLegacySHA256 = "legacy-sha256"
)

// Suite is the signing capability used by the identity manager
type Suite interface {
	Name() string
	GenerateKeyPair(ctx context.Context) (publicKey, privateKey []byte, err error)
	Sign(ctx context.Context, privateKey, data []byte) ([]byte, error)
	Verify(publicKey, data, signature []byte) bool
}

// GetSuite returns the named suite, drawing key material from the supplied
// entropy source (crypto/rand when nil)
func GetSuite(ctx context.Context, name string, entropy io.Reader) (Suite, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	switch name {
	case SuiteEd25519:
		return &ed25519Suite{entropy: entropy}, nil
	case SuiteLegacySHA256:
		return &legacySHA256Suite{entropy: entropy}, nil
	default:
		return nil, i18n.NewError(ctx, i18n.MsgUnknownKeySuite, name)
	}
}

type ed25519Suite struct {
	entropy io.Reader
}

func (s *ed25519Suite) Name() string { return SuiteEd25519 }

func (s *ed25519Suite) GenerateKeyPair(ctx context.Context) ([]byte, []byte, error) {
	pub, priv, err := ed25519.GenerateKey(s.entropy)
	if err != nil {
		return nil, nil, i18n.WrapError(ctx, err, i18n.MsgKeyGenerationFailed, s.Name())
	}
	return pub, priv, nil
}

func (s *ed25519Suite) Sign(ctx context.Context, privateKey, data []byte) ([]byte, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, i18n.NewError(ctx, i18n.MsgKeyNotFound, "ed25519 private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(privateKey), data), nil
}

func (s *ed25519Suite) Verify(publicKey, data, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), data, signature)
}

// legacySHA256Suite is a symmetric stand-in, where the signature is a SHA-256
// hash over the key material and the data. The "public" key is the secret,
// so it offers no security and exists only for tests and compatibility.
type legacySHA256Suite struct {
	entropy io.Reader
}

func (s *legacySHA256Suite) Name() string { return SuiteLegacySHA256 }

func (s *legacySHA256Suite) GenerateKeyPair(ctx context.Context) ([]byte, []byte, error) {
	secret := make([]byte, 32)
	if _, err := io.ReadFull(s.entropy, secret); err != nil {
		return nil, nil, i18n.WrapError(ctx, err, i18n.MsgKeyGenerationFailed, s.Name())
	}
	return secret, secret, nil
}

func (s *legacySHA256Suite) hash(secret, data []byte) []byte {
	h := sha256.New()
	h.Write(secret)
	h.Write(data)
	return h.Sum(nil)
}

func (s *legacySHA256Suite) Sign(ctx context.Context, privateKey, data []byte) ([]byte, error) {
	if len(privateKey) == 0 {
		return nil, i18n.NewError(ctx, i18n.MsgKeyNotFound, "legacy secret")
	}
	return s.hash(privateKey, data), nil
}

func (s *legacySHA256Suite) Verify(publicKey, data, signature []byte) bool {
	return len(publicKey) > 0 && subtle.ConstantTimeCompare(s.hash(publicKey, data), signature) == 1
}
