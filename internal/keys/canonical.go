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

	"github.com/akamensky/base58"
	"github.com/fxamacker/cbor/v2"
	"github.com/kaleido-io/emissionsledger/internal/fftypes"
	"github.com/kaleido-io/emissionsledger/internal/i18n"
	"github.com/zeebo/blake3"
)

// encMode is Core Deterministic Encoding (RFC 8949 4.2), so the same
// logical data always produces identical bytes to sign or digest
var encMode cbor.EncMode

func init() {
	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
}

// Canonical returns the stable serialization of a value
func Canonical(ctx context.Context, v interface{}) ([]byte, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgSerializationFailed)
	}
	return b, nil
}

// Digest returns the BLAKE3-256 digest of the canonical serialization of a value
func Digest(ctx context.Context, v interface{}) (*fftypes.Bytes32, error) {
	b, err := Canonical(ctx, v)
	if err != nil {
		return nil, err
	}
	return DigestBytes(b), nil
}

func DigestBytes(b []byte) *fftypes.Bytes32 {
	d := fftypes.Bytes32(blake3.Sum256(b))
	return &d
}

// KeyID derives the id of a key from its public key
func KeyID(publicKey []byte) string {
	return fftypes.KeyIDPrefix + base58.Encode(publicKey)
}

// PublicKeyFromID recovers the public key encoded in a key id
func PublicKeyFromID(ctx context.Context, keyID string) ([]byte, error) {
	if len(keyID) < 2 || keyID[0:1] != fftypes.KeyIDPrefix {
		return nil, i18n.NewError(ctx, i18n.MsgKeyNotFound, keyID)
	}
	b, err := base58.Decode(keyID[1:])
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgKeyNotFound, keyID)
	}
	return b, nil
}

// EncodeSignature renders signature bytes in the form carried in records
func EncodeSignature(sig []byte) string {
	return base58.Encode(sig)
}

func DecodeSignature(ctx context.Context, sig string) ([]byte, error) {
	b, err := base58.Decode(sig)
	if err != nil || len(b) == 0 {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidSignature, sig)
	}
	return b, nil
}
