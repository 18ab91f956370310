// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-keymaterial.
//
// go-keymaterial is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package jwk

import (
	"crypto"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash"
	"sort"

	"github.com/jeremyhahn/go-keymaterial/pkg/encoding/base64url"
)

// Thumbprint computes an RFC 7638 style thumbprint of the key material:
// the required members for the shape, serialized as compact JSON with
// lexicographically sorted keys, hashed and base64url encoded.
//
// Required members per shape:
//
//	EC public:  {"crv", "kty", "x", "y"}
//	RSA public: {"e", "kty", "n"}
//	Oct:        {"k", "kty"}
//
// The private shapes of this format do not carry the required members
// and return an error.
func Thumbprint(m KeyMaterial, hashFunc crypto.Hash) (string, error) {
	fields, err := thumbprintFields(m)
	if err != nil {
		return "", err
	}

	data, err := serializeForThumbprint(fields)
	if err != nil {
		return "", fmt.Errorf("jwk: failed to serialize for thumbprint: %w", err)
	}

	var h hash.Hash
	switch hashFunc {
	case crypto.SHA1:
		h = sha1.New()
	case crypto.SHA256:
		h = sha256.New()
	case crypto.SHA384:
		h = sha512.New384()
	case crypto.SHA512:
		h = sha512.New()
	default:
		return "", fmt.Errorf("jwk: unsupported thumbprint hash: %v", hashFunc)
	}

	h.Write(data)
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)), nil
}

// ThumbprintSHA256 computes the SHA-256 thumbprint, the most commonly
// used hash for key identification.
func ThumbprintSHA256(m KeyMaterial) (string, error) {
	return Thumbprint(m, crypto.SHA256)
}

func thumbprintFields(m KeyMaterial) (map[string]string, error) {
	switch key := m.(type) {
	case ECKeyMaterial:
		pub, ok := key.Params.(ECPublicKeyParameters)
		if !ok {
			return nil, fmt.Errorf("jwk: EC private material lacks the members required for a thumbprint")
		}
		return map[string]string{
			"crv": pub.Crv.String(),
			"kty": key.KeyType().String(),
			"x":   pub.X.Encode(),
			"y":   pub.Y.Encode(),
		}, nil
	case RSAKeyMaterial:
		pub, ok := key.Params.(RSAPublicKeyParameters)
		if !ok {
			return nil, fmt.Errorf("jwk: RSA private material lacks the members required for a thumbprint")
		}
		if pub.N == nil || pub.E == nil {
			return nil, fmt.Errorf("jwk: RSA material missing modulus or exponent")
		}
		return map[string]string{
			"e":   base64url.EncodeInteger(pub.E),
			"kty": key.KeyType().String(),
			"n":   base64url.EncodeInteger(pub.N),
		}, nil
	case OctKeyMaterial:
		if key.K == nil {
			return nil, fmt.Errorf("jwk: symmetric material missing key value")
		}
		return map[string]string{
			"k":   base64url.EncodeInteger(key.K),
			"kty": key.KeyType().String(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported key material %T", ErrUnsupportedKey, m)
	}
}

// serializeForThumbprint renders the field map as compact JSON with keys
// in lexicographic order and no whitespace. Built by hand because the
// byte representation must be exact.
func serializeForThumbprint(fields map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			out = append(out, ',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valueJSON, err := json.Marshal(fields[k])
		if err != nil {
			return nil, err
		}
		out = append(out, keyJSON...)
		out = append(out, ':')
		out = append(out, valueJSON...)
	}
	out = append(out, '}')
	return out, nil
}
