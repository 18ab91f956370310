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
	"crypto/ecdsa"
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/jeremyhahn/go-keymaterial/pkg/encoding/base64url"
)

// FromPublicKey builds key material from a standard library public key.
// Supports *ecdsa.PublicKey on the registered curves and *rsa.PublicKey.
// EC coordinates are sized to the curve's field width, so leading zero
// bytes survive the encoding.
func FromPublicKey(pub crypto.PublicKey) (KeyMaterial, error) {
	switch key := pub.(type) {
	case *ecdsa.PublicKey:
		params, err := ecPublicParameters(key)
		if err != nil {
			return nil, err
		}
		return ECKeyMaterial{Params: params}, nil
	case *rsa.PublicKey:
		return RSAKeyMaterial{Params: RSAPublicKeyParameters{
			N: key.N,
			E: big.NewInt(int64(key.E)),
		}}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported public key type %T", ErrUnsupportedKey, pub)
	}
}

// FromPrivateKey builds key material from a standard library private key.
// Supports *ecdsa.PrivateKey on the registered curves and *rsa.PrivateKey.
// The resulting material carries the format's private shape: the EC shape
// holds the scalar d sized to the curve; the RSA shape holds d plus the
// CRT record when the key has precomputed values.
func FromPrivateKey(priv crypto.PrivateKey) (KeyMaterial, error) {
	switch key := priv.(type) {
	case *ecdsa.PrivateKey:
		crv, err := curveName(key.Curve)
		if err != nil {
			return nil, err
		}
		d, err := base64url.NewSizedInteger(key.D, crv.Size())
		if err != nil {
			return nil, fmt.Errorf("jwk: private scalar does not fit %s: %w", crv, err)
		}
		return ECKeyMaterial{Params: ECPrivateKeyParameters{D: d}}, nil
	case *rsa.PrivateKey:
		return RSAKeyMaterial{Params: RSAPrivateKeyParameters{
			D:        key.D,
			Optional: rsaOptionalParameters(key),
		}}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported private key type %T", ErrUnsupportedKey, priv)
	}
}

// FromSymmetricKey builds Oct key material from raw symmetric key bytes.
func FromSymmetricKey(key []byte) (KeyMaterial, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: symmetric key cannot be empty", ErrUnsupportedKey)
	}
	return OctKeyMaterial{K: new(big.Int).SetBytes(key)}, nil
}

// PublicKey converts key material to a standard library public key.
// Only the public shapes carry enough material: the EC private shape
// holds just the scalar and the RSA private shape holds no modulus, so
// both return ErrNotPublicKey, as does Oct material.
func PublicKey(m KeyMaterial) (crypto.PublicKey, error) {
	switch key := m.(type) {
	case ECKeyMaterial:
		pub, ok := key.Params.(ECPublicKeyParameters)
		if !ok {
			return nil, fmt.Errorf("%w: EC material carries only the private scalar", ErrNotPublicKey)
		}
		return &ecdsa.PublicKey{
			Curve: pub.Crv.EllipticCurve(),
			X:     pub.X.Value,
			Y:     pub.Y.Value,
		}, nil
	case RSAKeyMaterial:
		pub, ok := key.Params.(RSAPublicKeyParameters)
		if !ok {
			return nil, fmt.Errorf("%w: RSA material carries no modulus", ErrNotPublicKey)
		}
		if !pub.E.IsInt64() || pub.E.Int64() <= 0 {
			return nil, fmt.Errorf("jwk: RSA public exponent out of range")
		}
		return &rsa.PublicKey{
			N: pub.N,
			E: int(pub.E.Int64()),
		}, nil
	case OctKeyMaterial:
		return nil, fmt.Errorf("%w: symmetric material has no public half", ErrNotPublicKey)
	default:
		return nil, fmt.Errorf("%w: unsupported key material %T", ErrUnsupportedKey, m)
	}
}

func ecPublicParameters(key *ecdsa.PublicKey) (ECPublicKeyParameters, error) {
	crv, err := curveName(key.Curve)
	if err != nil {
		return ECPublicKeyParameters{}, err
	}
	size := crv.Size()
	x, err := base64url.NewSizedInteger(key.X, size)
	if err != nil {
		return ECPublicKeyParameters{}, fmt.Errorf("jwk: x coordinate does not fit %s: %w", crv, err)
	}
	y, err := base64url.NewSizedInteger(key.Y, size)
	if err != nil {
		return ECPublicKeyParameters{}, fmt.Errorf("jwk: y coordinate does not fit %s: %w", crv, err)
	}
	return ECPublicKeyParameters{Crv: crv, X: x, Y: y}, nil
}

func rsaOptionalParameters(key *rsa.PrivateKey) *RSAPrivateOptionalParameters {
	if len(key.Primes) < 2 || key.Precomputed.Dp == nil {
		return nil
	}
	params := &RSAPrivateOptionalParameters{
		P:  key.Primes[0],
		Q:  key.Primes[1],
		DP: key.Precomputed.Dp,
		DQ: key.Precomputed.Dq,
		QI: key.Precomputed.Qinv,
	}
	// Multi-prime keys carry their additional primes in oth.
	for i, crt := range key.Precomputed.CRTValues {
		if 2+i >= len(key.Primes) {
			break
		}
		params.Oth = append(params.Oth, OtherPrimeInfo{
			R: key.Primes[2+i],
			D: crt.Exp,
			T: crt.Coeff,
		})
	}
	return params
}
