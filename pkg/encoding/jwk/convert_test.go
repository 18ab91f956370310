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
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
)

func TestFromECDSAPublicKey(t *testing.T) {
	tests := []struct {
		curve elliptic.Curve
		crv   Curve
		size  int
	}{
		{elliptic.P256(), CurveP256, 32},
		{elliptic.P384(), CurveP384, 48},
		{elliptic.P521(), CurveP521, 66},
	}

	for _, tt := range tests {
		t.Run(string(tt.crv), func(t *testing.T) {
			key, err := ecdsa.GenerateKey(tt.curve, rand.Reader)
			if err != nil {
				t.Fatalf("Failed to generate EC key: %v", err)
			}

			m, err := FromPublicKey(&key.PublicKey)
			if err != nil {
				t.Fatalf("FromPublicKey failed: %v", err)
			}

			ecKey, ok := m.(ECKeyMaterial)
			if !ok {
				t.Fatalf("Expected EC material, got %T", m)
			}
			pub, ok := ecKey.Params.(ECPublicKeyParameters)
			if !ok {
				t.Fatalf("Expected public shape, got %T", ecKey.Params)
			}
			if pub.Crv != tt.crv {
				t.Errorf("Expected crv=%v, got %v", tt.crv, pub.Crv)
			}
			// Coordinates are padded to the curve's field width regardless
			// of the value's leading zero bytes.
			if pub.X.Width != tt.size || pub.Y.Width != tt.size {
				t.Errorf("Expected coordinate width %d, got x=%d y=%d",
					tt.size, pub.X.Width, pub.Y.Width)
			}
		})
	}
}

func TestECDSAPublicKeyRoundTrip(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate EC key: %v", err)
	}

	m, err := FromPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("FromPublicKey failed: %v", err)
	}

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	recovered, err := PublicKey(decoded)
	if err != nil {
		t.Fatalf("PublicKey failed: %v", err)
	}

	if !key.PublicKey.Equal(recovered) {
		t.Error("Recovered public key does not match original")
	}
}

func TestFromECDSAPrivateKey(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate EC key: %v", err)
	}

	m, err := FromPrivateKey(key)
	if err != nil {
		t.Fatalf("FromPrivateKey failed: %v", err)
	}

	ecKey, ok := m.(ECKeyMaterial)
	if !ok {
		t.Fatalf("Expected EC material, got %T", m)
	}
	priv, ok := ecKey.Params.(ECPrivateKeyParameters)
	if !ok {
		t.Fatalf("Expected private shape, got %T", ecKey.Params)
	}
	if priv.D.Width != 48 {
		t.Errorf("Expected scalar width 48, got %d", priv.D.Width)
	}
	if priv.D.Value.Cmp(key.D) != 0 {
		t.Error("Private scalar does not match")
	}
}

func TestFromRSAPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate RSA key: %v", err)
	}

	m, err := FromPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("FromPublicKey failed: %v", err)
	}

	rsaKey, ok := m.(RSAKeyMaterial)
	if !ok {
		t.Fatalf("Expected RSA material, got %T", m)
	}
	pub, ok := rsaKey.Params.(RSAPublicKeyParameters)
	if !ok {
		t.Fatalf("Expected public shape, got %T", rsaKey.Params)
	}
	if pub.N.Cmp(key.N) != 0 {
		t.Error("Modulus does not match")
	}
	if pub.E.Int64() != int64(key.E) {
		t.Error("Exponent does not match")
	}
}

func TestRSAPublicKeyRoundTrip(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate RSA key: %v", err)
	}

	m, err := FromPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("FromPublicKey failed: %v", err)
	}

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	recovered, err := PublicKey(decoded)
	if err != nil {
		t.Fatalf("PublicKey failed: %v", err)
	}

	if !key.PublicKey.Equal(recovered) {
		t.Error("Recovered public key does not match original")
	}
}

func TestFromRSAPrivateKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("Failed to generate RSA key: %v", err)
	}

	m, err := FromPrivateKey(key)
	if err != nil {
		t.Fatalf("FromPrivateKey failed: %v", err)
	}

	rsaKey, ok := m.(RSAKeyMaterial)
	if !ok {
		t.Fatalf("Expected RSA material, got %T", m)
	}
	priv, ok := rsaKey.Params.(RSAPrivateKeyParameters)
	if !ok {
		t.Fatalf("Expected private shape, got %T", rsaKey.Params)
	}
	if priv.D.Cmp(key.D) != 0 {
		t.Error("Private exponent does not match")
	}
	if priv.Optional == nil {
		t.Fatal("Generated keys carry CRT material; Optional should be set")
	}
	if priv.Optional.P.Cmp(key.Primes[0]) != 0 || priv.Optional.Q.Cmp(key.Primes[1]) != 0 {
		t.Error("Prime factors do not match")
	}
	if priv.Optional.QI.Cmp(key.Precomputed.Qinv) != 0 {
		t.Error("CRT coefficient does not match")
	}
	if priv.Optional.Oth != nil {
		t.Error("Two-prime key should have no oth entries")
	}

	// The private shape must survive a wire round trip.
	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	decodedPriv := decoded.(RSAKeyMaterial).Params.(RSAPrivateKeyParameters)
	if decodedPriv.D.Cmp(key.D) != 0 {
		t.Error("Round trip changed the private exponent")
	}
}

func TestFromMultiPrimeRSAPrivateKey(t *testing.T) {
	key, err := rsa.GenerateMultiPrimeKey(rand.Reader, 3, 2048)
	if err != nil {
		t.Fatalf("Failed to generate multi-prime RSA key: %v", err)
	}

	m, err := FromPrivateKey(key)
	if err != nil {
		t.Fatalf("FromPrivateKey failed: %v", err)
	}

	priv := m.(RSAKeyMaterial).Params.(RSAPrivateKeyParameters)
	if priv.Optional == nil {
		t.Fatal("Optional should be set")
	}
	if len(priv.Optional.Oth) != 1 {
		t.Fatalf("Expected 1 oth entry for a 3-prime key, got %d", len(priv.Optional.Oth))
	}
	if priv.Optional.Oth[0].R.Cmp(key.Primes[2]) != 0 {
		t.Error("oth prime does not match")
	}

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	decoded, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	decodedPriv := decoded.(RSAKeyMaterial).Params.(RSAPrivateKeyParameters)
	if len(decodedPriv.Optional.Oth) != 1 {
		t.Error("Round trip lost the oth entries")
	}
}

func TestFromSymmetricKey(t *testing.T) {
	m, err := FromSymmetricKey([]byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("FromSymmetricKey failed: %v", err)
	}
	oct, ok := m.(OctKeyMaterial)
	if !ok {
		t.Fatalf("Expected Oct material, got %T", m)
	}
	if oct.K.Int64() != 0x010203 {
		t.Errorf("Unexpected key value: %v", oct.K)
	}
}

func TestFromSymmetricKey_RejectsEmpty(t *testing.T) {
	if _, err := FromSymmetricKey(nil); err == nil {
		t.Error("Empty symmetric key should be rejected")
	}
}

func TestPublicKey_Errors(t *testing.T) {
	tests := []struct {
		name     string
		material KeyMaterial
	}{
		{"EC private", ECKeyMaterial{Params: ECPrivateKeyParameters{D: sized(t, 1, 32)}}},
		{"RSA private", RSAKeyMaterial{Params: RSAPrivateKeyParameters{}}},
		{"Oct", OctKeyMaterial{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PublicKey(tt.material)
			if err == nil {
				t.Fatal("PublicKey should fail")
			}
			if !errors.Is(err, ErrNotPublicKey) {
				t.Errorf("Expected ErrNotPublicKey, got %v", err)
			}
		})
	}
}

func TestFromPublicKey_UnsupportedType(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate Ed25519 key: %v", err)
	}

	if _, err := FromPublicKey(pub); !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("Expected ErrUnsupportedKey, got %v", err)
	}
	if _, err := FromPrivateKey(pub); !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("Expected ErrUnsupportedKey, got %v", err)
	}
}
