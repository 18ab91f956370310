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

import "errors"

var (
	// ErrUnrecognizedKeyType is returned when a kty value is not one of
	// the fixed literals "EC", "RSA" or "Oct"
	ErrUnrecognizedKeyType = errors.New("jwk: unrecognized key type")

	// ErrUndefinedCurve is returned when a crv value is not a registered
	// curve name
	ErrUndefinedCurve = errors.New("jwk: undefined curve")

	// ErrNoMatchingShape is returned when neither the private nor the
	// public shape of a key-parameter union matches the input object
	ErrNoMatchingShape = errors.New("jwk: no matching key-parameter shape")

	// ErrUnrecognizedKeyMaterial is returned when an object matches none
	// of the EC, RSA or Oct key material shapes
	ErrUnrecognizedKeyMaterial = errors.New("jwk: unrecognized or malformed key material")

	// ErrEmptyOtherPrimes is returned when an oth field is present but
	// contains no elements
	ErrEmptyOtherPrimes = errors.New("jwk: oth must not be empty when present")

	// ErrMissingField is returned when a required field is absent from
	// the input object
	ErrMissingField = errors.New("jwk: missing required field")

	// ErrNotPublicKey is returned when key material does not carry the
	// parameters of an asymmetric public key
	ErrNotPublicKey = errors.New("jwk: key material is not a public key")

	// ErrUnsupportedKey is returned when a standard library key cannot be
	// represented in this format
	ErrUnsupportedKey = errors.New("jwk: unsupported key")
)
