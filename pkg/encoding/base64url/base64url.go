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

// Package base64url encodes arbitrary-precision integers as unpadded
// base64url text, in the two forms key-representation formats use:
// a plain minimal-width encoding, and a length-preserving ("sized")
// encoding whose byte width is fixed by external context (for example
// an elliptic curve's field size) rather than by the value itself.
package base64url

import (
	"encoding/base64"
	"fmt"
	"math/big"
)

// EncodeInteger encodes a non-negative integer as unpadded base64url of
// its minimal big-endian byte representation. Zero encodes as a single
// zero byte.
func EncodeInteger(n *big.Int) string {
	if n == nil || n.Sign() == 0 {
		return base64.RawURLEncoding.EncodeToString([]byte{0})
	}
	return base64.RawURLEncoding.EncodeToString(n.Bytes())
}

// DecodeInteger decodes an unpadded base64url string to a non-negative
// integer. The decoded byte width is not retained; use DecodeSizedInteger
// when the width is significant.
func DecodeInteger(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64url: invalid integer encoding: %w", err)
	}
	return new(big.Int).SetBytes(b), nil
}

// SizedInteger is an arbitrary-precision integer together with the byte
// width of its big-endian representation. The width is preserved through
// encode/decode so values with leading zero bytes survive a round trip.
type SizedInteger struct {
	// Value is the integer. Never negative.
	Value *big.Int

	// Width is the byte width of the big-endian representation,
	// including leading zero bytes.
	Width int
}

// NewSizedInteger constructs a SizedInteger, failing when the value's
// minimal representation does not fit the requested width.
func NewSizedInteger(n *big.Int, width int) (SizedInteger, error) {
	if n == nil {
		n = new(big.Int)
	}
	if n.Sign() < 0 {
		return SizedInteger{}, fmt.Errorf("base64url: sized integer must be non-negative")
	}
	if minWidth := len(n.Bytes()); minWidth > width {
		return SizedInteger{}, fmt.Errorf(
			"base64url: integer requires %d bytes, exceeds width %d", minWidth, width)
	}
	return SizedInteger{Value: n, Width: width}, nil
}

// DecodeSizedInteger decodes an unpadded base64url string, preserving the
// decoded byte width.
func DecodeSizedInteger(s string) (SizedInteger, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return SizedInteger{}, fmt.Errorf("base64url: invalid integer encoding: %w", err)
	}
	return SizedInteger{Value: new(big.Int).SetBytes(b), Width: len(b)}, nil
}

// Encode encodes the integer left-padded with zero bytes to the preserved
// width.
func (si SizedInteger) Encode() string {
	b := make([]byte, si.Width)
	if si.Value != nil {
		si.Value.FillBytes(b)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// Equal reports whether two sized integers have the same value and width.
func (si SizedInteger) Equal(other SizedInteger) bool {
	if si.Width != other.Width {
		return false
	}
	a, b := si.Value, other.Value
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b) == 0
}

// String returns the encoded form. Implements fmt.Stringer for logging
// and test output.
func (si SizedInteger) String() string {
	return si.Encode()
}
