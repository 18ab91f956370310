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
	"encoding/json"
	"fmt"

	"github.com/jeremyhahn/go-keymaterial/pkg/encoding/base64url"
)

// ECKeyParameters is the tagged union of elliptic curve key parameter
// shapes. A value is exactly one of ECPrivateKeyParameters or
// ECPublicKeyParameters.
type ECKeyParameters interface {
	isECKeyParameters()

	// fields returns the variant's own fields for flat-merge encoding.
	// The map never contains a "kty" key.
	fields() map[string]any
}

// ECPrivateKeyParameters is the private shape: the scalar d only. The
// coordinate and curve fields of the public shape are never encoded
// alongside it.
type ECPrivateKeyParameters struct {
	// D is the private scalar. Its byte width is fixed by the curve the
	// key was generated on and is preserved through the encoding.
	D base64url.SizedInteger
}

func (ECPrivateKeyParameters) isECKeyParameters() {}

func (p ECPrivateKeyParameters) fields() map[string]any {
	return map[string]any{"d": p.D.Encode()}
}

// MarshalJSON encodes the private shape as {"d": ...}.
func (p ECPrivateKeyParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

// ECPublicKeyParameters is the public shape: curve name and affine
// coordinates. The private scalar is never encoded alongside it.
type ECPublicKeyParameters struct {
	Crv Curve

	// X and Y are the affine coordinates, width-preserving per the
	// curve's field size.
	X base64url.SizedInteger
	Y base64url.SizedInteger
}

func (ECPublicKeyParameters) isECKeyParameters() {}

func (p ECPublicKeyParameters) fields() map[string]any {
	return map[string]any{
		"crv": p.Crv.String(),
		"x":   p.X.Encode(),
		"y":   p.Y.Encode(),
	}
}

// MarshalJSON encodes the public shape as {"crv": ..., "x": ..., "y": ...}.
func (p ECPublicKeyParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

// DecodeECKeyParameters classifies a JSON object as one of the EC
// parameter shapes. The private shape is attempted first, so an object
// carrying both d and crv/x/y decodes as private. When both shapes fail,
// the returned error wraps ErrNoMatchingShape and surfaces the failure of
// the public shape, the last alternative attempted.
func DecodeECKeyParameters(data []byte) (ECKeyParameters, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	return decodeECKeyParameters(obj)
}

func decodeECKeyParameters(obj rawObject) (ECKeyParameters, error) {
	if priv, err := decodeECPrivateKeyParameters(obj); err == nil {
		return priv, nil
	}
	pub, err := decodeECPublicKeyParameters(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoMatchingShape, err)
	}
	return pub, nil
}

func decodeECPrivateKeyParameters(obj rawObject) (ECPrivateKeyParameters, error) {
	d, err := sizedIntegerField(obj, "d")
	if err != nil {
		return ECPrivateKeyParameters{}, err
	}
	return ECPrivateKeyParameters{D: d}, nil
}

func decodeECPublicKeyParameters(obj rawObject) (ECPublicKeyParameters, error) {
	crvName, err := stringField(obj, "crv")
	if err != nil {
		return ECPublicKeyParameters{}, err
	}
	crv, err := ParseCurve(crvName)
	if err != nil {
		return ECPublicKeyParameters{}, err
	}
	x, err := sizedIntegerField(obj, "x")
	if err != nil {
		return ECPublicKeyParameters{}, err
	}
	y, err := sizedIntegerField(obj, "y")
	if err != nil {
		return ECPublicKeyParameters{}, err
	}
	return ECPublicKeyParameters{Crv: crv, X: x, Y: y}, nil
}
