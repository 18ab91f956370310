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
	"math/big"
)

// KeyMaterial is the discriminated union over the three key families.
// Each case reports its fixed key type by construction, so the kty tag
// can never disagree with the union case.
type KeyMaterial interface {
	// KeyType returns the family's fixed kty tag.
	KeyType() KeyType

	isKeyMaterial()

	// fields returns the family parameters for flat-merge encoding. The
	// map never contains a "kty" key; kty is reserved for the material
	// layer (asserted by test, not checked at runtime).
	fields() map[string]any
}

// ECKeyMaterial is elliptic curve key material.
type ECKeyMaterial struct {
	Params ECKeyParameters
}

func (ECKeyMaterial) KeyType() KeyType { return KeyTypeEC }

func (ECKeyMaterial) isKeyMaterial() {}

func (m ECKeyMaterial) fields() map[string]any { return m.Params.fields() }

// MarshalJSON encodes the material as a single flat object.
func (m ECKeyMaterial) MarshalJSON() ([]byte, error) { return Marshal(m) }

// RSAKeyMaterial is RSA key material.
type RSAKeyMaterial struct {
	Params RSAKeyParameters
}

func (RSAKeyMaterial) KeyType() KeyType { return KeyTypeRSA }

func (RSAKeyMaterial) isKeyMaterial() {}

func (m RSAKeyMaterial) fields() map[string]any { return m.Params.fields() }

// MarshalJSON encodes the material as a single flat object.
func (m RSAKeyMaterial) MarshalJSON() ([]byte, error) { return Marshal(m) }

// OctKeyMaterial is symmetric octet key material.
type OctKeyMaterial struct {
	K *big.Int
}

func (OctKeyMaterial) KeyType() KeyType { return KeyTypeOct }

func (OctKeyMaterial) isKeyMaterial() {}

func (m OctKeyMaterial) fields() map[string]any {
	return map[string]any{"k": integerValue(m.K)}
}

// MarshalJSON encodes the material as a single flat object.
func (m OctKeyMaterial) MarshalJSON() ([]byte, error) { return Marshal(m) }

// Unmarshal classifies a JSON object as key material. The EC, RSA and
// Oct shapes are attempted in that order; each branch checks kty itself,
// so a malformed kty value fails through every branch. The first
// successful alternative wins. When all three fail, the returned error
// wraps ErrUnrecognizedKeyMaterial and surfaces the failure of the Oct
// shape, the last alternative attempted.
func Unmarshal(data []byte) (KeyMaterial, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	if m, err := decodeECKeyMaterial(obj); err == nil {
		return m, nil
	}
	if m, err := decodeRSAKeyMaterial(obj); err == nil {
		return m, nil
	}
	m, err := decodeOctKeyMaterial(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedKeyMaterial, err)
	}
	return m, nil
}

// Marshal encodes key material as one flat JSON object: the kty literal
// merged with the family parameters' own fields.
func Marshal(m KeyMaterial) ([]byte, error) {
	fields := m.fields()
	flat := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		flat[k] = v
	}
	flat["kty"] = m.KeyType().String()
	return json.Marshal(flat)
}

func decodeKeyType(obj rawObject, want KeyType) error {
	s, err := stringField(obj, "kty")
	if err != nil {
		return err
	}
	kty, err := ParseKeyType(s)
	if err != nil {
		return err
	}
	if kty != want {
		return fmt.Errorf("jwk: key type %q does not select %q material", kty, want)
	}
	return nil
}

func decodeECKeyMaterial(obj rawObject) (ECKeyMaterial, error) {
	if err := decodeKeyType(obj, KeyTypeEC); err != nil {
		return ECKeyMaterial{}, err
	}
	params, err := decodeECKeyParameters(obj)
	if err != nil {
		return ECKeyMaterial{}, err
	}
	return ECKeyMaterial{Params: params}, nil
}

func decodeRSAKeyMaterial(obj rawObject) (RSAKeyMaterial, error) {
	if err := decodeKeyType(obj, KeyTypeRSA); err != nil {
		return RSAKeyMaterial{}, err
	}
	params, err := decodeRSAKeyParameters(obj)
	if err != nil {
		return RSAKeyMaterial{}, err
	}
	return RSAKeyMaterial{Params: params}, nil
}

func decodeOctKeyMaterial(obj rawObject) (OctKeyMaterial, error) {
	if err := decodeKeyType(obj, KeyTypeOct); err != nil {
		return OctKeyMaterial{}, err
	}
	k, err := integerField(obj, "k")
	if err != nil {
		return OctKeyMaterial{}, err
	}
	return OctKeyMaterial{K: k}, nil
}
