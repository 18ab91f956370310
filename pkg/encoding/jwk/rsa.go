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

// OtherPrimeInfo is one element of the oth list on an extended (multi
// prime) RSA private key: prime factor, factor CRT exponent and factor
// CRT coefficient. No numeric relation between the three is validated at
// this layer.
type OtherPrimeInfo struct {
	R *big.Int
	D *big.Int
	T *big.Int
}

// UnmarshalJSON decodes an oth element. All of r, d and t are required
// and non-null.
func (o *OtherPrimeInfo) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	r, err := integerField(obj, "r")
	if err != nil {
		return err
	}
	d, err := integerField(obj, "d")
	if err != nil {
		return err
	}
	t, err := integerField(obj, "t")
	if err != nil {
		return err
	}
	o.R, o.D, o.T = r, d, t
	return nil
}

// MarshalJSON encodes the element as {"r": ..., "d": ..., "t": ...}.
func (o OtherPrimeInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"r": integerValue(o.R),
		"d": integerValue(o.D),
		"t": integerValue(o.T),
	})
}

// RSAPrivateOptionalParameters is the CRT record of an extended RSA
// private key. The five CRT fields are required-but-nullable: the JSON
// key must be present, and an explicit null yields a nil field. Oth is
// genuinely optional — absence is valid and distinct from an empty list,
// and an empty list is rejected on decode.
type RSAPrivateOptionalParameters struct {
	P  *big.Int
	Q  *big.Int
	DP *big.Int
	DQ *big.Int
	QI *big.Int

	// Oth holds additional prime info for multi-prime keys. nil when the
	// field was absent; never empty.
	Oth []OtherPrimeInfo
}

// UnmarshalJSON decodes the CRT record with the presence contracts above.
func (p *RSAPrivateOptionalParameters) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	dec, err := decodeOptionalParameters(obj)
	if err != nil {
		return err
	}
	*p = *dec
	return nil
}

func decodeOptionalParameters(obj rawObject) (*RSAPrivateOptionalParameters, error) {
	var params RSAPrivateOptionalParameters
	var err error
	if params.P, err = nullableIntegerField(obj, "p"); err != nil {
		return nil, err
	}
	if params.Q, err = nullableIntegerField(obj, "q"); err != nil {
		return nil, err
	}
	if params.DP, err = nullableIntegerField(obj, "dp"); err != nil {
		return nil, err
	}
	if params.DQ, err = nullableIntegerField(obj, "dq"); err != nil {
		return nil, err
	}
	if params.QI, err = nullableIntegerField(obj, "qi"); err != nil {
		return nil, err
	}
	if raw, ok := obj["oth"]; ok {
		var oth []OtherPrimeInfo
		if err := json.Unmarshal(raw, &oth); err != nil {
			return nil, fmt.Errorf("jwk: field %q: %w", "oth", err)
		}
		// An explicit null is treated as absent; an explicit empty list
		// violates the record's documented invariant.
		if oth != nil && len(oth) == 0 {
			return nil, ErrEmptyOtherPrimes
		}
		params.Oth = oth
	}
	return &params, nil
}

// optionalParameterKeys are the keys whose presence selects the strict
// CRT record decode within the RSA private shape.
var optionalParameterKeys = []string{"p", "q", "dp", "dq", "qi", "oth"}

func hasOptionalParameterKeys(obj rawObject) bool {
	for _, k := range optionalParameterKeys {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

func (p RSAPrivateOptionalParameters) fields() map[string]any {
	m := map[string]any{
		"p":  integerValue(p.P),
		"q":  integerValue(p.Q),
		"dp": integerValue(p.DP),
		"dq": integerValue(p.DQ),
		"qi": integerValue(p.QI),
	}
	if len(p.Oth) > 0 {
		m["oth"] = p.Oth
	}
	return m
}

// MarshalJSON encodes the CRT record. All five CRT keys are emitted, with
// JSON null for nil fields; oth is emitted only when present. qi is
// emitted under its own key — the reference encoder for this format
// reuses the dq key for qi, a transcription defect this implementation
// corrects (see TestEncodeOptionalParameters_QiKeyDistinctFromDq).
func (p RSAPrivateOptionalParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

// RSAKeyParameters is the tagged union of RSA key parameter shapes. A
// value is exactly one of RSAPrivateKeyParameters or
// RSAPublicKeyParameters.
type RSAKeyParameters interface {
	isRSAKeyParameters()

	// fields returns the variant's own fields for flat-merge encoding.
	// The map never contains a "kty" key.
	fields() map[string]any
}

// RSAPrivateKeyParameters is the private shape: the exponent d, plus the
// CRT record when the key carries extended parameters.
type RSAPrivateKeyParameters struct {
	D *big.Int

	// Optional is nil when the key carries no CRT material. When present
	// its fields are flat-merged alongside d on encode.
	Optional *RSAPrivateOptionalParameters
}

func (RSAPrivateKeyParameters) isRSAKeyParameters() {}

func (p RSAPrivateKeyParameters) fields() map[string]any {
	m := map[string]any{"d": integerValue(p.D)}
	if p.Optional != nil {
		for k, v := range p.Optional.fields() {
			m[k] = v
		}
	}
	return m
}

// MarshalJSON encodes the private shape as a single flat object: d merged
// with the CRT record's fields when present.
func (p RSAPrivateKeyParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

// RSAPublicKeyParameters is the public shape: modulus and public exponent.
type RSAPublicKeyParameters struct {
	N *big.Int
	E *big.Int
}

func (RSAPublicKeyParameters) isRSAKeyParameters() {}

func (p RSAPublicKeyParameters) fields() map[string]any {
	return map[string]any{
		"n": integerValue(p.N),
		"e": integerValue(p.E),
	}
}

// MarshalJSON encodes the public shape as {"n": ..., "e": ...}.
func (p RSAPublicKeyParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

// DecodeRSAKeyParameters classifies a JSON object as one of the RSA
// parameter shapes. The private shape is attempted first: it requires d,
// and when any CRT key (p, q, dp, dq, qi, oth) is present the full strict
// record decode must succeed — a malformed record fails the private shape
// outright rather than falling back mid-shape. When both shapes fail, the
// returned error wraps ErrNoMatchingShape and surfaces the failure of the
// public shape, the last alternative attempted.
func DecodeRSAKeyParameters(data []byte) (RSAKeyParameters, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	return decodeRSAKeyParameters(obj)
}

func decodeRSAKeyParameters(obj rawObject) (RSAKeyParameters, error) {
	if priv, err := decodeRSAPrivateKeyParameters(obj); err == nil {
		return priv, nil
	}
	pub, err := decodeRSAPublicKeyParameters(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoMatchingShape, err)
	}
	return pub, nil
}

func decodeRSAPrivateKeyParameters(obj rawObject) (RSAPrivateKeyParameters, error) {
	d, err := integerField(obj, "d")
	if err != nil {
		return RSAPrivateKeyParameters{}, err
	}
	params := RSAPrivateKeyParameters{D: d}
	if hasOptionalParameterKeys(obj) {
		opt, err := decodeOptionalParameters(obj)
		if err != nil {
			return RSAPrivateKeyParameters{}, err
		}
		params.Optional = opt
	}
	return params, nil
}

func decodeRSAPublicKeyParameters(obj rawObject) (RSAPublicKeyParameters, error) {
	n, err := integerField(obj, "n")
	if err != nil {
		return RSAPublicKeyParameters{}, err
	}
	e, err := integerField(obj, "e")
	if err != nil {
		return RSAPublicKeyParameters{}, err
	}
	return RSAPublicKeyParameters{N: n, E: e}, nil
}
