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

	"github.com/jeremyhahn/go-keymaterial/pkg/encoding/base64url"
)

// rawObject is a parsed JSON object with field presence preserved.
// The format distinguishes an absent key from a key whose value is JSON
// null, so all shape matching works on rawObject rather than on structs
// with omitempty tags.
type rawObject map[string]json.RawMessage

func decodeObject(data []byte) (rawObject, error) {
	var obj rawObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("jwk: invalid JSON object: %w", err)
	}
	return obj, nil
}

// stringField returns the named field as a string. The field must be
// present and must be a JSON string.
func stringField(obj rawObject, name string) (string, error) {
	raw, ok := obj[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("jwk: field %q is not a string: %w", name, err)
	}
	return s, nil
}

// integerField returns the named field decoded as a plain base64url
// integer. The field must be present and non-null.
func integerField(obj rawObject, name string) (*big.Int, error) {
	s, err := stringField(obj, name)
	if err != nil {
		return nil, err
	}
	n, err := base64url.DecodeInteger(s)
	if err != nil {
		return nil, fmt.Errorf("jwk: field %q: %w", name, err)
	}
	return n, nil
}

// nullableIntegerField returns the named field decoded as a plain
// base64url integer. The field must be present; an explicit JSON null
// yields nil. Absence is an error — present-but-null and absent are
// different presence contracts in this format.
func nullableIntegerField(obj rawObject, name string) (*big.Int, error) {
	raw, ok := obj[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("jwk: field %q is not a string or null: %w", name, err)
	}
	if s == nil {
		return nil, nil
	}
	n, err := base64url.DecodeInteger(*s)
	if err != nil {
		return nil, fmt.Errorf("jwk: field %q: %w", name, err)
	}
	return n, nil
}

// sizedIntegerField returns the named field decoded as a length-preserving
// base64url integer. The field must be present and non-null.
func sizedIntegerField(obj rawObject, name string) (base64url.SizedInteger, error) {
	s, err := stringField(obj, name)
	if err != nil {
		return base64url.SizedInteger{}, err
	}
	si, err := base64url.DecodeSizedInteger(s)
	if err != nil {
		return base64url.SizedInteger{}, fmt.Errorf("jwk: field %q: %w", name, err)
	}
	return si, nil
}

// integerValue renders a plain integer for a flat field map, mapping nil
// to JSON null.
func integerValue(n *big.Int) any {
	if n == nil {
		return nil
	}
	return base64url.EncodeInteger(n)
}
