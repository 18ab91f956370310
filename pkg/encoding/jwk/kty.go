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

import "fmt"

// KeyType is the kty discriminant selecting a key family.
type KeyType string

const (
	KeyTypeEC  KeyType = "EC"
	KeyTypeRSA KeyType = "RSA"
	KeyTypeOct KeyType = "Oct"
)

// ParseKeyType parses a kty value. Only the exact literals "EC", "RSA"
// and "Oct" are accepted; matching is case-sensitive.
func ParseKeyType(s string) (KeyType, error) {
	switch s {
	case string(KeyTypeEC):
		return KeyTypeEC, nil
	case string(KeyTypeRSA):
		return KeyTypeRSA, nil
	case string(KeyTypeOct):
		return KeyTypeOct, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedKeyType, s)
	}
}

// String returns the fixed kty literal.
func (t KeyType) String() string {
	return string(t)
}
