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
	"crypto/elliptic"
	"fmt"
)

// Curve is a registered elliptic curve name. The enumeration is closed:
// values are produced only by ParseCurve or the package constants, so the
// reverse (Curve to string) mapping is total by construction. Curve is
// comparable and usable as a map key.
type Curve string

const (
	CurveP256 Curve = "P-256"
	CurveP384 Curve = "P-384"
	CurveP521 Curve = "P-521"
)

// ParseCurve parses a crv value against the closed curve registry.
// Matching is case-sensitive; unknown names fail with ErrUndefinedCurve.
func ParseCurve(s string) (Curve, error) {
	switch s {
	case string(CurveP256):
		return CurveP256, nil
	case string(CurveP384):
		return CurveP384, nil
	case string(CurveP521):
		return CurveP521, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUndefinedCurve, s)
	}
}

// String returns the registered curve name.
func (c Curve) String() string {
	return string(c)
}

// Size returns the curve's field width in bytes. This is the external
// context that fixes the byte width of the curve's coordinate and scalar
// encodings. Returns 0 for a Curve that did not come from the registry.
func (c Curve) Size() int {
	switch c {
	case CurveP256:
		return 32
	case CurveP384:
		return 48
	case CurveP521:
		return 66
	}
	return 0
}

// EllipticCurve returns the standard library curve, for conversion to and
// from crypto/ecdsa keys. Returns nil for a Curve that did not come from
// the registry.
func (c Curve) EllipticCurve() elliptic.Curve {
	switch c {
	case CurveP256:
		return elliptic.P256()
	case CurveP384:
		return elliptic.P384()
	case CurveP521:
		return elliptic.P521()
	}
	return nil
}

// curveName maps a standard library curve back to its registered name.
func curveName(curve elliptic.Curve) (Curve, error) {
	switch curve {
	case elliptic.P256():
		return CurveP256, nil
	case elliptic.P384():
		return CurveP384, nil
	case elliptic.P521():
		return CurveP521, nil
	default:
		return "", fmt.Errorf("%w: unsupported elliptic curve %s", ErrUnsupportedKey, curve.Params().Name)
	}
}
