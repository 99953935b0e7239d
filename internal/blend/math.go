// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

// The div255 family of functions avoid integer division by using bit shifts
// and addition. mulDiv255 runs once per channel for every composited pixel.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/

// div255 divides x by 255 using the shift approximation (x + 255) >> 8.
//
// For alpha blending inputs (0-65025 = 255*255) the result is within
// [0, 255], and mulDiv255(s, 255) == s for every s, so fully covered
// opaque pixels are copied without drift.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// div255Exact divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// MulDiv255 multiplies two bytes and divides by 255 using the fast
// approximation.
func MulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// mulDiv255Exact multiplies two bytes and divides by 255 exactly.
func mulDiv255Exact(a, b byte) byte {
	return byte(div255Exact(uint16(a) * uint16(b)))
}

// addDiv255 adds two premultiplied components, saturating at 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
