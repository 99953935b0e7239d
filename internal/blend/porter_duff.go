// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements the Porter-Duff source-over operator used by the
// icon compositor.
//
// All operations work with premultiplied alpha values in the range 0-255,
// the storage format of adaptive.Pixmap.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(sr, MulDiv255(dr, invSa)),
		addDiv255(sg, MulDiv255(dg, invSa)),
		addDiv255(sb, MulDiv255(db, invSa)),
		addDiv255(sa, MulDiv255(da, invSa))
}

// SourceOverCoverage scales the source by an 8-bit coverage value and
// composites it over the destination pixel stored at dst[0:4].
//
// Coverage 0 leaves dst untouched; coverage 255 is plain SourceOver.
func SourceOverCoverage(dst []byte, sr, sg, sb, sa, coverage byte) {
	if coverage == 0 || sa == 0 {
		return
	}
	if coverage != 255 {
		sr = MulDiv255(sr, coverage)
		sg = MulDiv255(sg, coverage)
		sb = MulDiv255(sb, coverage)
		sa = MulDiv255(sa, coverage)
	}
	if sa == 255 {
		dst[0], dst[1], dst[2], dst[3] = sr, sg, sb, sa
		return
	}
	dst[0], dst[1], dst[2], dst[3] = SourceOver(sr, sg, sb, sa, dst[0], dst[1], dst[2], dst[3])
}
