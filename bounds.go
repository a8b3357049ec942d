package viewport

// FitBounds computes the letterboxed sub-rectangle of a container actually
// occupied by content after an aspect-ratio-preserving fit. The result is
// container-relative (origin at the container's top-left).
//
// Returns ok=false while the geometry is not ready: a zero-sized container or
// content whose intrinsic size is not yet known. Callers must treat that as a
// valid transient state, not an error, and retry after the next resize or
// load. Bounds must be recomputed on every container or content size change.
func FitBounds(containerW, containerH, contentW, contentH float64) (bounds Rect, ok bool) {
	if containerW <= 0 || containerH <= 0 || contentW <= 0 || contentH <= 0 {
		return Rect{}, false
	}

	containerAspect := containerW / containerH
	contentAspect := contentW / contentH

	if containerAspect > contentAspect {
		// Container relatively wider: content fills the height, letterbox
		// on the sides.
		bounds.Height = containerH
		bounds.Width = containerH * contentAspect
		bounds.X = (containerW - bounds.Width) / 2
	} else {
		// Container relatively taller (or equal): content fills the width,
		// letterbox top and bottom.
		bounds.Width = containerW
		bounds.Height = containerW / contentAspect
		bounds.Y = (containerH - bounds.Height) / 2
	}
	return bounds, true
}
