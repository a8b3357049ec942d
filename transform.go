package viewport

// AnchorPoint converts a percentage-of-bounds target into container-relative
// pixels. This is the shared convention between the rendering surface and
// overlay/marker consumers: both sides must resolve percentages through the
// same bounds or their positions drift apart.
func AnchorPoint(pctX, pctY float64, bounds Rect) (x, y float64) {
	return bounds.X + pctX/100*bounds.Width,
		bounds.Y + pctY/100*bounds.Height
}

// TransformFor computes the transform that centers the given percentage
// target of bounds in a container of the given size at the given zoom.
//
// Because the transform is applied translate-then-scale (see
// [Transform.Apply]), centering requires
//
//	translate = container/2/zoom - targetPixel
//
// Zoom is used as given; clamping user-driven zoom is the gesture path's job.
func TransformFor(pctX, pctY, zoom, containerW, containerH float64, bounds Rect) Transform {
	px, py := AnchorPoint(pctX, pctY, bounds)
	return Transform{
		Scale:      zoom,
		TranslateX: containerW/2/zoom - px,
		TranslateY: containerH/2/zoom - py,
	}
}

// resolveTarget picks the percentage target for a scripted event. First match
// wins: explicit coordinates on the event, then a TargetID lookup against the
// anchor list, then the content center. A malformed event (no coordinates, no
// resolvable anchor) therefore falls back to center rather than failing.
func resolveTarget(ev ScriptedEvent, anchors []Anchor) (pctX, pctY float64) {
	if ev.TargetX != nil || ev.TargetY != nil {
		pctX, pctY = 50, 50
		if ev.TargetX != nil {
			pctX = *ev.TargetX
		}
		if ev.TargetY != nil {
			pctY = *ev.TargetY
		}
		return pctX, pctY
	}
	if ev.TargetID != "" {
		for _, a := range anchors {
			if a.ID == ev.TargetID {
				return a.X, a.Y
			}
		}
	}
	return 50, 50
}
