package detect

// EyeAspectRatio returns the opening of one eye relative to its width:
// the vertical distance between the eyelid midpoints divided by the
// distance between the corners. Open eyes sit around 0.25-0.35, closed
// eyes drop below ~0.2. This is the four-point reduction of the classic
// six-point EAR; it is fully deterministic in the landmark geometry.
func EyeAspectRatio(eye Eye) float64 {
	width := eye.Outer.Dist(eye.Inner)
	if width == 0 {
		return 0
	}
	return eye.Top.Dist(eye.Bottom) / width
}

// EAR returns the mean aspect ratio over both eyes.
// ok is false when the landmarks carry no usable eye data, in which
// case closure cannot be assessed.
func EAR(lm *Landmarks) (ratio float64, ok bool) {
	if lm == nil {
		return 0, false
	}

	sum := 0.0
	n := 0
	if lm.LeftEye != nil {
		sum += EyeAspectRatio(*lm.LeftEye)
		n++
	}
	if lm.RightEye != nil {
		sum += EyeAspectRatio(*lm.RightEye)
		n++
	}

	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
