package detect

// SelectPrimary picks the face the trackers should follow when more
// than one is visible.
// Priority: confidence * 0.7 + relative area * 0.3.
func SelectPrimary(faces []Face) *Face {
	if len(faces) == 0 {
		return nil
	}

	if len(faces) == 1 {
		return &faces[0]
	}

	// Find max area for normalization
	maxArea := 0.0
	for _, f := range faces {
		if f.Area() > maxArea {
			maxArea = f.Area()
		}
	}

	bestScore := -1.0
	var best *Face

	for i := range faces {
		score := faces[i].Confidence * 0.7
		if maxArea > 0 {
			score += (faces[i].Area() / maxArea) * 0.3
		}
		if score > bestScore {
			bestScore = score
			best = &faces[i]
		}
	}

	return best
}
