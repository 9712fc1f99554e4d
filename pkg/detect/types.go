// Package detect defines the detection data model shared by the
// monitoring engine and its detector backends.
package detect

import "math"

// Point is a 2D position in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is a bounding box in pixel coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Eye holds the four keypoints of one eye used for aspect-ratio math.
type Eye struct {
	Outer  Point `json:"outer"`  // outer corner
	Inner  Point `json:"inner"`  // inner corner
	Top    Point `json:"top"`    // upper eyelid midpoint
	Bottom Point `json:"bottom"` // lower eyelid midpoint
}

// Landmarks holds the facial keypoints reported by a face detector.
// Eye data is optional: detectors that only report coarse 5-point
// landmarks leave LeftEye/RightEye nil, in which case eye closure
// cannot be assessed.
type Landmarks struct {
	LeftEye  *Eye  `json:"left_eye,omitempty"`
	RightEye *Eye  `json:"right_eye,omitempty"`
	Nose     Point `json:"nose"`
	LeftEar  Point `json:"left_ear"`
	RightEar Point `json:"right_ear"`
}

// Face is a single detected face. Immutable, scoped to one sample.
type Face struct {
	Box        Rect       `json:"box"`
	Confidence float64    `json:"confidence"` // 0-1
	Landmarks  *Landmarks `json:"landmarks,omitempty"`
}

// Center returns the center of the face bounding box.
func (f Face) Center() Point {
	return f.Box.Center()
}

// Area returns the area of the face bounding box.
func (f Face) Area() float64 {
	return f.Box.Area()
}

// Class labels a detected object against the violation taxonomy.
type Class int

const (
	// ClassOther is any detection outside the taxonomy.
	ClassOther Class = iota
	// ClassPhone is a mobile phone.
	ClassPhone
	// ClassNotes is printed or written material (books, papers).
	ClassNotes
)

// String returns the wire name of the class.
func (c Class) String() string {
	switch c {
	case ClassPhone:
		return "phone"
	case ClassNotes:
		return "notes"
	default:
		return "other"
	}
}

// MapClassName maps a raw detector class name (COCO taxonomy) to a
// violation class.
func MapClassName(name string) Class {
	switch name {
	case "cell phone":
		return ClassPhone
	case "book":
		return ClassNotes
	default:
		return ClassOther
	}
}

// Object is a single detected object. Immutable, scoped to one sample.
type Object struct {
	Class      Class   `json:"class"`
	Confidence float64 `json:"confidence"` // 0-1
	Box        Rect    `json:"box"`
}

// Frame holds all detections extracted from one camera frame.
// Produced by a source, consumed exactly once per tick.
type Frame struct {
	Faces   []Face   `json:"faces"`
	Objects []Object `json:"objects"`
}
