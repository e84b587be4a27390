package affinity

import "math"

// Shape describes the spatial dimensions (D, H, W) common to every volume in
// this package.
type Shape struct {
	Depth  int
	Height int
	Width  int
}

// Voxels returns the number of voxels in the shape (D*H*W).
//
// Complexity: O(1).
func (s Shape) Voxels() int {
	return s.Depth * s.Height * s.Width
}

func (s Shape) validate() error {
	if s.Depth <= 0 || s.Height <= 0 || s.Width <= 0 {
		return ErrNonPositiveShape
	}

	return nil
}

// Equal reports whether two shapes describe the same spatial dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.Depth == other.Depth && s.Height == other.Height && s.Width == other.Width
}

// AffinityVolume holds a contiguous, channel-major affinity array of shape
// (3, D, H, W). Data[c*Voxels() + (z*Height+y)*Width + x] is the affinity
// between voxel (z,y,x) and its negative neighbor along axis c (0=z, 1=y,
// 2=x).
type AffinityVolume struct {
	Shape
	Data []float32
}

// NewAffinityVolume validates shape and data length and returns a new
// AffinityVolume. The Data slice is used directly (not copied); callers that
// need isolation should copy before constructing.
//
// Errors:
//   - ErrNonPositiveShape if depth, height or width <= 0.
//   - ErrLengthMismatch if len(data) != 3*depth*height*width.
//   - ErrNaNValue if any value in data is NaN.
//
// Complexity: O(len(data)) for the NaN scan.
func NewAffinityVolume(depth, height, width int, data []float32) (*AffinityVolume, error) {
	shape := Shape{Depth: depth, Height: height, Width: width}
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(data) != 3*shape.Voxels() {
		return nil, ErrLengthMismatch
	}

	av := &AffinityVolume{Shape: shape, Data: data}
	if av.HasNaN() {
		return nil, ErrNaNValue
	}

	return av, nil
}

// index computes the flat offset for channel c, voxel (z,y,x).
func (a *AffinityVolume) index(c, z, y, x int) int {
	return c*a.Voxels() + (z*a.Height+y)*a.Width + x
}

// At returns the affinity on channel c (0=z, 1=y, 2=x) between voxel (z,y,x)
// and its negative neighbor along that axis.
//
// Complexity: O(1). No bounds checking; callers must stay in range.
func (a *AffinityVolume) At(c, z, y, x int) float32 {
	return a.Data[a.index(c, z, y, x)]
}

// HasNaN reports whether any value in the volume is NaN.
//
// Complexity: O(len(Data)).
func (a *AffinityVolume) HasNaN() bool {
	for _, v := range a.Data {
		if math.IsNaN(float64(v)) {
			return true
		}
	}

	return false
}

// Clamp returns a new AffinityVolume with every value mapped through:
//
//	v < low  -> 0
//	v > high -> high
//	otherwise -> v unchanged
//
// This realizes the InitialSegmenter clamping rule (spec §4.1 step 1). The
// receiver is left untouched so the original, unclamped values remain
// available for later agglomeration scoring.
//
// Complexity: O(len(Data)).
func (a *AffinityVolume) Clamp(low, high float32) *AffinityVolume {
	out := make([]float32, len(a.Data))
	for i, v := range a.Data {
		switch {
		case v < low:
			out[i] = 0
		case v > high:
			out[i] = high
		default:
			out[i] = v
		}
	}

	return &AffinityVolume{Shape: a.Shape, Data: out}
}

// ValidateThresholds checks that low <= high and both lie in [0, 1].
func ValidateThresholds(low, high float32) error {
	if low < 0 || low > 1 || high < 0 || high > 1 {
		return ErrThresholdRange
	}
	if low > high {
		return ErrThresholdOrder
	}

	return nil
}

// LabelVolume holds a contiguous, row-major label array of shape (D, H, W).
// Label 0 is reserved for background; all other labels are dense positive
// integers once compacted (see fragment.Segment / agglomerator snapshots).
type LabelVolume struct {
	Shape
	Data []uint64
}

// NewLabelVolume validates shape and data length and returns a new
// LabelVolume. The Data slice is used directly, not copied.
//
// Errors:
//   - ErrNonPositiveShape if depth, height or width <= 0.
//   - ErrLengthMismatch if len(data) != depth*height*width.
func NewLabelVolume(depth, height, width int, data []uint64) (*LabelVolume, error) {
	shape := Shape{Depth: depth, Height: height, Width: width}
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Voxels() {
		return nil, ErrLengthMismatch
	}

	return &LabelVolume{Shape: shape, Data: data}, nil
}

// NewEmptyLabelVolume allocates a LabelVolume of the given shape with every
// voxel initialized to background (0).
func NewEmptyLabelVolume(depth, height, width int) (*LabelVolume, error) {
	shape := Shape{Depth: depth, Height: height, Width: width}
	if err := shape.validate(); err != nil {
		return nil, err
	}

	return &LabelVolume{Shape: shape, Data: make([]uint64, shape.Voxels())}, nil
}

// index computes the flat, row-major offset for voxel (z,y,x).
func (l *LabelVolume) index(z, y, x int) int {
	return (z*l.Height+y)*l.Width + x
}

// At returns the label at voxel (z,y,x).
//
// Complexity: O(1). No bounds checking.
func (l *LabelVolume) At(z, y, x int) uint64 {
	return l.Data[l.index(z, y, x)]
}

// Set assigns the label at voxel (z,y,x).
//
// Complexity: O(1). No bounds checking.
func (l *LabelVolume) Set(z, y, x int, v uint64) {
	l.Data[l.index(z, y, x)] = v
}

// CheckShapeMatches returns ErrShapeMismatch if the label volume's spatial
// shape does not match the affinity volume's.
func (a *AffinityVolume) CheckShapeMatches(l *LabelVolume) error {
	if !a.Shape.Equal(l.Shape) {
		return ErrShapeMismatch
	}

	return nil
}
