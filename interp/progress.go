package interp

import (
	"math"

	"github.com/matt-g-everett/ledtween/curve"
	"github.com/pkg/errors"
)

// Segment is the part of a piecewise curve that is active at some progress.
type Segment struct {
	Index    int
	Points   []float64
	Progress float64
}

// CurveProgress picks the segment of points that is active at t. points is
// a run of chunkSize sized chunks, each segment spanning one chunk plus the
// first offset values of the next one. Segments get equal shares of t, a
// boundary belonging to the segment before it.
func CurveProgress(t float64, offset, chunkSize int, points []float64) (Segment, error) {
	size := len(points)
	if chunkSize <= 0 || (size%chunkSize != offset && chunkSize != offset) {
		return Segment{}, errors.Wrapf(ErrChunking, "%d points in chunks of %d with offset %d", size, chunkSize, offset)
	}
	segments := size / chunkSize
	if segments == 0 {
		return Segment{}, errors.Wrapf(ErrChunking, "%d points make no segment of %d", size, chunkSize)
	}

	index := int(curve.Clamp(math.Ceil(t*float64(segments))-1, 0, float64(segments-1)))
	start := index * chunkSize
	end := start + chunkSize + offset
	if end > size {
		end = size
	}

	current := make([]float64, 0, 2*(end-start))
	current = append(current, points[start:end]...)
	if len(current) < chunkSize+offset {
		current = append(current, current...)
	}

	// (t - index/segments) / (1/segments), kept exact at boundaries.
	return Segment{
		Index:    index,
		Points:   current,
		Progress: t*float64(segments) - float64(index),
	}, nil
}
