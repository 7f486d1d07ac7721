//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"debris-analyzer/internal/domain/entity"
	"debris-analyzer/internal/domain/port"
)

// ErrGoCVDisabled возвращается сборкой без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

type GoCVDetector struct {
	MinContourArea float64
	CannyLow       float32
	CannyHigh      float32
	SuppressNested bool
}

// NewGoCVDetector создаёт детектор-заглушку (без OpenCV).
func NewGoCVDetector(minContourArea float64) *GoCVDetector {
	if minContourArea <= 0 {
		minContourArea = DefaultMinContourArea
	}
	return &GoCVDetector{
		MinContourArea: minContourArea,
		CannyLow:       50,
		CannyHigh:      150,
	}
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) Detect(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error) {
	_ = ctx
	_ = imageData
	return nil, ErrGoCVDisabled
}

// Highlight возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) Highlight(imageData []byte, debris []entity.Debris) ([]byte, error) {
	_ = imageData
	_ = debris
	return nil, ErrGoCVDisabled
}

var _ port.DebrisDetector = (*GoCVDetector)(nil)
