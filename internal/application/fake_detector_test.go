package app

import (
	"context"

	"debris-analyzer/internal/domain/entity"
)

type fakeDetector struct {
	result       *entity.AnalysisResult
	err          error
	highlightErr error
	highlighted  int
}

func (f *fakeDetector) Detect(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeDetector) Highlight(imageData []byte, debris []entity.Debris) ([]byte, error) {
	f.highlighted++
	if f.highlightErr != nil {
		return nil, f.highlightErr
	}
	return []byte("highlighted"), nil
}

func boolPtr(v bool) *bool { return &v }
