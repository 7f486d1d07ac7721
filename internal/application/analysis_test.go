package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"debris-analyzer/internal/domain/entity"
)

func TestAnalysisService_NoDetector(t *testing.T) {
	svc := NewAnalysisService(nil)
	_, err := svc.Analyze(context.Background(), []byte("img"))
	require.ErrorIs(t, err, ErrDetectorNotConfigured)
}

func TestAnalysisService_FillsMetadata(t *testing.T) {
	det := &fakeDetector{result: &entity.AnalysisResult{
		Debris: []entity.Debris{
			{Position: entity.Position{1, 1, 0}, Feasible: boolPtr(true)},
			{Position: entity.Position{2, 2, 0}, Feasible: boolPtr(false)},
			{Position: entity.Position{3, 3, 0}, Feasible: boolPtr(true)},
		},
		Metadata: entity.AnalysisMetadata{ImageSize: [2]int{480, 640}},
	}}
	svc := NewAnalysisService(det)

	ticks := []time.Time{time.Unix(100, 0), time.Unix(100, 500_000_000)}
	svc.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	result, err := svc.Analyze(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.Equal(t, 3, result.Metadata.TotalObjects)
	require.Equal(t, 2, result.Metadata.FeasibleObjects)
	require.InDelta(t, 0.5, result.Metadata.AnalysisTime, 1e-9)
	require.Equal(t, [2]int{480, 640}, result.Metadata.ImageSize)
}

func TestAnalysisService_EmptyResultHasNonNilSlice(t *testing.T) {
	svc := NewAnalysisService(&fakeDetector{result: &entity.AnalysisResult{}})
	result, err := svc.Analyze(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.NotNil(t, result.Debris)
	require.Zero(t, result.Metadata.TotalObjects)
}

func TestAnalysisService_DetectorErrorPropagates(t *testing.T) {
	svc := NewAnalysisService(&fakeDetector{err: entity.ErrImageDecode})
	_, err := svc.Analyze(context.Background(), []byte("junk"))
	require.ErrorIs(t, err, entity.ErrImageDecode)
}

func TestAnalysisService_ProcessPhoto(t *testing.T) {
	det := &fakeDetector{result: &entity.AnalysisResult{
		Debris: []entity.Debris{{Position: entity.Position{1, 1, 0}}},
	}}
	out, err := NewAnalysisService(det).ProcessPhoto(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.Equal(t, []byte("highlighted"), out.Highlighted)
	require.Equal(t, 1, det.highlighted)
}

func TestAnalysisService_ProcessPhotoHighlightFailure(t *testing.T) {
	det := &fakeDetector{
		result:       &entity.AnalysisResult{Debris: []entity.Debris{{}}},
		highlightErr: errors.New("boom"),
	}
	out, err := NewAnalysisService(det).ProcessPhoto(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.Nil(t, out.Highlighted)
	require.Equal(t, 1, out.Result.Metadata.TotalObjects)
}

func TestAnalysisService_ProcessPhotoSkipsHighlightWhenEmpty(t *testing.T) {
	det := &fakeDetector{result: &entity.AnalysisResult{}}
	out, err := NewAnalysisService(det).ProcessPhoto(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.Nil(t, out.Highlighted)
	require.Zero(t, det.highlighted)
}
