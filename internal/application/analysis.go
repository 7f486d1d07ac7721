package app

import (
	"context"
	"errors"
	"log"
	"time"

	"debris-analyzer/internal/domain/entity"
	"debris-analyzer/internal/domain/port"
)

// ErrDetectorNotConfigured возвращается, если детектор не передан в сервис
var ErrDetectorNotConfigured = errors.New("detector is not configured")

type AnalysisService struct {
	detector port.DebrisDetector
	now      func() time.Time
}

// AnalysisOutput содержит результат анализа и картинку с подсветкой.
type AnalysisOutput struct {
	Result      *entity.AnalysisResult
	Highlighted []byte
}

// NewAnalysisService создаёт сервис поиска мусора на снимках.
func NewAnalysisService(detector port.DebrisDetector) *AnalysisService {
	return &AnalysisService{
		detector: detector,
		now:      time.Now,
	}
}

// Analyze запускает детектор и дополняет результат сводкой.
func (s *AnalysisService) Analyze(ctx context.Context, image []byte) (*entity.AnalysisResult, error) {
	if s.detector == nil {
		return nil, ErrDetectorNotConfigured
	}

	started := s.now()
	result, err := s.detector.Detect(ctx, image)
	if err != nil {
		return nil, err
	}

	if result.Debris == nil {
		result.Debris = []entity.Debris{}
	}
	result.Metadata.TotalObjects = len(result.Debris)
	result.Metadata.FeasibleObjects = len(result.Feasible())
	result.Metadata.AnalysisTime = s.now().Sub(started).Seconds()

	log.Printf("Analyzed image (%d bytes): %d objects, %d feasible",
		len(image), result.Metadata.TotalObjects, result.Metadata.FeasibleObjects)

	return result, nil
}

// ProcessPhoto анализирует снимок и возвращает результат с подсветкой.
func (s *AnalysisService) ProcessPhoto(ctx context.Context, photo []byte) (*AnalysisOutput, error) {
	result, err := s.Analyze(ctx, photo)
	if err != nil {
		return nil, err
	}

	var highlighted []byte
	if len(result.Debris) > 0 {
		highlighted, err = s.detector.Highlight(photo, result.Debris)
		if err != nil {
			// Без подсветки результат всё равно полезен.
			log.Printf("Highlight failed: %v", err)
			highlighted = nil
		}
	}

	return &AnalysisOutput{Result: result, Highlighted: highlighted}, nil
}
