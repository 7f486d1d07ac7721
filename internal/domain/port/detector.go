package port

import (
	"context"

	"debris-analyzer/internal/domain/entity"
)

// DebrisDetector интерфейс детектора мусора на изображении
type DebrisDetector interface {
	// Detect анализирует изображение и возвращает найденные объекты
	Detect(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error)

	// Highlight создаёт изображение с подсветкой найденных объектов
	Highlight(imageData []byte, debris []entity.Debris) ([]byte, error)
}
