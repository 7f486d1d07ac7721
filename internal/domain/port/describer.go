package port

import "debris-analyzer/internal/domain/entity"

// Describer готовит текстовые сводки для пользователя
type Describer interface {
	// DescribeAnalysis описывает результат анализа снимка
	DescribeAnalysis(result *entity.AnalysisResult) string

	// DescribePlan описывает построенный маршрут
	DescribePlan(result *entity.PlanResult) string
}
