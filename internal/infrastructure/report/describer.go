// Package report формирует текстовые сводки для чата.
package report

import (
	"fmt"
	"strings"

	"debris-analyzer/internal/domain/entity"
	"debris-analyzer/internal/domain/port"
	"debris-analyzer/internal/domain/route"
)

// TextDescriber собирает короткие сводки на русском языке
type TextDescriber struct {
	// MaxSteps ограничивает число шагов маршрута в сводке
	MaxSteps int
}

// NewTextDescriber создаёт описатель с ограничением в 10 шагов
func NewTextDescriber() *TextDescriber {
	return &TextDescriber{MaxSteps: 10}
}

// DescribeAnalysis описывает результат анализа снимка
func (d *TextDescriber) DescribeAnalysis(result *entity.AnalysisResult) string {
	if result == nil || len(result.Debris) == 0 {
		return "✅ Объекты мусора не обнаружены."
	}

	materials := make(map[string]int)
	order := make([]string, 0, 3)
	for _, item := range result.Debris {
		m := route.MetadataFor(item).Material
		if _, ok := materials[m]; !ok {
			order = append(order, m)
		}
		materials[m]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛰 Найдено объектов: %d, доступно для сбора: %d\n",
		result.Metadata.TotalObjects, result.Metadata.FeasibleObjects)
	for _, m := range order {
		fmt.Fprintf(&b, "• %s: %d\n", m, materials[m])
	}
	fmt.Fprintf(&b, "⏱ Анализ занял %.2f с", result.Metadata.AnalysisTime)
	return b.String()
}

// DescribePlan описывает построенный маршрут
func (d *TextDescriber) DescribePlan(result *entity.PlanResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🧭 Маршрут: %d объектов\n", len(result.Visualization.Metadata))
	for i, m := range result.Visualization.Metadata {
		if d.MaxSteps > 0 && i >= d.MaxSteps {
			fmt.Fprintf(&b, "… и ещё %d\n", len(result.Visualization.Metadata)-i)
			break
		}
		fmt.Fprintf(&b, "%d. #%d %s (%.0f, %.0f, %.0f)\n",
			i+1, m.ID, m.Material, m.Position[0], m.Position[1], m.Position[2])
	}
	fmt.Fprintf(&b, "📏 Длина: %.2f\n", result.TotalDistance)
	fmt.Fprintf(&b, "⏱ Время: %.2f\n", result.EstimatedTime)
	fmt.Fprintf(&b, "⛽ Топливо: %.2f", result.FuelConsumption)
	return b.String()
}

var _ port.Describer = (*TextDescriber)(nil)
