package app

import (
	"context"
	"log"

	"debris-analyzer/internal/domain/entity"
	"debris-analyzer/internal/domain/route"
)

// PlanningService строит маршруты сбора мусора
type PlanningService struct{}

// NewPlanningService создаёт сервис планирования маршрутов
func NewPlanningService() *PlanningService {
	return &PlanningService{}
}

// PlanPath строит маршрут от start (по умолчанию начало координат) через все объекты.
func (s *PlanningService) PlanPath(ctx context.Context, start *entity.Position, debris []entity.Debris) (*entity.PlanResult, error) {
	_ = ctx

	origin := route.DefaultStart
	if start != nil {
		origin = *start
	}

	result, err := route.Plan(origin, debris)
	if err != nil {
		log.Printf("Path planning failed for %d debris: %v", len(debris), err)
		return nil, err
	}

	log.Printf("Planned path over %d debris: distance %.2f", len(debris), result.TotalDistance)
	return result, nil
}

// PlanFeasible строит маршрут только по доступным объектам из анализа.
func (s *PlanningService) PlanFeasible(ctx context.Context, analysis *entity.AnalysisResult) (*entity.PlanResult, error) {
	if analysis == nil {
		return nil, &entity.InputError{Field: "analysis", Reason: "no analysis available"}
	}

	feasible := analysis.Feasible()
	if len(feasible) == 0 {
		return nil, &entity.InputError{Field: "debris_list", Reason: "no feasible debris"}
	}

	return s.PlanPath(ctx, nil, feasible)
}
