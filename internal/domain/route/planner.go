// Package route строит порядок обхода объектов мусора жадным методом ближайшего соседа.
package route

import (
	"fmt"
	"math"

	"debris-analyzer/internal/domain/entity"
)

// DefaultStart — точка базы, если вызывающий её не указал
var DefaultStart = entity.Position{0, 0, 0}

// Plan строит замкнутый маршрут от start через все объекты обратно к start.
// На каждом шаге выбирается ближайший из оставшихся объектов; при равных
// расстояниях побеждает тот, что раньше стоит в текущем списке.
// Входной срез не изменяется.
func Plan(start entity.Position, debris []entity.Debris) (*entity.PlanResult, error) {
	if len(debris) == 0 {
		return nil, &entity.InputError{Field: "debris_list", Reason: "no targets provided"}
	}
	if !start.IsFinite() {
		return nil, &entity.InputError{Field: "start_position", Reason: "coordinates must be finite numbers"}
	}
	for i, d := range debris {
		if !d.Position.IsFinite() {
			return nil, &entity.InputError{
				Field:  fmt.Sprintf("debris_list[%d].position", i),
				Reason: "coordinates must be finite numbers",
			}
		}
	}

	// Рабочая копия: указатели в маршруте ссылаются на неё, а не на данные вызывающего.
	pool := make([]entity.Debris, len(debris))
	copy(pool, debris)

	remaining := make([]int, len(pool))
	for i := range remaining {
		remaining[i] = i
	}

	path := make([]entity.Waypoint, 0, len(pool)+2)
	path = append(path, entity.Waypoint{Kind: entity.WaypointStart, Position: start})

	current := start
	var total float64
	for len(remaining) > 0 {
		pick, dist := nearest(current, pool, remaining)
		if pick < 0 {
			return nil, &entity.ComputationError{Stage: "distance to nearest debris", Value: dist}
		}

		idx := remaining[pick]
		path = append(path, entity.Waypoint{
			Kind:     entity.WaypointDebris,
			Position: pool[idx].Position,
			Debris:   &pool[idx],
		})
		total += dist
		current = pool[idx].Position
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}

	total += current.Distance(start)
	path = append(path, entity.Waypoint{Kind: entity.WaypointEnd, Position: start})

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, &entity.ComputationError{Stage: "total distance", Value: total}
	}

	return &entity.PlanResult{
		Path:            path,
		TotalDistance:   total,
		EstimatedTime:   total * entity.TimePerUnit,
		FuelConsumption: total * entity.FuelPerUnit,
		Visualization:   Project(path),
	}, nil
}

// nearest возвращает позицию в remaining ближайшего объекта и расстояние до него.
// Сравнение строгое, поэтому при равенстве остаётся первый найденный.
// -1 означает, что ни одно расстояние не оказалось конечным.
func nearest(from entity.Position, pool []entity.Debris, remaining []int) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, idx := range remaining {
		d := from.Distance(pool[idx].Position)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}
