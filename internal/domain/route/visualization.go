package route

import "debris-analyzer/internal/domain/entity"

// Project превращает маршрут в точки, рёбра и метаданные для отрисовки.
func Project(path []entity.Waypoint) entity.Visualization {
	vis := entity.Visualization{
		Points:      make([]entity.Position, len(path)),
		Connections: make([][2]int, 0, max(len(path)-1, 0)),
		Metadata:    make([]entity.DebrisMetadata, 0, max(len(path)-2, 0)),
	}

	for i, wp := range path {
		vis.Points[i] = wp.Position
		if i > 0 {
			vis.Connections = append(vis.Connections, [2]int{i - 1, i})
		}
	}

	if len(path) > 2 {
		for _, wp := range path[1 : len(path)-1] {
			if wp.Kind != entity.WaypointDebris || wp.Debris == nil {
				continue
			}
			vis.Metadata = append(vis.Metadata, MetadataFor(*wp.Debris))
		}
	}

	return vis
}

// MetadataFor подставляет значения по умолчанию вместо отсутствующих полей.
func MetadataFor(d entity.Debris) entity.DebrisMetadata {
	m := entity.DebrisMetadata{
		Position: d.Position,
		Size:     entity.DefaultSize,
		Material: entity.DefaultMaterial,
		Priority: entity.DefaultPriority,
		Feasible: entity.DefaultFeasible,
		ID:       entity.DefaultID,
	}
	if d.Size != nil {
		m.Size = *d.Size
	}
	if d.Material != nil {
		m.Material = *d.Material
	}
	if d.Priority != nil {
		m.Priority = *d.Priority
	}
	if d.Feasible != nil {
		m.Feasible = *d.Feasible
	}
	if d.ID != nil {
		m.ID = *d.ID
	}
	return m
}
