package entity

// Коэффициенты производных оценок маршрута
const (
	TimePerUnit = 0.02 // оценка времени на единицу пути
	FuelPerUnit = 0.1  // расход топлива на единицу пути
)

// Значения по умолчанию для метаданных визуализации
const (
	DefaultSize     = 1.0
	DefaultMaterial = "unknown"
	DefaultPriority = 0.5
	DefaultFeasible = false
	DefaultID       = 0
)

// WaypointKind тип точки маршрута
type WaypointKind string

const (
	WaypointStart  WaypointKind = "start"  // точка старта
	WaypointDebris WaypointKind = "debris" // объект мусора
	WaypointEnd    WaypointKind = "end"    // возврат на базу
)

// Waypoint — один шаг маршрута
type Waypoint struct {
	Kind     WaypointKind
	Position Position
	Debris   *Debris // только для WaypointDebris
}

// DebrisMetadata — описание объекта для отрисовки, без пропусков
type DebrisMetadata struct {
	Position Position
	Size     float64
	Material string
	Priority float64
	Feasible bool
	ID       int
}

// Visualization — плоское представление маршрута для отрисовки
type Visualization struct {
	Points      []Position
	Connections [][2]int
	Metadata    []DebrisMetadata
}

// PlanResult хранит построенный маршрут и его оценки.
type PlanResult struct {
	Path            []Waypoint
	TotalDistance   float64
	EstimatedTime   float64
	FuelConsumption float64
	Visualization   Visualization
}
