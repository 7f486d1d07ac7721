package httpapi

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"debris-analyzer/internal/domain/entity"
)

// Coordinates — координаты в формате API. Элементы хранятся указателями,
// чтобы отличить null от нуля.
type Coordinates []*float64

// NewCoordinates переводит позицию в формат API
func NewCoordinates(p entity.Position) Coordinates {
	return Coordinates{&p[0], &p[1], &p[2]}
}

// DebrisJSON — объект мусора в формате API.
// Поля, которые сервис не разбирает, сохраняются в Extra и возвращаются без изменений.
type DebrisJSON struct {
	ID             *float64         `json:"id,omitempty"`
	Position       Coordinates      `json:"position"`
	Size           *float64         `json:"size,omitempty"`
	Material       *string          `json:"material,omitempty"`
	Feasible       *bool            `json:"feasible,omitempty"`
	Confidence     *float64         `json:"confidence,omitempty"`
	Priority       *float64         `json:"priority,omitempty"`
	EstimatedMass  *float64         `json:"estimated_mass,omitempty"`
	MeltingPoint   *float64         `json:"melting_point,omitempty"`
	EstimatedValue *float64         `json:"estimated_value,omitempty"`
	BBox           *BoundingBoxJSON `json:"bbox,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var knownDebrisKeys = []string{
	"id", "position", "size", "material", "feasible", "confidence", "priority",
	"estimated_mass", "melting_point", "estimated_value", "bbox",
}

func isKnownDebrisKey(key string) bool {
	for _, k := range knownDebrisKeys {
		// encoding/json сопоставляет имена полей без учёта регистра
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// UnmarshalJSON разбирает известные поля и откладывает остальные в Extra
func (d *DebrisJSON) UnmarshalJSON(data []byte) error {
	type plain DebrisJSON
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		if isKnownDebrisKey(key) {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[key] = raw
	}

	*d = DebrisJSON(p)
	return nil
}

// MarshalJSON добавляет к известным полям сохранённые Extra
func (d DebrisJSON) MarshalJSON() ([]byte, error) {
	type plain DebrisJSON
	data, err := json.Marshal(plain(d))
	if err != nil || len(d.Extra) == 0 {
		return data, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for key, raw := range d.Extra {
		if _, ok := fields[key]; !ok {
			fields[key] = raw
		}
	}
	return json.Marshal(fields)
}

type BoundingBoxJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PlanRequest — тело POST /api/plan-path
type PlanRequest struct {
	DebrisList    []DebrisJSON `json:"debris_list"`
	StartPosition Coordinates  `json:"start_position,omitempty"`
}

// ToDomain проверяет координаты и переводит запрос в доменные типы.
// Отсутствующая точка старта возвращается как nil.
func (r PlanRequest) ToDomain() (*entity.Position, []entity.Debris, error) {
	var start *entity.Position
	if r.StartPosition != nil {
		p, err := toPosition("start_position", r.StartPosition)
		if err != nil {
			return nil, nil, err
		}
		start = &p
	}

	debris := make([]entity.Debris, 0, len(r.DebrisList))
	for i, item := range r.DebrisList {
		d, err := item.toDomain(fmt.Sprintf("debris_list[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		debris = append(debris, d)
	}

	return start, debris, nil
}

func (d DebrisJSON) toDomain(field string) (entity.Debris, error) {
	if d.Position == nil {
		return entity.Debris{}, &entity.InputError{Field: field + ".position", Reason: "position is required"}
	}
	pos, err := toPosition(field+".position", d.Position)
	if err != nil {
		return entity.Debris{}, err
	}

	id, err := toID(field+".id", d.ID)
	if err != nil {
		return entity.Debris{}, err
	}

	out := entity.Debris{
		ID:             id,
		Position:       pos,
		Size:           d.Size,
		Material:       d.Material,
		Feasible:       d.Feasible,
		Priority:       d.Priority,
		Confidence:     d.Confidence,
		EstimatedMass:  d.EstimatedMass,
		MeltingPoint:   d.MeltingPoint,
		EstimatedValue: d.EstimatedValue,
		Attributes:     d.Extra,
	}
	if d.BBox != nil {
		out.BBox = &entity.BoundingBox{X: d.BBox.X, Y: d.BBox.Y, Width: d.BBox.Width, Height: d.BBox.Height}
	}
	return out, nil
}

func toPosition(field string, v Coordinates) (entity.Position, error) {
	if len(v) != 3 {
		return entity.Position{}, &entity.InputError{
			Field:  field,
			Reason: fmt.Sprintf("expected 3 components, got %d", len(v)),
		}
	}
	var p entity.Position
	for i, c := range v {
		if c == nil {
			return entity.Position{}, &entity.InputError{
				Field:  field,
				Reason: fmt.Sprintf("component %d must be a number", i),
			}
		}
		p[i] = *c
	}
	return p, nil
}

// toID принимает идентификатор, записанный целым числом, в том числе в виде 1.0
func toID(field string, v *float64) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if *v != math.Trunc(*v) || math.Abs(*v) > math.MaxInt32 {
		return nil, &entity.InputError{Field: field, Reason: "must be an integer"}
	}
	id := int(*v)
	return &id, nil
}

func debrisToJSON(d entity.Debris) DebrisJSON {
	out := DebrisJSON{
		Position:       NewCoordinates(d.Position),
		Size:           d.Size,
		Material:       d.Material,
		Feasible:       d.Feasible,
		Confidence:     d.Confidence,
		Priority:       d.Priority,
		EstimatedMass:  d.EstimatedMass,
		MeltingPoint:   d.MeltingPoint,
		EstimatedValue: d.EstimatedValue,
		Extra:          d.Attributes,
	}
	if d.ID != nil {
		id := float64(*d.ID)
		out.ID = &id
	}
	if d.BBox != nil {
		out.BBox = &BoundingBoxJSON{X: d.BBox.X, Y: d.BBox.Y, Width: d.BBox.Width, Height: d.BBox.Height}
	}
	return out
}

type WaypointJSON struct {
	Position   entity.Position `json:"position"`
	Type       string          `json:"type"`
	DebrisData *DebrisJSON     `json:"debris_data,omitempty"`
}

type MetadataJSON struct {
	Position entity.Position `json:"position"`
	Size     float64         `json:"size"`
	Material string          `json:"material"`
	Priority float64         `json:"priority"`
	Feasible bool            `json:"feasible"`
	DebrisID int             `json:"debris_id"`
}

type VisualizationJSON struct {
	Points      []entity.Position `json:"points"`
	Connections [][2]int          `json:"connections"`
	Metadata    []MetadataJSON    `json:"metadata"`
}

// PlanResponse — ответ POST /api/plan-path
type PlanResponse struct {
	Path            []WaypointJSON    `json:"path"`
	TotalDistance   float64           `json:"total_distance"`
	EstimatedTime   float64           `json:"estimated_time"`
	FuelConsumption float64           `json:"fuel_consumption"`
	Visualization   VisualizationJSON `json:"visualization"`
}

// NewPlanResponse переводит результат планирования в формат API
func NewPlanResponse(res *entity.PlanResult) PlanResponse {
	path := make([]WaypointJSON, 0, len(res.Path))
	for _, wp := range res.Path {
		item := WaypointJSON{Position: wp.Position, Type: string(wp.Kind)}
		if wp.Debris != nil {
			data := debrisToJSON(*wp.Debris)
			item.DebrisData = &data
		}
		path = append(path, item)
	}

	metadata := make([]MetadataJSON, 0, len(res.Visualization.Metadata))
	for _, m := range res.Visualization.Metadata {
		metadata = append(metadata, MetadataJSON{
			Position: m.Position,
			Size:     m.Size,
			Material: m.Material,
			Priority: m.Priority,
			Feasible: m.Feasible,
			DebrisID: m.ID,
		})
	}

	return PlanResponse{
		Path:            path,
		TotalDistance:   res.TotalDistance,
		EstimatedTime:   res.EstimatedTime,
		FuelConsumption: res.FuelConsumption,
		Visualization: VisualizationJSON{
			Points:      res.Visualization.Points,
			Connections: res.Visualization.Connections,
			Metadata:    metadata,
		},
	}
}

type AnalysisMetadataJSON struct {
	TotalObjects    int     `json:"total_objects"`
	FeasibleObjects int     `json:"feasible_objects"`
	AnalysisTime    float64 `json:"analysis_time"`
	ImageSize       [2]int  `json:"image_size"`
}

// AnalyzeResponse — ответ POST /api/analyze
type AnalyzeResponse struct {
	DebrisObjects []DebrisJSON         `json:"debris_objects"`
	Metadata      AnalysisMetadataJSON `json:"metadata"`
}

// NewAnalyzeResponse переводит результат анализа в формат API
func NewAnalyzeResponse(res *entity.AnalysisResult) AnalyzeResponse {
	objects := make([]DebrisJSON, 0, len(res.Debris))
	for _, d := range res.Debris {
		objects = append(objects, debrisToJSON(d))
	}
	return AnalyzeResponse{
		DebrisObjects: objects,
		Metadata: AnalysisMetadataJSON{
			TotalObjects:    res.Metadata.TotalObjects,
			FeasibleObjects: res.Metadata.FeasibleObjects,
			AnalysisTime:    res.Metadata.AnalysisTime,
			ImageSize:       res.Metadata.ImageSize,
		},
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
