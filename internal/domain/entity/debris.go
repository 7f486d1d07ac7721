package entity

import "encoding/json"

// BoundingBox представляет область изображения, в которой найден объект
type BoundingBox struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина области в пикселях
	Height int // высота области в пикселях
}

// Center возвращает координаты центра области
func (b BoundingBox) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Contains сообщает, что область other целиком лежит внутри b
func (b BoundingBox) Contains(other BoundingBox) bool {
	return other.X >= b.X && other.Y >= b.Y &&
		other.X+other.Width <= b.X+b.Width &&
		other.Y+other.Height <= b.Y+b.Height
}

// Debris — обнаруженный объект мусора, цель для сбора.
// Все поля, кроме позиции, необязательны: nil означает, что значение не передано.
type Debris struct {
	ID             *int
	Position       Position
	Size           *float64 // характерный размер
	Material       *string  // aluminum, steel, composite, ...
	Feasible       *bool    // можно ли забрать объект
	Priority       *float64 // важность в диапазоне [0, 1]
	Confidence     *float64
	EstimatedMass  *float64
	MeltingPoint   *float64
	EstimatedValue *float64
	BBox           *BoundingBox // область на исходном изображении

	// Attributes — прочие поля входной записи в исходном виде.
	// Планировщик их не читает и возвращает вместе с объектом.
	Attributes map[string]json.RawMessage
}

// IsFeasible возвращает признак доступности, отсутствующее значение считается false
func (d Debris) IsFeasible() bool {
	return d.Feasible != nil && *d.Feasible
}
