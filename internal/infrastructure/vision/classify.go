package vision

import (
	"math"

	"debris-analyzer/internal/domain/entity"
)

// Пороговые значения классификации объектов по контуру.
const (
	DefaultMinContourArea = 100.0

	pixelsToMeters   = 0.01
	minSize, maxSize = 0.1, 10.0
	minFeasibleSize  = 0.5
	maxFeasibleSize  = 5.0
	colorThreshold   = 150.0
	aluminumDensity  = 2.7
	valuePerMeter    = 1000.0
	aluminumMeltingC = 660.0
	otherMeltingC    = 1370.0
)

// contourSample — то, что детектор извлёк из одного контура
type contourSample struct {
	Index int                // номер контура в выдаче FindContours
	Area  float64            // площадь контура
	Box   entity.BoundingBox // описывающий прямоугольник
	Mean  [3]float64         // средний цвет области в порядке B, G, R
}

// classify превращает контур в описание объекта мусора.
func classify(s contourSample) entity.Debris {
	estimated := math.Sqrt(s.Area) * pixelsToMeters

	id := s.Index + 1
	cx, cy := s.Box.Center()
	size := math.Max(minSize, math.Min(maxSize, estimated))
	material := materialFor(s.Mean)
	feasible := estimated >= minFeasibleSize && estimated <= maxFeasibleSize
	confidence := math.Min(0.95, 0.3+(s.Area/1000)*0.4)
	priority := math.Min(0.95, 0.5+(s.Area/1000)*0.3)
	mass := estimated * aluminumDensity
	melting := otherMeltingC
	if material == "aluminum" {
		melting = aluminumMeltingC
	}
	value := estimated * valuePerMeter
	box := s.Box

	return entity.Debris{
		ID:             &id,
		Position:       entity.Position{float64(cx), float64(cy), 0},
		Size:           &size,
		Material:       &material,
		Feasible:       &feasible,
		Priority:       &priority,
		Confidence:     &confidence,
		EstimatedMass:  &mass,
		MeltingPoint:   &melting,
		EstimatedValue: &value,
		BBox:           &box,
	}
}

// materialFor грубо определяет материал по среднему цвету (BGR).
func materialFor(mean [3]float64) string {
	switch {
	case mean[0] > colorThreshold:
		return "aluminum"
	case mean[2] > colorThreshold:
		return "steel"
	default:
		return "composite"
	}
}
