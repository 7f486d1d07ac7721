package entity

import "math"

// Position — точка в координатах сцены (x, y, z)
type Position [3]float64

// Distance возвращает евклидово расстояние до другой точки
func (p Position) Distance(other Position) float64 {
	var sum float64
	for i := range p {
		d := p[i] - other[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// IsFinite сообщает, что все компоненты — конечные числа
func (p Position) IsFinite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
