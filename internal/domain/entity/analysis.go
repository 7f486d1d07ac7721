package entity

// AnalysisMetadata сводка по анализу изображения.
type AnalysisMetadata struct {
	TotalObjects    int
	FeasibleObjects int
	AnalysisTime    float64 // секунды
	ImageSize       [2]int  // высота, ширина
}

// AnalysisResult хранит итог анализа изображения.
type AnalysisResult struct {
	Debris   []Debris         // найденные объекты
	Metadata AnalysisMetadata // сводка
}

// Feasible возвращает объекты, которые можно забрать
func (r *AnalysisResult) Feasible() []Debris {
	out := make([]Debris, 0, len(r.Debris))
	for _, d := range r.Debris {
		if d.IsFeasible() {
			out = append(out, d)
		}
	}
	return out
}
