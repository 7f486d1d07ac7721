package vision

import (
	"github.com/dhconnelly/rtreego"

	"debris-analyzer/internal/domain/entity"
)

// boxEntry хранит прямоугольник объекта в R-дереве
type boxEntry struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *boxEntry) Bounds() rtreego.Rect {
	return e.rect
}

// SuppressNested убирает объекты, чья область целиком лежит внутри области
// другого объекта. Из одинаковых областей остаётся первая. Порядок сохраняется.
func SuppressNested(debris []entity.Debris) []entity.Debris {
	if len(debris) < 2 {
		return debris
	}

	tree := rtreego.NewTree(2, 25, 50)
	rects := make(map[int]rtreego.Rect, len(debris))
	for i, d := range debris {
		if d.BBox == nil {
			continue
		}
		rect, err := rtreego.NewRect(
			rtreego.Point{float64(d.BBox.X), float64(d.BBox.Y)},
			[]float64{float64(d.BBox.Width), float64(d.BBox.Height)},
		)
		if err != nil {
			// Вырожденные области не индексируем и не подавляем.
			continue
		}
		rects[i] = rect
		tree.Insert(&boxEntry{index: i, rect: rect})
	}

	kept := make([]entity.Debris, 0, len(debris))
	for i, d := range debris {
		rect, indexed := rects[i]
		if !indexed || !isNested(tree, debris, i, rect) {
			kept = append(kept, d)
		}
	}
	return kept
}

func isNested(tree *rtreego.Rtree, debris []entity.Debris, i int, rect rtreego.Rect) bool {
	inner := *debris[i].BBox
	for _, item := range tree.SearchIntersect(rect) {
		j := item.(*boxEntry).index
		if j == i {
			continue
		}
		outer := *debris[j].BBox
		if !outer.Contains(inner) {
			continue
		}
		if outer != inner || j < i {
			return true
		}
	}
	return false
}
