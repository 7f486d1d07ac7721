//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"debris-analyzer/internal/domain/entity"
	"debris-analyzer/internal/domain/port"
)

type GoCVDetector struct {
	MinContourArea float64
	CannyLow       float32
	CannyHigh      float32
	SuppressNested bool
}

// NewGoCVDetector создаёт детектор с минимальной площадью контура.
func NewGoCVDetector(minContourArea float64) *GoCVDetector {
	if minContourArea <= 0 {
		minContourArea = DefaultMinContourArea
	}
	return &GoCVDetector{
		MinContourArea: minContourArea,
		CannyLow:       50,
		CannyHigh:      150,
	}
}

// Detect ищет на изображении контуры, похожие на объекты мусора.
func (d *GoCVDetector) Detect(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, d.CannyLow, d.CannyHigh)

	contours := gocv.FindContours(edges, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	debris := make([]entity.Debris, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := contours.At(i)
		area := gocv.ContourArea(c)
		if area <= d.MinContourArea {
			continue
		}

		rect := gocv.BoundingRect(c)
		if rect.Empty() {
			continue
		}

		debris = append(debris, classify(contourSample{
			Index: i,
			Area:  area,
			Box: entity.BoundingBox{
				X:      rect.Min.X,
				Y:      rect.Min.Y,
				Width:  rect.Dx(),
				Height: rect.Dy(),
			},
			Mean: meanColor(mat, rect),
		}))
	}

	if d.SuppressNested {
		debris = SuppressNested(debris)
	}

	return &entity.AnalysisResult{
		Debris: debris,
		Metadata: entity.AnalysisMetadata{
			ImageSize: [2]int{mat.Rows(), mat.Cols()},
		},
	}, nil
}

// Highlight рисует прямоугольники вокруг объектов: доступные зелёным, остальные оранжевым.
func (d *GoCVDetector) Highlight(imageData []byte, debris []entity.Debris) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	green := color.RGBA{G: 255, A: 255}
	orange := color.RGBA{R: 255, G: 170, A: 255}
	for _, item := range debris {
		if item.BBox == nil {
			continue
		}
		rect := image.Rect(item.BBox.X, item.BBox.Y, item.BBox.X+item.BBox.Width, item.BBox.Y+item.BBox.Height)
		c := orange
		if item.IsFeasible() {
			c = green
		}
		gocv.Rectangle(&mat, rect, c, 2)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert mat: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), entity.ErrImageDecode
}

// meanColor считает средний цвет (B, G, R) внутри прямоугольника.
func meanColor(mat gocv.Mat, rect image.Rectangle) [3]float64 {
	roi := mat.Region(rect)
	defer roi.Close()

	mean := roi.Mean()
	return [3]float64{mean.Val1, mean.Val2, mean.Val3}
}

// Проверка реализации интерфейса
var _ port.DebrisDetector = (*GoCVDetector)(nil)
