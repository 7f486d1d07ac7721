package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debris-analyzer/internal/domain/entity"
)

func TestClassify_SmallBlueObject(t *testing.T) {
	d := classify(contourSample{
		Index: 2,
		Area:  400,
		Box:   entity.BoundingBox{X: 10, Y: 20, Width: 30, Height: 40},
		Mean:  [3]float64{200, 80, 90},
	})

	require.NotNil(t, d.ID)
	assert.Equal(t, 3, *d.ID)
	assert.Equal(t, entity.Position{25, 40, 0}, d.Position)
	assert.InDelta(t, 0.2, *d.Size, 1e-9)
	assert.Equal(t, "aluminum", *d.Material)
	assert.False(t, *d.Feasible)
	assert.InDelta(t, 0.46, *d.Confidence, 1e-9)
	assert.InDelta(t, 0.62, *d.Priority, 1e-9)
	assert.InDelta(t, 0.54, *d.EstimatedMass, 1e-9)
	assert.Equal(t, 660.0, *d.MeltingPoint)
	assert.InDelta(t, 200.0, *d.EstimatedValue, 1e-9)
	assert.Equal(t, entity.BoundingBox{X: 10, Y: 20, Width: 30, Height: 40}, *d.BBox)
}

func TestClassify_LargeRedObject(t *testing.T) {
	d := classify(contourSample{
		Index: 0,
		Area:  2500,
		Box:   entity.BoundingBox{X: 0, Y: 0, Width: 50, Height: 50},
		Mean:  [3]float64{40, 60, 220},
	})

	assert.Equal(t, "steel", *d.Material)
	assert.InDelta(t, 0.5, *d.Size, 1e-9)
	assert.True(t, *d.Feasible)
	assert.InDelta(t, 0.95, *d.Confidence, 1e-9)
	assert.InDelta(t, 0.95, *d.Priority, 1e-9)
	assert.Equal(t, 1370.0, *d.MeltingPoint)
}

func TestClassify_SizeIsClamped(t *testing.T) {
	tiny := classify(contourSample{Area: 1, Box: entity.BoundingBox{Width: 1, Height: 1}})
	assert.Equal(t, 0.1, *tiny.Size)

	huge := classify(contourSample{Area: 4e6, Box: entity.BoundingBox{Width: 2000, Height: 2000}})
	assert.Equal(t, 10.0, *huge.Size)
	assert.False(t, *huge.Feasible)
}

func TestMaterialFor(t *testing.T) {
	assert.Equal(t, "aluminum", materialFor([3]float64{151, 200, 200}))
	assert.Equal(t, "steel", materialFor([3]float64{100, 0, 151}))
	assert.Equal(t, "composite", materialFor([3]float64{150, 150, 150}))
}
