package route

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"debris-analyzer/internal/domain/entity"
)

func debrisAt(id int, x, y, z float64) entity.Debris {
	return entity.Debris{ID: &id, Position: entity.Position{x, y, z}}
}

func visitedIDs(t *testing.T, res *entity.PlanResult) []int {
	t.Helper()
	ids := make([]int, 0, len(res.Path))
	for _, wp := range res.Path[1 : len(res.Path)-1] {
		require.Equal(t, entity.WaypointDebris, wp.Kind)
		require.NotNil(t, wp.Debris)
		require.NotNil(t, wp.Debris.ID)
		ids = append(ids, *wp.Debris.ID)
	}
	return ids
}

func TestPlan_SingleTargetThereAndBack(t *testing.T) {
	res, err := Plan(DefaultStart, []entity.Debris{debrisAt(1, 10, 0, 0)})
	require.NoError(t, err)

	require.InDelta(t, 20.0, res.TotalDistance, 1e-9)
	require.InDelta(t, 0.4, res.EstimatedTime, 1e-9)
	require.InDelta(t, 2.0, res.FuelConsumption, 1e-9)
	require.Len(t, res.Path, 3)
}

func TestPlan_CoincidentTargetsKeepInputOrder(t *testing.T) {
	res, err := Plan(DefaultStart, []entity.Debris{
		debrisAt(1, 3, 4, 0),
		debrisAt(2, 3, 4, 0),
	})
	require.NoError(t, err)

	require.InDelta(t, 10.0, res.TotalDistance, 1e-9)
	require.Equal(t, []int{1, 2}, visitedIDs(t, res))
}

func TestPlan_EmptyTargets(t *testing.T) {
	res, err := Plan(DefaultStart, nil)
	require.Nil(t, res)
	require.True(t, errors.Is(err, entity.ErrInvalidInput))

	var inputErr *entity.InputError
	require.True(t, errors.As(err, &inputErr))
	require.Equal(t, "debris_list", inputErr.Field)
}

func TestPlan_TieBreakFirstSeen(t *testing.T) {
	targets := []entity.Debris{
		debrisAt(1, 1, 0, 0),
		debrisAt(2, -1, 0, 0),
	}

	res, err := Plan(DefaultStart, targets)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, visitedIDs(t, res))
	require.InDelta(t, 4.0, res.TotalDistance, 1e-9)

	reversed := []entity.Debris{targets[1], targets[0]}
	res, err = Plan(DefaultStart, reversed)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, visitedIDs(t, res))
}

func TestPlan_TieBreakAfterRemoval(t *testing.T) {
	// После первого шага оба оставшихся объекта на расстоянии 2.
	res, err := Plan(DefaultStart, []entity.Debris{
		debrisAt(1, 0, 0, 1),
		debrisAt(2, 2, 0, 1),
		debrisAt(3, -2, 0, 1),
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, visitedIDs(t, res))
	require.InDelta(t, 1+2+4+math.Sqrt(5), res.TotalDistance, 1e-9)
}

func TestPlan_GreedyOrder(t *testing.T) {
	res, err := Plan(entity.Position{0, 0, 0}, []entity.Debris{
		debrisAt(1, 10, 0, 0),
		debrisAt(2, 1, 0, 0),
		debrisAt(3, 5, 0, 0),
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1}, visitedIDs(t, res))
	require.InDelta(t, 20.0, res.TotalDistance, 1e-9)
}

func TestPlan_ClosedTourAndBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	targets := make([]entity.Debris, 50)
	for i := range targets {
		targets[i] = debrisAt(i+1, rng.Float64()*500, rng.Float64()*500, rng.Float64()*10)
	}
	start := entity.Position{250, 250, 0}

	res, err := Plan(start, targets)
	require.NoError(t, err)

	require.Len(t, res.Path, len(targets)+2)
	require.Equal(t, entity.WaypointStart, res.Path[0].Kind)
	require.Equal(t, start, res.Path[0].Position)
	require.Equal(t, entity.WaypointEnd, res.Path[len(res.Path)-1].Kind)
	require.Equal(t, start, res.Path[len(res.Path)-1].Position)

	seen := make(map[int]int)
	for _, id := range visitedIDs(t, res) {
		seen[id]++
	}
	require.Len(t, seen, len(targets))
	for id, n := range seen {
		require.Equalf(t, 1, n, "debris %d visited %d times", id, n)
	}

	var sum float64
	for i := 1; i < len(res.Path); i++ {
		sum += res.Path[i-1].Position.Distance(res.Path[i].Position)
	}
	require.InDelta(t, sum, res.TotalDistance, 1e-9)
	require.GreaterOrEqual(t, res.TotalDistance, 0.0)
}

func TestPlan_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	targets := make([]entity.Debris, 30)
	for i := range targets {
		// Сетка с шагом 1 даёт много равных расстояний.
		targets[i] = debrisAt(i+1, float64(rng.Intn(5)), float64(rng.Intn(5)), 0)
	}

	first, err := Plan(DefaultStart, targets)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Plan(DefaultStart, targets)
		require.NoError(t, err)
		require.Equal(t, visitedIDs(t, first), visitedIDs(t, again))
		require.Equal(t, first.TotalDistance, again.TotalDistance)
	}
}

func TestPlan_DerivedEstimatesAreLinear(t *testing.T) {
	res, err := Plan(entity.Position{1, 1, 1}, []entity.Debris{
		debrisAt(1, 4, 5, 1),
		debrisAt(2, -3, 2, 7),
		debrisAt(3, 0, 0, 0),
	})
	require.NoError(t, err)
	require.InDelta(t, res.TotalDistance*0.02, res.EstimatedTime, 1e-9)
	require.InDelta(t, res.TotalDistance*0.1, res.FuelConsumption, 1e-9)
}

func TestPlan_DoesNotMutateInput(t *testing.T) {
	targets := []entity.Debris{
		debrisAt(1, 9, 0, 0),
		debrisAt(2, 1, 0, 0),
		debrisAt(3, 4, 0, 0),
	}
	snapshot := make([]entity.Debris, len(targets))
	copy(snapshot, targets)

	res, err := Plan(DefaultStart, targets)
	require.NoError(t, err)
	require.Equal(t, snapshot, targets)

	for _, wp := range res.Path[1 : len(res.Path)-1] {
		for i := range targets {
			require.NotSame(t, &targets[i], wp.Debris)
		}
	}
}

func TestPlan_RejectsNonFinitePositions(t *testing.T) {
	_, err := Plan(entity.Position{math.NaN(), 0, 0}, []entity.Debris{debrisAt(1, 1, 1, 1)})
	var inputErr *entity.InputError
	require.True(t, errors.As(err, &inputErr))
	require.Equal(t, "start_position", inputErr.Field)

	_, err = Plan(DefaultStart, []entity.Debris{
		debrisAt(1, 1, 1, 1),
		debrisAt(2, 0, math.Inf(1), 0),
	})
	require.True(t, errors.As(err, &inputErr))
	require.Equal(t, "debris_list[1].position", inputErr.Field)
}

func TestPlan_OverflowIsInternalError(t *testing.T) {
	res, err := Plan(DefaultStart, []entity.Debris{debrisAt(1, 1e308, 1e308, 0)})
	require.Nil(t, res)
	require.True(t, errors.Is(err, entity.ErrInternalComputation))
	require.False(t, errors.Is(err, entity.ErrInvalidInput))
}
