package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-api/internal/engine"
	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/testutils/builders"
)

type EngineTestSuite struct {
	suite.Suite
	engine engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	var err error
	s.engine, err = engine.New(&engine.Config{})
	s.Require().NoError(err)
}

// requireValidPath checks the structural path invariants: endpoints match,
// every consecutive pair is a legal step, and the engine's cost agrees with
// summing the steps.
func (s *EngineTestSuite) requireValidPath(m *entities.GameMap, path []entities.Position, start, end entities.Position) {
	s.Require().NotEmpty(path)
	s.Equal(start, path[0])
	s.Equal(end, path[len(path)-1])

	total := 0
	for i := 1; i < len(path); i++ {
		s.Require().True(path[i-1].IsAdjacentTo(path[i]),
			"path step %v -> %v is not 8-adjacent", path[i-1], path[i])
		s.Require().True(m.CanMoveBetween(path[i-1], path[i]))
		total += m.GetMovementCost(path[i-1], path[i])
	}
	s.Equal(total, s.engine.CalculatePathCost(m, path))
}

func (s *EngineTestSuite) TestFindPathTrivial() {
	m := builders.NewMapBuilder().Build()
	start := entities.NewPosition(3, 3)

	path := s.engine.FindPath(m, start, start)
	s.Equal([]entities.Position{start}, path)
	s.Zero(s.engine.CalculatePathCost(m, path))
}

func (s *EngineTestSuite) TestFindPathStraightLine() {
	m := builders.NewMapBuilder().Build()
	start := entities.NewPosition(0, 0)
	end := entities.NewPosition(9, 9)

	path := s.engine.FindPath(m, start, end)
	s.requireValidPath(m, path, start, end)

	// On uniform grass the diagonal is optimal: 9 steps at 100 each.
	s.Len(path, 10)
	s.Equal(900, s.engine.CalculatePathCost(m, path))
}

func (s *EngineTestSuite) TestFindPathDegenerateInputs() {
	m := builders.NewMapBuilder().Build()
	inBounds := entities.NewPosition(1, 1)

	s.Nil(s.engine.FindPath(nil, inBounds, inBounds))
	s.Nil(s.engine.FindPath(m, entities.NewPosition(-1, 0), inBounds))
	s.Nil(s.engine.FindPath(m, inBounds, entities.NewPosition(10, 10)))
}

func (s *EngineTestSuite) TestFindPathImpassableGoal() {
	m := builders.NewMapBuilder().
		WithTerrain(entities.NewPosition(5, 5), entities.TerrainRock).
		Build()

	s.Nil(s.engine.FindPath(m, entities.NewPosition(0, 0), entities.NewPosition(5, 5)))
}

func (s *EngineTestSuite) TestFindPathWalledOffGoal() {
	// Goal in the corner behind a full rock wall.
	m := builders.NewMapBuilder().
		WithTerrainRect(entities.NewPosition(0, 2), entities.NewPosition(2, 2), entities.TerrainRock).
		WithTerrainRect(entities.NewPosition(2, 0), entities.NewPosition(2, 1), entities.TerrainRock).
		Build()

	s.Nil(s.engine.FindPath(m, entities.NewPosition(9, 9), entities.NewPosition(0, 0)))
}

func (s *EngineTestSuite) TestFindPathDetoursAroundWall() {
	// Vertical rock wall with a gap at the bottom.
	m := builders.NewMapBuilder().
		WithTerrainRect(entities.NewPosition(5, 0), entities.NewPosition(5, 8), entities.TerrainRock).
		Build()
	start := entities.NewPosition(2, 4)
	end := entities.NewPosition(8, 4)

	path := s.engine.FindPath(m, start, end)
	s.requireValidPath(m, path, start, end)
	for _, pos := range path {
		tile, err := m.GetTile(pos)
		s.Require().NoError(err)
		s.True(tile.IsPassable())
	}
}

func (s *EngineTestSuite) TestFindPathPrefersCheapTerrain() {
	// A swamp belt across the direct line; going around over grass is
	// cheaper even though it is not geometrically shorter.
	m := builders.NewMapBuilder().
		WithSize(5, 3).
		WithTerrainRect(entities.NewPosition(1, 1), entities.NewPosition(3, 1), entities.TerrainSwamp).
		Build()
	start := entities.NewPosition(0, 1)
	end := entities.NewPosition(4, 1)

	path := s.engine.FindPath(m, start, end)
	s.requireValidPath(m, path, start, end)
	s.Equal(400, s.engine.CalculatePathCost(m, path), "detour over grass beats 3 swamp steps")
}

func (s *EngineTestSuite) TestFindPathAvoidsBlockedTiles() {
	m := builders.NewMapBuilder().
		WithObject(entities.NewMineObject(entities.MineObjectConfig{
			Position: entities.NewPosition(5, 5),
			Resource: entities.ResourceGold,
		})).
		Build()

	path := s.engine.FindPath(m, entities.NewPosition(4, 4), entities.NewPosition(6, 6))
	s.requireValidPath(m, path, entities.NewPosition(4, 4), entities.NewPosition(6, 6))
	s.NotContains(path, entities.NewPosition(5, 5))
}

func (s *EngineTestSuite) TestFindPathDeterministic() {
	m := builders.NewMapBuilder().
		WithSize(20, 20).
		WithTerrainRect(entities.NewPosition(4, 4), entities.NewPosition(8, 8), entities.TerrainSwamp).
		Build()
	start := entities.NewPosition(0, 0)
	end := entities.NewPosition(19, 19)

	first := s.engine.FindPath(m, start, end)
	for i := 0; i < 5; i++ {
		s.Equal(first, s.engine.FindPath(m, start, end), "tie-breaking keeps path selection reproducible")
	}
}

func (s *EngineTestSuite) TestCalculatePathCost() {
	m := builders.NewMapBuilder().Build()

	s.Zero(s.engine.CalculatePathCost(m, nil))
	s.Zero(s.engine.CalculatePathCost(m, []entities.Position{{X: 1, Y: 1}}))
	s.Zero(s.engine.CalculatePathCost(nil, []entities.Position{{X: 0, Y: 0}, {X: 0, Y: 1}}))

	path := []entities.Position{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	s.Equal(200, s.engine.CalculatePathCost(m, path))

	// An illegal jump prices at the sentinel.
	broken := []entities.Position{{X: 0, Y: 0}, {X: 5, Y: 5}}
	s.GreaterOrEqual(s.engine.CalculatePathCost(m, broken), entities.ImpassableCost)
}

func (s *EngineTestSuite) TestGetReachablePositionsBudget() {
	m := builders.NewMapBuilder().WithSize(9, 9).Build()
	start := entities.NewPosition(4, 4)

	// One full step of budget reaches exactly the 8 neighbors.
	reachable := s.engine.GetReachablePositions(m, start, 100)
	s.Len(reachable, 8)
	s.NotContains(reachable, start, "start is never part of the result")

	// Two steps reach the 5x5 block minus the start.
	reachable = s.engine.GetReachablePositions(m, start, 200)
	s.Len(reachable, 24)
	for _, pos := range reachable {
		s.LessOrEqual(start.ChebyshevDistanceTo(pos), 2)
	}
}

func (s *EngineTestSuite) TestGetReachablePositionsRespectsTerrainCost() {
	m := builders.NewMapBuilder().
		WithSize(3, 1).
		WithTerrain(entities.NewPosition(1, 0), entities.TerrainSwamp).
		Build()
	start := entities.NewPosition(0, 0)

	// 150 points cannot enter the 175-cost swamp.
	s.Empty(s.engine.GetReachablePositions(m, start, 150))

	// 175 enters the swamp but cannot continue to the far grass.
	reachable := s.engine.GetReachablePositions(m, start, 175)
	s.Equal([]entities.Position{{X: 1, Y: 0}}, reachable)

	// 275 crosses the belt.
	reachable = s.engine.GetReachablePositions(m, start, 275)
	s.Len(reachable, 2)
}

func (s *EngineTestSuite) TestGetReachablePositionsExcludesBlockedAndImpassable() {
	m := builders.NewMapBuilder().
		WithTerrain(entities.NewPosition(5, 4), entities.TerrainRock).
		WithObject(entities.NewMineObject(entities.MineObjectConfig{
			Position: entities.NewPosition(4, 5),
			Resource: entities.ResourceOre,
		})).
		Build()

	reachable := s.engine.GetReachablePositions(m, entities.NewPosition(4, 4), 1000)
	s.NotContains(reachable, entities.NewPosition(5, 4))
	s.NotContains(reachable, entities.NewPosition(4, 5))
}

func (s *EngineTestSuite) TestGetReachablePositionsDegenerateInputs() {
	m := builders.NewMapBuilder().Build()
	start := entities.NewPosition(4, 4)

	s.Empty(s.engine.GetReachablePositions(nil, start, 500))
	s.Empty(s.engine.GetReachablePositions(m, entities.NewPosition(99, 0), 500))
	s.Empty(s.engine.GetReachablePositions(m, start, 0))
	s.Empty(s.engine.GetReachablePositions(m, start, -100))
}
