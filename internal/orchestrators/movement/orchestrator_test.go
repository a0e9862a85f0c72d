package movement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/tactics-api/internal/engine/mock"
	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/errors"
	"github.com/KirkDiggler/tactics-api/internal/orchestrators/movement"
	"github.com/KirkDiggler/tactics-api/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *enginemock.MockEngine
	gameMap  *entities.GameMap
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.provider = enginemock.NewMockEngine(s.ctrl)
	s.gameMap = builders.NewMapBuilder().Build()
}

func (s *OrchestratorTestSuite) newService(withProvider bool) movement.Service {
	cfg := &movement.Config{}
	if withProvider {
		cfg.Provider = s.provider
	}
	svc, err := movement.NewOrchestrator(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestFindPathBuiltIn() {
	svc := s.newService(false)

	output, err := svc.FindPath(context.Background(), &movement.FindPathInput{
		Map:   s.gameMap,
		Start: entities.NewPosition(0, 0),
		End:   entities.NewPosition(3, 0),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Path, 4)
	s.Equal(entities.NewPosition(0, 0), output.Path[0])
	s.Equal(entities.NewPosition(3, 0), output.Path[3])
	s.Equal(300, output.Cost)
}

func (s *OrchestratorTestSuite) TestFindPathNilInput() {
	svc := s.newService(false)

	_, err := svc.FindPath(context.Background(), nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFindPathNilMapDegrades() {
	svc := s.newService(false)

	output, err := svc.FindPath(context.Background(), &movement.FindPathInput{
		Start: entities.NewPosition(0, 0),
		End:   entities.NewPosition(1, 1),
	})
	s.Require().NoError(err, "nil map is a speculative probe, not a caller error")
	s.Nil(output.Path)
	s.Zero(output.Cost)
}

func (s *OrchestratorTestSuite) TestFindPathUsesProviderResult() {
	svc := s.newService(true)
	providerPath := []entities.Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	s.provider.EXPECT().
		FindPath(s.gameMap, entities.NewPosition(0, 0), entities.NewPosition(2, 0)).
		Return(providerPath)

	output, err := svc.FindPath(context.Background(), &movement.FindPathInput{
		Map:   s.gameMap,
		Start: entities.NewPosition(0, 0),
		End:   entities.NewPosition(2, 0),
	})
	s.Require().NoError(err)
	s.Equal(providerPath, output.Path, "usable provider path is returned verbatim")
}

func (s *OrchestratorTestSuite) TestFindPathFallsBackWhenProviderHasNoPath() {
	svc := s.newService(true)

	s.provider.EXPECT().
		FindPath(s.gameMap, entities.NewPosition(0, 0), entities.NewPosition(2, 0)).
		Return(nil)

	output, err := svc.FindPath(context.Background(), &movement.FindPathInput{
		Map:   s.gameMap,
		Start: entities.NewPosition(0, 0),
		End:   entities.NewPosition(2, 0),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Path, 3, "built-in engine answers when the provider has nothing")
	s.Equal(200, output.Cost)
}

func (s *OrchestratorTestSuite) TestGetReachablePositionsFallback() {
	svc := s.newService(true)
	start := entities.NewPosition(5, 5)

	s.provider.EXPECT().
		GetReachablePositions(s.gameMap, start, 100).
		Return(nil)

	output, err := svc.GetReachablePositions(context.Background(), &movement.GetReachablePositionsInput{
		Map:            s.gameMap,
		Start:          start,
		MovementPoints: 100,
	})
	s.Require().NoError(err)
	s.Len(output.Positions, 8)
}

func (s *OrchestratorTestSuite) TestGetReachablePositionsUsesProviderResult() {
	svc := s.newService(true)
	start := entities.NewPosition(5, 5)
	providerSet := []entities.Position{{X: 5, Y: 6}}

	s.provider.EXPECT().
		GetReachablePositions(s.gameMap, start, 100).
		Return(providerSet)

	output, err := svc.GetReachablePositions(context.Background(), &movement.GetReachablePositionsInput{
		Map:            s.gameMap,
		Start:          start,
		MovementPoints: 100,
	})
	s.Require().NoError(err)
	s.Equal(providerSet, output.Positions)
}

func (s *OrchestratorTestSuite) TestCalculatePathCostFallbackOnNegative() {
	svc := s.newService(true)
	path := []entities.Position{{X: 0, Y: 0}, {X: 1, Y: 0}}

	s.provider.EXPECT().
		CalculatePathCost(s.gameMap, path).
		Return(-1)

	output, err := svc.CalculatePathCost(context.Background(), &movement.CalculatePathCostInput{
		Map:  s.gameMap,
		Path: path,
	})
	s.Require().NoError(err)
	s.Equal(100, output.Cost)
}

func (s *OrchestratorTestSuite) TestCanReachPosition() {
	svc := s.newService(false)

	testCases := []struct {
		name     string
		end      entities.Position
		points   int
		canReach bool
	}{
		{name: "within budget", end: entities.NewPosition(2, 2), points: 200, canReach: true},
		{name: "exactly on budget", end: entities.NewPosition(2, 2), points: 200, canReach: true},
		{name: "over budget", end: entities.NewPosition(5, 5), points: 200, canReach: false},
		{name: "zero budget same cell", end: entities.NewPosition(0, 0), points: 0, canReach: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := svc.CanReachPosition(context.Background(), &movement.CanReachPositionInput{
				Map:            s.gameMap,
				Start:          entities.NewPosition(0, 0),
				End:            tc.end,
				MovementPoints: tc.points,
			})
			s.Require().NoError(err)
			s.Equal(tc.canReach, output.CanReach)
		})
	}
}

func (s *OrchestratorTestSuite) TestCanReachPositionNoPath() {
	gameMap := builders.NewMapBuilder().
		WithTerrain(entities.NewPosition(1, 1), entities.TerrainRock).
		Build()
	svc := s.newService(false)

	output, err := svc.CanReachPosition(context.Background(), &movement.CanReachPositionInput{
		Map:            gameMap,
		Start:          entities.NewPosition(0, 0),
		End:            entities.NewPosition(1, 1),
		MovementPoints: 10000,
	})
	s.Require().NoError(err)
	s.False(output.CanReach)
	s.Nil(output.Path)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorNilConfig() {
	_, err := movement.NewOrchestrator(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
