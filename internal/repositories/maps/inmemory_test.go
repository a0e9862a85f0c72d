package maps_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-api/internal/errors"
	"github.com/KirkDiggler/tactics-api/internal/pkg/clock"
	"github.com/KirkDiggler/tactics-api/internal/pkg/idgen"
	"github.com/KirkDiggler/tactics-api/internal/repositories/maps"
	"github.com/KirkDiggler/tactics-api/internal/testutils/builders"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *maps.InMemoryRepository
	now  time.Time
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var err error
	s.repo, err = maps.NewInMemory(&maps.InMemoryConfig{
		Clock:       clock.NewFixed(s.now),
		IDGenerator: idgen.NewSequential("map"),
	})
	s.Require().NoError(err)
}

func (s *InMemoryRepositoryTestSuite) newSnapshot() *maps.Snapshot {
	snapshot, err := maps.NewSnapshot(builders.NewMapBuilder().Build())
	s.Require().NoError(err)
	return snapshot
}

func (s *InMemoryRepositoryTestSuite) TestSaveAssignsIDAndTimestamps() {
	output, err := s.repo.Save(context.Background(), &maps.SaveInput{Snapshot: s.newSnapshot()})
	s.Require().NoError(err)
	s.Equal("map_1", output.Snapshot.ID)
	s.Equal(s.now, output.Snapshot.CreatedAt)
	s.Equal(s.now, output.Snapshot.UpdatedAt)
}

func (s *InMemoryRepositoryTestSuite) TestSaveGetRoundTrip() {
	saved, err := s.repo.Save(context.Background(), &maps.SaveInput{Snapshot: s.newSnapshot()})
	s.Require().NoError(err)

	got, err := s.repo.Get(context.Background(), &maps.GetInput{SnapshotID: saved.Snapshot.ID})
	s.Require().NoError(err)
	s.Equal(saved.Snapshot.ID, got.Snapshot.ID)
	s.Equal(10, got.Snapshot.Width)
}

func (s *InMemoryRepositoryTestSuite) TestGetUnknownID() {
	_, err := s.repo.Get(context.Background(), &maps.GetInput{SnapshotID: "map_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	saved, err := s.repo.Save(context.Background(), &maps.SaveInput{Snapshot: s.newSnapshot()})
	s.Require().NoError(err)

	output, err := s.repo.Delete(context.Background(), &maps.DeleteInput{SnapshotID: saved.Snapshot.ID})
	s.Require().NoError(err)
	s.True(output.Success)

	_, err = s.repo.Get(context.Background(), &maps.GetInput{SnapshotID: saved.Snapshot.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(context.Background(), &maps.DeleteInput{SnapshotID: saved.Snapshot.ID})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestList() {
	list, err := s.repo.List(context.Background(), &maps.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.SnapshotIDs)

	_, err = s.repo.Save(context.Background(), &maps.SaveInput{Snapshot: s.newSnapshot()})
	s.Require().NoError(err)
	_, err = s.repo.Save(context.Background(), &maps.SaveInput{Snapshot: s.newSnapshot()})
	s.Require().NoError(err)

	list, err = s.repo.List(context.Background(), &maps.ListInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"map_1", "map_2"}, list.SnapshotIDs)
}

func (s *InMemoryRepositoryTestSuite) TestInvalidInputs() {
	_, err := s.repo.Save(context.Background(), nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(context.Background(), &maps.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = maps.NewInMemory(&maps.InMemoryConfig{})
	s.True(errors.IsInvalidArgument(err))
}
