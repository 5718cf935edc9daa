package scenarios_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	clock     *clock.Fixed
	repo      scenarios.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.miniRedis = mr
	s.clock = clock.NewFixed(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))

	repo, err := scenarios.NewRedis(&scenarios.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) newScenario(id, name string) *entities.Scenario {
	sc := entities.DefaultScenario()
	sc.ID = id
	sc.Name = name
	return sc
}

func (s *RedisRepositoryTestSuite) TestSaveCreatesThenReplaces() {
	out, err := s.repo.Save(s.ctx, scenarios.SaveInput{Scenario: s.newScenario("scn_1", "Ogre")})
	s.Require().NoError(err)
	s.True(out.Created)
	createdAt := out.Scenario.CreatedAt
	s.Equal(s.clock.Now().Unix(), createdAt)

	s.clock.Advance(time.Hour)
	replacement := s.newScenario("scn_1", "Ogre in cover")
	replacement.Cover = 2

	out, err = s.repo.Save(s.ctx, scenarios.SaveInput{Scenario: replacement})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal(createdAt, out.Scenario.CreatedAt)
	s.Equal(s.clock.Now().Unix(), out.Scenario.UpdatedAt)

	got, err := s.repo.Get(s.ctx, scenarios.GetInput{ID: "scn_1"})
	s.Require().NoError(err)
	s.Equal("Ogre in cover", got.Scenario.Name)
	s.Equal(18, got.Scenario.EffectiveAC())
	s.Equal(entities.PolicyAuto, got.Scenario.Policies.GreatWeaponMaster)
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, scenarios.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, scenarios.SaveInput{Scenario: s.newScenario("", "No ID")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, scenarios.GetInput{ID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, scenarios.SaveInput{Scenario: s.newScenario("scn_1", "Ogre")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, scenarios.DeleteInput{ID: "scn_1"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("scenario:scn_1"))

	_, err = s.repo.Delete(s.ctx, scenarios.DeleteInput{ID: "scn_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListSortedByName() {
	for id, name := range map[string]string{"scn_1": "Wyvern", "scn_2": "Goblin", "scn_3": "Lich"} {
		_, err := s.repo.Save(s.ctx, scenarios.SaveInput{Scenario: s.newScenario(id, name)})
		s.Require().NoError(err)
	}
	s.miniRedis.Del("scenario:scn_3")

	out, err := s.repo.List(s.ctx, scenarios.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Scenarios, 2)
	s.Equal("Goblin", out.Scenarios[0].Name)
	s.Equal("Wyvern", out.Scenarios[1].Name)
}
