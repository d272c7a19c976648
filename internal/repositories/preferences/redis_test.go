package preferences_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/dmtoolbox/inserts-api/internal/entities/dnd5e"
	"github.com/dmtoolbox/inserts-api/internal/errors"
	"github.com/dmtoolbox/inserts-api/internal/repositories/preferences"
	"github.com/dmtoolbox/inserts-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    preferences.Repository
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := preferences.NewRedis(&preferences.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestGetReturnsDefaultsWhenEmpty() {
	out, err := s.repo.Get(s.ctx, preferences.GetInput{})
	s.Require().NoError(err)
	s.Equal(dnd5e.DefaultPreferences(), out.Preferences)
	s.True(out.Preferences.SkillVisibility[dnd5e.SkillPerception])
	s.False(out.Preferences.SkillVisibility[dnd5e.SkillAthletics])
}

func (s *RedisRepositoryTestSuite) TestSetGetRoundTrip() {
	prefs := dnd5e.DefaultPreferences()
	prefs.SkillVisibility[dnd5e.SkillAthletics] = true
	prefs.SkillVisibility[dnd5e.SkillNature] = false

	_, err := s.repo.Set(s.ctx, preferences.SetInput{Preferences: prefs})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, preferences.GetInput{})
	s.Require().NoError(err)
	s.Equal(prefs, out.Preferences)
}

func (s *RedisRepositoryTestSuite) TestSetNilPreferences() {
	_, err := s.repo.Set(s.ctx, preferences.SetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetFillsMissingSkills() {
	// A blob written before a skill existed still yields every key.
	client, cleanup := testutils.CreateTestRedisClientWithSetup(s.T(), func(mr *miniredis.Miniredis) {
		mr.Set("preferences", `{"skillVisibility":{"perception":false}}`)
	})
	defer cleanup()

	repo, err := preferences.NewRedis(&preferences.RedisConfig{Client: client})
	s.Require().NoError(err)

	out, err := repo.Get(s.ctx, preferences.GetInput{})
	s.Require().NoError(err)
	s.False(out.Preferences.SkillVisibility[dnd5e.SkillPerception], "stored value wins")
	s.Len(out.Preferences.SkillVisibility, 18)
	s.True(out.Preferences.SkillVisibility[dnd5e.SkillStealth], "missing keys fall back to defaults")
}

func (s *RedisRepositoryTestSuite) TestGetFallsBackOnCorruptBlob() {
	client, cleanup := testutils.CreateTestRedisClientWithSetup(s.T(), func(mr *miniredis.Miniredis) {
		mr.Set("preferences", "{not json")
	})
	defer cleanup()

	repo, err := preferences.NewRedis(&preferences.RedisConfig{Client: client})
	s.Require().NoError(err)

	out, err := repo.Get(s.ctx, preferences.GetInput{})
	s.Require().NoError(err)
	s.Equal(dnd5e.DefaultPreferences(), out.Preferences)
}
