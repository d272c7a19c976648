package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dmtoolbox/inserts-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestEmptyBuilderBuildsNil() {
	vb := errors.NewValidationBuilder()
	s.Assert().False(vb.HasErrors())
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestSingleField() {
	err := errors.NewValidationBuilder().
		RequiredField("id").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal("INVALID_ARGUMENT: validation failed: id: is required", err.Error())
}

func (s *ValidationTestSuite) TestMultipleFieldsSorted() {
	err := errors.NewValidationBuilder().
		Field("level", "must be positive").
		RequiredField("id").
		Build()

	s.Require().Error(err)
	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: id: is required; level: must be positive",
		err.Error())
}

func (s *ValidationTestSuite) TestRepeatedFieldJoins() {
	err := errors.NewValidationBuilder().
		Field("hp", "must be positive").
		Fieldf("hp", "must be at most %d", 999).
		Build()

	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "hp: must be positive, must be at most 999")
}

func (s *ValidationTestSuite) TestMetaCarriesFieldMap() {
	err := errors.NewValidationBuilder().
		RequiredField("id").
		Build()

	var coded *errors.Error
	s.Require().True(errors.As(err, &coded))
	s.Assert().Contains(coded.Meta, "validation_errors")
}

func (s *ValidationTestSuite) TestValidateRequired() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", "", vb)
	errors.ValidateRequired("name", "  ", vb)
	errors.ValidateRequired("class", "Fighter", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "id: is required")
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().NotContains(err.Error(), "class")
}
