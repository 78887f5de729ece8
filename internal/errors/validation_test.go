package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("world_id", "is required")
	ve.AddFieldError("language", "is invalid")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: language: is invalid; world_id: is required", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		Fieldf("level", "must be between %d and %d", 1, 20).
		InvalidField("kind", "unknown character kind").
		Build()

	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Eberron", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRangeAndEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("strength", 2, 3, 18, vb)
	errors.ValidateRange("dexterity", 14, 3, 18, vb)
	errors.ValidateEnum("theme", "sepia", []string{"light", "dark", "system"}, vb)
	errors.ValidateEnum("backend", "redis", []string{"redis", "sqlite"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(fields["strength"][0], "must be between 3 and 18")
	s.Assert().Contains(fields["theme"][0], "must be one of: light, dark, system")
	s.Assert().NotContains(fields, "dexterity")
	s.Assert().NotContains(fields, "backend")
}
