package parser_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/parser"
)

type ParserTestSuite struct {
	suite.Suite
	parser parser.Parser
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) SetupTest() {
	s.parser = parser.NewJSONExtractor()
}

func (s *ParserTestSuite) TestFencedBlockWins() {
	raw := "Here: ```json\n{\"name\":\"A\"}\n``` note: {not json}"

	fields, err := s.parser.Parse(raw, []string{"name"})
	s.Require().NoError(err)
	s.Equal(parser.Fields{"name": "A"}, fields)
}

func (s *ParserTestSuite) TestFenceTagIsCaseInsensitive() {
	raw := "```JSON\n{\"name\":\"Ilsa\"}\n```"

	fields, err := s.parser.Parse(raw, []string{"name"})
	s.Require().NoError(err)
	name, _ := fields.String("name")
	s.Equal("Ilsa", name)
}

func (s *ParserTestSuite) TestBraceFallback() {
	raw := `Sure! {"name": "Bob", "race_class": "Elf Wizard"} Hope that helps.`

	fields, err := s.parser.Parse(raw, []string{"name", "race_class"})
	s.Require().NoError(err)
	s.Equal(parser.Fields{"name": "Bob", "race_class": "Elf Wizard"}, fields)
}

func (s *ParserTestSuite) TestMissingRequiredField() {
	raw := `{"name":"Bob"}`

	fields, err := s.parser.Parse(raw, []string{"name", "appearance"})
	s.Require().Error(err)
	s.Nil(fields)
	s.True(errors.IsMalformedGenerationResult(err))
	s.Equal(raw, errors.GetMeta(err)[errors.MetaRaw])
	s.Contains(err.Error(), "appearance")
}

func (s *ParserTestSuite) TestNoBraces() {
	raw := "I cannot help with that."

	_, err := s.parser.Parse(raw, []string{"name"})
	s.Require().Error(err)
	s.True(errors.IsMalformedGenerationResult(err))
	s.Equal(raw, errors.GetMeta(err)[errors.MetaRaw])
}

func (s *ParserTestSuite) TestInvalidJSON() {
	raw := `Result: {"name": "Bob", }`

	_, err := s.parser.Parse(raw, nil)
	s.Require().Error(err)
	s.True(errors.IsMalformedGenerationResult(err))
}

func (s *ParserTestSuite) TestExtraKeysRetained() {
	raw := `{"name":"Bob","loot":"a rusty key"}`

	fields, err := s.parser.Parse(raw, []string{"name"})
	s.Require().NoError(err)
	s.Equal([]string{"loot", "name"}, fields.Keys())
}

func (s *ParserTestSuite) TestFieldsString() {
	raw := `{"plot_hooks":["Owes a debt","Seeks a lost sister"],"age":42,"hostile":false,"notes":null}`

	fields, err := s.parser.Parse(raw, nil)
	s.Require().NoError(err)

	hooks, ok := fields.String("plot_hooks")
	s.True(ok)
	s.Equal("Owes a debt\nSeeks a lost sister", hooks)

	age, _ := fields.String("age")
	s.Equal("42", age)

	hostile, _ := fields.String("hostile")
	s.Equal("false", hostile)

	notes, ok := fields.String("notes")
	s.True(ok)
	s.Empty(notes)

	_, ok = fields.String("missing")
	s.False(ok)
}
