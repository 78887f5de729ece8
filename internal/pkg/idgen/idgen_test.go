package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/idgen"
)

func TestUUIDGeneratorPrefix(t *testing.T) {
	gen := idgen.NewUUID(idgen.PrefixWorld)

	a := gen.Generate()
	b := gen.Generate()

	assert.True(t, strings.HasPrefix(a, "world_"))
	assert.NotEqual(t, a, b)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("npc")

	assert.Equal(t, "npc_1", gen.Generate())
	assert.Equal(t, "npc_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
