package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseSentinels(t *testing.T) {
	assert.Equal(t, "*", AnyDatabase().Name)
	assert.Equal(t, "!", FirstMatchDatabase().Name)

	assert.True(t, AnyDatabase().IsSentinel())
	assert.True(t, FirstMatchDatabase().IsSentinel())
	assert.False(t, Database{Name: "wn"}.IsSentinel())

	assert.Equal(t, "wn", Database{Name: "wn", Description: "WordNet"}.String())
}

func TestDefaultStrategy(t *testing.T) {
	assert.Equal(t, ".", DefaultStrategy().Name)
	assert.Equal(t, "prefix", MatchingStrategy{Name: "prefix"}.String())
}

func TestDefinitionText(t *testing.T) {
	d := &Definition{Word: "cat", Database: "wn"}
	assert.Equal(t, "", d.Text())

	d.AppendLine("cat")
	d.AppendLine("")
	d.AppendLine("  n 1: feline mammal")

	assert.Equal(t, []string{"cat", "", "  n 1: feline mammal"}, d.Lines)
	assert.Equal(t, "cat\n\n  n 1: feline mammal", d.Text())
}
