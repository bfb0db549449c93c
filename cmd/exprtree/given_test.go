package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGivenFlag(t *testing.T) {
	var g givenFlag
	assert.Equal(t, "", g.String())
	require.NoError(t, g.Set("x=1"))
	require.NoError(t, g.Set(" y = -2 "))
	require.NoError(t, g.Set("z=a=b"))
	assert.Equal(t, []definition{{"x", "1"}, {"y", "-2"}, {"z", "a=b"}}, g.defs)
	assert.Equal(t, "x=1,y=-2,z=a=b", g.String())
	assert.Equal(t, "name=value", g.Type())

	for _, bad := range []string{"x", "", "=1", " =1"} {
		assert.Error(t, g.Set(bad), "%q should be rejected", bad)
	}
	assert.Len(t, g.defs, 3)
}
