package main

import (
	"testing"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleOverrides(t *testing.T) {
	overrides, err := parseRoleOverrides([]string{"0=date", "2=measure"})
	require.NoError(t, err)
	assert.Equal(t, map[int]model.ColumnRole{
		0: model.RoleDate,
		2: model.RoleMeasure,
	}, overrides)
}

func TestParseRoleOverridesEmpty(t *testing.T) {
	overrides, err := parseRoleOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestParseRoleOverridesInvalid(t *testing.T) {
	_, err := parseRoleOverrides([]string{"nonsense"})
	assert.Error(t, err)

	_, err = parseRoleOverrides([]string{"x=date"})
	assert.Error(t, err)

	_, err = parseRoleOverrides([]string{"1=wizard"})
	assert.Error(t, err)
}
