package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edooconnect/studycost/internal/domain"
)

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := []byte(`
country: canada
region: ontario
city: toronto
programType: undergraduate
familyStatus: single
age: 20
monthlyIncome: 1100
currentSavings: 10000
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	profile, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "toronto", profile.City)
	assert.Equal(t, domain.ProgramUndergraduate, profile.ProgramType)
	assert.Equal(t, 20, profile.Age)
	assert.Equal(t, "1100", profile.MonthlyIncome.String())
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("country: [unclosed"), 0o644))

	_, err := loadProfile(path)
	assert.Error(t, err)
}
