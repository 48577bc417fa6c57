package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/fadilmartias/careercraft/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeToggle(t *testing.T) {
	ctx := context.Background()
	uc := NewThemeUsecase(repository.NewMemoryPreferenceRepository())
	visitor := uuid.New()

	current, err := uc.Current(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, current)

	next, err := uc.Toggle(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, next)

	back, err := uc.Toggle(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, current, back)

	other, err := uc.Current(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTheme, other)
}

func TestThemeSet(t *testing.T) {
	ctx := context.Background()
	uc := NewThemeUsecase(repository.NewMemoryPreferenceRepository())
	visitor := uuid.New()

	got, err := uc.Set(ctx, visitor, "light")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, got)

	_, err = uc.Set(ctx, visitor, "sepia")
	assert.Error(t, err)

	current, err := uc.Current(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, current)
}
