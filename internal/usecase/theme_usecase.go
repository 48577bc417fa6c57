package usecase

import (
	"context"
	"errors"

	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/fadilmartias/careercraft/internal/repository"
	"github.com/google/uuid"
)

type ThemeUsecase struct {
	repo repository.PreferenceRepositoryInterface
}

func NewThemeUsecase(repo repository.PreferenceRepositoryInterface) *ThemeUsecase {
	return &ThemeUsecase{repo: repo}
}

// Current returns the visitor's saved theme, or the default when nothing
// has been saved yet.
func (uc *ThemeUsecase) Current(ctx context.Context, visitorID uuid.UUID) (model.Theme, error) {
	pref, err := uc.repo.FindByVisitor(ctx, visitorID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.DefaultTheme, nil
	}
	if err != nil {
		return model.DefaultTheme, err
	}
	if _, err := model.ParseTheme(string(pref.Theme)); err != nil {
		return model.DefaultTheme, nil
	}
	return pref.Theme, nil
}

func (uc *ThemeUsecase) Toggle(ctx context.Context, visitorID uuid.UUID) (model.Theme, error) {
	current, err := uc.Current(ctx, visitorID)
	if err != nil {
		return current, err
	}
	next := current.Toggled()
	return next, uc.save(ctx, visitorID, next)
}

func (uc *ThemeUsecase) Set(ctx context.Context, visitorID uuid.UUID, raw string) (model.Theme, error) {
	theme, err := model.ParseTheme(raw)
	if err != nil {
		return "", err
	}
	return theme, uc.save(ctx, visitorID, theme)
}

func (uc *ThemeUsecase) save(ctx context.Context, visitorID uuid.UUID, theme model.Theme) error {
	return uc.repo.Save(ctx, &model.VisitorPreference{VisitorID: visitorID, Theme: theme})
}
