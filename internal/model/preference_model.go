package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("invalid theme %q: must be light or dark", s)
}

// Toggled returns the opposite theme. Anything that is not light counts as
// dark, the same way the page script flips its data-theme attribute.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type VisitorPreference struct {
	VisitorID uuid.UUID `gorm:"type:uuid;primaryKey" json:"visitor_id"`
	Theme     Theme     `gorm:"type:varchar(10);not null;default:dark" json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *VisitorPreference) TableName() string {
	return "visitor_preferences"
}
