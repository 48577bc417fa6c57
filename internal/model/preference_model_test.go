package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("light")
	assert.NoError(t, err)
	assert.Equal(t, ThemeLight, th)

	_, err = ParseTheme("Light")
	assert.Error(t, err)
	_, err = ParseTheme("")
	assert.Error(t, err)
}

func TestThemeToggledTwiceIsIdentity(t *testing.T) {
	for _, th := range []Theme{ThemeLight, ThemeDark} {
		assert.Equal(t, th, th.Toggled().Toggled())
		assert.NotEqual(t, th, th.Toggled())
	}
}
