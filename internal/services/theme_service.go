package services

import (
	"context"
	"strconv"

	"tasklist/internal/errors"
	"tasklist/internal/repository"
	"tasklist/internal/validation"
)

const (
	darkModeKey    = "darkMode"
	accentColorKey = "theme-color"

	// DefaultAccentColor is used when no accent color has been stored.
	DefaultAccentColor = "#3b82f6"
)

// themeServiceImpl implements the ThemeService interface
type themeServiceImpl struct {
	prefs     repository.Preferences
	validator *validation.ThemeValidator
}

// NewThemeService creates a new ThemeService over the given preferences store.
func NewThemeService(prefs repository.Preferences) ThemeService {
	return &themeServiceImpl{
		prefs:     prefs,
		validator: validation.NewThemeValidator(),
	}
}

// DarkMode returns the stored dark-mode flag, defaulting to false
func (s *themeServiceImpl) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := s.prefs.Get(ctx, darkModeKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return value == "true", nil
}

// SetDarkMode persists the dark-mode flag
func (s *themeServiceImpl) SetDarkMode(ctx context.Context, enabled bool) error {
	return s.prefs.Put(ctx, darkModeKey, strconv.FormatBool(enabled))
}

// AccentColor returns the stored accent color, defaulting to DefaultAccentColor
func (s *themeServiceImpl) AccentColor(ctx context.Context) (string, error) {
	value, ok, err := s.prefs.Get(ctx, accentColorKey)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return DefaultAccentColor, nil
	}
	return value, nil
}

// SetAccentColor validates and persists a #RRGGBB accent color
func (s *themeServiceImpl) SetAccentColor(ctx context.Context, color string) error {
	if err := s.validator.ValidateAccentColor(color); err != nil {
		return errors.NewValidationError("invalid accent color", err)
	}
	return s.prefs.Put(ctx, accentColorKey, color)
}

// IsColorLight reports whether a #RRGGBB color is light enough to need dark
// foreground text, using the perceived-brightness weights 0.299/0.587/0.114.
func (s *themeServiceImpl) IsColorLight(color string) bool {
	if err := s.validator.ValidateAccentColor(color); err != nil {
		return false
	}
	rgb, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return false
	}
	r := float64((rgb >> 16) & 0xff)
	g := float64((rgb >> 8) & 0xff)
	b := float64(rgb & 0xff)
	brightness := 0.299*r + 0.587*g + 0.114*b
	return brightness > 186
}
