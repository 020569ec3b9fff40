package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/monbon24/launcher/internal/models"
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

func newValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
	}
	return &ValidationError{Problems: problems}
}

// Validator checks launcher descriptors from any source.
type Validator struct {
	validate      *validator.Validate
	strictAccents bool
}

func NewValidator(strictAccents bool) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("href", func(fl validator.FieldLevel) bool {
		return ValidHref(fl.Field().String())
	}); err != nil {
		panic("failed to register href validation: " + err.Error())
	}

	return &Validator{
		validate:      v,
		strictAccents: strictAccents,
	}
}

// ValidHref accepts an absolute URI with scheme and host, or a root-relative path.
func ValidHref(href string) bool {
	if href == "" || strings.ContainsAny(href, " \t\r\n") {
		return false
	}
	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		_, err := url.Parse(href)
		return err == nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme == "mailto" || u.Scheme == "tel" {
		return u.Opaque != ""
	}
	return u.Scheme != "" && u.Host != ""
}

type tileList struct {
	Tiles []models.Tile `validate:"unique=Title,dive"`
}

// Tiles validates a tile list in declaration order.
func (v *Validator) Tiles(tiles []models.Tile) error {
	if err := v.validate.Struct(tileList{Tiles: tiles}); err != nil {
		return newValidationError(err)
	}
	return v.accents(tiles)
}

func (v *Validator) Hub(h models.Hub) error {
	if err := v.validate.Struct(h); err != nil {
		return newValidationError(err)
	}
	return nil
}

func (v *Validator) accents(tiles []models.Tile) error {
	var problems []string
	for i, t := range tiles {
		if t.Accent == "" {
			continue
		}
		if _, ok := models.ParseAccent(string(t.Accent)); ok {
			continue
		}
		if v.strictAccents {
			problems = append(problems, fmt.Sprintf("Tiles[%d].Accent: unknown accent %q", i, t.Accent))
			continue
		}
		slog.Warn("Unknown accent, using default treatment",
			slog.String("tile", t.Title),
			slog.String("accent", string(t.Accent)))
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
