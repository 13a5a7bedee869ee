package theme

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var defaultThemesYAML []byte

type themeSpec struct {
	Name     string   `yaml:"name" validate:"required"`
	Color    string   `yaml:"color" validate:"required"`
	Pairs    int      `yaml:"pairs" validate:"gte=0"`
	Contents []string `yaml:"contents" validate:"required,min=1,unique,dive,required"`
}

type catalogSpec struct {
	Themes []themeSpec `yaml:"themes" validate:"required,min=1,unique=Name,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		spec := sl.Current().Interface().(themeSpec)
		if spec.Pairs > len(spec.Contents) {
			sl.ReportError(spec.Pairs, "Pairs", "pairs", "ltecontents", fmt.Sprint(len(spec.Contents)))
		}
	}, themeSpec{})
	return v
}

// Default returns the built-in catalog.
func Default() Catalog {
	c, err := Parse(defaultThemesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded theme catalog is invalid: %v", err))
	}
	return c
}

// Load reads the theme catalog.
// Search order: customPath -> ~/.config/go-concentration/themes.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; a broken user
// file is skipped.
func Load(customPath string) (Catalog, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userPath := userCatalogPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			if c, err := LoadFile(userPath); err == nil {
				return c, nil
			}
		}
	}

	return Default(), nil
}

// LoadFile reads and validates a catalog from a YAML file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read themes %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to load themes %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var spec catalogSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Catalog{}, fmt.Errorf("could not parse theme catalog: %w", err)
	}
	if err := validate.Struct(spec); err != nil {
		return Catalog{}, fmt.Errorf("invalid theme catalog: %w", err)
	}

	themes := make([]Theme, len(spec.Themes))
	for i, ts := range spec.Themes {
		themes[i] = New(ts.Name, ts.Contents, ts.Pairs, ts.Color)
	}
	return NewCatalog(themes...), nil
}

func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "go-concentration", "themes.yaml")
}
