package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-crossfilter/crossfilter"
)

// Config is the optional on-disk configuration. Every field has a default,
// so an absent file is the same as an empty one.
type Config struct {
	Display Display `yaml:"display"`
	Export  Export  `yaml:"export"`
	Colors  Colors  `yaml:"colors"`
}

type Display struct {
	FigureHeight int `yaml:"figure_height" validate:"min=450,max=800"`
}

type Export struct {
	// FileName is offered in the export dialog. It must be a bare file
	// name; the dialog joins it with the working directory.
	FileName string `yaml:"file_name" validate:"required,barefilename"`
}

// Colors are hex colours for the plots. Alphas blend a point colour over
// the background the same way a translucent marker would.
type Colors struct {
	Highlight      string  `yaml:"highlight" validate:"required,hexcolor"`
	HighlightAlpha float64 `yaml:"highlight_alpha" validate:"gt=0,lte=1"`
	Muted          string  `yaml:"muted" validate:"required,hexcolor"`
	MutedAlpha     float64 `yaml:"muted_alpha" validate:"gt=0,lte=1"`
	Background     string  `yaml:"background" validate:"required,hexcolor"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("barefilename", validateBareFileName); err != nil {
		panic(fmt.Sprintf("config: register barefilename: %v", err))
	}
}

func validateBareFileName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

// Default matches the colours of the original web figures: orange for
// highlighted regions and blue for the rest.
func Default() Config {
	return Config{
		Display: Display{FigureHeight: crossfilter.DefaultFigureHeight},
		Export:  Export{FileName: crossfilter.ExportFileName},
		Colors: Colors{
			Highlight:      "#fc8d59",
			HighlightAlpha: 0.9,
			Muted:          "#2c7bb6",
			MutedAlpha:     0.45,
			Background:     "#1c1c1c",
		},
	}
}

// DefaultPath is ~/.siftly/crossfilter.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".siftly", "crossfilter.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error and
// is never created.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field by its yaml path.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func (c Config) DisplayConfig() crossfilter.DisplayConfig {
	return crossfilter.DisplayConfig{FigureHeight: c.Display.FigureHeight}
}
