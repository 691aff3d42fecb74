package crossfilter

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MinFigureHeight     = 450
	MaxFigureHeight     = 800
	DefaultFigureHeight = 600
	FigureHeightStep    = 50
)

var validate = validator.New()

// DisplayConfig holds presentation settings. It never affects which rows
// are highlighted.
type DisplayConfig struct {
	FigureHeight int `validate:"min=450,max=800"`
}

func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{FigureHeight: DefaultFigureHeight}
}

func (c DisplayConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("figure height %d outside %d..%d: %w", c.FigureHeight, MinFigureHeight, MaxFigureHeight, err)
	}
	return nil
}

// ClampFigureHeight keeps h inside the slider range.
func ClampFigureHeight(h int) int {
	return max(MinFigureHeight, min(MaxFigureHeight, h))
}
