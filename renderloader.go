// ABOUTME: YAML render-config loading with validation and default fallback
// ABOUTME: Unset fields inherit from the detected default so configs stay partial

package askline

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/askline/askline/style"
)

// yamlSheet is the file representation of a style.Sheet. Colors are named.
type yamlSheet struct {
	Fg        string `yaml:"fg"`
	Bg        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
	Dim       bool   `yaml:"dim"`
	Reverse   bool   `yaml:"reverse"`
}

// yamlGlyph is the file representation of a Glyph.
type yamlGlyph struct {
	Text  string    `yaml:"text"`
	Sheet yamlSheet `yaml:",inline"`
}

type yamlRenderConfig struct {
	PromptPrefix   *yamlGlyph `yaml:"prompt_prefix"`
	AnsweredPrefix *yamlGlyph `yaml:"answered_prefix"`
	ErrorPrefix    *yamlGlyph `yaml:"error_prefix"`
	CanceledLabel  *yamlGlyph `yaml:"canceled_label"`

	ScrollUpPrefix   *yamlGlyph `yaml:"scroll_up_prefix"`
	ScrollDownPrefix *yamlGlyph `yaml:"scroll_down_prefix"`

	HighlightedOptionPrefix *yamlGlyph `yaml:"highlighted_option_prefix"`
	SelectedCheckbox        *yamlGlyph `yaml:"selected_checkbox"`
	UnselectedCheckbox      *yamlGlyph `yaml:"unselected_checkbox"`

	MessageSheet     *yamlSheet `yaml:"message"`
	AnswerSheet      *yamlSheet `yaml:"answer"`
	HelpSheet        *yamlSheet `yaml:"help"`
	ErrorSheet       *yamlSheet `yaml:"error"`
	PlaceholderSheet *yamlSheet `yaml:"placeholder"`

	OptionSheet            *yamlSheet `yaml:"option"`
	HighlightedOptionSheet *yamlSheet `yaml:"highlighted_option"`
	CheckedOptionSheet     *yamlSheet `yaml:"checked_option"`

	Mask string `yaml:"mask"`
}

// fgColors maps config color names to foreground colors.
var fgColors = map[string]style.Color{
	"black":   style.Black,
	"red":     style.Red,
	"green":   style.Green,
	"yellow":  style.Yellow,
	"blue":    style.Blue,
	"magenta": style.Magenta,
	"cyan":    style.Cyan,
	"white":   style.White,
	"grey":    style.Grey,
	"gray":    style.Grey,
}

// bgColors maps config color names to background colors.
var bgColors = map[string]style.Color{
	"black":   style.BgBlack,
	"red":     style.BgRed,
	"green":   style.BgGreen,
	"yellow":  style.BgYellow,
	"blue":    style.BgBlue,
	"magenta": style.BgMagenta,
	"cyan":    style.BgCyan,
	"white":   style.BgWhite,
}

// LoadRenderConfig reads a partial render configuration from a YAML file.
// Fields absent from the file keep their values from the detected default.
func LoadRenderConfig(path string) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("reading render config: %w", err)
	}

	var file yamlRenderConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RenderConfig{}, fmt.Errorf("parsing render config: %w", err)
	}

	rc := DefaultRenderConfig()
	if err := file.apply(&rc); err != nil {
		return RenderConfig{}, err
	}
	return rc, nil
}

// apply copies the file's set fields onto rc.
func (f *yamlRenderConfig) apply(rc *RenderConfig) error {
	glyphs := []struct {
		src *yamlGlyph
		dst *Glyph
	}{
		{f.PromptPrefix, &rc.PromptPrefix},
		{f.AnsweredPrefix, &rc.AnsweredPrefix},
		{f.ErrorPrefix, &rc.ErrorPrefix},
		{f.CanceledLabel, &rc.CanceledLabel},
		{f.ScrollUpPrefix, &rc.ScrollUpPrefix},
		{f.ScrollDownPrefix, &rc.ScrollDownPrefix},
		{f.HighlightedOptionPrefix, &rc.HighlightedOptionPrefix},
		{f.SelectedCheckbox, &rc.SelectedCheckbox},
		{f.UnselectedCheckbox, &rc.UnselectedCheckbox},
	}
	for _, g := range glyphs {
		if g.src == nil {
			continue
		}
		sheet, err := g.src.Sheet.toSheet()
		if err != nil {
			return err
		}
		if g.src.Text != "" {
			g.dst.Text = g.src.Text
		}
		g.dst.Sheet = sheet
	}

	sheets := []struct {
		src *yamlSheet
		dst *style.Sheet
	}{
		{f.MessageSheet, &rc.MessageSheet},
		{f.AnswerSheet, &rc.AnswerSheet},
		{f.HelpSheet, &rc.HelpSheet},
		{f.ErrorSheet, &rc.ErrorSheet},
		{f.PlaceholderSheet, &rc.PlaceholderSheet},
		{f.OptionSheet, &rc.OptionSheet},
		{f.HighlightedOptionSheet, &rc.HighlightedOptionSheet},
		{f.CheckedOptionSheet, &rc.CheckedOptionSheet},
	}
	for _, s := range sheets {
		if s.src == nil {
			continue
		}
		sheet, err := s.src.toSheet()
		if err != nil {
			return err
		}
		*s.dst = sheet
	}

	if f.Mask != "" {
		r, size := utf8.DecodeRuneInString(f.Mask)
		if size != len(f.Mask) || r == utf8.RuneError {
			return fmt.Errorf("render config: mask must be a single rune, got %q", f.Mask)
		}
		rc.MaskRune = r
	}
	return nil
}

// toSheet resolves a file sheet's color names.
func (y yamlSheet) toSheet() (style.Sheet, error) {
	sheet := style.Sheet{
		Bold:      y.Bold,
		Italic:    y.Italic,
		Underline: y.Underline,
		Dim:       y.Dim,
		Reverse:   y.Reverse,
	}
	if y.Fg != "" {
		c, ok := fgColors[y.Fg]
		if !ok {
			return sheet, fmt.Errorf("render config: unknown color %q", y.Fg)
		}
		sheet.Fg = c
	}
	if y.Bg != "" {
		c, ok := bgColors[y.Bg]
		if !ok {
			return sheet, fmt.Errorf("render config: unknown background color %q", y.Bg)
		}
		sheet.Bg = c
	}
	return sheet, nil
}
