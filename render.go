// ABOUTME: RenderConfig: the style sheets and prefix glyphs every prompt renders with
// ABOUTME: Process-wide default held in an atomic pointer, honouring NO_COLOR

package askline

import (
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	"github.com/askline/askline/style"
)

// Glyph is a short styled token, such as the "?" prompt prefix or the "[x]"
// checked marker.
type Glyph struct {
	Text  string
	Sheet style.Sheet
}

// NewGlyph builds a Glyph.
func NewGlyph(text string, sheet style.Sheet) Glyph {
	return Glyph{Text: text, Sheet: sheet}
}

// RenderConfig carries everything the renderer needs to draw a prompt:
// prefix glyphs, per-element style sheets, and the password mask rune.
type RenderConfig struct {
	PromptPrefix   Glyph
	AnsweredPrefix Glyph
	ErrorPrefix    Glyph
	CanceledLabel  Glyph

	ScrollUpPrefix   Glyph
	ScrollDownPrefix Glyph

	HighlightedOptionPrefix Glyph
	SelectedCheckbox        Glyph
	UnselectedCheckbox      Glyph

	MessageSheet     style.Sheet
	AnswerSheet      style.Sheet
	HelpSheet        style.Sheet
	ErrorSheet       style.Sheet
	PlaceholderSheet style.Sheet
	DefaultHintSheet style.Sheet

	OptionSheet            style.Sheet
	HighlightedOptionSheet style.Sheet
	CheckedOptionSheet     style.Sheet

	CalendarHeaderSheet  style.Sheet
	SelectedDateSheet    style.Sheet
	TodaySheet           style.Sheet
	OutsideMonthSheet    style.Sheet
	UnavailableDateSheet style.Sheet

	MaskRune rune
}

// NewRenderConfigDefault returns the coloured stock configuration.
func NewRenderConfigDefault() RenderConfig {
	return RenderConfig{
		PromptPrefix:   NewGlyph("?", style.NewSheet().WithFg(style.Green).WithBold()),
		AnsweredPrefix: NewGlyph(">", style.NewSheet().WithFg(style.Green)),
		ErrorPrefix:    NewGlyph("✗", style.NewSheet().WithFg(style.Red)),
		CanceledLabel:  NewGlyph("<canceled>", style.NewSheet().WithFg(style.Grey).WithItalic()),

		ScrollUpPrefix:   NewGlyph("^", style.NewSheet().WithFg(style.Grey)),
		ScrollDownPrefix: NewGlyph("v", style.NewSheet().WithFg(style.Grey)),

		HighlightedOptionPrefix: NewGlyph(">", style.NewSheet().WithFg(style.Cyan).WithBold()),
		SelectedCheckbox:        NewGlyph("[x]", style.NewSheet().WithFg(style.Green)),
		UnselectedCheckbox:      NewGlyph("[ ]", style.NewSheet()),

		MessageSheet:     style.NewSheet().WithBold(),
		AnswerSheet:      style.NewSheet().WithFg(style.Cyan),
		HelpSheet:        style.NewSheet().WithFg(style.Grey),
		ErrorSheet:       style.NewSheet().WithFg(style.Red),
		PlaceholderSheet: style.NewSheet().WithDim(),
		DefaultHintSheet: style.NewSheet().WithFg(style.Grey),

		OptionSheet:            style.NewSheet(),
		HighlightedOptionSheet: style.NewSheet().WithFg(style.Cyan),
		CheckedOptionSheet:     style.NewSheet().WithFg(style.Green),

		CalendarHeaderSheet:  style.NewSheet().WithBold(),
		SelectedDateSheet:    style.NewSheet().WithReverse(),
		TodaySheet:           style.NewSheet().WithFg(style.Green),
		OutsideMonthSheet:    style.NewSheet().WithDim(),
		UnavailableDateSheet: style.NewSheet().WithFg(style.Grey).WithDim(),

		MaskRune: '*',
	}
}

// NewRenderConfigEmpty returns a configuration with the same glyph texts but
// no colour or formatting; used when NO_COLOR is set or output is not a tty.
func NewRenderConfigEmpty() RenderConfig {
	rc := NewRenderConfigDefault()
	plain := style.NewSheet()
	rc.PromptPrefix.Sheet = plain
	rc.AnsweredPrefix.Sheet = plain
	rc.ErrorPrefix.Sheet = plain
	rc.CanceledLabel.Sheet = plain
	rc.ScrollUpPrefix.Sheet = plain
	rc.ScrollDownPrefix.Sheet = plain
	rc.HighlightedOptionPrefix.Sheet = plain
	rc.SelectedCheckbox.Sheet = plain
	rc.UnselectedCheckbox.Sheet = plain
	rc.MessageSheet = plain
	rc.AnswerSheet = plain
	rc.HelpSheet = plain
	rc.ErrorSheet = plain
	rc.PlaceholderSheet = plain
	rc.DefaultHintSheet = plain
	rc.OptionSheet = plain
	rc.HighlightedOptionSheet = style.NewSheet().WithReverse()
	rc.CheckedOptionSheet = plain
	rc.CalendarHeaderSheet = plain
	rc.SelectedDateSheet = style.NewSheet().WithReverse()
	rc.TodaySheet = plain
	rc.OutsideMonthSheet = plain
	rc.UnavailableDateSheet = plain
	return rc
}

var defaultConfig atomic.Pointer[RenderConfig]

func init() {
	rc := detectRenderConfig()
	defaultConfig.Store(&rc)
}

// detectRenderConfig picks the stock configuration from the environment:
// a non-empty NO_COLOR or a non-tty stdout disables colour sequences.
func detectRenderConfig() RenderConfig {
	if os.Getenv("NO_COLOR") != "" {
		return NewRenderConfigEmpty()
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return NewRenderConfigEmpty()
	}
	return NewRenderConfigDefault()
}

// DefaultRenderConfig returns the process-wide configuration consulted when
// prompts are built.
func DefaultRenderConfig() RenderConfig {
	return *defaultConfig.Load()
}

// SetDefaultRenderConfig overrides the process-wide configuration.
func SetDefaultRenderConfig(rc RenderConfig) {
	defaultConfig.Store(&rc)
}
