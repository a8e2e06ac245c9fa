// ABOUTME: Calendar date picker: grid rendering and day/week/month/year motion
// ABOUTME: Month shifts preserve the day where possible and clamp to bounds

package askline

import (
	"fmt"
	"time"

	"github.com/askline/askline/frame"
	"github.com/askline/askline/key"
	"github.com/askline/askline/terminal"
)

// DateSelect asks the user to pick a date on a month calendar.
type DateSelect struct {
	msg  string
	opts promptOptions

	current   time.Time
	minDate   *time.Time
	maxDate   *time.Time
	weekStart time.Weekday

	validators []Validator[time.Time]
	formatter  Formatter[time.Time]
	errMsg     string
	answer     time.Time
}

// NewDateSelect returns a date picker starting on today's date with weeks
// beginning on Monday.
func NewDateSelect(message string) *DateSelect {
	return &DateSelect{
		msg:       message,
		opts:      defaultOptions(),
		current:   truncateDate(time.Now()),
		weekStart: time.Monday,
	}
}

// WithStartingDate sets the initially selected date. A starting date
// outside the configured bounds fails at prompt entry.
func (d *DateSelect) WithStartingDate(t time.Time) *DateSelect {
	d.current = truncateDate(t)
	return d
}

// WithMinDate sets the earliest selectable date.
func (d *DateSelect) WithMinDate(t time.Time) *DateSelect {
	v := truncateDate(t)
	d.minDate = &v
	return d
}

// WithMaxDate sets the latest selectable date.
func (d *DateSelect) WithMaxDate(t time.Time) *DateSelect {
	v := truncateDate(t)
	d.maxDate = &v
	return d
}

// WithWeekStart sets the weekday shown in the grid's first column.
func (d *DateSelect) WithWeekStart(w time.Weekday) *DateSelect {
	d.weekStart = w
	return d
}

// WithValidator appends a validator, run against the selected date on
// submission.
func (d *DateSelect) WithValidator(v Validator[time.Time]) *DateSelect {
	d.validators = append(d.validators, v)
	return d
}

// WithFormatter replaces the default YYYY-MM-DD answer formatting.
func (d *DateSelect) WithFormatter(f Formatter[time.Time]) *DateSelect {
	d.formatter = f
	return d
}

// WithVimMode enables h/j/k/l motion keys.
func (d *DateSelect) WithVimMode() *DateSelect {
	d.opts.vimMode = true
	return d
}

// WithHelpMessage shows a help hint after the message.
func (d *DateSelect) WithHelpMessage(help string) *DateSelect {
	d.opts.help = help
	return d
}

// WithRenderConfig overrides the prompt's render configuration.
func (d *DateSelect) WithRenderConfig(rc RenderConfig) *DateSelect {
	d.opts.config = rc
	return d
}

// Prompt runs the prompt on the process terminal.
func (d *DateSelect) Prompt() (time.Time, error) {
	if err := runOnTerminal[dateAction](d, d.validate); err != nil {
		return time.Time{}, err
	}
	return d.answer, nil
}

// PromptWith runs the prompt on the given terminal.
func (d *DateSelect) PromptWith(t terminal.Terminal) (time.Time, error) {
	if err := d.validate(); err != nil {
		return time.Time{}, err
	}
	if err := runLoop[dateAction](t, d); err != nil {
		return time.Time{}, err
	}
	return d.answer, nil
}

// PromptSkippable runs the prompt, reporting cancellation as ok=false.
func (d *DateSelect) PromptSkippable() (time.Time, bool, error) {
	return skippable(d.Prompt())
}

func (d *DateSelect) validate() error {
	if d.minDate != nil && d.current.Before(*d.minDate) {
		return fmt.Errorf("%w: starting date before the minimum date", ErrInvalidConfiguration)
	}
	if d.maxDate != nil && d.current.After(*d.maxDate) {
		return fmt.Errorf("%w: starting date after the maximum date", ErrInvalidConfiguration)
	}
	if d.minDate != nil && d.maxDate != nil && d.maxDate.Before(*d.minDate) {
		return fmt.Errorf("%w: maximum date before the minimum date", ErrInvalidConfiguration)
	}
	return nil
}

type dateAction struct {
	days   int
	months int
}

func (d *DateSelect) message() string            { return d.msg }
func (d *DateSelect) renderConfig() RenderConfig { return d.opts.config }

func (d *DateSelect) fromKey(k key.Key) (dateAction, bool) {
	switch k.Type {
	case key.Left:
		if k.Ctrl {
			return dateAction{months: -1}, true
		}
		return dateAction{days: -1}, true
	case key.Right:
		if k.Ctrl {
			return dateAction{months: 1}, true
		}
		return dateAction{days: 1}, true
	case key.Up:
		return dateAction{days: -7}, true
	case key.Down, key.Tab:
		return dateAction{days: 7}, true
	case key.PageUp:
		if k.Ctrl {
			return dateAction{months: -12}, true
		}
		return dateAction{months: -1}, true
	case key.PageDown:
		if k.Ctrl {
			return dateAction{months: 12}, true
		}
		return dateAction{months: 1}, true
	case key.Rune:
		if !d.opts.vimMode || k.Ctrl || k.Alt {
			return dateAction{}, false
		}
		switch k.Rune {
		case 'h':
			return dateAction{days: -1}, true
		case 'l':
			return dateAction{days: 1}, true
		case 'k':
			return dateAction{days: -7}, true
		case 'j':
			return dateAction{days: 7}, true
		}
	}
	return dateAction{}, false
}

func (d *DateSelect) handle(a dateAction) ActionResult {
	next := d.current
	if a.days != 0 {
		next = next.AddDate(0, 0, a.days)
	}
	if a.months != 0 {
		next = shiftMonths(next, a.months)
	}
	next = d.clamp(next)
	if next.Equal(d.current) {
		return Clean
	}
	d.current = next
	d.errMsg = ""
	return NeedsRedraw
}

func (d *DateSelect) clamp(t time.Time) time.Time {
	if d.minDate != nil && t.Before(*d.minDate) {
		return *d.minDate
	}
	if d.maxDate != nil && t.After(*d.maxDate) {
		return *d.maxDate
	}
	return t
}

func (d *DateSelect) available(t time.Time) bool {
	if d.minDate != nil && t.Before(*d.minDate) {
		return false
	}
	if d.maxDate != nil && t.After(*d.maxDate) {
		return false
	}
	return true
}

func (d *DateSelect) render(r *frame.Renderer) {
	rc := d.opts.config
	renderHeader(r, rc, d.msg, d.errMsg, d.opts.help)
	r.Write("\n")

	r.WriteStyled(fmt.Sprintf("%s %d", d.current.Month(), d.current.Year()), rc.CalendarHeaderSheet)
	r.Write("\n")

	for i := 0; i < 7; i++ {
		if i > 0 {
			r.Write(" ")
		}
		w := time.Weekday((int(d.weekStart) + i) % 7)
		r.WriteStyled(w.String()[:2], rc.CalendarHeaderSheet)
	}
	r.Write("\n")

	today := truncateDate(time.Now())
	cell := firstGridDay(d.current, d.weekStart)
	for week := 0; week < 6; week++ {
		for col := 0; col < 7; col++ {
			if col > 0 {
				r.Write(" ")
			}
			text := fmt.Sprintf("%2d", cell.Day())
			switch {
			case cell.Equal(d.current):
				r.MarkCursor(0)
				r.WriteStyled(text, rc.SelectedDateSheet)
			case !d.available(cell):
				r.WriteStyled(text, rc.UnavailableDateSheet)
			case cell.Equal(today):
				r.WriteStyled(text, rc.TodaySheet)
			case cell.Month() != d.current.Month():
				r.WriteStyled(text, rc.OutsideMonthSheet)
			default:
				r.Write(text)
			}
			cell = cell.AddDate(0, 0, 1)
		}
		r.Write("\n")
	}
}

func (d *DateSelect) submit() (string, bool, error) {
	if msg, err := runValidators(d.validators, d.current); err != nil {
		return "", false, err
	} else if msg != "" {
		d.errMsg = msg
		return "", false, nil
	}
	d.answer = d.current
	if d.formatter != nil {
		return d.formatter(d.answer), true, nil
	}
	return d.answer.Format("2006-01-02"), true, nil
}

// truncateDate drops the time-of-day component.
func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// shiftMonths moves by whole months, keeping the day of month where the
// target month has one, otherwise the target month's last day.
func shiftMonths(t time.Time, months int) time.Time {
	total := t.Year()*12 + int(t.Month()) - 1 + months
	year, month := total/12, time.Month(total%12+1)
	day := min(t.Day(), daysInMonth(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstGridDay returns the date in the grid's top-left cell: the start of
// the week containing the focal month's first day.
func firstGridDay(focal time.Time, weekStart time.Weekday) time.Time {
	first := time.Date(focal.Year(), focal.Month(), 1, 0, 0, 0, 0, time.UTC)
	back := (int(first.Weekday()) - int(weekStart) + 7) % 7
	return first.AddDate(0, 0, -back)
}
