package trips

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/utils"
)

// All disables a month or day filter
const All = "all"

// Months are the filterable months, in calendar order
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days are the filterable weekday names
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var (
	// ErrInvalidSelection is returned for a month or day outside the enumerations
	ErrInvalidSelection = errors.New("invalid selection")

	validate = newValidator()
)

// newValidator registers the "month" and "day" tags, each accepting All or a
// member of Months / Days
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("month", oneOfOrAll(Months))
	_ = v.RegisterValidation("day", oneOfOrAll(Days))
	return v
}

func oneOfOrAll(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == All || slices.Contains(values, s)
	}
}

// Selection is the city/month/day triple chosen for one analysis pass
type Selection struct {
	City  string `validate:"required"`
	Month string `validate:"required,month"`
	Day   string `validate:"required,day"`
}

// NewSelection normalizes the three answers (trimmed, lower case)
func NewSelection(city, month, day string) Selection {
	return Selection{
		City:  utils.Normalize(city),
		Month: utils.Normalize(month),
		Day:   utils.Normalize(day),
	}
}

// Validate checks month and day against their enumerations. City membership
// is the loader's concern.
func (s Selection) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	return nil
}

// ValidMonth reports whether s is "all" or one of Months
func ValidMonth(s string) bool {
	return validate.Var(s, "month") == nil
}

// ValidDay reports whether s is "all" or one of Days
func ValidDay(s string) bool {
	return validate.Var(s, "day") == nil
}

// MonthOrdinal returns the 1-based position of a month name within Months
func MonthOrdinal(name string) (int, error) {
	name = utils.Normalize(name)
	for i, m := range Months {
		if m == name {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: month %q", ErrInvalidSelection, name)
}

// Filter returns a new table holding the trips for which keep returns true
func (t *Table) Filter(keep func(Trip) bool) *Table {
	out := make([]Trip, 0, len(t.trips))
	for _, tr := range t.trips {
		if keep(tr) {
			out = append(out, tr)
		}
	}
	return &Table{City: t.City, Schema: t.Schema, trips: out}
}

// FilterMonth keeps trips whose derived month equals month (1-12)
func (t *Table) FilterMonth(month int) *Table {
	return t.Filter(func(tr Trip) bool { return tr.Valid && tr.Month == month })
}

// FilterDay keeps trips starting on the named weekday, matched case-insensitively
func (t *Table) FilterDay(day string) *Table {
	want := utils.TitleCase(strings.TrimSpace(day))
	return t.Filter(func(tr Trip) bool { return tr.Valid && tr.DayName == want })
}

// Apply runs the month filter, then the day filter. "all" skips a filter.
func (t *Table) Apply(month, day string) (*Table, error) {
	month, day = utils.Normalize(month), utils.Normalize(day)
	out := t
	if month != All {
		m, err := MonthOrdinal(month)
		if err != nil {
			return nil, err
		}
		out = out.FilterMonth(m)
	}
	if day != All {
		if !ValidDay(day) {
			return nil, fmt.Errorf("%w: day %q", ErrInvalidSelection, day)
		}
		out = out.FilterDay(day)
	}
	return out, nil
}
