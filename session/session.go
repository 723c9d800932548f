package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/utils"
)

const (
	greeting = "Hello! Let's explore some US bikeshare data!"

	invalidCity  = "Invalid input. Please enter a valid city name."
	invalidMonth = "Invalid input. Please enter a valid month."
	invalidDay   = "Invalid input. Please enter a valid day of the week."

	restartQuestion = "\nWould you like to restart? Enter yes or no.\n"
)

type state int

const (
	statePrompting  state = iota // collecting a selection
	stateLoaded                  // selection collected, table being loaded
	stateReporting               // table loaded, printing sections and rows
	stateAskRestart
)

func (s state) String() string {
	switch s {
	case statePrompting:
		return "prompting"
	case stateLoaded:
		return "loaded"
	case stateReporting:
		return "reporting"
	case stateAskRestart:
		return "ask-restart"
	}
	return "unknown"
}

// Session is one interactive exploration run
type Session struct {
	ID       string
	loader   *trips.Loader
	cities   []string
	prompter *Prompter
	browser  *Browser
	out      io.Writer
}

// New creates a session reading answers from in and writing to out
func New(cfg config.AppConfig, loader *trips.Loader, in io.Reader, out io.Writer) *Session {
	p := NewPrompter(in, out)
	return &Session{
		ID:       uuid.NewString(),
		loader:   loader,
		cities:   cfg.CityNames(),
		prompter: p,
		browser:  NewBrowser(p, cfg.Browser.PageSize),
		out:      out,
	}
}

// Run loops until the user declines to restart or input ends
func (s *Session) Run() error {
	var (
		sel  trips.Selection
		tbl  *trips.Table
		pass int
	)
	st := statePrompting
	for {
		log.Printf("session %s: pass %d %s", s.ID, pass, st)
		switch st {
		case statePrompting:
			pass++
			var err error
			sel, err = s.promptSelection()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			st = stateLoaded

		case stateLoaded:
			var err error
			tbl, err = s.loader.Load(sel)
			if err != nil {
				log.Printf("session %s: load %s: %v", s.ID, sel.City, err)
				if _, werr := fmt.Fprintf(s.out, "Could not load data for %s: %v\n", sel.City, err); werr != nil {
					return werr
				}
				st = stateAskRestart
				continue
			}
			st = stateReporting

		case stateReporting:
			if err := Report(s.out, tbl); err != nil {
				return err
			}
			if err := s.browser.Browse(tbl); err != nil {
				return err
			}
			st = stateAskRestart

		case stateAskRestart:
			again, err := s.prompter.Confirm(restartQuestion)
			if err != nil {
				return err
			}
			if !again {
				log.Printf("session %s: finished after %d pass(es)", s.ID, pass)
				return nil
			}
			st = statePrompting
		}
	}
}

func (s *Session) promptSelection() (trips.Selection, error) {
	if _, err := fmt.Fprintln(s.out, greeting); err != nil {
		return trips.Selection{}, err
	}

	city, err := s.prompter.Choose(
		fmt.Sprintf("Enter the name of the city (%s): ", strings.Join(s.cities, ", ")),
		invalidCity, s.loader.HasCity)
	if err != nil {
		return trips.Selection{}, err
	}
	month, err := s.prompter.Choose(
		fmt.Sprintf("Enter the month to filter by (%s, %s): ", trips.All, strings.Join(trips.Months, ", ")),
		invalidMonth, trips.ValidMonth)
	if err != nil {
		return trips.Selection{}, err
	}
	day, err := s.prompter.Choose(
		fmt.Sprintf("Enter the day of the week to filter by (%s, %s): ", trips.All, strings.Join(trips.Days, ", ")),
		invalidDay, trips.ValidDay)
	if err != nil {
		return trips.Selection{}, err
	}

	if _, err := fmt.Fprintln(s.out, formatter.Rule); err != nil {
		return trips.Selection{}, err
	}
	sel := trips.NewSelection(city, month, day)
	log.Printf("session %s: selected city=%s month=%s day=%s", s.ID, sel.City, sel.Month, sel.Day)
	return sel, nil
}

// Report runs every aggregator over t, printing each section with the time
// its computation took
func Report(w io.Writer, t *trips.Table) error {
	for _, a := range stats.Aggregators() {
		start := time.Now()
		lines := formatter.Lines(a.Compute(t))
		elapsed := time.Since(start)
		if err := formatter.WriteSection(w, a.Heading, lines, elapsed); err != nil {
			return err
		}
		log.Printf("%s: %s section over %s trips took %s", t.City, a.Name, utils.Count(t.Len()), elapsed)
	}
	return nil
}
