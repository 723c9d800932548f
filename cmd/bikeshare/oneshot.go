package main

import (
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/session"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/stats"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// oneshot loads a single selection and prints its report in the requested format
func oneshot(w io.Writer, loader *trips.Loader, sel trips.Selection, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}
	if !loader.HasCity(sel.City) {
		return fmt.Errorf("%w: %q (known: %v)", trips.ErrUnknownCity, sel.City, loader.Cities())
	}
	t, err := loader.Load(sel)
	if err != nil {
		return err
	}

	if format == "text" {
		return session.Report(w, t)
	}
	buf, err := formatter.NewResponseBuilder().BuildJSON(stats.Summarize(t, sel))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(buf))
	return err
}
