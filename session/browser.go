package session

import (
	"fmt"

	"github.com/theoremus-urban-solutions/bikeshare-explorer/config"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/formatter"
	"github.com/theoremus-urban-solutions/bikeshare-explorer/trips"
)

// Browser pages through the raw rows of a table on request
type Browser struct {
	prompter *Prompter
	pageSize int
}

// NewBrowser creates a browser printing pageSize rows per page
func NewBrowser(p *Prompter, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	return &Browser{prompter: p, pageSize: pageSize}
}

// Browse offers to show rows and keeps paging while the answer is "yes".
// It stops on any other answer or once the last row has been shown.
func (b *Browser) Browse(t *trips.Table) error {
	offset := 0
	more, err := b.prompter.Confirm(fmt.Sprintf(
		"\nWould you like to view %d rows of individual trip data? Enter yes or no.\n", b.pageSize))
	for err == nil && more {
		if err = formatter.WriteRows(b.prompter.out, t.Schema, t.Page(offset, b.pageSize)); err != nil {
			break
		}
		offset += b.pageSize
		if offset >= t.Len() {
			break
		}
		more, err = b.prompter.Confirm("Do you wish to continue? Enter yes or no: ")
	}
	return err
}
