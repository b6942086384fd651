package teletext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Page number domain served by the teletext front end.
const (
	MinPage   = 100
	MaxPage   = 899
	StartPage = 100
)

// ErrUnknownPage is returned when a page is not present in the index.
var ErrUnknownPage = errors.New("teletext: unknown page")

// Index maps existing page numbers to their sub-page counts. It is
// immutable after ParseIndex and safe to use with a nil receiver, in
// which case every page is unknown.
type Index struct {
	pages map[int]int
}

// ParseIndex extracts the page directory from the pages document. The
// directory is the single {…} delimited, comma-separated list of
// page:subpagecount pairs embedded in the document body. Any malformed
// entry fails the whole load; a partial index would validate pages
// that may not exist.
func ParseIndex(doc string) (*Index, error) {
	_, rest, ok := strings.Cut(doc, "{")
	if !ok {
		return nil, errors.New("teletext: page directory not found in document")
	}
	body, _, ok := strings.Cut(rest, "}")
	if !ok {
		return nil, errors.New("teletext: unterminated page directory")
	}

	pages := make(map[int]int)
	for _, entry := range strings.Split(body, ",") {
		key, value, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("teletext: malformed directory entry %q", entry)
		}
		page, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("teletext: invalid page number %q", strings.TrimSpace(key))
		}
		count, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("teletext: invalid sub-page count %q", strings.TrimSpace(value))
		}
		if page < MinPage || page > MaxPage {
			return nil, fmt.Errorf("teletext: page %d outside %d-%d", page, MinPage, MaxPage)
		}
		if count < 1 {
			return nil, fmt.Errorf("teletext: page %d has sub-page count %d", page, count)
		}
		if _, exists := pages[page]; exists {
			return nil, fmt.Errorf("teletext: duplicate directory entry for page %d", page)
		}
		pages[page] = count
	}
	return &Index{pages: pages}, nil
}

// IsValid reports whether page exists in the index.
func (ix *Index) IsValid(page int) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.pages[page]
	return ok
}

// SubPageCount returns the number of sub-pages of page.
func (ix *Index) SubPageCount(page int) (int, error) {
	if ix == nil {
		return 0, ErrUnknownPage
	}
	count, ok := ix.pages[page]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPage, page)
	}
	return count, nil
}

// Len returns the number of pages in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.pages)
}
