// Package sheet models the host spreadsheet document the panels talk
// to. The panels consume a single operation — navigating to a named
// page — and treat the rest of the document as opaque.
package sheet

import (
	"fmt"
	"sync"
)

// Document is the host document collaborator.
type Document interface {
	// OpenPage navigates the document to the named page.
	OpenPage(name string) error
}

// Workbook is an in-memory Document with a fixed set of named pages.
type Workbook struct {
	mu     sync.Mutex
	pages  []string
	active string
}

// NewWorkbook creates a workbook with the given pages. The first page
// starts active. At least one page is required; a pageless workbook
// gets a single default page.
func NewWorkbook(pages ...string) *Workbook {
	if len(pages) == 0 {
		pages = []string{"Sheet1"}
	}
	return &Workbook{
		pages:  append([]string(nil), pages...),
		active: pages[0],
	}
}

// OpenPage navigates to the named page.
func (w *Workbook) OpenPage(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range w.pages {
		if p == name {
			w.active = name
			return nil
		}
	}
	return fmt.Errorf("sheet: no page named %q", name)
}

// ActivePage returns the currently active page name.
func (w *Workbook) ActivePage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

// Pages returns the page names in order.
func (w *Workbook) Pages() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.pages...)
}
