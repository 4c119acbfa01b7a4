package pdfdoc

import "sync"

// cachedDocument memoizes loaded pages. Keyword search visits every page once
// per keyword, and loading a PDF page interprets its content stream.
type cachedDocument struct {
	Document

	mu    sync.Mutex
	pages map[int]Page
}

// Cached wraps doc so each page is loaded at most once.
func Cached(doc Document) Document {
	return &cachedDocument{Document: doc, pages: make(map[int]Page)}
}

func (d *cachedDocument) Page(index int) (Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pages == nil {
		return nil, ErrClosed
	}
	if p, ok := d.pages[index]; ok {
		return p, nil
	}
	p, err := d.Document.Page(index)
	if err != nil {
		return nil, err
	}
	d.pages[index] = p
	return p, nil
}

func (d *cachedDocument) Close() error {
	d.mu.Lock()
	d.pages = nil
	d.mu.Unlock()
	return d.Document.Close()
}
