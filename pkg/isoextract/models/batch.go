package models

// FileResult is the outcome of processing one document.
type FileResult struct {
	// Name is the document file name (no directory).
	Name string `json:"name"`
	// Table is set when extraction succeeded.
	Table *ExtractedTable `json:"table,omitempty"`
	// Kind is the failure kind (empty on success).
	Kind string `json:"kind,omitempty"`
	// Reason is a short human-readable failure reason.
	Reason string `json:"reason,omitempty"`
	// Err is the underlying error (not serialized).
	Err error `json:"-"`
}

// OK reports whether the document produced a table.
func (r FileResult) OK() bool {
	return r.Table != nil
}

// BatchResult collects per-document outcomes of a folder run.
type BatchResult struct {
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id"`
	// Folder is the processed directory.
	Folder string `json:"folder"`
	// Header is the column header of the combined table.
	Header []string `json:"header"`
	// Files holds one result per document in processing order.
	Files []FileResult `json:"files"`
}

// Rows concatenates the rows of every successful document, keeping
// document order and per-document row order.
func (b *BatchResult) Rows() [][]string {
	var rows [][]string
	for _, f := range b.Files {
		if f.Table != nil {
			rows = append(rows, f.Table.Rows...)
		}
	}
	return rows
}

// Succeeded returns the number of documents that produced a table.
func (b *BatchResult) Succeeded() int {
	n := 0
	for _, f := range b.Files {
		if f.OK() {
			n++
		}
	}
	return n
}

// Failed returns the results of documents that were skipped.
func (b *BatchResult) Failed() []FileResult {
	var failed []FileResult
	for _, f := range b.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

// Sheet returns the combined table.
func (b *BatchResult) Sheet() Sheet {
	return Sheet{
		Name:   "extracted_data",
		Header: b.Header,
		Rows:   b.Rows(),
	}
}
