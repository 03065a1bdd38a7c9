package entity

// DocumentContent is the output of text extraction for a single uploaded
// file: a plain-text rendering plus any tabular sheets kept separately as
// CSV so the extractor can hand them to the LLM with their structure intact.
type DocumentContent struct {
	Text   string
	Tables []DocumentTable
}

// DocumentTable is one sheet of a spreadsheet rendered as CSV.
type DocumentTable struct {
	SheetName  string
	CSV        string
	SourceFile string // Original filename, set when tables from several files are merged.
}
