package report

// Package report is the console log sink for submission outcomes: created
// cards are echoed as sorted, indented JSON and failures as one-line notices.
