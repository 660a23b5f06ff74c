package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/ytget/idea-submitter/internal/model"
	"github.com/ytget/idea-submitter/internal/trello"
)

// Output formats
const (
	SubmittedFormat     = "Idea submitted: %s\n"
	DecodeFailureFormat = "Failed to decode JSON response: %s\n"
	RemoteErrorFormat   = "Error: %d, Response: %s\n"
	TransportFormat     = "Request failed: %v\n"
	CancelledFormat     = "Submission cancelled: %s\n"
	JSONIndent          = "    "
)

// Printer renders outcomes as plain text lines. Writes are serialized so
// concurrent submissions never interleave output.
type Printer struct {
	mu  sync.Mutex
	out io.Writer

	errColor  *color.Color
	warnColor *color.Color
}

// NewPrinter creates a printer writing to out; nil means standard output
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	return &Printer{
		out:       out,
		errColor:  color.New(color.FgRed),
		warnColor: color.New(color.FgYellow),
	}
}

// Submitted announces an idea before its request is sent
func (p *Printer) Submitted(content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, SubmittedFormat, content)
}

// Cancelled records that a submission was abandoned
func (p *Printer) Cancelled(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.warnColor.Fprintf(p.out, CancelledFormat, id)
}

// Result writes the outcome of one card creation attempt
func (p *Printer) Result(result *model.CardCreationResult, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var decodeErr *trello.DecodeError
	var remoteErr *trello.RemoteError

	switch {
	case errors.As(err, &decodeErr):
		p.errColor.Fprintf(p.out, DecodeFailureFormat, decodeErr.Body)
	case errors.As(err, &remoteErr):
		p.errColor.Fprintf(p.out, RemoteErrorFormat, remoteErr.StatusCode, remoteErr.Body)
	case err != nil:
		p.errColor.Fprintf(p.out, TransportFormat, err)
	case result == nil:
		// nothing was received and nothing failed; nothing to report
	default:
		pretty, perr := PrettyJSON(result.Payload)
		if perr != nil {
			fmt.Fprintln(p.out, result.RawBody)
			return
		}
		fmt.Fprint(p.out, pretty)
	}
}

// PrettyJSON encodes v with sorted object keys and a 4-space indent,
// leaving HTML characters unescaped. The output ends with a newline.
func PrettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return buf.String(), nil
}
