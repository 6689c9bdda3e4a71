// internal/leaderboard/loader.go
package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mwiater/crossboard/internal/logging"
)

// Load operations reported in LoadError.Op.
const (
	OpFetch    = "fetch"
	OpParse    = "parse"
	OpValidate = "validate"
)

const defaultTimeout = 30 * time.Second

// ErrMalformed marks a document without a usable all_runs sequence.
var ErrMalformed = errors.New("malformed leaderboard document")

// LoadError reports why a leaderboard document could not be obtained.
type LoadError struct {
	Source string
	Op     string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("leaderboard %s %s: %v", e.Op, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FallbackMessage is the text shown in place of the dashboard when the
// document cannot be loaded.
func FallbackMessage(regenerateCommand string) string {
	return fmt.Sprintf("Missing leaderboard JSON. Try running `%s`", regenerateCommand)
}

// Loader obtains a leaderboard document from a file, an http(s) URL or a
// directory of per-team stats CSV files.
type Loader struct {
	Client         *http.Client
	Timeout        time.Duration
	ValidateSchema bool
}

// NewLoader returns a Loader with its own HTTP client.
func NewLoader(timeout time.Duration, validate bool) *Loader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Loader{
		Client:         &http.Client{},
		Timeout:        timeout,
		ValidateSchema: validate,
	}
}

// Load retrieves and parses the document at source. Every failure is a
// *LoadError; callers treat it as "nothing to render".
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		data []byte
		err  error
	)
	switch {
	case isRemote(source):
		data, err = l.fetch(ctx, source)
	default:
		info, statErr := os.Stat(source)
		if statErr != nil {
			return nil, &LoadError{Source: source, Op: OpFetch, Err: statErr}
		}
		if info.IsDir() {
			doc, dirErr := LoadStatsDir(ctx, source)
			if dirErr != nil {
				return nil, &LoadError{Source: source, Op: OpParse, Err: dirErr}
			}
			logging.LogLoad(OpParse, source, map[string]int{"runs": len(doc.AllRuns)})
			return doc, nil
		}
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Op: OpFetch, Err: err}
	}
	logging.LogLoad(OpFetch, source, map[string]int{"bytes": len(data)})

	if l.ValidateSchema {
		if err := ValidateSchema(data); err != nil {
			return nil, &LoadError{Source: source, Op: OpValidate, Err: err}
		}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Source: source, Op: OpParse, Err: err}
	}
	logging.LogLoad(OpParse, source, map[string]int{"runs": len(doc.AllRuns)})
	return doc, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Parse decodes a leaderboard document. all_runs must be present and be an
// array; an empty array is a valid, empty document.
func Parse(data []byte) (*Document, error) {
	var probe struct {
		AllRuns json.RawMessage `json:"all_runs"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	raw := bytes.TrimSpace(probe.AllRuns)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: all_runs must be an array", ErrMalformed)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.AllRuns == nil {
		doc.AllRuns = []Run{}
	}
	return &doc, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
