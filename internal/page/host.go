// internal/page/host.go
// Package page writes the dashboard as a self-contained HTML file and binds
// the chart option to its hosting element.
package page

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/mwiater/crossboard/internal/plan"
	"github.com/mwiater/crossboard/internal/summary"
)

var (
	// ErrHostElementMissing means the page has no element to draw the chart
	// in. It is a configuration defect, not a runtime condition.
	ErrHostElementMissing = errors.New("chart host element missing from page")
	// ErrAlreadyBound is returned when a Host is asked to bind a second plan.
	ErrAlreadyBound = errors.New("chart host already bound")
)

var (
	pageTemplate     = template.Must(template.New("dashboard").Parse(pageTemplateHTML))
	fallbackTemplate = template.Must(template.New("fallback").Parse(fallbackTemplateHTML))
)

// Options describes the page around the chart.
type Options struct {
	Title      string
	ElementID  string
	Width      int
	Height     int
	EChartsURL string
	// Template overrides the built-in page template.
	Template *template.Template
}

type pageData struct {
	Title      string
	ElementID  string
	Width      int
	Height     int
	EChartsURL string
	Summaries  []summary.Block
	OptionJSON template.JS
}

// Host binds one plan to one page, once.
type Host struct {
	opts  Options
	tmpl  *template.Template
	bound bool
}

// NewHost returns a Host using opts.Template or the built-in page.
func NewHost(opts Options) *Host {
	tmpl := opts.Template
	if tmpl == nil {
		tmpl = pageTemplate
	}
	return &Host{opts: opts, tmpl: tmpl}
}

// LoadTemplate parses a custom page template from disk.
func LoadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read page template %s: %w", path, err)
	}
	tmpl, err := template.New("dashboard").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse page template %s: %w", path, err)
	}
	return tmpl, nil
}

// Bind renders p into the page and writes it to w. Nothing is written if
// the rendered page lacks the hosting element.
func (h *Host) Bind(w io.Writer, p *plan.RenderPlan) error {
	if h.bound {
		return ErrAlreadyBound
	}
	if p == nil {
		return errors.New("no render plan to bind")
	}

	payload, err := json.Marshal(p.Chart)
	if err != nil {
		return fmt.Errorf("unable to marshal chart option: %w", err)
	}

	data := pageData{
		Title:      h.opts.Title,
		ElementID:  h.opts.ElementID,
		Width:      h.opts.Width,
		Height:     h.opts.Height,
		EChartsURL: h.opts.EChartsURL,
		Summaries:  p.Summaries,
		OptionJSON: template.JS(payload),
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("unable to render page: %w", err)
	}

	found, err := hasElementID(buf.Bytes(), h.opts.ElementID)
	if err != nil {
		return fmt.Errorf("unable to inspect rendered page: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: no element with id %q", ErrHostElementMissing, h.opts.ElementID)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	h.bound = true
	return nil
}

// WriteFallback writes the page shown when there is nothing to render: a
// single human-readable message and no chart.
func WriteFallback(w io.Writer, title, message string) error {
	return fallbackTemplate.Execute(w, struct {
		Title   string
		Message string
	}{Title: title, Message: message})
}

func hasElementID(page []byte, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return false, err
	}
	return findElementByID(root, id) != nil, nil
}

func findElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
