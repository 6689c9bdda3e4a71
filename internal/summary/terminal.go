package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/crossboard/internal/leaderboard"
	"github.com/mwiater/crossboard/internal/util"
)

const maxLabelRunes = 40

// Row is one run's line in the terminal summary.
type Row struct {
	Label      string
	Timestamp  leaderboard.Number
	Instances  int
	NoData     int
	Score      leaderboard.Number
	DurationMs float64
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
)

// RenderTerminal writes a table with one row per run.
func RenderTerminal(w io.Writer, title string, rows []Row) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s: %d runs", title, len(rows)))); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("nothing to show"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Run", "Time", "Instances", "No data", "Score", "Duration").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, r := range rows {
		when := "-"
		if r.Timestamp.Valid {
			when = util.FormatUnix(r.Timestamp.Value)
		}
		score := "-"
		if r.Score.Valid {
			score = strconv.FormatFloat(r.Score.Value, 'f', 3, 64)
		}
		duration := "-"
		if r.DurationMs > 0 {
			duration = util.FormatDuration(r.DurationMs)
		}
		t.Row(
			strconv.Itoa(i),
			util.TruncateRunes(r.Label, maxLabelRunes),
			when,
			strconv.Itoa(r.Instances),
			strconv.Itoa(r.NoData),
			score,
			duration,
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
