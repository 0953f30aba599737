// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package viewer is the interactive terminal page over an Explorer session:
// charts as text bars, an optional raw-data table and a keyword search box.
package viewer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/internal/search"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Page text.
const (
	PageTitle   = "CORD-19 Research Paper Explorer"
	PageIntro   = "Dive into the CORD-19 dataset to explore publications on COVID-19 and related research."
	DataSource  = "Data source: CORD-19 dataset"
	NoDataTitle = "No data to display."

	maxBarWidth = 40
)

// Model is the bubbletea model for the explorer page.
type Model struct {
	exp    *explorer.Explorer
	width  int
	height int

	showRaw bool
	raw     table.Model

	input   textinput.Model
	focused bool

	// outcome is nil until the first search runs.
	outcome *types.SearchOutcome
	results table.Model

	styles Styles
}

// New builds the page for exp.
func New(exp *explorer.Explorer) Model {
	in := textinput.New()
	in.Placeholder = "Enter a keyword (e.g., vaccine, transmission, mRNA)"
	in.CharLimit = 100
	in.Width = 50
	in.Prompt = "Search: "

	return Model{
		exp:     exp,
		raw:     newRecordTable(recordRows(exp.Sample(0), 0)),
		input:   in,
		results: newRecordTable(nil),
		styles:  DefaultStyles(),
	}
}

func newRecordTable(rows []table.Row) table.Model {
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Title", Width: 50},
			{Title: "Authors", Width: 24},
			{Title: "Year", Width: 6},
			{Title: "Journal", Width: 24},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
}

func recordRows(records []types.Record, offset int) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		year := ""
		if r.Year != nil {
			year = strconv.Itoa(*r.Year)
		}
		rows[i] = table.Row{
			strconv.Itoa(offset + i + 1),
			r.Title,
			r.Authors,
			year,
			r.Journal,
		}
	}
	return rows
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.focused {
			switch msg.String() {
			case "enter":
				m.runSearch()
				m.focused = false
				m.input.Blur()
				return m, nil
			case "esc":
				m.focused = false
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			m.showRaw = !m.showRaw
			return m, nil
		case "/":
			m.focused = true
			return m, m.input.Focus()
		case "enter":
			m.runSearch()
			return m, nil
		}
	}
	return m, nil
}

// runSearch searches for the input's current value. An empty value yields
// the no-keyword outcome.
func (m *Model) runSearch() {
	keyword := m.input.Value()
	out := m.exp.Search(keyword)
	m.outcome = &out
	m.results = newRecordTable(recordRows(out.Limit(m.exp.Config().ResultRows).Records, 0))
}

// Outcome returns the last search outcome, or nil before any search.
func (m Model) Outcome() *types.SearchOutcome {
	return m.outcome
}

// ShowingRaw reports whether the raw-data table is visible.
func (m Model) ShowingRaw() bool {
	return m.showRaw
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if banner := m.exp.Banner(); banner != "" {
		b.WriteString(m.styles.Error.Render(banner))
		b.WriteString("\n")
	}

	if m.exp.Empty() {
		b.WriteString(m.styles.Muted.Render(NoDataTitle))
		b.WriteString("\n")
		b.WriteString(m.footer())
		return b.String()
	}

	b.WriteString(m.styles.Title.Render(PageTitle))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(PageIntro))
	b.WriteString("\n")

	if m.showRaw {
		b.WriteString(m.styles.Header.Render("Raw Data Sample"))
		b.WriteString("\n")
		b.WriteString(m.raw.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render(fmt.Sprintf("Total papers in dataset: %d", m.exp.Total())))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Header.Render("Publications per Year"))
	b.WriteString("\n")
	b.WriteString(m.yearBars())

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Top %d Journals", m.exp.Config().TopJournals)))
	b.WriteString("\n")
	b.WriteString(m.journalBars())

	b.WriteString(m.styles.Header.Render("Search Papers by Keyword"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.searchView())

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) searchView() string {
	if m.outcome == nil {
		return m.styles.Muted.Render("Press / to type a keyword, enter to search.") + "\n"
	}

	var b strings.Builder
	switch m.outcome.Status {
	case types.SearchFound:
		b.WriteString(m.styles.Success.Render(m.outcome.Message()))
		b.WriteString("\n")
		b.WriteString(m.results.View())
		b.WriteString("\n")
	case types.SearchNoMatches:
		b.WriteString(m.styles.Warning.Render(m.outcome.Message()))
		b.WriteString("\n")
	default:
		b.WriteString(m.styles.Muted.Render(m.outcome.Message()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) footer() string {
	help := "r: raw data • /: search • enter: run search • esc: leave search • q: quit"
	return m.styles.Footer.Render(DataSource) + "\n" + m.styles.Muted.Render(help) + "\n"
}

func (m Model) yearBars() string {
	series := m.exp.PapersPerYear()
	if len(series) == 0 {
		return m.styles.Muted.Render("No dated papers.") + "\n"
	}
	labels := make([]string, len(series))
	counts := make([]int, len(series))
	for i, yc := range series {
		labels[i] = strconv.Itoa(yc.Year)
		counts[i] = yc.Count
	}
	return m.bars(labels, counts)
}

func (m Model) journalBars() string {
	series := m.exp.TopJournals(0)
	labels := make([]string, len(series))
	counts := make([]int, len(series))
	for i, jc := range series {
		labels[i] = search.Truncate(jc.Label(), 30)
		counts[i] = jc.Count
	}
	return m.bars(labels, counts)
}

// bars renders one horizontal bar per label, scaled to the largest count.
func (m Model) bars(labels []string, counts []int) string {
	return renderBars(labels, counts, m.barWidth(), m.styles)
}

func (m Model) barWidth() int {
	if m.width > 0 && m.width/2 < maxBarWidth {
		return max(m.width/2, 10)
	}
	return maxBarWidth
}

func renderBars(labels []string, counts []int, width int, st Styles) string {
	labelWidth, maxCount := 0, 0
	for i, l := range labels {
		labelWidth = max(labelWidth, len([]rune(l)))
		maxCount = max(maxCount, counts[i])
	}

	var b strings.Builder
	for i, l := range labels {
		n := 0
		if maxCount > 0 {
			n = counts[i] * width / maxCount
		}
		if counts[i] > 0 && n == 0 {
			n = 1
		}
		pad := strings.Repeat(" ", labelWidth-len([]rune(l)))
		fmt.Fprintf(&b, "%s%s │%s %d\n", l, pad, st.Bar.Render(strings.Repeat("█", n)), counts[i])
	}
	return b.String()
}
