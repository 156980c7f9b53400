package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"dnslens/internal/analysis"
	"dnslens/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataMsg:
		m.records = msg
		m.loadErr = nil
		if m.fromDate.IsZero() {
			m.fromDate, m.toDate = dateBounds(m.records)
		}
		m.refilter()
		return m, nil

	case errMsg:
		m.loadErr = msg.err
		return m, nil

	case reportMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("report failed: %v", msg.err)
		} else {
			m.notice = "report written to " + msg.path
		}
		return m, nil

	case TickMsg:
		return m, tea.Batch(m.loadCmd(), tickCmd())

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.refilter()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refilter()
		return m, cmd
	}

	if m.filterMode {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activeTab = (m.activeTab + 1) % tab(len(tabNames))
	case "shift+tab":
		m.activeTab = (m.activeTab + tab(len(tabNames)) - 1) % tab(len(tabNames))
	case "1", "2", "3", "4", "5":
		m.activeTab = tab(int(msg.String()[0] - '1'))

	case "t":
		m.preset = (m.preset + 1) % len(presetNames)
		if m.preset == presetCustom && m.fromDate.IsZero() {
			m.fromDate, m.toDate = dateBounds(m.records)
		}
		m.refilter()
	case "s":
		m.status = (m.status + 1) % 3
		m.refilter()

	case ",":
		if m.preset == presetCustom {
			m.fromDate = m.fromDate.AddDate(0, 0, -1)
			m.refilter()
		}
	case ".":
		// from never passes to
		if m.preset == presetCustom && !m.fromDate.AddDate(0, 0, 1).After(m.toDate) {
			m.fromDate = m.fromDate.AddDate(0, 0, 1)
			m.refilter()
		}
	case ">":
		if m.preset == presetCustom {
			m.toDate = m.toDate.AddDate(0, 0, 1)
			m.refilter()
		}
	case "<":
		if m.preset == presetCustom && !m.toDate.AddDate(0, 0, -1).Before(m.fromDate) {
			m.toDate = m.toDate.AddDate(0, 0, -1)
			m.refilter()
		}

	case "f":
		m.filterMode = true
		m.cursor = 0

	case "/":
		if m.activeTab == tabLog {
			m.searching = true
			m.search.Focus()
			return m, nil
		}

	case "r":
		m.notice = ""
		return m, m.loadCmd()

	case "e":
		return m, m.reportCmd()
	}

	if m.activeTab == tabLog {
		var cmd tea.Cmd
		m.logTable, cmd = m.logTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	opts := m.facetOptions()
	switch msg.String() {
	case "esc", "f", "q":
		m.filterMode = false
	case "left", "h":
		m.activeFacet = (m.activeFacet + facet(len(facetNames)) - 1) % facet(len(facetNames))
		m.cursor = 0
	case "right", "l":
		m.activeFacet = (m.activeFacet + 1) % facet(len(facetNames))
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case " ", "space":
		if m.cursor < len(opts) {
			sel := m.facetSelection()
			key := opts[m.cursor]
			if sel[key] {
				delete(sel, key)
			} else {
				sel[key] = true
			}
			m.refilter()
		}
	case "x":
		sel := m.facetSelection()
		for k := range sel {
			delete(sel, k)
		}
		m.refilter()
	}
	return m, nil
}

// refilter re-applies the active filter and rebuilds the table rows.
func (m *Model) refilter() {
	m.filtered = analysis.Apply(m.records, m.activeFilter())
	m.rebuildLogTable()
	m.rebuildClientTable()
}

func (m *Model) rebuildLogTable() {
	recent := make([]models.Record, len(m.filtered))
	copy(recent, m.filtered)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Time.After(recent[j].Time)
	})

	needle := strings.ToLower(m.search.Value())
	rows := make([]table.Row, 0, len(recent))
	for _, r := range recent {
		row := table.Row{
			r.Time.Format("2006-01-02 15:04:05"),
			r.Client,
			r.Host,
			r.TopLevelDomain,
			r.QueryType,
			r.FilterStatus,
			r.Upstream,
		}
		if needle != "" && !rowContains(row, needle) {
			continue
		}
		rows = append(rows, row)
		if len(rows) == maxLogRows {
			break
		}
	}
	m.logTable.SetRows(rows)
}

func (m *Model) rebuildClientTable() {
	stats := analysis.ClientBreakdown(m.filtered)
	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{
			s.Client,
			fmt.Sprintf("%d", s.Total),
			fmt.Sprintf("%d", s.UniqueDomains),
			fmt.Sprintf("%d", s.Blocked),
			fmt.Sprintf("%.1f", s.BlockRate),
		}
	}
	m.clientTable.SetRows(rows)
}

func rowContains(row table.Row, needle string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

// dateBounds returns the earliest and latest calendar dates in recs, used
// to seed the custom range.
func dateBounds(recs []models.Record) (time.Time, time.Time) {
	if len(recs) == 0 {
		return time.Time{}, time.Time{}
	}
	min, max := recs[0].Time, recs[0].Time
	for _, r := range recs[1:] {
		if r.Time.Before(min) {
			min = r.Time
		}
		if r.Time.After(max) {
			max = r.Time
		}
	}
	return min, max
}
