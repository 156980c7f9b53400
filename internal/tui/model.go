package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dnslens/internal/analysis"
	"dnslens/internal/models"
)

// DatasetFunc loads the normalized record set. The function is expected to
// be cheap inside the loaders' TTL windows, so the periodic refresh tick
// can call it freely.
type DatasetFunc func() ([]models.Record, error)

// ReportFunc exports an HTML report over the given records and returns the
// generated file path.
type ReportFunc func([]models.Record) (string, error)

type tab int

const (
	tabTimeline tab = iota
	tabDomains
	tabClients
	tabFiltering
	tabLog
)

var tabNames = []string{"Timeline", "Domains", "Clients", "Filtering", "Log"}

type facet int

const (
	facetClients facet = iota
	facetDomains
	facetTypes
)

var facetNames = []string{"Clients", "Domains", "Query Types"}

// Time range presets, cycled with "t". Custom uses the inclusive
// calendar-date range bounds held on the model.
const (
	presetLast24h = iota
	presetLastWeek
	presetLastMonth
	presetCustom
)

var presetNames = []string{"Last 24 Hours", "Last Week", "Last Month", "Custom"}

const maxLogRows = 500

// Model is the dashboard state.
type Model struct {
	load   DatasetFunc
	report ReportFunc
	now    func() time.Time

	records  []models.Record // full normalized set
	filtered []models.Record
	loadErr  error

	activeTab tab

	// Filter state.
	preset     int
	fromDate   time.Time
	toDate     time.Time
	selClients map[string]bool
	selDomains map[string]bool
	selTypes   map[string]bool
	status     analysis.StatusFilter

	// Filter panel.
	filterMode  bool
	activeFacet facet
	cursor      int

	// Log tab search.
	search    textinput.Model
	searching bool

	logTable    table.Model
	clientTable table.Model

	notice string
	width  int
	height int
}

// NewModel builds the dashboard around a dataset loader and a report writer.
func NewModel(load DatasetFunc, report ReportFunc) Model {
	logTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Time", Width: 19},
			{Title: "Client", Width: 18},
			{Title: "Queried Host", Width: 30},
			{Title: "TLD", Width: 20},
			{Title: "Type", Width: 6},
			{Title: "Status", Width: 22},
			{Title: "Upstream", Width: 24},
		}),
		table.WithFocused(true),
		table.WithHeight(16),
	)
	clientTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Client", Width: 24},
			{Title: "Total Queries", Width: 14},
			{Title: "Unique Domains", Width: 15},
			{Title: "Blocked", Width: 8},
			{Title: "Block Rate (%)", Width: 14},
		}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	logTable.SetStyles(s)
	clientTable.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "search queries"
	search.CharLimit = 64

	return Model{
		load:        load,
		report:      report,
		now:         time.Now,
		selClients:  make(map[string]bool),
		selDomains:  make(map[string]bool),
		selTypes:    make(map[string]bool),
		search:      search,
		logTable:    logTable,
		clientTable: clientTable,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd())
}

type dataMsg []models.Record

type errMsg struct{ err error }

type reportMsg struct {
	path string
	err  error
}

// TickMsg drives the periodic dataset refresh; reloading is cheap while the
// TTL caches are fresh.
type TickMsg time.Time

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		recs, err := load()
		if err != nil {
			return errMsg{err}
		}
		return dataMsg(recs)
	}
}

func (m Model) reportCmd() tea.Cmd {
	report := m.report
	recs := m.filtered
	return func() tea.Msg {
		path, err := report(recs)
		return reportMsg{path: path, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// activeFilter assembles the analysis filter from the sidebar state.
func (m Model) activeFilter() analysis.Filter {
	f := analysis.Filter{
		Clients:    m.selClients,
		Domains:    m.selDomains,
		QueryTypes: m.selTypes,
		Status:     m.status,
	}
	switch m.preset {
	case presetLast24h:
		f.Since = m.now().Add(-24 * time.Hour)
	case presetLastWeek:
		f.Since = m.now().AddDate(0, 0, -7)
	case presetLastMonth:
		f.Since = m.now().AddDate(0, 0, -30)
	case presetCustom:
		f.FromDate = m.fromDate
		f.ToDate = m.toDate
	}
	return f
}

// facetOptions lists the selectable values for the active facet. Options
// come from the full dataset so narrowing one facet does not hide the
// others' choices.
func (m Model) facetOptions() []string {
	switch m.activeFacet {
	case facetClients:
		return analysis.Clients(m.records)
	case facetDomains:
		return analysis.Domains(m.records)
	default:
		return analysis.QueryTypes(m.records)
	}
}

func (m Model) facetSelection() map[string]bool {
	switch m.activeFacet {
	case facetClients:
		return m.selClients
	case facetDomains:
		return m.selDomains
	default:
		return m.selTypes
	}
}
