package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dnslens/internal/analysis"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF7DB")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Margin(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F5F")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	blockedBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
)

const barWidth = 30

func (m Model) View() string {
	title := titleStyle.Render("dnslens - AdGuard DNS Analytics")

	if m.loadErr != nil {
		errBox := errorStyle.Render(fmt.Sprintf("Error loading data: %v", m.loadErr))
		return lipgloss.JoinVertical(lipgloss.Left, title, errBox,
			dimStyle.Render("Press q to quit."))
	}

	if m.filterMode {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.viewFilterPanel())
	}

	overview := analysis.Summarize(m.filtered)
	metrics := lipgloss.JoinHorizontal(lipgloss.Top,
		infoStyle.Render(fmt.Sprintf("Total Queries\n%d", overview.Total)),
		infoStyle.Render(fmt.Sprintf("Blocked\n%d (%.1f%%)", overview.Blocked, overview.BlockedPct)),
		infoStyle.Render(fmt.Sprintf("Unique Domains\n%d", overview.UniqueDomains)),
		infoStyle.Render(fmt.Sprintf("Active Clients\n%d", overview.UniqueClients)),
		infoStyle.Render(fmt.Sprintf("Cached\n%d (%.1f%%)", overview.Cached, overview.CachedPct)),
	)

	var content string
	switch m.activeTab {
	case tabTimeline:
		content = m.viewTimeline()
	case tabDomains:
		content = m.viewDomains()
	case tabClients:
		content = m.viewClients()
	case tabFiltering:
		content = m.viewFiltering()
	case tabLog:
		content = m.viewLog()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		metrics,
		m.viewTabBar(),
		content,
		m.viewFilterSummary(),
	)
	if m.notice != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, dimStyle.Render(m.notice))
	}
	help := "tab/1-5 views · t time range · s status · f filters · / search · r refresh · e report · q quit"
	return body + "\n" + dimStyle.Render(help)
}

func (m Model) viewTabBar() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.activeTab {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewFilterSummary() string {
	parts := []string{"Time: " + presetNames[m.preset]}
	if m.preset == presetCustom && !m.fromDate.IsZero() {
		parts = append(parts, fmt.Sprintf("%s .. %s (,/. </> adjust)",
			m.fromDate.Format("2006-01-02"), m.toDate.Format("2006-01-02")))
	}
	switch m.status {
	case analysis.StatusFilteredOnly:
		parts = append(parts, "Status: Filtered Only")
	case analysis.StatusNotFilteredOnly:
		parts = append(parts, "Status: Not Filtered Only")
	default:
		parts = append(parts, "Status: All")
	}
	if n := len(m.selClients); n > 0 {
		parts = append(parts, fmt.Sprintf("Clients: %d selected", n))
	}
	if n := len(m.selDomains); n > 0 {
		parts = append(parts, fmt.Sprintf("Domains: %d selected", n))
	}
	if n := len(m.selTypes); n > 0 {
		parts = append(parts, fmt.Sprintf("Types: %d selected", n))
	}
	return dimStyle.Render(strings.Join(parts, " | "))
}

func (m Model) viewTimeline() string {
	points := analysis.QueriesPerHour(m.filtered)

	// Collapse client buckets into per-hour totals for the chart; the
	// per-client split stays available to the log and client views.
	type hourTotal struct {
		label string
		count int
	}
	var totals []hourTotal
	for _, p := range points {
		label := p.Hour.Format("Jan 02 15:04")
		if len(totals) > 0 && totals[len(totals)-1].label == label {
			totals[len(totals)-1].count += p.Count
		} else {
			totals = append(totals, hourTotal{label: label, count: p.Count})
		}
	}
	if len(totals) > 24 {
		totals = totals[len(totals)-24:]
	}

	max := 0
	for _, t := range totals {
		if t.count > max {
			max = t.count
		}
	}
	var b strings.Builder
	b.WriteString("Queries per Hour\n")
	if len(totals) == 0 {
		b.WriteString(dimStyle.Render("No queries in the selected range.") + "\n")
	}
	for _, t := range totals {
		b.WriteString(fmt.Sprintf("%s  %s %d\n", t.label, bar(t.count, max, barStyle), t.count))
	}

	b.WriteString("\nQueries by Hour of Day\n")
	b.WriteString(hourOfDayChart(analysis.HourOfDayCounts(m.filtered)))

	return infoStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewDomains() string {
	top := barChart("Top 20 Queried Domains", analysis.TopDomains(m.filtered, 20), barStyle)
	types := barChart("Query Types", analysis.QueryTypeCounts(m.filtered), barStyle)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		infoStyle.Render(top), infoStyle.Render(types))
}

func (m Model) viewClients() string {
	top := barChart("Top 20 Most Active Clients", analysis.TopClients(m.filtered, 20), barStyle)
	details := "Client Details\n" + m.clientTable.View()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		infoStyle.Render(top), infoStyle.Render(details))
}

func (m Model) viewFiltering() string {
	status := barChart("Query Filter Status", analysis.FilterStatusCounts(m.filtered), barStyle)
	blocked := barChart("Top 10 Blocked Domains", analysis.TopBlockedDomains(m.filtered, 10), blockedBarStyle)

	hours := analysis.BlockedPerHour(m.filtered)
	if len(hours) > 24 {
		hours = hours[len(hours)-24:]
	}
	max := 0
	for _, h := range hours {
		if h.Count > max {
			max = h.Count
		}
	}
	var b strings.Builder
	b.WriteString("Blocked Queries per Hour\n")
	if len(hours) == 0 {
		b.WriteString(dimStyle.Render("No blocked queries in the selected data.") + "\n")
	}
	for _, h := range hours {
		b.WriteString(fmt.Sprintf("%s  %s %d\n",
			h.Hour.Format("Jan 02 15:04"), bar(h.Count, max, blockedBarStyle), h.Count))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		infoStyle.Render(status),
		infoStyle.Render(blocked),
		infoStyle.Render(strings.TrimRight(b.String(), "\n")))
}

func (m Model) viewLog() string {
	header := "Query Log (most recent first)"
	if m.searching {
		header += "  " + m.search.View()
	} else if v := m.search.Value(); v != "" {
		header += dimStyle.Render(fmt.Sprintf("  search: %q (/ to edit)", v))
	}
	count := dimStyle.Render(fmt.Sprintf("Showing %d of %d entries",
		len(m.logTable.Rows()), len(m.filtered)))
	return infoStyle.Render(header + "\n" + m.logTable.View() + "\n" + count)
}

func (m Model) viewFilterPanel() string {
	var b strings.Builder
	for i, name := range facetNames {
		if facet(i) == m.activeFacet {
			b.WriteString(activeTabStyle.Render(name))
		} else {
			b.WriteString(tabStyle.Render(name))
		}
	}
	b.WriteString("\n\n")

	opts := m.facetOptions()
	sel := m.facetSelection()
	if len(opts) == 0 {
		b.WriteString(dimStyle.Render("No values in the current dataset.") + "\n")
	}

	// Window the list around the cursor so long client/domain sets stay
	// navigable.
	const pageSize = 15
	start := 0
	if m.cursor >= pageSize {
		start = m.cursor - pageSize + 1
	}
	end := start + pageSize
	if end > len(opts) {
		end = len(opts)
	}
	for i := start; i < end; i++ {
		mark := "[ ]"
		if sel[opts[i]] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, opts[i])
		if i == m.cursor {
			line = activeTabStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if end < len(opts) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("... %d more", len(opts)-end)) + "\n")
	}

	help := "←/→ facet · ↑/↓ move · space toggle · x clear · esc done"
	return infoStyle.Render(strings.TrimRight(b.String(), "\n") + "\n" + dimStyle.Render(help))
}

// barChart renders rows as "key  ███ count" lines scaled to the largest
// count.
func barChart(header string, rows []analysis.CountRow, style lipgloss.Style) string {
	max := 0
	keyWidth := 0
	for _, r := range rows {
		if r.Count > max {
			max = r.Count
		}
		if len(r.Key) > keyWidth {
			keyWidth = len(r.Key)
		}
	}
	if keyWidth > 28 {
		keyWidth = 28
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("No data.") + "\n")
	}
	for _, r := range rows {
		key := r.Key
		if len(key) > keyWidth {
			key = key[:keyWidth-1] + "…"
		}
		b.WriteString(fmt.Sprintf("%-*s  %s %d\n", keyWidth, key, bar(r.Count, max, style), r.Count))
	}
	return strings.TrimRight(b.String(), "\n")
}

func bar(count, max int, style lipgloss.Style) string {
	if max <= 0 {
		return ""
	}
	n := count * barWidth / max
	if n == 0 && count > 0 {
		n = 1
	}
	return style.Render(strings.Repeat("█", n))
}

// hourOfDayChart renders the 0-23 histogram as a two-line sparkline with an
// hour axis underneath.
func hourOfDayChart(buckets [24]int) string {
	levels := []rune(" ▁▂▃▄▅▆▇█")
	max := 0
	for _, c := range buckets {
		if c > max {
			max = c
		}
	}

	var spark strings.Builder
	for _, c := range buckets {
		idx := 0
		if max > 0 {
			idx = c * (len(levels) - 1) / max
			if idx == 0 && c > 0 {
				idx = 1
			}
		}
		spark.WriteRune(levels[idx])
		spark.WriteRune(' ')
	}

	var axis strings.Builder
	for h := 0; h < 24; h += 3 {
		axis.WriteString(fmt.Sprintf("%-6d", h))
	}
	return barStyle.Render(spark.String()) + "\n" + dimStyle.Render(axis.String())
}
