// Package reporting renders a static HTML snapshot of the dashboard's
// current (filtered) dataset.
package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dnslens/internal/analysis"
	"dnslens/internal/models"
)

// WriteSessionReport writes an HTML report over recs into dir and returns
// the generated file path.
func WriteSessionReport(recs []models.Record, dir string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("dnslens_report_%s.html", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	overview := analysis.Summarize(recs)
	topDomains := analysis.TopDomains(recs, 20)
	topClients := analysis.TopClients(recs, 20)
	statusCounts := analysis.FilterStatusCounts(recs)
	blockedDomains := analysis.TopBlockedDomains(recs, 10)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>dnslens DNS Analytics Report - %s</title>
    <style>
        body { font-family: sans-serif; margin: 20px; color: #333; }
        h1, h2 { color: #2c3e50; }
        table { width: 100%%; border-collapse: collapse; margin-bottom: 20px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        tr:nth-child(even) { background-color: #f9f9f9; }
        .summary { background: #eef; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .blocked { color: #d9534f; font-weight: bold; }
    </style>
</head>
<body>
    <h1>dnslens DNS Analytics Report</h1>
    <div class="summary">
        <p><strong>Date:</strong> %s</p>
        <p><strong>Total Queries:</strong> %d</p>
        <p><strong>Blocked:</strong> %d (%.1f%%)</p>
        <p><strong>Unique Domains:</strong> %d</p>
        <p><strong>Active Clients:</strong> %d</p>
        <p><strong>Cached:</strong> %d (%.1f%%)</p>
    </div>

    <h2>Top Queried Domains</h2>
    <table>
        <thead>
            <tr><th>Domain</th><th>Queries</th></tr>
        </thead>
        <tbody>
`, timestamp, time.Now().Format(time.RFC1123),
		overview.Total, overview.Blocked, overview.BlockedPct,
		overview.UniqueDomains, overview.UniqueClients,
		overview.Cached, overview.CachedPct)

	if len(topDomains) == 0 {
		html += "            <tr><td colspan=\"2\">No queries in the selected data.</td></tr>\n"
	}
	for _, row := range topDomains {
		html += fmt.Sprintf("            <tr><td>%s</td><td>%d</td></tr>\n", row.Key, row.Count)
	}

	html += `        </tbody>
    </table>

    <h2>Most Active Clients</h2>
    <table>
        <thead>
            <tr><th>Client</th><th>Queries</th></tr>
        </thead>
        <tbody>
`

	for _, row := range topClients {
		html += fmt.Sprintf("            <tr><td>%s</td><td>%d</td></tr>\n", row.Key, row.Count)
	}

	html += `        </tbody>
    </table>

    <h2>Filter Status</h2>
    <table>
        <thead>
            <tr><th>Status</th><th>Count</th></tr>
        </thead>
        <tbody>
`

	for _, row := range statusCounts {
		html += fmt.Sprintf("            <tr><td>%s</td><td>%d</td></tr>\n", row.Key, row.Count)
	}

	html += `        </tbody>
    </table>

    <h2>Top Blocked Domains</h2>
    <table>
        <thead>
            <tr><th>Domain</th><th>Blocked Count</th></tr>
        </thead>
        <tbody>
`

	if len(blockedDomains) == 0 {
		html += "            <tr><td colspan=\"2\">No blocked queries in the selected data.</td></tr>\n"
	} else {
		for _, row := range blockedDomains {
			html += fmt.Sprintf("            <tr><td class=\"blocked\">%s</td><td>%d</td></tr>\n", row.Key, row.Count)
		}
	}

	html += `        </tbody>
    </table>
</body>
</html>`

	if _, err := file.WriteString(html); err != nil {
		return "", err
	}

	return filename, nil
}
