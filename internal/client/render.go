package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-poster-keeper/models"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	pendingStyle = cellStyle.Foreground(lipgloss.Color("214"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const (
	statePending = "pending"
	stateSynced  = "synced"
)

func formatLocation(l models.Location) string {
	return fmt.Sprintf("%.6f, %.6f", l.Lat, l.Lng)
}

// renderPosters lays the active posters out as a table. Unsynced rows are
// highlighted.
func renderPosters(posters []models.Poster) string {
	if len(posters) == 0 {
		return "no posters yet"
	}

	rows := make([][]string, 0, len(posters))
	for _, p := range posters {
		serverID := "-"
		if p.Synced() {
			serverID = strconv.FormatInt(*p.ServerID, 10)
		}
		state := stateSynced
		if p.PendingSync {
			state = statePending
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.LocalID, 10),
			serverID,
			strconv.FormatFloat(p.Location.Lat, 'f', 6, 64),
			strconv.FormatFloat(p.Location.Lng, 'f', 6, 64),
			state,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LOCAL", "SERVER", "LAT", "LNG", "STATE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][4] == statePending:
				return pendingStyle
			default:
				return cellStyle
			}
		})

	return t.String() + fmt.Sprintf("\n%d posters", len(posters))
}

// renderReport summarizes a sync cycle in a few lines.
func renderReport(report models.SyncReport) string {
	var b strings.Builder

	flush := report.Flush
	fmt.Fprintf(&b, "pushed: %d placed, %d removed, %d purged of %d pending\n",
		flush.Placed, flush.Removed, flush.Purged, flush.Attempted)
	for _, f := range flush.Failures {
		b.WriteString(failureStyle.Render(fmt.Sprintf("  %s #%d failed: %v", f.Op, f.LocalID, f.Err)))
		b.WriteByte('\n')
	}

	if report.PullErr != nil {
		b.WriteString(failureStyle.Render(fmt.Sprintf("pull failed: %v", report.PullErr)))
		return b.String()
	}

	fmt.Fprintf(&b, "pulled: %d changes", report.Pull.Applied)
	if !report.Pull.Checkpoint.IsZero() {
		fmt.Fprintf(&b, ", synchronized at %s", report.Pull.Checkpoint.Local().Format(time.DateTime))
	}
	if report.Tombstones > 0 {
		fmt.Fprintf(&b, "\ncleaned up %d removed posters", report.Tombstones)
	}
	return b.String()
}
