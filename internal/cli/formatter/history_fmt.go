package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/domain"
)

// FormatHistory renders this session's runs, newest first.
func FormatHistory(resp *app.HistoryResponse, now time.Time) string {
	if resp == nil || len(resp.Runs) == 0 {
		return Dim("No analyses yet this session.") + "\n"
	}

	rows := make([][]string, 0, len(resp.Runs))
	for _, r := range resp.Runs {
		rows = append(rows, historyRow(r, now))
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"When", "Profile", "Movement", "HR", "Status", "Plan"}, rows))
	s := resp.Summary
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d runs · %d active · %d sedentary · %d without data",
		s.Total, s.Active, s.Sedentary, s.NoData)))
	b.WriteString("\n")
	return b.String()
}

func historyRow(r domain.AnalysisRun, now time.Time) []string {
	profile := r.Body.Label() + " · " + r.Objective.Label()
	if r.Outcome == domain.OutcomeNoData {
		return []string{HumanTimestamp(r.CreatedAt, now), profile, StyleRed.Render("no data"), "--", Dim("--"), Dim("--")}
	}
	return []string{
		HumanTimestamp(r.CreatedAt, now),
		profile,
		string(r.Label),
		FormatBPM(r.HeartRate),
		StatusIndicator(r.Status),
		r.MatchedKey,
	}
}
