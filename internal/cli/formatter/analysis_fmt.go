package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fitcoach/internal/advisor"
	"github.com/alexanderramin/fitcoach/internal/app"
	"github.com/alexanderramin/fitcoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	DashboardTitle = "AI Smart Fitness Dashboard"
	SyncMessage    = "Synchronizing with wearable sensors..."
	WelcomeMessage = "Welcome! Adjust your profile with p, then press a to start your AI analysis."
	FooterCaption  = "Classical Machine Learning Activity Recognition v2.0 | Developed for Research & Fitness Optimization"
)

// FormatConnectivity renders the sensor link caption shown beside the profile.
func FormatConnectivity() string {
	return Bold("Sensor Connectivity:") + " " + StyleGreen.Render("ACTIVE") + "\n" +
		Dim("Connected to PAMAP2 IMU Sensors")
}

// FormatAnalysis renders the full result bundle of one analysis.
func FormatAnalysis(resp *app.AnalysisResponse) string {
	var b strings.Builder

	b.WriteString(Header(DashboardTitle))
	b.WriteString("\n")
	b.WriteString(FormatProfileLine(resp.Body, resp.Objective, resp.Source))
	b.WriteString("\n\n")

	if resp.NoData || resp.Decision == nil || resp.Reading == nil {
		b.WriteString(FormatNoData(resp.NoDataCause))
		b.WriteString("\n")
	} else {
		b.WriteString(FormatMetrics(*resp.Reading, resp.Decision.Status))
		b.WriteString("\n\n")
		b.WriteString(FormatPlan(*resp.Decision))
		b.WriteString("\n")
		b.WriteString(FormatNutrition(*resp.Decision, 20))
	}

	for _, w := range resp.Warnings {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("warning: ") + Dim(w))
	}
	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// FormatProfileLine renders "Profile: Normal · Cardio  Sensor: simulator".
func FormatProfileLine(body domain.BodyCategory, objective domain.Objective, source string) string {
	line := fmt.Sprintf("%s %s %s %s",
		Dim("Profile:"), Bold(body.Label()), Dim("·"), Bold(objective.Label()))
	if source != "" {
		line += "  " + Dim("Sensor: ") + StyleBlue.Render(source)
	}
	return line
}

// FormatMetrics renders the three vital metrics side by side.
func FormatMetrics(r domain.Reading, status domain.ActivityStatus) string {
	col := lipgloss.NewStyle().Width(24)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col.Render(Metric("Detected Movement", string(r.Label))),
		col.Render(Metric("Simulated Heart Rate", FormatBPM(r.HeartRate))),
		Dim("Activity Status")+"\n"+StatusIndicator(status),
	)
}

// FormatPlan renders the status message, expert note and exercise table.
func FormatPlan(d advisor.Decision) string {
	var b strings.Builder
	b.WriteString(MessageLine(d.Message))
	b.WriteString("\n\n")

	b.WriteString(Header("Expert Recommendation"))
	b.WriteString("\n")
	b.WriteString(d.Match.Record.ExpertNote)
	b.WriteString("\n")
	b.WriteString(Dim("Plan: ") + MatchBadge(d.Match.Kind))
	b.WriteString("\n\n")

	b.WriteString(Header("Suggested Exercises"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(d.Prescription))
	for _, row := range d.Prescription {
		rows = append(rows, []string{row.Exercise, row.Sets})
	}
	b.WriteString(RenderTable([]string{"Exercise Name", "Sets/Reps"}, rows))
	return b.String()
}

// FormatNutrition renders diet guidance and the intensity forecast gauge.
func FormatNutrition(d advisor.Decision, gaugeWidth int) string {
	var b strings.Builder
	b.WriteString(Header("Nutrition & Recovery"))
	b.WriteString("\n")
	b.WriteString(d.Match.Record.DietGuidance)
	b.WriteString("\n\n")

	b.WriteString(Header("Burn Forecast"))
	b.WriteString("\n")
	b.WriteString(Dim("Estimated Intensity:"))
	b.WriteString("\n")
	b.WriteString(RenderIntensity(d.IntensityForecast, gaugeWidth))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Intensity Level: %d%%", d.IntensityForecast)))
	b.WriteString("\n")
	return b.String()
}

// FormatNoData renders the explicit "no reading this cycle" state.
func FormatNoData(cause string) string {
	msg := StyleRed.Render("✖ No sensor data this cycle.") + " " +
		Dim("The classifier did not return a reading; nothing is shown from earlier runs.")
	if cause != "" {
		msg += "\n" + Dim("cause: "+cause)
	}
	return msg
}
