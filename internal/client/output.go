package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/MKhiriev/beer-battle/models"
)

var (
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	danger  = color.New(color.FgRed)
	faint   = color.New(color.Faint)
	bold    = color.New(color.Bold)
)

func statusColor(status models.HealthStatus) *color.Color {
	switch status {
	case models.HealthLow:
		return success
	case models.HealthModerate:
		return warning
	default:
		return danger
	}
}

func printRecords(w io.Writer, records []models.AlcoholRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}
	for _, rec := range records {
		printRecord(w, rec)
	}
}

func printRecord(w io.Writer, rec models.AlcoholRecord) {
	fmt.Fprintf(w, "%s %s %s %-20s %5d ml %5.1f%% %7.1f ml pure\n",
		faint.Sprint(rec.ID),
		models.FormatDate(rec.Date),
		time.Weekday(rec.DayOfWeek-1).String()[:3],
		rec.DrinkName,
		rec.Milliliters,
		rec.Percentage,
		rec.PureAlcohol(),
	)
}

func printSummary(w io.Writer, summary models.WeeklySummary) {
	bold.Fprintf(w, "Week of %s\n", models.FormatDate(summary.WeekStart))
	for day, pure := range summary.PerDay {
		fmt.Fprintf(w, "  %s %7.1f ml\n", time.Weekday(day).String()[:3], pure)
	}
	fmt.Fprintf(w, "  Total %5.1f ml pure alcohol in %d records, status %s\n",
		summary.PureAlcohol,
		summary.Records,
		statusColor(summary.Status).Sprint(summary.Status),
	)
}

func printEvents(w io.Writer, events []models.Evento) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}
	for _, ev := range events {
		printEvent(w, ev)
	}
}

func printEvent(w io.Writer, ev models.Evento) {
	line := fmt.Sprintf("%s %s", faint.Sprint(ev.ID), bold.Sprint(ev.Title))
	if ev.Date != "" {
		line += " @ " + ev.Date
	}
	if ev.Description != "" {
		line += faint.Sprintf(" (%s)", truncate(ev.Description, 40))
	}
	fmt.Fprintln(w, line)
}

func printNotes(w io.Writer, notes []models.Nota) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(w, "%s %s %s\n", faint.Sprint(n.ID), bold.Sprint(n.Title), truncate(n.Content, 50))
	}
}

func printUsers(w io.Writer, users []models.Usuario) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}
	for _, u := range users {
		fmt.Fprintf(w, "%s %s, %d\n", faint.Sprint(u.ID), u.Name, u.Age)
	}
}

func printResult(w io.Writer, r models.ReconcileResult) {
	fmt.Fprintf(w, "%s %-8s flushed %d, upserted %d, deleted %d, pushed %d, skipped %d\n",
		success.Sprint("✓"),
		r.Kind,
		r.Flushed,
		r.Upserted,
		r.Deleted,
		r.Pushed,
		r.Skipped,
	)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
