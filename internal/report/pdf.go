package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"sleeper-recap/internal/stats"
)

// Document is everything the renderer needs, already reduced to rows and
// strings. Schedule must be sorted and must not contain the league-average
// row; the renderer appends that row itself from AvgSOS.
type Document struct {
	LeagueName string
	Weeks      []int
	Standings  []stats.StandingsRow
	Schedule   []stats.ScheduleRow
	AvgSOS     float64
	Super      stats.Superlatives
	Closest    []stats.GameOfWeek
	Blowouts   []stats.GameOfWeek
}

// Filename builds the output name from the title prefix and week range,
// matching the "{prefix}_Weeks{min}_{max}_Recap.pdf" convention.
func Filename(prefix string, weeks []int) string {
	lo, hi := weekRange(weeks)
	return fmt.Sprintf("%s_Weeks%d_%d_Recap.pdf", prefix, lo, hi)
}

// Write lays out the recap and writes it to path. Nothing is written until
// the whole document has been assembled, so a failed run leaves no partial
// file behind.
func Write(path string, doc *Document, pick LinePicker) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(doc.LeagueName, false)
	pdf.AddPage()

	lo, hi := weekRange(doc.Weeks)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - Weeks %d-%d Recap", doc.LeagueName, lo, hi), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	writeBanterSection(pdf, "Top Dogs (Undefeated)", doc.Super.Undefeated, nil, pick, PraisesTop)
	writeBanterSection(pdf, "League Doormats (Winless)", doc.Super.Winless, nil, pick, RoastsDoormat)
	writeBanterSection(pdf, "Luckiest Teams (by All-Play vs Record)", doc.Super.Luckiest,
		func(t string) string { return fmt.Sprintf("%s (%+.2f)", t, doc.Super.Luck[t]) }, pick, RoastsLucky)
	writeBanterSection(pdf, "Unluckiest Teams (by All-Play vs Record)", doc.Super.Unluckiest,
		func(t string) string { return fmt.Sprintf("%s (%+.2f)", t, doc.Super.Luck[t]) }, pick, RoastsUnlucky)
	writeBanterSection(pdf, "Easiest Schedule (Lowest SOS)", doc.Super.Easiest,
		func(t string) string { return fmt.Sprintf("%s (SOS %.2f)", t, doc.Super.SOS[t]) }, pick, RoastsEasiest)
	writeBanterSection(pdf, "Hardest Schedule (Highest SOS)", doc.Super.Hardest,
		func(t string) string { return fmt.Sprintf("%s (SOS %.2f)", t, doc.Super.SOS[t]) }, pick, RoastsHardest)

	writeStandings(pdf, doc.Standings)
	writeSchedule(pdf, doc.Schedule, doc.AvgSOS)
	writeGames(pdf, doc.Closest, doc.Blowouts)

	heading(pdf, "Commissioner's Closing Words")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, closingWords, "", "L", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("assemble recap: %w", err)
	}
	return pdf.OutputFileAndClose(path)
}

func heading(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
}

// writeBanterSection prints a heading, the named teams, and one banter line.
// Sections with no teams are omitted entirely, matching the source layout.
func writeBanterSection(pdf *fpdf.Fpdf, title string, teams []string, label func(string) string, pick LinePicker, pool []string) {
	if len(teams) == 0 {
		return
	}
	labels := make([]string, len(teams))
	for i, t := range teams {
		if label != nil {
			labels[i] = label(t)
		} else {
			labels[i] = t
		}
	}

	heading(pdf, title)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, strings.Join(labels, ", "), "", "L", false)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 5, pick(pool), "", "L", false)
}

func writeStandings(pdf *fpdf.Fpdf, rows []stats.StandingsRow) {
	heading(pdf, "Standings")

	widths := []float64{66, 12, 12, 12, 25, 25, 25}
	headers := []string{"Team", "W", "L", "T", "PF", "PA", "Diff"}
	tableHeader(pdf, widths, headers, 25, 50, 110)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		cells := []string{
			r.Team,
			fmt.Sprintf("%d", r.Wins),
			fmt.Sprintf("%d", r.Losses),
			fmt.Sprintf("%d", r.Ties),
			fmt.Sprintf("%.2f", r.PointsFor),
			fmt.Sprintf("%.2f", r.PointsAgainst),
			fmt.Sprintf("%.2f", r.Differential),
		}
		tableRow(pdf, widths, cells)
	}
}

func writeSchedule(pdf *fpdf.Fpdf, rows []stats.ScheduleRow, avgSOS float64) {
	heading(pdf, "Strength of Schedule & Luck")

	widths := []float64{44, 10, 10, 10, 20, 20, 22, 20, 16, 22}
	headers := []string{"Team", "W", "L", "T", "PF", "PA", "SOS (OppAvg)", "All-Play%", "Exp W", "Luck"}
	tableHeader(pdf, widths, headers, 20, 90, 50)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		cells := []string{
			r.Team,
			fmt.Sprintf("%d", r.Wins),
			fmt.Sprintf("%d", r.Losses),
			fmt.Sprintf("%d", r.Ties),
			fmt.Sprintf("%.2f", r.PointsFor),
			fmt.Sprintf("%.2f", r.PointsAgainst),
			fmt.Sprintf("%.2f", r.SOS),
			fmt.Sprintf("%.3f", r.AllPlayPct),
			fmt.Sprintf("%.2f", r.ExpectedWins),
			fmt.Sprintf("%+.2f %s", r.Luck, r.LuckClass),
		}
		tableRow(pdf, widths, cells)
	}

	// Synthetic league-average row: SOS only, placeholders elsewhere.
	avg := []string{stats.LeagueAverageLabel, "", "", "", "-", "-", fmt.Sprintf("%.2f", avgSOS), "-", "-", "-"}
	tableRow(pdf, widths, avg)
}

func writeGames(pdf *fpdf.Fpdf, closest, blowouts []stats.GameOfWeek) {
	heading(pdf, "Heart-Attack Matchups")
	pdf.SetFont("Helvetica", "", 10)
	for _, g := range closest {
		pdf.MultiCell(0, 5, gameLine(g, "d."), "", "L", false)
	}

	heading(pdf, "Blowouts of the Week")
	pdf.SetFont("Helvetica", "", 10)
	for _, g := range blowouts {
		pdf.MultiCell(0, 5, gameLine(g, "over"), "", "L", false)
	}
}

// gameLine formats a game winner-first. A drawn game reads "tied with".
func gameLine(g stats.GameOfWeek, verb string) string {
	ta, sa := g.Game.TeamA, g.Game.ScoreA
	tb, sb := g.Game.TeamB, g.Game.ScoreB
	if g.Game.Winner == tb {
		ta, tb = tb, ta
		sa, sb = sb, sa
	}
	if g.Game.Winner == "" {
		verb = "tied with"
	}
	return fmt.Sprintf("Week %d: %s %.2f %s %s %.2f (margin %.2f)", g.Week, ta, sa, verb, tb, sb, g.Game.Margin)
}

func tableHeader(pdf *fpdf.Fpdf, widths []float64, headers []string, r, g, b int) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(r, g, b)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func tableRow(pdf *fpdf.Fpdf, widths []float64, cells []string) {
	for i, c := range cells {
		align := "C"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func weekRange(weeks []int) (lo, hi int) {
	if len(weeks) == 0 {
		return 0, 0
	}
	lo, hi = weeks[0], weeks[0]
	for _, w := range weeks[1:] {
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	return lo, hi
}
