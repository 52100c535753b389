package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

type TableConfig struct {
	MonthWidth   int
	RevenueWidth int
	TrackWidth   int
	IndexWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MonthWidth:   8,
		RevenueWidth: 16,
		TrackWidth:   40,
		IndexWidth:   14,
	}
}

// Reporter renders simulation reports and artist profiles as plain-text
// tables for the terminal.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Handle renders a full simulation report: current revenue, target outcome,
// reverse requirements, and the month-by-month forecast for both policies.
func (r *Reporter) Handle(report *domain.SimulationReport) error {
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.0f", v)
		},
		"forecastRow": func(month int, compound, linear float64) string {
			return fmt.Sprintf("| %-*d | %-*.2f | %-*.2f |",
				r.config.MonthWidth, month,
				r.config.RevenueWidth, compound,
				r.config.RevenueWidth, linear)
		},
		"forecastHeader": func() string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				r.config.MonthWidth, "Month",
				r.config.RevenueWidth, "Compound",
				r.config.RevenueWidth, "Linear")
		},
		"forecastSep": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.MonthWidth+2),
				strings.Repeat("-", r.config.RevenueWidth+2),
				strings.Repeat("-", r.config.RevenueWidth+2))
		},
		"linearAt": func(series domain.RevenueSeries, i int) float64 {
			if i < len(series) {
				return series[i].Revenue
			}
			return 0
		},
	}

	tmpl := `
Revenue Simulation{{if .Artist}} - {{.Artist.Name}} (popularity {{.Artist.Popularity}}, followers {{.Artist.Followers}}){{end}}

=== Now ===
Monthly: {{money .Summary.MonthlyTotal}} (Spotify {{money .Summary.SpotifyMonthly}} / YouTube {{money .Summary.YouTubeMonthly}})
Yearly:  {{money .Summary.YearlyTotal}}
Growth:  {{printf "%.1f" .Input.GrowthPct}}% compound over {{.Input.Months}} months

=== Target {{money .Input.TargetIncome}} ===
{{if gt .ReachMonth 0}}Estimated to reach target in month {{.ReachMonth}}.
{{else}}Target not reached within the selected duration.
{{end}}{{if .RequiredGrowth.Err}}Required growth: {{.RequiredGrowth.Err}}
{{else}}Required growth to reach target by month {{.Input.Months}}: {{printf "%.2f" .RequiredGrowth.Rate}}%
{{end}}{{if .Requirement}}
Weighted rate: {{printf "%.3f" .Requirement.WeightedRate}} / stream
Required streams / month: total {{money .Requirement.TotalStreams}}, Spotify {{money .Requirement.SpotifyStreams}}, YouTube {{money .Requirement.YouTubeStreams}}
{{end}}
=== Forecast ===
{{forecastSep}}
{{forecastHeader}}
{{forecastSep}}
{{$linear := .Linear}}{{range $i, $p := .Compound}}{{forecastRow $p.Month $p.Revenue (linearAt $linear $i)}}
{{end}}{{forecastSep}}
`

	t, err := template.New("simulation").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}

// HandleProfile renders an artist overview and the relative track table.
func (r *Reporter) HandleProfile(profile *domain.ArtistProfile) error {
	funcMap := template.FuncMap{
		"trackRow": func(track string, index, duration int) string {
			return fmt.Sprintf("| %-*s | %-*d | %-*d |",
				r.config.TrackWidth, track,
				r.config.IndexWidth, index,
				r.config.IndexWidth, duration)
		},
		"trackHeader": func() string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				r.config.TrackWidth, "Track",
				r.config.IndexWidth, "Streams Index",
				r.config.IndexWidth, "Duration (s)")
		},
		"trackSep": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.TrackWidth+2),
				strings.Repeat("-", r.config.IndexWidth+2),
				strings.Repeat("-", r.config.IndexWidth+2))
		},
		"join": strings.Join,
	}

	tmpl := `
{{.Artist.Name}}

Popularity: {{.Artist.Popularity}}
Followers:  {{.Artist.Followers}}
Genres:     {{if .Artist.Genres}}{{join .Artist.Genres ", "}}{{else}}-{{end}}

{{trackSep}}
{{trackHeader}}
{{trackSep}}
{{range .Tracks}}{{trackRow .Track .StreamsIndex .DurationSec}}
{{end}}{{trackSep}}
`

	t, err := template.New("profile").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, profile)
}
