// Package chart renders server-side PNG fallbacks of the dashboard views
// using gonum/plot. The browser normally draws its own charts from the JSON
// API; these renderings back the export command and the /charts endpoints.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"co-dashboard/internal/stats"
	"co-dashboard/internal/summary"
)

var (
	lineGreen = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	barGreen  = color.RGBA{R: 34, G: 139, B: 34, A: 255}
)

func writePNG(p *plot.Plot, w io.Writer, width, height vg.Length) error {
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// WriteNationalTrend renders the yearly national averages as a line chart.
func WriteNationalTrend(w io.Writer, averages []stats.YearlyAverage) error {
	if len(averages) == 0 {
		return stats.ErrEmptyDataset
	}

	p := plot.New()
	p.Title.Text = "Nigeria National Average CO"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "CO (mol/m²)"

	points := make(plotter.XYs, len(averages))
	yearLabels := make([]string, len(averages))
	for i, average := range averages {
		points[i].X = float64(i)
		points[i].Y = average.MeanCOValue
		yearLabels[i] = fmt.Sprintf("%d", average.Year)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = lineGreen
	line.Width = vg.Points(2)

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = lineGreen
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, scatter, plotter.NewGrid())
	p.NominalX(yearLabels...)

	return writePNG(p, w, 8*vg.Inch, 4*vg.Inch)
}

// WriteStateTrend renders one state's CO series as a line chart.
func WriteStateTrend(w io.Writer, trend summary.StateTrend) error {
	if len(trend.Points) == 0 {
		return stats.ErrEmptyDataset
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s CO Concentration", trend.State)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "CO (mol/m²)"

	points := make(plotter.XYs, len(trend.Points))
	yearLabels := make([]string, len(trend.Points))
	for i, point := range trend.Points {
		points[i].X = float64(i)
		points[i].Y = point.COValue
		yearLabels[i] = fmt.Sprintf("%d", point.Year)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = lineGreen
	line.Width = vg.Points(2)

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = lineGreen
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, scatter, plotter.NewGrid())
	p.NominalX(yearLabels...)

	return writePNG(p, w, 8*vg.Inch, 4*vg.Inch)
}

// WriteYearBars renders every state's value for one year as a bar chart,
// descending, so the top and bottom of the ranking are readable at a glance.
func WriteYearBars(w io.Writer, year int, slice stats.YearSlice) error {
	if len(slice) == 0 {
		return stats.ErrEmptyDataset
	}

	ranking, err := stats.Rank(slice, len(slice))
	if err != nil {
		return err
	}

	values := make(plotter.Values, len(ranking.TopN))
	labels := make([]string, len(ranking.TopN))
	for i, entry := range ranking.TopN {
		values[i] = entry.COValue
		labels[i] = entry.State
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("CO by State, %d", year)
	p.Y.Label.Text = "CO (mol/m²)"

	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return err
	}
	bars.Color = barGreen
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 1.0
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return writePNG(p, w, 14*vg.Inch, 6*vg.Inch)
}
