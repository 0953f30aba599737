// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart renders the papers-per-year and top-journals series as
// SVG or PNG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pdiddy/paper-explorer/internal/search"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// ErrNoData is returned when a series has nothing to plot.
var ErrNoData = errors.New("no data to plot")

const (
	defaultWidth  = 1000
	defaultHeight = 600

	maxYearTicks   = 12
	maxLabelLength = 18
)

// PapersPerYearTitle is the title of the per-year chart.
const PapersPerYearTitle = "Number of Papers Published by Year"

// TopJournalsTitle is the title of a top-journals chart with n bars.
func TopJournalsTitle(n int) string {
	return fmt.Sprintf("Top %d Journals by Publication Count", n)
}

var (
	lineColor = drawing.ColorFromHex("3b528b")
	barColors = []drawing.Color{
		drawing.ColorFromHex("440154"),
		drawing.ColorFromHex("482878"),
		drawing.ColorFromHex("3e4989"),
		drawing.ColorFromHex("31688e"),
		drawing.ColorFromHex("26828e"),
		drawing.ColorFromHex("1f9e89"),
		drawing.ColorFromHex("35b779"),
		drawing.ColorFromHex("6ece58"),
		drawing.ColorFromHex("b5de2b"),
		drawing.ColorFromHex("fde725"),
	}
)

// Extension returns the file extension for format, defaulting to svg.
func Extension(format types.ChartFormat) string {
	if format == types.ChartPNG {
		return "png"
	}
	return "svg"
}

// ContentType returns the MIME type for format.
func ContentType(format types.ChartFormat) string {
	if format == types.ChartPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ParseFormat maps a name to a ChartFormat.
func ParseFormat(name string) (types.ChartFormat, error) {
	switch name {
	case "", "svg":
		return types.ChartSVG, nil
	case "png":
		return types.ChartPNG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q: use svg or png", name)
	}
}

func renderer(format types.ChartFormat) gochart.RendererProvider {
	if format == types.ChartPNG {
		return gochart.PNG
	}
	return gochart.SVG
}

func size(cfg types.ChartConfig) (int, int) {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// RenderPapersPerYear draws the per-year series as a line chart.
func RenderPapersPerYear(w io.Writer, series []types.YearCount, cfg types.ChartConfig) error {
	if len(series) == 0 {
		return ErrNoData
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	maxCount := 0
	for i, yc := range series {
		xs[i] = float64(yc.Year)
		ys[i] = float64(yc.Count)
		if yc.Count > maxCount {
			maxCount = yc.Count
		}
	}

	first, last := series[0].Year, series[len(series)-1].Year
	if first == last {
		first--
		last++
	}

	width, height := size(cfg)
	c := gochart.Chart{
		Title:  PapersPerYearTitle,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           "Year",
			Range:          &gochart.ContinuousRange{Min: float64(first), Max: float64(last)},
			Ticks:          yearTicks(first, last),
			ValueFormatter: intFormatter,
		},
		YAxis: gochart.YAxis{
			Name:           "Number of Publications",
			Range:          &gochart.ContinuousRange{Min: 0, Max: countCeiling(maxCount)},
			ValueFormatter: intFormatter,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    "papers",
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	if err := c.Render(renderer(cfg.Format), w); err != nil {
		return fmt.Errorf("rendering papers per year: %w", err)
	}
	return nil
}

// RenderTopJournals draws the top-journals series as a bar chart. The
// missing-journal group is labelled "(unknown)".
func RenderTopJournals(w io.Writer, series []types.JournalCount, cfg types.ChartConfig) error {
	if len(series) == 0 {
		return ErrNoData
	}

	bars := make([]gochart.Value, len(series))
	maxCount := 0
	for i, jc := range series {
		bars[i] = gochart.Value{
			Label: search.Truncate(jc.Label(), maxLabelLength),
			Value: float64(jc.Count),
			Style: gochart.Style{
				FillColor:   barColors[i%len(barColors)],
				StrokeColor: barColors[i%len(barColors)],
			},
		}
		if jc.Count > maxCount {
			maxCount = jc.Count
		}
	}

	width, height := size(cfg)
	c := gochart.BarChart{
		Title:  TopJournalsTitle(len(series)),
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth:   barWidth(width, len(bars)),
		BarSpacing: barWidth(width, len(bars)),
		YAxis: gochart.YAxis{
			Name:           "Number of Publications",
			Range:          &gochart.ContinuousRange{Min: 0, Max: countCeiling(maxCount)},
			ValueFormatter: intFormatter,
		},
		Bars: bars,
	}

	if err := c.Render(renderer(cfg.Format), w); err != nil {
		return fmt.Errorf("rendering top journals: %w", err)
	}
	return nil
}

// yearTicks spreads at most maxYearTicks integer ticks over [first, last].
func yearTicks(first, last int) []gochart.Tick {
	step := int(math.Ceil(float64(last-first+1) / maxYearTicks))
	if step < 1 {
		step = 1
	}
	var ticks []gochart.Tick
	for y := first; y <= last; y += step {
		ticks = append(ticks, gochart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	return ticks
}

// countCeiling leaves headroom above the tallest point.
func countCeiling(maxCount int) float64 {
	return math.Max(1, math.Ceil(float64(maxCount)*1.1))
}

func barWidth(width, n int) int {
	bw := width / (n*2 + 1)
	if bw > 80 {
		bw = 80
	}
	if bw < 10 {
		bw = 10
	}
	return bw
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(math.Round(f)))
	}
	return fmt.Sprintf("%v", v)
}
