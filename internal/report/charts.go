package report

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spacesedan/tubemood/internal/models"
)

const (
	chartWidth  = 600
	chartHeight = 600
	histBins    = 15
)

var categoryColors = map[models.Category]drawing.Color{
	models.CategoryPositive: drawing.ColorFromHex("66bb6a"),
	models.CategoryNeutral:  drawing.ColorFromHex("fff176"),
	models.CategoryNegative: drawing.ColorFromHex("ef5350"),
}

var fallbackColor = drawing.ColorFromHex("bdbdbd")

// RenderCharts draws the category pie chart and the score histogram
// side by side and returns the combined canvas as PNG bytes. The table
// must be non-empty; callers guard.
func RenderCharts(table models.ResultTable) ([]byte, error) {
	summary := Summarize(table)

	piePNG, err := renderPie(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}

	histPNG, err := renderHistogram(table)
	if err != nil {
		return nil, fmt.Errorf("failed to render histogram: %w", err)
	}

	return composeSideBySide(piePNG, histPNG)
}

func renderPie(summary Summary) ([]byte, error) {
	var values []chart.Value
	for _, cat := range []models.Category{models.CategoryPositive, models.CategoryNeutral, models.CategoryNegative} {
		count := summary.Counts[cat]
		if count == 0 {
			continue
		}
		color, ok := categoryColors[cat]
		if !ok {
			color = fallbackColor
		}
		values = append(values, chart.Value{
			Value: float64(count),
			Label: fmt.Sprintf("%s (%.1f%%)", cat, summary.Percentage(cat)),
			Style: chart.Style{FillColor: color},
		})
	}

	pie := chart.PieChart{
		Title:  "Emotions",
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderHistogram(table models.ResultTable) ([]byte, error) {
	counts := make([]int, histBins)
	binWidth := 2.0 / histBins
	for _, record := range table {
		bin := int((record.Score + 1) / binWidth)
		if bin < 0 {
			bin = 0
		}
		if bin >= histBins {
			bin = histBins - 1
		}
		counts[bin]++
	}

	// Step outline of the bins, filled down to zero.
	xs := make([]float64, 0, 2*histBins)
	ys := make([]float64, 0, 2*histBins)
	maxCount := 0.0
	for i, count := range counts {
		lo := -1 + float64(i)*binWidth
		hi := lo + binWidth
		xs = append(xs, lo, hi)
		ys = append(ys, float64(count), float64(count))
		if float64(count) > maxCount {
			maxCount = float64(count)
		}
	}

	bars := chart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("5c6bc0"),
			FillColor:   drawing.ColorFromHex("5c6bc0").WithAlpha(110),
		},
	}

	zeroLine := chart.ContinuousSeries{
		XValues: []float64{0, 0},
		YValues: []float64{0, maxCount},
		Style: chart.Style{
			StrokeColor:     drawing.ColorBlack,
			StrokeDashArray: []float64{4.0, 4.0},
		},
	}

	hist := chart.Chart{
		Title:  "Score distribution",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -1, Max: 1},
		},
		Series: []chart.Series{bars, zeroLine},
	}

	var buf bytes.Buffer
	if err := hist.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// composeSideBySide stitches two rendered charts onto one canvas,
// go-chart renders one chart per image.
func composeSideBySide(left, right []byte) ([]byte, error) {
	leftImg, err := png.Decode(bytes.NewReader(left))
	if err != nil {
		return nil, fmt.Errorf("failed to decode left chart: %w", err)
	}
	rightImg, err := png.Decode(bytes.NewReader(right))
	if err != nil {
		return nil, fmt.Errorf("failed to decode right chart: %w", err)
	}

	lb := leftImg.Bounds()
	rb := rightImg.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), leftImg, lb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), rightImg, rb.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode combined chart: %w", err)
	}
	return buf.Bytes(), nil
}
