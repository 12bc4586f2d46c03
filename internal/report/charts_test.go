package report

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/spacesedan/tubemood/internal/models"
)

func TestRenderCharts(t *testing.T) {
	table := models.ResultTable{
		record("a", 0.7, models.CategoryPositive),
		record("b", 0.2, models.CategoryPositive),
		record("c", 0.0, models.CategoryNeutral),
		record("d", -0.4, models.CategoryNegative),
	}

	data, err := RenderCharts(table)
	if err != nil {
		t.Fatalf("RenderCharts failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a decodable PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 2*chartWidth {
		t.Errorf("canvas width = %d, want two charts side by side (%d)", bounds.Dx(), 2*chartWidth)
	}
	if bounds.Dy() != chartHeight {
		t.Errorf("canvas height = %d, want %d", bounds.Dy(), chartHeight)
	}
}

func TestRenderChartsSingleCategory(t *testing.T) {
	table := models.ResultTable{
		record("a", 0.9, models.CategoryPositive),
		record("b", 0.8, models.CategoryPositive),
	}

	if _, err := RenderCharts(table); err != nil {
		t.Fatalf("RenderCharts failed on single-category table: %v", err)
	}
}
