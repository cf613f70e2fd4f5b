package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

const (
	chartWidth    = 800
	chartHeight   = 400
	chartBarWidth = 60
)

var barColor = drawing.Color{R: 212, G: 160, B: 23, A: 255}

// ChartPath returns {resultDir}/{sessionId}_totals.png
func ChartPath(session *models.SessionRecord) string {
	return filepath.Join(session.ResultDir, session.ID+"_totals.png")
}

// TotalsChart renders a PNG bar chart of the shooter totals.
func TotalsChart(session *models.SessionRecord) ([]byte, error) {
	if session == nil {
		return nil, ErrNilSession
	}
	if len(session.Shooters) == 0 {
		return nil, ErrNoShooters
	}

	bars := make([]chart.Value, 0, len(session.Shooters))
	top := 1.0
	for _, shooter := range session.Shooters {
		v := float64(shooter.TotalPoints)
		if v > top {
			top = v
		}
		bars = append(bars, chart.Value{
			Label: shooter.Name,
			Value: v,
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
			},
		})
	}

	graph := chart.BarChart{
		Title:    session.ID,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: chartBarWidth,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		// An all-zero session would otherwise have an empty value range
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render totals chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// WriteChart writes the totals chart to ChartPath and returns the PNG bytes
// with the path.
func WriteChart(session *models.SessionRecord) ([]byte, string, error) {
	png, err := TotalsChart(session)
	if err != nil {
		return nil, "", err
	}
	path := ChartPath(session)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create result directory: %w", err)
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return nil, "", fmt.Errorf("failed to write totals chart: %w", err)
	}
	return png, path, nil
}
