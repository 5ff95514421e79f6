package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipdeck/pipdeck/internal/model"
)

// sizeChartModal renders a horizontal-label bar chart of the largest
// packages whose sizes have been loaded. Rows still Unloaded are simply
// absent; loading details for more rows grows the chart.
type sizeChartModal struct {
	records []model.PackageRecord
	topN    int
}

func newSizeChartModal(ctrl *Controller, topN int) *sizeChartModal {
	var loaded []model.PackageRecord
	for _, r := range ctrl.Rows() {
		if ctrl.State(r.Name) == model.RowLoaded && r.SizeBytes != model.SizeUnknown {
			loaded = append(loaded, r)
		}
	}
	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].SizeBytes > loaded[j].SizeBytes
	})
	if len(loaded) > topN {
		loaded = loaded[:topN]
	}
	return &sizeChartModal{records: loaded, topN: topN}
}

func (s *sizeChartModal) ID() string { return "sizechart" }

func (s *sizeChartModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return true, nil
	}
	return false, nil
}

func (s *sizeChartModal) View(width, height int) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(fmt.Sprintf("Largest Packages (top %d)", s.topN)))
	b.WriteString("\n\n")

	if len(s.records) == 0 {
		b.WriteString(loadingStyle.Render("no sizes loaded yet — select rows and press enter first"))
		return modalBorderStyle.Render(b.String())
	}

	chartWidth := max(30, min(width-20, 2*len(s.records)))
	chartHeight := max(6, min(12, height-14))

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)

	barStyle := lipgloss.NewStyle().Foreground(ColorAccent).Background(ColorAccent)
	for _, r := range s.records {
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: r.Name, Value: float64(r.SizeBytes), Style: barStyle},
			},
		})
	}
	bc.Draw()
	b.WriteString(bc.View())
	b.WriteString("\n")

	// Legend: left-to-right bar order.
	for i, r := range s.records {
		b.WriteString(fmt.Sprintf("%2d. %-28s %s\n", i+1, r.Name, model.FormatSize(r.SizeBytes)))
	}
	b.WriteString("\n" + loadingStyle.Render("press any key to close"))

	return modalBorderStyle.Render(b.String())
}
