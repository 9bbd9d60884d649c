package dashboard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const exportChartHeight = "360px"

// ExportHTML writes both dashboard charts as a standalone ECharts page.
func ExportHTML(w io.Writer, d *Data) error {
	page := components.NewPage()
	page.SetPageTitle(fmt.Sprintf("Offerdesk dashboard (%s)", d.Period.Label()))
	page.SetLayout(components.PageFlexLayout)

	for _, c := range d.Charts() {
		chart, err := toECharts(c)
		if err != nil {
			return err
		}
		page.AddCharts(chart)
	}
	return page.Render(w)
}

// ExportFile renders ExportHTML into path, creating parent directories.
func ExportFile(path string, d *Data) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := ExportHTML(f, d); err != nil {
		f.Close()
		return fmt.Errorf("render charts: %w", err)
	}
	return f.Close()
}

func toECharts(c Chart) (components.Charter, error) {
	global := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: exportChartHeight}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithColorsOpts(opts.Colors(c.Colors)),
	}

	switch c.Kind {
	case ChartBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(c.Categories)
		for _, s := range c.Series {
			data := make([]opts.BarData, len(s.Values))
			for i, v := range s.Values {
				data[i] = opts.BarData{Value: v}
			}
			bar.AddSeries(s.Name, data)
		}
		return bar, nil
	case ChartLine:
		line := charts.NewLine()
		line.SetGlobalOptions(global...)
		line.SetXAxis(c.Categories)
		for _, s := range c.Series {
			data := make([]opts.LineData, len(s.Values))
			for i, v := range s.Values {
				data[i] = opts.LineData{Value: v}
			}
			line.AddSeries(s.Name, data)
		}
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return line, nil
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", c.Kind)
	}
}
