package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"lml-server/models"
)

// RenderVenueMap writes an HTML page plotting one point per marker. Each
// point's value is [lng, lat, gigCount].
func RenderVenueMap(w io.Writer, markers []models.Marker, title, subtitle string) error {
	points := make([]opts.GeoData, 0, len(markers))
	for _, m := range markers {
		points = append(points, opts.GeoData{
			Name:  m.Name,
			Value: []float64{m.Position.Lng, m.Position.Lat, float64(m.GigCount)},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "100vh",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render venue map: %w", err)
	}
	return nil
}
