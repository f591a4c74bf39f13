package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
	"github.com/bitmark-inc/mobility-api/view"
)

type seriesQueryParams struct {
	Deaths     bool     `form:"deaths"`
	Width      int      `form:"width"`
	Indicators []string `form:"indicators"`
}

type dateQueryParams struct {
	Date   int64 `form:"date"`
	Deaths bool  `form:"deaths"`
}

type dashboardQueryParams struct {
	Country    string   `form:"country" binding:"required"`
	Date       int64    `form:"date"`
	Deaths     bool     `form:"deaths"`
	Indicators []string `form:"indicators"`
}

// splitIndicators accepts both repeated and comma separated indicator keys
func splitIndicators(values []string) []string {
	keys := []string{}
	for _, v := range values {
		for _, key := range strings.Split(v, ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// bucketWidth returns the default width when none is given and rejects the
// widths clients are not offered.
func bucketWidth(width, defaultWidth int) (int, error) {
	if width == 0 {
		return defaultWidth, nil
	}
	for _, w := range consts.AllowedBucketWidths {
		if w == width {
			return width, nil
		}
	}
	return 0, fmt.Errorf("%w: bucket width %d", view.ErrInvalidSelection, width)
}

func (s *Server) slider(c *gin.Context) {
	responseWithEncoding(c, http.StatusOK, gin.H{
		"slider": utils.NewSlider(viper.GetInt("slider.mark_every"), s.location),
	})
}

func (s *Server) getTimeSeries(c *gin.Context) {
	var params seriesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	width, err := bucketWidth(params.Width, consts.DefaultTimeSeriesWidth)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	sel, err := view.NewSelection(s.dataset, view.RawSelection{
		Country:    c.Param("country"),
		Deaths:     params.Deaths,
		Indicators: splitIndicators(params.Indicators),
	}, s.location)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	series, err := view.TimeSeries(s.dataset, sel, width, localizer(c))
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"timeseries": series})
}

func (s *Server) getPerMillionSeries(c *gin.Context) {
	var params seriesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	width, err := bucketWidth(params.Width, consts.DefaultPerMillionWidth)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	series, err := view.PerMillionSeries(s.dataset, c.Param("country"), schema.MetricModeFromFlag(params.Deaths), width)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"per_million": series})
}

func (s *Server) getChoropleth(c *gin.Context) {
	var params dateQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	choropleth := view.Choropleth(s.dataset, s.sliderDate(params.Date), schema.MetricModeFromFlag(params.Deaths), localizer(c))
	responseWithEncoding(c, http.StatusOK, gin.H{"choropleth": choropleth})
}

func (s *Server) getHeatmap(c *gin.Context) {
	var params dateQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	heatmap := view.Heatmap(s.dataset, s.sliderDate(params.Date), localizer(c))
	responseWithEncoding(c, http.StatusOK, gin.H{"heatmap": heatmap})
}

func (s *Server) getDashboard(c *gin.Context) {
	var params dashboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	sel, err := view.NewSelection(s.dataset, view.RawSelection{
		Country:    params.Country,
		Date:       params.Date,
		Deaths:     params.Deaths,
		Indicators: splitIndicators(params.Indicators),
	}, s.location)
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	dashboard, err := view.Dashboard(s.dataset, sel, localizer(c))
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"dashboard": dashboard})
}

// sliderDate converts a slider position into a date of the dataset window
func (s *Server) sliderDate(seconds int64) time.Time {
	start, end := s.dataset.Window()
	return utils.ClampDate(utils.UnixToDate(seconds, s.location), start, end)
}
