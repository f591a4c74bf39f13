package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/logmodule"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	dataset    store.DatasetStore
	source     store.Pinger
	boundaries *store.Boundaries

	// location of the dashboard clients, slider dates are local midnights
	location *time.Location

	// metrics
	scope tally.Scope
}

// NewServer new instance of server. source is the database the dataset was
// loaded from and may be nil when it came from a file.
func NewServer(
	dataset store.DatasetStore,
	source store.Pinger,
	boundaries *store.Boundaries,
	location *time.Location,
	scope tally.Scope) *Server {
	if location == nil {
		location = time.Local
	}
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Server{
		dataset:    dataset,
		source:     source,
		boundaries: boundaries,
		location:   location,
		scope:      scope,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Accept", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.Use(s.metricsMiddleware())
	apiRoute.Use(localizerMiddleware())

	apiRoute.GET("/information", s.information)
	apiRoute.GET("/slider", s.slider)
	apiRoute.GET("/boundaries", s.getBoundaries)

	countryRoute := apiRoute.Group("/countries")
	{
		countryRoute.GET("", s.getCountries)
		countryRoute.GET("/:country", s.countryMiddleware(), s.getCountryProfile)
		countryRoute.GET("/:country/totals", s.countryMiddleware(), s.getCountryTotals)
		countryRoute.GET("/:country/timeseries", s.countryMiddleware(), s.getTimeSeries)
		countryRoute.GET("/:country/per-million", s.countryMiddleware(), s.getPerMillionSeries)
	}

	apiRoute.GET("/choropleth", s.getChoropleth)
	apiRoute.GET("/heatmap", s.getHeatmap)
	apiRoute.GET("/dashboard", s.getDashboard)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if s.source != nil {
		err := s.source.Ping()
		if shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	start, end := s.dataset.Window()
	indicators := s.dataset.Indicators()

	responseWithEncoding(c, http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"window": map[string]interface{}{
				"start": start.Format(consts.DateLayout),
				"end":   end.Format(consts.DateLayout),
			},
			"indicators":       indicators,
			"indicator_labels": utils.IndicatorNames(localizer(c), indicators),
			"bucket_widths":    consts.AllowedBucketWidths,
			"countries":        len(s.dataset.Countries()),
			"system_version":   "Mobility 0.1",
		},
	})
}
