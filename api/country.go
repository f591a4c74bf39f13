package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/view"
)

// countryMiddleware rejects the country routes of countries absent from the dataset
func (s *Server) countryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.dataset.HasCountry(c.Param("country")) {
			abortWithEncoding(c, http.StatusNotFound, errorCountryNotFound)
			return
		}
		c.Next()
	}
}

// abortWithViewError maps the errors of view computations to api errors
func abortWithViewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrCountryNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorCountryNotFound, err)
	case errors.Is(err, view.ErrInvalidSelection):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSelection, err)
	default:
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func (s *Server) getCountries(c *gin.Context) {
	countries := s.dataset.Countries()
	profiles := make([]schema.CountryProfile, 0, len(countries))
	for _, country := range countries {
		profile, err := view.Profile(s.dataset, country)
		if err != nil {
			abortWithViewError(c, err)
			return
		}
		profiles = append(profiles, profile)
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"countries": profiles})
}

func (s *Server) getCountryProfile(c *gin.Context) {
	profile, err := view.Profile(s.dataset, c.Param("country"))
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"profile": profile})
}

func (s *Server) getCountryTotals(c *gin.Context) {
	totals, err := view.CountryTotals(s.dataset, c.Param("country"))
	if err != nil {
		abortWithViewError(c, err)
		return
	}

	responseWithEncoding(c, http.StatusOK, gin.H{"totals": totals})
}

func (s *Server) getBoundaries(c *gin.Context) {
	if s.boundaries == nil {
		abortWithEncoding(c, http.StatusNotFound, errorBoundaryNotLoaded)
		return
	}

	countries := s.dataset.Countries()
	isos := make([]string, 0, len(countries))
	for _, country := range countries {
		profile, err := view.Profile(s.dataset, country)
		if err != nil {
			abortWithViewError(c, err)
			return
		}
		isos = append(isos, profile.ISOCode)
	}

	c.JSON(http.StatusOK, s.boundaries.Collection(isos))
}
