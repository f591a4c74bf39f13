package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/mobility-api/utils"
)

const localizerKey = "localizer"

// localizerMiddleware picks the label language from the `lang` query
// parameter, then from the Accept-Language header.
func localizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localizerKey, utils.NewLocalizer(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func localizer(c *gin.Context) *i18n.Localizer {
	if l, ok := c.Get(localizerKey); ok {
		if loc, ok := l.(*i18n.Localizer); ok {
			return loc
		}
	}
	return nil
}
