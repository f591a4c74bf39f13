package api

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vmihailenco/msgpack/v4"
	"gopkg.in/yaml.v2"
)

const (
	mimeYAML    = "application/x-yaml"
	mimeMsgpack = "application/x-msgpack"
)

// acceptedEncoding picks the first media type of the Accept header the api
// can produce, JSON by default.
func acceptedEncoding(c *gin.Context) string {
	for _, part := range strings.Split(c.GetHeader("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case mimeYAML, "text/yaml", "application/yaml":
			return mimeYAML
		case mimeMsgpack, "application/msgpack":
			return mimeMsgpack
		case gin.MIMEJSON:
			return gin.MIMEJSON
		}
	}
	return gin.MIMEJSON
}

func encodeMsgpack(obj interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseJSONTag(true)
	if err := enc.Encode(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func responseWithEncoding(c *gin.Context, code int, obj interface{}) {
	switch acceptedEncoding(c) {
	case mimeYAML:
		data, err := yaml.Marshal(obj)
		if err != nil {
			log.Errorf("yaml encoding with error: %s", err)
			c.JSON(http.StatusInternalServerError, errorInternalServer)
			return
		}
		c.Data(code, mimeYAML+"; charset=utf-8", data)
	case mimeMsgpack:
		data, err := encodeMsgpack(obj)
		if err != nil {
			log.Errorf("msgpack encoding with error: %s", err)
			c.JSON(http.StatusInternalServerError, errorInternalServer)
			return
		}
		c.Data(code, mimeMsgpack, data)
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
