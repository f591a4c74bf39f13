package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v4"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/view"
)

func TestAcceptedEncoding(t *testing.T) {
	cases := map[string]string{
		"":                                        gin.MIMEJSON,
		"*/*":                                     gin.MIMEJSON,
		"application/json":                        gin.MIMEJSON,
		"application/x-yaml":                      mimeYAML,
		"text/yaml; charset=utf-8":                mimeYAML,
		"application/x-msgpack":                   mimeMsgpack,
		"text/html, application/msgpack;q=0.9":    mimeMsgpack,
		"application/json, application/x-msgpack": gin.MIMEJSON,
	}

	gin.SetMode(gin.TestMode)
	for accept, expected := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.Header.Set("Accept", accept)
		assert.Equal(t, expected, acceptedEncoding(c), "accept %q", accept)
	}
}

func TestMsgpackUsesJSONNames(t *testing.T) {
	data, err := encodeMsgpack(schema.Totals{TotalCases: 12, TotalCasesText: "12"})
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, "12", decoded["total_cases_text"])
}

func benchmarkDashboard(b *testing.B) schema.Dashboard {
	ds, err := store.LoadCSV("../store/fixtures/mobility.csv", nil)
	if err != nil {
		b.Fatal(err)
	}
	sel, err := view.NewSelection(ds, view.RawSelection{Country: "Portugal"}, time.UTC)
	if err != nil {
		b.Fatal(err)
	}
	dashboard, err := view.Dashboard(ds, sel, nil)
	if err != nil {
		b.Fatal(err)
	}
	return dashboard
}

func BenchmarkJSONDashboard(b *testing.B) {
	dashboard := benchmarkDashboard(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(dashboard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkYAMLDashboard(b *testing.B) {
	dashboard := benchmarkDashboard(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := yaml.Marshal(dashboard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMsgpackDashboard(b *testing.B) {
	dashboard := benchmarkDashboard(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := encodeMsgpack(dashboard); err != nil {
			b.Fatal(err)
		}
	}
}
