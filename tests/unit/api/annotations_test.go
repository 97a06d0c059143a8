package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"varscanner/api/contexts"
	serviceInfoConst "varscanner/api/models/constants/service-info"
	"varscanner/api/models/dtos"
	"varscanner/api/mvc"
	annotationsMvc "varscanner/api/mvc/annotations"
	serviceInfoMvc "varscanner/api/mvc/service-info"
	"varscanner/api/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

func TestAnnotationEndpoints(t *testing.T) {
	cfg := common.InitConfig()
	as := common.InitAnnotationService(cfg)

	setUpEcho := func(method string, path string, body string) (*contexts.VarScannerContext, *httptest.ResponseRecorder) {
		e := echo.New()
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		vc := &contexts.VarScannerContext{
			Context:           c,
			Config:            cfg,
			AnnotationService: as,
		}
		return vc, rec
	}

	getJsonBody := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		// - extract body bytes from response
		body, _ := io.ReadAll(rec.Body)
		// - unmarshal or decode the JSON to a declared empty interface.
		var bodyJson map[string]interface{}
		json.Unmarshal(body, &bodyJson)

		return bodyJson
	}

	t.Run("health returns ok true", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodGet, "/health", "")

		mvc.HealthCheck(vc)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, getJsonBody(rec)["ok"].(bool))
	})

	t.Run("predict annotates a known variant", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict",
			`{"genome_build":"GRCh38","variants":[{"chrom":"1","pos":12345,"ref":"A","alt":"T"}]}`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.PredictResponseDto
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, "GRCh38", response.GenomeBuild)
		assert.Equal(t, 1, len(response.Results))

		result := response.Results[0]
		assert.Equal(t, "1:12345:A>T", result.VariantKey)
		assert.Equal(t, "1", result.Echo.Chrom)
		assert.Equal(t, 12345, result.Echo.Pos)
		assert.Equal(t, "A", result.Echo.Ref)
		assert.Equal(t, "T", result.Echo.Alt)
		assert.Equal(t, "BRCA1", *result.Gene)
		assert.Equal(t, "missense", *result.Consequence)
		assert.Equal(t, 0.001, *result.GnomadAf)
		assert.Equal(t, "rs123", *result.Rsid)
		assert.Equal(t, "Pathogenic", *result.Clinvar)
	})

	t.Run("predict defaults to empty annotation on miss", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict",
			`{"genome_build":"GRCh37","variants":[{"chrom":"9","pos":1,"ref":"G","alt":"C"}]}`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.PredictResponseDto
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.Equal(t, "GRCh37", response.GenomeBuild)
		result := response.Results[0]
		assert.Equal(t, "9:1:G>C", result.VariantKey)
		assert.Nil(t, result.Gene)
		assert.Nil(t, result.Consequence)
		assert.Nil(t, result.GnomadAf)
		assert.Nil(t, result.Rsid)
		assert.Nil(t, result.Clinvar)
	})

	t.Run("predict passes unknown genome builds through unmodified", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict",
			`{"genome_build":"hg19-custom","variants":[]}`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hg19-custom", getJsonBody(rec)["genome_build"].(string))
	})

	t.Run("predict preserves input order and cardinality", func(t *testing.T) {
		body := `{"genome_build":"GRCh38","variants":[
			{"chrom":"9","pos":1,"ref":"G","alt":"C"},
			{"chrom":"1","pos":12345,"ref":"A","alt":"T"},
			{"chrom":"9","pos":1,"ref":"G","alt":"C"}]}`

		vc, rec := setUpEcho(http.MethodPost, "/predict", body)
		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.PredictResponseDto
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 3, len(response.Results))
		assert.Equal(t, "9:1:G>C", response.Results[0].VariantKey)
		assert.Equal(t, "1:12345:A>T", response.Results[1].VariantKey)
		assert.Equal(t, "9:1:G>C", response.Results[2].VariantKey)

		// repeated input variants yield repeated, consistent results
		assert.Equal(t, response.Results[0], response.Results[2])

		// idempotence : the store is read-only, so identical input
		// yields an identical response body
		vc2, rec2 := setUpEcho(http.MethodPost, "/predict", body)
		annotationsMvc.PredictVariantAnnotations(vc2)
		assert.Equal(t, rec.Body.String(), rec2.Body.String())
	})

	t.Run("predict with empty variants yields empty results", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict",
			`{"genome_build":"GRCh38","variants":[]}`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.PredictResponseDto
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.NotNil(t, response.Results)
		assert.Equal(t, 0, len(response.Results))
	})

	t.Run("predict rejects missing fields with field level detail", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict",
			`{"variants":[{"chrom":"1","ref":"A","alt":"T"}]}`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var errorResponse dtos.GeneralErrorResponseDto
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &errorResponse))
		assert.Equal(t, 422, errorResponse.Code)

		fields := []string{}
		for _, fieldError := range errorResponse.Errors {
			fields = append(fields, fieldError.Field)
		}
		assert.Contains(t, fields, "genome_build")
		assert.Contains(t, fields, "variants[0].pos")
	})

	t.Run("predict rejects mistyped fields", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict",
			`{"genome_build":"GRCh38","variants":[{"chrom":"1","pos":"12345","ref":"A","alt":"T"}]}`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var errorResponse dtos.GeneralErrorResponseDto
		assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &errorResponse))
		assert.Equal(t, 1, len(errorResponse.Errors))
	})

	t.Run("predict rejects malformed json bodies", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodPost, "/predict", `{"genome_build`)

		annotationsMvc.PredictVariantAnnotations(vc)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("annotations overview aggregates the loaded store", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodGet, "/annotations/overview", "")

		annotationsMvc.GetAnnotationsOverview(vc)

		assert.Equal(t, http.StatusOK, rec.Code)

		overview := getJsonBody(rec)
		assert.Equal(t, float64(5), overview["totalKeys"].(float64))

		genes := overview["genes"].(map[string]interface{})
		assert.Equal(t, float64(2), genes["BRCA1"].(float64))
	})

	t.Run("service info document", func(t *testing.T) {
		vc, rec := setUpEcho(http.MethodGet, "/service-info", "")

		serviceInfoMvc.GetServiceInfo(vc)

		assert.Equal(t, http.StatusOK, rec.Code)

		body := getJsonBody(rec)
		assert.Equal(t, string(serviceInfoConst.SERVICE_NAME), body["name"].(string))
		assert.Equal(t, string(serviceInfoConst.SERVICE_ID), body["id"].(string))
		assert.Equal(t, cfg.SemVer, body["version"].(string))
	})
}
