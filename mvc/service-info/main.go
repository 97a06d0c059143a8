package serviceInfo

import (
	"net/http"

	"varscanner/api/contexts"
	serviceInfo "varscanner/api/models/constants/service-info"

	"github.com/labstack/echo"
)

// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	cfg := c.(*contexts.VarScannerContext).Config

	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  cfg.SemVer,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"organization": map[string]string{
			"name": "VarScanner Team",
			"url":  "http://varscanner.local",
		},
		"contactUrl": cfg.ServiceContact,
		"version":    cfg.SemVer,
	})
}
