package mvc

import (
	"net/http"

	"varscanner/api/contexts"
	"varscanner/api/models"
	annotationsService "varscanner/api/services/annotations"

	"github.com/labstack/echo"
)

func RetrieveCommonElements(c echo.Context) (*annotationsService.AnnotationService, *models.Config) {
	vc := c.(*contexts.VarScannerContext)
	return vc.AnnotationService, vc.Config
}

// Liveness probe ; always succeeds while the process is up
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
