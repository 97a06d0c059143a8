package contexts

import (
	"varscanner/api/models"
	annotationsService "varscanner/api/services/annotations"

	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the shared annotation store and other variables
	VarScannerContext struct {
		echo.Context
		Config            *models.Config
		AnnotationService *annotationsService.AnnotationService
	}
)
