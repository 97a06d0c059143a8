package annotations

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"varscanner/api/metrics"
	"varscanner/api/models"
	assemblyId "varscanner/api/models/constants/assembly-id"
	"varscanner/api/models/dtos"
	"varscanner/api/models/dtos/errors"
	"varscanner/api/mvc"

	"github.com/labstack/echo"
)

/*
	Handlers for the batch variant annotation ("prediction") surface
*/

func PredictVariantAnnotations(c echo.Context) error {
	fmt.Printf("[%s] - PredictVariantAnnotations hit!\n", time.Now())

	annotationService, _ := mvc.RetrieveCommonElements(c)

	// decode the payload manually rather than with c.Bind so that
	// json type mismatches can be reported per field
	var predictRequest dtos.PredictRequestDto
	if decodeErr := json.NewDecoder(c.Request().Body).Decode(&predictRequest); decodeErr != nil {
		if typeErr, ok := decodeErr.(*json.UnmarshalTypeError); ok {
			return c.JSON(http.StatusUnprocessableEntity, errors.CreateValidationError([]dtos.GeneralError{
				{
					Field:   typeErr.Field,
					Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
				},
			}))
		}
		return c.JSON(http.StatusBadRequest, errors.CreateSimpleBadRequest("Malformed JSON request body!"))
	}

	// schema validation ; the resolver is never reached on invalid input
	fieldErrors := validatePredictRequest(&predictRequest)
	if len(fieldErrors) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, errors.CreateValidationError(fieldErrors))
	}

	metrics.PredictRequests.Inc()

	// the genome build is echoed through as-is ; unknown builds are
	// worth a log line but never a rejection
	if !assemblyId.IsKnownAssemblyId(*predictRequest.GenomeBuild) {
		fmt.Printf("[%s] - Passing through unknown genome build '%s'..\n", time.Now(), *predictRequest.GenomeBuild)
	}

	variants := make([]models.Variant, 0, len(*predictRequest.Variants))
	for _, variantIn := range *predictRequest.Variants {
		variants = append(variants, models.Variant{
			Chrom: *variantIn.Chrom,
			Pos:   *variantIn.Pos,
			Ref:   *variantIn.Ref,
			Alt:   *variantIn.Alt,
		})
	}

	return c.JSON(http.StatusOK, dtos.PredictResponseDto{
		GenomeBuild: *predictRequest.GenomeBuild,
		Results:     annotationService.Resolve(variants),
	})
}

func validatePredictRequest(predictRequest *dtos.PredictRequestDto) []dtos.GeneralError {
	fieldErrors := []dtos.GeneralError{}

	if predictRequest.GenomeBuild == nil {
		fieldErrors = append(fieldErrors, dtos.GeneralError{Field: "genome_build", Message: "field required"})
	}
	if predictRequest.Variants == nil {
		fieldErrors = append(fieldErrors, dtos.GeneralError{Field: "variants", Message: "field required"})
		return fieldErrors
	}

	for i, variantIn := range *predictRequest.Variants {
		if variantIn.Chrom == nil {
			fieldErrors = append(fieldErrors, dtos.GeneralError{Field: fmt.Sprintf("variants[%d].chrom", i), Message: "field required"})
		}
		if variantIn.Pos == nil {
			fieldErrors = append(fieldErrors, dtos.GeneralError{Field: fmt.Sprintf("variants[%d].pos", i), Message: "field required"})
		}
		if variantIn.Ref == nil {
			fieldErrors = append(fieldErrors, dtos.GeneralError{Field: fmt.Sprintf("variants[%d].ref", i), Message: "field required"})
		}
		if variantIn.Alt == nil {
			fieldErrors = append(fieldErrors, dtos.GeneralError{Field: fmt.Sprintf("variants[%d].alt", i), Message: "field required"})
		}
	}

	return fieldErrors
}

func GetAnnotationsOverview(c echo.Context) error {
	fmt.Printf("[%s] - GetAnnotationsOverview hit!\n", time.Now())

	annotationService, _ := mvc.RetrieveCommonElements(c)

	return c.JSON(http.StatusOK, annotationService.Overview())
}
