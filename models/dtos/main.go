package dtos

import (
	"time"

	"varscanner/api/models"
)

// ---- variant annotation ("prediction")

// Incoming /predict payload ; all fields are pointers so that
// missing keys can be told apart from zero values at validation time
type PredictRequestDto struct {
	GenomeBuild *string         `json:"genome_build"`
	Variants    *[]VariantInDto `json:"variants"`
}

type VariantInDto struct {
	Chrom *string `json:"chrom"`
	Pos   *int    `json:"pos"`
	Ref   *string `json:"ref"`
	Alt   *string `json:"alt"`
}

type PredictResponseDto struct {
	GenomeBuild string             `json:"genome_build"`
	Results     []VariantResultDto `json:"results"`
}

// One annotated result per input variant, in input order ;
// annotation fields serialize as null when the store had no entry
type VariantResultDto struct {
	VariantKey string         `json:"variant"`
	Echo       models.Variant `json:"echo"`

	Gene        *string  `json:"gene"`
	Consequence *string  `json:"consequence"`
	GnomadAf    *float64 `json:"gnomad_af"`
	Rsid        *string  `json:"rsid"`
	Clinvar     *string  `json:"clinvar"`
}

// ---- errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}
