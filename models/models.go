package models

import "fmt"

type Variant struct {
	Chrom string `json:"chrom"`
	Pos   int    `json:"pos"`
	Ref   string `json:"ref"`
	Alt   string `json:"alt"`
}

// Key derives the canonical variant identifier used
// as the lookup key into the annotation store,
// i.e. "1:12345:A>T"
func (v Variant) Key() string {
	return fmt.Sprintf("%s:%d:%s>%s", v.Chrom, v.Pos, v.Ref, v.Alt)
}

type Annotation struct {
	Gene        *string  `json:"gene" mapstructure:"gene"`
	Consequence *string  `json:"consequence" mapstructure:"consequence"`
	GnomadAf    *float64 `json:"gnomad_af" mapstructure:"gnomad_af"`
	Rsid        *string  `json:"rsid" mapstructure:"rsid"`
	Clinvar     *string  `json:"clinvar" mapstructure:"clinvar"`
}
