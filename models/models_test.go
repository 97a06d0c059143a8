package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantKey(t *testing.T) {
	t.Run("canonical form", func(t *testing.T) {
		v := Variant{Chrom: "1", Pos: 12345, Ref: "A", Alt: "T"}
		assert.Equal(t, "1:12345:A>T", v.Key())
	})

	t.Run("non numeric chromosomes", func(t *testing.T) {
		v := Variant{Chrom: "X", Pos: 154030912, Ref: "C", Alt: "T"}
		assert.Equal(t, "X:154030912:C>T", v.Key())
	})

	t.Run("multi base alleles", func(t *testing.T) {
		v := Variant{Chrom: "7", Pos: 117559590, Ref: "GAT", Alt: "G"}
		assert.Equal(t, "7:117559590:GAT>G", v.Key())
	})

	t.Run("structurally equal variants derive equal keys", func(t *testing.T) {
		a := Variant{Chrom: "13", Pos: 32340301, Ref: "T", Alt: "C"}
		b := Variant{Chrom: "13", Pos: 32340301, Ref: "T", Alt: "C"}
		assert.Equal(t, a.Key(), b.Key())
	})
}
