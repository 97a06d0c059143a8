package chromosome

import (
	"fmt"
	"strconv"
	"strings"
)

func ValidListOfHumanChromosomes() []string {
	var humChroms []string
	for i := 1; i < 24; i++ {
		humChroms = append(humChroms, fmt.Sprint(i))
	}
	humChroms = append(humChroms, "X", "Y", "M")
	return humChroms
}

func IsValidHumanChromosome(text string) bool {
	// autosomes 1-22 plus 23
	chromNumber, _ := strconv.Atoi(text)
	if chromNumber > 0 {
		return chromNumber < 24
	}

	// sex chromosomes and mitochondrial (M / MT)
	switch strings.ToLower(text) {
	case "x", "y", "m", "mt":
		return true
	}

	return false
}
