package drdp

import (
	"strconv"
	"strings"
)

// Domain groups related DRDP measures.
type Domain struct {
	Code  string
	Name  string
	Count int
}

// Domains lists the assessed developmental domains in reporting order.
var Domains = []Domain{
	{Code: "ATL_REG", Name: "Approaches to Learning - Self-Regulation", Count: 7},
	{Code: "SED", Name: "Social and Emotional Development", Count: 5},
	{Code: "LLD", Name: "Language and Literacy Development", Count: 10},
	{Code: "ELD", Name: "English Language Development", Count: 4},
	{Code: "COG", Name: "Cognition, Including Math and Science", Count: 11},
	{Code: "PD_HLTH", Name: "Physical Development - Health", Count: 10},
}

// Measures is the ordered list of score column names, e.g. "ATL_REG_1".
var Measures = buildMeasures()

func buildMeasures() []string {
	var out []string
	for _, d := range Domains {
		for i := 1; i <= d.Count; i++ {
			out = append(out, d.Code+"_"+strconv.Itoa(i))
		}
	}
	return out
}

// DomainOf returns the domain a measure column belongs to.
func DomainOf(measure string) (Domain, bool) {
	upper := strings.ToUpper(measure)
	for _, d := range Domains {
		if strings.HasPrefix(upper, d.Code+"_") {
			rest := upper[len(d.Code)+1:]
			if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
				return d, true
			}
		}
	}
	return Domain{}, false
}
