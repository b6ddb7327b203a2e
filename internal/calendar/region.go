package calendar

import "strings"

// Region is a Brazilian state code recognized by the holiday set.
type Region string

const (
	RegionNone Region = ""
	RegionSP   Region = "SP"
	RegionRS   Region = "RS"
	RegionRJ   Region = "RJ"
)

// RegionOfLocality infers a Region from a free-text employee locality string
// using a lowercased substring match. It fails closed: any locality that does
// not match a known city/state alias resolves to RegionNone, so no regional
// holidays are added for it.
func RegionOfLocality(locality string) Region {
	l := strings.ToLower(strings.TrimSpace(locality))

	switch {
	case containsAny(l, "são paulo", "sao paulo", "sp", "campinas", "santos"):
		return RegionSP
	case containsAny(l, "rio de janeiro", "rj"):
		return RegionRJ
	case containsAny(l, "porto alegre", "rs", "alegrete"):
		return RegionRS
	default:
		return RegionNone
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
