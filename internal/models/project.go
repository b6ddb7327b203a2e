package models

// DefaultMaxConcurrencyPercent and DefaultPreferredStartWeekday are the
// fallback values mergo fills in when a caller supplies a ProjectContext
// with its optional fields left zero.
const (
	DefaultMaxConcurrencyPercent = 10
	DefaultPreferredStartWeekday = 0 // Monday
)

// ProjectContext carries the client-level parameters shared by every
// employee in a single optimization request.
type ProjectContext struct {
	ID                    string `json:"id"`
	Budget                float64 `json:"budget" validate:"gte=0"`
	Currency              string  `json:"currency"`
	PreferredStartWeekday int     `json:"preferred_start_weekday" validate:"gte=0,lte=6"`
	MaxConcurrencyPercent int     `json:"max_concurrency_percent" validate:"gte=1,lte=100"`
	CountryCode           string  `json:"country_code"`
}

// Defaults returns the fallback ProjectContext that a caller-supplied,
// partially populated context is merged over.
func Defaults() ProjectContext {
	return ProjectContext{
		MaxConcurrencyPercent: DefaultMaxConcurrencyPercent,
		PreferredStartWeekday: DefaultPreferredStartWeekday,
		Currency:              "BRL",
	}
}
