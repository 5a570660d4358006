package domain

// Targeting describes who a strategy's ad group should reach. It is stored
// as JSON alongside the strategy and translated into each platform's
// ad-group spec at deployment time.
type Targeting struct {
	Languages []string `json:"languages,omitempty"`
	Geos      []string `json:"geos,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	AgeMin    int      `json:"age_min,omitempty"`
	AgeMax    int      `json:"age_max,omitempty"`
}
