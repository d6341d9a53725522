package schema

// CategoryDelta holds one category's head-to-head result in a two-way comparison.
type CategoryDelta struct {
	Category string `json:"category"`
	Left     *int   `json:"left"`
	Right    *int   `json:"right"`
	// Delta is Left - Right; zero when either side is nil.
	Delta int `json:"delta"`
	// Winner is the product name with the higher score, empty on a tie or
	// when neither side produced a score.
	Winner string `json:"winner,omitempty"`
}

// Advantage is a human-readable reason one product beats another, derived from
// raw spec values rather than scores (e.g. "Faster top speed (40 mph vs 25 mph)").
type Advantage struct {
	Product  string `json:"product"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// ComparisonResult is the full output of a two-way comparison.
type ComparisonResult struct {
	Left       string          `json:"left"`
	Right      string          `json:"right"`
	Categories []CategoryDelta   `json:"categories"`
	Advantages []Advantage       `json:"advantages"`
	Summary    ComparisonSummary `json:"summary"`
}

// ComparisonSummary has the high-level verdict of a comparison.
type ComparisonSummary struct {
	// OverallWinner is empty when overall scores tie or are both nil.
	OverallWinner string         `json:"overall_winner,omitempty"`
	OverallDelta  int            `json:"overall_delta"`
	CategoriesWon map[string]int `json:"categories_won"`
}

// MultiComparisonResult ranks N products per category and overall.
type MultiComparisonResult struct {
	Products []string `json:"products"`
	// Winners maps each category key (plus "overall") to the name of the
	// highest-scoring product, omitted when no product scored the category.
	Winners map[string]string      `json:"winners"`
	Records map[string]ScoreRecord `json:"records"`
}
