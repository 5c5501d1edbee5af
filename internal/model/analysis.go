package model

// GroupedData is one bucket produced by grouping transactions along a
// dimension, with its aggregates precomputed.
type GroupedData struct {
	Key          string        `json:"key"`
	Label        string        `json:"label"`
	Transactions []Transaction `json:"transactions"`
	TotalAmount  float64       `json:"totalAmount"`
	AvgAmount    float64       `json:"avgAmount"`
	MaxAmount    float64       `json:"maxAmount"`
	Count        int           `json:"count"`
}

// GroupNode is one bucket in a grouping plan over raw rows. Aggregates maps
// measure column names to their sums within the bucket. Children holds the
// optional secondary-dimension breakdown.
type GroupNode struct {
	Aggregates map[string]float64 `json:"aggregates"`
	Key        string             `json:"key"`
	Label      string             `json:"label"`
	RowIndices []int              `json:"rowIndices"`
	Children   []GroupNode        `json:"children,omitempty"`
	Count      int                `json:"count"`
}

// GroupingPlan is a two-level breakdown of the raw table: a primary
// dimension, an optional secondary dimension, and the resulting group tree.
type GroupingPlan struct {
	Primary   string      `json:"primary"`
	Secondary string      `json:"secondary,omitempty"`
	Measures  []string    `json:"measures"`
	Groups    []GroupNode `json:"groups"`
}

// VizRecommendation suggests one chart over the classified columns. Lower
// priority sorts first.
type VizRecommendation struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Columns     []string `json:"columns"`
	Priority    int      `json:"priority"`
}

// InsightSeverity ranks how noteworthy an insight is.
type InsightSeverity string

const (
	// SeverityCritical marks insights that demand attention.
	SeverityCritical InsightSeverity = "critical"
	// SeverityNotable marks ordinary observations.
	SeverityNotable InsightSeverity = "notable"
)

// Insight is a single natural-language observation over the data.
type Insight struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    InsightSeverity `json:"severity"`
	Value       float64         `json:"value"`
}

// QualityIssue flags a data-quality problem with a specific column.
type QualityIssue struct {
	Column  string `json:"column"`
	Message string `json:"message"`
}

// DataQuality summarizes how complete and classifiable the table was.
type DataQuality struct {
	Issues              []QualityIssue `json:"issues"`
	Completeness        float64        `json:"completeness"`
	UnclassifiedColumns int            `json:"unclassifiedColumns"`
}

// AnalysisResult is the full single-table analysis: classified columns,
// chart recommendations, the grouping plan, insights, and data quality.
type AnalysisResult struct {
	Plan           *GroupingPlan       `json:"plan,omitempty"`
	Columns        []ClassifiedColumn  `json:"columns"`
	Visualizations []VizRecommendation `json:"visualizations"`
	Insights       []Insight           `json:"insights"`
	Quality        DataQuality         `json:"quality"`
	RowCount       int                 `json:"rowCount"`
}
