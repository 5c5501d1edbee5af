// Package model defines the core data records shared across the analysis
// pipeline: classified columns, transactions, groupings, and the generated
// insight/anomaly/prediction/recommendation results.
package model

// ColumnRole is the semantic classification assigned to a column.
type ColumnRole string

const (
	// RoleDimension marks a categorical column suitable for grouping.
	RoleDimension ColumnRole = "dimension"
	// RoleMeasure marks a numeric column suitable for aggregation.
	RoleMeasure ColumnRole = "measure"
	// RoleDate marks a column holding dates.
	RoleDate ColumnRole = "date"
	// RoleIdentifier marks a high-cardinality column such as a reference number.
	RoleIdentifier ColumnRole = "identifier"
	// RoleUnknown is assigned when no heuristic produced a classification.
	RoleUnknown ColumnRole = "unknown"
)

// DataType describes the dominant value type observed in a column.
type DataType string

const (
	// TypeString covers free text columns.
	TypeString DataType = "string"
	// TypeNumber covers numeric columns.
	TypeNumber DataType = "number"
	// TypeDate covers date columns.
	TypeDate DataType = "date"
	// TypeMixed covers columns with no dominant type.
	TypeMixed DataType = "mixed"
)

// ColumnStats holds descriptive statistics over the numeric values of a
// measure column.
type ColumnStats struct {
	Sum    float64 `json:"sum"`
	Avg    float64 `json:"avg"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Count  int     `json:"count"`
}

// ValueCount pairs a distinct column value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ClassifiedColumn is the result of classifying a single column. Stats is
// populated only for measures and TopValues only for dimensions.
type ClassifiedColumn struct {
	Stats        *ColumnStats `json:"stats,omitempty"`
	Name         string       `json:"name"`
	Role         ColumnRole   `json:"role"`
	DataType     DataType     `json:"dataType"`
	SampleValues []string     `json:"sampleValues"`
	TopValues    []ValueCount `json:"topValues,omitempty"`
	Index        int          `json:"index"`
	UniqueCount  int          `json:"uniqueCount"`
	NullCount    int          `json:"nullCount"`
}
