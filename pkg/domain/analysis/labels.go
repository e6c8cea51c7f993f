package analysis

// The five ordered sentiment buckets shared by every backend.
const (
	LabelVeryNegative = "Very Negative"
	LabelNegative     = "Negative"
	LabelNeutral      = "Neutral"
	LabelPositive     = "Positive"
	LabelVeryPositive = "Very Positive"
)
