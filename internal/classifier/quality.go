package classifier

// Quality is a four-level label derived from a numeric confidence score.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// QualityFor maps a confidence score to its quality bucket.
func QualityFor(confidence float64) Quality {
	switch {
	case confidence >= 0.9:
		return QualityExcellent
	case confidence >= 0.7:
		return QualityGood
	case confidence >= 0.5:
		return QualityFair
	default:
		return QualityPoor
	}
}
