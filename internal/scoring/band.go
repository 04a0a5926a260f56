package scoring

// Band is one of five ordered qualitative classifications of a score.
type Band int

const (
	BandCritical Band = iota
	BandLow
	BandModerate
	BandGood
	BandExcellent
)

// Lower edges of each band, in percent. A value equal to an edge belongs
// to the higher band.
const (
	ThresholdExcellent = 80.0
	ThresholdGood      = 60.0
	ThresholdModerate  = 40.0
	ThresholdLow       = 20.0
)

// Interpretation is the fixed title and description for a band.
type Interpretation struct {
	Band        Band
	Title       string
	Description string
}

var interpretations = map[Band]Interpretation{
	BandExcellent: {
		Band:        BandExcellent,
		Title:       "Excellent Wellbeing",
		Description: "Your answers suggest your mental wellbeing is in very good shape. Keep up the positive habits that got you here.",
	},
	BandGood: {
		Band:        BandGood,
		Title:       "Good Wellbeing",
		Description: "Overall you are doing well. There are a few areas where small changes could help.",
	},
	BandModerate: {
		Band:        BandModerate,
		Title:       "Moderate Wellbeing",
		Description: "You are facing difficulties in some areas. Following the recommendations below can help you improve.",
	},
	BandLow: {
		Band:        BandLow,
		Title:       "Low Wellbeing",
		Description: "Some areas of your mental health need attention. We recommend getting professional support.",
	},
	BandCritical: {
		Band:        BandCritical,
		Title:       "Critical Wellbeing",
		Description: "Your answers point to serious difficulties. Please contact a mental health professional as soon as possible.",
	},
}

// Interpret maps a score percentage to exactly one band.
func Interpret(pct float64) Interpretation {
	return interpretations[BandFor(pct)]
}

// BandFor returns the band containing pct.
func BandFor(pct float64) Band {
	switch {
	case pct >= ThresholdExcellent:
		return BandExcellent
	case pct >= ThresholdGood:
		return BandGood
	case pct >= ThresholdModerate:
		return BandModerate
	case pct >= ThresholdLow:
		return BandLow
	default:
		return BandCritical
	}
}

// String returns the short band name.
func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "Excellent"
	case BandGood:
		return "Good"
	case BandModerate:
		return "Moderate"
	case BandLow:
		return "Low"
	case BandCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}
