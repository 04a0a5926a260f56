package scoring

var baseRecommendations = []string{
	"Exercise regularly (at least 3 days a week)",
	"Get enough sleep (7-9 hours a day)",
	"Eat healthily and drink more water",
	"Take part in social activities",
	"Practice meditation or breathing exercises",
}

// Below ThresholdModerate.
var supportRecommendations = []string{
	"Talk to a psychologist or counselor",
	"Learn stress management techniques",
	"Spend time on hobbies you enjoy",
	"Talk to people you trust",
}

// Between ThresholdModerate and ThresholdGood.
var improvementRecommendations = []string{
	"Start keeping a journal",
	"Spend time in nature",
	"Learn new skills",
}

// ThresholdGood and above.
var reinforcementRecommendations = []string{
	"Keep up your current positive habits",
	"Strengthen your social ties by helping others",
}

// Recommend returns the base recommendations followed by exactly one
// tier-specific set.
func Recommend(pct float64) []string {
	var extra []string
	switch {
	case pct < ThresholdModerate:
		extra = supportRecommendations
	case pct < ThresholdGood:
		extra = improvementRecommendations
	default:
		extra = reinforcementRecommendations
	}

	out := make([]string, 0, len(baseRecommendations)+len(extra))
	out = append(out, baseRecommendations...)
	return append(out, extra...)
}
