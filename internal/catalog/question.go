package catalog

// Category labels the wellbeing area a question probes.
type Category string

const (
	CategoryMood          Category = "Mood"
	CategorySleep         Category = "Sleep"
	CategoryAnxiety       Category = "Anxiety"
	CategorySocial        Category = "Social"
	CategoryConcentration Category = "Concentration"
	CategoryEnergy        Category = "Energy"
	CategoryStress        Category = "Stress"
	CategoryRelationships Category = "Relationships"
	CategorySelfEsteem    Category = "Self-esteem"
	CategoryFuture        Category = "Future"
)

// Value bounds for an option. Higher is more favorable.
const (
	MinValue = 1
	MaxValue = 5
)

// Option is one selectable response to a question.
type Option struct {
	Text  string
	Value int
}

// Question is a single multiple-choice item in the catalog.
type Question struct {
	ID       int
	Category Category
	Prompt   string
	Options  []Option
}

// OptionIndexForValue returns the index of the first option carrying value,
// or -1 when no option matches.
func (q Question) OptionIndexForValue(value int) int {
	for i, opt := range q.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// clone returns a deep copy so callers cannot mutate catalog options.
func (q Question) clone() Question {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}
