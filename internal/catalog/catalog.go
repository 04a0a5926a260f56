package catalog

// Catalog is the fixed, ordered set of questions presented in one test.
// It is immutable after construction.
type Catalog struct {
	questions []Question
}

// def is the built-in catalog, set by init() in seed.go.
var def *Catalog

// New validates the questions and returns a Catalog holding a private copy.
func New(questions []Question) (*Catalog, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}
	qs := make([]Question, len(questions))
	for i, q := range questions {
		qs[i] = q.clone()
	}
	return &Catalog{questions: qs}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return def
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns a copy of the questions in presentation order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.clone()
	}
	return out
}

// MaxScore is the best achievable total: every question answered with MaxValue.
func (c *Catalog) MaxScore() int {
	return len(c.questions) * MaxValue
}
