package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrEmptyCatalog is returned when a catalog has no questions.
var ErrEmptyCatalog = errors.New("catalog validation failed: no questions")

// Validate performs structural checks on a question set. It returns a
// *multierror.Error listing every problem found, or nil if valid.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyCatalog
	}

	var result *multierror.Error
	ids := make(map[int]bool, len(questions))

	for _, q := range questions {
		if ids[q.ID] {
			result = multierror.Append(result, fmt.Errorf("duplicate question ID: %d", q.ID))
		}
		ids[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			result = multierror.Append(result, fmt.Errorf("question %d: empty prompt", q.ID))
		}
		if strings.TrimSpace(string(q.Category)) == "" {
			result = multierror.Append(result, fmt.Errorf("question %d: empty category", q.ID))
		}
		if len(q.Options) == 0 {
			result = multierror.Append(result, fmt.Errorf("question %d: no options", q.ID))
			continue
		}

		// Restoring a prior selection matches by value, so values must be
		// unique within a question.
		seen := make(map[int]bool, len(q.Options))
		for i, opt := range q.Options {
			if opt.Value < MinValue || opt.Value > MaxValue {
				result = multierror.Append(result, fmt.Errorf("question %d option %d: value %d outside [%d, %d]",
					q.ID, i, opt.Value, MinValue, MaxValue))
			}
			if seen[opt.Value] {
				result = multierror.Append(result, fmt.Errorf("question %d option %d: duplicate value %d", q.ID, i, opt.Value))
			}
			seen[opt.Value] = true
			if strings.TrimSpace(opt.Text) == "" {
				result = multierror.Append(result, fmt.Errorf("question %d option %d: empty text", q.ID, i))
			}
		}
	}

	if result != nil {
		result.ErrorFormat = formatProblems
	}
	return result.ErrorOrNil()
}

func formatProblems(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return "catalog validation failed:\n  " + strings.Join(lines, "\n  ")
}
