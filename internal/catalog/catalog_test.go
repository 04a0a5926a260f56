package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	if c == nil {
		t.Fatal("expected built-in catalog")
	}
	if c.Len() != 10 {
		t.Errorf("Len = %d, want 10", c.Len())
	}
	if c.MaxScore() != 50 {
		t.Errorf("MaxScore = %d, want 50", c.MaxScore())
	}
	if err := Validate(c.Questions()); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
}

func TestDefault_OrderedByID(t *testing.T) {
	qs := Default().Questions()
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d, want %d", i, q.ID, i+1)
		}
		if len(q.Options) != 5 {
			t.Errorf("question %d has %d options, want 5", q.ID, len(q.Options))
		}
		if q.Options[0].Value != MaxValue || q.Options[4].Value != MinValue {
			t.Errorf("question %d options not ordered most favorable first", q.ID)
		}
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	c := Default()
	qs := c.Questions()
	qs[0].Prompt = "mutated"
	qs[0].Options[0].Text = "mutated"

	fresh := c.Questions()
	if fresh[0].Prompt == "mutated" || fresh[0].Options[0].Text == "mutated" {
		t.Error("mutating returned questions changed the catalog")
	}
}

func TestOptionIndexForValue(t *testing.T) {
	q := Question{Options: []Option{{"a", 5}, {"b", 3}, {"c", 1}}}
	tests := []struct {
		value int
		want  int
	}{
		{5, 0},
		{3, 1},
		{1, 2},
		{4, -1},
	}
	for _, tt := range tests {
		if got := q.OptionIndexForValue(tt.value); got != tt.want {
			t.Errorf("OptionIndexForValue(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() Question {
		return Question{ID: 1, Category: CategoryMood, Prompt: "p", Options: likert("a", "b", "c", "d", "e")}
	}

	tests := []struct {
		name      string
		questions []Question
		wantErr   string
	}{
		{
			name:      "empty catalog",
			questions: nil,
			wantErr:   "no questions",
		},
		{
			name: "duplicate ID",
			questions: func() []Question {
				a, b := valid(), valid()
				return []Question{a, b}
			}(),
			wantErr: "duplicate question ID",
		},
		{
			name: "empty prompt",
			questions: func() []Question {
				q := valid()
				q.Prompt = " "
				return []Question{q}
			}(),
			wantErr: "empty prompt",
		},
		{
			name: "no options",
			questions: func() []Question {
				q := valid()
				q.Options = nil
				return []Question{q}
			}(),
			wantErr: "no options",
		},
		{
			name: "value out of range",
			questions: func() []Question {
				q := valid()
				q.Options[0].Value = 6
				return []Question{q}
			}(),
			wantErr: "outside [1, 5]",
		},
		{
			name: "duplicate option value",
			questions: func() []Question {
				q := valid()
				q.Options[1].Value = q.Options[0].Value
				return []Question{q}
			}(),
			wantErr: "duplicate value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.questions)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	_, err := New([]Question{{ID: 1, Category: CategoryMood, Prompt: "p"}})
	if err == nil {
		t.Fatal("expected error for question without options")
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	bad := Question{ID: 7, Category: "", Prompt: "", Options: []Option{{Text: "", Value: 9}}}
	err := Validate([]Question{bad})

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected *multierror.Error, got %T", err)
	}
	if len(merr.Errors) != 4 {
		t.Errorf("problems = %d, want 4: %v", len(merr.Errors), err)
	}
	if !strings.HasPrefix(err.Error(), "catalog validation failed:") {
		t.Errorf("error = %q", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("error = %v, want ErrEmptyCatalog", err)
	}
}
