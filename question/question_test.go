package question

import (
	stderrors "errors"
	"testing"

	"github.com/sweetpotato0/priorauth/errors"
)

func TestQuestionValidate(t *testing.T) {
	q := Question{Type: TypeText, Key: "bmi", Content: "What is the patient's BMI?"}
	if err := q.Validate(); err != nil {
		t.Fatalf("Expected valid question, got error: %v", err)
	}

	tests := []struct {
		name string
		q    Question
	}{
		{"missing key", Question{Type: TypeText, Content: "x"}},
		{"missing content", Question{Type: TypeText, Key: "k"}},
		{"unknown type", Question{Type: "numeric", Key: "k", Content: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !stderrors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSetValidate(t *testing.T) {
	s := Set{
		Name: "zepbound",
		Questions: []Question{
			{Type: TypeText, Key: "bmi", Content: "BMI?"},
			{Type: TypeBoolean, Key: "bmi_ge_30", Content: "BMI >= 30?"},
		},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Expected valid set, got error: %v", err)
	}

	s.Questions = append(s.Questions, Question{Type: TypeText, Key: "bmi", Content: "again"})
	err := s.Validate()
	if err == nil {
		t.Fatal("Expected duplicate key error, got nil")
	}
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
