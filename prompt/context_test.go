package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/sweetpotato0/priorauth/patient"
	"github.com/sweetpotato0/priorauth/question"
)

func testPatient() *patient.Patient {
	return &patient.Patient{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1975-05-15",
		Gender:      "Male",
		Prescription: patient.Prescription{
			Medication: "Zepbound",
			Dosage:     "10 mg",
			Frequency:  "once weekly",
			Duration:   "ongoing",
		},
		VisitNotes: []string{
			"Calculated BMI: 35.2 kg/m²",
			"Comorbidities: Type 2 Diabetes",
		},
	}
}

func TestPatientContext(t *testing.T) {
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	ctx := PatientContext(testPatient(), now)

	for _, want := range []string{
		"- Name: John Doe",
		"- Age: 49 years",
		"- Gender: Male",
		"- Date of Birth: 1975-05-15",
		"- Medication: Zepbound",
		"1. Calculated BMI: 35.2 kg/m²",
		"2. Comorbidities: Type 2 Diabetes",
	} {
		if !strings.Contains(ctx, want) {
			t.Errorf("Expected context to contain %q\ngot:\n%s", want, ctx)
		}
	}
}

func TestPatientContextDeterministic(t *testing.T) {
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	a := PatientContext(testPatient(), now)
	b := PatientContext(testPatient(), now)
	if a != b {
		t.Error("Expected identical serialization for identical input")
	}
}

func TestAppendPriorAnswers(t *testing.T) {
	answers := question.NewAnswers()
	base := "context"

	if got := AppendPriorAnswers(base, answers); got != base {
		t.Errorf("Expected unchanged context for empty answers, got %q", got)
	}

	answers.Set("age", question.Text("49"))
	answers.Set("bmi_ge_30", question.Bool(true))

	got := AppendPriorAnswers(base, answers)
	if !strings.Contains(got, "### Previously Answered Questions:") {
		t.Errorf("Expected prior answers header, got:\n%s", got)
	}

	ageIdx := strings.Index(got, "- age: 49")
	bmiIdx := strings.Index(got, "- bmi_ge_30: true")
	if ageIdx == -1 || bmiIdx == -1 {
		t.Fatalf("Expected both answers in output, got:\n%s", got)
	}
	if ageIdx > bmiIdx {
		t.Error("Expected answers in insertion order")
	}
}

func TestFewShotSection(t *testing.T) {
	if got := FewShotSection(nil); got != "" {
		t.Errorf("Expected empty section for no examples, got %q", got)
	}

	section := FewShotSection(DefaultExamples())
	if !strings.Contains(section, "### Examples of Correct Answers:") {
		t.Error("Expected examples header")
	}
	if !strings.Contains(section, "Example 3:") {
		t.Error("Expected third example")
	}

	// More than three examples are truncated.
	many := append(DefaultExamples(), Example{Question: "extra", Answer: "true"})
	section = FewShotSection(many)
	if strings.Contains(section, "Example 4:") {
		t.Error("Expected at most three examples")
	}
}
