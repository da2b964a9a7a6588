package prompt

// maxFewShotExamples caps how many examples are prepended to the user prompt.
const maxFewShotExamples = 3

// Example is one canned (context, question, answer, reasoning) tuple used to
// steer the backend toward the expected output shape and reasoning style.
type Example struct {
	PatientContext string
	Question       string
	Answer         string
	Reasoning      string
}

// DefaultExamples returns the built-in few-shot examples for
// prior-authorization questions.
func DefaultExamples() []Example {
	return []Example{
		{
			PatientContext: "Patient: 45-year-old male, BMI 32.5, diagnosed with Type 2 diabetes and hypertension",
			Question:       "Does the patient have a BMI greater than or equal to 30 kg per square meter?",
			Answer:         "true",
			Reasoning:      "The patient's BMI is 32.5 kg/m², which is greater than 30 kg/m².",
		},
		{
			PatientContext: "Patient: 35-year-old female, weight 180 lbs, height 5'4\", participated in diet program for 8 months",
			Question:       "Has the patient participated in a comprehensive weight-management program for at least 6 months?",
			Answer:         "true",
			Reasoning:      "The patient has participated in a diet program for 8 months, which exceeds the 6-month requirement.",
		},
		{
			PatientContext: "Patient on Zepbound 10mg weekly for 4 months, lost 12% of baseline weight",
			Question:       "Has the patient had a weight loss of more than or equal to 5% of baseline body weight?",
			Answer:         "true",
			Reasoning:      "The patient has lost 12% of baseline weight, which is significantly more than the required 5%.",
		},
	}
}

// FewShotSection renders the example block prepended to the user prompt, or
// an empty string when no examples are given. At most three examples are
// used.
func FewShotSection(examples []Example) string {
	if len(examples) == 0 {
		return ""
	}
	if len(examples) > maxFewShotExamples {
		examples = examples[:maxFewShotExamples]
	}

	b := NewBuilder().Add("").Add("### Examples of Correct Answers:").Add("")
	for i, ex := range examples {
		b.Add("").
			AddFormat("Example %d:", i+1).
			AddFormat("Context: %s", ex.PatientContext).
			AddFormat("Question: %s", ex.Question).
			AddFormat("Answer: %s", ex.Answer).
			AddFormat("Reasoning: %s", ex.Reasoning)
	}
	b.Add("").Add("---").Add("")
	return b.Build()
}
