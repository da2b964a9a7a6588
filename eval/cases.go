package eval

import (
	"github.com/sweetpotato0/priorauth/patient"
	"github.com/sweetpotato0/priorauth/question"
)

// DefaultTestCases returns the built-in evaluation suite. It covers the
// recurring prior-authorization question shapes: chart-stated values,
// derived demographics, and boolean criteria checks. Production
// deployments load additional cases from storage.
func DefaultTestCases() []TestCase {
	return []TestCase{
		{
			Patient: patient.Patient{
				FirstName:   "Test",
				LastName:    "Patient1",
				DateOfBirth: "1975-01-01",
				Gender:      "Male",
				Prescription: patient.Prescription{
					Medication: "Zepbound",
					Dosage:     "10 mg",
					Frequency:  "once weekly",
					Duration:   "ongoing",
				},
				VisitNotes: []string{
					"Patient height: 170 cm, weight: 95 kg",
					"BMI calculated at 32.9 kg/m²",
				},
			},
			Question: question.Question{
				Type:    question.TypeText,
				Key:     "bmi",
				Content: "What is the patient's body mass index (BMI) in kilograms per square meter (kg/m2)",
			},
			Expected: question.Text("32.9"),
			AcceptableVariations: []question.Value{
				question.Text("32.9 kg/m²"),
				question.Text("33"),
				question.Text("32.87"),
			},
			Reasoning: "BMI is explicitly stated in visit notes",
			Tags:      []string{"bmi", "calculation", "text_answer"},
		},
		{
			Patient: patient.Patient{
				FirstName:   "Test",
				LastName:    "Patient2",
				DateOfBirth: "1990-06-15",
				Gender:      "Female",
				Prescription: patient.Prescription{
					Medication: "Zepbound",
					Dosage:     "5 mg",
					Frequency:  "once weekly",
					Duration:   "3 months",
				},
				VisitNotes: []string{"Patient presents for weight management consultation"},
			},
			Question: question.Question{
				Type:    question.TypeText,
				Key:     "age",
				Content: "What is the patient's age in years?",
			},
			Expected: question.Text("34"),
			AcceptableVariations: []question.Value{
				question.Text("34 years"),
				question.Text("34"),
			},
			Reasoning: "Age calculated from date of birth",
			Tags:      []string{"age", "calculation", "demographics"},
		},
		{
			Patient: patient.Patient{
				FirstName:   "Test",
				LastName:    "Patient3",
				DateOfBirth: "1980-03-20",
				Gender:      "Male",
				Prescription: patient.Prescription{
					Medication: "Zepbound",
					Dosage:     "15 mg",
					Frequency:  "once weekly",
					Duration:   "ongoing",
				},
				VisitNotes: []string{
					"Patient has been on structured diet and exercise program for 8 months",
					"Regular follow-ups with nutritionist and personal trainer",
					"Compliant with lifestyle modification protocol",
				},
			},
			Question: question.Question{
				Type:    question.TypeBoolean,
				Key:     "antiobesity_wt_mgmt_6m",
				Content: "Has the patient participated in a comprehensive weight-management program (diet, exercise, follow-up) for at least 6 months prior to drug therapy?",
			},
			Expected:  question.Bool(true),
			Reasoning: "Visit notes clearly indicate 8 months of structured diet and exercise program",
			Tags:      []string{"boolean", "lifestyle", "prerequisites"},
		},
		{
			Patient: patient.Patient{
				FirstName:   "Test",
				LastName:    "Patient4",
				DateOfBirth: "1985-11-10",
				Gender:      "Female",
				Prescription: patient.Prescription{
					Medication: "Zepbound",
					Dosage:     "10 mg",
					Frequency:  "once weekly",
					Duration:   "ongoing",
				},
				VisitNotes: []string{
					"Patient on Zepbound for 4 months",
					"Started at 185 lbs, current weight 165 lbs",
					"Weight loss of 20 lbs represents 10.8% reduction from baseline",
				},
			},
			Question: question.Question{
				Type:    question.TypeBoolean,
				Key:     "cont_wl_gt5percent",
				Content: "Has the patient had a weight loss of more than or equal to 5% of baseline body weight?",
			},
			Expected:  question.Bool(true),
			Reasoning: "Patient has lost 10.8% of baseline weight, exceeding the 5% threshold",
			Tags:      []string{"boolean", "weight_loss", "continuation"},
		},
		{
			Patient: patient.Patient{
				FirstName:   "Test",
				LastName:    "Patient5",
				DateOfBirth: "1978-07-22",
				Gender:      "Male",
				Prescription: patient.Prescription{
					Medication: "Zepbound",
					Dosage:     "5 mg",
					Frequency:  "once weekly",
					Duration:   "new",
				},
				VisitNotes: []string{
					"BMI: 28.5 kg/m²",
					"Diagnosed with Type 2 Diabetes Mellitus",
					"Hypertension - controlled with medication",
					"Dyslipidemia - LDL 165 mg/dL",
				},
			},
			Question: question.Question{
				Type:    question.TypeBoolean,
				Key:     "antiobesity_bmi_ge27_comorbid",
				Content: "Does the patient have a BMI greater than or equal to 27 kg per square meter AND at least one weight-related comorbid condition?",
			},
			Expected:  question.Bool(true),
			Reasoning: "BMI is 28.5 (>=27) and patient has multiple comorbidities: diabetes, hypertension, dyslipidemia",
			Tags:      []string{"boolean", "bmi", "comorbidity"},
		},
	}
}
