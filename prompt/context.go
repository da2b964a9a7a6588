package prompt

import (
	"time"

	"github.com/sweetpotato0/priorauth/patient"
	"github.com/sweetpotato0/priorauth/question"
)

// PatientContext serializes the patient into the natural-language context
// block the actor, critic and refiner all share. Serialization is
// deterministic: demographics, computed age, prescription, then every visit
// note numbered in order.
func PatientContext(p *patient.Patient, now time.Time) string {
	b := NewBuilder().
		Add("Patient Information:").
		AddFormat("- Name: %s", p.FullName()).
		AddFormat("- Age: %d years", p.Age(now)).
		AddFormat("- Gender: %s", p.Gender).
		AddFormat("- Date of Birth: %s", p.DateOfBirth).
		Add("").
		Add("Current Prescription:").
		AddFormat("- Medication: %s", p.Prescription.Medication).
		AddFormat("- Dosage: %s", p.Prescription.Dosage).
		AddFormat("- Frequency: %s", p.Prescription.Frequency).
		AddFormat("- Duration: %s", p.Prescription.Duration).
		Add("").
		Add("Visit Notes:")

	for i, note := range p.VisitNotes {
		b.AddFormat("%d. %s", i+1, note)
	}

	return b.Build()
}

// AppendPriorAnswers extends a context block with the previously answered
// questions, in the order they were answered, so later questions can ground
// on earlier-derived facts.
func AppendPriorAnswers(contextBlock string, answers *question.Answers) string {
	if answers.Len() == 0 {
		return contextBlock
	}
	b := NewBuilder().
		Add(contextBlock).
		Add("").
		Add("### Previously Answered Questions:")
	for _, key := range answers.Keys() {
		value, _ := answers.Get(key)
		b.AddFormat("- %s: %s", key, value.String())
	}
	return b.Build()
}
