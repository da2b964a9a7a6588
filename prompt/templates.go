package prompt

import (
	"fmt"
	"strings"

	"github.com/sweetpotato0/priorauth/question"
)

const divider = "═══════════════════════════════════════════════════════════════"
const rule = "───────────────────────────────────────────────────────────────"

// ActorSystem is the system prompt for first-pass answer generation. It pins
// the response contract: answers derive only from the given data, missing
// data is reported explicitly, booleans stay native booleans, and the reply
// is strict JSON with exactly the keys answer, reasoning and supporting_data.
const ActorSystem = `You are a medical prior authorization specialist AI assistant.

Your task is to answer prior authorization questions with ABSOLUTE PRECISION based ONLY on the provided patient information.

` + divider + `
CRITICAL INSTRUCTIONS - FOLLOW THESE LITERALLY:
` + divider + `

1. BASE ANSWERS STRICTLY ON PROVIDED DATA
   - Extract information ONLY from the patient context provided
   - Do NOT infer, assume, or extrapolate beyond what is explicitly stated
   - If data is missing, you MUST state: "Information not available in patient records"

2. QUESTION TYPE REQUIREMENTS
   - Boolean questions: Return ONLY true or false (lowercase)
   - Text questions: Return concise, factual answers as strings
   - ALWAYS include units for measurements (kg/m², years, lbs, etc.)

3. MEDICAL ACCURACY REQUIREMENTS
   - Use precise medical terminology
   - Verify calculations (e.g., BMI from height/weight if provided)
   - Consider ALL visit notes and medical history sections
   - Maintain consistency with clinical standards

4. STEP-BY-STEP REASONING (REQUIRED)
   - First, identify the relevant data in patient context
   - Second, extract or calculate the required value
   - Third, verify the answer meets the question requirements
   - Fourth, formulate your reasoning explaining your answer

5. RESPONSE FORMAT (STRICT JSON)
   - You MUST return valid JSON with these exact keys
   - "answer": <your answer value - boolean for boolean questions, string for text questions>
   - "reasoning": <your step-by-step reasoning as a string>
   - "supporting_data": <specific patient data points you used as a string>

` + divider + `

EXAMPLE GOOD RESPONSES:

For boolean question "Does patient have BMI ≥30?":
{
  "answer": true,
  "reasoning": "Patient's BMI is explicitly stated as 37.4 kg/m² in vital signs, which exceeds 30 kg/m²",
  "supporting_data": "BMI: 37.4 kg/m² from visit notes dated 2025-08-15"
}

For text question "What is patient's age?":
{
  "answer": "55 years",
  "reasoning": "Calculated from DOB 1970-03-11 to current date, also explicitly stated in visit notes as 55 years old",
  "supporting_data": "DOB: 1970-03-11, Visit notes confirm age: 55 years"
}

Your answers will be reviewed by medical professionals. Accuracy is paramount.`

// CriticSystem is the system prompt for the critic evaluation call.
const CriticSystem = "You are a medical expert reviewer specializing in prior authorization accuracy."

// RefinerSystem is the system prompt for the refinement call.
const RefinerSystem = "You are a medical AI specialist refining prior authorization answers based on expert feedback. Follow instructions precisely and return only valid JSON."

// ActorUser renders the user prompt for first-pass generation. fewShot may be
// empty when few-shot steering is disabled.
func ActorUser(fewShot, patientContext string, q question.Question) string {
	return fmt.Sprintf(`%s

%s
PATIENT INFORMATION:
%s
%s
%s

%s
QUESTION TO ANSWER:
%s
Type: %s
Key: %s
Question: %s
%s

INSTRUCTIONS - COMPLETE THESE STEPS IN ORDER:

STEP 1: Search the patient context above for relevant information
   - Look in: demographics, vital signs, visit notes, medical history
   - Identify: the specific data points that answer this question

STEP 2: Extract or calculate the answer
   - For boolean: determine true or false based on evidence
   - For text: extract the exact value or state unavailability
   - Include units: "37.4 kg/m²" not "37.4"

STEP 3: Verify your answer
   - Check: Does it answer what was asked?
   - Check: Is it supported by the patient data?
   - Check: Is the format correct for the question type?

STEP 4: Formulate your response
   - Write clear reasoning citing specific patient data
   - Note which section of patient context you used

STEP 5: Return ONLY this exact JSON structure:
{
    "answer": <your answer value>,
    "reasoning": "<your step-by-step reasoning>",
    "supporting_data": "<specific data from patient context>"
}

REMINDER:
- Boolean questions require boolean true/false (not strings)
- Text questions require strings
- Missing data = "Information not available in patient records"
- You MUST return valid JSON only`,
		fewShot, divider, divider, patientContext, divider,
		divider, divider, q.Type, q.Key, q.Content, divider)
}

// CriticUser renders the evaluation prompt scoring a proposed answer along
// the five rubric dimensions.
func CriticUser(patientContext string, q question.Question, proposed, reasoning string) string {
	return fmt.Sprintf(`You are a medical expert critic evaluating prior authorization answers for accuracy and completeness.

%s
YOUR TASK: Evaluate the proposed answer using strict medical standards
%s

### PATIENT CONTEXT:
%s
%s
%s

### QUESTION BEING ANSWERED:
%s
%s
%s

### PROPOSED ANSWER TO EVALUATE:
%s
Answer: %s
Reasoning: %s
%s

%s
EVALUATION CRITERIA - ASSESS EACH ONE EXPLICITLY:
%s

1. MEDICAL ACCURACY
   - Is the answer medically correct based on the patient data?
   - Are calculations correct (if applicable)?
   - Is medical terminology used properly?

2. COMPLETENESS
   - Does the answer fully address what was asked?
   - Are all relevant aspects covered?
   - Is any critical information missing?

3. EVIDENCE SUPPORT
   - Is the answer directly supported by patient information?
   - Can you trace the answer to specific data points?
   - Are any unsupported assumptions made?

4. CLARITY & PRECISION
   - Is the answer unambiguous?
   - Are units included where needed?
   - Is the language appropriate for medical review?

5. PRIOR AUTH COMPLIANCE
   - Does it meet standard prior authorization requirements?
   - Is it suitable for insurance review?

%s
INSTRUCTIONS - FOLLOW EXACTLY:
%s

STEP 1: Evaluate each of the 5 criteria above
STEP 2: Assign a confidence score:
   - 1.0 = Perfect, no issues whatsoever
   - 0.9 = Excellent, minor presentation improvements possible
   - 0.8 = Good, minor accuracy or completeness gaps
   - 0.7 = Acceptable but needs improvement
   - 0.6 or below = Significant issues, requires refinement

STEP 3: If score < 0.8, list SPECIFIC, ACTIONABLE improvements
   - Be concrete: "Include BMI unit" not "improve clarity"
   - Reference the patient data: "Use weight from visit note 1"
   - Prioritize accuracy over style

STEP 4: Return ONLY valid JSON with these EXACT keys:
{
    "confidence_score": <float between 0.0 and 1.0>,
    "improvements": [<array of strings, empty if none needed>],
    "evaluation_notes": "<your detailed evaluation as a string>",
    "is_acceptable": <boolean: true if score >= 0.7, false otherwise>
}

You MUST return valid JSON. Do NOT include any text outside the JSON object.`,
		divider, divider,
		rule, patientContext, rule,
		rule, q.Content, rule,
		rule, proposed, reasoning, rule,
		divider, divider,
		divider, divider)
}

// RefinerUser renders the refinement prompt, enumerating every improvement
// directive 1..N so the model must address each one.
func RefinerUser(patientContext string, q question.Question, original string, improvements []string) string {
	numbered := make([]string, len(improvements))
	for i, imp := range improvements {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, imp)
	}

	return fmt.Sprintf(`You are refining a prior authorization answer based on expert medical reviewer feedback.

%s
YOUR TASK: Create an improved answer that addresses ALL feedback
%s

### PATIENT CONTEXT:
%s
%s
%s

### QUESTION:
%s
Type: %s
Question: %s
%s

### ORIGINAL ANSWER (needs improvement):
%s
%s
%s

### EXPERT FEEDBACK - ADDRESS EACH POINT:
%s
%s
%s

%s
INSTRUCTIONS - FOLLOW STEP BY STEP:
%s

STEP 1: Review each improvement point carefully
STEP 2: Re-examine the patient context for relevant data
STEP 3: Create a refined answer that:
   - Addresses ALL improvement points
   - Maintains any correct aspects of the original
   - Stays strictly within the patient data provided
   - Follows the question type (boolean → true/false, text → string)
STEP 4: Document what you changed and why

STEP 5: Return ONLY valid JSON with these EXACT keys:
{
    "refined_answer": <your improved answer - boolean for boolean questions, string for text questions>,
    "reasoning": "<comprehensive reasoning for the refined answer>",
    "changes_made": [<array of strings describing specific changes>]
}

CRITICAL: Ensure your refined_answer matches the question type exactly.
For boolean questions: use true or false (not "true" or "false" as strings)
For text questions: use strings with appropriate units

You MUST return valid JSON only. No additional text.`,
		divider, divider,
		rule, patientContext, rule,
		rule, q.Type, q.Content, rule,
		rule, original, rule,
		rule, strings.Join(numbered, "\n"), rule,
		divider, divider)
}
