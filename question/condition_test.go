package question

import "testing"

func answered(pairs ...any) *Answers {
	a := NewAnswers()
	for i := 0; i < len(pairs); i += 2 {
		a.Set(pairs[i].(string), pairs[i+1].(Value))
	}
	return a
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		answers   *Answers
		want      bool
	}{
		{"empty condition", "", NewAnswers(), true},
		{"whitespace condition", "   ", NewAnswers(), true},
		{"matching boolean", "{bmi_ge_30} = true", answered("bmi_ge_30", Bool(true)), true},
		{"non-matching boolean", "{bmi_ge_30} = true", answered("bmi_ge_30", Bool(false)), false},
		{"matching text", "{diagnosis} = obesity", answered("diagnosis", Text("obesity")), true},
		{"case-insensitive match", "{diagnosis} = OBESITY", answered("diagnosis", Text("Obesity")), true},
		{"unanswered key", "{bmi_ge_30} = true", NewAnswers(), false},
		{"conjunction both true", "{a} = true and {b} = false", answered("a", Bool(true), "b", Bool(false)), true},
		{"conjunction one false", "{a} = true and {b} = true", answered("a", Bool(true), "b", Bool(false)), false},
		{"conjunction with unanswered", "{a} = true and {missing} = true", answered("a", Bool(true)), false},
		{"unparseable clause does not gate", "not a clause", NewAnswers(), true},
		{"unparseable clause in conjunction", "{a} = true and garbage", answered("a", Bool(true)), true},
		{"spaces around equals", "{a}   =   true", answered("a", Bool(true)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.condition, tt.answers); got != tt.want {
				t.Errorf("Visible(%q) = %v, expected %v", tt.condition, got, tt.want)
			}
		})
	}
}

func TestAnswersOrdering(t *testing.T) {
	a := NewAnswers()
	a.Set("age", Text("49"))
	a.Set("bmi", Text("35.2"))
	a.Set("bmi_ge_30", Bool(true))
	a.Set("age", Text("50")) // overwrite keeps position

	keys := a.Keys()
	want := []string{"age", "bmi", "bmi_ge_30"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Expected key %s at %d, got %s", k, i, keys[i])
		}
	}

	v, ok := a.Get("age")
	if !ok || !v.Equal(Text("50")) {
		t.Errorf("Expected overwritten value 50, got %v", v)
	}
	if a.Len() != 3 {
		t.Errorf("Expected length 3, got %d", a.Len())
	}

	if _, ok := a.Get("missing"); ok {
		t.Error("Expected missing key to report not answered")
	}
}
