package question

import (
	"regexp"
	"strings"
)

// Visibility condition grammar:
//
//	condition := clause (" and " clause)*
//	clause    := "{" key "}" "=" value
//
// Value comparison is case-insensitive, and a clause referencing a key that
// has not been answered evaluates to false. The grammar is deliberately
// minimal; disjunction or inequality would be a new grammar version, not a
// silent extension.
var clausePattern = regexp.MustCompile(`^\{([^}]+)\}\s*=\s*(.+)$`)

// Visible evaluates a visibility condition against the accumulated answers.
// An empty condition is always visible. A clause that does not match the
// grammar does not gate the question.
func Visible(condition string, answers *Answers) bool {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return true
	}

	if strings.Contains(condition, " and ") {
		for _, part := range strings.Split(condition, " and ") {
			if !Visible(part, answers) {
				return false
			}
		}
		return true
	}

	m := clausePattern.FindStringSubmatch(condition)
	if m == nil {
		return true
	}

	key := m[1]
	expected := strings.ToLower(strings.TrimSpace(m[2]))

	actual, ok := answers.Get(key)
	if !ok {
		return false
	}
	return strings.ToLower(actual.String()) == expected
}
