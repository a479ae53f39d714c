package config

import "fmt"

// Grade is the difficulty tier that selects the available operators.
type Grade string

const (
	Grade1 Grade = "1"
	Grade2 Grade = "2"
	Grade3 Grade = "3"
	Grade4 Grade = "4"
)

// Grades lists every grade in menu order.
func Grades() []Grade {
	return []Grade{Grade1, Grade2, Grade3, Grade4}
}

// ParseGrade validates a grade string.
func ParseGrade(s string) (Grade, error) {
	g := Grade(s)
	if !g.Valid() {
		return "", fmt.Errorf("config: unknown grade %q (want 1-4)", s)
	}
	return g, nil
}

// Valid reports whether g is one of the known grades.
func (g Grade) Valid() bool {
	switch g {
	case Grade1, Grade2, Grade3, Grade4:
		return true
	}
	return false
}

// AllowsMultiply reports whether × food can appear.
func (g Grade) AllowsMultiply() bool {
	return g == Grade3 || g == Grade4
}

// AllowsDivide reports whether ÷ food can appear.
func (g Grade) AllowsDivide() bool {
	return g == Grade4
}

// Label is the human-readable name used by menus and the HUD.
func (g Grade) Label() string {
	return "Grade " + string(g)
}

// Operators describes the operators unlocked at this grade.
func (g Grade) Operators() string {
	switch {
	case g.AllowsDivide():
		return "+ - × ÷"
	case g.AllowsMultiply():
		return "+ - ×"
	default:
		return "+ -"
	}
}
