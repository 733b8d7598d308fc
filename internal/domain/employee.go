package domain

import (
	"strings"
	"unicode/utf8"
)

// Employee is a team member shown on the roster.
// Employees are seed data and never change at runtime.
type Employee struct {
	Name           string `yaml:"name"`
	Role           string `yaml:"role"`
	Avatar         string `yaml:"avatar,omitempty"`
	ID             int    `yaml:"id"`
	TasksCount     int    `yaml:"tasksCount"`
	CompletionRate int    `yaml:"completionRate"` // 0-100
}

// Initials returns the first letter of each part of the name.
func (e Employee) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(e.Name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}
