package domain

import "testing"

func TestEmployee_Initials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alexey Ivanov", "AI"},
		{"Мария Петрова", "МП"},
		{"Cher", "C"},
		{"  Anna   Maria  Lee ", "AML"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Employee{Name: tt.name}.Initials()
			if got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}
