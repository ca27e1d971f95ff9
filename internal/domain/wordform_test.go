package domain

import (
	"errors"
	"testing"
)

func TestWordForm_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		form WordForm
		want bool
	}{
		{WordFormSurface, true},
		{WordFormLemma, true},
		{WordForm("STEM"), false},
		{WordForm(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.form), func(t *testing.T) {
			t.Parallel()
			if got := tt.form.IsValid(); got != tt.want {
				t.Errorf("WordForm(%q).IsValid() = %v, want %v", tt.form, got, tt.want)
			}
		})
	}
}

func TestParseWordForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   string
		want    WordForm
		wantErr bool
	}{
		{label: "", want: WordFormSurface},
		{label: "surface", want: WordFormSurface},
		{label: "WORD", want: WordFormSurface},
		{label: "lemma", want: WordFormLemma},
		{label: "LEMMAS", want: WordFormLemma},
		{label: " lemma ", want: WordFormLemma},
		{label: "stem", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			got, err := ParseWordForm(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWordForm(%q) expected error, got %q", tt.label, got)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("ParseWordForm(%q) error = %v, want ErrValidation", tt.label, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWordForm(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseWordForm(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}
