package domain

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		email     string
		birthDate string
		gender    Gender
		wantErr   bool
	}{
		{"valid", "user1", "user1@example.com", "1990-01-15", GenderMale, false},
		{"id too long", "abcdefghijk", "a@b.co", "1990-01-15", GenderMale, true},
		{"id with symbol", "user_1", "a@b.co", "1990-01-15", GenderMale, true},
		{"empty id", "", "a@b.co", "1990-01-15", GenderMale, true},
		{"bad email", "user1", "user1example.com", "1990-01-15", GenderFemale, true},
		{"bad birth date", "user1", "a@b.co", "15/01/1990", GenderFemale, true},
		{"missing gender", "user1", "a@b.co", "1990-01-15", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.id, tt.email, tt.birthDate, tt.gender)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Fatalf("expected ErrInvalidValue, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if u.ID != UserID(tt.id) {
				t.Fatalf("expected id %q, got %q", tt.id, u.ID)
			}
			if u.BirthDate.Format(BirthDateLayout) != tt.birthDate {
				t.Fatalf("expected birth date %q, got %q", tt.birthDate, u.BirthDate.Format(BirthDateLayout))
			}
		})
	}
}
