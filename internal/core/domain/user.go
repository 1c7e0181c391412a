package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const BirthDateLayout = "2006-01-02"

var (
	userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]{1,10}$`)
	emailPattern  = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// UserID is the login id chosen at sign up.
type UserID string

func NewUserID(value string) (UserID, error) {
	if !userIDPattern.MatchString(value) {
		return "", fmt.Errorf("%w: user id must be 1-10 alphanumeric characters", ErrInvalidValue)
	}
	return UserID(value), nil
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type User struct {
	ID        UserID
	Email     string
	BirthDate time.Time
	Gender    Gender
	CreatedAt time.Time
}

func NewUser(id, email, birthDate string, gender Gender) (*User, error) {
	userID, err := NewUserID(id)
	if err != nil {
		return nil, err
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrInvalidValue)
	}
	birth, err := time.Parse(BirthDateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return nil, fmt.Errorf("%w: birth date must be yyyy-MM-dd", ErrInvalidValue)
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("%w: gender must be MALE or FEMALE", ErrInvalidValue)
	}
	return &User{
		ID:        userID,
		Email:     email,
		BirthDate: birth,
		Gender:    gender,
		CreatedAt: time.Now(),
	}, nil
}
