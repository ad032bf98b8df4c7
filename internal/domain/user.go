package domain

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), nil
	}
	return "", ErrInvalidGender
}

type User struct {
	ID           int64
	Name         string
	Email        string
	MobileNumber string
	PasswordHash string
	Role         Role
	DOB          *time.Time
	Address      string
	ZipCode      string
	Gender       Gender
	CreatedAt    time.Time
}
