// Package validate holds the form rules shared by the client screens and the server.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

const (
	MinPasswordLen = 6
	MaxFarmNameLen = 100
	MaxLocationLen = 200
)

// Field keys.
const (
	FieldName     = "name"
	FieldLastName = "lastName"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldConfirm  = "confirmPassword"
	FieldLocation = "location"
)

// Reasons.
const (
	ReasonRequired = "required"
	ReasonInvalid  = "invalid"
	ReasonTooShort = "too_short"
	ReasonTooLong  = "too_long"
	ReasonMismatch = "mismatch"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error is a field-keyed validation failure. It matches errs.ErrValidation.
type Error struct {
	Fields map[string]string // field -> reason
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation: " + strings.Join(parts, ", ")
}

func (e *Error) Unwrap() error { return errs.ErrValidation }

type collector map[string]string

func (c collector) add(field, reason string) {
	if _, ok := c[field]; !ok {
		c[field] = reason
	}
}

func (c collector) err() error {
	if len(c) == 0 {
		return nil
	}
	return &Error{Fields: c}
}

// Email reports whether s looks like an address.
func Email(s string) bool { return emailRe.MatchString(s) }

func checkEmail(c collector, email string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		c.add(FieldEmail, ReasonRequired)
	case !Email(email):
		c.add(FieldEmail, ReasonInvalid)
	}
}

// Login checks the login form email.
func Login(email string) error {
	c := collector{}
	checkEmail(c, email)
	return c.err()
}

// Registration checks name, last name and email.
func Registration(d model.RegistrationData) error {
	c := collector{}
	checkRegistration(c, d)
	return c.err()
}

func checkRegistration(c collector, d model.RegistrationData) {
	if strings.TrimSpace(d.Name) == "" {
		c.add(FieldName, ReasonRequired)
	}
	if strings.TrimSpace(d.LastName) == "" {
		c.add(FieldLastName, ReasonRequired)
	}
	checkEmail(c, d.Email)
}

// Password checks the password variant rules.
func Password(password, confirm string) error {
	c := collector{}
	checkPassword(c, password, confirm)
	return c.err()
}

func checkPassword(c collector, password, confirm string) {
	switch {
	case password == "":
		c.add(FieldPassword, ReasonRequired)
	case utf8.RuneCountInString(password) < MinPasswordLen:
		c.add(FieldPassword, ReasonTooShort)
	}
	if password != confirm {
		c.add(FieldConfirm, ReasonMismatch)
	}
}

// PasswordRegistration checks the full password-variant registration form.
func PasswordRegistration(d model.RegistrationData, password, confirm string) error {
	c := collector{}
	checkRegistration(c, d)
	checkPassword(c, password, confirm)
	return c.err()
}

// Farm checks farm creation input.
func Farm(name, location string) error {
	c := collector{}
	checkFarmName(c, name)
	checkLocation(c, location)
	return c.err()
}

// FarmUpdate checks only the fields being changed.
func FarmUpdate(u model.FarmUpdate) error {
	c := collector{}
	if u.Name != nil {
		checkFarmName(c, *u.Name)
	}
	if u.Location != nil {
		checkLocation(c, *u.Location)
	}
	return c.err()
}

func checkFarmName(c collector, name string) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		c.add(FieldName, ReasonRequired)
	case utf8.RuneCountInString(name) > MaxFarmNameLen:
		c.add(FieldName, ReasonTooLong)
	}
}

func checkLocation(c collector, location string) {
	if utf8.RuneCountInString(strings.TrimSpace(location)) > MaxLocationLen {
		c.add(FieldLocation, ReasonTooLong)
	}
}

// ProfileUpdate checks the fields being changed.
func ProfileUpdate(u model.ProfileUpdate) error {
	c := collector{}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		c.add(FieldName, ReasonRequired)
	}
	if u.LastName != nil && strings.TrimSpace(*u.LastName) == "" {
		c.add(FieldLastName, ReasonRequired)
	}
	if u.Email != nil {
		checkEmail(c, *u.Email)
	}
	return c.err()
}
