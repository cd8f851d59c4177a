package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind is the validation category assigned to a questionnaire field.
type Kind string

const (
	Text   Kind = "text"
	Number Kind = "number"
	Email  Kind = "email"
	Phone  Kind = "phone"
	List   Kind = "list"
)

// ParseKind converts a user-supplied string to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Text, Number, Email, Phone, List:
		return k, nil
	}
	return "", fmt.Errorf("unknown field kind %q (valid: text, number, email, phone, list)", s)
}

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]+$`)

// validators maps each kind to its predicate. The value passed in is
// already trimmed and known to be non-empty.
var validators = map[Kind]func(string) bool{
	Text:   validText,
	Number: validNumber,
	Email:  emailPattern.MatchString,
	Phone:  validPhone,
	List:   validList,
}

// Validate reports whether value is acceptable for the given kind.
// Empty or whitespace-only input is rejected for every kind; an
// unrecognized kind accepts anything non-empty.
func Validate(kind Kind, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	fn, ok := validators[kind]
	if !ok {
		return true
	}
	return fn(value)
}

func validText(s string) bool {
	return utf8.RuneCountInString(s) >= 2
}

func validNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 0 && n <= 99
}

func validPhone(s string) bool {
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validList(s string) bool {
	for _, item := range strings.Split(s, ",") {
		if strings.TrimSpace(item) == "" {
			return false
		}
	}
	return true
}
