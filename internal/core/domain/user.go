package domain

import (
	"fmt"
	"strings"
)

// User owns tasks. Password holds either a bcrypt hash or, for records written
// by older clients, the raw password. It is not a security credential.
type User struct {
	ID       UserID
	Name     string
	Email    string
	Password string
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.TrimSpace(value)) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, value)
}
