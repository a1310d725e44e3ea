package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Source describes how to load a secret value.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// Value is an inline secret value provided via configuration or environment.
	Value string
	// File points to a file containing the secret value. When set it takes
	// precedence over Value.
	File string
}

// Load returns the resolved secret value from the provided source. When File is
// set it takes precedence over Value. The returned secret is always trimmed. An
// error is returned when neither File nor Value contain a usable secret.
func Load(src Source) (string, error) {
	name := src.name()

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
		src.File = file
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		if src.File != "" {
			return "", fmt.Errorf("%s file %q is empty", name, src.File)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}

// LoadToken resolves the source like Load and requires the secret to be a
// well-formed UUID, which is the shape of Tinder auth tokens.
func LoadToken(src Source) (uuid.UUID, error) {
	secret, err := Load(src)
	if err != nil {
		return uuid.Nil, err
	}

	token, err := uuid.Parse(secret)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is malformed: %w", src.name(), err)
	}

	if token == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%s must not be the nil uuid", src.name())
	}

	return token, nil
}

func (s Source) name() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return "secret"
	}
	return name
}
