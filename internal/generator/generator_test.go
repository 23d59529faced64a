package generator

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate_Length(t *testing.T) {
	gen := NewPasswordGenerator()

	for _, length := range []int{MinPasswordLength, DefaultPasswordLength, MaxPasswordLength} {
		password, err := gen.Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", length, err)
		}
		if len(password) != length {
			t.Fatalf("password length = %d, want %d", len(password), length)
		}
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	gen := NewPasswordGenerator()

	for _, length := range []int{MinPasswordLength - 1, 0, -1, MaxPasswordLength + 1} {
		if _, err := gen.Generate(length); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("Generate(%d) error = %v, want ErrInvalidLength", length, err)
		}
	}
}

func TestGenerate_PoolMembership(t *testing.T) {
	gen := NewPasswordGenerator()
	pool := lettersLowerCase + lettersUpperCase + numbers + symbols

	password, err := gen.Generate(MaxPasswordLength)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	for _, c := range password {
		if !strings.ContainsRune(pool, c) {
			t.Fatalf("password contains %q outside the character pool", c)
		}
	}
}

func TestGenerate_Randomness(t *testing.T) {
	gen := NewPasswordGenerator()

	p1, err := gen.Generate(MaxPasswordLength)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	p2, err := gen.Generate(MaxPasswordLength)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if p1 == p2 {
		t.Fatal("expected two generated passwords to differ")
	}
}
