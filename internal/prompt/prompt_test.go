package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLineTrimsInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  hello world  \n"), &out)

	value, err := p.Line("Name: ")
	if err != nil {
		t.Fatalf("Line returned error: %v", err)
	}
	if value != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", value)
	}
	if !strings.Contains(out.String(), "Name: ") {
		t.Errorf("expected label in output, got %q", out.String())
	}
}

func TestLineEOFIsCancellation(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Line("Name: ")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestLineAcceptsFinalLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("answer"), &bytes.Buffer{})

	value, err := p.Line("Q: ")
	if err != nil {
		t.Fatalf("Line returned error: %v", err)
	}
	if value != "answer" {
		t.Errorf("expected %q, got %q", "answer", value)
	}
}

func TestLineDefault(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      string
		expected string
	}{
		{name: "blank uses default", input: "\n", def: "5432", expected: "5432"},
		{name: "answer overrides default", input: "6543\n", def: "5432", expected: "6543"},
		{name: "blank with no default", input: "\n", def: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			value, err := p.LineDefault("Port: ", tt.def)
			if err != nil {
				t.Fatalf("LineDefault returned error: %v", err)
			}
			if value != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, value)
			}

			if tt.def != "" && !strings.Contains(out.String(), "["+tt.def+"]") {
				t.Errorf("expected default shown in label, got %q", out.String())
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "yes", input: "yes\n", expected: true},
		{name: "y", input: "y\n", expected: true},
		{name: "uppercase YES", input: "YES\n", expected: true},
		{name: "no", input: "no\n", expected: false},
		{name: "n", input: "n\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})

			confirmed, err := p.Confirm("Proceed?")
			if err != nil {
				t.Fatalf("Confirm returned error: %v", err)
			}
			if confirmed != tt.expected {
				t.Errorf("Confirm(%q) = %t, want %t", strings.TrimSpace(tt.input), confirmed, tt.expected)
			}
		})
	}
}

func TestConfirmRepromptsOnInvalidAnswer(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("maybe\nok\nyes\n"), &out)

	confirmed, err := p.Confirm("Proceed?")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if !confirmed {
		t.Error("expected confirmation after re-prompts")
	}

	if got := strings.Count(out.String(), "Please enter 'yes' or 'no'"); got != 2 {
		t.Errorf("expected 2 re-prompt messages, got %d", got)
	}
}

func TestConfirmEOFIsCancellation(t *testing.T) {
	p := New(strings.NewReader("maybe\n"), &bytes.Buffer{})

	_, err := p.Confirm("Proceed?")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPasswordFallsBackToLineWithoutTerminal(t *testing.T) {
	p := New(strings.NewReader("secret\n"), &bytes.Buffer{})

	value, err := p.Password("Password: ")
	if err != nil {
		t.Fatalf("Password returned error: %v", err)
	}
	if value != "secret" {
		t.Errorf("expected %q, got %q", "secret", value)
	}
}
