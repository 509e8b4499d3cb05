package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTerminalConfirmer_Answers(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  y  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"anything else\n", false},
		{"y", true}, // EOF without newline still counts
		{"", false}, // immediate EOF is a refusal
	}

	for _, tc := range cases {
		var out bytes.Buffer
		c := NewTerminalConfirmer(strings.NewReader(tc.input), &out)

		got, err := c.Confirm("Overwrite?")
		if err != nil {
			t.Errorf("Confirm(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Errorf("Expected question output to contain [y/N], got %q", out.String())
		}
	}
}

func TestFixedConfirmer_RecordsQuestions(t *testing.T) {
	f := NewFixedConfirmer(true)

	ok, err := f.Confirm("first?")
	if err != nil || !ok {
		t.Errorf("Expected (true, nil), got (%v, %v)", ok, err)
	}
	if _, err := f.Confirm("second?"); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}

	if len(f.Questions) != 2 || f.Questions[0] != "first?" || f.Questions[1] != "second?" {
		t.Errorf("Expected recorded questions [first? second?], got %v", f.Questions)
	}
}

func TestFixedConfirmer_Error(t *testing.T) {
	wantErr := errors.New("input closed")
	f := &FixedConfirmer{Answer: true, Error: wantErr}

	ok, err := f.Confirm("anything?")
	if ok {
		t.Error("Expected false answer when erroring")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected configured error, got %v", err)
	}
}
