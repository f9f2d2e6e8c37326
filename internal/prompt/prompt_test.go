package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tlahteenmaki/meadwright/internal/domain"
	"github.com/tlahteenmaki/meadwright/internal/logger"
)

// runPrompt feeds the given lines to a fresh prompter and returns the
// rendered output and the run error.
func runPrompt(t *testing.T, lines ...string) (string, error) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	p := New(in, &out, logger.New(logger.LevelOff, nil))
	err := p.Run()
	return out.String(), err
}

func TestRunUSImperial(t *testing.T) {
	out, err := runPrompt(t, "1", "5", "14", "Semi-Sweet", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 14% semi-sweet in 5 gallons: OG 1.117, 16.71 lbs honey,
	// 3.91 gallons of top-off water, 585 points.
	for _, want := range []string{"1.117", "1.010", "16.71 lbs", "3.91 gallons", "585"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunMetric(t *testing.T) {
	out, err := runPrompt(t, "2", "20", "14", "semi-sweet", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"1.117", "8.01 kg", "14.07 liters", "618"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunTurboForcesFG(t *testing.T) {
	out, err := runPrompt(t, "1", "5", "14", "Dessert", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "forced to 1.000") {
		t.Fatalf("expected turbo note in output:\n%s", out)
	}
	if !strings.Contains(out, "1.107") {
		t.Fatalf("expected turbo OG 1.107 in output:\n%s", out)
	}
}

func TestRunInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr error
	}{
		{"bad unit choice", []string{"3"}, domain.ErrInvalidInput},
		{"unparseable volume", []string{"1", "five"}, domain.ErrInvalidInput},
		{"negative volume", []string{"1", "-2", "14", "dry", "1"}, domain.ErrInvalidInput},
		{"abv too high", []string{"1", "5", "30", "dry", "1"}, domain.ErrInvalidInput},
		{"abv not a number", []string{"1", "5", "lots"}, domain.ErrInvalidInput},
		{"unknown sweetness", []string{"1", "5", "14", "bone dry"}, domain.ErrInvalidSweetness},
		{"bad yeast choice", []string{"1", "5", "14", "dry", "0"}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runPrompt(t, tt.lines...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMetaCommandsReAsk(t *testing.T) {
	out, err := runPrompt(t, "water", "honey", "help", "1", "5", "14", "dry", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Water quality") {
		t.Fatalf("expected water info in output:\n%s", out)
	}
	if !strings.Contains(out, "Honey varieties") {
		t.Fatalf("expected honey info in output:\n%s", out)
	}
	// The questionnaire still completed afterwards.
	if !strings.Contains(out, "1.107") {
		t.Fatalf("expected results after info commands:\n%s", out)
	}
}

func TestQuitEndsCleanly(t *testing.T) {
	out, err := runPrompt(t, "quit")
	if err != nil {
		t.Fatalf("expected clean exit, got %v", err)
	}
	if !strings.Contains(out, "Goodbye") {
		t.Fatalf("expected goodbye message:\n%s", out)
	}
}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"water", CommandWater},
		{"WATER", CommandWater},
		{"w", CommandWater},
		{"honey", CommandHoney},
		{"Honey Info", CommandHoney},
		{"help", CommandHelp},
		{"?", CommandHelp},
		{"quit", CommandQuit},
		{"q", CommandQuit},
		{"exit", CommandQuit},
		{"14", CommandNone},
		{"Semi-Sweet", CommandNone},
		{"", CommandNone},
	}

	for _, tt := range tests {
		if got := matchCommand(tt.input); got != tt.want {
			t.Fatalf("matchCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
