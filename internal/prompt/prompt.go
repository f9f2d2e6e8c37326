// Package prompt implements the line-based question-and-answer shell.
// It walks the user through the five inputs, validates them, and
// renders the ingredient estimate. An impractical gravity is fatal
// here: scripts and terminals driving this shell get a non-zero exit
// instead of numbers no yeast could reach.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tlahteenmaki/meadwright/internal/display"
	"github.com/tlahteenmaki/meadwright/internal/domain"
	"github.com/tlahteenmaki/meadwright/internal/gravity"
	"github.com/tlahteenmaki/meadwright/internal/info"
	"github.com/tlahteenmaki/meadwright/internal/logger"
)

// errQuit signals that the user asked to leave mid-questionnaire.
var errQuit = errors.New("quit")

// Prompter runs the question flow over an arbitrary reader/writer
// pair, which keeps the whole shell testable without a terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	log *logger.Logger
}

// New creates a prompter reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, log *logger.Logger) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run asks the five questions, computes the estimate, and renders it.
// Invalid input and an impractical gravity both surface as errors; a
// 'quit' meta-command ends the run cleanly.
func (p *Prompter) Run() error {
	p.intro()

	input, err := p.collect()
	if errors.Is(err, errQuit) {
		fmt.Fprintln(p.out, display.HintStyle.Render("Goodbye."))
		return nil
	}
	if err != nil {
		return err
	}

	p.log.Info("calculating: volume=%g %s abv=%d sweetness=%s mode=%s",
		input.Volume, input.Units.VolumeUnit(), input.ABV, input.Sweetness, input.Mode)

	targets, err := gravity.ResolveTargets(input.ABV, input.Sweetness, input.Mode)
	if err != nil {
		return err
	}
	if input.Mode == domain.ModeTurbo {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, display.HintStyle.Render("NOTE: Turbo yeast selected. Final gravity forced to 1.000."))
	}

	if gravity.Impractical(targets) {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, display.WarnStyle.Render(fmt.Sprintf(
			"WARNING: calculated OG %.3f is extremely high.", targets.OG)))
		fmt.Fprintln(p.out, display.WarnStyle.Render(
			"It needs an impractical amount of honey and exceeds the tolerance of most mead yeasts."))
		return fmt.Errorf("original gravity %.3f exceeds the practical limit of %.3f", targets.OG, gravity.MaxPracticalOG)
	}

	result := gravity.CalculateIngredients(targets, input.Volume, input.Units)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, display.TitleStyle.Render("--- Calculation Results ---"))
	PrintResults(p.out, targets, result)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, display.HintStyle.Render(
		"Remember this is an ESTIMATE; yeast choice and nutrients still matter."))
	return nil
}

// collect gathers the five inputs in order, re-asking after
// meta-commands and failing fast on invalid answers.
func (p *Prompter) collect() (domain.CalculationInput, error) {
	var input domain.CalculationInput

	units, err := p.askChoice("Select unit system (1 for US Imperial, 2 for Metric): ")
	if err != nil {
		return input, err
	}
	if units == 2 {
		input.Units = domain.UnitsMetric
	}

	volumeStr, err := p.ask(fmt.Sprintf("Enter batch volume (in %s): ", input.Units.VolumeUnit()))
	if err != nil {
		return input, err
	}
	volume, err := strconv.ParseFloat(volumeStr, 64)
	if err != nil {
		return input, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, volumeStr)
	}
	input.Volume = volume

	abvStr, err := p.ask("Enter target ABV (%, e.g. 14): ")
	if err != nil {
		return input, err
	}
	abv, err := strconv.Atoi(abvStr)
	if err != nil {
		return input, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidInput, abvStr)
	}
	input.ABV = abv

	sweetStr, err := p.ask("Enter sweetness level (Dry, Semi-Sweet, Sweet, Dessert): ")
	if err != nil {
		return input, err
	}
	sweetness, err := domain.ParseSweetness(sweetStr)
	if err != nil {
		return input, err
	}
	input.Sweetness = sweetness

	mode, err := p.askChoice("Yeast method (1 for Standard, 2 for Turbo): ")
	if err != nil {
		return input, err
	}
	if mode == 2 {
		input.Mode = domain.ModeTurbo
	}

	if err := input.Validate(); err != nil {
		return input, err
	}
	return input, nil
}

// ask prints the question and returns the first non-command answer.
func (p *Prompter) ask(question string) (string, error) {
	for {
		fmt.Fprint(p.out, display.PromptStyle.Render(question))
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: no more input", domain.ErrInvalidInput)
		}
		line := strings.TrimSpace(p.in.Text())

		switch matchCommand(line) {
		case CommandWater:
			fmt.Fprintln(p.out)
			fmt.Fprintln(p.out, display.ValueStyle.Render(info.WaterQuality))
			fmt.Fprintln(p.out)
		case CommandHoney:
			fmt.Fprintln(p.out)
			fmt.Fprintln(p.out, display.ValueStyle.Render(info.HoneyVarieties))
			fmt.Fprintln(p.out)
		case CommandHelp:
			p.help()
		case CommandQuit:
			return "", errQuit
		default:
			return line, nil
		}
	}
}

// askChoice is ask restricted to a 1-or-2 menu answer.
func (p *Prompter) askChoice(question string) (int, error) {
	answer, err := p.ask(question)
	if err != nil {
		return 0, err
	}
	choice, err := strconv.Atoi(answer)
	if err != nil || (choice != 1 && choice != 2) {
		return 0, fmt.Errorf("%w: select 1 or 2, got %q", domain.ErrInvalidInput, answer)
	}
	return choice, nil
}

func (p *Prompter) intro() {
	fmt.Fprintln(p.out, display.TitleStyle.Render("Mead Ingredients Calculator"))
	fmt.Fprintln(p.out, display.ValueStyle.Render(
		"Calculates the honey needed to reach a target original gravity (OG)\n"+
			"from your desired ABV and sweetness."))
	fmt.Fprintln(p.out, display.HintStyle.Render(
		"Assumptions:\n"+
			" - Honey contributes 35 gravity points per pound per gallon (PPG).\n"+
			" - Sweetness level sets the assumed final gravity (FG).\n"+
			" - Turbo yeast forces FG to 1.000 (dry)."))
	fmt.Fprintln(p.out, display.HintStyle.Render(
		"Type 'water' or 'honey' at any question for background info, 'quit' to exit."))
	fmt.Fprintln(p.out)
}

func (p *Prompter) help() {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, display.HintStyle.Render(
		"Commands: water (water quality info), honey (honey varieties),\n"+
			"help (this text), quit (exit). Anything else answers the question."))
	fmt.Fprintln(p.out)
}

// PrintResults renders the resolved gravities and the ingredient
// estimate as plain labeled lines. Shared with the one-shot mode.
func PrintResults(w io.Writer, targets domain.GravityTargets, result domain.IngredientResult) {
	line := func(label, value string) {
		fmt.Fprintln(w, display.LabelStyle.Render(label)+display.ResultStyle.Render(value))
	}

	line("Target Original Gravity (OG): ", fmt.Sprintf("%.3f", targets.OG))
	line("Assumed Final Gravity (FG):   ", fmt.Sprintf("%.3f", targets.FG))
	line("Required Honey:               ", fmt.Sprintf("%.2f %s", result.Honey, result.HoneyUnit))
	if result.Water <= 0 {
		line("Required Water (to top off):  ", fmt.Sprintf("0.00 %s (honey volume meets or exceeds batch volume)", result.WaterUnit))
	} else {
		line("Required Water (to top off):  ", fmt.Sprintf("%.2f %s", result.Water, result.WaterUnit))
	}
	line("Total Gravity Points Needed:  ", fmt.Sprintf("%.0f", result.GravityPoints))
}
