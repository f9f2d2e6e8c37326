// Meadwright — a mead ingredient calculator.
//
// Usage:
//
//	meadwright                    full-screen form (terminal) or prompt (pipe)
//	meadwright -prompt            force the line-based prompt
//	meadwright -volume 19 -liters -abv 14 -sweetness semi-sweet
//	                              one-shot scripted calculation
package main

import (
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/tlahteenmaki/meadwright/internal/display"
	"github.com/tlahteenmaki/meadwright/internal/domain"
	"github.com/tlahteenmaki/meadwright/internal/form"
	"github.com/tlahteenmaki/meadwright/internal/gravity"
	"github.com/tlahteenmaki/meadwright/internal/logger"
	"github.com/tlahteenmaki/meadwright/internal/prompt"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".meadwright-logs/meadwright.log", "file to write logs to (use \"stderr\" to log to console)")
	usePrompt := flag.Bool("prompt", false, "use the line-based prompt instead of the full-screen form")
	volume := flag.Float64("volume", 0, "one-shot mode: batch volume (with -abv)")
	abv := flag.Int("abv", 0, "one-shot mode: target ABV percent (with -volume)")
	sweetness := flag.String("sweetness", "", "one-shot mode: Dry, Semi-Sweet, Sweet, or Dessert")
	turbo := flag.Bool("turbo", false, "one-shot mode: assume turbo yeast (FG forced to 1.000)")
	liters := flag.Bool("liters", false, "one-shot mode: volume in liters, results in metric")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the interactive shells stay clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package to the same output so nothing
	// garbles the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// One-shot scripted mode: any calculation flag engages it.
	if *volume != 0 || *abv != 0 || *sweetness != "" {
		if err := runOnce(log, *volume, *abv, *sweetness, *turbo, *liters); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if *usePrompt || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(display.RenderBanner())
		fmt.Println()
		p := prompt.New(os.Stdin, os.Stdout, log)
		if err := p.Run(); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := form.Run(log); err != nil {
		log.Error("form: %v", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runOnce performs a single calculation from flags. This is the strict
// context: invalid input and an impractical gravity both exit non-zero.
func runOnce(log *logger.Logger, volume float64, abv int, sweetnessLabel string, turbo, liters bool) error {
	input := domain.CalculationInput{
		Volume: volume,
		ABV:    abv,
		Mode:   domain.ModeStandard,
	}
	if liters {
		input.Units = domain.UnitsMetric
	}
	if turbo {
		input.Mode = domain.ModeTurbo
		// Sweetness is ignored under turbo; default it so the flag may
		// be omitted.
		input.Sweetness = domain.SweetnessDry
	}
	if sweetnessLabel != "" || !turbo {
		sw, err := domain.ParseSweetness(sweetnessLabel)
		if err != nil {
			return err
		}
		input.Sweetness = sw
	}
	if err := input.Validate(); err != nil {
		return err
	}

	targets, err := gravity.ResolveTargets(input.ABV, input.Sweetness, input.Mode)
	if err != nil {
		return err
	}
	if gravity.Impractical(targets) {
		return fmt.Errorf("calculated OG %.3f exceeds the practical limit of %.3f; try a lower ABV",
			targets.OG, gravity.MaxPracticalOG)
	}

	result := gravity.CalculateIngredients(targets, input.Volume, input.Units)
	log.Info("one-shot: volume=%g %s abv=%d sweetness=%s mode=%s og=%.3f",
		input.Volume, input.Units.VolumeUnit(), input.ABV, input.Sweetness, input.Mode, targets.OG)

	prompt.PrintResults(os.Stdout, targets, result)
	return nil
}
