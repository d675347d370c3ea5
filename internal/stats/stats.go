// Package stats contains typing metrics and result reporting.
package stats

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/verte-zerg/touchtype/internal/model"
)

// charsPerWord is the standard average word length used for WPM.
const charsPerWord = 5.0

// ErrInvalidInput is returned when metrics are requested for an empty passage,
// a non-positive duration, or a negative error count.
var ErrInvalidInput = errors.New("invalid metrics input")

// Compute returns words per minute and accuracy percentage, rounded to two
// decimals.
func Compute(elapsedMinutes float64, totalChars, errCount int) (wpm, accuracy float64, err error) {
	if elapsedMinutes <= 0 || totalChars <= 0 || errCount < 0 {
		return 0, 0, fmt.Errorf("%w: minutes=%v chars=%d errors=%d", ErrInvalidInput, elapsedMinutes, totalChars, errCount)
	}
	cpm := float64(totalChars) / elapsedMinutes
	wpm = cpm / charsPerWord
	accuracy = float64(totalChars-errCount) / float64(totalChars) * 100
	return Round2(wpm), Round2(accuracy), nil
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildResult computes the result snapshot for a completed session.
func BuildResult(mode string, elapsed time.Duration, totalChars, errCount int) (model.Result, error) {
	minutes := elapsed.Minutes()
	wpm, acc, err := Compute(minutes, totalChars, errCount)
	if err != nil {
		return model.Result{}, err
	}
	return model.Result{
		Mode:           mode,
		Elapsed:        elapsed,
		ElapsedMinutes: Round2(minutes),
		WPM:            wpm,
		Accuracy:       acc,
		Characters:     totalChars,
		Errors:         errCount,
	}, nil
}

// ResultLines formats a result the way the result screen shows it.
func ResultLines(r model.Result) []string {
	return []string{
		fmt.Sprintf("%.2f minutes (%d sec) elapsed", r.ElapsedMinutes, int(math.Round(r.Elapsed.Seconds()))),
		fmt.Sprintf("%.2f words per minute", r.WPM),
		fmt.Sprintf("%.2f%% accuracy", r.Accuracy),
	}
}

// RenderResult prints a plain-text result summary.
func RenderResult(w io.Writer, r model.Result) error {
	if _, err := fmt.Fprintf(w, "Result | %s\n", r.Mode); err != nil {
		return err
	}
	for _, line := range ResultLines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d characters, %d errors\n", r.Characters, r.Errors); err != nil {
		return err
	}
	return nil
}
