package fit

import (
	"log/slog"

	"github.com/randalmurphal/labelkit/abbrev"
	"github.com/randalmurphal/labelkit/measure"
)

// Result is the outcome of fitting a label.
type Result struct {
	// Text is the final label.
	Text string

	// Tier is the last tier applied, TierNone if the original fit.
	Tier Tier

	// Fits reports whether Text satisfies the bounds. It is false only when
	// every tier ran and the label is still too large.
	Fits bool
}

// Applied returns every category that was applied to produce Text.
func (r Result) Applied() abbrev.CategorySet {
	return r.Tier.Cumulative()
}

// Option configures a Fitter.
type Option func(*Fitter)

// WithLegacyMeasurement measures only the original text and reuses that size
// for every tier check. Labels that do not fit initially always come back
// fully abbreviated, and Result.Fits reflects the original measurement. Use
// only to reproduce output of older releases.
func WithLegacyMeasurement() Option {
	return func(f *Fitter) {
		f.legacy = true
	}
}

// WithLogger sets the logger used for escalation debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fitter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Fitter abbreviates labels tier by tier until they fit.
// It is safe for concurrent use when its Measurer is.
type Fitter struct {
	ab       *abbrev.Abbreviator
	measurer measure.Measurer
	legacy   bool
	logger   *slog.Logger
}

// NewFitter creates a fitter.
func NewFitter(ab *abbrev.Abbreviator, m measure.Measurer, opts ...Option) *Fitter {
	if ab == nil {
		panic("fit.NewFitter: abbreviator cannot be nil")
	}
	if m == nil {
		panic("fit.NewFitter: measurer cannot be nil")
	}
	f := &Fitter{
		ab:       ab,
		measurer: m,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Legacy reports whether legacy measurement is enabled.
func (f *Fitter) Legacy() bool {
	return f.legacy
}

// Fit returns text abbreviated just enough to fit bounds.
func (f *Fitter) Fit(text string, bounds Bounds) Result {
	return f.escalate(text, bounds, func(tier Tier, current string) (string, error) {
		return f.ab.Abbreviate(current, tier.Categories()), nil
	})
}

// FitString is Fit returning only the text.
func (f *Fitter) FitString(text string, bounds Bounds) string {
	return f.Fit(text, bounds).Text
}

// FitStyled abbreviates e in place just enough to fit bounds. Result.Text
// holds e's final content. An error is returned only if e rejects a
// replacement; e then holds whatever was applied before the failure.
func (f *Fitter) FitStyled(e abbrev.Editable, bounds Bounds) (Result, error) {
	var err error
	r := f.escalate(e.String(), bounds, func(tier Tier, _ string) (string, error) {
		if _, err = f.ab.AbbreviateInPlace(e, tier.Categories()); err != nil {
			return "", err
		}
		return e.String(), nil
	})
	if err != nil {
		return Result{Text: e.String(), Tier: r.Tier}, err
	}
	return r, nil
}

// escalate runs the tier loop. apply rewrites the working text for a tier and
// returns the new content.
func (f *Fitter) escalate(text string, bounds Bounds, apply func(Tier, string) (string, error)) Result {
	size := f.measure(text, bounds)
	if bounds.Fits(size) {
		return Result{Text: text, Tier: TierNone, Fits: true}
	}

	tier := TierNone
	for {
		next, ok := tier.Next()
		if !ok {
			break
		}
		tier = next

		out, err := apply(tier, text)
		if err != nil {
			f.logger.Debug("abbreviation tier failed",
				slog.String("tier", tier.String()),
				slog.Any("error", err))
			return Result{Text: text, Tier: tier}
		}
		text = out

		if !f.legacy {
			size = f.measure(text, bounds)
		}
		fits := bounds.Fits(size)

		f.logger.Debug("applied abbreviation tier",
			slog.String("tier", tier.String()),
			slog.String("text", text),
			slog.Float64("width", size.Width),
			slog.Float64("height", size.Height),
			slog.Bool("fits", fits))

		if fits {
			return Result{Text: text, Tier: tier, Fits: true}
		}
	}

	return Result{Text: text, Tier: tier}
}

// measure constrains only the width; height is unlimited.
func (f *Fitter) measure(text string, bounds Bounds) measure.Size {
	return f.measurer.Measure(text, bounds.Width)
}
