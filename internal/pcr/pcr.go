// Package pcr computes reagent volumes for preparing a PCR master mix.
//
// Given a sample count, an excess percentage to offset pipetting loss, and
// the stock concentration of the master mix, Compute derives the per-sample
// recipe and the totals for the whole batch. The computation is pure: no
// I/O, no logging, no state between calls. Front ends (the CLI flag and
// prompt surfaces) validate nothing themselves and render whatever Compute
// returns.
package pcr

import (
	"math"
)

// Settings are the nominal per-sample doses and the front-end defaults.
// The zero value is not usable; start from DefaultSettings and override
// fields through the config file or environment.
type Settings struct {
	// DDWDose is the distilled water volume per sample, in µL
	DDWDose float64

	// MixDose is the master-mix volume per sample, in µL, when dosing
	// stock of strength MixDoseAt
	MixDose float64

	// MixDoseAt is the stock strength MixDose is defined at
	MixDoseAt Concentration

	// PrimerDose is the volume of each primer per sample, in µL
	PrimerDose float64

	// DefaultExcess is the excess percent applied when the caller
	// does not choose one
	DefaultExcess float64

	// DefaultMix is the stock strength used when the caller does not
	// choose one
	DefaultMix Concentration
}

// DefaultSettings returns the canonical bench doses: a reaction built from
// 4 µL DDW, 6 µL of 2X master mix, and 0.5 µL of each primer, prepared
// with 10% excess by default.
func DefaultSettings() Settings {
	return Settings{
		DDWDose:       4.0,
		MixDose:       6.0,
		MixDoseAt:     X2,
		PrimerDose:    0.5,
		DefaultExcess: 10.0,
		DefaultMix:    X2,
	}
}

// Validate checks that every dose is a usable volume and that the
// concentration fields are supported stock strengths.
func (s Settings) Validate() error {
	if !validDose(s.DDWDose) {
		return &ErrInvalidInput{Field: "doses.ddw", Value: s.DDWDose, Message: "dose must be a non-negative volume"}
	}
	if !validDose(s.MixDose) {
		return &ErrInvalidInput{Field: "doses.mix", Value: s.MixDose, Message: "dose must be a non-negative volume"}
	}
	if !s.MixDoseAt.valid() {
		return &ErrInvalidInput{Field: "doses.mix-at", Value: s.MixDoseAt, Message: "must be one of 2X, 5X"}
	}
	if !validDose(s.PrimerDose) {
		return &ErrInvalidInput{Field: "doses.primer", Value: s.PrimerDose, Message: "dose must be a non-negative volume"}
	}
	if !validDose(s.DefaultExcess) {
		return &ErrInvalidInput{Field: "defaults.excess", Value: s.DefaultExcess, Message: "must be a non-negative percentage"}
	}
	if !s.DefaultMix.valid() {
		return &ErrInvalidInput{Field: "defaults.mix", Value: s.DefaultMix, Message: "must be one of 2X, 5X"}
	}
	return nil
}

func validDose(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Recipe is the per-sample volumes to pipette, in µL, after adjusting the
// mix dose for the chosen stock strength and rounding every reagent to the
// 0.5 µL grid.
type Recipe struct {
	DDW     float64 `json:"ddw"`
	Mix     float64 `json:"mix"`
	PrimerF float64 `json:"primer_forward"`
	PrimerR float64 `json:"primer_reverse"`

	// Total is the reaction volume per sample. It is always the sum of
	// the four reagent fields above.
	Total float64 `json:"total_per_sample"`
}

// BatchTotals are the volumes to prepare for the whole run, in µL. Each
// reagent total is its rounded per-sample dose multiplied by
// EffectiveSamples and rounded to the 0.5 µL grid again.
type BatchTotals struct {
	// Samples is the requested sample count
	Samples int `json:"samples"`

	// EffectiveSamples is the whole number of samples the batch is
	// prepared for once excess is applied. A fractional sample still
	// consumes a full dose, so this is always rounded up.
	EffectiveSamples int `json:"effective_samples"`

	DDW     float64 `json:"ddw"`
	Mix     float64 `json:"mix"`
	PrimerF float64 `json:"primer_forward"`
	PrimerR float64 `json:"primer_reverse"`

	// Total is the grand total of the four reagent totals
	Total float64 `json:"total"`
}

// Compute turns a sample count, an excess percent, and a stock strength
// into the per-sample Recipe and the BatchTotals to prepare.
//
// The mix dose scales inversely with stock strength: dosing a stronger
// stock takes proportionally less volume for the same final composition,
// so a 5X stock needs 2/5 of the volume the 2X reference dose calls for.
// DDW and primer doses do not depend on the stock strength.
//
// samples must be at least 1, excessPercent at least 0, and conc one of
// the supported strengths; anything else fails with ErrInvalidInput and
// no partial result. So does an excess large enough to push the effective
// sample count past the range of int.
func Compute(samples int, excessPercent float64, conc Concentration, s Settings) (Recipe, BatchTotals, error) {
	if err := validate(samples, excessPercent, conc, s); err != nil {
		return Recipe{}, BatchTotals{}, err
	}

	r := Recipe{
		DDW:     roundHalf(s.DDWDose),
		Mix:     roundHalf(s.MixDose * s.MixDoseAt.Factor() / conc.Factor()),
		PrimerF: roundHalf(s.PrimerDose),
		PrimerR: roundHalf(s.PrimerDose),
	}
	r.Total = r.DDW + r.Mix + r.PrimerF + r.PrimerR

	n := effectiveSamples(samples, excessPercent)
	b := BatchTotals{
		Samples:          samples,
		EffectiveSamples: n,
		DDW:              roundHalf(r.DDW * float64(n)),
		Mix:              roundHalf(r.Mix * float64(n)),
		PrimerF:          roundHalf(r.PrimerF * float64(n)),
		PrimerR:          roundHalf(r.PrimerR * float64(n)),
	}
	b.Total = roundHalf(b.DDW + b.Mix + b.PrimerF + b.PrimerR)

	return r, b, nil
}

func validate(samples int, excessPercent float64, conc Concentration, s Settings) error {
	if samples < 1 {
		return &ErrInvalidInput{Field: "samples", Value: samples, Message: "must be a positive integer"}
	}
	if math.IsNaN(excessPercent) || math.IsInf(excessPercent, 0) || excessPercent < 0 {
		return &ErrInvalidInput{Field: "excess", Value: excessPercent, Message: "must be a non-negative percentage"}
	}
	if scaledSamples(samples, excessPercent) >= maxEffectiveSamples {
		return &ErrInvalidInput{Field: "excess", Value: excessPercent, Message: "effective sample count is too large"}
	}
	if !conc.valid() {
		return &ErrInvalidInput{Field: "mix", Value: conc, Message: "must be one of 2X, 5X"}
	}
	return s.Validate()
}

// maxEffectiveSamples bounds the scaled sample count; validate rejects
// anything at or past it so the conversion to int cannot overflow.
const maxEffectiveSamples = float64(math.MaxInt)

// scaledSamples is the sample count grown by the excess percent. The
// product is scrubbed of float noise so that, for example, 10 samples at
// 10% scale to exactly 11 and not 11.000000000000002.
func scaledSamples(samples int, excessPercent float64) float64 {
	return roundHighPrecision(float64(samples) * (1.0 + excessPercent/100.0))
}

// effectiveSamples rounds the scaled count up to a whole number of
// prepared-for samples. A fractional sample still consumes a full dose.
func effectiveSamples(samples int, excessPercent float64) int {
	return int(math.Ceil(scaledSamples(samples, excessPercent)))
}
