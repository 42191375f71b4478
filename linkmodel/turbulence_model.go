// Copyright (c) 2025, The UOWC-SIM Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package linkmodel

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/EmilBH112/UOWC-SIM/prng"
	"github.com/EmilBH112/UOWC-SIM/types"
)

// TurbulenceKind selects one of the supported fading distribution families.
type TurbulenceKind int

const (
	TurbulenceLogNormal TurbulenceKind = iota
	TurbulenceGenGamma
	TurbulenceWeibull
)

var turbulenceKindNames = map[TurbulenceKind]string{
	TurbulenceLogNormal: "lognormal",
	TurbulenceGenGamma:  "gen-gamma",
	TurbulenceWeibull:   "weibull",
}

func (k TurbulenceKind) String() string {
	if name, ok := turbulenceKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Turbulence is a multiplicative fading model normalized to unit mean: the
// fading gain g satisfies E[g] = 1 by construction, so turbulence reshapes
// the received-power distribution without changing its average. Instances are
// immutable; construct via the New* factories or TurbulenceModel.
type Turbulence struct {
	kind TurbulenceKind

	// log-normal: sigmaX2 = ln(1 + sigmaI2), log-amplitude mean -sigmaX2/2.
	scintIndex float64
	sigmaX2    float64

	// generalized gamma GG(a, c, scale): pdf ~ x^(a*c-1) exp(-(x/scale)^c),
	// scale solved for unit mean.
	ggShapeA float64
	ggPowerC float64
	ggScale  float64

	// Weibull: shape k, scale solved for unit mean.
	wbShape float64
	wbScale float64
}

// TurbulenceParams carries the per-kind distribution parameters for the
// generic TurbulenceModel factory. Only the fields of the selected kind are
// consulted.
type TurbulenceParams struct {
	// ScintillationIndex is sigma_I^2 for the log-normal model.
	ScintillationIndex float64 `yaml:"scintillation_index"`

	// ShapeA and PowerC are the generalized-gamma shape parameters.
	ShapeA float64 `yaml:"shape_a"`
	PowerC float64 `yaml:"power_c"`

	// Shape and Scale are the Weibull parameters. Scale defaults to 1 and is
	// irrelevant after unit-mean normalization; it is validated only.
	Shape float64 `yaml:"shape"`
	Scale float64 `yaml:"scale"`
}

// TurbulenceModel constructs a fading model by kind name: "lognormal",
// "gen-gamma" (alias "generalized-gamma") or "weibull".
func TurbulenceModel(kind string, params TurbulenceParams) (*Turbulence, error) {
	switch kind {
	case "lognormal", "log-normal":
		return NewLogNormalTurbulence(params.ScintillationIndex)
	case "gen-gamma", "generalized-gamma":
		return NewGenGammaTurbulence(params.ShapeA, params.PowerC)
	case "weibull":
		scale := params.Scale
		if scale == 0 {
			scale = 1.0
		}
		return NewWeibullTurbulence(params.Shape, scale)
	}
	return nil, errors.Wrapf(types.ErrConfiguration, "unknown turbulence model %q", kind)
}

// NewLogNormalTurbulence builds a log-normal fading model from the
// scintillation index sigma_I^2 > 0. The log-irradiance variance is
// sigma_X^2 = ln(1 + sigma_I^2) and the log mean is set to -sigma_X^2/2 so
// the irradiance is unit-mean.
func NewLogNormalTurbulence(scintIndex float64) (*Turbulence, error) {
	if scintIndex <= 0 {
		return nil, errors.Wrapf(types.ErrConfiguration,
			"scintillation index %v must be > 0", scintIndex)
	}
	return &Turbulence{
		kind:       TurbulenceLogNormal,
		scintIndex: scintIndex,
		sigmaX2:    math.Log(1.0 + scintIndex),
	}, nil
}

// NewGenGammaTurbulence builds a generalized-gamma fading model with shape
// parameters a > 0 and c > 0. The scale is the gamma-function ratio
// Gamma(a) / Gamma(a + 1/c) that forces a unit mean.
func NewGenGammaTurbulence(shapeA, powerC float64) (*Turbulence, error) {
	if shapeA <= 0 || powerC <= 0 {
		return nil, errors.Wrapf(types.ErrConfiguration,
			"gen-gamma shapes (a=%v, c=%v) must be > 0", shapeA, powerC)
	}
	return &Turbulence{
		kind:     TurbulenceGenGamma,
		ggShapeA: shapeA,
		ggPowerC: powerC,
		ggScale:  math.Gamma(shapeA) / math.Gamma(shapeA+1.0/powerC),
	}, nil
}

// NewWeibullTurbulence builds a Weibull fading model with shape k > 0. The
// configured scale must be positive but drops out of the model: the effective
// scale is re-solved to 1/Gamma(1 + 1/k) so the mean is exactly one.
func NewWeibullTurbulence(shape, scale float64) (*Turbulence, error) {
	if shape <= 0 || scale <= 0 {
		return nil, errors.Wrapf(types.ErrConfiguration,
			"weibull parameters (k=%v, lambda=%v) must be > 0", shape, scale)
	}
	return &Turbulence{
		kind:    TurbulenceWeibull,
		wbShape: shape,
		wbScale: 1.0 / math.Gamma(1.0+1.0/shape),
	}, nil
}

// Kind returns the configured distribution family.
func (t *Turbulence) Kind() TurbulenceKind {
	return t.kind
}

// MeanFading returns the analytic mean of the fading gain. It evaluates the
// distribution mean from the normalized parameters, so it is 1.0 up to
// floating error for every valid model.
func (t *Turbulence) MeanFading() float64 {
	switch t.kind {
	case TurbulenceLogNormal:
		// E[exp(N(mu, sigma^2))] = exp(mu + sigma^2/2), mu = -sigma^2/2.
		return math.Exp(-0.5*t.sigmaX2 + 0.5*t.sigmaX2)
	case TurbulenceGenGamma:
		return t.ggScale * math.Gamma(t.ggShapeA+1.0/t.ggPowerC) / math.Gamma(t.ggShapeA)
	case TurbulenceWeibull:
		return t.wbScale * math.Gamma(1.0+1.0/t.wbShape)
	}
	return 1.0
}

// Variance returns the analytic variance of the unit-mean fading gain. Since
// the mean is one, this equals the scintillation index of the model.
func (t *Turbulence) Variance() float64 {
	switch t.kind {
	case TurbulenceLogNormal:
		return math.Exp(t.sigmaX2) - 1.0
	case TurbulenceGenGamma:
		a, c := t.ggShapeA, t.ggPowerC
		r1 := math.Gamma(a+1.0/c) / math.Gamma(a)
		r2 := math.Gamma(a+2.0/c) / math.Gamma(a)
		// scale = 1/r1, so Var = scale^2 (r2 - r1^2) = (r2 - r1^2) / r1^2.
		return (r2 - r1*r1) / (r1 * r1)
	case TurbulenceWeibull:
		g1 := math.Gamma(1.0 + 1.0/t.wbShape)
		g2 := math.Gamma(1.0 + 2.0/t.wbShape)
		return g2/(g1*g1) - 1.0
	}
	return 0.0
}

// ScintillationIndex returns the normalized irradiance variance
// sigma_I^2 = Var[g]/E[g]^2 of the configured model.
func (t *Turbulence) ScintillationIndex() float64 {
	if t.kind == TurbulenceLogNormal {
		return t.scintIndex
	}
	return t.Variance()
}

// Sample draws n unit-mean fading gains using the given seed. Draws are
// deterministic per seed; use prng.NewFadingRandomSeed for a stream seed tied
// to the package root seed. Sampling is an extension for Monte-Carlo
// consumers; none of the scalar link metrics consult it.
func (t *Turbulence) Sample(seed prng.RandomSeed, n int) []float64 {
	rnd := rand.New(rand.NewSource(int64(seed)))
	out := make([]float64, n)
	for i := range out {
		out[i] = t.draw(rnd)
	}
	return out
}

func (t *Turbulence) draw(rnd *rand.Rand) float64 {
	switch t.kind {
	case TurbulenceLogNormal:
		sigmaX := math.Sqrt(t.sigmaX2)
		return math.Exp(rnd.NormFloat64()*sigmaX - 0.5*t.sigmaX2)
	case TurbulenceGenGamma:
		// If G ~ Gamma(a, 1) then scale * G^(1/c) ~ GG(a, c, scale).
		return t.ggScale * math.Pow(gammaDraw(rnd, t.ggShapeA), 1.0/t.ggPowerC)
	case TurbulenceWeibull:
		u := 1.0 - rnd.Float64() // (0, 1]
		return t.wbScale * math.Pow(-math.Log(u), 1.0/t.wbShape)
	}
	return 1.0
}

// gammaDraw samples Gamma(shape, 1) with the Marsaglia-Tsang squeeze method,
// boosting shape < 1 through the Gamma(shape+1) identity.
func gammaDraw(rnd *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := 1.0 - rnd.Float64()
		return gammaDraw(rnd, shape+1) * math.Pow(u, 1.0/shape)
	}
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := rnd.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := 1.0 - rnd.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}
