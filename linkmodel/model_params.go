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

	"github.com/pkg/errors"

	"github.com/EmilBH112/UOWC-SIM/types"
)

// default transmitter/receiver parameters
const (
	defaultEfficiency        = 0.9
	defaultTemperatureK      = 300.0
	defaultLoadResistanceOhm = 50.0
)

// TxSource describes the transmitter beam pattern as one of a closed set of
// source variants, so that each variant's angular-gain formula only ever reads
// its own parameters.
type TxSource interface {
	isTxSource()
	validate() error
}

// LambertianSource is an LED-like wide-angle emitter whose radiant intensity
// falls off as cos^m of the emission angle. The Lambertian order m follows
// from the semi-angle at half power.
type LambertianSource struct {
	SemiAngleDeg float64
}

func (s LambertianSource) isTxSource() {}

func (s LambertianSource) validate() error {
	if s.SemiAngleDeg <= 0 || s.SemiAngleDeg >= 90 {
		return errors.Wrapf(types.ErrConfiguration,
			"LED semi-angle %v deg outside (0, 90)", s.SemiAngleDeg)
	}
	return nil
}

// LambertOrder returns the Lambertian order m = -ln(2) / ln(cos(theta_1/2)).
func (s LambertianSource) LambertOrder() float64 {
	return -math.Log(2.0) / math.Log(math.Cos(types.DegToRad(s.SemiAngleDeg)))
}

// NarrowBeamSource is a laser-like emitter modeled as a uniform cone of the
// given divergence half-angle. At a divergence semi-angle approaching the LED
// regime both variants reduce to the same inverse-square spreading, so the
// LED/laser boundary stays continuous at the model level.
type NarrowBeamSource struct {
	DivergenceDeg float64
}

func (s NarrowBeamSource) isTxSource() {}

func (s NarrowBeamSource) validate() error {
	if s.DivergenceDeg <= 0 || s.DivergenceDeg >= 90 {
		return errors.Wrapf(types.ErrConfiguration,
			"beam divergence %v deg outside (0, 90)", s.DivergenceDeg)
	}
	return nil
}

// Tx describes the optical transmitter.
type Tx struct {
	// PowerW is the launched optical power [W] at the transmitter output.
	PowerW float64

	// Efficiency is the transmitter optics efficiency (0, 1].
	Efficiency float64

	// Source selects the beam pattern variant.
	Source TxSource
}

// NewTx validates and returns an immutable transmitter descriptor.
// An efficiency of 0 selects the default (0.9).
func NewTx(powerW, efficiency float64, source TxSource) (*Tx, error) {
	if efficiency == 0 {
		efficiency = defaultEfficiency
	}
	if powerW <= 0 {
		return nil, errors.Wrapf(types.ErrConfiguration, "tx power %v W must be > 0", powerW)
	}
	if efficiency < 0 || efficiency > 1 {
		return nil, errors.Wrapf(types.ErrConfiguration, "tx efficiency %v outside (0, 1]", efficiency)
	}
	if source == nil {
		return nil, errors.Wrap(types.ErrConfiguration, "tx source not set")
	}
	if err := source.validate(); err != nil {
		return nil, err
	}
	return &Tx{PowerW: powerW, Efficiency: efficiency, Source: source}, nil
}

// Rx describes the optical receiver and its electrical front-end.
type Rx struct {
	// ResponsivityAPerW is the photodetector responsivity [A/W] at the
	// operating wavelength.
	ResponsivityAPerW float64

	// DetectorAreaM2 is the active area of the detector [m^2].
	DetectorAreaM2 float64

	// Efficiency is the receive optics/filter efficiency (0, 1].
	Efficiency float64

	// TemperatureK is the front-end temperature [K] for thermal noise.
	TemperatureK float64

	// LoadResistanceOhm is the effective transimpedance/load [Ohm] for the
	// thermal noise model.
	LoadResistanceOhm float64
}

// NewRx validates and returns an immutable receiver descriptor. Zero values
// for efficiency, temperature and load resistance select the defaults
// (0.9, 300 K, 50 Ohm).
func NewRx(responsivityAPerW, detectorAreaM2, efficiency, temperatureK, loadResistanceOhm float64) (*Rx, error) {
	if efficiency == 0 {
		efficiency = defaultEfficiency
	}
	if temperatureK == 0 {
		temperatureK = defaultTemperatureK
	}
	if loadResistanceOhm == 0 {
		loadResistanceOhm = defaultLoadResistanceOhm
	}
	switch {
	case responsivityAPerW <= 0:
		return nil, errors.Wrapf(types.ErrConfiguration, "responsivity %v A/W must be > 0", responsivityAPerW)
	case detectorAreaM2 <= 0:
		return nil, errors.Wrapf(types.ErrConfiguration, "detector area %v m^2 must be > 0", detectorAreaM2)
	case efficiency < 0 || efficiency > 1:
		return nil, errors.Wrapf(types.ErrConfiguration, "rx efficiency %v outside (0, 1]", efficiency)
	case temperatureK < 0:
		return nil, errors.Wrapf(types.ErrConfiguration, "temperature %v K must be > 0", temperatureK)
	case loadResistanceOhm < 0:
		return nil, errors.Wrapf(types.ErrConfiguration, "load resistance %v Ohm must be > 0", loadResistanceOhm)
	}
	return &Rx{
		ResponsivityAPerW: responsivityAPerW,
		DetectorAreaM2:    detectorAreaM2,
		Efficiency:        efficiency,
		TemperatureK:      temperatureK,
		LoadResistanceOhm: loadResistanceOhm,
	}, nil
}

// NoiseParams carries the per-call inputs of the receiver noise model. The
// zero values of the optional fields reproduce the plain PIN-photodiode model:
// no dark current, no RIN, no background light, unity APD gain and excess
// noise factor.
type NoiseParams struct {
	// BandwidthHz is the electrical noise bandwidth [Hz]. Required, > 0.
	BandwidthHz float64

	// DarkCurrentA is the detector dark current [A].
	DarkCurrentA float64

	// RIN is the source relative intensity noise power spectral density
	// [1/Hz]. nil means no RIN term (non-laser or negligible).
	RIN *float64

	// BackgroundPowerW is ambient background light reaching the detector [W],
	// folded into the shot noise term.
	BackgroundPowerW float64

	// ApdGain is the avalanche multiplication gain M; 0 or 1 means a PIN
	// photodiode.
	ApdGain float64

	// ExcessNoiseFactor is the APD excess noise factor F applied to the shot
	// term; 0 or 1 means none.
	ExcessNoiseFactor float64
}

// NewNoiseParams returns noise parameters for the given bandwidth with all
// optional contributions disabled.
func NewNoiseParams(bandwidthHz float64) NoiseParams {
	return NoiseParams{
		BandwidthHz:       bandwidthHz,
		ApdGain:           1.0,
		ExcessNoiseFactor: 1.0,
	}
}

// Validate eagerly checks all numeric domains before any noise computation.
func (p NoiseParams) Validate() error {
	switch {
	case p.BandwidthHz <= 0:
		return errors.Wrapf(types.ErrValue, "bandwidth %v Hz must be > 0", p.BandwidthHz)
	case p.DarkCurrentA < 0:
		return errors.Wrapf(types.ErrValue, "dark current %v A must be >= 0", p.DarkCurrentA)
	case p.RIN != nil && *p.RIN < 0:
		return errors.Wrapf(types.ErrValue, "RIN %v 1/Hz must be >= 0", *p.RIN)
	case p.BackgroundPowerW < 0:
		return errors.Wrapf(types.ErrValue, "background power %v W must be >= 0", p.BackgroundPowerW)
	case p.ApdGain < 0 || (p.ApdGain > 0 && p.ApdGain < 1):
		return errors.Wrapf(types.ErrValue, "APD gain %v must be >= 1", p.ApdGain)
	case p.ExcessNoiseFactor < 0 || (p.ExcessNoiseFactor > 0 && p.ExcessNoiseFactor < 1):
		return errors.Wrapf(types.ErrValue, "excess noise factor %v must be >= 1", p.ExcessNoiseFactor)
	}
	return nil
}

// apdGain returns the effective avalanche gain, treating the zero value as 1.
func (p NoiseParams) apdGain() float64 {
	if p.ApdGain == 0 {
		return 1.0
	}
	return p.ApdGain
}

// excessNoise returns the effective excess noise factor, treating the zero
// value as 1.
func (p NoiseParams) excessNoise() float64 {
	if p.ExcessNoiseFactor == 0 {
		return 1.0
	}
	return p.ExcessNoiseFactor
}
