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

const defaultConcentratorIndex = 1.5

// Geometry describes the geometric arrangement of the link and the simple
// receiver optics.
type Geometry struct {
	// DistanceM is the Tx-Rx separation [m].
	DistanceM float64

	// TxPointingAngleDeg is the emission angle at the transmitter relative to
	// its beam axis [deg].
	TxPointingAngleDeg float64

	// IncidentAngleDeg is the incidence angle at the receiver relative to the
	// detector normal [deg].
	IncidentAngleDeg float64

	// FieldOfViewDeg is the receiver acceptance half-angle [deg]. Incidence
	// beyond it blocks the signal entirely (hard cutoff, boundary included).
	FieldOfViewDeg float64

	// OpticsGain is an optional transmitter optics gain (e.g. a beam
	// expander), >= 1.
	OpticsGain float64

	// ConcentratorRefractiveIndex is the refractive index of the non-imaging
	// concentrator, >= 1.
	ConcentratorRefractiveIndex float64
}

// NewGeometry validates and returns an immutable link geometry. Zero values
// for opticsGain and refractiveIndex select the defaults (1.0 and 1.5).
func NewGeometry(distanceM, txPointingAngleDeg, incidentAngleDeg, fovDeg, opticsGain, refractiveIndex float64) (*Geometry, error) {
	if opticsGain == 0 {
		opticsGain = 1.0
	}
	if refractiveIndex == 0 {
		refractiveIndex = defaultConcentratorIndex
	}
	switch {
	case distanceM <= 0:
		return nil, errors.Wrapf(types.ErrValue, "distance %v m must be > 0", distanceM)
	case fovDeg <= 0 || fovDeg > 90:
		return nil, errors.Wrapf(types.ErrValue, "field of view %v deg outside (0, 90]", fovDeg)
	case txPointingAngleDeg < 0 || txPointingAngleDeg > 90:
		return nil, errors.Wrapf(types.ErrValue, "tx pointing angle %v deg outside [0, 90]", txPointingAngleDeg)
	case incidentAngleDeg < 0 || incidentAngleDeg > 90:
		return nil, errors.Wrapf(types.ErrValue, "incident angle %v deg outside [0, 90]", incidentAngleDeg)
	case opticsGain < 1:
		return nil, errors.Wrapf(types.ErrValue, "optics gain %v must be >= 1", opticsGain)
	case refractiveIndex < 1:
		return nil, errors.Wrapf(types.ErrValue, "concentrator refractive index %v must be >= 1", refractiveIndex)
	}
	return &Geometry{
		DistanceM:                   distanceM,
		TxPointingAngleDeg:          txPointingAngleDeg,
		IncidentAngleDeg:            incidentAngleDeg,
		FieldOfViewDeg:              fovDeg,
		OpticsGain:                  opticsGain,
		ConcentratorRefractiveIndex: refractiveIndex,
	}, nil
}

// ConcentratorGain returns the idealized non-imaging concentrator gain
// n^2 / sin^2(FOV). Narrower FOV gives larger gain; the sin term is guarded
// against underflow at tiny FOV.
func (g *Geometry) ConcentratorGain() float64 {
	s := math.Sin(types.DegToRad(g.FieldOfViewDeg))
	return g.ConcentratorRefractiveIndex * g.ConcentratorRefractiveIndex / math.Max(s*s, 1e-12)
}

// fovWindow implements the hard FOV cutoff: 1 within the acceptance cone
// (boundary included), 0 outside.
func (g *Geometry) fovWindow() float64 {
	if math.Abs(g.IncidentAngleDeg) <= g.FieldOfViewDeg {
		return 1.0
	}
	return 0.0
}

// CouplingFactor returns the dimensionless multiplier that scales transmitted
// optical power into power collected by a detector of the given area, for the
// given source variant. It folds together the source angular gain, free-space
// spreading, concentrator gain and the FOV window; it is 0 exactly when the
// incidence angle exceeds the FOV.
func (g *Geometry) CouplingFactor(source TxSource, detectorAreaM2 float64) float64 {
	switch src := source.(type) {
	case LambertianSource:
		return g.lambertianCoupling(src, detectorAreaM2)
	case NarrowBeamSource:
		return g.narrowBeamCoupling(src, detectorAreaM2)
	}
	return 0.0
}

// lambertianCoupling is the LED branch. A common VLC LOS channel gain is
//
//	H = ((m+1) A_r / (2 pi d^2)) cos^m(theta) T_s(phi) g(phi) cos(phi), phi <= FOV
//
// with the filter loss T_s folded into the receiver efficiency and the
// concentrator gain g(phi) taken as the ideal n^2/sin^2(FOV) inside a hard
// FOV window.
func (g *Geometry) lambertianCoupling(src LambertianSource, detectorAreaM2 float64) float64 {
	m := src.LambertOrder()
	theta := types.DegToRad(g.TxPointingAngleDeg)
	cosPhi := math.Max(math.Cos(types.DegToRad(g.IncidentAngleDeg)), 0.0)

	denom := 2 * math.Pi * g.DistanceM * g.DistanceM
	num := ((m + 1) / (2 * math.Pi)) * math.Pow(math.Cos(theta), m) *
		g.OpticsGain * g.ConcentratorGain() * detectorAreaM2 * cosPhi
	return g.fovWindow() * math.Max(num/math.Max(denom, 1e-24), 0.0)
}

// narrowBeamCoupling is the laser branch: power spread uniformly over a cone
// of the divergence half-angle, with beam footprint area ~ pi d^2 tan^2(theta)
// at distance d. The collected fraction is the detector's projected share of
// that footprint.
func (g *Geometry) narrowBeamCoupling(src NarrowBeamSource, detectorAreaM2 float64) float64 {
	theta := types.DegToRad(src.DivergenceDeg)
	cosPhi := math.Max(math.Cos(types.DegToRad(g.IncidentAngleDeg)), 0.0)

	tan := math.Tan(theta)
	denom := math.Pi * g.DistanceM * g.DistanceM * (tan*tan + 1e-12)
	num := g.OpticsGain * g.ConcentratorGain() * detectorAreaM2 * cosPhi
	return g.fovWindow() * math.Max(num/denom, 0.0)
}
