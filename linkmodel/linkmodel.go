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

// Package linkmodel composes water attenuation, source/receiver geometry,
// unit-mean turbulence fading and a current-domain noise model into received
// power and SNR metrics for a single underwater optical line-of-sight link.
//
// Assumptions and simplifications:
//   - Single-wavelength scalar model; scattering enters only through the
//     extinction coefficient c = a + b (Beer-Lambert).
//   - Ideal non-imaging concentrator with gain n^2/sin^2(FOV) and a hard FOV
//     cutoff.
//   - Turbulence is unit-mean multiplicative fading, so the expected link
//     budget is fading-independent; only the variance changes per model.
//   - Electrical noise is combined in the current domain, with signal current
//     I = R * Pr.
package linkmodel

import (
	"github.com/pkg/errors"

	"github.com/EmilBH112/UOWC-SIM/logger"
	"github.com/EmilBH112/UOWC-SIM/types"
	"github.com/EmilBH112/UOWC-SIM/water"
)

// Link aggregates one water type, transmitter, receiver, geometry and
// turbulence model. It holds the parts by reference without owning them and
// stores no derived state: every metric is recomputed per call, so a Link is
// safe for concurrent use.
type Link struct {
	Water      water.WaterType
	Tx         *Tx
	Rx         *Rx
	Geometry   *Geometry
	Turbulence *Turbulence
}

// NewLink composes a link from already-validated parts.
func NewLink(w water.WaterType, tx *Tx, rx *Rx, geom *Geometry, turb *Turbulence) (*Link, error) {
	switch {
	case tx == nil:
		return nil, errors.Wrap(types.ErrConfiguration, "link transmitter not set")
	case rx == nil:
		return nil, errors.Wrap(types.ErrConfiguration, "link receiver not set")
	case geom == nil:
		return nil, errors.Wrap(types.ErrConfiguration, "link geometry not set")
	case turb == nil:
		return nil, errors.Wrap(types.ErrConfiguration, "link turbulence model not set")
	}
	return &Link{Water: w, Tx: tx, Rx: rx, Geometry: geom, Turbulence: turb}, nil
}

// ReceivedPowerW returns the expected received optical power [W] at the
// detector input:
//
//	Pr = Pt * eta_t * exp(-c d) * coupling * eta_r * E[g]
//
// with E[g] = 1 for every turbulence model. The result is deterministic (not
// a random draw), >= 0 always, and 0 exactly when the incidence angle falls
// outside the receiver FOV.
func (l *Link) ReceivedPowerW() float64 {
	trans, err := water.Transmittance(l.Water, l.Geometry.DistanceM)
	logger.PanicIfError(err) // distance was validated > 0 at construction

	coupling := l.Geometry.CouplingFactor(l.Tx.Source, l.Rx.DetectorAreaM2)
	return l.Tx.PowerW * l.Tx.Efficiency * trans * coupling * l.Rx.Efficiency *
		l.Turbulence.MeanFading()
}

// ReceivedPowerDbm returns the received power in dBm, with the types.DbmFloor
// floor when the geometry blocks the signal entirely.
func (l *Link) ReceivedPowerDbm() types.DbValue {
	return types.WattToDbm(l.ReceivedPowerW())
}

// NoiseVariances returns the receiver noise breakdown for the given received
// optical power and noise parameters.
func (l *Link) NoiseVariances(prW float64, p NoiseParams) (NoiseVariances, error) {
	if err := p.Validate(); err != nil {
		return NoiseVariances{}, err
	}
	if prW < 0 {
		return NoiseVariances{}, errors.Wrapf(types.ErrValue, "received power %v W must be >= 0", prW)
	}
	return computeNoiseVariances(l.Rx, prW, p), nil
}

// SnrDb returns the electrical SNR in dB, defined as
//
//	SNR = I_sig^2 / sigma_total^2, I_sig = R * M * Pr
//
// This I^2/sigma^2 convention is the one consumed by modulation.BerOokFromSnrDb.
// A zero signal current yields the finite types.SnrFloorDb instead of -Inf.
func (l *Link) SnrDb(p NoiseParams) (types.DbValue, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	pr := l.ReceivedPowerW()
	iSig := l.Rx.ResponsivityAPerW * p.apdGain() * pr
	if iSig == 0 {
		return types.SnrFloorDb, nil
	}

	nv := computeNoiseVariances(l.Rx, pr, p)
	snr := iSig * iSig / nv.Total()
	logger.Debugf("link budget: Pr=%.3e W, Isig=%.3e A, noise(shot=%.3e thermal=%.3e dark=%.3e rin=%.3e) A^2",
		pr, iSig, nv.Shot, nv.Thermal, nv.Dark, nv.RIN)
	return types.LinearToDb(snr), nil
}

// MaxRangeM returns the largest distance in (0, dMaxM] at which the given
// predicate still holds for this link, refined by bisection after a coarse
// scan. It returns 0 when the predicate fails everywhere. The link itself is
// not modified; each probe evaluates a copy at the probe distance.
func (l *Link) MaxRangeM(pred func(*Link) bool, dMaxM float64) float64 {
	const coarseSteps = 200
	const bisectIters = 40

	if dMaxM <= 0 {
		return 0
	}
	step := dMaxM / coarseSteps
	lastOk := 0.0
	firstFail := dMaxM
	found := false
	for d := step; d <= dMaxM; d += step {
		if pred(l.at(d)) {
			lastOk = d
		} else if lastOk > 0 {
			firstFail = d
			found = true
			break
		}
	}
	if lastOk == 0 {
		return 0
	}
	if !found && pred(l.at(dMaxM)) {
		return dMaxM
	}
	lo, hi := lastOk, firstFail
	for i := 0; i < bisectIters; i++ {
		mid := (lo + hi) / 2
		if pred(l.at(mid)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// at returns a copy of the link with the probe distance substituted.
func (l *Link) at(distanceM float64) *Link {
	geom := *l.Geometry
	geom.DistanceM = distanceM
	probe := *l
	probe.Geometry = &geom
	return &probe
}
