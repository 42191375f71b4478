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

import "github.com/EmilBH112/UOWC-SIM/types"

// NoiseVariances is the per-term breakdown of the receiver noise, all in the
// current domain [A^2].
type NoiseVariances struct {
	// Shot is the signal + background shot noise 2 q R (Pr + Pbg) B F.
	Shot float64

	// Thermal is the front-end Johnson noise 4 k_B T B / R_load.
	Thermal float64

	// Dark is the dark-current shot noise 2 q I_dark B.
	Dark float64

	// RIN is the laser relative-intensity term rin (R Pr)^2 B, zero when no
	// RIN density is configured.
	RIN float64
}

// Total returns the summed noise variance [A^2].
func (nv NoiseVariances) Total() float64 {
	return nv.Shot + nv.Thermal + nv.Dark + nv.RIN
}

// computeNoiseVariances evaluates the noise breakdown for a received optical
// power prW at the detector input. Callers validate p first.
func computeNoiseVariances(rx *Rx, prW float64, p NoiseParams) NoiseVariances {
	resp := rx.ResponsivityAPerW * p.apdGain()
	b := p.BandwidthHz

	nv := NoiseVariances{
		Shot:    2 * types.ElectronCharge * resp * (prW + p.BackgroundPowerW) * b * p.excessNoise(),
		Thermal: 4 * types.Boltzmann * rx.TemperatureK * b / rx.LoadResistanceOhm,
	}
	if p.DarkCurrentA > 0 {
		nv.Dark = 2 * types.ElectronCharge * p.DarkCurrentA * b
	}
	if p.RIN != nil {
		iSig := resp * prW
		nv.RIN = *p.RIN * iSig * iSig * b
	}
	return nv
}
