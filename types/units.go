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

package types

import "math"

// DbValue is a dB or dBm quantity, used wherever values flow in the log domain.
type DbValue = float64

// Physical constants (SI).
const (
	ElectronCharge = 1.602176634e-19 // elementary charge [C]
	Boltzmann      = 1.380649e-23    // Boltzmann constant [J/K]
)

// Floor encodings for log-domain quantities. A finite floor is returned instead
// of -Inf/NaN so downstream dB arithmetic stays well-defined.
const (
	SnrFloorDb DbValue = -300.0
	DbmFloor   DbValue = -300.0
)

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// LinearToDb converts a linear power ratio to dB. Non-positive ratios map to
// SnrFloorDb rather than -Inf.
func LinearToDb(lin float64) DbValue {
	if lin <= 0 {
		return SnrFloorDb
	}
	return 10.0 * math.Log10(lin)
}

// DbToLinear converts a dB power ratio to linear.
func DbToLinear(db DbValue) float64 {
	return math.Pow(10, db/10.0)
}

// WattToDbm converts optical power in watts to dBm, with a DbmFloor floor for
// non-positive powers.
func WattToDbm(w float64) DbValue {
	if w <= 0 {
		return DbmFloor
	}
	return 10.0 * math.Log10(w/1e-3)
}

// DbmToWatt converts a dBm power level to watts.
func DbmToWatt(dbm DbValue) float64 {
	return 1e-3 * math.Pow(10, dbm/10.0)
}
