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

package water

import (
	"math"

	"github.com/pkg/errors"

	"github.com/EmilBH112/UOWC-SIM/types"
)

// Transmittance evaluates the Beer-Lambert LOS transmittance exp(-c*d) for a
// propagation distance of distanceM meters. A zero distance returns exactly
// 1.0; a negative distance is out of domain.
func Transmittance(w WaterType, distanceM float64) (float64, error) {
	if distanceM < 0 {
		return 0, errors.Wrapf(types.ErrValue, "negative distance %v m", distanceM)
	}
	if distanceM == 0 {
		return 1.0, nil
	}
	return math.Exp(-w.ExtinctionCoeff * distanceM), nil
}

// PathLossDb returns the Beer-Lambert attenuation as a positive dB loss over
// distanceM meters.
func PathLossDb(w WaterType, distanceM float64) (types.DbValue, error) {
	trans, err := Transmittance(w, distanceM)
	if err != nil {
		return 0, err
	}
	return -types.LinearToDb(trans), nil
}
