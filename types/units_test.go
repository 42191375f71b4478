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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDbConversionRoundTrip(t *testing.T) {
	assert.InDelta(t, 20.0, LinearToDb(100.0), 1e-12)
	assert.InDelta(t, 100.0, DbToLinear(20.0), 1e-9)
	assert.InDelta(t, 0.5, DbToLinear(LinearToDb(0.5)), 1e-12)
}

func TestLinearToDbFloorsNonPositive(t *testing.T) {
	assert.Equal(t, SnrFloorDb, LinearToDb(0))
	assert.Equal(t, SnrFloorDb, LinearToDb(-1))
}

func TestWattDbmConversion(t *testing.T) {
	assert.InDelta(t, 0.0, WattToDbm(1e-3), 1e-12)
	assert.InDelta(t, 30.0, WattToDbm(1.0), 1e-12)
	assert.InDelta(t, 1e-3, DbmToWatt(0.0), 1e-15)
	assert.Equal(t, DbmFloor, WattToDbm(0))
}

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-12)
	assert.InDelta(t, 90.0, RadToDeg(math.Pi/2), 1e-12)
}
