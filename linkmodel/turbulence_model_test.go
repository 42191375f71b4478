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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmilBH112/UOWC-SIM/prng"
	"github.com/EmilBH112/UOWC-SIM/types"
)

func allTurbulenceVariants(t *testing.T) []*Turbulence {
	variants := make([]*Turbulence, 0, 8)
	for _, si := range []float64{0.01, 0.1, 0.25, 1.0} {
		turb, err := NewLogNormalTurbulence(si)
		require.Nil(t, err)
		variants = append(variants, turb)
	}
	for _, shapes := range [][2]float64{{1.0, 1.0}, {2.5, 0.8}, {0.7, 2.0}} {
		turb, err := NewGenGammaTurbulence(shapes[0], shapes[1])
		require.Nil(t, err)
		variants = append(variants, turb)
	}
	for _, k := range []float64{0.8, 1.0, 2.0, 5.5} {
		turb, err := NewWeibullTurbulence(k, 1.0)
		require.Nil(t, err)
		variants = append(variants, turb)
	}
	return variants
}

func TestMeanFadingIsUnitForAllVariants(t *testing.T) {
	for _, turb := range allTurbulenceVariants(t) {
		assert.InDelta(t, 1.0, turb.MeanFading(), 1e-9, turb.Kind().String())
	}
}

func TestVarianceIsNonNegative(t *testing.T) {
	for _, turb := range allTurbulenceVariants(t) {
		assert.True(t, turb.Variance() >= 0, turb.Kind().String())
	}
}

func TestLogNormalScintillationIndexRoundTrip(t *testing.T) {
	turb, err := NewLogNormalTurbulence(0.25)
	require.Nil(t, err)
	assert.Equal(t, 0.25, turb.ScintillationIndex())
	// For unit-mean log-normal the irradiance variance equals sigma_I^2.
	assert.InDelta(t, 0.25, turb.Variance(), 1e-12)
}

func TestWeibullShapeOneIsExponential(t *testing.T) {
	// k=1 is the exponential distribution: unit mean implies variance 1.
	turb, err := NewWeibullTurbulence(1.0, 1.0)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, turb.Variance(), 1e-12)
}

func TestTurbulenceModelFactory(t *testing.T) {
	turb, err := TurbulenceModel("lognormal", TurbulenceParams{ScintillationIndex: 0.1})
	require.Nil(t, err)
	assert.Equal(t, TurbulenceLogNormal, turb.Kind())

	turb, err = TurbulenceModel("generalized-gamma", TurbulenceParams{ShapeA: 2.0, PowerC: 1.0})
	require.Nil(t, err)
	assert.Equal(t, TurbulenceGenGamma, turb.Kind())

	turb, err = TurbulenceModel("weibull", TurbulenceParams{Shape: 2.0})
	require.Nil(t, err)
	assert.Equal(t, TurbulenceWeibull, turb.Kind())

	_, err = TurbulenceModel("gamma-gamma", TurbulenceParams{})
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestTurbulenceInvalidParams(t *testing.T) {
	_, err := NewLogNormalTurbulence(0)
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	_, err = NewLogNormalTurbulence(-0.5)
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	_, err = NewGenGammaTurbulence(0, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	_, err = NewGenGammaTurbulence(1, -1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	_, err = NewWeibullTurbulence(-2, 1)
	assert.True(t, errors.Is(err, types.ErrConfiguration))

	_, err = NewWeibullTurbulence(2, 0)
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestSampleIsReproduciblePerSeed(t *testing.T) {
	turb, err := NewLogNormalTurbulence(0.25)
	require.Nil(t, err)
	a := turb.Sample(42, 100)
	b := turb.Sample(42, 100)
	assert.Equal(t, a, b)

	c := turb.Sample(43, 100)
	assert.NotEqual(t, a, c)
}

func TestSampleMeanConvergesToOne(t *testing.T) {
	prng.Init(12345)
	for _, turb := range allTurbulenceVariants(t) {
		samples := turb.Sample(prng.NewFadingRandomSeed(), 50000)
		sum := 0.0
		for _, g := range samples {
			assert.True(t, g >= 0)
			sum += g
		}
		mean := sum / float64(len(samples))
		assert.InDelta(t, 1.0, mean, 0.05, turb.Kind().String())
	}
}
