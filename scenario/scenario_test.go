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

package scenario

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmilBH112/UOWC-SIM/linkmodel"
	"github.com/EmilBH112/UOWC-SIM/types"
	"github.com/EmilBH112/UOWC-SIM/water"
)

var testScenarioYaml = `
water: clear_ocean
transmitter:
    power_w: 0.5
    efficiency: 0.9
    laser: false
    semi_angle_deg: 60
receiver:
    responsivity_a_per_w: 0.5
    detector_area_m2: 1.0e-4
    efficiency: 0.9
    temperature_k: 300
    load_resistance_ohm: 50
geometry:
    distance_m: 5
    tx_pointing_angle_deg: 0
    incident_angle_deg: 15
    fov_deg: 30
    optics_gain: 1.0
    concentrator_refractive_index: 1.5
turbulence:
    model: lognormal
    scintillation_index: 0.1
noise:
    bandwidth_hz: 1.0e6
    dark_current_a: 1.0e-9
`

func TestLoadScenario(t *testing.T) {
	sc, err := Load(strings.NewReader(testScenarioYaml))
	require.Nil(t, err)
	require.NotNil(t, sc.Link)

	assert.Equal(t, "clear_ocean", sc.Link.Water.Name)
	assert.Equal(t, 1e6, sc.Noise.BandwidthHz)
	assert.Equal(t, 1e-9, sc.Noise.DarkCurrentA)
	assert.Nil(t, sc.Noise.RIN)
	assert.Equal(t, 1.0, sc.Noise.ApdGain)
	assert.Equal(t, linkmodel.TurbulenceLogNormal, sc.Link.Turbulence.Kind())
}

func TestLoadedScenarioMatchesDirectConstruction(t *testing.T) {
	sc, err := Load(strings.NewReader(testScenarioYaml))
	require.Nil(t, err)

	tx, err := linkmodel.NewTx(0.5, 0.9, linkmodel.LambertianSource{SemiAngleDeg: 60})
	require.Nil(t, err)
	rx, err := linkmodel.NewRx(0.5, 1e-4, 0.9, 300, 50)
	require.Nil(t, err)
	geom, err := linkmodel.NewGeometry(5, 0, 15, 30, 1.0, 1.5)
	require.Nil(t, err)
	turb, err := linkmodel.NewLogNormalTurbulence(0.1)
	require.Nil(t, err)
	direct, err := linkmodel.NewLink(water.ClearOcean520nm(), tx, rx, geom, turb)
	require.Nil(t, err)

	assert.InEpsilon(t, direct.ReceivedPowerW(), sc.Link.ReceivedPowerW(), 1e-12)

	wantSnr, err := direct.SnrDb(sc.Noise)
	require.Nil(t, err)
	gotSnr, err := sc.Link.SnrDb(sc.Noise)
	require.Nil(t, err)
	assert.InDelta(t, wantSnr, gotSnr, 1e-12)
}

func TestLoadScenarioLaserSource(t *testing.T) {
	doc := strings.Replace(testScenarioYaml, "laser: false", "laser: true\n    divergence_deg: 9", 1)
	sc, err := Load(strings.NewReader(doc))
	require.Nil(t, err)
	_, ok := sc.Link.Tx.Source.(linkmodel.NarrowBeamSource)
	assert.True(t, ok)
}

func TestLoadScenarioUnknownWater(t *testing.T) {
	doc := strings.Replace(testScenarioYaml, "water: clear_ocean", "water: bathtub", 1)
	_, err := Load(strings.NewReader(doc))
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestLoadScenarioInvalidTurbulence(t *testing.T) {
	doc := strings.Replace(testScenarioYaml, "scintillation_index: 0.1", "scintillation_index: -0.1", 1)
	_, err := Load(strings.NewReader(doc))
	assert.True(t, errors.Is(err, types.ErrConfiguration))
}

func TestLoadScenarioInvalidBandwidth(t *testing.T) {
	doc := strings.Replace(testScenarioYaml, "bandwidth_hz: 1.0e6", "bandwidth_hz: 0", 1)
	_, err := Load(strings.NewReader(doc))
	assert.True(t, errors.Is(err, types.ErrValue))
}

func TestLoadScenarioBadYaml(t *testing.T) {
	_, err := Load(strings.NewReader("{ water: ["))
	assert.NotNil(t, err)
}
