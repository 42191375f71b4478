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

// Package water provides inherent-optical-property presets for common water
// types and the Beer-Lambert line-of-sight attenuation derived from them.
package water

import (
	"github.com/pkg/errors"

	"github.com/EmilBH112/UOWC-SIM/types"
)

// WaterType holds the inherent optical properties (IOPs) of a water medium at
// its reference wavelength. All coefficients are in 1/m. Values are immutable
// once constructed; use the preset factories or Preset to obtain one.
type WaterType struct {
	Name string

	// AbsorptionCoeff is the absorption coefficient a [1/m].
	AbsorptionCoeff float64

	// ScatteringCoeff is the scattering coefficient b [1/m].
	ScatteringCoeff float64

	// ExtinctionCoeff is the beam extinction coefficient c = a + b [1/m],
	// the rate of the Beer-Lambert LOS factor exp(-c*d).
	ExtinctionCoeff float64

	// ReferenceWavelengthNm is the wavelength [nm] the coefficients apply to.
	ReferenceWavelengthNm float64
}

func newWaterType(name string, a, b float64) WaterType {
	return WaterType{
		Name:                  name,
		AbsorptionCoeff:       a,
		ScatteringCoeff:       b,
		ExtinctionCoeff:       a + b,
		ReferenceWavelengthNm: 520.0,
	}
}

// IOP values per Zayed & Shokair (2025), Table 3, at 520 nm.

func PureSea520nm() WaterType {
	return newWaterType("pure_sea", 0.04418, 0.0009092)
}

func ClearOcean520nm() WaterType {
	return newWaterType("clear_ocean", 0.08642, 0.01226)
}

func CoastalOcean520nm() WaterType {
	return newWaterType("coastal_ocean", 0.2179, 0.09966)
}

func TurbidHarbor520nm() WaterType {
	return newWaterType("turbid_harbor", 1.112, 0.5266)
}

var presets = map[string]func() WaterType{
	"pure_sea":      PureSea520nm,
	"clear_ocean":   ClearOcean520nm,
	"coastal_ocean": CoastalOcean520nm,
	"turbid_harbor": TurbidHarbor520nm,
}

// PresetNames lists the known water preset names, for error messages and
// scenario validation.
func PresetNames() []string {
	return []string{"pure_sea", "clear_ocean", "coastal_ocean", "turbid_harbor"}
}

// Preset looks up a water preset by name.
func Preset(name string) (WaterType, error) {
	factory, ok := presets[name]
	if !ok {
		return WaterType{}, errors.Wrapf(types.ErrConfiguration,
			"unknown water preset %q (known: %v)", name, PresetNames())
	}
	return factory(), nil
}
