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

// Package scenario loads a complete link setup from a YAML document, so that
// parameter studies can be configured in files instead of code.
package scenario

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/EmilBH112/UOWC-SIM/linkmodel"
	"github.com/EmilBH112/UOWC-SIM/water"
)

// YamlConfigFile is the on-disk scenario schema.
type YamlConfigFile struct {
	Water       string           `yaml:"water"`
	Transmitter TxConfig         `yaml:"transmitter"`
	Receiver    RxConfig         `yaml:"receiver"`
	Geometry    GeometryConfig   `yaml:"geometry"`
	Turbulence  TurbulenceConfig `yaml:"turbulence"`
	Noise       NoiseConfig      `yaml:"noise"`
}

type TxConfig struct {
	PowerW        float64 `yaml:"power_w"`
	Efficiency    float64 `yaml:"efficiency"`
	Laser         bool    `yaml:"laser"`
	SemiAngleDeg  float64 `yaml:"semi_angle_deg"`
	DivergenceDeg float64 `yaml:"divergence_deg"`
}

type RxConfig struct {
	ResponsivityAPerW float64 `yaml:"responsivity_a_per_w"`
	DetectorAreaM2    float64 `yaml:"detector_area_m2"`
	Efficiency        float64 `yaml:"efficiency"`
	TemperatureK      float64 `yaml:"temperature_k"`
	LoadResistanceOhm float64 `yaml:"load_resistance_ohm"`
}

type GeometryConfig struct {
	DistanceM          float64 `yaml:"distance_m"`
	TxPointingAngleDeg float64 `yaml:"tx_pointing_angle_deg"`
	IncidentAngleDeg   float64 `yaml:"incident_angle_deg"`
	FovDeg             float64 `yaml:"fov_deg"`
	OpticsGain         float64 `yaml:"optics_gain"`
	RefractiveIndex    float64 `yaml:"concentrator_refractive_index"`
}

type TurbulenceConfig struct {
	Model  string                     `yaml:"model"`
	Params linkmodel.TurbulenceParams `yaml:",inline"`
}

type NoiseConfig struct {
	BandwidthHz       float64  `yaml:"bandwidth_hz"`
	DarkCurrentA      float64  `yaml:"dark_current_a"`
	RIN               *float64 `yaml:"rin"`
	BackgroundPowerW  float64  `yaml:"background_power_w"`
	ApdGain           float64  `yaml:"apd_gain"`
	ExcessNoiseFactor float64  `yaml:"excess_noise_factor"`
}

// Scenario is a fully constructed link plus the noise parameters to evaluate
// it with.
type Scenario struct {
	Link  *linkmodel.Link
	Noise linkmodel.NoiseParams
}

// Load parses a YAML scenario document and builds the link it describes.
// Validation failures of the underlying components surface unchanged, so
// callers can still classify them with errors.Is.
func Load(r io.Reader) (*Scenario, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading scenario")
	}
	var cfg YamlConfigFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing scenario yaml")
	}
	return build(&cfg)
}

// LoadFile reads and builds a scenario from a YAML file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening scenario file %s", path)
	}
	defer f.Close()
	return Load(f)
}

func build(cfg *YamlConfigFile) (*Scenario, error) {
	w, err := water.Preset(cfg.Water)
	if err != nil {
		return nil, err
	}

	var source linkmodel.TxSource
	if cfg.Transmitter.Laser {
		source = linkmodel.NarrowBeamSource{DivergenceDeg: cfg.Transmitter.DivergenceDeg}
	} else {
		source = linkmodel.LambertianSource{SemiAngleDeg: cfg.Transmitter.SemiAngleDeg}
	}
	tx, err := linkmodel.NewTx(cfg.Transmitter.PowerW, cfg.Transmitter.Efficiency, source)
	if err != nil {
		return nil, err
	}

	rx, err := linkmodel.NewRx(cfg.Receiver.ResponsivityAPerW, cfg.Receiver.DetectorAreaM2,
		cfg.Receiver.Efficiency, cfg.Receiver.TemperatureK, cfg.Receiver.LoadResistanceOhm)
	if err != nil {
		return nil, err
	}

	geom, err := linkmodel.NewGeometry(cfg.Geometry.DistanceM, cfg.Geometry.TxPointingAngleDeg,
		cfg.Geometry.IncidentAngleDeg, cfg.Geometry.FovDeg, cfg.Geometry.OpticsGain,
		cfg.Geometry.RefractiveIndex)
	if err != nil {
		return nil, err
	}

	turb, err := linkmodel.TurbulenceModel(cfg.Turbulence.Model, cfg.Turbulence.Params)
	if err != nil {
		return nil, err
	}

	link, err := linkmodel.NewLink(w, tx, rx, geom, turb)
	if err != nil {
		return nil, err
	}

	noise := linkmodel.NewNoiseParams(cfg.Noise.BandwidthHz)
	noise.DarkCurrentA = cfg.Noise.DarkCurrentA
	noise.RIN = cfg.Noise.RIN
	noise.BackgroundPowerW = cfg.Noise.BackgroundPowerW
	if cfg.Noise.ApdGain != 0 {
		noise.ApdGain = cfg.Noise.ApdGain
	}
	if cfg.Noise.ExcessNoiseFactor != 0 {
		noise.ExcessNoiseFactor = cfg.Noise.ExcessNoiseFactor
	}
	if err := noise.Validate(); err != nil {
		return nil, err
	}

	return &Scenario{Link: link, Noise: noise}, nil
}
