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

// Package modulation provides closed-form OOK bit-error-rate evaluation and
// PPM symbol mapping helpers for the link model.
package modulation

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/EmilBH112/UOWC-SIM/types"
)

// QFunc is the Gaussian tail probability Q(x) = 0.5 erfc(x / sqrt(2)).
func QFunc(x float64) float64 {
	return 0.5 * math.Erfc(x/math.Sqrt2)
}

// BerOokFromSnrDb returns the OOK bit error rate for an electrical SNR in dB,
// using the first-order IM/DD AWGN form BER = Q(sqrt(SNR)).
//
// The SNR convention here is I_sig^2 / sigma^2 as produced by
// linkmodel.Link.SnrDb; with that definition the OOK decision distance is
// sqrt(SNR) directly, with no extra factor of 2 inside the square root. The
// result is clamped to [0, 0.5]: any dB value is accepted and BER tends to
// 0.5 as SNR goes to -Inf dB.
func BerOokFromSnrDb(snrDb types.DbValue) float64 {
	snrLin := types.DbToLinear(snrDb)
	ber := QFunc(math.Sqrt(snrLin))
	return math.Min(math.Max(ber, 0.0), 0.5)
}

// ppmBitWidth returns the bits per symbol log2(order) after validating that
// order is a power of two >= 2.
func ppmBitWidth(order int) (int, error) {
	if order < 2 || bits.OnesCount(uint(order)) != 1 {
		return 0, errors.Wrapf(types.ErrValue, "PPM order %d must be a power of two >= 2", order)
	}
	return bits.TrailingZeros(uint(order)), nil
}

// PpmEncode maps a bit stream onto M-PPM pulse positions, MSB first within
// each symbol. The input length must be a multiple of the order's bit width
// log2(order), and every element must be 0 or 1.
func PpmEncode(bitstream []byte, order int) ([]int, error) {
	k, err := ppmBitWidth(order)
	if err != nil {
		return nil, err
	}
	if len(bitstream)%k != 0 {
		return nil, errors.Wrapf(types.ErrValue,
			"bit stream length %d is not a multiple of %d (log2 of PPM order %d)", len(bitstream), k, order)
	}
	positions := make([]int, 0, len(bitstream)/k)
	for i := 0; i < len(bitstream); i += k {
		pos := 0
		for _, b := range bitstream[i : i+k] {
			if b > 1 {
				return nil, errors.Wrapf(types.ErrValue, "bit value %d is not 0 or 1", b)
			}
			pos = pos<<1 | int(b)
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// PpmDecode maps M-PPM pulse positions back to the bit stream produced by
// PpmEncode. Every position must lie in [0, order).
func PpmDecode(positions []int, order int) ([]byte, error) {
	k, err := ppmBitWidth(order)
	if err != nil {
		return nil, err
	}
	bitstream := make([]byte, 0, len(positions)*k)
	for _, pos := range positions {
		if pos < 0 || pos >= order {
			return nil, errors.Wrapf(types.ErrValue, "pulse position %d outside [0, %d)", pos, order)
		}
		for shift := k - 1; shift >= 0; shift-- {
			bitstream = append(bitstream, byte(pos>>shift)&1)
		}
	}
	return bitstream, nil
}
