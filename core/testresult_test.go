/*
 * Copyright 2018-present Open Networking Foundation

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 * http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerrit.opencord.org/omci-decode/mib"
)

func aniGHeader() FrameHeader {
	return FrameHeader{MsgType: TestResult, Class: mib.AniG, DeviceID: DeviceIDBaseline}
}

func TestAniGDiagnostics(t *testing.T) {
	body := []byte{
		0x01, 0x00, 0x0A, // power feed voltage, raw 10
		0x03, 0xFF, 0xEC, // received optical power, raw -20
		0x05, 0x00, 0x0A, // transmitted optical power, raw 10
		0x09, 0x00, 0x05, // laser bias current, raw 5
		0x0C, 0x01, 0x00, // temperature, raw 256
	}

	res, ok := decodeTestResult(aniGHeader(), body).(TestResultContent)
	require.True(t, ok)
	require.Len(t, res.Records, 5)
	for _, r := range res.Records {
		assert.False(t, r.Malformed, r.Name)
		assert.False(t, r.Truncated, r.Name)
		assert.True(t, r.Supported, r.Name)
	}

	assert.InDelta(t, 200.0, res.Records[0].Value, 1e-9) // 10 * 20 mV
	assert.InDelta(t, -30.04, res.Records[1].Value, 1e-9)
	assert.InDelta(t, -29.98, res.Records[2].Value, 1e-9)
	assert.InDelta(t, 10.0, res.Records[3].Value, 1e-9) // 5 * 2 uA
	assert.InDelta(t, 1.0, res.Records[4].Value, 1e-9)  // 256 / 256 degC
}

func TestOpticalPowerNotSupported(t *testing.T) {
	body := []byte{
		0x01, 0x00, 0x0A,
		0x03, 0x00, 0x00, // raw 0 means not supported, not -30 dBm
		0x05, 0x00, 0x00,
		0x09, 0x00, 0x05,
		0x0C, 0x01, 0x00,
	}

	res := decodeTestResult(aniGHeader(), body).(TestResultContent)
	assert.False(t, res.Records[1].Supported)
	assert.False(t, res.Records[2].Supported)
	assert.True(t, res.Records[0].Supported)
}

// A wrong tag spoils only its own slot; the others keep decoding.
func TestTagMismatchIsIsolated(t *testing.T) {
	body := []byte{
		0x01, 0x00, 0x0A,
		0x07, 0xFF, 0xEC, // tag 7 where 3 is expected
		0x05, 0x00, 0x0A,
		0x09, 0x00, 0x05,
		0x0C, 0x01, 0x00,
	}

	res := decodeTestResult(aniGHeader(), body).(TestResultContent)
	assert.True(t, res.Records[1].Malformed)
	assert.Equal(t, byte(7), res.Records[1].Tag)
	for _, i := range []int{0, 2, 3, 4} {
		assert.False(t, res.Records[i].Malformed, res.Records[i].Name)
		assert.True(t, res.Records[i].Supported)
	}
}

func TestTruncatedRecords(t *testing.T) {
	body := []byte{
		0x01, 0x00, 0x0A,
		0x03, 0xFF, 0xEC,
		0x05, 0x00, // cut mid-record
	}

	res := decodeTestResult(aniGHeader(), body).(TestResultContent)
	assert.False(t, res.Records[0].Truncated)
	assert.False(t, res.Records[1].Truncated)
	assert.True(t, res.Records[2].Truncated)
	assert.True(t, res.Records[3].Truncated)
	assert.True(t, res.Records[4].Truncated)
}

func TestResultOtherClassUnimplemented(t *testing.T) {
	hdr := aniGHeader()
	hdr.Class = mib.GEMPortNetworkCTP
	c := decodeTestResult(hdr, []byte{0x01, 0x00, 0x0A})

	u, ok := c.(UnimplementedContent)
	require.True(t, ok)
	assert.Equal(t, mib.GEMPortNetworkCTP, u.Class)
	assert.Equal(t, "not implemented for this class", u.Kind())
}
