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
	"encoding/binary"
	"testing"

	"github.com/boguslaw-wojcik/crc32a"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrameHeader(t *testing.T) {
	// tci=1, msgtype 0x49 (ar=1 ak=0 code 9 Get), baseline, Circuit Pack #2
	buf := []byte{0x00, 0x01, 0x49, 0x0A, 0x00, 0x06, 0x00, 0x02}

	f, err := DecodeFrame(buf)
	require.NoError(t, err)

	assert.Equal(t, uint16(1), f.Header.TransactionID)
	assert.Equal(t, Get, f.Header.MsgType)
	assert.True(t, f.Header.AR)
	assert.False(t, f.Header.AK)
	assert.False(t, f.Header.DB)
	assert.Equal(t, DeviceIDBaseline, f.Header.DeviceID)
	assert.Equal(t, uint16(6), f.Header.Class)
	assert.Equal(t, uint16(2), f.Header.Instance)
	assert.Equal(t, "Circuit Pack", f.Schema.Name)
	assert.Nil(t, f.Trailer)

	// header only: the Get request's mask did not fit
	req, ok := f.Content.(GetRequest)
	require.True(t, ok)
	require.NotNil(t, req.Truncated)
}

func TestDecodeFrameTooShort(t *testing.T) {
	for l := 0; l < 8; l++ {
		_, err := DecodeFrame(make([]byte, l))
		assert.ErrorIs(t, err, ErrFrameTooShort, "length %d", l)
	}
}

func TestDecodeFrameFullBaseline(t *testing.T) {
	// 48-byte baseline frame: Get response from ANI-G #1
	buf := make([]byte, 48)
	copy(buf, []byte{0x12, 0x34, 0x29, 0x0A, 0x01, 0x07, 0x00, 0x01})
	copy(buf[8:], []byte{0x00, 0x80, 0x40, 0x01, 0xd7, 0xa9})

	f, err := DecodeFrame(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), f.Header.TransactionID)
	assert.Equal(t, "ANI-G", f.Schema.Name)
	// 48 bytes is the bare baseline frame: no trailer yet
	assert.Nil(t, f.Trailer)

	resp := f.Content.(GetResponse)
	assert.Equal(t, "success", ResultName(resp.Result))
	assert.Equal(t, []byte{0xd7, 0xa9}, resp.Attrs[1].Value)
}

func TestDecodeFrameTrailer(t *testing.T) {
	buf := make([]byte, 52)
	copy(buf, []byte{0x00, 0x05, 0x2D, 0x0A, 0x00, 0x02, 0x00, 0x00})
	copy(buf[8:], []byte{0x00, 0x09}) // MIB Upload response, 9 commands
	// CPCS-UU/CPI and SDU length precede the CRC in the last 8 bytes
	binary.BigEndian.PutUint16(buf[44:46], 0x0000)
	binary.BigEndian.PutUint16(buf[46:48], 0x0028)
	binary.BigEndian.PutUint32(buf[48:52], crc32a.Checksum(buf[:48]))

	f, err := DecodeFrame(buf)
	require.NoError(t, err)
	require.NotNil(t, f.Trailer)
	assert.Equal(t, uint16(0x0000), f.Trailer.CpcsUUCpi)
	assert.Equal(t, uint16(0x0028), f.Trailer.CpcsSdu)
	assert.True(t, f.Trailer.CRCOk)

	up := f.Content.(MibUploadResponse)
	assert.Equal(t, uint16(9), up.Commands)
}

func TestDecodeFrameBadCRC(t *testing.T) {
	buf := make([]byte, 52)
	copy(buf, []byte{0x00, 0x05, 0x2D, 0x0A, 0x00, 0x02, 0x00, 0x00})
	binary.BigEndian.PutUint32(buf[48:52], 0xDEADBEEF)

	f, err := DecodeFrame(buf)
	require.NoError(t, err)
	require.NotNil(t, f.Trailer)
	assert.False(t, f.Trailer.CRCOk)
	assert.Equal(t, uint32(0xDEADBEEF), f.Trailer.CRC32)
}

// The decoder must not retain references into the caller's buffer.
func TestDecodeFrameDetachesFromInput(t *testing.T) {
	buf := make([]byte, 48)
	copy(buf, []byte{0x00, 0x01, 0x29, 0x0A, 0x01, 0x07, 0x00, 0x01})
	copy(buf[8:], []byte{0x00, 0x80, 0x00, 0x42})

	f, err := DecodeFrame(buf)
	require.NoError(t, err)
	resp := f.Content.(GetResponse)
	require.Equal(t, []byte{0x42}, resp.Attrs[0].Value)

	buf[11] = 0xFF // caller reuses the buffer
	assert.Equal(t, []byte{0x42}, resp.Attrs[0].Value)
}

func TestDecodeFrameAlarm(t *testing.T) {
	buf := make([]byte, 48)
	copy(buf, []byte{0x00, 0x00, 0x10, 0x0A, 0x01, 0x07, 0x00, 0x01})
	buf[8+3] = 0x04  // alarm 26
	buf[8+31] = 0x01 // sequence

	f, err := DecodeFrame(buf)
	require.NoError(t, err)
	a := f.Content.(AlarmContent)
	assert.Equal(t, []int{26}, a.Raised)
	assert.Equal(t, byte(1), a.Sequence)
}
