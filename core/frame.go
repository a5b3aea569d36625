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
	"errors"

	"github.com/boguslaw-wojcik/crc32a"

	"gerrit.opencord.org/omci-decode/mib"
)

const (
	headerLen  = 8
	contentLen = 32
	trailerLen = 8
	// a baseline frame is 48 bytes; anything longer carries the AAL5 trailer
	trailerThreshold = 48
)

// ErrFrameTooShort is returned when not even the fixed header can be read.
// It is the only non-recoverable decode condition.
var ErrFrameTooShort = errors.New("frame too short")

// FrameHeader holds the fixed 8-byte OMCI header.
type FrameHeader struct {
	TransactionID uint16
	MsgTypeRaw    byte
	DB            bool        // destination bit (bit 7)
	AR            bool        // acknowledge request (bit 6)
	AK            bool        // acknowledgement (bit 5)
	MsgType       OmciMsgType // bits 0-4
	DeviceID      byte
	Class         uint16
	Instance      uint16
}

// Trailer holds the raw CPCS/SAR trailer of a baseline frame. The fields are
// handed to the renderer untouched; only the CRC is checked here.
type Trailer struct {
	CpcsUUCpi uint16
	CpcsSdu   uint16
	CRC32     uint32
	CRCOk     bool
}

// Frame is the structured result of decoding one OMCI frame.
type Frame struct {
	Header  FrameHeader
	Schema  mib.Schema // resolved from Header.Class, never empty
	Content Content
	Trailer *Trailer // nil when the buffer carries no trailer
}

// DecodeFrame renders one on-wire OMCI frame into a structured result. The
// input buffer is owned by the caller and is not referenced after return.
// All malformed-content conditions are reported on the returned Frame; the
// only error case is a buffer too short for the fixed header.
func DecodeFrame(buf []byte) (*Frame, error) {
	if len(buf) < headerLen {
		return nil, ErrFrameTooShort
	}

	f := &Frame{}
	f.Header = FrameHeader{
		TransactionID: binary.BigEndian.Uint16(buf[0:2]),
		MsgTypeRaw:    buf[2],
		DB:            buf[2]&maskDB != 0,
		AR:            buf[2]&maskAR != 0,
		AK:            buf[2]&maskAK != 0,
		MsgType:       OmciMsgType(buf[2] & maskType),
		DeviceID:      buf[3],
		Class:         binary.BigEndian.Uint16(buf[4:6]),
		Instance:      binary.BigEndian.Uint16(buf[6:8]),
	}
	f.Schema = mib.Lookup(f.Header.Class)

	region := buf[headerLen:]
	if len(buf) > trailerThreshold {
		f.Trailer = decodeTrailer(buf)
		region = buf[headerLen : len(buf)-trailerLen]
	}

	f.Content = decodeContent(f.Header, f.Schema, region)
	return f, nil
}

// decodeTrailer reads the 8-byte CPCS-UU/CPI + SDU-length + CRC-32 trailer
// and checks the AAL5 CRC over the rest of the frame.
func decodeTrailer(buf []byte) *Trailer {
	t := buf[len(buf)-trailerLen:]
	tr := &Trailer{
		CpcsUUCpi: binary.BigEndian.Uint16(t[0:2]),
		CpcsSdu:   binary.BigEndian.Uint16(t[2:4]),
		CRC32:     binary.BigEndian.Uint32(t[4:8]),
	}
	tr.CRCOk = crc32a.Checksum(buf[:len(buf)-4]) == tr.CRC32
	return tr
}
