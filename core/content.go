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

	"gerrit.opencord.org/omci-decode/mib"
)

// Content is the decoded message-content variant. Each recognized
// (msgtype, ar, ak) combination has its own concrete type; anything else
// comes back as RawContent.
type Content interface {
	Kind() string
}

// Truncation reports a content region shorter than the selected decode path
// required. Decoding stops at the buffer bound; whatever fit is kept.
type Truncation struct {
	Consumed int
	Expected int
}

// GetRequest: Get / Get Current Data with ar=1. Carries the attribute mask
// only; the selection resolves names, not values.
type GetRequest struct {
	Mask      uint16
	Attrs     []SelectedAttr
	Truncated *Truncation
}

// GetResponse: Get / Get Current Data with ak=1. Result code, mask, then
// the selected attribute values at cumulative offsets starting at 3.
type GetResponse struct {
	Result    byte
	Mask      uint16
	Attrs     []SelectedAttr
	Truncated *Truncation
}

// SetRequest: Set / Set Table with ar=1. Mask at 0, values from offset 2.
type SetRequest struct {
	Mask      uint16
	Attrs     []SelectedAttr
	Truncated *Truncation
}

// SimpleResponse: Set, Set Table, Create, MIB Reset and Test responses
// carry a result code and nothing else.
type SimpleResponse struct {
	Result    byte
	Truncated *Truncation
}

// CreateRequest: no mask; the schema's set-by-create attributes in order.
type CreateRequest struct {
	Attrs     []SelectedAttr
	Truncated *Truncation
}

// MibUploadResponse announces how many MIB Upload Next commands follow.
type MibUploadResponse struct {
	Commands  uint16
	Truncated *Truncation
}

// MibUploadNextRequest carries the requested command sequence number.
type MibUploadNextRequest struct {
	Sequence  uint16
	Truncated *Truncation
}

// MibUploadNextResponse carries one uploaded entity: its own class and
// instance, and an attribute mask interpreted against the uploaded class's
// schema (not the frame header's).
type MibUploadNextResponse struct {
	Class     uint16
	Schema    mib.Schema
	Instance  uint16
	Mask      uint16
	Attrs     []SelectedAttr
	Truncated *Truncation
}

// TestRequest: defined for ANI-G only. Extended frames carry a 2-byte
// content length before the test id.
type TestRequest struct {
	Length    uint16 // extended message set only
	TestID    byte
	Truncated *Truncation
}

// RawContent is the fallback for (msgtype, ar, ak) combinations with no
// defined decode path. The bytes are untouched.
type RawContent struct {
	Raw []byte
}

// UnimplementedContent marks a class-specific decode path (Test,
// Test Result) invoked against a class it does not cover.
type UnimplementedContent struct {
	Class uint16
	Raw   []byte
}

func (GetRequest) Kind() string            { return "Get request" }
func (GetResponse) Kind() string           { return "Get response" }
func (SetRequest) Kind() string            { return "Set request" }
func (SimpleResponse) Kind() string        { return "response" }
func (CreateRequest) Kind() string         { return "Create request" }
func (MibUploadResponse) Kind() string     { return "MIB Upload response" }
func (MibUploadNextRequest) Kind() string  { return "MIB Upload Next request" }
func (MibUploadNextResponse) Kind() string { return "MIB Upload Next response" }
func (TestRequest) Kind() string           { return "Test request" }
func (AlarmContent) Kind() string          { return "Alarm" }
func (TestResultContent) Kind() string     { return "Test Result" }
func (RawContent) Kind() string            { return "raw" }
func (UnimplementedContent) Kind() string  { return "not implemented for this class" }

// decodeContent dispatches on (msgtype, ar, ak). The region starts right
// after the 8-byte header; for the extended message set it still includes
// the 2-byte content length, which every path except the Test request skips.
func decodeContent(hdr FrameHeader, schema mib.Schema, region []byte) Content {
	body := region
	if hdr.DeviceID == DeviceIDExtended && len(body) >= 2 {
		body = body[2:]
	}
	if len(body) > contentLen {
		body = body[:contentLen]
	}

	t, ar, ak := hdr.MsgType, hdr.AR, hdr.AK
	switch {
	case (t == Get || t == GetCurrentData) && ar && !ak:
		return decodeGetRequest(schema, body)

	case (t == Get || t == GetCurrentData) && !ar && ak:
		return decodeGetResponse(schema, body)

	case (t == Set || t == SetTable) && ar && !ak:
		return decodeSetRequest(schema, body)

	case (t == Set || t == SetTable || t == Create || t == MibReset || t == Test) && !ar && ak:
		if len(body) < 1 {
			return SimpleResponse{Truncated: &Truncation{Consumed: 0, Expected: 1}}
		}
		return SimpleResponse{Result: body[0]}

	case t == Create && ar && !ak:
		return decodeCreateRequest(schema, body)

	case t == MibUpload && !ar && ak:
		if len(body) < 2 {
			return MibUploadResponse{Truncated: &Truncation{Consumed: 0, Expected: 2}}
		}
		return MibUploadResponse{Commands: binary.BigEndian.Uint16(body[0:2])}

	case t == MibUploadNext && ar && !ak:
		if len(body) < 2 {
			return MibUploadNextRequest{Truncated: &Truncation{Consumed: 0, Expected: 2}}
		}
		return MibUploadNextRequest{Sequence: binary.BigEndian.Uint16(body[0:2])}

	case t == MibUploadNext && !ar && ak:
		return decodeMibUploadNextResponse(body)

	case t == Test && ar && !ak:
		return decodeTestRequest(hdr, region)

	case t == TestResult && !ar && !ak:
		return decodeTestResult(hdr, body)

	case t == AlarmNotification && !ar && !ak:
		return decodeAlarm(body)

	default:
		return RawContent{Raw: dup(body)}
	}
}

func decodeGetRequest(schema mib.Schema, body []byte) Content {
	if len(body) < 2 {
		return GetRequest{Truncated: &Truncation{Consumed: 0, Expected: 2}}
	}
	mask := binary.BigEndian.Uint16(body[0:2])
	return GetRequest{Mask: mask, Attrs: selectAttrs(mask, schema)}
}

func decodeGetResponse(schema mib.Schema, body []byte) Content {
	if len(body) < 3 {
		return GetResponse{Truncated: &Truncation{Consumed: 0, Expected: 3}}
	}
	mask := binary.BigEndian.Uint16(body[1:3])
	attrs, trunc := readAttrValues(selectAttrs(mask, schema), body, 3)
	return GetResponse{Result: body[0], Mask: mask, Attrs: attrs, Truncated: trunc}
}

func decodeSetRequest(schema mib.Schema, body []byte) Content {
	if len(body) < 2 {
		return SetRequest{Truncated: &Truncation{Consumed: 0, Expected: 2}}
	}
	mask := binary.BigEndian.Uint16(body[0:2])
	attrs, trunc := readAttrValues(selectAttrs(mask, schema), body, 2)
	return SetRequest{Mask: mask, Attrs: attrs, Truncated: trunc}
}

func decodeCreateRequest(schema mib.Schema, body []byte) Content {
	attrs, trunc := readAttrValues(selectByCreate(schema), body, 0)
	return CreateRequest{Attrs: attrs, Truncated: trunc}
}

func decodeMibUploadNextResponse(body []byte) Content {
	if len(body) < 6 {
		return MibUploadNextResponse{Truncated: &Truncation{Consumed: 0, Expected: 6}}
	}
	class := binary.BigEndian.Uint16(body[0:2])
	schema := mib.Lookup(class)
	mask := binary.BigEndian.Uint16(body[4:6])
	attrs, trunc := readAttrValues(selectAttrs(mask, schema), body, 6)
	return MibUploadNextResponse{
		Class:     class,
		Schema:    schema,
		Instance:  binary.BigEndian.Uint16(body[2:4]),
		Mask:      mask,
		Attrs:     attrs,
		Truncated: trunc,
	}
}

// decodeTestRequest works on the unadjusted region: the extended layout
// carries its own 2-byte content length before the test id.
func decodeTestRequest(hdr FrameHeader, region []byte) Content {
	if hdr.Class != mib.AniG {
		return UnimplementedContent{Class: hdr.Class, Raw: dup(region)}
	}
	if hdr.DeviceID == DeviceIDExtended {
		if len(region) < 3 {
			return TestRequest{Truncated: &Truncation{Consumed: 0, Expected: 3}}
		}
		return TestRequest{Length: binary.BigEndian.Uint16(region[0:2]), TestID: region[2]}
	}
	if len(region) < 1 {
		return TestRequest{Truncated: &Truncation{Consumed: 0, Expected: 1}}
	}
	return TestRequest{TestID: region[0]}
}

// dup detaches a slice from the caller-owned input buffer.
func dup(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
