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

// TestRecord is one (tag, value) diagnostic of an ANI-G Test Result.
// A tag mismatch marks only this record malformed; the remaining slots
// decode independently.
type TestRecord struct {
	Offset      int
	ExpectedTag byte
	Tag         byte
	Raw         int16
	Name        string
	Value       float64
	Unit        string
	Supported   bool // optical power records report 0 as "not supported"
	Malformed   bool
	Truncated   bool
}

// TestResultContent carries the five fixed ANI-G diagnostic records.
type TestResultContent struct {
	Records []TestRecord
}

// The five ANI-G diagnostic slots: offset, expected tag, meaning, scaling.
var aniGTestSlots = []struct {
	offset int
	tag    byte
	name   string
	unit   string
	// scale turns the raw signed reading into the physical value; ok=false
	// flags the "not supported" encoding.
	scale func(raw int16) (v float64, ok bool)
}{
	{0, 1, "Power feed voltage", "mV", func(raw int16) (float64, bool) {
		return float64(raw) * 20, true
	}},
	{3, 3, "Received optical power", "dBm", func(raw int16) (float64, bool) {
		if raw == 0 {
			return 0, false
		}
		return float64(raw)*0.002 - 30, true
	}},
	{6, 5, "Transmitted optical power", "dBm", func(raw int16) (float64, bool) {
		if raw == 0 {
			return 0, false
		}
		return float64(raw)*0.002 - 30, true
	}},
	{9, 9, "Laser bias current", "uA", func(raw int16) (float64, bool) {
		return float64(raw) * 2, true
	}},
	{12, 12, "Temperature", "degC", func(raw int16) (float64, bool) {
		return float64(raw) / 256.0, true
	}},
}

// decodeTestResult renders the ANI-G optical diagnostics. Other classes
// support Test Result in the standard but have no decode path here; they
// come back as an explicit not-implemented marker.
func decodeTestResult(hdr FrameHeader, body []byte) Content {
	if hdr.Class != mib.AniG {
		return UnimplementedContent{Class: hdr.Class, Raw: dup(body)}
	}

	res := TestResultContent{Records: make([]TestRecord, 0, len(aniGTestSlots))}
	for _, slot := range aniGTestSlots {
		rec := TestRecord{Offset: slot.offset, ExpectedTag: slot.tag, Name: slot.name, Unit: slot.unit}
		if slot.offset+3 > len(body) {
			rec.Truncated = true
			res.Records = append(res.Records, rec)
			continue
		}
		rec.Tag = body[slot.offset]
		if rec.Tag != slot.tag {
			rec.Malformed = true
			res.Records = append(res.Records, rec)
			continue
		}
		rec.Raw = int16(binary.BigEndian.Uint16(body[slot.offset+1 : slot.offset+3]))
		rec.Value, rec.Supported = slot.scale(rec.Raw)
		res.Records = append(res.Records, rec)
	}
	return res
}
