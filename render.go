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

package main

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"

	"gerrit.opencord.org/omci-decode/common/logger"
	"gerrit.opencord.org/omci-decode/core"
)

// summary builds the one-line protocol view: direction marker, padded
// message-type name, managed-entity class name.
func summary(f *core.Frame) string {
	direction := "ONU<"
	if f.Header.AR {
		direction = "OLT>"
	}
	return fmt.Sprintf("%s %-24s %s", direction, core.MsgTypeName(f.Header.MsgType), f.Schema.Name)
}

// render emits one decoded frame as a summary line with structured fields.
func render(f *core.Frame) {
	fields := log.Fields{
		"tci":      f.Header.TransactionID,
		"type":     core.MsgTypeName(f.Header.MsgType),
		"class":    f.Header.Class,
		"instance": f.Header.Instance,
	}
	if f.Header.DeviceID == core.DeviceIDExtended {
		fields["format"] = "extended"
	}
	if f.Trailer != nil {
		fields["cpcs_uu_cpi"] = fmt.Sprintf("0x%04x", f.Trailer.CpcsUUCpi)
		fields["cpcs_sdu_len"] = f.Trailer.CpcsSdu
		fields["crc32"] = fmt.Sprintf("0x%08x", f.Trailer.CRC32)
		fields["crc_ok"] = f.Trailer.CRCOk
	}

	addContentFields(fields, f.Content)
	logger.WithFields(fields).Info(summary(f))
}

func addContentFields(fields log.Fields, c core.Content) {
	fields["content"] = c.Kind()

	switch v := c.(type) {
	case core.GetRequest:
		fields["mask"] = fmt.Sprintf("0x%04x", v.Mask)
		fields["attrs"] = attrNames(v.Attrs)
		noteTruncation(fields, v.Truncated)
	case core.GetResponse:
		fields["result"] = core.ResultName(v.Result)
		fields["mask"] = fmt.Sprintf("0x%04x", v.Mask)
		fields["attrs"] = attrValues(v.Attrs)
		noteTruncation(fields, v.Truncated)
	case core.SetRequest:
		fields["mask"] = fmt.Sprintf("0x%04x", v.Mask)
		fields["attrs"] = attrValues(v.Attrs)
		noteTruncation(fields, v.Truncated)
	case core.SimpleResponse:
		fields["result"] = core.ResultName(v.Result)
		noteTruncation(fields, v.Truncated)
	case core.CreateRequest:
		fields["attrs"] = attrValues(v.Attrs)
		noteTruncation(fields, v.Truncated)
	case core.MibUploadResponse:
		fields["commands"] = v.Commands
		noteTruncation(fields, v.Truncated)
	case core.MibUploadNextRequest:
		fields["sequence"] = v.Sequence
		noteTruncation(fields, v.Truncated)
	case core.MibUploadNextResponse:
		fields["uploaded_class"] = fmt.Sprintf("%d (%s)", v.Class, v.Schema.Name)
		fields["uploaded_instance"] = v.Instance
		fields["mask"] = fmt.Sprintf("0x%04x", v.Mask)
		fields["attrs"] = attrValues(v.Attrs)
		noteTruncation(fields, v.Truncated)
	case core.TestRequest:
		fields["test"] = core.TestName(v.TestID)
		noteTruncation(fields, v.Truncated)
	case core.TestResultContent:
		fields["records"] = testRecords(v.Records)
	case core.AlarmContent:
		if v.AllClear() {
			fields["alarms"] = "all clear"
		} else {
			fields["alarms"] = v.Raised
		}
		fields["sequence"] = v.Sequence
		noteTruncation(fields, v.Truncated)
	case core.UnimplementedContent:
		fields["raw"] = hex.EncodeToString(v.Raw)
	case core.RawContent:
		fields["raw"] = hex.EncodeToString(v.Raw)
	}
}

func noteTruncation(fields log.Fields, t *core.Truncation) {
	if t != nil {
		fields["truncated"] = fmt.Sprintf("%d of %d bytes", t.Consumed, t.Expected)
	}
}

func attrNames(attrs []core.SelectedAttr) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.Undefined {
			out = append(out, fmt.Sprintf("attribute %d selected but undefined", a.Index))
			continue
		}
		out = append(out, a.Name)
	}
	return out
}

func attrValues(attrs []core.SelectedAttr) []string {
	out := make([]string, 0, len(attrs))
	for _, a := range attrs {
		switch {
		case a.Undefined:
			out = append(out, fmt.Sprintf("attribute %d selected but undefined", a.Index))
		case a.Truncated:
			out = append(out, fmt.Sprintf("%s = %s (truncated)", a.Name, hex.EncodeToString(a.Value)))
		default:
			out = append(out, fmt.Sprintf("%s = %s", a.Name, hex.EncodeToString(a.Value)))
		}
	}
	return out
}

func testRecords(records []core.TestRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		switch {
		case r.Truncated:
			out = append(out, fmt.Sprintf("%s: truncated", r.Name))
		case r.Malformed:
			out = append(out, fmt.Sprintf("%s: malformed record (tag %d, expected %d)", r.Name, r.Tag, r.ExpectedTag))
		case !r.Supported:
			out = append(out, fmt.Sprintf("%s: not supported", r.Name))
		default:
			out = append(out, fmt.Sprintf("%s: %.2f %s", r.Name, r.Value, r.Unit))
		}
	}
	return out
}
