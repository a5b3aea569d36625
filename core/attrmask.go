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

import "gerrit.opencord.org/omci-decode/mib"

// SelectedAttr is one attribute picked out of a schema by the attribute
// mask (or by set-by-create order for Create requests). Offset is the
// cumulative byte offset within the value region, before the per-path base.
type SelectedAttr struct {
	Index     int // 1-based position in the schema
	Name      string
	Offset    int
	Length    uint32
	Value     []byte // nil when the message carries names only
	Undefined bool   // mask bit past the schema's attribute count
	Truncated bool   // value clipped at the buffer bound
}

// selectAttrs yields the schema attributes selected by the 16-bit mask in
// ascending index order. Bit (16-i) of the mask selects attribute i. Mask
// bits beyond the schema's attribute count are reported as selected but
// undefined, never rejected.
func selectAttrs(mask uint16, schema mib.Schema) []SelectedAttr {
	var sel []SelectedAttr
	offset := 0
	for i := 1; i <= 16; i++ {
		if mask&(1<<uint(16-i)) == 0 {
			continue
		}
		if i > len(schema.Attrs) {
			sel = append(sel, SelectedAttr{Index: i, Undefined: true})
			continue
		}
		a := schema.Attrs[i-1]
		sel = append(sel, SelectedAttr{Index: i, Name: a.Name, Offset: offset, Length: a.Length})
		offset += int(a.Length)
	}
	return sel
}

// selectByCreate yields the schema's set-by-create attributes in order,
// with cumulative offsets. Create requests carry no mask.
func selectByCreate(schema mib.Schema) []SelectedAttr {
	var sel []SelectedAttr
	offset := 0
	for i, a := range schema.Attrs {
		if !a.SetByCreate {
			continue
		}
		sel = append(sel, SelectedAttr{Index: i + 1, Name: a.Name, Offset: offset, Length: a.Length})
		offset += int(a.Length)
	}
	return sel
}

// readAttrValues fills the selection with value bytes read from body at
// base plus each cumulative offset. Reads are clipped hard at the buffer
// bound: a value that does not fit is kept partial and flagged, and the
// overall shortfall is reported as a Truncation.
func readAttrValues(sel []SelectedAttr, body []byte, base int) ([]SelectedAttr, *Truncation) {
	var trunc *Truncation
	for i := range sel {
		if sel[i].Undefined {
			continue
		}
		start := base + sel[i].Offset
		end := start + int(sel[i].Length)
		if end <= len(body) {
			sel[i].Value = dup(body[start:end])
			continue
		}
		sel[i].Truncated = true
		if start < len(body) {
			sel[i].Value = dup(body[start:])
		}
		if trunc == nil {
			trunc = &Truncation{Consumed: len(body)}
		}
		trunc.Expected = end
	}
	return sel, trunc
}
