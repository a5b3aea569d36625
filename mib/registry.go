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

// Package mib holds the managed-entity class registry: the per-class
// attribute schemas the OMCI decoder resolves class ids against.
package mib

import "fmt"

// AttrSpec describes one attribute slot of a managed-entity class.
// Position within the owning schema is significant: it defines the 1-based
// attribute index the attribute mask bits refer to, and the attribute's
// position in the on-wire attribute list.
type AttrSpec struct {
	Name        string
	Length      uint32
	SetByCreate bool
}

// Schema is the decode-side view of one managed-entity class: its name and
// the ordered attribute list. Schemas for unknown classes carry a
// reserved-range name and no attributes.
type Schema struct {
	ClassID uint16
	Name    string
	Attrs   []AttrSpec
}

// Managed Entity Class values referenced from the decoder
const (
	OnuData           uint16 = 2
	CircuitPack       uint16 = 6
	AniG              uint16 = 263
	TCont             uint16 = 262
	GEMPortNetworkCTP uint16 = 268
)

// Lookup resolves a managed-entity class id to its schema. It is total over
// uint16: ids outside the static table get an attribute-less schema whose
// name follows the reserved-range rules of G.984.4/G.988 clause 11.
func Lookup(classID uint16) Schema {
	if s, ok := classes[classID]; ok {
		s.ClassID = classID
		return s
	}
	return Schema{ClassID: classID, Name: reservedName(classID)}
}

func reservedName(classID uint16) string {
	switch {
	case classID >= 172 && classID <= 239:
		return "reserved for future B-PON managed entities"
	case classID >= 240 && classID <= 255:
		return "reserved for vendor-specific managed entities"
	case classID >= 350 && classID <= 399:
		return "reserved for vendor-specific use"
	case classID >= 462 && classID <= 65279:
		return "reserved for future standardization"
	case classID >= 65280:
		return "reserved for vendor-specific use"
	default:
		return fmt.Sprintf("unclassified (%d)", classID)
	}
}
