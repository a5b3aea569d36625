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

package mib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownClasses(t *testing.T) {
	s := Lookup(6)
	assert.Equal(t, "Circuit Pack", s.Name)
	assert.Equal(t, uint16(6), s.ClassID)
	require.NotEmpty(t, s.Attrs)
	assert.Equal(t, "Type", s.Attrs[0].Name)
	assert.True(t, s.Attrs[0].SetByCreate)

	anig := Lookup(AniG)
	assert.Equal(t, "ANI-G", anig.Name)
	require.Len(t, anig.Attrs, 16)
	assert.Equal(t, "SR indication", anig.Attrs[0].Name)
	assert.Equal(t, "Upper transmit power threshold", anig.Attrs[15].Name)

	gem := Lookup(GEMPortNetworkCTP)
	assert.Equal(t, "GEM port network CTP", gem.Name)
	assert.Equal(t, uint32(2), gem.Attrs[0].Length)
}

func TestLookupReservedRanges(t *testing.T) {
	cases := []struct {
		classID uint16
		name    string
	}{
		{172, "reserved for future B-PON managed entities"},
		{239, "reserved for future B-PON managed entities"},
		{240, "reserved for vendor-specific managed entities"},
		{255, "reserved for vendor-specific managed entities"},
		{350, "reserved for vendor-specific use"},
		{399, "reserved for vendor-specific use"},
		{462, "reserved for future standardization"},
		{65279, "reserved for future standardization"},
		{65280, "reserved for vendor-specific use"},
		{65535, "reserved for vendor-specific use"},
		{3, "unclassified (3)"},
	}
	for _, c := range cases {
		s := Lookup(c.classID)
		assert.Equal(t, c.name, s.Name, "class %d", c.classID)
		assert.Empty(t, s.Attrs, "class %d", c.classID)
	}
}

// Lookup must be total over uint16: every id resolves to a named schema.
func TestLookupIsTotal(t *testing.T) {
	for id := 0; id <= 0xFFFF; id++ {
		s := Lookup(uint16(id))
		require.NotEmpty(t, s.Name, "class %d", id)
		require.Equal(t, uint16(id), s.ClassID)
	}
}

// The attribute mask is 16 bits wide, so no schema may define more than 16
// attributes, and every attribute needs a name and a nonzero width.
func TestSchemaShape(t *testing.T) {
	for id, s := range classes {
		require.LessOrEqual(t, len(s.Attrs), 16, "class %d", id)
		for i, a := range s.Attrs {
			assert.NotEmpty(t, a.Name, "class %d attr %d", id, i+1)
			assert.NotZero(t, a.Length, "class %d attr %d", id, i+1)
		}
	}
}
