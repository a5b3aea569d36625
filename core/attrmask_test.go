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

func TestSelectAttrsOrderAndOffsets(t *testing.T) {
	anig := mib.Lookup(mib.AniG)

	// attribute 1 (SR indication, 1 byte) and attribute 10 (Optical signal
	// level, 2 bytes): bit 1 is the MSB
	sel := selectAttrs(0x8040, anig)
	require.Len(t, sel, 2)

	assert.Equal(t, 1, sel[0].Index)
	assert.Equal(t, "SR indication", sel[0].Name)
	assert.Equal(t, 0, sel[0].Offset)
	assert.Equal(t, uint32(1), sel[0].Length)

	assert.Equal(t, 10, sel[1].Index)
	assert.Equal(t, "Optical signal level", sel[1].Name)
	assert.Equal(t, 1, sel[1].Offset) // cumulative: after the 1-byte SR indication
	assert.Equal(t, uint32(2), sel[1].Length)
}

func TestSelectAttrsIdempotent(t *testing.T) {
	anig := mib.Lookup(mib.AniG)
	first := selectAttrs(0xBEEF, anig)
	second := selectAttrs(0xBEEF, anig)
	assert.Equal(t, first, second)
}

func TestSelectAttrsUndefinedBits(t *testing.T) {
	// ONU data has a single attribute; bit 2 selects past the schema
	onuData := mib.Lookup(mib.OnuData)
	sel := selectAttrs(0xC000, onuData)
	require.Len(t, sel, 2)
	assert.Equal(t, "MIB data sync", sel[0].Name)
	assert.True(t, sel[1].Undefined)
	assert.Equal(t, 2, sel[1].Index)
}

func TestSelectAttrsAgainstEmptySchema(t *testing.T) {
	// reserved classes resolve to an attribute-less schema: every mask bit
	// is selected-but-undefined, never a failure
	sel := selectAttrs(0xFFFF, mib.Lookup(200))
	require.Len(t, sel, 16)
	for _, a := range sel {
		assert.True(t, a.Undefined)
	}
}

func TestSelectByCreate(t *testing.T) {
	gem := mib.Lookup(mib.GEMPortNetworkCTP)
	sel := selectByCreate(gem)
	require.NotEmpty(t, sel)

	offset := 0
	for _, a := range sel {
		assert.Equal(t, offset, a.Offset)
		assert.True(t, gem.Attrs[a.Index-1].SetByCreate)
		offset += int(a.Length)
	}
	// the non-set-by-create UNI counter must not be selected
	for _, a := range sel {
		assert.NotEqual(t, "UNI counter", a.Name)
	}
}

func TestReadAttrValuesClipsAtBufferBound(t *testing.T) {
	anig := mib.Lookup(mib.AniG)
	sel := selectAttrs(0x8040, anig) // 1 + 2 bytes wanted

	body := []byte{0x01, 0xd7} // second value is one byte short
	got, trunc := readAttrValues(sel, body, 0)

	assert.Equal(t, []byte{0x01}, got[0].Value)
	assert.False(t, got[0].Truncated)

	assert.True(t, got[1].Truncated)
	assert.Equal(t, []byte{0xd7}, got[1].Value)

	require.NotNil(t, trunc)
	assert.Equal(t, 2, trunc.Consumed)
	assert.Equal(t, 3, trunc.Expected)
}
