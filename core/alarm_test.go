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
)

func TestAlarmAllClear(t *testing.T) {
	body := make([]byte, 32)
	body[31] = 0x05 // sequence number

	c := decodeAlarm(body)
	a, ok := c.(AlarmContent)
	require.True(t, ok)
	assert.True(t, a.AllClear())
	assert.Empty(t, a.Raised)
	assert.Equal(t, byte(0x05), a.Sequence)
	assert.Nil(t, a.Truncated)
}

func TestAlarmBitNumbering(t *testing.T) {
	body := make([]byte, 32)
	body[3] = 0x04 // byte 3, bit 2

	a := decodeAlarm(body).(AlarmContent)
	assert.Equal(t, []int{26}, a.Raised) // 3*8 + 2
	assert.False(t, a.AllClear())
}

func TestAlarmMultipleBits(t *testing.T) {
	body := make([]byte, 32)
	body[0] = 0x03  // alarms 0 and 1
	body[27] = 0x80 // alarm 223, the last slot

	a := decodeAlarm(body).(AlarmContent)
	assert.Equal(t, []int{0, 1, 223}, a.Raised)
}

func TestAlarmTruncatedBitmap(t *testing.T) {
	// only four bitmap bytes made it; the decoder reports what fit and how
	// much was expected, and never reads past the bound
	body := []byte{0x00, 0x00, 0x00, 0x04}

	a := decodeAlarm(body).(AlarmContent)
	assert.Equal(t, []int{26}, a.Raised)
	require.NotNil(t, a.Truncated)
	assert.Equal(t, 4, a.Truncated.Consumed)
	assert.Equal(t, 32, a.Truncated.Expected)
}
