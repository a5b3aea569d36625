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
)

func TestMsgTypeName(t *testing.T) {
	// every code in [4,29] has a standardized name
	for code := 4; code <= 29; code++ {
		name := MsgTypeName(OmciMsgType(code))
		assert.NotEmpty(t, name, "code %d", code)
		assert.NotEqual(t, "Reserved", name, "code %d", code)
	}
	// 0-3 and 30-31 have never been assigned
	for _, code := range []int{0, 1, 2, 3, 30, 31} {
		assert.Equal(t, "Reserved", MsgTypeName(OmciMsgType(code)), "code %d", code)
	}

	assert.Equal(t, "Create", MsgTypeName(Create))
	assert.Equal(t, "Get", MsgTypeName(Get))
	assert.Equal(t, "MIB Upload Next", MsgTypeName(MibUploadNext))
	assert.Equal(t, "Set Table", MsgTypeName(SetTable))
}

func TestResultName(t *testing.T) {
	assert.Equal(t, "success", ResultName(0))
	assert.Equal(t, "processing error", ResultName(1))
	assert.Equal(t, "instance exists", ResultName(7))
	assert.Equal(t, "attribute failed or unknown", ResultName(9))
	// 8 and everything past 9 fall through
	assert.Equal(t, "unknown", ResultName(8))
	assert.Equal(t, "unknown", ResultName(10))
	assert.Equal(t, "unknown", ResultName(255))
}

func TestTestName(t *testing.T) {
	for id := 0; id <= 255; id++ {
		name := TestName(byte(id))
		switch {
		case id <= 6:
			assert.Equal(t, "reserved", name, "id %d", id)
		case id == 7:
			assert.Equal(t, "self test", name)
		default:
			assert.Equal(t, "vendor specific", name, "id %d", id)
		}
	}
}
