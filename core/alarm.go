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

const (
	alarmBitmapLen = 28
	alarmSlots     = alarmBitmapLen * 8
)

// AlarmContent is a decoded Alarm notification: the set of raised alarm
// numbers out of the 224 bitmap slots, plus the raw sequence byte. An empty
// Raised set is a valid all-clear state, not an error. Alarm messages carry
// no result code.
type AlarmContent struct {
	Raised    []int
	Sequence  byte
	Truncated *Truncation
}

// AllClear reports whether no alarm bit is raised.
func (a AlarmContent) AllClear() bool { return len(a.Raised) == 0 }

// decodeAlarm walks the 28-byte bitmap. Alarm number n lives in byte n/8,
// bit n%8, scanning bits LSB first within each byte. The bitmap is followed
// by 3 padding bytes and 1 sequence-number byte.
func decodeAlarm(body []byte) Content {
	bitmap := body
	if len(bitmap) > alarmBitmapLen {
		bitmap = bitmap[:alarmBitmapLen]
	}

	a := AlarmContent{}
	for n := 0; n < len(bitmap)*8 && n < alarmSlots; n++ {
		if bitmap[n/8]&(1<<uint(n%8)) != 0 {
			a.Raised = append(a.Raised, n)
		}
	}

	if len(body) < contentLen {
		a.Truncated = &Truncation{Consumed: len(body), Expected: contentLen}
		return a
	}
	a.Sequence = body[contentLen-1]
	return a
}
