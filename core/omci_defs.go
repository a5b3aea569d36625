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

//
// OMCI definitions
//

// OmciMsgType represents a OMCI message-type (bits 0-4 of the msgtype byte)
type OmciMsgType byte

const (
	// Message Types
	_                                    = iota
	Create                   OmciMsgType = 4
	CreateCompleteConnection OmciMsgType = 5
	Delete                   OmciMsgType = 6
	DeleteCompleteConnection OmciMsgType = 7
	Set                      OmciMsgType = 8
	Get                      OmciMsgType = 9
	GetCompleteConnection    OmciMsgType = 10
	GetAllAlarms             OmciMsgType = 11
	GetAllAlarmsNext         OmciMsgType = 12
	MibUpload                OmciMsgType = 13
	MibUploadNext            OmciMsgType = 14
	MibReset                 OmciMsgType = 15
	AlarmNotification        OmciMsgType = 16
	AttributeValueChange     OmciMsgType = 17
	Test                     OmciMsgType = 18
	StartSoftwareDownload    OmciMsgType = 19
	DownloadSection          OmciMsgType = 20
	EndSoftwareDownload      OmciMsgType = 21
	ActivateSoftware         OmciMsgType = 22
	CommitSoftware           OmciMsgType = 23
	SynchronizeTime          OmciMsgType = 24
	Reboot                   OmciMsgType = 25
	GetNext                  OmciMsgType = 26
	TestResult               OmciMsgType = 27
	GetCurrentData           OmciMsgType = 28
	SetTable                 OmciMsgType = 29 // Defined in Extended Message Set Only
)

// Device id values following the msgtype byte
const (
	DeviceIDBaseline byte = 0x0A // G.984.4 baseline message set
	DeviceIDExtended byte = 0x0B // G.988 extended message set (XG-PON)
)

// msgtype byte sub-fields
const (
	maskDB   byte = 0x80 // destination bit
	maskAR   byte = 0x40 // acknowledge request
	maskAK   byte = 0x20 // acknowledgement
	maskType byte = 0x1F
)

// MsgTypeName returns the standardized name for a message-type code.
// Codes 0-3 and 30-31 have never been assigned; the function is total.
func MsgTypeName(t OmciMsgType) string {
	switch t {
	case Create:
		return "Create"
	case CreateCompleteConnection:
		return "Create Complete Connection"
	case Delete:
		return "Delete"
	case DeleteCompleteConnection:
		return "Delete Complete Connection"
	case Set:
		return "Set"
	case Get:
		return "Get"
	case GetCompleteConnection:
		return "Get Complete Connection"
	case GetAllAlarms:
		return "Get All Alarms"
	case GetAllAlarmsNext:
		return "Get All Alarms Next"
	case MibUpload:
		return "MIB Upload"
	case MibUploadNext:
		return "MIB Upload Next"
	case MibReset:
		return "MIB Reset"
	case AlarmNotification:
		return "Alarm"
	case AttributeValueChange:
		return "Attribute Value Change"
	case Test:
		return "Test"
	case StartSoftwareDownload:
		return "Start Software Download"
	case DownloadSection:
		return "Download Section"
	case EndSoftwareDownload:
		return "End Software Download"
	case ActivateSoftware:
		return "Activate Software"
	case CommitSoftware:
		return "Commit Software"
	case SynchronizeTime:
		return "Synchronize Time"
	case Reboot:
		return "Reboot"
	case GetNext:
		return "Get Next"
	case TestResult:
		return "Test Result"
	case GetCurrentData:
		return "Get Current Data"
	case SetTable:
		return "Set Table"
	default:
		return "Reserved"
	}
}

// ResultName returns the name of a response result/reason code.
func ResultName(code byte) string {
	switch code {
	case 0:
		return "success"
	case 1:
		return "processing error"
	case 2:
		return "not supported"
	case 3:
		return "parameter error"
	case 4:
		return "unknown managed entity"
	case 5:
		return "unknown instance"
	case 6:
		return "device busy"
	case 7:
		return "instance exists" // only valid in a Create response
	case 9:
		return "attribute failed or unknown"
	default:
		return "unknown"
	}
}

// TestName classifies a Test message test id.
func TestName(id byte) string {
	switch {
	case id <= 6:
		return "reserved"
	case id == 7:
		return "self test"
	default:
		return "vendor specific"
	}
}
