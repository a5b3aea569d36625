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

// Static managed-entity class table (G.984.4 / G.988). Attribute order
// follows the standard: bit 1 of the attribute mask (MSB) selects the first
// entry. The managed-entity id attribute is implicit and not listed.
// Adding a class is a pure data addition here.
var classes = map[uint16]Schema{
	2: {Name: "ONU data", Attrs: []AttrSpec{
		{"MIB data sync", 1, false},
	}},
	5: {Name: "Cardholder", Attrs: []AttrSpec{
		{"Actual plug-in unit type", 1, false},
		{"Expected plug-in unit type", 1, false},
		{"Expected port count", 1, false},
		{"Expected equipment id", 20, false},
		{"Actual equipment id", 20, false},
		{"Protection profile pointer", 1, false},
		{"Invoke protection switch", 1, false},
		{"ARC", 1, false},
		{"ARC interval", 1, false},
	}},
	6: {Name: "Circuit Pack", Attrs: []AttrSpec{
		{"Type", 1, true},
		{"Number of ports", 1, false},
		{"Serial number", 8, false},
		{"Version", 14, false},
		{"Vendor id", 4, false},
		{"Administrative state", 1, false},
		{"Operational state", 1, false},
		{"Bridged or IP ind", 1, false},
		{"Equipment id", 20, false},
		{"Card configuration", 1, true},
		{"Total T-CONT buffer number", 1, false},
		{"Total priority queue number", 1, false},
		{"Total traffic scheduler number", 1, false},
		{"Power shed override", 4, false},
	}},
	7: {Name: "Software image", Attrs: []AttrSpec{
		{"Version", 14, false},
		{"Is committed", 1, false},
		{"Is active", 1, false},
		{"Is valid", 1, false},
		{"Product code", 25, false},
		{"Image hash", 16, false},
	}},
	11: {Name: "Physical path termination point Ethernet UNI", Attrs: []AttrSpec{
		{"Expected type", 1, false},
		{"Sensed type", 1, false},
		{"Auto detection configuration", 1, false},
		{"Ethernet loopback configuration", 1, false},
		{"Administrative state", 1, false},
		{"Operational state", 1, false},
		{"Configuration ind", 1, false},
		{"Max frame size", 2, false},
		{"DTE or DCE ind", 1, false},
		{"Pause time", 2, false},
		{"Bridged or IP ind", 1, false},
		{"ARC", 1, false},
		{"ARC interval", 1, false},
		{"PPPoE filter", 1, false},
		{"Power control", 1, false},
	}},
	24: {Name: "Ethernet performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"FCS errors", 4, false},
		{"Excessive collision counter", 4, false},
		{"Late collision counter", 4, false},
		{"Frames too long", 4, false},
		{"Buffer overflows on receive", 4, false},
		{"Buffer overflows on transmit", 4, false},
		{"Single collision frame counter", 4, false},
		{"Multiple collisions frame counter", 4, false},
		{"SQE counter", 4, false},
		{"Deferred transmission counter", 4, false},
		{"Internal MAC transmit error counter", 4, false},
		{"Carrier sense error counter", 4, false},
		{"Alignment error counter", 4, false},
		{"Internal MAC receive error counter", 4, false},
	}},
	45: {Name: "MAC bridge service profile", Attrs: []AttrSpec{
		{"Spanning tree ind", 1, true},
		{"Learning ind", 1, true},
		{"Port bridging ind", 1, true},
		{"Priority", 2, true},
		{"Max age", 2, true},
		{"Hello time", 2, true},
		{"Forward delay", 2, true},
		{"Unknown MAC address discard", 1, true},
		{"MAC learning depth", 1, true},
		{"Dynamic filtering ageing time", 4, true},
	}},
	46: {Name: "MAC bridge configuration data", Attrs: []AttrSpec{
		{"Bridge MAC address", 6, false},
		{"Bridge priority", 2, false},
		{"Designated root", 8, false},
		{"Root path cost", 4, false},
		{"Bridge port count", 1, false},
		{"Root port num", 2, false},
		{"Hello time", 2, false},
		{"Forward delay", 2, false},
	}},
	47: {Name: "MAC bridge port configuration data", Attrs: []AttrSpec{
		{"Bridge id pointer", 2, true},
		{"Port num", 1, true},
		{"TP type", 1, true},
		{"TP pointer", 2, true},
		{"Port priority", 2, true},
		{"Port path cost", 2, true},
		{"Port spanning tree ind", 1, true},
		{"Deprecated 1", 1, false},
		{"Deprecated 2", 1, false},
		{"Port MAC address", 6, false},
		{"Outbound TD pointer", 2, false},
		{"Inbound TD pointer", 2, false},
		{"MAC learning depth", 1, true},
	}},
	48: {Name: "MAC bridge port designation data", Attrs: []AttrSpec{
		{"Designated bridge root cost port", 24, false},
		{"Port state", 1, false},
	}},
	49: {Name: "MAC bridge port filter table data", Attrs: []AttrSpec{
		{"MAC filter table", 8, false},
	}},
	50: {Name: "MAC bridge port bridge table data", Attrs: []AttrSpec{
		{"Bridge table", 8, false},
	}},
	51: {Name: "MAC bridge performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Bridge learning entry discard count", 4, false},
	}},
	52: {Name: "MAC bridge port performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Forwarded frame counter", 4, false},
		{"Delay exceeded discard counter", 4, false},
		{"MTU exceeded discard counter", 4, false},
		{"Received frame counter", 4, false},
		{"Received and discarded counter", 4, false},
	}},
	53: {Name: "Physical path termination point POTS UNI", Attrs: []AttrSpec{
		{"Administrative state", 1, false},
		{"Deprecated", 2, false},
		{"ARC", 1, false},
		{"ARC interval", 1, false},
		{"Impedance", 1, false},
		{"Transmission path", 1, false},
		{"Rx gain", 1, false},
		{"Tx gain", 1, false},
		{"Operational state", 1, false},
		{"Hook state", 1, false},
		{"POTS holdover time", 2, false},
		{"Nominal feed voltage", 1, false},
	}},
	58: {Name: "Voice service profile", Attrs: []AttrSpec{
		{"Announcement type", 1, true},
		{"Jitter target", 2, true},
		{"Jitter buffer max", 2, true},
		{"Echo cancel ind", 1, true},
		{"PSTN protocol variant", 2, true},
		{"DTMF digit levels", 2, true},
		{"DTMF digit duration", 2, true},
		{"Hook flash minimum time", 2, true},
		{"Hook flash maximum time", 2, true},
		{"Tone pattern table", 20, false},
		{"Tone event table", 7, false},
		{"Ringing pattern table", 5, false},
		{"Ringing event table", 7, false},
		{"Network specific extensions pointer", 2, true},
	}},
	78: {Name: "VLAN tagging operation configuration data", Attrs: []AttrSpec{
		{"Upstream VLAN tagging operation mode", 1, true},
		{"Upstream VLAN tag TCI value", 2, true},
		{"Downstream VLAN tagging operation mode", 1, true},
		{"Association type", 1, true},
		{"Associated ME pointer", 2, true},
	}},
	79: {Name: "MAC bridge port filter pre-assign table", Attrs: []AttrSpec{
		{"IPv4 multicast filtering", 1, false},
		{"IPv6 multicast filtering", 1, false},
		{"IPv4 broadcast filtering", 1, false},
		{"RARP filtering", 1, false},
		{"IPX filtering", 1, false},
		{"NetBEUI filtering", 1, false},
		{"AppleTalk filtering", 1, false},
		{"Bridge management information filtering", 1, false},
		{"ARP filtering", 1, false},
		{"PPPoE filtering", 1, false},
	}},
	82: {Name: "Physical path termination point video UNI", Attrs: []AttrSpec{
		{"Administrative state", 1, false},
		{"Operational state", 1, false},
		{"ARC", 1, false},
		{"ARC interval", 1, false},
		{"Power control", 1, false},
	}},
	83: {Name: "Physical path termination point LCT UNI", Attrs: []AttrSpec{
		{"Administrative state", 1, false},
	}},
	84: {Name: "VLAN tagging filter data", Attrs: []AttrSpec{
		{"VLAN filter list", 24, true},
		{"Forward operation", 1, true},
		{"Number of entries", 1, true},
	}},
	89: {Name: "Ethernet performance monitoring history data 2", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"PPPoE filtered frame counter", 4, false},
	}},
	90: {Name: "Physical path termination point video ANI", Attrs: []AttrSpec{
		{"Administrative state", 1, false},
		{"Operational state", 1, false},
		{"ARC", 1, false},
		{"ARC interval", 1, false},
		{"Frequency range low", 1, false},
		{"Frequency range high", 1, false},
		{"Signal capability", 1, false},
		{"Optical signal level", 1, false},
		{"Pilot signal level", 1, false},
		{"Signal level min", 1, false},
		{"Signal level max", 1, false},
		{"Pilot frequency", 4, false},
		{"AGC mode", 1, false},
		{"AGC setting", 1, false},
		{"Video lower optical threshold", 1, false},
		{"Video upper optical threshold", 1, false},
	}},
	130: {Name: "802.1p mapper service profile", Attrs: []AttrSpec{
		{"TP pointer", 2, true},
		{"Interwork TP pointer for P-bit priority 0", 2, true},
		{"Interwork TP pointer for P-bit priority 1", 2, true},
		{"Interwork TP pointer for P-bit priority 2", 2, true},
		{"Interwork TP pointer for P-bit priority 3", 2, true},
		{"Interwork TP pointer for P-bit priority 4", 2, true},
		{"Interwork TP pointer for P-bit priority 5", 2, true},
		{"Interwork TP pointer for P-bit priority 6", 2, true},
		{"Interwork TP pointer for P-bit priority 7", 2, true},
		{"Unmarked frame option", 1, true},
		{"DSCP to P-bit mapping", 24, false},
		{"Default P-bit assumption", 1, true},
		{"TP type", 1, true},
	}},
	131: {Name: "OLT-G", Attrs: []AttrSpec{
		{"OLT vendor id", 4, false},
		{"Equipment id", 20, false},
		{"Version", 14, false},
		{"Time of day information", 14, false},
	}},
	133: {Name: "ONU power shedding", Attrs: []AttrSpec{
		{"Restore power timer reset interval", 2, false},
		{"Data class shedding interval", 2, false},
		{"Voice class shedding interval", 2, false},
		{"Video overlay class shedding interval", 2, false},
		{"Video return class shedding interval", 2, false},
		{"DSL class shedding interval", 2, false},
		{"ATM class shedding interval", 2, false},
		{"CES class shedding interval", 2, false},
		{"Frame class shedding interval", 2, false},
		{"SDH-SONET class shedding interval", 2, false},
		{"Shedding status", 2, false},
	}},
	134: {Name: "IP host config data", Attrs: []AttrSpec{
		{"IP options", 1, false},
		{"MAC address", 6, false},
		{"ONU identifier", 25, false},
		{"IP address", 4, false},
		{"Mask", 4, false},
		{"Gateway", 4, false},
		{"Primary DNS", 4, false},
		{"Secondary DNS", 4, false},
		{"Current address", 4, false},
		{"Current mask", 4, false},
		{"Current gateway", 4, false},
		{"Current primary DNS", 4, false},
		{"Current secondary DNS", 4, false},
		{"Domain name", 25, false},
		{"Host name", 25, false},
		{"Relay agent options", 2, false},
	}},
	136: {Name: "TCP/UDP config data", Attrs: []AttrSpec{
		{"Port id", 2, true},
		{"Protocol", 1, true},
		{"TOS/diffserv field", 1, true},
		{"IP host pointer", 2, true},
	}},
	137: {Name: "Network address", Attrs: []AttrSpec{
		{"Security pointer", 2, true},
		{"Address pointer", 2, true},
	}},
	138: {Name: "VoIP config data", Attrs: []AttrSpec{
		{"Available signalling protocols", 1, false},
		{"Signalling protocol used", 1, false},
		{"Available VoIP configuration methods", 4, false},
		{"VoIP configuration method used", 1, false},
		{"VoIP configuration address pointer", 2, false},
		{"VoIP configuration state", 1, false},
		{"Retrieve profile", 1, false},
		{"Profile version", 25, false},
	}},
	139: {Name: "VoIP voice CTP", Attrs: []AttrSpec{
		{"User protocol pointer", 2, true},
		{"PPTP pointer", 2, true},
		{"VoIP media profile pointer", 2, true},
		{"Signalling code", 1, true},
	}},
	140: {Name: "Call control performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Call setup failures", 4, false},
		{"Call setup timer", 4, false},
		{"Call terminate failures", 4, false},
		{"Analog port releases", 4, false},
		{"Analog port off-hook timer", 4, false},
	}},
	141: {Name: "VoIP line status", Attrs: []AttrSpec{
		{"Voip codec used", 2, false},
		{"Voip voice server status", 1, false},
		{"Voip port session type", 1, false},
		{"Voip call 1 packet period", 2, false},
		{"Voip call 2 packet period", 2, false},
		{"Voip call 1 dest addr", 25, false},
		{"Voip call 2 dest addr", 25, false},
		{"Voip line state", 1, false},
		{"Emergency call status", 1, false},
	}},
	142: {Name: "VoIP media profile", Attrs: []AttrSpec{
		{"Fax mode", 1, true},
		{"Voice service profile pointer", 2, true},
		{"Codec selection (1st order)", 1, true},
		{"Packet period selection (1st order)", 1, true},
		{"Silence suppression (1st order)", 1, true},
		{"Codec selection (2nd order)", 1, true},
		{"Packet period selection (2nd order)", 1, true},
		{"Silence suppression (2nd order)", 1, true},
		{"Codec selection (3rd order)", 1, true},
		{"Packet period selection (3rd order)", 1, true},
		{"Silence suppression (3rd order)", 1, true},
		{"Codec selection (4th order)", 1, true},
		{"Packet period selection (4th order)", 1, true},
		{"Silence suppression (4th order)", 1, true},
		{"OOB DTMF", 1, true},
		{"RTP profile pointer", 2, true},
	}},
	143: {Name: "RTP profile data", Attrs: []AttrSpec{
		{"Local port min", 2, true},
		{"Local port max", 2, true},
		{"DSCP mark", 1, true},
		{"Piggyback events", 1, true},
		{"Tone events", 1, true},
		{"DTMF events", 1, true},
		{"CAS events", 1, true},
		{"IP host config pointer", 2, false},
	}},
	144: {Name: "RTP performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"RTP errors", 4, false},
		{"Packet loss", 4, false},
		{"Maximum jitter", 4, false},
		{"Max time between RTCP packets", 4, false},
		{"Buffer underflows", 4, false},
		{"Buffer overflows", 4, false},
	}},
	145: {Name: "Network dial plan table", Attrs: []AttrSpec{
		{"Dial plan number", 2, false},
		{"Dial plan table max size", 2, true},
		{"Critical dial timeout", 2, true},
		{"Partial dial timeout", 2, true},
		{"Dial plan format", 1, true},
		{"Dial plan table", 30, false},
	}},
	146: {Name: "VoIP application service profile", Attrs: []AttrSpec{
		{"CID features", 1, true},
		{"Call waiting features", 1, true},
		{"Call progress or transfer features", 2, true},
		{"Call presentation features", 2, true},
		{"Direct connect feature", 1, true},
		{"Direct connect URI pointer", 2, true},
		{"Bridged line agent URI pointer", 2, true},
		{"Conference factory URI pointer", 2, true},
		{"Dial tone feature delay/timeout", 2, false},
	}},
	147: {Name: "VoIP feature access codes", Attrs: []AttrSpec{
		{"Cancel call waiting", 5, false},
		{"Call hold", 5, false},
		{"Call park", 5, false},
		{"Caller id activate", 5, false},
		{"Caller id deactivate", 5, false},
		{"Do not disturb activation", 5, false},
		{"Do not disturb deactivation", 5, false},
		{"Do not disturb PIN change", 5, false},
		{"Emergency service number", 5, false},
		{"Intercom service", 5, false},
	}},
	148: {Name: "Authentication security method", Attrs: []AttrSpec{
		{"Validation scheme", 1, false},
		{"Username 1", 25, false},
		{"Password", 25, false},
		{"Realm", 25, false},
		{"Username 2", 25, false},
	}},
	150: {Name: "SIP agent config data", Attrs: []AttrSpec{
		{"Proxy server address pointer", 2, true},
		{"Outbound proxy address pointer", 2, true},
		{"Primary SIP DNS", 4, true},
		{"Secondary SIP DNS", 4, true},
		{"TCP/UDP pointer", 2, false},
		{"SIP reg exp time", 4, false},
		{"SIP rereg head start time", 4, false},
		{"Host part URI", 2, true},
		{"SIP status", 1, false},
		{"SIP registrar", 2, true},
		{"Softswitch", 4, true},
		{"SIP response table", 5, false},
		{"SIP option transmit control", 1, true},
		{"SIP URI format", 1, true},
		{"Redundant SIP agent pointer", 2, true},
	}},
	151: {Name: "SIP agent performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Transactions", 4, false},
		{"Rx invite reqs", 4, false},
		{"Rx invite retrans", 4, false},
		{"Rx noninvite reqs", 4, false},
		{"Rx noninvite retrans", 4, false},
		{"Rx response", 4, false},
		{"Rx response retransmissions", 4, false},
		{"Tx invite reqs", 4, false},
		{"Tx invite retrans", 4, false},
		{"Tx noninvite reqs", 4, false},
		{"Tx noninvite retrans", 4, false},
		{"Tx response", 4, false},
		{"Tx response retransmissions", 4, false},
	}},
	152: {Name: "SIP call initiation performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Failed to connect counter", 4, false},
		{"Failed to validate counter", 4, false},
		{"Timeout counter", 4, false},
		{"Failure received counter", 4, false},
		{"Failed to authenticate counter", 4, false},
	}},
	153: {Name: "SIP user data", Attrs: []AttrSpec{
		{"SIP agent pointer", 2, true},
		{"User part AOR", 2, true},
		{"SIP display name", 25, false},
		{"Username/password", 2, true},
		{"Voicemail server URI", 2, true},
		{"Voicemail subscription expiration time", 4, true},
		{"Network dial plan pointer", 2, true},
		{"Application services profile pointer", 2, true},
		{"Feature code pointer", 2, true},
		{"PPTP pointer", 2, true},
		{"Release timer", 1, false},
		{"ROH timer", 1, false},
	}},
	155: {Name: "MGC config data", Attrs: []AttrSpec{
		{"Primary MGC", 2, true},
		{"Secondary MGC", 2, true},
		{"TCP/UDP pointer", 2, true},
		{"Version", 1, true},
		{"Message format", 1, true},
		{"Maximum retry time", 2, false},
		{"Maximum retry attempts", 2, false},
		{"Service change delay", 2, false},
		{"Termination id base", 25, false},
		{"Softswitch", 4, true},
	}},
	156: {Name: "MGC performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Received messages", 4, false},
		{"Received octets", 4, false},
		{"Sent messages", 4, false},
		{"Sent octets", 4, false},
		{"Protocol errors", 4, false},
		{"Transport losses", 4, false},
		{"Last detected event", 1, false},
		{"Last detected event time", 4, false},
		{"Last detected reset time", 4, false},
	}},
	157: {Name: "Large string", Attrs: []AttrSpec{
		{"Number of parts", 1, false},
		{"Part 1", 25, false},
		{"Part 2", 25, false},
		{"Part 3", 25, false},
		{"Part 4", 25, false},
		{"Part 5", 25, false},
		{"Part 6", 25, false},
		{"Part 7", 25, false},
		{"Part 8", 25, false},
		{"Part 9", 25, false},
		{"Part 10", 25, false},
		{"Part 11", 25, false},
		{"Part 12", 25, false},
		{"Part 13", 25, false},
		{"Part 14", 25, false},
		{"Part 15", 25, false},
	}},
	158: {Name: "ONU remote debug", Attrs: []AttrSpec{
		{"Command format", 1, false},
		{"Command", 25, false},
		{"Reply table", 25, false},
	}},
	159: {Name: "Equipment protection profile", Attrs: []AttrSpec{
		{"Protect slot 1", 1, true},
		{"Protect slot 2", 1, true},
		{"Working slot 1", 1, true},
		{"Working slot 2", 1, true},
		{"Protect status 1", 1, false},
		{"Protect status 2", 1, false},
		{"Revertive ind", 1, false},
		{"Wait to restore time", 1, false},
	}},
	160: {Name: "Equipment extension package", Attrs: []AttrSpec{
		{"Environmental sense", 2, false},
		{"Contact closure output", 2, false},
	}},
	171: {Name: "Extended VLAN tagging operation configuration data", Attrs: []AttrSpec{
		{"Association type", 1, true},
		{"Received frame VLAN tagging operation table max size", 2, false},
		{"Input TPID", 2, false},
		{"Output TPID", 2, false},
		{"Downstream mode", 1, false},
		{"Received frame VLAN tagging operation table", 16, false},
		{"Associated ME pointer", 2, true},
		{"DSCP to P-bit mapping", 24, false},
	}},
	256: {Name: "ONU-G", Attrs: []AttrSpec{
		{"Vendor id", 4, false},
		{"Version", 14, false},
		{"Serial number", 8, false},
		{"Traffic management option", 1, false},
		{"Deprecated", 1, false},
		{"Battery backup", 1, false},
		{"Administrative state", 1, false},
		{"Operational state", 1, false},
		{"ONU survival time", 1, false},
		{"Logical ONU id", 24, false},
		{"Logical password", 12, false},
		{"Credentials status", 1, false},
		{"Extended TC-layer options", 2, false},
	}},
	257: {Name: "ONU2-G", Attrs: []AttrSpec{
		{"Equipment id", 20, false},
		{"OMCC version", 1, false},
		{"Vendor product code", 2, false},
		{"Security capability", 1, false},
		{"Security mode", 1, false},
		{"Total priority queue number", 2, false},
		{"Total traffic scheduler number", 1, false},
		{"Deprecated", 1, false},
		{"Total GEM port number", 2, false},
		{"SysUpTime", 4, false},
		{"Connectivity capability", 2, false},
		{"Current connectivity mode", 1, false},
		{"QoS configuration flexibility", 2, false},
		{"Priority queue scale factor", 2, false},
	}},
	262: {Name: "T-CONT", Attrs: []AttrSpec{
		{"Alloc-id", 2, false},
		{"Deprecated", 1, false},
		{"Policy", 1, false},
	}},
	263: {Name: "ANI-G", Attrs: []AttrSpec{
		{"SR indication", 1, false},
		{"Total T-CONT number", 2, false},
		{"GEM block length", 2, false},
		{"Piggyback DBA reporting", 1, false},
		{"Deprecated", 1, false},
		{"SF threshold", 1, false},
		{"SD threshold", 1, false},
		{"ARC", 1, false},
		{"ARC interval", 1, false},
		{"Optical signal level", 2, false},
		{"Lower optical threshold", 1, false},
		{"Upper optical threshold", 1, false},
		{"ONU response time", 2, false},
		{"Transmit optical level", 2, false},
		{"Lower transmit power threshold", 1, false},
		{"Upper transmit power threshold", 1, false},
	}},
	264: {Name: "UNI-G", Attrs: []AttrSpec{
		{"Deprecated", 2, false},
		{"Administrative state", 1, false},
		{"Management capability", 1, false},
		{"Non-OMCI management identifier", 2, false},
		{"Relay agent options", 2, false},
	}},
	266: {Name: "GEM interworking termination point", Attrs: []AttrSpec{
		{"GEM port network CTP connectivity pointer", 2, true},
		{"Interworking option", 1, true},
		{"Service profile pointer", 2, true},
		{"Interworking TP pointer", 2, true},
		{"PPTP counter", 1, false},
		{"Operational state", 1, false},
		{"GAL profile pointer", 2, true},
		{"GAL loopback configuration", 1, false},
	}},
	268: {Name: "GEM port network CTP", Attrs: []AttrSpec{
		{"Port id", 2, true},
		{"T-CONT pointer", 2, true},
		{"Direction", 1, true},
		{"Traffic management pointer upstream", 2, true},
		{"Traffic descriptor profile pointer upstream", 2, true},
		{"UNI counter", 1, false},
		{"Priority queue pointer downstream", 2, true},
		{"Encryption state", 1, false},
		{"Traffic descriptor profile pointer downstream", 2, true},
		{"Encryption key ring", 1, true},
	}},
	272: {Name: "GAL Ethernet profile", Attrs: []AttrSpec{
		{"Maximum GEM payload size", 2, true},
	}},
	273: {Name: "Threshold data 1", Attrs: []AttrSpec{
		{"Threshold value 1", 4, true},
		{"Threshold value 2", 4, true},
		{"Threshold value 3", 4, true},
		{"Threshold value 4", 4, true},
		{"Threshold value 5", 4, true},
		{"Threshold value 6", 4, true},
		{"Threshold value 7", 4, true},
	}},
	274: {Name: "Threshold data 2", Attrs: []AttrSpec{
		{"Threshold value 8", 4, true},
		{"Threshold value 9", 4, true},
		{"Threshold value 10", 4, true},
		{"Threshold value 11", 4, true},
		{"Threshold value 12", 4, true},
		{"Threshold value 13", 4, true},
		{"Threshold value 14", 4, true},
	}},
	276: {Name: "GAL Ethernet performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Discarded frames", 4, false},
	}},
	277: {Name: "Priority queue", Attrs: []AttrSpec{
		{"Queue configuration option", 1, false},
		{"Maximum queue size", 2, false},
		{"Allocated queue size", 2, false},
		{"Discard-block counter reset interval", 2, false},
		{"Threshold value for discarded blocks", 2, false},
		{"Related port", 4, false},
		{"Traffic scheduler pointer", 2, false},
		{"Weight", 1, false},
		{"Back pressure operation", 2, false},
		{"Back pressure time", 4, false},
		{"Back pressure occur queue threshold", 2, false},
		{"Back pressure clear queue threshold", 2, false},
	}},
	278: {Name: "Traffic scheduler", Attrs: []AttrSpec{
		{"TP pointer", 2, false},
		{"Traffic scheduler pointer", 2, false},
		{"Policy", 1, false},
		{"Priority/weight", 1, false},
	}},
	280: {Name: "Traffic descriptor", Attrs: []AttrSpec{
		{"CIR", 4, true},
		{"PIR", 4, true},
		{"CBS", 4, true},
		{"PBS", 4, true},
		{"Colour mode", 1, true},
		{"Ingress colour marking", 1, true},
		{"Egress colour marking", 1, true},
		{"Meter type", 1, true},
	}},
	281: {Name: "Multicast GEM interworking termination point", Attrs: []AttrSpec{
		{"GEM port network CTP connectivity pointer", 2, true},
		{"Interworking option", 1, true},
		{"Service profile pointer", 2, true},
		{"Not used 1", 2, true},
		{"PPTP counter", 1, false},
		{"Operational state", 1, false},
		{"GAL profile pointer", 2, true},
		{"Not used 2", 1, false},
		{"IPv4 multicast address table", 12, false},
		{"IPv6 multicast address table", 24, false},
	}},
	287: {Name: "OMCI", Attrs: []AttrSpec{
		{"ME type table", 2, false},
		{"Message type table", 1, false},
	}},
	290: {Name: "Dot1X port extension package", Attrs: []AttrSpec{
		{"Dot1x enable", 1, false},
		{"Action register", 1, false},
		{"Authenticator PAE state", 1, false},
		{"Backend authentication state", 1, false},
		{"Admin controlled directions", 1, false},
		{"Operational controlled directions", 1, false},
		{"Authenticator controlled port status", 1, false},
		{"Quiet period", 2, false},
		{"Server timeout period", 2, false},
		{"Re-authentication period", 2, false},
		{"Re-authentication enabled", 1, false},
		{"Key transmission enabled", 1, false},
	}},
	296: {Name: "Ethernet performance monitoring history data 3", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Drop events", 4, false},
		{"Octets", 4, false},
		{"Packets", 4, false},
		{"Broadcast packets", 4, false},
		{"Multicast packets", 4, false},
		{"Undersize packets", 4, false},
		{"Fragments", 4, false},
		{"Jabbers", 4, false},
		{"Packets 64 octets", 4, false},
		{"Packets 65 to 127 octets", 4, false},
		{"Packets 128 to 255 octets", 4, false},
		{"Packets 256 to 511 octets", 4, false},
		{"Packets 512 to 1023 octets", 4, false},
		{"Packets 1024 to 1518 octets", 4, false},
	}},
	297: {Name: "Port mapping package", Attrs: []AttrSpec{
		{"Max ports", 1, false},
		{"Port list 1", 16, false},
		{"Port list 2", 16, false},
		{"Port list 3", 16, false},
		{"Port list 4", 16, false},
		{"Port list 5", 16, false},
		{"Port list 6", 16, false},
		{"Port list 7", 16, false},
		{"Port list 8", 16, false},
	}},
	298: {Name: "Dot1 rate limiter", Attrs: []AttrSpec{
		{"Parent ME pointer", 2, true},
		{"TP type", 1, true},
		{"Upstream unicast flood rate pointer", 2, true},
		{"Upstream broadcast rate pointer", 2, true},
		{"Upstream multicast payload rate pointer", 2, true},
	}},
	299: {Name: "Dot1ag maintenance domain", Attrs: []AttrSpec{
		{"MD level", 1, true},
		{"MD name format", 1, true},
		{"MD name 1", 25, false},
		{"MD name 2", 25, false},
		{"MD MHF creation", 1, true},
		{"MD sender id permission", 1, true},
	}},
	300: {Name: "Dot1ag maintenance association", Attrs: []AttrSpec{
		{"MD pointer", 2, true},
		{"MA name format", 1, true},
		{"MA name 1", 25, false},
		{"MA name 2", 25, false},
		{"CCM interval", 1, true},
		{"Associated VLANs", 24, false},
		{"MHF creation", 1, true},
		{"Sender id permission", 1, true},
	}},
	302: {Name: "Dot1ag MEP", Attrs: []AttrSpec{
		{"Parent pointer", 2, true},
		{"Layer 2 type", 1, true},
		{"MA pointer", 2, true},
		{"MEP id", 2, true},
		{"MEP control", 1, true},
		{"Primary VLAN", 2, true},
		{"Administrative state", 1, false},
		{"CCM and LTM priority", 1, true},
		{"Egress identifier", 8, false},
		{"Peer MEP ids", 24, false},
		{"ETH AIS control", 1, true},
		{"Fault alarm threshold", 1, true},
	}},
	309: {Name: "Multicast operations profile", Attrs: []AttrSpec{
		{"IGMP version", 1, true},
		{"IGMP function", 1, true},
		{"Immediate leave", 1, true},
		{"Upstream IGMP TCI", 2, false},
		{"Upstream IGMP tag control", 1, false},
		{"Upstream IGMP rate", 4, false},
		{"Dynamic access control list table", 24, false},
		{"Static access control list table", 24, false},
		{"Lost groups list table", 10, false},
		{"Robustness", 1, false},
		{"Querier IP address", 4, false},
		{"Query interval", 4, false},
		{"Query max response time", 4, false},
		{"Last member query interval", 4, false},
		{"Unauthorized join request behaviour", 1, false},
		{"Downstream IGMP and multicast TCI", 3, false},
	}},
	310: {Name: "Multicast subscriber config info", Attrs: []AttrSpec{
		{"ME type", 1, true},
		{"Multicast operations profile pointer", 2, true},
		{"Max simultaneous groups", 2, false},
		{"Max multicast bandwidth", 4, false},
		{"Bandwidth enforcement", 1, false},
		{"Multicast service package table", 20, false},
		{"Allowed preview groups table", 22, false},
	}},
	311: {Name: "Multicast subscriber monitor", Attrs: []AttrSpec{
		{"ME type", 1, true},
		{"Current multicast bandwidth", 4, false},
		{"Join messages counter", 4, false},
		{"Bandwidth exceeded counter", 4, false},
		{"Active group list table", 24, false},
	}},
	312: {Name: "FEC performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Corrected bytes", 4, false},
		{"Corrected code words", 4, false},
		{"Uncorrectable code words", 4, false},
		{"Total code words", 4, false},
		{"FEC seconds", 2, false},
	}},
	321: {Name: "Ethernet frame performance monitoring history data downstream", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Drop events", 4, false},
		{"Octets", 4, false},
		{"Packets", 4, false},
		{"Broadcast packets", 4, false},
		{"Multicast packets", 4, false},
		{"CRC errored packets", 4, false},
		{"Undersize packets", 4, false},
		{"Oversize packets", 4, false},
		{"Packets 64 octets", 4, false},
		{"Packets 65 to 127 octets", 4, false},
		{"Packets 128 to 255 octets", 4, false},
		{"Packets 256 to 511 octets", 4, false},
		{"Packets 512 to 1023 octets", 4, false},
		{"Packets 1024 to 1518 octets", 4, false},
	}},
	322: {Name: "Ethernet frame performance monitoring history data upstream", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Drop events", 4, false},
		{"Octets", 4, false},
		{"Packets", 4, false},
		{"Broadcast packets", 4, false},
		{"Multicast packets", 4, false},
		{"CRC errored packets", 4, false},
		{"Undersize packets", 4, false},
		{"Oversize packets", 4, false},
		{"Packets 64 octets", 4, false},
		{"Packets 65 to 127 octets", 4, false},
		{"Packets 128 to 255 octets", 4, false},
		{"Packets 256 to 511 octets", 4, false},
		{"Packets 512 to 1023 octets", 4, false},
		{"Packets 1024 to 1518 octets", 4, false},
	}},
	329: {Name: "Virtual Ethernet interface point", Attrs: []AttrSpec{
		{"Administrative state", 1, false},
		{"Operational state", 1, false},
		{"Interdomain name", 25, false},
		{"TCP/UDP pointer", 2, false},
		{"IANA assigned port", 2, false},
	}},
	332: {Name: "Enhanced security control", Attrs: []AttrSpec{
		{"OLT crypto capabilities", 16, false},
		{"OLT random challenge table", 17, false},
		{"OLT challenge status", 1, false},
		{"ONU selected crypto capabilities", 1, false},
		{"ONU random challenge table", 16, false},
		{"ONU authentication result table", 16, false},
		{"OLT authentication result table", 17, false},
		{"OLT result status", 1, false},
		{"ONU authentication status", 1, false},
		{"Master session key name", 16, false},
		{"Broadcast key table", 18, false},
		{"Effective key length", 2, false},
	}},
	334: {Name: "Ethernet frame extended PM", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Control block", 16, true},
		{"Drop events", 4, false},
		{"Octets", 4, false},
		{"Frames", 4, false},
		{"Broadcast frames", 4, false},
		{"Multicast frames", 4, false},
		{"CRC errored frames", 4, false},
		{"Undersize frames", 4, false},
		{"Oversize frames", 4, false},
		{"Frames 64 octets", 4, false},
		{"Frames 65 to 127 octets", 4, false},
		{"Frames 128 to 255 octets", 4, false},
		{"Frames 256 to 511 octets", 4, false},
		{"Frames 512 to 1023 octets", 4, false},
		{"Frames 1024 to 1518 octets", 4, false},
	}},
	336: {Name: "ONU dynamic power management control", Attrs: []AttrSpec{
		{"Power reduction management capability", 1, false},
		{"Power reduction management mode", 1, false},
		{"Itransinit", 2, false},
		{"Itxinit", 2, false},
		{"Maximum sleep interval", 4, false},
		{"Maximum receiver-off interval", 4, false},
		{"Minimum aware interval", 4, false},
		{"Minimum active held interval", 2, false},
	}},
	341: {Name: "GEM port network CTP performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Transmitted GEM frames", 4, false},
		{"Received GEM frames", 4, false},
		{"Received payload bytes", 8, false},
		{"Transmitted payload bytes", 8, false},
		{"Encryption key errors", 4, false},
	}},
	342: {Name: "TCP/UDP performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Socket failed", 2, false},
		{"Listen failed", 2, false},
		{"Bind failed", 2, false},
		{"Accept failed", 2, false},
		{"Select failed", 2, false},
	}},
	343: {Name: "Energy consumption performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Doze time", 4, false},
		{"Cyclic sleep time", 4, false},
		{"Energy consumed", 4, false},
	}},
	344: {Name: "XG-PON TC performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"PSBd HEC error count", 4, false},
		{"XGTC HEC error count", 4, false},
		{"Unknown profile count", 4, false},
		{"Transmitted XG-PON frames", 4, false},
		{"Fragment XGEM frames", 4, false},
		{"XGEM HEC lost words count", 4, false},
		{"XGEM key errors", 4, false},
		{"XGEM HEC error count", 4, false},
	}},
	345: {Name: "XG-PON downstream management performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"PLOAM message integrity check failure count", 4, false},
		{"Downstream PLOAM messages count", 4, false},
		{"Profile messages received", 4, false},
		{"Ranging time messages received", 4, false},
		{"Deactivate ONU-ID messages received", 4, false},
		{"Disable serial number messages received", 4, false},
		{"Request registration messages received", 4, false},
		{"Assign alloc-ID messages received", 4, false},
		{"Key control messages received", 4, false},
		{"Sleep allow messages received", 4, false},
		{"Baseline OMCI messages received count", 4, false},
		{"Extended OMCI messages received count", 4, false},
		{"Assign ONU-ID messages received", 4, false},
		{"OMCI MIC error count", 4, false},
	}},
	346: {Name: "XG-PON upstream management performance monitoring history data", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Threshold data 1/2 id", 2, true},
		{"Upstream PLOAM message count", 4, false},
		{"Serial number ONU message count", 4, false},
		{"Registration message count", 4, false},
		{"Key report message count", 4, false},
		{"Acknowledge message count", 4, false},
		{"Sleep request message count", 4, false},
	}},
	347: {Name: "IPv6 host config data", Attrs: []AttrSpec{
		{"IP options", 1, false},
		{"MAC address", 6, false},
		{"ONU identifier", 25, false},
		{"IPv6 link local address", 16, false},
		{"IPv6 address", 16, false},
		{"Default router", 16, false},
		{"Primary DNS", 16, false},
		{"Secondary DNS", 16, false},
		{"Current address table", 24, false},
		{"Current default router table", 16, false},
		{"Current DNS table", 16, false},
		{"Domain name", 25, false},
		{"Host name", 25, false},
		{"Relay agent options", 2, false},
	}},
	425: {Name: "Ethernet frame extended PM 64-bit", Attrs: []AttrSpec{
		{"Interval end time", 1, false},
		{"Control block", 16, true},
		{"Drop events", 8, false},
		{"Octets", 8, false},
		{"Frames", 8, false},
		{"Broadcast frames", 8, false},
		{"Multicast frames", 8, false},
		{"CRC errored frames", 8, false},
		{"Undersize frames", 8, false},
		{"Oversize frames", 8, false},
		{"Frames 64 octets", 8, false},
		{"Frames 65 to 127 octets", 8, false},
		{"Frames 128 to 255 octets", 8, false},
		{"Frames 256 to 511 octets", 8, false},
		{"Frames 512 to 1023 octets", 8, false},
		{"Frames 1024 to 1518 octets", 8, false},
	}},
}
