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

import "flag"

type option struct {
	pcapFile    string
	ifName      string
	hexInput    bool
	workers     int
	KafkaBroker string
	Debuglvl    string
}

// GetOptions parses the command line.
func GetOptions() *option {
	o := new(option)
	pcapFile := flag.String("r", "", "Read frames from a pcap capture file")
	ifName := flag.String("i", "", "Capture live from this interface")
	hexInput := flag.Bool("x", false, "Read hex-encoded frames, one per line, from stdin")
	workers := flag.Int("w", 1, "Number of decode workers")
	kafkaBroker := flag.String("k", "", "Kafka broker")
	debuglvl := flag.String("d", "INFO", "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	flag.Parse()
	o.pcapFile = *pcapFile
	o.ifName = *ifName
	o.hexInput = *hexInput
	o.workers = *workers
	if o.workers < 1 {
		o.workers = 1
	}
	o.KafkaBroker = *kafkaBroker
	o.Debuglvl = *debuglvl
	return o
}
