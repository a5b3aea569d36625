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
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"golang.org/x/sync/errgroup"

	"gerrit.opencord.org/omci-decode/common/logger"
)

// EtherTypeOMCI is the ethertype OMCI frames ride on in management captures.
const EtherTypeOMCI = 0x88B5

const snaplen = 1600

// Sink receives every decoded frame. It is called concurrently from the
// decode workers and must be safe for parallel use.
type Sink func(f *Frame)

// Pipeline feeds raw OMCI frames from a capture source through parallel
// DecodeFrame workers into the sink. Decoding is per-frame and stateless,
// so the workers need no coordination.
type Pipeline struct {
	opt  *option
	sink Sink
}

// NewPipeline wires a capture source according to the options.
func NewPipeline(opt *option, sink Sink) *Pipeline {
	return &Pipeline{opt: opt, sink: sink}
}

// Run blocks until the source is drained or the context is cancelled.
func (p *Pipeline) Run(ctx context.Context, stdin io.Reader) error {
	frames := make(chan []byte, 64)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(frames)
		switch {
		case p.opt.hexInput:
			return recvHex(ctx, stdin, frames)
		case p.opt.pcapFile != "":
			handle, err := pcap.OpenOffline(p.opt.pcapFile)
			if err != nil {
				return err
			}
			defer handle.Close()
			return RecvWorker(ctx, handle, frames)
		case p.opt.ifName != "":
			handle, err := pcap.OpenLive(p.opt.ifName, snaplen, true, pcap.BlockForever)
			if err != nil {
				return err
			}
			defer handle.Close()
			return RecvWorker(ctx, handle, frames)
		default:
			return errors.New("no input: use -r, -i or -x")
		}
	})

	for i := 0; i < p.opt.workers; i++ {
		g.Go(func() error {
			for buf := range frames {
				f, err := DecodeFrame(buf)
				if err != nil {
					logger.Warn("drop %d-byte buffer: %s", len(buf), err)
					continue
				}
				p.sink(f)
			}
			return nil
		})
	}

	return g.Wait()
}

// RecvWorker pulls packets from a pcap handle and forwards the OMCI payload
// of each to the frame channel.
func RecvWorker(ctx context.Context, handle *pcap.Handle, out chan<- []byte) error {
	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case packet, ok := <-packetSource.Packets():
			if !ok {
				return nil
			}
			payload := omciPayload(packet)
			if payload == nil {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- payload:
			}
		}
	}
}

// omciPayload extracts the raw OMCI frame from a captured packet: either an
// Ethernet frame with the OMCI ethertype (possibly 802.1Q tagged), or a UDP
// payload from a management-plane capture.
func omciPayload(pkt gopacket.Packet) []byte {
	if ethLayer := pkt.Layer(layers.LayerTypeEthernet); ethLayer != nil {
		eth := ethLayer.(*layers.Ethernet)
		if uint16(eth.EthernetType) == EtherTypeOMCI {
			return eth.Payload
		}
		if dot1qLayer := pkt.Layer(layers.LayerTypeDot1Q); dot1qLayer != nil {
			dot1q := dot1qLayer.(*layers.Dot1Q)
			if uint16(dot1q.Type) == EtherTypeOMCI {
				return dot1q.Payload
			}
		}
	}
	if udpLayer := pkt.Layer(layers.LayerTypeUDP); udpLayer != nil {
		return udpLayer.(*layers.UDP).Payload
	}
	return nil
}

// recvHex reads one hex-encoded frame per line, for piping field captures in
// without a pcap file. Whitespace within a line is ignored.
func recvHex(ctx context.Context, r io.Reader, out chan<- []byte) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), "")
		if line == "" {
			continue
		}
		buf, err := hex.DecodeString(line)
		if err != nil {
			logger.Warn("skip undecodable hex line: %s", err)
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- buf:
		}
	}
	return scanner.Err()
}
