// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// StohnNet represents which Stohn network a message belongs to.
type StohnNet uint32

// Constants used to indicate the message Stohn network. They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main Stohn network.
	MainNet StohnNet = 0xd9b4bef9

	// TestNet represents the regression test network.
	TestNet StohnNet = 0xdab5bffa

	// TestNet3 represents the test network (version 3).
	TestNet3 StohnNet = 0x0709110b

	// SimNet represents the simulation test network.
	SimNet StohnNet = 0x12141c16
)

// bnStrings is a map of Stohn networks back to their constant names for
// pretty printing.
var bnStrings = map[StohnNet]string{
	MainNet:  "MainNet",
	TestNet:  "TestNet",
	TestNet3: "TestNet3",
	SimNet:   "SimNet",
}

// String returns the StohnNet in human-readable form.
func (n StohnNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown StohnNet (%d)", uint32(n))
}
