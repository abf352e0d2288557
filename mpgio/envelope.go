// SPDX-License-Identifier: MIT
// Package: credmpg/mpgio
//
// envelope.go — the wire shapes of spec §6.2, and the address<->wire
// conversions every node/edge encoding goes through. Node and edge wire
// objects carry a "class" (and, for epoch nodes, an "owner") field beyond
// spec §6.2's minimal illustration, so that Unmarshal can rebuild a
// MarkovProcessGraph whose nodes and edges are indistinguishable from the
// ones New would have produced, not merely address-and-probability
// compatible.
package mpgio

import "github.com/katalvlaran/credmpg/address"

const (
	recordType    = "sourcecred/markovProcessGraph"
	recordVersion = "0.1.0"
)

type addressWire struct {
	Kind  uint8    `json:"kind"`
	Parts []string `json:"parts"`
}

func encodeAddress(a address.Address) addressWire {
	return addressWire{Kind: uint8(a.Kind()), Parts: a.Parts()}
}

func decodeAddress(w addressWire) (address.Address, error) {
	return address.New(address.Kind(w.Kind), w.Parts...)
}

type nodeWire struct {
	Address     addressWire  `json:"address"`
	Description string       `json:"description"`
	Mint        float64      `json:"mint"`
	Class       string       `json:"class"`
	Owner       *addressWire `json:"owner,omitempty"`
}

type edgeWire struct {
	Address               addressWire `json:"address"`
	Reversed              bool        `json:"reversed"`
	Src                   addressWire `json:"src"`
	Dst                   addressWire `json:"dst"`
	TransitionProbability float64     `json:"transitionProbability"`
	Class                 string      `json:"class"`
}

type payload struct {
	Nodes            map[string]nodeWire `json:"nodes"`
	Edges            map[string]edgeWire `json:"edges"`
	ScoringAddresses []addressWire       `json:"scoringAddresses"`
}

type envelope struct {
	Type    string  `json:"type"`
	Version string  `json:"version"`
	Payload payload `json:"payload"`
}
