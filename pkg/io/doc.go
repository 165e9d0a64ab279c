// Package io reads and writes graphs in the adjacency-map wire format.
//
// # Format
//
// A graph is a JSON object whose keys are vertex ids rendered as decimal
// strings and whose values are the ordered neighbour lists:
//
//	{"0": [1, 2], "1": [0], "2": [0]}
//
// Every edge appears in both endpoint lists. A pair listed twice on both
// sides is a parallel edge. String keys exist only on the wire; decoded
// graphs use integer ids.
//
// # Decoding
//
// [DecodeMap] and [ReadJSON] order vertices by numeric id, so a decoded
// graph traverses, and therefore consumes seeded randomness, identically
// whatever key order the producer used. Keys that are not non-negative
// integers fail with [ErrInvalidKey]; structural problems (dangling
// neighbours, self loops, one-sided edges) fail with the graph package's
// errors.
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Encoding
//
// [EncodeMap] is the inverse of [DecodeMap]; [WriteJSON] and [ExportJSON]
// write it with indentation for files and terminals.
package io
