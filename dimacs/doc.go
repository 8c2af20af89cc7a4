// Package dimacs reads and writes NETGEN problems in the DIMACS network
// text format, using the exact layout of the legacy NETGEN tool.
//
// A problem block is a comment header echoing the generation parameters,
// one problem line, node lines and arc lines:
//
//	p asn N A   n ID          a T H COST
//	p max N A   n ID s|t      a T H CAP
//	p min N A   n ID SUPPLY   a T H 0 CAP COST
//
// Blocks for several problems are simply concatenated. Write produces one
// block; ReadAll splits a stream back into problems at each problem line.
package dimacs
