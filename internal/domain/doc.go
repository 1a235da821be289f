// Package domain contains the core types of the conditional cross-domain
// dispatch protocol: the recursive ActionRecord, the identity and addressing
// primitives shared by every layer, the events emitted during dispatch, and
// the sentinel errors that drive protocol-level control flow. The package
// depends on nothing outside the standard library.
package domain
