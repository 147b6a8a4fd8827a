package snowflakeid

// This package implements a node local generator of time ordered, unique, 63
// bit "snowflake" ids.
//
// An id is, most significant bits first:
//
//	[timestamp: 63 - NodeBits - StepBits][node: NodeBits][sequence: StepBits]
//
// The timestamp is milliseconds since the configured Epoch, node is the
// generators node id and sequence counts the ids issued by the node within a
// millisecond. The defaults give 1024 nodes, 4096 ids per node per
// millisecond and ~69 years from the 2018-01-01 epoch.
//
// The following properties hold for the generated id's:
//
// * A single Node never issues the same id twice, and each id it issues is
// greater than the last, even when the clock steps backwards.
// * Two Nodes with different node ids never issue the same id, regardless of
// how far apart their clocks are.
// * Ids from Nodes sharing Epoch, NodeBits and StepBits are ordered by time
// at millisecond granularity.
//
// Nothing is persisted. A restarted process relies on the clock having moved
// past the last millisecond used by the previous process.
//
// Guaranteeing the node id is unique across a fleet is up to the caller:
// static configuration, or the private ip derivation in NodeIDFromPrivateIP.
//
// The string forms (base32, base58, ...) are implemented by the alphabet
// package, ID exposes them as methods.
