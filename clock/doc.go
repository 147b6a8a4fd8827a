// Package clock supplies the millisecond time readings consumed by the
// snowflake id generator.
//
// The generator needs exactly one capability from "time": the current instant
// as a count of milliseconds since the Unix epoch. Source is that capability.
// System is the production implementation, Manual and Func exist so that
// callers (and tests) can drive the generator with readings of their choosing.
package clock
