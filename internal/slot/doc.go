// Package slot provides liveness-tracked fixed-capacity slot storage.
//
// An Arena owns a pre-sized block of element slots plus a word bitset
// marking which slots currently hold a live value. All transitions are
// explicit: Put makes a slot live, Take and Drop make it dead. Dead slots
// always hold the zero value, so a discarded element never stays reachable
// through the backing array.
//
// The arena is the shared foundation of the stack and queue containers.
// They differ only in access discipline (LIFO cursor vs ring indices); the
// liveness invariant lives here.
//
// # Misuse
//
// Reading, taking, or dropping a dead slot, and writing a live one, are
// programming errors and panic. The public containers check their own
// bounds first and never trigger these panics.
package slot
