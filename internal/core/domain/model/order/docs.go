// Package order contains the order aggregate and its lifecycle state machine.
//
// An order is created on the backend from a Draft (a fully-priced,
// single-restaurant order derived from one cart group) and thereafter mutates
// only through validated status transitions. The client-side copy of the
// transition table in this package is advisory: it keeps illegal updates from
// ever being sent, but the backend remains authoritative and its rejections
// are surfaced, never assumed away.
package order
