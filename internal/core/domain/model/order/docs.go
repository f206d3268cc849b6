// Package order contains the Order aggregate, the heart of the system.
//
// An order owns its line items and its status history. All state changes go
// through the aggregate's transition methods, which enforce who may move an
// order where and record every successful move as an audit entry. Totals are
// computed once at creation with exact decimal arithmetic and never
// recalculated afterwards.
package order
