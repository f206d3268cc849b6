// Package kernel contains shared domain value objects used across aggregates.
//
// Money is the only kernel type: an exact-decimal amount with the rounding
// rules the pricing invariants depend on. All monetary arithmetic in the
// domain goes through Money so no aggregate ever touches binary floating
// point for prices, tax or totals.
package kernel
