// Package payment contains the append-only ledger of gateway transactions.
package payment
