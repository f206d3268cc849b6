// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lytefood/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MenuRepoFactory provides access to the catalog repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// PaymentRepoFactory provides access to the payment ledger within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderMenuUoW manages transactions for order creation, which prices
	// line items from the catalog.
	OrderMenuUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// OrderMenuUoWFactory creates new order+catalog unit of work instances.
	OrderMenuUoWFactory interface {
		Create() OrderMenuUoW
	}

	// OrderUserUoW manages transactions that touch an order and a user,
	// such as livreur assignment.
	OrderUserUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUserUoWFactory creates new order+user unit of work instances.
	OrderUserUoWFactory interface {
		Create() OrderUserUoW
	}

	// OrderPaymentUoW manages transactions that move an order and write the
	// payment ledger in the same commit.
	OrderPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// OrderPaymentUoWFactory creates new order+payment unit of work instances.
	OrderPaymentUoWFactory interface {
		Create() OrderPaymentUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// MenuUoW manages transactions for catalog-only operations.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new catalog unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// SettingsUoW manages transactions for settings operations.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
