// Package repository defines the interfaces for the persistence layer.
package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// BiodataRepo returns a BiodataRepository bound to the current transaction.
	BiodataRepo() BiodataRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// CounterRepo returns a CounterRepository bound to the current transaction.
	CounterRepo() CounterRepository

	// PaymentRepo returns a PaymentRepository bound to the current transaction.
	PaymentRepo() PaymentRepository
}
