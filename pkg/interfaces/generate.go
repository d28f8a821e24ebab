package interfaces

//go:generate mockgen -source=contracts.go -destination=../mocks/mock_contracts.go -package=mocks

// This file contains go:generate directives for creating mocks of all interfaces.
// Run `go generate ./...` from the project root to regenerate them.
