package services

import (
	portsrepo "github.com/SscSPs/receipt_processor/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipt_processor/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, receiptOpts ...ReceiptServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Receipt: NewReceiptService(repos.ReceiptPointsRepo, receiptOpts...),
	}
}
