package memory

import (
	portsrepo "github.com/SscSPs/receipt_processor/internal/core/ports/repositories"
)

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReceiptPointsRepo: NewReceiptPointsRepository(),
	}
}
