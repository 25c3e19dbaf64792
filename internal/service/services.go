package service

import (
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
)

// Services groups all business-logic services into a single value passed
// to the handler layer.
type Services struct {
	AccountService AccountService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(storages.AccountRepository, logger),
	}
}
