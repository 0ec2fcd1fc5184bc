// Package app wires infrastructure dependencies into the application
// services consumed by the HTTP layer.
package app

import (
	"log/slog"

	"github.com/mfcarvalho/bookkeep/pkg/config"
	"github.com/mfcarvalho/bookkeep/pkg/repository"
	accountsvc "github.com/mfcarvalho/bookkeep/pkg/service/account"
	creditorsvc "github.com/mfcarvalho/bookkeep/pkg/service/creditor"
	paymentsvc "github.com/mfcarvalho/bookkeep/pkg/service/payment"
	transfersvc "github.com/mfcarvalho/bookkeep/pkg/service/transfer"
)

// Deps carries the infrastructure dependencies the services need.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the constructed services and the loaded configuration.
type App struct {
	Deps
	Config          *config.App
	AccountService  *accountsvc.Service
	TransferService *transfersvc.Service
	PaymentService  *paymentsvc.Service
	CreditorService *creditorsvc.Service
}

// New builds the application services from the given dependencies.
func New(deps Deps, cfg *config.App) *App {
	return &App{
		Deps:            deps,
		Config:          cfg,
		AccountService:  accountsvc.New(deps.Uow, deps.Logger),
		TransferService: transfersvc.New(deps.Uow, deps.Logger),
		PaymentService:  paymentsvc.New(deps.Uow, deps.Logger),
		CreditorService: creditorsvc.New(deps.Uow, deps.Logger),
	}
}
