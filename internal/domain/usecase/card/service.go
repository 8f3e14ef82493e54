package card

import (
	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// PagingPolicy bounds page sizes of card queries
type PagingPolicy struct {
	DefaultSize int
	MaxSize     int
}

// Service implements card issuance, queries, status updates and deletion
type Service struct {
	cards        persistence.CardStore
	users        persistence.UserRepository
	lifecycle    usecase.LifecycleUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	paging       PagingPolicy
}

// NewService creates a new card Service
func NewService(
	cards persistence.CardStore,
	users persistence.UserRepository,
	lifecycle usecase.LifecycleUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	paging PagingPolicy,
) *Service {
	if paging.DefaultSize <= 0 {
		paging.DefaultSize = entity.DefaultPageSize
	}
	if paging.MaxSize <= 0 {
		paging.MaxSize = entity.MaxPageSize
	}
	return &Service{
		cards:        cards,
		users:        users,
		lifecycle:    lifecycle,
		timeProvider: timeProvider,
		logger:       logger,
		paging:       paging,
	}
}
