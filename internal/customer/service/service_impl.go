package service

import (
	"context"
	"errors"

	"github.com/smallbiznis/folio/internal/customer/domain"
	"github.com/smallbiznis/folio/internal/refresh"
	"github.com/smallbiznis/folio/internal/validate"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Repo   domain.Repository
	Signal *refresh.Signal
}

type Service struct {
	log    *zap.Logger
	repo   domain.Repository
	signal *refresh.Signal
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("customer.service"),
		repo:   p.Repo,
		signal: p.Signal,
	}
}

// Create runs the two validation phases, then persists. Phase one is pure
// field and cross-field checking of both form steps. Phase two is the
// duplicate-email lookup against stored customers; it runs only when phase
// one passed, so the lookup never fires on a malformed email. The window
// between the lookup and Add is unguarded, which is acceptable for a single
// interactive session.
func (s *Service) Create(ctx context.Context, input domain.FormInput) (domain.Customer, error) {
	fieldErrs := make(validate.FieldErrors)

	personal, personalErrs := domain.ValidatePersonalInfo(input.Personal)
	fieldErrs.Merge("", personalErrs)

	addressInfo, addressErrs := domain.ValidateAddressInfo(input.AddressInfo)
	fieldErrs.Merge("", addressErrs)

	if len(fieldErrs) > 0 {
		return domain.Customer{}, fieldErrs
	}

	if personal.Email != "" {
		existing, err := s.repo.FindByEmail(ctx, personal.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.Customer{}, err
		}
		if existing != nil {
			fieldErrs.Add("email", "Email already exists")
			return domain.Customer{}, fieldErrs
		}
	}

	customer, err := s.repo.Add(ctx, domain.NewRecord(personal, addressInfo))
	if err != nil {
		s.log.Error("failed to persist customer", zap.Error(err))
		return domain.Customer{}, err
	}

	token := s.signal.Notify()
	s.log.Info("customer created",
		zap.String("customer_id", customer.ID),
		zap.String("refresh_token", token),
	)
	return customer, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.GetAll(ctx)
}
