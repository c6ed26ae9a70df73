package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

type userService struct {
	users store.UserRepository

	local localErrors
	ids   utils.IDGenerator
	now   func() time.Time

	logger *logger.Logger
}

func newUserService(deps clientDeps) *userService {
	return &userService{
		users:  deps.storages.Users,
		local:  deps.local,
		ids:    deps.ids,
		now:    deps.now,
		logger: deps.logger,
	}
}

func (s *userService) Create(ctx context.Context, form models.UserForm) (models.Usuario, error) {
	name, age, err := validators.ParseUserForm(form)
	if err != nil {
		return models.Usuario{}, err
	}

	user := models.Usuario{
		ID:        s.ids.Generate(),
		Name:      name,
		Age:       age,
		CreatedAt: models.Timestamp(s.now()),
	}

	if err = s.users.InsertOrReplace(ctx, user); err != nil {
		s.logger.Err(err).Str("func", "userService.Create").Msg("failed to create user")
		return models.Usuario{}, fmt.Errorf("insert user: %w", s.local.wrap(err))
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", s.local.wrap(err))
	}
	return nil
}

func (s *userService) Get(ctx context.Context, id string) (models.Usuario, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.Usuario{}, fmt.Errorf("get user %s: %w", id, s.local.wrap(err))
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.Usuario, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", s.local.wrap(err))
	}
	return users, nil
}
