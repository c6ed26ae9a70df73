package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/models"
)

// userRepository keeps the legacy usuarios table readable and writable.
type userRepository struct {
	*DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.Usuario, error) {
	query := sqlite.Select(usuarioColumns...).From(tableUsuarios).OrderBy("name")

	return selectAll(ctx, r.DB, "userRepository.GetAll", query, scanUsuario)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (models.Usuario, error) {
	query := sqlite.Select(usuarioColumns...).From(tableUsuarios).Where(sq.Eq{"id": id})

	return selectOne(ctx, r.DB, "userRepository.GetByID", query, scanUsuario)
}

func (r *userRepository) InsertOrReplace(ctx context.Context, users ...models.Usuario) error {
	statements := make([]sq.Sqlizer, 0, len(users))
	for _, u := range users {
		statements = append(statements, sqlite.Replace(tableUsuarios).
			Columns(usuarioColumns...).
			Values(u.ID, u.Name, u.Age, u.CreatedAt.UnixMilli()))
	}

	return replaceAll(ctx, r.DB, "userRepository.InsertOrReplace", statements)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	_, err := exec(ctx, r.DB, "userRepository.Delete", sqlite.Delete(tableUsuarios).Where(sq.Eq{"id": id}))
	return err
}

func scanUsuario(row rowScanner) (models.Usuario, error) {
	var (
		u         models.Usuario
		createdAt int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Age, &createdAt); err != nil {
		return models.Usuario{}, err
	}
	u.CreatedAt = time.UnixMilli(createdAt).UTC()
	return u, nil
}
