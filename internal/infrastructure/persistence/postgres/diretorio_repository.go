package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fcamara/consultores-api/internal/domain/entities"
	"github.com/fcamara/consultores-api/internal/domain/repositories"
)

// DiretorioRepository implementa repositories.DiretorioRepository sobre dados_fcamara
type DiretorioRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewDiretorioRepository cria um novo DiretorioRepository
func NewDiretorioRepository(db *gorm.DB, timeout time.Duration) repositories.DiretorioRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &DiretorioRepository{db: db, timeout: timeout}
}

func (r *DiretorioRepository) FindByEmail(ctx context.Context, email string) (*entities.ColaboradorFCamara, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var model ColaboradorFCamaraModel
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.ColaboradorFCamara{
		Email:        model.Email,
		NomeCompleto: model.NomeCompleto,
	}, nil
}
