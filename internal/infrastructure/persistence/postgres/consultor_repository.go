package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/fcamara/consultores-api/internal/domain/entities"
	"github.com/fcamara/consultores-api/internal/domain/repositories"
	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
)

const defaultQueryTimeout = 3 * time.Second

// pgUniqueViolation é o SQLSTATE 23505
const pgUniqueViolation = "23505"

const perfilColumns = "dados_fcamara.nome_completo, consultores.apelido, consultores.email, consultores.imagem, consultores.admin"

// ConsultorRepository implementa repositories.ConsultorRepository
type ConsultorRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewConsultorRepository cria um novo ConsultorRepository
func NewConsultorRepository(db *gorm.DB, timeout time.Duration) repositories.ConsultorRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &ConsultorRepository{db: db, timeout: timeout}
}

func (r *ConsultorRepository) ListPerfis(ctx context.Context) ([]*entities.ConsultorPerfil, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []consultorPerfilRow
	err := r.perfilQuery(ctx).
		Order("consultores.apelido ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	perfis := make([]*entities.ConsultorPerfil, 0, len(rows))
	for i := range rows {
		perfis = append(perfis, toPerfil(&rows[i]))
	}
	return perfis, nil
}

func (r *ConsultorRepository) FindPerfilByID(ctx context.Context, id int64) (*entities.ConsultorPerfil, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []consultorPerfilRow
	err := r.perfilQuery(ctx).
		Where("consultores.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return toPerfil(&rows[0]), nil
}

func (r *ConsultorRepository) FindByID(ctx context.Context, id int64) (*entities.Consultor, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var model ConsultorModel
	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ConsultorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	err := r.getDB(ctx).
		Model(&ConsultorModel{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ConsultorRepository) Create(ctx context.Context, consultor *entities.Consultor) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	model := r.toModel(consultor)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrEmailConflict
		}
		return err
	}

	consultor.ID = model.ID
	return nil
}

func (r *ConsultorRepository) Update(ctx context.Context, id int64, changes repositories.ConsultorChanges) (int64, error) {
	// Somente os campos informados entram no UPDATE
	values := make(map[string]any, 3)
	if changes.Apelido != nil {
		values["apelido"] = *changes.Apelido
	}
	if changes.SenhaHash != nil {
		values["senha"] = *changes.SenhaHash
	}
	if changes.Imagem != nil {
		values["imagem"] = *changes.Imagem
	}

	if len(values) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.getDB(ctx).
		Model(&ConsultorModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *ConsultorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.getDB(ctx).Where("id = ?", id).Delete(&ConsultorModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// perfilQuery monta o join com o diretório. Consultores sem entrada no
// diretório não aparecem nas leituras.
func (r *ConsultorRepository) perfilQuery(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Table("consultores").
		Select(perfilColumns).
		Joins("JOIN dados_fcamara ON LOWER(dados_fcamara.email) = LOWER(consultores.email)")
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ConsultorRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

// Conversores
func (r *ConsultorRepository) toModel(consultor *entities.Consultor) *ConsultorModel {
	return &ConsultorModel{
		ID:           consultor.ID,
		SecundarioID: consultor.SecundarioID,
		Apelido:      consultor.Apelido,
		Email:        consultor.Email.String(),
		Senha:        consultor.SenhaHash,
		Imagem:       consultor.Imagem,
		Admin:        consultor.Admin,
	}
}

func (r *ConsultorRepository) toEntity(model *ConsultorModel) *entities.Consultor {
	return &entities.Consultor{
		ID:           model.ID,
		SecundarioID: model.SecundarioID,
		Apelido:      model.Apelido,
		Email:        valueobjects.EmailFromStorage(model.Email),
		SenhaHash:    model.Senha,
		Imagem:       model.Imagem,
		Admin:        model.Admin,
	}
}

func toPerfil(row *consultorPerfilRow) *entities.ConsultorPerfil {
	return &entities.ConsultorPerfil{
		NomeCompleto: row.NomeCompleto,
		Apelido:      row.Apelido,
		Email:        row.Email,
		Imagem:       row.Imagem,
		Admin:        row.Admin,
	}
}

// isUniqueViolation reconhece violações de unicidade traduzidas pelo GORM
// ou vindas diretamente do driver pgx
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
