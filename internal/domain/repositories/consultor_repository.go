package repositories

import (
	"context"
	"errors"

	"github.com/fcamara/consultores-api/internal/domain/entities"
)

// ErrEmailConflict é retornado por Create quando a constraint de email único é violada
var ErrEmailConflict = errors.New("consultor email already exists")

// ConsultorRepository define a interface para persistência de consultores
type ConsultorRepository interface {
	// ListPerfis retorna os consultores com dados do diretório, ordenados por apelido
	ListPerfis(ctx context.Context) ([]*entities.ConsultorPerfil, error)
	// FindPerfilByID retorna nil, nil quando não houver consultor com o ID
	FindPerfilByID(ctx context.Context, id int64) (*entities.ConsultorPerfil, error)
	// FindByID retorna nil, nil quando não houver consultor com o ID
	FindByID(ctx context.Context, id int64) (*entities.Consultor, error)
	// ExistsByEmail compara o email sem diferenciar maiúsculas
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, consultor *entities.Consultor) error
	// Update aplica somente os campos presentes e retorna as linhas afetadas
	Update(ctx context.Context, id int64, changes ConsultorChanges) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ConsultorChanges contém os campos alteráveis de um consultor.
// Campos nil não são alterados.
type ConsultorChanges struct {
	Apelido   *string
	SenhaHash *string
	Imagem    *string
}

// IsEmpty indica se não há nenhum campo para atualizar
func (c ConsultorChanges) IsEmpty() bool {
	return c.Apelido == nil && c.SenhaHash == nil && c.Imagem == nil
}

// DiretorioRepository dá acesso somente leitura ao diretório de funcionários
type DiretorioRepository interface {
	// FindByEmail compara o email sem diferenciar maiúsculas; retorna nil, nil se ausente
	FindByEmail(ctx context.Context, email string) (*entities.ColaboradorFCamara, error)
}
