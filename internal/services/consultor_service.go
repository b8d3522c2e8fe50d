package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/fcamara/consultores-api/internal/domain/entities"
	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
	"github.com/fcamara/consultores-api/internal/domain/ports"
	"github.com/fcamara/consultores-api/internal/domain/repositories"
	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
)

// ConsultorService contém a lógica de negócio para consultores
type ConsultorService struct {
	consultorRepo   repositories.ConsultorRepository
	diretorioRepo   repositories.DiretorioRepository
	uow             ports.UnitOfWork
	storage         ports.AvatarStorage
	hasher          ports.PasswordHasher
	validator       ports.ConsultorValidator
	logger          ports.Logger
	newSecundarioID func() string
}

// Option customiza o ConsultorService
type Option func(*ConsultorService)

// WithSecundarioIDGenerator substitui o gerador do secundario_id (padrão: UUID v4)
func WithSecundarioIDGenerator(fn func() string) Option {
	return func(s *ConsultorService) {
		s.newSecundarioID = fn
	}
}

// NewConsultorService cria um novo ConsultorService
func NewConsultorService(
	consultorRepo repositories.ConsultorRepository,
	diretorioRepo repositories.DiretorioRepository,
	uow ports.UnitOfWork,
	storage ports.AvatarStorage,
	hasher ports.PasswordHasher,
	validator ports.ConsultorValidator,
	logger ports.Logger,
	opts ...Option,
) *ConsultorService {
	s := &ConsultorService{
		consultorRepo:   consultorRepo,
		diretorioRepo:   diretorioRepo,
		uow:             uow,
		storage:         storage,
		hasher:          hasher,
		validator:       validator,
		logger:          logger,
		newSecundarioID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateConsultorInput representa os dados para cadastrar um consultor
type CreateConsultorInput struct {
	Apelido string
	Email   string
	Senha   string
}

// UpdateConsultorInput representa os dados para atualizar o perfil.
// Campos nil ou vazios são considerados ausentes.
type UpdateConsultorInput struct {
	Apelido *string
	Imagem  *string
	Senha   *string
}

// ListConsultores lista todos os consultores ordenados por apelido
func (s *ConsultorService) ListConsultores(ctx context.Context) ([]*entities.ConsultorPerfil, error) {
	perfis, err := s.consultorRepo.ListPerfis(ctx)
	if err != nil {
		s.logger.Error("failed to list consultores", "error", err)
		return nil, domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgListFailed, err)
	}
	return perfis, nil
}

// GetConsultor busca o perfil de um consultor por ID
func (s *ConsultorService) GetConsultor(ctx context.Context, id int64) (*entities.ConsultorPerfil, error) {
	perfil, err := s.consultorRepo.FindPerfilByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load consultor", "consultor_id", id, "error", err)
		return nil, domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgLoadFailed, err)
	}
	if perfil == nil {
		return nil, domainerrors.New(domainerrors.KindNotFound, domainerrors.MsgConsultorNotFound)
	}
	return perfil, nil
}

// ResolveConsultor carrega a conta completa de um consultor; usado na
// resolução de identidade das rotas autenticadas
func (s *ConsultorService) ResolveConsultor(ctx context.Context, id int64) (*entities.Consultor, error) {
	consultor, err := s.consultorRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to resolve consultor", "consultor_id", id, "error", err)
		return nil, domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgLoadFailed, err)
	}
	if consultor == nil {
		return nil, domainerrors.New(domainerrors.KindNotFound, domainerrors.MsgConsultorNotFound)
	}
	return consultor, nil
}

// CreateConsultor cadastra um novo consultor.
// Somente emails presentes no diretório de funcionários podem ser cadastrados.
func (s *ConsultorService) CreateConsultor(ctx context.Context, input CreateConsultorInput) error {
	s.logger.Info("creating consultor", "email", input.Email)

	if err := s.validator.ValidateCadastro(input.Apelido, input.Email, input.Senha); err != nil {
		return err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return domainerrors.Validation(domainerrors.MsgValidation,
			domainerrors.FieldError{Field: "email", Tag: "email"})
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		// Validar se email já existe
		exists, err := s.consultorRepo.ExistsByEmail(txCtx, email.String())
		if err != nil {
			return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgCreateFailed, err)
		}
		if exists {
			return domainerrors.New(domainerrors.KindConflict, domainerrors.MsgEmailAlreadyRegistered)
		}

		// Somente funcionários do diretório
		colaborador, err := s.diretorioRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgCreateFailed, err)
		}
		if colaborador == nil {
			return domainerrors.New(domainerrors.KindAuthorization, domainerrors.MsgConsultorNotIdentified)
		}

		hash, err := s.hasher.Hash(input.Senha)
		if err != nil {
			return domainerrors.Wrap(domainerrors.KindValidation, domainerrors.MsgPasswordFailed, err)
		}

		consultor := &entities.Consultor{
			SecundarioID: s.newSecundarioID(),
			Apelido:      strings.TrimSpace(input.Apelido),
			Email:        email,
			SenhaHash:    hash,
			Admin:        false,
		}
		if err := consultor.Validate(); err != nil {
			return domainerrors.Wrap(domainerrors.KindValidation, domainerrors.MsgValidation, err)
		}

		if err := s.consultorRepo.Create(txCtx, consultor); err != nil {
			if errors.Is(err, repositories.ErrEmailConflict) {
				return domainerrors.New(domainerrors.KindConflict, domainerrors.MsgEmailAlreadyRegistered)
			}
			return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgCreateFailed, err)
		}

		s.logger.Info("consultor created", "consultor_id", consultor.ID)
		return nil
	})
	if err != nil {
		if _, ok := domainerrors.As(err); ok {
			return err
		}
		s.logger.Error("failed to commit consultor creation", "error", err)
		return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgCreateFailed, err)
	}

	return nil
}

// UpdateConsultor atualiza apelido, senha e/ou imagem do consultor autenticado.
//
// As alterações no armazenamento de blobs e no banco não são atômicas:
//  1. apaga o avatar anterior (falha aborta sem alterar nada)
//  2. envia o novo avatar (falha aborta; o avatar anterior já foi apagado)
//  3. atualiza a linha; se falhar, o novo avatar é removido como compensação
func (s *ConsultorService) UpdateConsultor(ctx context.Context, consultor *entities.Consultor, input UpdateConsultorInput) error {
	apelido := trimmedOrNil(input.Apelido)
	imagem := presentOrNil(input.Imagem)
	senha := presentOrNil(input.Senha)

	if apelido == nil && imagem == nil && senha == nil {
		return domainerrors.Validation(domainerrors.MsgUpdateRequiresField)
	}

	if err := s.validator.ValidateAtualizacao(apelido, senha); err != nil {
		return err
	}

	var avatar *avatarPayload
	if imagem != nil {
		decoded, err := decodeAvatarPayload(*imagem)
		if err != nil {
			return domainerrors.Validation(domainerrors.MsgInvalidImage,
				domainerrors.FieldError{Field: "imagem", Tag: "base64"})
		}
		avatar = decoded
	}

	changes := repositories.ConsultorChanges{Apelido: apelido}

	if senha != nil {
		hash, err := s.hasher.Hash(*senha)
		if err != nil {
			return domainerrors.Wrap(domainerrors.KindValidation, domainerrors.MsgPasswordFailed, err)
		}
		changes.SenhaHash = &hash
	}

	var uploadedKey valueobjects.AvatarKey
	if avatar != nil {
		url, key, err := s.replaceAvatar(ctx, consultor, avatar)
		if err != nil {
			return err
		}
		changes.Imagem = &url
		uploadedKey = key
	}

	affected, err := s.consultorRepo.Update(ctx, consultor.ID, changes)
	if err != nil || affected == 0 {
		if uploadedKey != "" {
			s.compensateUpload(ctx, uploadedKey)
		}
		if err != nil {
			s.logger.Error("failed to update consultor", "consultor_id", consultor.ID, "error", err)
			return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgUpdateFailed, err)
		}
		s.logger.Warn("consultor update affected no rows", "consultor_id", consultor.ID)
		return domainerrors.New(domainerrors.KindState, domainerrors.MsgUpdateFailed)
	}

	s.logger.Info("consultor updated",
		"consultor_id", consultor.ID,
		"apelido", apelido != nil,
		"senha", senha != nil,
		"imagem", avatar != nil,
	)
	return nil
}

// replaceAvatar apaga o avatar atual (se houver) e envia o novo
func (s *ConsultorService) replaceAvatar(ctx context.Context, consultor *entities.Consultor, avatar *avatarPayload) (string, valueobjects.AvatarKey, error) {
	if consultor.HasAvatar() {
		oldKey, err := s.storage.KeyFromURL(*consultor.Imagem)
		if err != nil {
			return "", "", domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgAvatarDeleteFailed, err)
		}
		if err := s.storage.Delete(ctx, oldKey); err != nil {
			s.logger.Error("failed to delete previous avatar", "consultor_id", consultor.ID, "key", oldKey.String(), "error", err)
			return "", "", domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgAvatarDeleteFailed, err)
		}
	}

	key := consultor.AvatarKey()
	url, err := s.storage.Upload(ctx, key, avatar.data, avatar.contentType)
	if err != nil {
		s.logger.Error("failed to upload avatar", "consultor_id", consultor.ID, "key", key.String(), "error", err)
		return "", "", domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgAvatarUploadFailed, err)
	}

	return url, key, nil
}

// compensateUpload remove o avatar recém-enviado quando a linha não foi atualizada
func (s *ConsultorService) compensateUpload(ctx context.Context, key valueobjects.AvatarKey) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("failed to compensate avatar upload", "key", key.String(), "error", err)
	}
}

// DeleteConsultor remove o consultor e seu avatar
func (s *ConsultorService) DeleteConsultor(ctx context.Context, id int64) error {
	consultor, err := s.consultorRepo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load consultor for deletion", "consultor_id", id, "error", err)
		return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgDeleteFailed, err)
	}
	if consultor == nil {
		return domainerrors.New(domainerrors.KindNotFound, domainerrors.MsgConsultorNotFound)
	}

	if consultor.HasAvatar() {
		key, err := s.storage.KeyFromURL(*consultor.Imagem)
		if err != nil {
			return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgAvatarDeleteFailed, err)
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Error("failed to delete avatar", "consultor_id", id, "key", key.String(), "error", err)
			return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgAvatarDeleteFailed, err)
		}
	}

	affected, err := s.consultorRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete consultor", "consultor_id", id, "error", err)
		return domainerrors.Wrap(domainerrors.KindStorage, domainerrors.MsgDeleteFailed, err)
	}
	if affected == 0 {
		return domainerrors.New(domainerrors.KindState, domainerrors.MsgDeleteFailed)
	}

	s.logger.Info("consultor deleted", "consultor_id", id)
	return nil
}

// trimmedOrNil é como presentOrNil, mas devolve o valor sem espaços nas pontas
func trimmedOrNil(value *string) *string {
	if value = presentOrNil(value); value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func presentOrNil(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
