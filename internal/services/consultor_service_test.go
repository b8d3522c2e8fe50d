package services_test

import (
	"context"
	"encoding/base64"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fcamara/consultores-api/internal/domain/entities"
	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
	"github.com/fcamara/consultores-api/internal/domain/repositories"
	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
	"github.com/fcamara/consultores-api/internal/infrastructure/logging"
	"github.com/fcamara/consultores-api/internal/infrastructure/validation"
	"github.com/fcamara/consultores-api/internal/services"
)

func strPtr(s string) *string { return &s }

func mustEmail(raw string) valueobjects.Email {
	email, err := valueobjects.NewEmail(raw)
	Expect(err).NotTo(HaveOccurred())
	return email
}

// pngBase64 retorna um PNG mínimo codificado em base64
func pngBase64() string {
	data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	return base64.StdEncoding.EncodeToString(data)
}

func expectKind(err error, kind domainerrors.Kind) *domainerrors.DomainError {
	GinkgoHelper()
	Expect(err).To(HaveOccurred())
	domainErr, ok := domainerrors.As(err)
	Expect(ok).To(BeTrue(), "esperava DomainError, obteve %v", err)
	Expect(domainErr.Kind).To(Equal(kind))
	return domainErr
}

var _ = Describe("ConsultorService", func() {
	var (
		ctx       context.Context
		diretorio *fakeDiretorio
		repo      *fakeConsultorRepo
		uow       *fakeUnitOfWork
		storage   *fakeStorage
		hasher    *fakeHasher
		service   *services.ConsultorService
	)

	BeforeEach(func() {
		ctx = context.Background()
		diretorio = newFakeDiretorio(
			entities.ColaboradorFCamara{Email: "joao@empresa.com", NomeCompleto: "João da Silva"},
			entities.ColaboradorFCamara{Email: "ana@empresa.com", NomeCompleto: "Ana Souza"},
			entities.ColaboradorFCamara{Email: "bia@empresa.com", NomeCompleto: "Beatriz Lima"},
		)
		repo = newFakeConsultorRepo(diretorio)
		uow = &fakeUnitOfWork{}
		storage = newFakeStorage()
		hasher = &fakeHasher{}

		service = services.NewConsultorService(
			repo,
			diretorio,
			uow,
			storage,
			hasher,
			validation.NewConsultorValidator(),
			logging.NewSlogLogger("error", io.Discard),
			services.WithSecundarioIDGenerator(func() string { return "00000000-0000-4000-8000-000000000001" }),
		)
	})

	Describe("ListConsultores", func() {
		It("lista os perfis ordenados por apelido", func() {
			repo.add(&entities.Consultor{Apelido: "zeca", Email: mustEmail("ana@empresa.com"), SenhaHash: "h"})
			repo.add(&entities.Consultor{Apelido: "beto", Email: mustEmail("bia@empresa.com"), SenhaHash: "h"})

			perfis, err := service.ListConsultores(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(perfis).To(HaveLen(2))
			Expect(perfis[0].Apelido).To(Equal("beto"))
			Expect(perfis[0].NomeCompleto).To(Equal("Beatriz Lima"))
			Expect(perfis[1].Apelido).To(Equal("zeca"))
		})

		It("retorna lista vazia sem consultores", func() {
			perfis, err := service.ListConsultores(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(perfis).To(BeEmpty())
		})

		It("retorna erro de armazenamento quando o banco falha", func() {
			repo.listErr = errBoom

			_, err := service.ListConsultores(ctx)

			domainErr := expectKind(err, domainerrors.KindStorage)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgListFailed))
		})
	})

	Describe("GetConsultor", func() {
		It("retorna o perfil do consultor", func() {
			c := repo.add(&entities.Consultor{Apelido: "joao123", Email: mustEmail("joao@empresa.com"), SenhaHash: "h"})

			perfil, err := service.GetConsultor(ctx, c.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(perfil.Apelido).To(Equal("joao123"))
			Expect(perfil.NomeCompleto).To(Equal("João da Silva"))
		})

		It("retorna não encontrado para ID inexistente", func() {
			_, err := service.GetConsultor(ctx, 999)

			domainErr := expectKind(err, domainerrors.KindNotFound)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgConsultorNotFound))
		})

		It("retorna erro de armazenamento quando o banco falha", func() {
			repo.findErr = errBoom

			_, err := service.GetConsultor(ctx, 1)

			expectKind(err, domainerrors.KindStorage)
		})
	})

	Describe("ResolveConsultor", func() {
		It("carrega a conta completa", func() {
			c := repo.add(&entities.Consultor{Apelido: "joao123", Email: mustEmail("joao@empresa.com"), SenhaHash: "h"})

			consultor, err := service.ResolveConsultor(ctx, c.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(consultor.ID).To(Equal(c.ID))
			Expect(consultor.SenhaHash).To(Equal("h"))
		})

		It("retorna não encontrado para ID inexistente", func() {
			_, err := service.ResolveConsultor(ctx, 42)

			expectKind(err, domainerrors.KindNotFound)
		})
	})

	Describe("CreateConsultor", func() {
		validInput := services.CreateConsultorInput{
			Apelido: "joao123",
			Email:   "joao@empresa.com",
			Senha:   "Secret123!",
		}

		It("cadastra o consultor e ele aparece na listagem", func() {
			Expect(service.CreateConsultor(ctx, validInput)).To(Succeed())

			perfis, err := service.ListConsultores(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(perfis).To(ContainElement(And(
				HaveField("Apelido", "joao123"),
				HaveField("Email", "joao@empresa.com"),
				HaveField("Admin", false),
				HaveField("Imagem", BeNil()),
			)))
		})

		It("persiste hash da senha, UUID secundário e admin falso", func() {
			Expect(service.CreateConsultor(ctx, validInput)).To(Succeed())

			Expect(repo.consultores).To(HaveLen(1))
			created := repo.consultores[1]
			Expect(created.SenhaHash).To(Equal("hashed:Secret123!"))
			Expect(created.SenhaHash).NotTo(Equal(validInput.Senha))
			Expect(created.SecundarioID).To(Equal("00000000-0000-4000-8000-000000000001"))
			Expect(created.Admin).To(BeFalse())
			Expect(uow.transactions).To(Equal(1))
		})

		It("normaliza o email antes de persistir", func() {
			input := validInput
			input.Email = "  JOAO@Empresa.com "

			Expect(service.CreateConsultor(ctx, input)).To(Succeed())
			Expect(repo.consultores[1].Email.String()).To(Equal("joao@empresa.com"))
		})

		It("persiste o apelido sem espaços nas pontas", func() {
			input := validInput
			input.Apelido = "  joao123 "

			Expect(service.CreateConsultor(ctx, input)).To(Succeed())
			Expect(repo.consultores[1].Apelido).To(Equal("joao123"))
		})

		It("aceita email com apóstrofo presente no diretório", func() {
			diretorio.colaboradores["o'brien@empresa.com"] = &entities.ColaboradorFCamara{
				Email:        "o'brien@empresa.com",
				NomeCompleto: "Patrick O'Brien",
			}
			input := validInput
			input.Email = "O'Brien@empresa.com"

			Expect(service.CreateConsultor(ctx, input)).To(Succeed())
			Expect(repo.consultores[1].Email.String()).To(Equal("o'brien@empresa.com"))

			consultor, err := service.ResolveConsultor(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Apelido: strPtr("obrien")})).To(Succeed())
			Expect(service.DeleteConsultor(ctx, 1)).To(Succeed())
		})

		It("o perfil criado pode ser buscado por ID", func() {
			Expect(service.CreateConsultor(ctx, validInput)).To(Succeed())

			perfil, err := service.GetConsultor(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(perfil.Apelido).To(Equal("joao123"))
			Expect(perfil.Admin).To(BeFalse())
			Expect(perfil.Imagem).To(BeNil())
		})

		It("rejeita dados inválidos sem consultar o banco", func() {
			err := service.CreateConsultor(ctx, services.CreateConsultorInput{Apelido: "", Email: "x", Senha: "1"})

			domainErr := expectKind(err, domainerrors.KindValidation)
			Expect(domainErr.Fields).To(HaveLen(3))
			Expect(uow.transactions).To(BeZero())
		})

		It("rejeita email já cadastrado sem diferenciar maiúsculas", func() {
			repo.add(&entities.Consultor{Apelido: "outro", Email: mustEmail("joao@empresa.com"), SenhaHash: "h"})
			input := validInput
			input.Email = "Joao@Empresa.COM"

			err := service.CreateConsultor(ctx, input)

			domainErr := expectKind(err, domainerrors.KindConflict)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgEmailAlreadyRegistered))
			Expect(repo.consultores).To(HaveLen(1))
		})

		It("nega cadastro de email fora do diretório", func() {
			input := validInput
			input.Email = "externo@outra.com"

			err := service.CreateConsultor(ctx, input)

			domainErr := expectKind(err, domainerrors.KindAuthorization)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgConsultorNotIdentified))
			Expect(repo.consultores).To(BeEmpty())
			Expect(hasher.hashed).To(BeEmpty())
		})

		It("converte violação de unicidade no insert em conflito", func() {
			repo.createErr = repositories.ErrEmailConflict

			err := service.CreateConsultor(ctx, validInput)

			expectKind(err, domainerrors.KindConflict)
		})

		It("retorna erro de armazenamento quando o insert falha", func() {
			repo.createErr = errBoom

			err := service.CreateConsultor(ctx, validInput)

			domainErr := expectKind(err, domainerrors.KindStorage)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgCreateFailed))
		})

		It("retorna erro de armazenamento quando a consulta ao diretório falha", func() {
			diretorio.err = errBoom

			err := service.CreateConsultor(ctx, validInput)

			expectKind(err, domainerrors.KindStorage)
		})

		It("retorna erro de validação quando o hash falha", func() {
			hasher.err = errBoom

			err := service.CreateConsultor(ctx, validInput)

			domainErr := expectKind(err, domainerrors.KindValidation)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgPasswordFailed))
		})

		It("retorna erro de armazenamento quando o commit falha", func() {
			uow.commitErr = errBoom

			err := service.CreateConsultor(ctx, validInput)

			expectKind(err, domainerrors.KindStorage)
		})
	})

	Describe("UpdateConsultor", func() {
		var consultor *entities.Consultor

		BeforeEach(func() {
			consultor = repo.add(&entities.Consultor{
				ID:        7,
				Apelido:   "joao123",
				Email:     mustEmail("joao@empresa.com"),
				SenhaHash: "hashed:antiga",
			})
		})

		It("exige ao menos um campo sem tocar no armazenamento", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{})

			domainErr := expectKind(err, domainerrors.KindValidation)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgUpdateRequiresField))
			Expect(repo.updateCalls).To(BeZero())
			Expect(storage.ops).To(BeEmpty())
		})

		It("trata campos vazios como ausentes", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{
				Apelido: strPtr(""),
				Imagem:  strPtr("  "),
				Senha:   strPtr(""),
			})

			expectKind(err, domainerrors.KindValidation)
			Expect(repo.updateCalls).To(BeZero())
		})

		It("atualiza somente o apelido", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Apelido: strPtr("joaozinho")})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastChanges.Apelido).To(HaveValue(Equal("joaozinho")))
			Expect(repo.lastChanges.SenhaHash).To(BeNil())
			Expect(repo.lastChanges.Imagem).To(BeNil())
			Expect(storage.ops).To(BeEmpty())
			Expect(repo.consultores[7].Apelido).To(Equal("joaozinho"))
		})

		It("persiste o apelido sem espaços nas pontas", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Apelido: strPtr(" joaozinho  ")})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastChanges.Apelido).To(HaveValue(Equal("joaozinho")))
		})

		It("trata apelido só com espaços como ausente", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Apelido: strPtr("   ")})

			domainErr := expectKind(err, domainerrors.KindValidation)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgUpdateRequiresField))
			Expect(repo.updateCalls).To(BeZero())
		})

		It("atualiza a senha com hash", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Senha: strPtr("NovaSenha123")})

			Expect(err).NotTo(HaveOccurred())
			Expect(repo.lastChanges.SenhaHash).To(HaveValue(Equal("hashed:NovaSenha123")))
			Expect(repo.lastChanges.Apelido).To(BeNil())
		})

		It("rejeita senha inválida", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Senha: strPtr("123")})

			domainErr := expectKind(err, domainerrors.KindValidation)
			Expect(domainErr.Fields).To(ContainElement(HaveField("Field", "senha")))
			Expect(repo.updateCalls).To(BeZero())
		})

		It("envia o primeiro avatar na chave determinística", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr(pngBase64())})

			Expect(err).NotTo(HaveOccurred())
			Expect(storage.ops).To(Equal([]string{"upload:consultor7/avatar"}))
			Expect(storage.contentTypes["consultor7/avatar"]).To(Equal("image/png"))
			Expect(repo.lastChanges.Imagem).To(HaveValue(Equal(fakeStorageBaseURL + "/consultor7/avatar")))
		})

		It("aceita imagem em data URL", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{
				Imagem: strPtr("data:image/png;base64," + pngBase64()),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(storage.objects).To(HaveKey(valueobjects.AvatarKey("consultor7/avatar")))
		})

		It("apaga o avatar anterior antes de enviar o novo", func() {
			consultor.Imagem = strPtr(fakeStorageBaseURL + "/consultor7/avatar-legado")

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr(pngBase64())})

			Expect(err).NotTo(HaveOccurred())
			Expect(storage.ops).To(Equal([]string{
				"delete:consultor7/avatar-legado",
				"upload:consultor7/avatar",
			}))
		})

		It("aborta sem enviar nem atualizar quando a exclusão do avatar anterior falha", func() {
			consultor.Imagem = strPtr(fakeStorageBaseURL + "/consultor7/avatar")
			storage.deleteErr = errBoom

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr(pngBase64())})

			domainErr := expectKind(err, domainerrors.KindStorage)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgAvatarDeleteFailed))
			Expect(storage.ops).To(Equal([]string{"delete:consultor7/avatar"}))
			Expect(repo.updateCalls).To(BeZero())
		})

		It("não atualiza a linha quando o envio falha", func() {
			storage.uploadErr = errBoom

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr(pngBase64())})

			domainErr := expectKind(err, domainerrors.KindStorage)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgAvatarUploadFailed))
			Expect(repo.updateCalls).To(BeZero())
		})

		It("rejeita imagem inválida sem tocar no armazenamento", func() {
			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr("não é base64!")})

			domainErr := expectKind(err, domainerrors.KindValidation)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgInvalidImage))
			Expect(storage.ops).To(BeEmpty())
		})

		It("calcula o hash antes de alterar o armazenamento", func() {
			consultor.Imagem = strPtr(fakeStorageBaseURL + "/consultor7/avatar")
			hasher.err = errBoom

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{
				Imagem: strPtr(pngBase64()),
				Senha:  strPtr("NovaSenha123"),
			})

			expectKind(err, domainerrors.KindValidation)
			Expect(storage.ops).To(BeEmpty())
		})

		It("remove o avatar enviado quando nenhuma linha é atualizada", func() {
			repo.zeroRows = true

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr(pngBase64())})

			domainErr := expectKind(err, domainerrors.KindState)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgUpdateFailed))
			Expect(storage.ops).To(Equal([]string{"upload:consultor7/avatar", "delete:consultor7/avatar"}))
			Expect(storage.objects).To(BeEmpty())
		})

		It("remove o avatar enviado quando o update falha", func() {
			repo.updateErr = errBoom

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Imagem: strPtr(pngBase64())})

			expectKind(err, domainerrors.KindStorage)
			Expect(storage.objects).To(BeEmpty())
		})

		It("retorna erro de estado sem compensação quando não há imagem", func() {
			repo.zeroRows = true

			err := service.UpdateConsultor(ctx, consultor, services.UpdateConsultorInput{Apelido: strPtr("novo")})

			expectKind(err, domainerrors.KindState)
			Expect(storage.ops).To(BeEmpty())
		})
	})

	Describe("DeleteConsultor", func() {
		It("remove consultor sem avatar", func() {
			c := repo.add(&entities.Consultor{Apelido: "joao123", Email: mustEmail("joao@empresa.com"), SenhaHash: "h"})

			Expect(service.DeleteConsultor(ctx, c.ID)).To(Succeed())
			Expect(repo.consultores).To(BeEmpty())
			Expect(storage.ops).To(BeEmpty())
		})

		It("remove o avatar e depois a linha", func() {
			c := repo.add(&entities.Consultor{
				Apelido:   "joao123",
				Email:     mustEmail("joao@empresa.com"),
				SenhaHash: "h",
				Imagem:    strPtr(fakeStorageBaseURL + "/consultor1/avatar"),
			})

			Expect(service.DeleteConsultor(ctx, c.ID)).To(Succeed())
			Expect(storage.ops).To(Equal([]string{"delete:consultor1/avatar"}))
			Expect(repo.consultores).To(BeEmpty())
		})

		It("retorna não encontrado para ID inexistente", func() {
			err := service.DeleteConsultor(ctx, 404)

			expectKind(err, domainerrors.KindNotFound)
			Expect(repo.deleteCalls).To(BeZero())
		})

		It("mantém a linha quando a exclusão do avatar falha", func() {
			c := repo.add(&entities.Consultor{
				Apelido:   "joao123",
				Email:     mustEmail("joao@empresa.com"),
				SenhaHash: "h",
				Imagem:    strPtr(fakeStorageBaseURL + "/consultor1/avatar"),
			})
			storage.deleteErr = errBoom

			err := service.DeleteConsultor(ctx, c.ID)

			domainErr := expectKind(err, domainerrors.KindStorage)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgAvatarDeleteFailed))
			Expect(repo.consultores).To(HaveKey(c.ID))
			Expect(repo.deleteCalls).To(BeZero())
		})

		It("retorna erro de estado quando nenhuma linha é removida", func() {
			c := repo.add(&entities.Consultor{Apelido: "joao123", Email: mustEmail("joao@empresa.com"), SenhaHash: "h"})
			repo.zeroRows = true

			err := service.DeleteConsultor(ctx, c.ID)

			domainErr := expectKind(err, domainerrors.KindState)
			Expect(domainErr.Key).To(Equal(domainerrors.MsgDeleteFailed))
		})

		It("retorna erro de armazenamento quando o delete falha", func() {
			c := repo.add(&entities.Consultor{Apelido: "joao123", Email: mustEmail("joao@empresa.com"), SenhaHash: "h"})
			repo.deleteErr = errBoom

			err := service.DeleteConsultor(ctx, c.ID)

			expectKind(err, domainerrors.KindStorage)
		})
	})
})
