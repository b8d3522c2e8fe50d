package services_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/fcamara/consultores-api/internal/domain/entities"
	"github.com/fcamara/consultores-api/internal/domain/repositories"
	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
)

var errBoom = errors.New("boom")

type fakeDiretorio struct {
	colaboradores map[string]*entities.ColaboradorFCamara
	err           error
}

func newFakeDiretorio(entries ...entities.ColaboradorFCamara) *fakeDiretorio {
	d := &fakeDiretorio{colaboradores: make(map[string]*entities.ColaboradorFCamara)}
	for i := range entries {
		d.colaboradores[strings.ToLower(entries[i].Email)] = &entries[i]
	}
	return d
}

func (d *fakeDiretorio) FindByEmail(_ context.Context, email string) (*entities.ColaboradorFCamara, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.colaboradores[strings.ToLower(email)], nil
}

type fakeConsultorRepo struct {
	diretorio   *fakeDiretorio
	consultores map[int64]*entities.Consultor
	nextID      int64

	listErr   error
	findErr   error
	existsErr error
	createErr error
	updateErr error
	deleteErr error

	// zeroRows força Update/Delete a não afetarem linhas
	zeroRows bool

	updateCalls int
	lastChanges repositories.ConsultorChanges
	deleteCalls int
}

func newFakeConsultorRepo(diretorio *fakeDiretorio) *fakeConsultorRepo {
	return &fakeConsultorRepo{
		diretorio:   diretorio,
		consultores: make(map[int64]*entities.Consultor),
		nextID:      1,
	}
}

func (r *fakeConsultorRepo) add(c *entities.Consultor) *entities.Consultor {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	r.consultores[c.ID] = c
	return c
}

func (r *fakeConsultorRepo) perfil(c *entities.Consultor) *entities.ConsultorPerfil {
	colaborador := r.diretorio.colaboradores[c.Email.String()]
	if colaborador == nil {
		return nil
	}
	return &entities.ConsultorPerfil{
		NomeCompleto: colaborador.NomeCompleto,
		Apelido:      c.Apelido,
		Email:        c.Email.String(),
		Imagem:       c.Imagem,
		Admin:        c.Admin,
	}
}

func (r *fakeConsultorRepo) ListPerfis(_ context.Context) ([]*entities.ConsultorPerfil, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	perfis := make([]*entities.ConsultorPerfil, 0, len(r.consultores))
	for _, c := range r.consultores {
		if p := r.perfil(c); p != nil {
			perfis = append(perfis, p)
		}
	}
	sort.Slice(perfis, func(i, j int) bool { return perfis[i].Apelido < perfis[j].Apelido })
	return perfis, nil
}

func (r *fakeConsultorRepo) FindPerfilByID(_ context.Context, id int64) (*entities.ConsultorPerfil, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.consultores[id]
	if !ok {
		return nil, nil
	}
	return r.perfil(c), nil
}

func (r *fakeConsultorRepo) FindByID(_ context.Context, id int64) (*entities.Consultor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	c, ok := r.consultores[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeConsultorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, c := range r.consultores {
		if strings.EqualFold(c.Email.String(), email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeConsultorRepo) Create(_ context.Context, consultor *entities.Consultor) error {
	if r.createErr != nil {
		return r.createErr
	}
	copied := *consultor
	r.add(&copied)
	consultor.ID = copied.ID
	return nil
}

func (r *fakeConsultorRepo) Update(_ context.Context, id int64, changes repositories.ConsultorChanges) (int64, error) {
	r.updateCalls++
	r.lastChanges = changes
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	c, ok := r.consultores[id]
	if !ok || r.zeroRows {
		return 0, nil
	}
	if changes.Apelido != nil {
		c.Apelido = *changes.Apelido
	}
	if changes.SenhaHash != nil {
		c.SenhaHash = *changes.SenhaHash
	}
	if changes.Imagem != nil {
		c.Imagem = changes.Imagem
	}
	return 1, nil
}

func (r *fakeConsultorRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.deleteCalls++
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	if _, ok := r.consultores[id]; !ok || r.zeroRows {
		return 0, nil
	}
	delete(r.consultores, id)
	return 1, nil
}

type fakeUnitOfWork struct {
	transactions int
	commitErr    error
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUnitOfWork) Commit(context.Context) error                       { return u.commitErr }
func (u *fakeUnitOfWork) Rollback(context.Context) error                     { return nil }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	u.transactions++
	if err := fn(ctx); err != nil {
		return err
	}
	return u.commitErr
}

const fakeStorageBaseURL = "https://cdn.test/avatares"

type fakeStorage struct {
	objects      map[valueobjects.AvatarKey][]byte
	contentTypes map[valueobjects.AvatarKey]string

	uploadErr error
	deleteErr error

	// ops registra a sequência de operações ("upload:<key>", "delete:<key>")
	ops []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects:      make(map[valueobjects.AvatarKey][]byte),
		contentTypes: make(map[valueobjects.AvatarKey]string),
	}
}

func (s *fakeStorage) Upload(_ context.Context, key valueobjects.AvatarKey, data []byte, contentType string) (string, error) {
	s.ops = append(s.ops, "upload:"+key.String())
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.objects[key] = data
	s.contentTypes[key] = contentType
	return fakeStorageBaseURL + "/" + key.String(), nil
}

func (s *fakeStorage) Delete(_ context.Context, key valueobjects.AvatarKey) error {
	s.ops = append(s.ops, "delete:"+key.String())
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) KeyFromURL(rawURL string) (valueobjects.AvatarKey, error) {
	return valueobjects.AvatarKeyFromURL(fakeStorageBaseURL, rawURL)
}

type fakeHasher struct {
	err    error
	hashed []string
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	h.hashed = append(h.hashed, plain)
	return "hashed:" + plain, nil
}

func (h *fakeHasher) Compare(hash, plain string) bool {
	return hash == "hashed:"+plain
}
