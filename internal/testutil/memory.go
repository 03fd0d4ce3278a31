// Package testutil contiene implementaciones en memoria de los puertos de persistencia y de IA
// para pruebas de casos de uso y handlers.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/domain/repository"
)

// Store agrupa todos los repositorios en memoria. Es seguro para uso concurrente.
type Store struct {
	mu           sync.Mutex
	users        map[string]entity.User
	businesses   map[string]entity.Business
	products     []entity.Product
	materials    map[string]entity.Material
	todos        []entity.Todo
	files        []entity.FileItem
	transactions []entity.Transaction
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		businesses: make(map[string]entity.Business),
		materials:  make(map[string]entity.Material),
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Businesses devuelve el repositorio de negocios.
func (s *Store) Businesses() repository.BusinessRepository { return businessRepo{s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return productRepo{s} }

// Materials devuelve el repositorio de materias primas.
func (s *Store) Materials() repository.MaterialRepository { return materialRepo{s} }

// Todos devuelve el repositorio de tareas.
func (s *Store) Todos() repository.TodoRepository { return todoRepo{s} }

// Files devuelve el repositorio de archivos.
func (s *Store) Files() repository.FileRepository { return fileRepo{s} }

// Transactions devuelve el repositorio de transacciones.
func (s *Store) Transactions() repository.TransactionRepository { return transactionRepo{s} }

// RunRestock ejecuta fn con los repositorios del almacén. Implementa ports.TxRunner;
// si fn falla, el estado de materiales y transacciones se restaura.
func (s *Store) RunRestock(ctx context.Context, fn func(materials repository.MaterialRepository, transactions repository.TransactionRepository) error) error {
	s.mu.Lock()
	materials := make(map[string]entity.Material, len(s.materials))
	for k, v := range s.materials {
		materials[k] = v
	}
	txs := append([]entity.Transaction(nil), s.transactions...)
	s.mu.Unlock()

	if err := fn(s.Materials(), s.Transactions()); err != nil {
		s.mu.Lock()
		s.materials = materials
		s.transactions = txs
		s.mu.Unlock()
		return err
	}
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Status = status
	r.s.users[id] = u
	return nil
}

func (r userRepo) ListWithStats(_ context.Context, limit, offset int) ([]*entity.UserWithStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.UserWithStats, 0, len(r.s.users))
	for _, u := range r.s.users {
		n := 0
		for _, b := range r.s.businesses {
			if b.OwnerID == u.ID {
				n++
			}
		}
		out = append(out, &entity.UserWithStats{User: u, BusinessCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return window(out, limit, offset), nil
}

type businessRepo struct{ s *Store }

func (r businessRepo) Create(_ context.Context, b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.businesses[b.ID] = *b
	return nil
}

func (r businessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r businessRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Business, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Business
	for _, b := range r.s.businesses {
		if b.OwnerID == ownerID {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r businessRepo) Update(_ context.Context, b *entity.Business) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.businesses[b.ID] = *b
	return nil
}

func (r businessRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.businesses, id)
	return nil
}

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, *p)
	return nil
}

func (r productRepo) GetByID(_ context.Context, businessID, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.BusinessID == businessID && p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.products {
		if existing.BusinessID == p.BusinessID && existing.ID == p.ID {
			r.s.products[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r productRepo) Delete(_ context.Context, businessID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.BusinessID == businessID && p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// List conserva el orden de inserción, que es el orden de creación.
func (r productRepo) List(_ context.Context, businessID string, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(f.Query)
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.BusinessID != businessID {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		p := p
		out = append(out, &p)
	}
	return window(out, f.Limit, f.Offset), nil
}

type materialRepo struct{ s *Store }

func (r materialRepo) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.materials[m.ID] = *m
	return nil
}

func (r materialRepo) GetByID(_ context.Context, businessID, id string) (*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materials[id]
	if !ok || m.BusinessID != businessID {
		return nil, nil
	}
	return &m, nil
}

func (r materialRepo) GetForUpdate(ctx context.Context, businessID, id string) (*entity.Material, error) {
	return r.GetByID(ctx, businessID, id)
}

func (r materialRepo) Update(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.materials[m.ID]
	if !ok || existing.BusinessID != m.BusinessID {
		return domain.ErrNotFound
	}
	r.s.materials[m.ID] = *m
	return nil
}

func (r materialRepo) Delete(_ context.Context, businessID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materials[id]
	if !ok || m.BusinessID != businessID {
		return domain.ErrNotFound
	}
	delete(r.s.materials, id)
	return nil
}

func (r materialRepo) List(_ context.Context, businessID, query string) ([]*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(query)
	var out []*entity.Material
	for _, m := range r.s.materials {
		if m.BusinessID != businessID || (q != "" && !strings.Contains(strings.ToLower(m.Name), q)) {
			continue
		}
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type todoRepo struct{ s *Store }

func (r todoRepo) Create(_ context.Context, t *entity.Todo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.todos = append(r.s.todos, *t)
	return nil
}

func (r todoRepo) GetByID(_ context.Context, businessID, id string) (*entity.Todo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.todos {
		if t.BusinessID == businessID && t.ID == id {
			return &t, nil
		}
	}
	return nil, nil
}

func (r todoRepo) Update(_ context.Context, t *entity.Todo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.todos {
		if existing.BusinessID == t.BusinessID && existing.ID == t.ID {
			r.s.todos[i] = *t
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r todoRepo) Delete(_ context.Context, businessID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.todos {
		if t.BusinessID == businessID && t.ID == id {
			r.s.todos = append(r.s.todos[:i], r.s.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r todoRepo) List(_ context.Context, businessID string, f repository.TodoFilter) ([]*entity.Todo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(f.Query)
	var out []*entity.Todo
	for _, t := range r.s.todos {
		if t.BusinessID != businessID {
			continue
		}
		if (f.Status == repository.TodoStatusActive && t.Completed) || (f.Status == repository.TodoStatusCompleted && !t.Completed) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Text), q) {
			continue
		}
		t := t
		out = append(out, &t)
	}
	sort.SliceStable(out, func(i, j int) bool { return !out[i].Completed && out[j].Completed })
	return out, nil
}

type fileRepo struct{ s *Store }

func (r fileRepo) Create(_ context.Context, f *entity.FileItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.files = append(r.s.files, *f)
	return nil
}

func (r fileRepo) GetByID(_ context.Context, businessID, id string) (*entity.FileItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.files {
		if f.BusinessID == businessID && f.ID == id {
			return &f, nil
		}
	}
	return nil, nil
}

func (r fileRepo) ListChildren(_ context.Context, businessID string, parentID *string) ([]*entity.FileItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.FileItem
	for _, f := range r.s.files {
		if f.BusinessID == businessID && sameParent(f.ParentID, parentID) {
			f := f
			out = append(out, &f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFolder != out[j].IsFolder {
			return out[i].IsFolder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r fileRepo) DeleteTree(_ context.Context, businessID, id string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doomed := map[string]bool{}
	for _, f := range r.s.files {
		if f.BusinessID == businessID && f.ID == id {
			doomed[id] = true
		}
	}
	if len(doomed) == 0 {
		return 0, domain.ErrNotFound
	}
	for grown := true; grown; {
		grown = false
		for _, f := range r.s.files {
			if f.ParentID != nil && doomed[*f.ParentID] && !doomed[f.ID] {
				doomed[f.ID] = true
				grown = true
			}
		}
	}
	kept := r.s.files[:0]
	for _, f := range r.s.files {
		if !doomed[f.ID] {
			kept = append(kept, f)
		}
	}
	r.s.files = kept
	return int64(len(doomed)), nil
}

func sameParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type transactionRepo struct{ s *Store }

func (r transactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transactions = append(r.s.transactions, *t)
	return nil
}

func (r transactionRepo) ListByBusiness(_ context.Context, businessID string, limit int) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.s.transactions {
		if t.BusinessID == businessID {
			t := t
			out = append(out, &t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return window(out, limit, 0), nil
}

func window[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
