package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/testutil"
)

func TestBusinessUseCase_Authorize(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewBusinessUseCase(store.Businesses())
	ctx := context.Background()

	b, err := uc.Create(ctx, "owner", dto.CreateBusinessRequest{Name: "Kopi Senja", Category: "kuliner"})
	require.NoError(t, err)

	_, err = uc.Authorize(ctx, "owner", entity.RoleUser, b.ID)
	assert.NoError(t, err)

	_, err = uc.Authorize(ctx, "otro", entity.RoleUser, b.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Authorize(ctx, "otro", entity.RoleAdmin, b.ID)
	assert.NoError(t, err, "el administrador accede a cualquier negocio")

	_, err = uc.Authorize(ctx, "owner", entity.RoleUser, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionUseCase_SignoPorTipo(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewTransactionUseCase(store.Transactions())
	ctx := context.Background()

	sale, err := uc.Create(ctx, bizID, dto.CreateTransactionRequest{Type: "sale", Amount: decimal.NewFromInt(-50000)})
	require.NoError(t, err)
	assert.Equal(t, "50000", sale.Amount.String())

	expense, err := uc.Create(ctx, bizID, dto.CreateTransactionRequest{Type: "expense", Amount: decimal.NewFromInt(20000)})
	require.NoError(t, err)
	assert.Equal(t, "-20000", expense.Amount.String())

	_, err = uc.Create(ctx, bizID, dto.CreateTransactionRequest{Type: "refund", Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransactionUseCase_ListMasRecientesPrimero(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewTransactionUseCase(store.Transactions())
	ctx := context.Background()

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Create(ctx, bizID, dto.CreateTransactionRequest{Type: "sale", Amount: decimal.NewFromInt(1), Date: &old})
	require.NoError(t, err)
	_, err = uc.Create(ctx, bizID, dto.CreateTransactionRequest{Type: "sale", Amount: decimal.NewFromInt(2), Date: &recent})
	require.NoError(t, err)

	list, err := uc.List(ctx, bizID, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, recent.Equal(list[0].Date))
}

func TestFileUseCase_Arbol(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewFileUseCase(store.Files())
	ctx := context.Background()

	folder, err := uc.Create(ctx, bizID, dto.CreateFileRequest{Name: "Nota", IsFolder: true, Type: "image/png", Size: 99})
	require.NoError(t, err)
	assert.Equal(t, entity.FolderType, folder.Type)
	assert.Zero(t, folder.Size)

	file, err := uc.Create(ctx, bizID, dto.CreateFileRequest{ParentID: &folder.ID, Name: "struk.jpg", Type: "image/jpeg", Size: 2048})
	require.NoError(t, err)

	_, err = uc.Create(ctx, bizID, dto.CreateFileRequest{ParentID: &file.ID, Name: "x.txt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un archivo no puede contener hijos")

	missing := "00000000-0000-0000-0000-00000000dead"
	_, err = uc.Create(ctx, bizID, dto.CreateFileRequest{ParentID: &missing, Name: "x.txt"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	root, err := uc.List(ctx, bizID, nil)
	require.NoError(t, err)
	require.Len(t, root, 1)

	children, err := uc.List(ctx, bizID, &folder.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)

	untyped, err := uc.Create(ctx, bizID, dto.CreateFileRequest{Name: "sin-tipo"})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", untyped.Type)

	deleted, err := uc.Delete(ctx, bizID, folder.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted.Deleted)

	_, err = uc.Delete(ctx, bizID, folder.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTodoUseCase_ToggleYFiltro(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewTodoUseCase(store.Todos())
	ctx := context.Background()

	a, err := uc.Create(ctx, bizID, dto.CreateTodoRequest{Text: "Beli gula"})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityMedium, a.Priority)
	_, err = uc.Create(ctx, bizID, dto.CreateTodoRequest{Text: "Foto produk", Priority: "high"})
	require.NoError(t, err)

	toggled, err := uc.Toggle(ctx, bizID, a.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	active, err := uc.List(ctx, bizID, dto.TodoListRequest{Status: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Foto produk", active[0].Text)

	all, err := uc.List(ctx, bizID, dto.TodoListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.Toggle(ctx, bizID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUseCase_AdminNoSeSuspendeASiMismo(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewUserUseCase(store.Users())

	_, err := uc.UpdateStatus(context.Background(), "u1", "u1", dto.UpdateUserStatusRequest{Status: "suspended"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
