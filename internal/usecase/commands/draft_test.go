//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"vps-rental/internal/domain/order"
	"vps-rental/internal/infra"
	"vps-rental/internal/infra/db"
	"vps-rental/internal/pkg/errs"
	"vps-rental/internal/usecase/commands"
	"vps-rental/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passthroughUoW runs the closure directly; transaction semantics are covered
// by the real pgx implementation.
type passthroughUoW struct{}

func (passthroughUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Snapshot(ctx context.Context, id int64) (*commands.OrderSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*commands.OrderSnapshot)
	return snap, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status, moderatorID *int64) error {
	args := m.Called(ctx, id, status, moderatorID)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteLine(ctx context.Context, orderID, offeringID int64) error {
	args := m.Called(ctx, orderID, offeringID)
	return args.Error(0)
}

func (m *MockOrderRepository) FindDraftIDByCreator(ctx context.Context, tx db.DBTX, creatorID int64) (int64, error) {
	args := m.Called(ctx, tx, creatorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CreateDraft(ctx context.Context, tx db.DBTX, creatorID int64) (int64, error) {
	args := m.Called(ctx, tx, creatorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) LineExists(ctx context.Context, tx db.DBTX, orderID, offeringID int64) (bool, error) {
	args := m.Called(ctx, tx, orderID, offeringID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) InsertLine(ctx context.Context, tx db.DBTX, orderID, offeringID int64) error {
	args := m.Called(ctx, tx, orderID, offeringID)
	return args.Error(0)
}

type MockOfferingRepository struct {
	mock.Mock
}

func (m *MockOfferingRepository) Create(ctx context.Context, params commands.SaveOfferingParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferingRepository) Update(ctx context.Context, id int64, params commands.SaveOfferingParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockOfferingRepository) Snapshot(ctx context.Context, id int64) (*commands.OfferingSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*commands.OfferingSnapshot)
	return snap, args.Error(1)
}

func (m *MockOfferingRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.OrderView)
	return view, args.Error(1)
}

func TestDraftAddOffering(t *testing.T) {
	ctx := context.Background()
	actor := order.Actor{UserID: 10, Role: "customer"}
	activeOffering := &commands.OfferingSnapshot{ID: 5, IsActive: true}

	t.Run("appends to existing draft", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		offeringRepo := new(MockOfferingRepository)
		reader := new(MockOrderReader)

		offeringRepo.On("Snapshot", ctx, int64(5)).Return(activeOffering, nil)
		orderRepo.On("FindDraftIDByCreator", ctx, nil, int64(10)).Return(int64(77), nil)
		orderRepo.On("LineExists", ctx, nil, int64(77), int64(5)).Return(false, nil)
		orderRepo.On("InsertLine", ctx, nil, int64(77), int64(5)).Return(nil)
		reader.On("FindByID", ctx, int64(77)).Return(&queries.OrderView{ID: 77, Status: "DRAFT"}, nil)

		cmd := commands.NewDraftCommands(passthroughUoW{}, orderRepo, offeringRepo, reader)
		view, err := cmd.AddOffering(ctx, actor, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(77), view.ID)
		orderRepo.AssertExpectations(t)
	})

	t.Run("creates draft when none exists", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		offeringRepo := new(MockOfferingRepository)
		reader := new(MockOrderReader)

		notFound := infra.WrapRepoErr("draft not found", nil, infra.KindNotFound)
		offeringRepo.On("Snapshot", ctx, int64(5)).Return(activeOffering, nil)
		orderRepo.On("FindDraftIDByCreator", ctx, nil, int64(10)).Return(int64(0), notFound)
		orderRepo.On("CreateDraft", ctx, nil, int64(10)).Return(int64(88), nil)
		orderRepo.On("LineExists", ctx, nil, int64(88), int64(5)).Return(false, nil)
		orderRepo.On("InsertLine", ctx, nil, int64(88), int64(5)).Return(nil)
		reader.On("FindByID", ctx, int64(88)).Return(&queries.OrderView{ID: 88, Status: "DRAFT"}, nil)

		cmd := commands.NewDraftCommands(passthroughUoW{}, orderRepo, offeringRepo, reader)
		view, err := cmd.AddOffering(ctx, actor, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(88), view.ID)
		orderRepo.AssertExpectations(t)
	})

	t.Run("duplicate offering conflicts and inserts nothing", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		offeringRepo := new(MockOfferingRepository)
		reader := new(MockOrderReader)

		offeringRepo.On("Snapshot", ctx, int64(5)).Return(activeOffering, nil)
		orderRepo.On("FindDraftIDByCreator", ctx, nil, int64(10)).Return(int64(77), nil)
		orderRepo.On("LineExists", ctx, nil, int64(77), int64(5)).Return(true, nil)

		cmd := commands.NewDraftCommands(passthroughUoW{}, orderRepo, offeringRepo, reader)
		_, err := cmd.AddOffering(ctx, actor, 5)

		assert.ErrorIs(t, err, errs.ErrDuplicateLine)
		orderRepo.AssertNotCalled(t, "InsertLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		reader.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("inactive offering behaves like missing", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		offeringRepo := new(MockOfferingRepository)
		reader := new(MockOrderReader)

		offeringRepo.On("Snapshot", ctx, int64(5)).Return(&commands.OfferingSnapshot{ID: 5, IsActive: false}, nil)

		cmd := commands.NewDraftCommands(passthroughUoW{}, orderRepo, offeringRepo, reader)
		_, err := cmd.AddOffering(ctx, actor, 5)

		assert.ErrorIs(t, err, errs.ErrOfferingNotFound)
		orderRepo.AssertNotCalled(t, "FindDraftIDByCreator", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing offering", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		offeringRepo := new(MockOfferingRepository)
		reader := new(MockOrderReader)

		notFound := infra.WrapRepoErr("offering not found", nil, infra.KindNotFound)
		offeringRepo.On("Snapshot", ctx, int64(404)).Return(nil, notFound)

		cmd := commands.NewDraftCommands(passthroughUoW{}, orderRepo, offeringRepo, reader)
		_, err := cmd.AddOffering(ctx, actor, 404)

		assert.ErrorIs(t, err, errs.ErrOfferingNotFound)
	})

	t.Run("insert race maps duplicate key to conflict", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		offeringRepo := new(MockOfferingRepository)
		reader := new(MockOrderReader)

		dup := infra.WrapRepoErr("order line already exists", errors.New("23505"), infra.KindDuplicateKey)
		offeringRepo.On("Snapshot", ctx, int64(5)).Return(activeOffering, nil)
		orderRepo.On("FindDraftIDByCreator", ctx, nil, int64(10)).Return(int64(77), nil)
		orderRepo.On("LineExists", ctx, nil, int64(77), int64(5)).Return(false, nil)
		orderRepo.On("InsertLine", ctx, nil, int64(77), int64(5)).Return(dup)

		cmd := commands.NewDraftCommands(passthroughUoW{}, orderRepo, offeringRepo, reader)
		_, err := cmd.AddOffering(ctx, actor, 5)

		assert.ErrorIs(t, err, errs.ErrDuplicateLine)
	})
}
