package controllers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/models"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/store"
)

var errMockUnset = errors.New("mock behavior not set")

type MockProductStore struct {
	ListFunc           func(ctx context.Context, skip, limit int64) ([]models.Product, int64, error)
	GetFunc            func(ctx context.Context, id string) (*models.Product, error)
	CreateFunc         func(ctx context.Context, p *models.Product) error
	UpdateFunc         func(ctx context.Context, id string, fields bson.M) error
	DeleteFunc         func(ctx context.Context, id string) error
	ListByManagerFunc  func(ctx context.Context, email string) ([]models.Product, error)
	SetHomeStatusFunc  func(ctx context.Context, id string, show bool) error
	DecrementStockFunc func(ctx context.Context, id string, qty int) error
	RestoreStockFunc   func(ctx context.Context, id string, qty int) error
}

func (m *MockProductStore) List(ctx context.Context, skip, limit int64) ([]models.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (m *MockProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *MockProductStore) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductStore) Update(ctx context.Context, id string, fields bson.M) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProductStore) ListByManager(ctx context.Context, email string) ([]models.Product, error) {
	if m.ListByManagerFunc != nil {
		return m.ListByManagerFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockProductStore) SetHomeStatus(ctx context.Context, id string, show bool) error {
	if m.SetHomeStatusFunc != nil {
		return m.SetHomeStatusFunc(ctx, id, show)
	}
	return nil
}

func (m *MockProductStore) DecrementStock(ctx context.Context, id string, qty int) error {
	if m.DecrementStockFunc != nil {
		return m.DecrementStockFunc(ctx, id, qty)
	}
	return errMockUnset
}

func (m *MockProductStore) RestoreStock(ctx context.Context, id string, qty int) error {
	if m.RestoreStockFunc != nil {
		return m.RestoreStockFunc(ctx, id, qty)
	}
	return nil
}

type MockBookingStore struct {
	InsertFunc          func(ctx context.Context, b *models.Booking) error
	GetFunc             func(ctx context.Context, id string) (*models.Booking, error)
	ListByUserFunc      func(ctx context.Context, email string) ([]models.Booking, error)
	ListAllFunc         func(ctx context.Context) ([]models.Booking, error)
	ManagerPendingFunc  func(ctx context.Context, email string) ([]models.Booking, error)
	ManagerApprovedFunc func(ctx context.Context, email string) ([]models.Booking, error)
	ApplyStatusFunc     func(ctx context.Context, id string, event models.TrackingEvent) (*models.Booking, string, error)
	MarkPaidFunc        func(ctx context.Context, id, transactionID string) (*models.Booking, error)
	DeleteFunc          func(ctx context.Context, id string) error
}

func (m *MockBookingStore) Insert(ctx context.Context, b *models.Booking) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, b)
	}
	return nil
}

func (m *MockBookingStore) Get(ctx context.Context, id string) (*models.Booking, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *MockBookingStore) ListByUser(ctx context.Context, email string) ([]models.Booking, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockBookingStore) ListAll(ctx context.Context) ([]models.Booking, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockBookingStore) ManagerPending(ctx context.Context, email string) ([]models.Booking, error) {
	if m.ManagerPendingFunc != nil {
		return m.ManagerPendingFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockBookingStore) ManagerApproved(ctx context.Context, email string) ([]models.Booking, error) {
	if m.ManagerApprovedFunc != nil {
		return m.ManagerApprovedFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockBookingStore) ApplyStatus(ctx context.Context, id string, event models.TrackingEvent) (*models.Booking, string, error) {
	if m.ApplyStatusFunc != nil {
		return m.ApplyStatusFunc(ctx, id, event)
	}
	return nil, "", errMockUnset
}

func (m *MockBookingStore) MarkPaid(ctx context.Context, id, transactionID string) (*models.Booking, error) {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, id, transactionID)
	}
	return nil, errMockUnset
}

func (m *MockBookingStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockUserStore struct {
	UpsertFunc     func(ctx context.Context, u *models.User) (bool, error)
	ListFunc       func(ctx context.Context) ([]models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	UpdateByIDFunc func(ctx context.Context, id string, fields bson.M) error
}

func (m *MockUserStore) Upsert(ctx context.Context, u *models.User) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, u)
	}
	return true, nil
}

func (m *MockUserStore) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, store.ErrNotFound
}

func (m *MockUserStore) UpdateByID(ctx context.Context, id string, fields bson.M) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, fields)
	}
	return nil
}
