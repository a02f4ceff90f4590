package booking

import (
	"context"
	"testing"
	"time"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking, equipmentIDs []int64) error {
	args := m.Called(ctx, b, equipmentIDs)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetDetails(ctx context.Context, id int64) (*repository.BookingDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) ListDetails(ctx context.Context) ([]repository.BookingDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetUnitPrice(ctx context.Context, equipmentID int64) (float64, error) {
	args := m.Called(ctx, equipmentID)
	return args.Get(0).(float64), args.Error(1)
}

func days(v float64) *float64 { return &v }

func TestComputeTotal_SumsUnitPrices(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(1)).Return(10.0, nil)
	mockCatalog.On("GetUnitPrice", mock.Anything, int64(2)).Return(20.0, nil)

	service := NewService(mockBookings, mockCatalog)

	total, err := service.ComputeTotal(context.Background(), []int64{1, 2}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 90.0, total)
}

func TestComputeTotal_EmptyListYieldsZero(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)
	service := NewService(mockBookings, mockCatalog)

	total, err := service.ComputeTotal(context.Background(), nil, 7)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, total)
	mockCatalog.AssertNotCalled(t, "GetUnitPrice", mock.Anything, mock.Anything)
}

func TestComputeTotal_DuplicatesPricedIndependently(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(5)).Return(10.0, nil)

	service := NewService(mockBookings, mockCatalog)

	total, err := service.ComputeTotal(context.Background(), []int64{5, 5}, 2)

	assert.NoError(t, err)
	assert.Equal(t, 40.0, total)
	mockCatalog.AssertNumberOfCalls(t, "GetUnitPrice", 2)
}

func TestComputeTotal_UnknownEquipment(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(1)).Return(10.0, nil)
	mockCatalog.On("GetUnitPrice", mock.Anything, int64(999)).Return(0.0, repository.ErrNotFound)

	service := NewService(mockBookings, mockCatalog)

	_, err := service.ComputeTotal(context.Background(), []int64{1, 999}, 2)

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestCreateBooking_FixesTotalPrice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(3)).Return(15.0, nil)
	mockCatalog.On("GetUnitPrice", mock.Anything, int64(4)).Return(5.0, nil)

	var created *domain.Booking
	mockBookings.On("Create", mock.Anything, mock.Anything, []int64{3, 4}).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Booking)
		}).
		Return(nil)
	mockBookings.On("GetDetails", mock.Anything, int64(999)).Return(&repository.BookingDetails{
		ID:           999,
		Duration:     2,
		TotalPrice:   40,
		UserName:     "Clint",
		EquipmentIDs: []int64{3, 4},
	}, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		StartDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Duration:     days(2),
		EquipmentIDs: []int64{3, 4},
	}

	d, err := service.CreateBooking(context.Background(), 7, req)

	assert.NoError(t, err)
	assert.NotNil(t, d)
	assert.Equal(t, 40.0, d.TotalPrice)
	assert.Equal(t, 40.0, created.TotalPrice)
	assert.Equal(t, int64(7), created.UserID)
	mockBookings.AssertExpectations(t)
}

func TestCreateBooking_UnknownEquipmentPersistsNothing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(999)).Return(0.0, repository.ErrNotFound)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		StartDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Duration:     days(2),
		EquipmentIDs: []int64{999},
	}

	_, err := service.CreateBooking(context.Background(), 7, req)

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_ZeroDurationYieldsZeroTotal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(3)).Return(15.0, nil)

	var created *domain.Booking
	mockBookings.On("Create", mock.Anything, mock.Anything, []int64{3}).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Booking)
		}).
		Return(nil)
	mockBookings.On("GetDetails", mock.Anything, int64(999)).Return(&repository.BookingDetails{
		ID:           999,
		UserName:     "Clint",
		EquipmentIDs: []int64{3},
	}, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		StartDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Duration:     days(0),
		EquipmentIDs: []int64{3},
	}

	_, err := service.CreateBooking(context.Background(), 7, req)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, created.TotalPrice)
	assert.Equal(t, 0.0, created.Duration)
	mockBookings.AssertExpectations(t)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)
	service := NewService(mockBookings, mockCatalog)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_RepeatedIDsLinkOnce(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockCatalog.On("GetUnitPrice", mock.Anything, int64(5)).Return(10.0, nil)

	mockBookings.On("Create", mock.Anything, mock.Anything, []int64{5}).Return(nil)
	mockBookings.On("GetDetails", mock.Anything, int64(999)).Return(&repository.BookingDetails{
		ID:           999,
		TotalPrice:   40,
		EquipmentIDs: []int64{5},
	}, nil)

	service := NewService(mockBookings, mockCatalog)

	req := CreateBookingRequest{
		StartDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Duration:     days(2),
		EquipmentIDs: []int64{5, 5},
	}

	d, err := service.CreateBooking(context.Background(), 7, req)

	assert.NoError(t, err)
	// both occurrences priced, a single join row written
	assert.Equal(t, 40.0, d.TotalPrice)
	mockBookings.AssertExpectations(t)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalog)

	mockBookings.On("Delete", mock.Anything, int64(42)).Return(repository.ErrNotFound)

	service := NewService(mockBookings, mockCatalog)

	err := service.DeleteBooking(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
