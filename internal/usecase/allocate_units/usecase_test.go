package allocate_units

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// mockBookingClient отдает фикстуры и записывает созданные назначения
type mockBookingClient struct {
	units     []domain.RentalUnit
	unitsErr  error
	model     *domain.ProductModel
	modelErr  error
	created   []bookingservice.CreateRentalUnitAssignmentRequest
	failUnits map[int64]error
}

func (m *mockBookingClient) ListRentalUnits(ctx context.Context, groupID, productModelID int64) ([]domain.RentalUnit, error) {
	if m.unitsErr != nil {
		return nil, m.unitsErr
	}
	return m.units, nil
}

func (m *mockBookingClient) GetProductModel(ctx context.Context, productModelID int64) (*domain.ProductModel, error) {
	if m.modelErr != nil {
		return nil, m.modelErr
	}
	return m.model, nil
}

func (m *mockBookingClient) CreateRentalUnitAssignment(ctx context.Context, req *bookingservice.CreateRentalUnitAssignmentRequest) error {
	if err, ok := m.failUnits[req.RentalUnitID]; ok {
		return err
	}
	m.created = append(m.created, *req)
	return nil
}

func validRequest() *Request {
	return &Request{
		GroupID:        100,
		ProductModelID: 7,
		GroupSize:      10,
		UnitIDs:        []int64{1, 2},
	}
}

func twoUnits() []domain.RentalUnit {
	return []domain.RentalUnit{
		{ID: 1, Name: "Cabin A", Capacity: 6},
		{ID: 2, Name: "Cabin B", Capacity: 6},
	}
}

func TestExecute_AllocatesGroup(t *testing.T) {
	client := &mockBookingClient{
		units: twoUnits(),
		model: &domain.ProductModel{ID: 7, QtyAccountingMethod: domain.QtyAccountingPerson},
	}
	uc := NewUseCase(client, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Группа из 10 человек по двум шестиместным домикам: оба получают
	// qty 6, суммарно допускается перекрытие требуемой вместимости
	require.Len(t, resp.Assigned, 2)
	assert.Equal(t, 6, resp.Assigned[0].Qty)
	assert.Equal(t, 6, resp.Assigned[1].Qty)
	assert.Equal(t, 12, resp.TotalQty)
	assert.Empty(t, resp.Failed)

	require.Len(t, client.created, 2)
	assert.Equal(t, int64(100), client.created[0].GroupID)
}

func TestExecute_AccountsAlreadyAssigned(t *testing.T) {
	client := &mockBookingClient{
		units: []domain.RentalUnit{{ID: 1, Capacity: 6}},
		model: &domain.ProductModel{ID: 7},
	}
	uc := NewUseCase(client, noopLogger{})

	req := validRequest()
	req.UnitIDs = []int64{1}
	req.AlreadyAssignedQty = 6 // осталось разместить 4

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Assigned, 1)
	assert.Equal(t, 4, resp.Assigned[0].Qty)
}

func TestExecute_ModelCapacityCapsQty(t *testing.T) {
	client := &mockBookingClient{
		units: []domain.RentalUnit{{ID: 1, Capacity: 8}},
		model: &domain.ProductModel{
			ID:                  7,
			QtyAccountingMethod: domain.QtyAccountingAccommodation,
			Capacity:            ptr.Ptr(4),
		},
	}
	uc := NewUseCase(client, noopLogger{})

	req := validRequest()
	req.UnitIDs = []int64{1}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Assigned, 1)
	assert.Equal(t, 4, resp.Assigned[0].Qty)
}

func TestExecute_PartialFailure(t *testing.T) {
	client := &mockBookingClient{
		units:     twoUnits(),
		model:     &domain.ProductModel{ID: 7},
		failUnits: map[int64]error{2: bookingservice.ErrUpdateRejected},
	}
	uc := NewUseCase(client, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отказ по одному средству не отменяет остальные
	require.Len(t, resp.Assigned, 1)
	assert.Equal(t, int64(1), resp.Assigned[0].UnitID)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, int64(2), resp.Failed[0].UnitID)
	assert.Equal(t, 6, resp.Failed[0].Qty)
}

func TestExecute_AllAssignmentsFailed(t *testing.T) {
	client := &mockBookingClient{
		units: twoUnits(),
		model: &domain.ProductModel{ID: 7},
		failUnits: map[int64]error{
			1: bookingservice.ErrUpdateRejected,
			2: bookingservice.ErrUpdateRejected,
		},
	}
	uc := NewUseCase(client, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAllAssignmentsFailed)
}

func TestExecute_SelectionFiltersUnknownUnits(t *testing.T) {
	client := &mockBookingClient{
		units: twoUnits(),
		model: &domain.ProductModel{ID: 7},
	}
	uc := NewUseCase(client, noopLogger{})

	req := validRequest()
	req.UnitIDs = []int64{2, 99} // 99 недоступен для группы

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Assigned, 1)
	assert.Equal(t, int64(2), resp.Assigned[0].UnitID)
}

func TestExecute_NoUnitsAvailable(t *testing.T) {
	client := &mockBookingClient{
		units: twoUnits(),
		model: &domain.ProductModel{ID: 7},
	}
	uc := NewUseCase(client, noopLogger{})

	req := validRequest()
	req.UnitIDs = []int64{98, 99}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoUnitsSelected)
}

func TestExecute_UpstreamErrors(t *testing.T) {
	uc := NewUseCase(&mockBookingClient{unitsErr: bookingservice.ErrGroupNotFound}, noopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGroupNotFound)

	uc = NewUseCase(&mockBookingClient{units: twoUnits(), modelErr: bookingservice.ErrProductModelNotFound}, noopLogger{})
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProductModelNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockBookingClient{}, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing group id", func(r *Request) { r.GroupID = 0 }},
		{"missing product model id", func(r *Request) { r.ProductModelID = 0 }},
		{"zero group size", func(r *Request) { r.GroupSize = 0 }},
		{"negative assigned qty", func(r *Request) { r.AlreadyAssignedQty = -1 }},
		{"no units selected", func(r *Request) { r.UnitIDs = nil }},
		{"bad unit id", func(r *Request) { r.UnitIDs = []int64{1, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
