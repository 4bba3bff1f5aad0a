package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/internal/service"
	mock_service "github.com/drone-project-m2gla/project-repository/internal/service/mocks"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

func newCreateRequest() domain.CreateInterventionRequest {
	return domain.CreateInterventionRequest{
		Name:         "Test Intervention",
		Address:      "36 rue des chataigners",
		PostCode:     "35830",
		City:         "Betton",
		DisasterCode: domain.DisasterAVP,
	}
}

func TestCreate_GeocodesAndSeedsDefaultRoster(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)
	geo := mock_service.NewMockGeocoder(ctrl)

	req := newCreateRequest()
	pos := domain.NewPosition(48.1839, -1.6536)

	geo.EXPECT().
		Locate(gomock.Any(), req.Address, req.PostCode, req.City).
		Return(pos, nil).
		Times(1)

	var created *domain.Intervention
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, itv *domain.Intervention) error {
			created = itv
			return nil
		}).
		Times(1)

	svc := service.NewInterventionService(repo, geo, nil, newTestLogger(), 3)

	got, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatalf("expected identity assigned")
	}
	if !got.Coordinates.Equal(pos) {
		t.Fatalf("expected geocoded coordinates, got %+v", got.Coordinates)
	}
	if len(got.Means) == 0 || got.Means[0].State != domain.MeanActivated {
		t.Fatalf("expected default roster with ACTIVATED means[0]: %+v", got.Means)
	}
	if created != got {
		t.Fatalf("service must persist the aggregate it returns")
	}
}

func TestCreate_GeocodeFailure_LeavesCoordinatesUnset(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)
	geo := mock_service.NewMockGeocoder(ctrl)

	req := newCreateRequest()

	geo.EXPECT().
		Locate(gomock.Any(), req.Address, req.PostCode, req.City).
		Return(domain.UnsetPosition(), errors.New("geocoder unavailable")).
		Times(1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewInterventionService(repo, geo, nil, newTestLogger(), 3)

	got, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("geocode failure must not fail creation: %v", err)
	}
	if !got.Coordinates.IsUnset() {
		t.Fatalf("expected unset coordinates, got %+v", got.Coordinates)
	}
}

func TestCreate_CallerSuppliedRosterWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)
	geo := mock_service.NewMockGeocoder(ctrl)

	req := newCreateRequest()
	req.Means = &[]domain.Mean{
		{Vehicle: domain.VehicleVSAV, State: domain.MeanActivated},
		{Vehicle: domain.VehicleVSAV, State: domain.MeanRefused},
	}

	geo.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UnsetPosition(), nil).Times(1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewInterventionService(repo, geo, nil, newTestLogger(), 3)

	got, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Means) != 2 {
		t.Fatalf("expected caller roster kept, got %d means", len(got.Means))
	}
	if got.Means[1].State != domain.MeanRefused {
		t.Fatalf("caller-supplied state must be kept: %+v", got.Means[1])
	}
	if got.Means[1].DateRefused == nil {
		t.Fatalf("expected DateRefused stamped on refused mean")
	}
	if got.Means[0].ID == uuid.Nil || got.Means[1].ID == uuid.Nil {
		t.Fatalf("expected identities assigned to caller means")
	}
}

func TestCreate_EmptyRosterIsAllowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)
	geo := mock_service.NewMockGeocoder(ctrl)

	req := newCreateRequest()
	req.Means = &[]domain.Mean{}

	geo.EXPECT().Locate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UnsetPosition(), nil).Times(1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewInterventionService(repo, geo, nil, newTestLogger(), 3)

	got, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Means) != 0 {
		t.Fatalf("explicit empty roster must stay empty, got %d", len(got.Means))
	}
}

func TestGetMeans_ReturnsFullListInStoredOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)

	itv := newTestIntervention(t, domain.MeanReleased)
	itv.AddMean(domain.Mean{Vehicle: domain.VehicleVSAV, State: domain.MeanRefused}, time.Now())

	repo.EXPECT().Get(gomock.Any(), itv.ID).Return(itv, nil).Times(1)

	svc := service.NewInterventionService(repo, nil, nil, newTestLogger(), 3)

	means, err := svc.GetMeans(context.Background(), itv.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(means) != len(itv.Means) {
		t.Fatalf("list must be unfiltered: got %d want %d", len(means), len(itv.Means))
	}
	for i := range means {
		if means[i].ID != itv.Means[i].ID {
			t.Fatalf("order must be preserved at index %d", i)
		}
	}
}

func TestGetMean_NotFoundSignal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)

	itv := newTestIntervention(t, domain.MeanActivated)

	repo.EXPECT().Get(gomock.Any(), itv.ID).Return(itv, nil).Times(1)

	svc := service.NewInterventionService(repo, nil, nil, newTestLogger(), 3)

	_, err := svc.GetMean(context.Background(), itv.ID, uuid.New())
	if !errors.Is(err, e.ErrMeanNotFound) {
		t.Fatalf("expected ErrMeanNotFound got %v", err)
	}
}

func TestAddMean_AppendsAndRetriesOnConflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)

	itv := newTestIntervention(t, domain.MeanActivated)
	extra := domain.Mean{Vehicle: domain.VehicleEPA, State: domain.MeanRefused}

	repo.EXPECT().Get(gomock.Any(), itv.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (*domain.Intervention, error) {
			return cloneIntervention(itv), nil
		}).Times(2)
	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(e.ErrConflict).Times(1),
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got *domain.Intervention) error {
				if len(got.Means) != len(itv.Means)+1 {
					t.Fatalf("expected appended roster, got %d", len(got.Means))
				}
				last := got.Means[len(got.Means)-1]
				if last.State != domain.MeanRefused || last.Vehicle != domain.VehicleEPA {
					t.Fatalf("unexpected appended mean: %+v", last)
				}
				return nil
			}).Times(1),
	)

	svc := service.NewInterventionService(repo, nil, nil, newTestLogger(), 3)

	added, err := svc.AddMean(context.Background(), itv.ID, extra)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if added.ID == uuid.Nil {
		t.Fatalf("expected identity assigned")
	}
}

func TestAddMean_RetriesOnStorageTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)

	itv := newTestIntervention(t, domain.MeanActivated)
	extra := domain.Mean{Vehicle: domain.VehicleCCF, State: domain.MeanActivated}

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), itv.ID).Return(nil, e.ErrDeadline).Times(1),
		repo.EXPECT().Get(gomock.Any(), itv.ID).
			DoAndReturn(func(context.Context, uuid.UUID) (*domain.Intervention, error) {
				return cloneIntervention(itv), nil
			}).Times(1),
	)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewInterventionService(repo, nil, nil, newTestLogger(), 3)

	added, err := svc.AddMean(context.Background(), itv.ID, extra)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if added.Vehicle != domain.VehicleCCF {
		t.Fatalf("unexpected mean: %+v", added)
	}
}

func TestDelete_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(e.ErrNotFound).Times(1)

	svc := service.NewInterventionService(repo, nil, nil, newTestLogger(), 3)

	if err := svc.Delete(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestList_Passthrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockInterventionRepository(ctrl)

	want := []*domain.Intervention{
		newTestIntervention(t, domain.MeanActivated),
		newTestIntervention(t, domain.MeanEngaged),
	}
	repo.EXPECT().List(gomock.Any()).Return(want, nil).Times(1)

	svc := service.NewInterventionService(repo, nil, nil, newTestLogger(), 3)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d interventions got %d", len(want), len(got))
	}
}
