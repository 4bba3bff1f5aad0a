package intervention_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/api/handlers/http/intervention"
	mock_intervention "github.com/drone-project-m2gla/project-repository/internal/api/handlers/http/intervention/mocks"
	"github.com/drone-project-m2gla/project-repository/internal/domain"
	"github.com/drone-project-m2gla/project-repository/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

// positionEq matches a domain.Position via Position.Equal; gomock's default
// reflect.DeepEqual matcher can never match the NaN altitude sentinel.
type positionEq struct{ want domain.Position }

func (m positionEq) Matches(x interface{}) bool {
	got, ok := x.(domain.Position)
	return ok && got.Equal(m.want)
}

func (m positionEq) String() string {
	return fmt.Sprintf("is equal to %v (domain.Position)", m.want)
}

func newHandler(t *testing.T) (*intervention.Handler, *mock_intervention.MockInterventions) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := mock_intervention.NewMockInterventions(ctrl)
	return intervention.NewHandler(newTestLogger(), svc), svc
}

func TestInterventionCreate_OK_201(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	reqBody := `{"name":"Feu entrepot","address":"12 rue de Verdun","post_code":"35000","city":"Rennes","disaster_code":"INC"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	now := domain.Intervention{
		ID:           uuid.New(),
		Name:         "Feu entrepot",
		DisasterCode: domain.DisasterINC,
	}

	svc.EXPECT().
		Create(gomock.Any(), domain.CreateInterventionRequest{
			Name:         "Feu entrepot",
			Address:      "12 rue de Verdun",
			PostCode:     "35000",
			City:         "Rennes",
			DisasterCode: domain.DisasterINC,
		}).
		Return(&now, nil).
		Times(1)

	h.InterventionCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Intervention](t, rr)
	if got.ID != now.ID {
		t.Fatalf("expected id=%s got=%s", now.ID, got.ID)
	}
}

func TestInterventionCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.InterventionCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestInterventionCreate_BadPostCode_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	reqBody := `{"name":"Feu","address":"rue X","post_code":"not-a-code","city":"Rennes","disaster_code":"INC"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.InterventionCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestInterventionCreate_BadDisasterCode_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	reqBody := `{"name":"Feu","address":"rue X","post_code":"35000","city":"Rennes","disaster_code":"XXX"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.InterventionCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestInterventionList_OK(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interventions", nil)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		List(gomock.Any()).
		Return([]*domain.Intervention{{ID: uuid.New()}, {ID: uuid.New()}}, nil).
		Times(1)

	h.InterventionList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[[]domain.Intervention](t, rr)
	if len(got) != 2 {
		t.Fatalf("expected 2 interventions, got %d", len(got))
	}
}

func TestInterventionGet_NotFound_404(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/interventions/"+id.String(), nil)
	req = addChiURLParams(req, map[string]string{"id": id.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.InterventionGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestInterventionGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interventions/bad", nil)
	req = addChiURLParams(req, map[string]string{"id": "not-a-uuid"})
	rr := httptest.NewRecorder()

	h.InterventionGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestInterventionDelete_OK_204(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/interventions/"+id.String(), nil)
	req = addChiURLParams(req, map[string]string{"id": id.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil).
		Times(1)

	h.InterventionDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestMeanGet_Absent_204(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String(), nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		GetMean(gomock.Any(), id, meanID).
		Return(nil, e.ErrMeanNotFound).
		Times(1)

	h.MeanGet(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got=%q", rr.Body.String())
	}
}

func TestMeanGet_InterventionAbsent_404(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String(), nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		GetMean(gomock.Any(), id, meanID).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.MeanGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestMeanConfirmArrival_OK(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/confirmArrival", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	want := &domain.Mean{ID: meanID, Vehicle: domain.VehicleVSAV, State: domain.MeanArrived}

	svc.EXPECT().
		ConfirmArrival(gomock.Any(), id, meanID).
		Return(want, nil).
		Times(1)

	h.MeanConfirmArrival(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Mean](t, rr)
	if got.State != domain.MeanArrived {
		t.Fatalf("expected state=%s got=%s", domain.MeanArrived, got.State)
	}
}

func TestMeanConfirmArrival_InvalidTransition_400(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/confirmArrival", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		ConfirmArrival(gomock.Any(), id, meanID).
		Return(nil, e.Wrap("confirmArrival from state ARRIVED", e.ErrInvalidTransition)).
		Times(1)

	h.MeanConfirmArrival(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMeanConfirmArrival_MeanAbsent_404(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/confirmArrival", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		ConfirmArrival(gomock.Any(), id, meanID).
		Return(nil, e.ErrMeanNotFound).
		Times(1)

	h.MeanConfirmArrival(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestMeanUpdatePosition_OK(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	body := `{"latitude":48.11,"longitude":-1.68}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/position", bytes.NewBufferString(body))
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	want := &domain.Mean{ID: meanID, State: domain.MeanEngaged, Coordinates: domain.NewPosition(48.11, -1.68)}

	svc.EXPECT().
		UpdatePosition(gomock.Any(), id, meanID, positionEq{domain.NewPosition(48.11, -1.68)}).
		Return(want, nil).
		Times(1)

	h.MeanUpdatePosition(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Mean](t, rr)
	if got.State != domain.MeanEngaged {
		t.Fatalf("expected state=%s got=%s", domain.MeanEngaged, got.State)
	}
}

func TestMeanUpdatePosition_OutOfRangeLatitude_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	body := `{"latitude":123.0,"longitude":-1.68}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/position", bytes.NewBufferString(body))
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	h.MeanUpdatePosition(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMeanRelease_Denied_400_FixedMessage(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/release", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Release(gomock.Any(), id, meanID).
		Return(nil, e.ErrMeanReleaseDenied).
		Times(1)

	h.MeanRelease(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	want := "Mean is already released or not in a state where it can be released"
	if got["error"] != want {
		t.Fatalf("expected error=%q got=%q", want, got["error"])
	}
}

func TestMeanRelease_Conflict_409(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/release", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Release(gomock.Any(), id, meanID).
		Return(nil, e.Wrap("save intervention", e.ErrConflict)).
		Times(1)

	h.MeanRelease(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestMeanAdd_OK(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id := uuid.New()
	body := `{"vehicle":"DRAG","state":"ACTIVATED"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means", bytes.NewBufferString(body))
	req = addChiURLParams(req, map[string]string{"id": id.String()})
	rr := httptest.NewRecorder()

	meanID := uuid.New()
	svc.EXPECT().
		AddMean(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, m domain.Mean) (*domain.Mean, error) {
			if m.Vehicle != domain.VehicleDRAG {
				t.Fatalf("expected vehicle DRAG, got %s", m.Vehicle)
			}
			m.ID = meanID
			return &m, nil
		}).
		Times(1)

	h.MeanAdd(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Mean](t, rr)
	if got.ID != meanID {
		t.Fatalf("expected id=%s got=%s", meanID, got.ID)
	}
}

func TestMeanList_OK(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/interventions/"+id.String()+"/means", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		GetMeans(gomock.Any(), id).
		Return([]domain.Mean{{ID: uuid.New()}, {ID: uuid.New()}}, nil).
		Times(1)

	h.MeanList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[[]domain.Mean](t, rr)
	if len(got) != 2 {
		t.Fatalf("expected 2 means, got %d", len(got))
	}
}

func TestMeanSendBackToCRM_StorageTimeout_503(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/sendBackToCRM", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		SendBackToCRM(gomock.Any(), id, meanID).
		Return(nil, e.Wrap("get intervention", e.ErrDeadline)).
		Times(1)

	h.MeanSendBackToCRM(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d got %d body=%s", http.StatusServiceUnavailable, rr.Code, rr.Body.String())
	}
}

func TestMeanValidatePosition_UnknownError_500(t *testing.T) {
	t.Parallel()

	h, svc := newHandler(t)

	id, meanID := uuid.New(), uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interventions/"+id.String()+"/means/"+meanID.String()+"/validatePosition", nil)
	req = addChiURLParams(req, map[string]string{"id": id.String(), "meanId": meanID.String()})
	rr := httptest.NewRecorder()

	svc.EXPECT().
		ValidatePosition(gomock.Any(), id, meanID).
		Return(nil, errors.New("boom")).
		Times(1)

	h.MeanValidatePosition(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
