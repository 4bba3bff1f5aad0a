package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drone-project-m2gla/project-repository/internal/domain"
)

func TestNewIntervention_SeedsDefaultRoster(t *testing.T) {
	t.Parallel()

	now := time.Now()
	itv := domain.NewIntervention("Test Intervention", "36 rue des chataigners", "35830", "Betton", domain.DisasterAVP, now)

	if len(itv.Means) == 0 {
		t.Fatalf("expected a default roster")
	}
	first := itv.Means[0]
	if first.State != domain.MeanActivated {
		t.Fatalf("expected means[0] ACTIVATED got %s", first.State)
	}
	if first.DateRequested == nil || first.DateActivated == nil {
		t.Fatalf("expected request/activation stamped: %+v", first)
	}
	if first.DateArrived != nil || first.DateEngaged != nil || first.DateReleased != nil || first.DateRefused != nil {
		t.Fatalf("unreached-state timestamps must stay unset: %+v", first)
	}
	if !first.Coordinates.IsUnset() {
		t.Fatalf("new mean must not have a position")
	}
}

func TestFindMean_ByIdentityNotPosition(t *testing.T) {
	t.Parallel()

	now := time.Now()
	itv := domain.NewIntervention("n", "a", "35830", "c", domain.DisasterSAP, now)
	m2 := itv.AddMean(domain.Mean{Vehicle: domain.VehicleFPT}, now)

	idx, ok := itv.FindMean(m2.ID)
	if !ok {
		t.Fatalf("expected mean found")
	}
	if itv.Means[idx].ID != m2.ID {
		t.Fatalf("found wrong mean")
	}

	if _, ok := itv.FindMean(uuid.New()); ok {
		t.Fatalf("unknown id must not be found")
	}
}

func TestAddMean_PreservesCallerStateAndStampsDates(t *testing.T) {
	t.Parallel()

	now := time.Now()
	itv := domain.NewIntervention("n", "a", "35830", "c", domain.DisasterSAP, now)
	before := len(itv.Means)

	refused := itv.AddMean(domain.Mean{Vehicle: domain.VehicleVSAV, State: domain.MeanRefused}, now)
	if len(itv.Means) != before+1 {
		t.Fatalf("expected append, len=%d", len(itv.Means))
	}
	if refused.State != domain.MeanRefused {
		t.Fatalf("caller-supplied state must be kept, got %s", refused.State)
	}
	if refused.DateRefused == nil {
		t.Fatalf("expected DateRefused stamped on refused extra mean")
	}
	if refused.ID == uuid.Nil {
		t.Fatalf("expected identity assigned")
	}

	// Insertion order is the storage order.
	if itv.Means[len(itv.Means)-1].ID != refused.ID {
		t.Fatalf("extra mean must be appended at the end")
	}
}

func TestIntervention_JSONRoundTrip_PreservesMeansOrder(t *testing.T) {
	t.Parallel()

	now := time.Now()
	itv := domain.NewIntervention("Test Intervention", "36 rue des chataigners", "35830", "Betton", domain.DisasterAVP, now)
	itv.AddMean(domain.Mean{Vehicle: domain.VehicleEPA, State: domain.MeanRefused}, now)
	itv.Means[0].Coordinates = domain.NewPosition(12, 10)

	b, err := json.Marshal(itv)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got domain.Intervention
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got.Means) != len(itv.Means) {
		t.Fatalf("means count mismatch: got=%d want=%d", len(got.Means), len(itv.Means))
	}
	for i := range itv.Means {
		want, have := itv.Means[i], got.Means[i]
		if have.ID != want.ID || have.State != want.State || have.Vehicle != want.Vehicle {
			t.Fatalf("means[%d] mismatch: got=%+v want=%+v", i, have, want)
		}
		if !have.Coordinates.Equal(want.Coordinates) {
			t.Fatalf("means[%d] coordinates mismatch", i)
		}
	}
}
