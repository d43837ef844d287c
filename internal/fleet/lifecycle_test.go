package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/models"
	"github.com/fleetflow/fleetflow/internal/notify"
	"github.com/fleetflow/fleetflow/internal/storage"
)

// recordingPublisher captures events for assertions.
type recordingPublisher struct {
	events []notify.Event
}

func (r *recordingPublisher) Publish(e notify.Event) {
	r.events = append(r.events, e)
}

func dispatchFixture(t *testing.T) *Store {
	t.Helper()
	s := Open(storage.NewMemoryKV(), Snapshot{})
	s.AddVehicle(testVehicle("v1")) // Available, odometer 100000
	s.AddDriver(testDriver("d1"))   // On Duty, license valid
	s.CreateTrip(models.Trip{
		ID:          "t1",
		VehicleID:   "v1",
		DriverID:    "d1",
		Origin:      "Warehouse A",
		Destination: "Port Terminal",
		CargoWeight: 6200,
		Status:      models.TripDraft,
	})
	return s
}

func TestStartTrip(t *testing.T) {
	s := dispatchFixture(t)

	s.StartTrip("t1")

	trip, _ := s.Trip("t1")
	assert.Equal(t, models.TripDispatched, trip.Status)

	v, _ := s.Vehicle("v1")
	assert.Equal(t, models.VehicleOnTrip, v.Status)

	d, _ := s.Driver("d1")
	assert.Equal(t, models.DriverOnTrip, d.Status)
}

func TestStartTrip_UnknownTripIsNoOp(t *testing.T) {
	s := dispatchFixture(t)

	s.StartTrip("ghost")

	trip, _ := s.Trip("t1")
	assert.Equal(t, models.TripDraft, trip.Status)
	v, _ := s.Vehicle("v1")
	assert.Equal(t, models.VehicleAvailable, v.Status)
}

func TestCompleteTrip(t *testing.T) {
	s := dispatchFixture(t)
	s.StartTrip("t1")

	s.CompleteTrip("t1", 100500)

	trip, _ := s.Trip("t1")
	assert.Equal(t, models.TripCompleted, trip.Status)
	require.NotNil(t, trip.CompletedAt)

	v, _ := s.Vehicle("v1")
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, float64(100500), v.Odometer)

	d, _ := s.Driver("d1")
	assert.Equal(t, models.DriverOnDuty, d.Status)
	assert.Equal(t, 11, d.TripsCompleted)
}

func TestCompleteTrip_OdometerIsMonotonic(t *testing.T) {
	s := dispatchFixture(t)
	s.StartTrip("t1")

	// A final reading below the current odometer never winds it back.
	s.CompleteTrip("t1", 99000)

	v, _ := s.Vehicle("v1")
	assert.Equal(t, float64(100000), v.Odometer)
}

func TestCompleteTrip_DriverCounterIncrementsPerCompletion(t *testing.T) {
	s := Open(storage.NewMemoryKV(), Snapshot{})
	s.AddVehicle(testVehicle("v1"))
	s.AddDriver(testDriver("d1"))

	const n = 3
	for i := 0; i < n; i++ {
		tripID := models.NewID("t")
		s.CreateTrip(models.Trip{ID: tripID, VehicleID: "v1", DriverID: "d1", Status: models.TripDraft})
		s.StartTrip(tripID)
		s.CompleteTrip(tripID, 0)
	}

	d, _ := s.Driver("d1")
	assert.Equal(t, 10+n, d.TripsCompleted)
}

func TestCompleteTrip_DanglingVehicleStillCompletesTrip(t *testing.T) {
	s := Open(storage.NewMemoryKV(), Snapshot{})
	s.AddDriver(testDriver("d1"))
	s.CreateTrip(models.Trip{ID: "t1", VehicleID: "ghost", DriverID: "d1", Status: models.TripDispatched})

	s.CompleteTrip("t1", 5000)

	trip, _ := s.Trip("t1")
	assert.Equal(t, models.TripCompleted, trip.Status)
	d, _ := s.Driver("d1")
	assert.Equal(t, 11, d.TripsCompleted)
}

func TestAddMaintenanceLog_ForcesVehicleInShop(t *testing.T) {
	tests := []struct {
		name  string
		prior models.VehicleStatus
	}{
		{"from available", models.VehicleAvailable},
		{"from on trip", models.VehicleOnTrip},
		{"from retired", models.VehicleRetired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Open(storage.NewMemoryKV(), Snapshot{})
			v := testVehicle("v2")
			v.Status = tt.prior
			s.AddVehicle(v)

			s.AddMaintenanceLog(models.MaintenanceLog{
				ID: "m1", VehicleID: "v2", Type: "Oil Change", Cost: 320,
				Date: day("2026-02-18"), Status: models.MaintenanceInProgress,
			})

			got, _ := s.Vehicle("v2")
			assert.Equal(t, models.VehicleInShop, got.Status, "prior status %s must be overwritten", tt.prior)
		})
	}
}

func TestAddMaintenanceLog_DanglingVehicleStillAppends(t *testing.T) {
	s := Open(storage.NewMemoryKV(), Snapshot{})

	s.AddMaintenanceLog(models.MaintenanceLog{ID: "m1", VehicleID: "ghost"})

	assert.Len(t, s.MaintenanceLogs(), 1, "append succeeds independently of the vehicle lookup")
}

func TestCompleteMaintenanceLog_Idempotent(t *testing.T) {
	s := Open(storage.NewMemoryKV(), Snapshot{})
	s.AddVehicle(testVehicle("v2"))
	s.AddMaintenanceLog(models.MaintenanceLog{ID: "m1", VehicleID: "v2", Status: models.MaintenanceInProgress})

	s.CompleteMaintenanceLog("m1")
	s.CompleteMaintenanceLog("m1")

	l, ok := s.MaintenanceLog("m1")
	require.True(t, ok)
	assert.Equal(t, models.MaintenanceCompleted, l.Status)

	v, _ := s.Vehicle("v2")
	assert.Equal(t, models.VehicleAvailable, v.Status)
}

func TestCompleteMaintenanceLog_UnknownLogIsNoOp(t *testing.T) {
	s := Open(storage.NewMemoryKV(), Snapshot{})
	v := testVehicle("v2")
	v.Status = models.VehicleInShop
	s.AddVehicle(v)

	s.CompleteMaintenanceLog("ghost")

	got, _ := s.Vehicle("v2")
	assert.Equal(t, models.VehicleInShop, got.Status)
}

func TestAddFuelLog_ForcesVehicleAvailable(t *testing.T) {
	// Fuel logging is modeled as ending a shop/trip visit: the vehicle
	// comes back Available whatever it was doing before.
	s := Open(storage.NewMemoryKV(), Snapshot{})
	v := testVehicle("v1")
	v.Status = models.VehicleOnTrip
	s.AddVehicle(v)

	s.AddFuelLog(models.FuelLog{ID: "f1", VehicleID: "v1", Liters: 120, Cost: 198, Odometer: 124300})

	got, _ := s.Vehicle("v1")
	assert.Equal(t, models.VehicleAvailable, got.Status)
	assert.Len(t, s.FuelLogs(), 1)
}

func TestDispatchScenario(t *testing.T) {
	// The full §-by-§ walk: Draft -> Dispatched -> Completed with all
	// cross-entity effects.
	s := dispatchFixture(t)

	s.StartTrip("t1")
	v, _ := s.Vehicle("v1")
	d, _ := s.Driver("d1")
	trip, _ := s.Trip("t1")
	require.Equal(t, models.VehicleOnTrip, v.Status)
	require.Equal(t, models.DriverOnTrip, d.Status)
	require.Equal(t, models.TripDispatched, trip.Status)

	s.CompleteTrip("t1", 100500)
	v, _ = s.Vehicle("v1")
	d, _ = s.Driver("d1")
	trip, _ = s.Trip("t1")
	assert.Equal(t, float64(100500), v.Odometer)
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, models.DriverOnDuty, d.Status)
	assert.Equal(t, 11, d.TripsCompleted)
	assert.Equal(t, models.TripCompleted, trip.Status)
	assert.NotNil(t, trip.CompletedAt)
}

func TestLifecycleEventsPublished(t *testing.T) {
	pub := &recordingPublisher{}
	s := Open(storage.NewMemoryKV(), Snapshot{}, WithPublisher(pub))
	s.AddVehicle(testVehicle("v1"))
	s.AddDriver(testDriver("d1"))
	s.CreateTrip(models.Trip{ID: "t1", VehicleID: "v1", DriverID: "d1", Status: models.TripDraft})

	s.StartTrip("t1")

	require.Len(t, pub.events, 3)
	kinds := []string{pub.events[0].Kind, pub.events[1].Kind, pub.events[2].Kind}
	assert.Equal(t, []string{notify.KindTripStatus, notify.KindVehicleStatus, notify.KindDriverStatus}, kinds)
	assert.Equal(t, string(models.TripDispatched), pub.events[0].Status)
}
