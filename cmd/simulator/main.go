package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	log "github.com/sirupsen/logrus"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"
)

// Vehicle mirrors the API's vehicle payload.
type Vehicle struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	LicensePlate string  `json:"licensePlate"`
	MaxCapacity  float64 `json:"maxCapacity"`
	Odometer     float64 `json:"odometer"`
	Region       string  `json:"region"`
}

// Driver mirrors the API's driver payload.
type Driver struct {
	ID                string    `json:"id,omitempty"`
	Name              string    `json:"name"`
	LicenseExpiry     time.Time `json:"licenseExpiry"`
	LicenseCategories []string  `json:"licenseCategories"`
	Status            string    `json:"status"`
	SafetyScore       int       `json:"safetyScore"`
}

// Trip mirrors the API's trip payload.
type Trip struct {
	ID          string  `json:"id,omitempty"`
	VehicleID   string  `json:"vehicleId"`
	DriverID    string  `json:"driverId"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	CargoWeight float64 `json:"cargoWeight"`
	Status      string  `json:"status,omitempty"`
}

var cities = []string{
	"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt",
	"Rotterdam", "Antwerp", "Vienna", "Prague", "Warsaw",
	"Zurich", "Milan", "Lyon", "Barcelona", "Copenhagen",
}

var vehicleTypes = []struct {
	Type     string
	Capacity float64
}{
	{"Truck", 12000},
	{"Van", 1500},
	{"Bike", 40},
}

var authToken string

func authorizedRequest(method, url string, body *bytes.Buffer) (*http.Response, error) {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func postJSON(url string, payload any, out any) (int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal payload: %w", err)
	}
	resp, err := authorizedRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// registerDispatcher signs up a throwaway dispatcher account and stores
// its token for all subsequent calls.
func registerDispatcher(apiURL string) error {
	payload := map[string]string{
		"email":    fmt.Sprintf("sim-%d@fleetflow.local", time.Now().UnixNano()),
		"password": "simulator",
		"name":     "Load Simulator",
		"role":     "Dispatcher",
	}
	var result struct {
		Token string `json:"token"`
	}
	status, err := postJSON(apiURL+"/auth/register", payload, &result)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("registration failed with status: %d", status)
	}
	authToken = result.Token
	return nil
}

func createVehicle(apiURL string, i int) (Vehicle, error) {
	vt := vehicleTypes[rand.Intn(len(vehicleTypes))]
	vehicle := Vehicle{
		Name:         fmt.Sprintf("Sim %s %d", vt.Type, i+1),
		Type:         vt.Type,
		LicensePlate: fmt.Sprintf("SIM-%03d", i+1),
		MaxCapacity:  vt.Capacity,
		Odometer:     float64(rand.Intn(150000)),
		Region:       []string{"North", "South", "East", "West"}[rand.Intn(4)],
	}

	var created Vehicle
	status, err := postJSON(apiURL+"/vehicles", vehicle, &created)
	if err != nil {
		return Vehicle{}, fmt.Errorf("failed to create vehicle: %w", err)
	}
	if status != http.StatusCreated {
		return Vehicle{}, fmt.Errorf("vehicle creation failed with status: %d", status)
	}

	log.WithFields(log.Fields{
		"vehicle_id": created.ID,
		"type":       created.Type,
	}).Info("Created vehicle")
	return created, nil
}

func createDriver(apiURL string, i int, category string) (Driver, error) {
	driver := Driver{
		Name:              fmt.Sprintf("Sim Driver %d", i+1),
		LicenseExpiry:     time.Now().AddDate(1+rand.Intn(3), 0, 0),
		LicenseCategories: []string{category},
		Status:            "On Duty",
		SafetyScore:       70 + rand.Intn(30),
	}

	var created Driver
	status, err := postJSON(apiURL+"/drivers", driver, &created)
	if err != nil {
		return Driver{}, fmt.Errorf("failed to create driver: %w", err)
	}
	if status != http.StatusCreated {
		return Driver{}, fmt.Errorf("driver creation failed with status: %d", status)
	}

	log.WithFields(log.Fields{
		"driver_id": created.ID,
		"category":  category,
	}).Info("Created driver")
	return created, nil
}

// runTrips drives one vehicle/driver pair through endless
// create-dispatch-complete cycles.
func runTrips(apiURL string, vehicle Vehicle, driver Driver, interval time.Duration) {
	odometer := vehicle.Odometer
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		origin := cities[rand.Intn(len(cities))]
		destination := cities[rand.Intn(len(cities))]
		for destination == origin {
			destination = cities[rand.Intn(len(cities))]
		}

		var trip Trip
		status, err := postJSON(apiURL+"/trips", Trip{
			VehicleID:   vehicle.ID,
			DriverID:    driver.ID,
			Origin:      origin,
			Destination: destination,
			CargoWeight: rand.Float64() * vehicle.MaxCapacity,
		}, &trip)
		if err != nil || status != http.StatusCreated {
			log.WithError(err).WithField("status", status).Error("Failed to create trip")
			continue
		}

		status, err = postJSON(apiURL+"/trips/"+trip.ID+"/start", nil, nil)
		if err != nil || status != http.StatusOK {
			log.WithError(err).WithFields(log.Fields{"trip_id": trip.ID, "status": status}).Error("Failed to dispatch trip")
			continue
		}

		odometer += 50 + rand.Float64()*450
		status, err = postJSON(apiURL+"/trips/"+trip.ID+"/complete", map[string]float64{"finalOdometer": odometer}, nil)
		if err != nil || status != http.StatusOK {
			log.WithError(err).WithFields(log.Fields{"trip_id": trip.ID, "status": status}).Error("Failed to complete trip")
			continue
		}

		log.WithFields(log.Fields{
			"trip_id":     trip.ID,
			"vehicle_id":  vehicle.ID,
			"origin":      origin,
			"destination": destination,
			"odometer":    odometer,
		}).Info("Completed trip")
	}
}

func main() {
	authToken = os.Getenv("SIM_AUTH_TOKEN")

	fleetSize := 5
	if val := os.Getenv("FLEET_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			fleetSize = n
		}
	}

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	log.WithFields(log.Fields{
		"fleet_size": fleetSize,
		"api_url":    apiURL,
		"interval":   interval,
	}).Info("Starting dispatch simulation")

	if authToken == "" {
		if err := registerDispatcher(apiURL); err != nil {
			log.WithError(err).Fatal("Failed to register simulator account")
		}
	}

	type pair struct {
		vehicle Vehicle
		driver  Driver
	}
	pairs := make([]pair, 0, fleetSize)
	for i := 0; i < fleetSize; i++ {
		vehicle, err := createVehicle(apiURL, i)
		if err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		driver, err := createDriver(apiURL, i, vehicle.Type)
		if err != nil {
			log.WithError(err).Error("Failed to create driver")
			continue
		}
		pairs = append(pairs, pair{vehicle: vehicle, driver: driver})
	}

	log.WithField("created_pairs", len(pairs)).Info("Fleet creation completed")
	if len(pairs) == 0 {
		log.Error("No vehicle/driver pairs created. Ensure the API is reachable. Exiting.")
		return
	}

	for _, p := range pairs {
		go runTrips(apiURL, p.vehicle, p.driver, interval)
	}

	log.Info("Dispatch simulation started")
	select {} // Block forever
}
