package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"
)

func TestPostJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Vehicle{ID: "v_abc"})
	}))
	defer server.Close()

	var created Vehicle
	status, err := postJSON(server.URL, Vehicle{Name: "Test"}, &created)
	if err != nil {
		t.Fatalf("postJSON failed: %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", status)
	}
	if created.ID != "v_abc" {
		t.Errorf("Expected ID v_abc, got %s", created.ID)
	}
}

func TestPostJSON_SendsBearerToken(t *testing.T) {
	authToken = "test-token"
	defer func() { authToken = "" }()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	status, err := postJSON(server.URL, nil, nil)
	if err != nil {
		t.Fatalf("postJSON failed: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}
}

func TestPostJSON_NetworkError(t *testing.T) {
	if _, err := postJSON("http://127.0.0.1:1", nil, nil); err == nil {
		t.Error("Expected error for unreachable host")
	}
}

func TestRegisterDispatcher(t *testing.T) {
	authToken = ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["role"] != "Dispatcher" {
			t.Errorf("Expected Dispatcher role, got %s", req["role"])
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	defer server.Close()

	if err := registerDispatcher(server.URL); err != nil {
		t.Fatalf("registerDispatcher failed: %v", err)
	}
	if authToken != "issued-token" {
		t.Errorf("Expected token to be stored, got %q", authToken)
	}
	authToken = ""
}

func TestRegisterDispatcher_Rejected(t *testing.T) {
	authToken = ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid role", http.StatusBadRequest)
	}))
	defer server.Close()

	if err := registerDispatcher(server.URL); err == nil {
		t.Error("Expected error on rejected registration")
	}
}

func TestCreateVehicleAndDriver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		switch r.URL.Path {
		case "/vehicles":
			var v Vehicle
			json.NewDecoder(r.Body).Decode(&v)
			v.ID = "v_new"
			json.NewEncoder(w).Encode(v)
		case "/drivers":
			var d Driver
			json.NewDecoder(r.Body).Decode(&d)
			d.ID = "d_new"
			json.NewEncoder(w).Encode(d)
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	vehicle, err := createVehicle(server.URL, 0)
	if err != nil {
		t.Fatalf("createVehicle failed: %v", err)
	}
	if vehicle.ID != "v_new" {
		t.Errorf("Expected ID v_new, got %s", vehicle.ID)
	}
	if vehicle.MaxCapacity <= 0 {
		t.Errorf("Expected positive capacity, got %f", vehicle.MaxCapacity)
	}

	driver, err := createDriver(server.URL, 0, vehicle.Type)
	if err != nil {
		t.Fatalf("createDriver failed: %v", err)
	}
	if driver.ID != "d_new" {
		t.Errorf("Expected ID d_new, got %s", driver.ID)
	}
	if len(driver.LicenseCategories) != 1 || driver.LicenseCategories[0] != vehicle.Type {
		t.Errorf("Driver license %v does not cover vehicle type %s", driver.LicenseCategories, vehicle.Type)
	}
	if !driver.LicenseExpiry.After(time.Now()) {
		t.Error("Driver license should not be expired")
	}
}

func TestMainLogic_FleetSize(t *testing.T) {
	testCases := []struct {
		envValue string
		expected int
	}{
		{"", 5},         // default
		{"3", 3},        // valid number
		{"invalid", 5},  // invalid number, should use default
		{"0", 0},        // edge case
	}

	for _, tc := range testCases {
		if tc.envValue != "" {
			os.Setenv("FLEET_SIZE", tc.envValue)
		} else {
			os.Unsetenv("FLEET_SIZE")
		}

		fleetSize := 5
		if val := os.Getenv("FLEET_SIZE"); val != "" {
			if n, err := strconv.Atoi(val); err == nil {
				fleetSize = n
			}
		}

		if fleetSize != tc.expected {
			t.Errorf("For env value '%s', expected fleet size %d, got %d", tc.envValue, tc.expected, fleetSize)
		}
	}
	os.Unsetenv("FLEET_SIZE")
}
