package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainmeet/internal/domain"
	"github.com/trainmeet/internal/usecase/dto"
)

func TestRenderPlan(t *testing.T) {
	resp := &dto.PlanResponse{
		Destination: "Genève, Schweiz",
		Routes: []dto.RouteResponse{
			{
				Start:       "Zürich HB, Schweiz",
				Destination: "Genève, Schweiz",
				Found:       true,
				Legs: []domain.TransitLeg{
					{DepartureStation: "Zürich HB", ArrivalStation: "Bern", DepartureTime: "4:02 PM", ArrivalTime: "4:58 PM", Duration: "56 mins"},
					{DepartureStation: "Bern", ArrivalStation: "Genève", DepartureTime: "5:04 PM", ArrivalTime: "6:47 PM", Duration: "1 hour 43 mins"},
				},
				MapEmbedURL: "https://www.google.com/maps/embed/v1/directions?mode=transit",
			},
			{
				Start:       "Atlantis",
				Destination: "Genève, Schweiz",
			},
		},
	}

	var buf bytes.Buffer
	RenderPlan(&buf, resp)
	out := buf.String()

	assert.Contains(t, out, "Train route from Zürich HB, Schweiz to Genève, Schweiz")
	assert.Contains(t, out, "departure_station")
	assert.Contains(t, out, "1 hour 43 mins")
	assert.Contains(t, out, "https://www.google.com/maps/embed/v1/directions?mode=transit")
	assert.Contains(t, out, "No route found. (Atlantis)")
	assert.NotContains(t, out, "Train route from Atlantis")
	assert.Less(t, strings.Index(out, "Zürich HB"), strings.Index(out, "Atlantis"))
}

func fakeGoogle(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geocode/json":
			w.Write([]byte(`{"results": [{"geometry": {"location": {"lat": 46.95, "lng": 7.44}}}]}`))
		case "/directions/json":
			w.Write([]byte(`{"routes": [{"legs": [{"steps": [
				{"travel_mode": "TRANSIT", "duration": {"text": "56 mins"},
				 "start_location": {"lat": 47.37, "lng": 8.54}, "end_location": {"lat": 46.95, "lng": 7.44},
				 "transit_details": {"departure_stop": {"name": "Zürich HB"}, "arrival_stop": {"name": "Bern"},
				   "departure_time": {"text": "4:02 PM"}, "arrival_time": {"text": "4:58 PM"}}}
			]}]}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SECRETS_FILE", filepath.Join(dir, "missing.toml"))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env", filepath.Join(dir, "missing.env")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		google := fakeGoogle(t)
		t.Setenv("GOOGLE_MAPS_BASE_URL", google.URL)
		t.Setenv("GOOGLE_MAPS_API_KEY", "key")

		out, err := runCommand(t, "plan", "--from", "Zürich HB; Basel", "--to", "Bern", "--arrive", "13.05.2024-19:00", "--json")
		require.NoError(t, err)

		var resp dto.PlanResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Routes, 2)
		assert.Equal(t, "Zürich HB", resp.Routes[0].Start)
		assert.True(t, resp.Routes[0].Found)
		assert.Equal(t, "Zürich HB", resp.Routes[0].Legs[0].DepartureStation)
		assert.Equal(t, "Basel", resp.Routes[1].Start)
	})

	t.Run("table output", func(t *testing.T) {
		google := fakeGoogle(t)
		t.Setenv("GOOGLE_MAPS_BASE_URL", google.URL)
		t.Setenv("GOOGLE_MAPS_API_KEY", "key")

		out, err := runCommand(t, "plan", "--from", "Zürich HB", "--to", "Bern", "--arrive", "13.05.2024-19:00", "--no-spinner")
		require.NoError(t, err)
		assert.Contains(t, out, "Train route from Zürich HB to Bern")
		assert.Contains(t, out, "4:58 PM")
	})

	t.Run("invalid arrival time prints the warning", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "key")

		out, err := runCommand(t, "plan", "--from", "Bern", "--to", "Genève", "--arrive", "13-05-2024 19:00", "--no-spinner")
		require.NoError(t, err)
		assert.Contains(t, out, "Please make sure the start and destination places are valid")
	})

	t.Run("missing credential prints the warning as json", func(t *testing.T) {
		t.Setenv("GOOGLE_MAPS_API_KEY", "")

		out, err := runCommand(t, "plan", "--from", "Bern", "--to", "Genève", "--arrive", "13.05.2024-19:00", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"code":"INVALID_INPUT"`)
	})
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, "a", valueOr("a", "b"))
	assert.Equal(t, "b", valueOr("", "b"))
}

func newPlanner(baseURL string) *usecase.RoutePlannerUseCase {
	maps := googlemaps.NewGoogleMapsClient(&config.GoogleMapsConfig{
		APIKey:         "key",
		BaseURL:        baseURL,
		EmbedURL:       "https://www.google.com/maps/embed/v1/directions",
		RequestTimeout: 5,
	}, zap.NewNop())
	return usecase.NewRoutePlannerUseCase(maps, zap.NewNop())
}

func newBareCommand(ctx context.Context, out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	cmd.SetOut(out)
	return cmd
}

func TestRunPlan_WithSpinner(t *testing.T) {
	req := dto.PlanRequest{
		StartLocations: "Zürich HB",
		Destination:    "Bern",
		ArrivalTime:    "13.05.2024-19:00",
	}

	t.Run("renders the routes once the search finishes", func(t *testing.T) {
		planner := newPlanner(fakeGoogle(t).URL)
		var out bytes.Buffer

		err := runPlan(newBareCommand(context.Background(), &out), planner, req, false, true)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Train route from Zürich HB to Bern")
		assert.Contains(t, out.String(), "4:58 PM")
	})

	t.Run("cancellation during the search aborts without rendering", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			w.Write([]byte(`{"results": []}`))
		}))
		t.Cleanup(slow.Close)

		planner := newPlanner(slow.URL)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		time.AfterFunc(200*time.Millisecond, cancel)

		var (
			out bytes.Buffer
			err error
		)
		assert.NotPanics(t, func() {
			err = runPlan(newBareCommand(ctx, &out), planner, req, false, true)
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "route search aborted")
		assert.Empty(t, out.String())
	})
}

func TestRenderPlan_NilResponse(t *testing.T) {
	var buf bytes.Buffer
	assert.NotPanics(t, func() { RenderPlan(&buf, nil) })
	assert.Empty(t, buf.String())
}
