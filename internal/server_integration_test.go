//go:build integration_test || all_tests

package internal_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/2beens/workoutlog/internal"
	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/config"
	"github.com/2beens/workoutlog/internal/db"
	"github.com/2beens/workoutlog/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

const (
	serverPort = 9100
	serverHost = "127.0.0.1"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type ServerTestSuite struct {
	suite.Suite

	dockerPool *dockertest.Pool
	server     *internal.Server
	httpClient *http.Client
	username   string
	password   string
	teardown   []func()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupSuite() {
	ctx := context.Background()
	s.httpClient = &http.Client{Timeout: 10 * time.Second}

	var err error
	s.dockerPool, err = dockertest.NewPool("")
	s.Require().NoError(err, "create dockertest pool")
	s.Require().NoError(s.dockerPool.Client.Ping(), "ping docker")

	redisPort, err := s.redisSetup()
	if err != nil {
		s.cleanup()
		s.FailNow("redis setup", err.Error())
	}

	pgPort, err := s.postgresSetup()
	if err != nil {
		s.cleanup()
		s.FailNow("postgres setup", err.Error())
	}

	cfg, err := config.Parse("development", fmt.Sprintf(`
[development]
host = %q
port = %d
log_level = "error"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = %q
postgres_db_name = "workoutlog"
migrate_on_start = true
redis_host = "localhost"
redis_port = %q
prometheus_metrics_host = "127.0.0.1"
prometheus_metrics_port = "0"
login_rate_limit_allowed_per_min = 100
`, serverHost, serverPort, pgPort, redisPort))
	s.Require().NoError(err)

	s.server, err = internal.NewServer(ctx, internal.NewServerParams{
		Config:      cfg,
		VersionInfo: "test-version-info",
	})
	s.Require().NoError(err, "new server")

	s.username = gofakeit.Username()
	s.password = gofakeit.Password(true, true, true, false, false, 14)
	s.createUser(ctx, pgPort)

	s.server.Serve(cfg.Host, cfg.Port)
	s.Require().Eventually(func() bool {
		resp, err := s.do(ctx, "GET", "/", "", nil)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)
}

func (s *ServerTestSuite) TearDownSuite() {
	s.cleanup()
}

func (s *ServerTestSuite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func (s *ServerTestSuite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

func (s *ServerTestSuite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=workoutlog",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/workoutlog?sslmode=disable", pgPort)
	if err := s.dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return "", fmt.Errorf("connect to db: %w", err)
	}

	return pgPort, nil
}

func (s *ServerTestSuite) createUser(ctx context.Context, pgPort string) {
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: "workoutlog",
	})
	s.Require().NoError(err)
	defer pool.Close()

	_, err = auth.NewUsersRepo(pool).Create(ctx, s.username, s.password)
	s.Require().NoError(err)
}

func (s *ServerTestSuite) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}
	return s.httpClient.Do(req)
}

// doJSON sends the request, checks the status and decodes the response into out.
func (s *ServerTestSuite) doJSON(ctx context.Context, method, path, token string, body any, wantStatus int, out any) {
	resp, err := s.do(ctx, method, path, token, body)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().Equal(wantStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if out != nil {
		s.Require().NoError(json.Unmarshal(respBytes, out))
	}
}

func (s *ServerTestSuite) doLogin(ctx context.Context) string {
	var loginResp auth.LoginResponse
	s.doJSON(ctx, "POST", "/a/login", "", auth.Credentials{
		Username: s.username,
		Password: s.password,
	}, http.StatusOK, &loginResp)
	s.Require().NotEmpty(loginResp.Token)
	return loginResp.Token
}

func (s *ServerTestSuite) TestLogin() {
	ctx := context.Background()

	cases := map[string]struct {
		creds      auth.Credentials
		wantStatus int
	}{
		"good creds":   {auth.Credentials{Username: s.username, Password: s.password}, http.StatusOK},
		"bad password": {auth.Credentials{Username: s.username, Password: "bad-password"}, http.StatusUnauthorized},
		"bad username": {auth.Credentials{Username: "bad-username", Password: s.password}, http.StatusUnauthorized},
		"no password":  {auth.Credentials{Username: s.username}, http.StatusBadRequest},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			resp, err := s.do(ctx, "POST", "/a/login", "", tc.creds)
			s.Require().NoError(err)
			resp.Body.Close()
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *ServerTestSuite) TestLogout() {
	ctx := context.Background()
	token := s.doLogin(ctx)

	s.doJSON(ctx, "GET", "/exercises", token, nil, http.StatusOK, nil)

	resp, err := s.do(ctx, "GET", "/a/logout", token, nil)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, err = s.do(ctx, "GET", "/exercises", token, nil)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *ServerTestSuite) TestWorkoutFlow() {
	ctx := context.Background()
	token := s.doLogin(ctx)

	var workout workouts.Workout
	s.doJSON(ctx, "POST", "/workouts", token, workouts.WorkoutRequest{
		Name: "Push Day",
		Date: "2024-03-01",
	}, http.StatusCreated, &workout)

	var added workouts.AddExerciseResponse
	s.doJSON(ctx, "POST", "/workouts/"+workout.ID+"/exercises", token, workouts.AddExerciseRequest{
		Name: "Bench Press",
	}, http.StatusCreated, &added)
	s.Require().NotNil(added.Exercise)

	// picking the same exercise again reuses the attachment
	var again workouts.AddExerciseResponse
	s.doJSON(ctx, "POST", "/workouts/"+workout.ID+"/exercises", token, workouts.AddExerciseRequest{
		ExerciseID: added.Exercise.ID,
	}, http.StatusOK, &again)
	s.True(again.Existing)
	s.Equal(added.WorkoutExerciseID, again.WorkoutExerciseID)

	setIDs := make([]string, 0, 3)
	for i, weight := range []string{"60", "62.5", "65"} {
		var setResp workouts.SetResponse
		s.doJSON(ctx, "POST", "/workout-exercises/"+added.WorkoutExerciseID+"/sets", token, map[string]any{
			"reps":       10 - i*2,
			"weight":     weight,
			"weightUnit": "kg",
		}, http.StatusCreated, &setResp)
		s.Equal(i+1, setResp.Set.SetNumber)
		setIDs = append(setIDs, setResp.Set.ID)
	}

	var deleted workouts.DeletedSet
	s.doJSON(ctx, "DELETE", "/sets/"+setIDs[1], token, nil, http.StatusOK, &deleted)
	s.Equal(1, deleted.Renumbered)

	var view workouts.WorkoutResponse
	s.doJSON(ctx, "GET", "/workouts/"+workout.ID, token, nil, http.StatusOK, &view)
	s.Require().Len(view.Exercises, 1)
	sets := view.Exercises[0].Sets
	s.Require().Len(sets, 2)
	s.Equal(setIDs[0], sets[0].ID)
	s.Equal(1, sets[0].SetNumber)
	s.Equal(setIDs[2], sets[1].ID)
	s.Equal(2, sets[1].SetNumber)
	s.Equal("65", view.Exercises[0].NextSetDefaults.Weight)
	s.Equal(strconv.Itoa(6), view.Exercises[0].NextSetDefaults.Reps)

	var summaries []workouts.WorkoutSummary
	s.doJSON(ctx, "GET", "/workouts?date=2024-03-01", token, nil, http.StatusOK, &summaries)
	s.Require().Len(summaries, 1)
	s.Equal([]string{"Bench Press"}, summaries[0].ExerciseNames)

	s.doJSON(ctx, "DELETE", "/workouts/"+workout.ID, token, nil, http.StatusOK, nil)
	s.doJSON(ctx, "GET", "/workouts/"+workout.ID, token, nil, http.StatusNotFound, nil)
}

func (s *ServerTestSuite) TestUnauthorized() {
	ctx := context.Background()

	resp, err := s.do(ctx, "GET", "/workouts", "", nil)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, err = s.do(ctx, "GET", "/workouts", "not-a-token", nil)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
