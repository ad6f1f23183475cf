package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.GRPCPort != "50051" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %+v", cfg)
	}
	if cfg.PGHost != "localhost" || cfg.PGPort != 5432 || cfg.PGUser != "user" || cfg.PGPassword != "password" ||
		cfg.PGDB != "database" || cfg.PGMaxOpenConns != 16 || cfg.PGMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" ||
		cfg.RedisPoolSize != 10 || cfg.RedisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}
	if cfg.RateLimitRequests != 30 || cfg.RateLimitWindowSecond != 60 {
		t.Errorf("unexpected rate limit config")
	}
	if len(cfg.KafkaBrokers) != 1 || cfg.KafkaBrokers[0] != "localhost:9092" || cfg.KafkaUserEventsTopic != "user-events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("unexpected bcrypt cost %d", cfg.BcryptCost)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("GRPC_PORT", "50052")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("RATE_LIMIT_REQUESTS", "100")
	os.Setenv("RATE_LIMIT_WINDOW_SECOND", "10")

	os.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	os.Setenv("KAFKA_USER_EVENTS_TOPIC", "accounts")

	os.Setenv("BCRYPT_COST", "12")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.GRPCPort != "50052" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.PGHost != "pg.example.com" || cfg.PGPort != 5433 || cfg.PGUser != "admin" || cfg.PGPassword != "secret" ||
		cfg.PGDB != "mydb" || cfg.PGMaxOpenConns != 20 || cfg.PGMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 || cfg.RedisDB != 2 ||
		cfg.RedisPassword != "redispass" || cfg.RedisPoolSize != 15 || cfg.RedisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if cfg.RateLimitRequests != 100 || cfg.RateLimitWindowSecond != 10 {
		t.Errorf("unexpected rate limit config")
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "k1:9092" || cfg.KafkaBrokers[1] != "k2:9092" ||
		cfg.KafkaUserEventsTopic != "accounts" {
		t.Errorf("unexpected kafka config: %v", cfg.KafkaBrokers)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("unexpected bcrypt cost")
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-port")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Errorf("expected error for invalid POSTGRES_PORT")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	cfg := &config{
		AppHost:               "127.0.0.1",
		AppPort:               "8086",
		GRPCPort:              "50086",
		LogLevel:              "debug",
		PGHost:                pgHost,
		PGPort:                pgPort.Int(),
		PGUser:                "user",
		PGPassword:            "password",
		PGDB:                  "testdb",
		PGMaxOpenConns:        5,
		PGMaxIdleConns:        2,
		RedisHost:             redisHost,
		RedisPort:             redisPort.Int(),
		RedisPoolSize:         10,
		RedisMinIdleConns:     2,
		RateLimitRequests:     30,
		RateLimitWindowSecond: 60,
		KafkaBrokers:          []string{"127.0.0.1:1"},
		KafkaUserEventsTopic:  "user-events",
		BcryptCost:            4,
	}

	testCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	baseURL := "http://127.0.0.1:8086/api"
	waitForHTTP(t, baseURL+"/users")

	body := []byte(`{"email":"run@example.com","username":"Run Test","password":"pw1"}`)
	resp, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	var registered struct {
		Status int `json:"status"`
		Data   struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&registered)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || registered.Data.ID == "" {
		t.Fatalf("unexpected register response: %d %+v", resp.StatusCode, registered)
	}

	resp, err = http.Post(baseURL+"/auth/login", "application/json",
		bytes.NewReader([]byte(`{"email":"run@example.com","password":"pw1"}`)))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected login 200, got %d", resp.StatusCode)
	}

	conn, err := grpc.NewClient("127.0.0.1:50086", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc client: %v", err)
	}
	defer conn.Close()
	check, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if check.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("expected SERVING, got %s", check.Status)
	}

	select {
	case <-time.After(30 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}

func waitForHTTP(t *testing.T, url string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("server at %s did not come up", url)
}
