//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	server "hotel_booking/internal/adapters/http_server"
	redisad "hotel_booking/internal/adapters/redis"
	"hotel_booking/internal/adapters/upstream"
	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

const (
	seededHotel = "049161bb-badd-4fa8-9d90-87c9a82b0668"
	user        = "Test Max"
)

// ---------- helpers ----------

func applyMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no .sql files in %s (set MIGRATIONS_DIR)", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=hotels"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/hotels?parseTime=true&multiStatements=true&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sqlx.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = mysqlrepo.Open(context.Background(), dsn)
		return e
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)
	return db
}

// stack runs the three backing services and the gateway in-process.
type stack struct {
	gateway *httptest.Server
	loyalty *redisad.LoyaltyStore
}

func startStack(t *testing.T) *stack {
	t.Helper()
	db := startMySQL(t)

	mr := miniredis.RunT(t)
	loyaltyStore := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	repo := mysqlrepo.NewReservationRepo(db)
	rs := server.New()
	rs.MountReservation(&server.ReservationHandlers{S: app.NewReservationService(repo, repo)})
	reservationTS := httptest.NewServer(rs.Mux())
	t.Cleanup(reservationTS.Close)

	ps := server.New()
	ps.MountPayment(&server.PaymentHandlers{S: app.NewPaymentService(mysqlrepo.NewPaymentRepo(db))})
	paymentTS := httptest.NewServer(ps.Mux())
	t.Cleanup(paymentTS.Close)

	ls := server.New()
	ls.MountLoyalty(&server.LoyaltyHandlers{S: app.NewLoyaltyService(loyaltyStore)})
	loyaltyTS := httptest.NewServer(ls.Mux())
	t.Cleanup(loyaltyTS.Close)

	g := app.NewGateway(
		upstream.NewReservationClient(reservationTS.URL+server.APIPrefix, 0, nil),
		upstream.NewPaymentClient(paymentTS.URL+server.APIPrefix, 0, nil),
		upstream.NewLoyaltyClient(loyaltyTS.URL+server.APIPrefix, 0, nil),
	)
	gs := server.New()
	gs.MountGateway(&server.GatewayHandlers{G: g})
	gatewayTS := httptest.NewServer(gs.Mux())
	t.Cleanup(gatewayTS.Close)

	return &stack{gateway: gatewayTS, loyalty: loyaltyStore}
}

func (s *stack) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, s.gateway.URL+server.APIPrefix+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-User-Name", user)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func decode(t *testing.T, res *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

// ---------- the test ----------

func TestGateway_EndToEnd_BookAndCancel(t *testing.T) {
	s := startStack(t)
	if _, _, err := s.loyalty.Enroll(context.Background(), user); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	// book three nights at 10000 with the BRONZE 5% discount
	res := s.do(t, http.MethodPost, "/reservations", domain.CreateReservationRequest{
		HotelUID:  seededHotel,
		StartDate: "2021-10-08",
		EndDate:   "2021-10-11",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", res.StatusCode)
	}
	var created domain.CreatedReservation
	decode(t, res, &created)
	if created.Discount != 5 || created.Payment == nil || created.Payment.Price != 28500 {
		t.Fatalf("unexpected created reservation: %+v", created)
	}
	if created.Status != domain.ReservationPaid || created.HotelUID != seededHotel {
		t.Fatalf("unexpected created reservation: %+v", created)
	}

	res = s.do(t, http.MethodGet, "/me", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d", res.StatusCode)
	}
	var me domain.Profile
	decode(t, res, &me)
	if me.Loyalty.ReservationCount != 1 || len(me.Reservations) != 1 || me.Reservations[0].Payment == nil {
		t.Fatalf("unexpected profile: %+v", me)
	}

	res = s.do(t, http.MethodGet, "/reservations/"+created.ReservationUID, nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", res.StatusCode)
	}
	var detail struct {
		Hotel map[string]any `json:"hotel"`
	}
	decode(t, res, &detail)
	if detail.Hotel["fullAddress"] != "Russia, Moscow, Neglinnaya st., 4" {
		t.Fatalf("fullAddress = %v", detail.Hotel["fullAddress"])
	}
	if _, ok := detail.Hotel["address"]; ok {
		t.Fatalf("detail must not carry the raw address")
	}

	if res := s.do(t, http.MethodDelete, "/reservations/"+created.ReservationUID, nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("cancel: status %d", res.StatusCode)
	}
	if res := s.do(t, http.MethodDelete, "/reservations/"+created.ReservationUID, nil); res.StatusCode != http.StatusConflict {
		t.Fatalf("second cancel: status %d", res.StatusCode)
	}

	res = s.do(t, http.MethodGet, "/loyalty", nil)
	var l domain.Loyalty
	decode(t, res, &l)
	if l.ReservationCount != 0 {
		t.Fatalf("loyalty count after cancel = %d", l.ReservationCount)
	}
}

func TestGateway_EndToEnd_ForwardsUpstreamErrors(t *testing.T) {
	s := startStack(t)

	res := s.do(t, http.MethodGet, "/reservations/"+uuid.NewString(), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
		t.Fatalf("content type %q", ct)
	}

	if res := s.do(t, http.MethodGet, "/hotels?page=0", nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("hotels page=0: status %d", res.StatusCode)
	}

	// not enrolled: the loyalty 404 aborts booking before any payment
	res = s.do(t, http.MethodPost, "/reservations", domain.CreateReservationRequest{
		HotelUID: seededHotel, StartDate: "2021-10-08", EndDate: "2021-10-11",
	})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("create without loyalty: status %d", res.StatusCode)
	}
	res = s.do(t, http.MethodGet, "/reservations", nil)
	var list []domain.ReservationView
	decode(t, res, &list)
	if len(list) != 0 {
		t.Fatalf("expected no reservations, got %d", len(list))
	}
}
