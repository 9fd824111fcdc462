package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/routes"

	"github.com/gin-gonic/gin"
)

type fakeReportRepository struct{}

func (fakeReportRepository) Find(ctx context.Context, userID, year, month int) (*report.Report, error) {
	return nil, nil
}
func (fakeReportRepository) Insert(ctx context.Context, r *report.Report) error { return nil }

type fakeTransactionReader struct{}

func (fakeTransactionReader) GetInWindow(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error) {
	return []*transaction.Transaction{
		{
			UserID:      userID,
			Type:        transaction.TypeExpense,
			Category:    "food",
			Sum:         50,
			Description: "Lunch",
			CreatedAt:   time.Date(2025, time.February, 15, 13, 0, 0, 0, time.Local),
		},
	}, nil
}

type fakeUserGetter struct {
	knownID int
}

func (f fakeUserGetter) Exists(ctx context.Context, userID int) error {
	if userID == f.knownID {
		return nil
	}
	return appErrors.ErrUserNotFound
}

func newReportRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reportSvc := report.NewService(
		fakeReportRepository{},
		report.NewGenerator(fakeTransactionReader{}, report.BasicVariant),
		shared.NewUserCheckerService(fakeUserGetter{knownID: 123123}),
		nil,
	)
	handler := routes.NewHandler(nil, nil, nil, reportSvc, nil, nil, nil, nil)

	router := gin.New()
	router.GET("/api/report", handler.GetReport)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetReportMissingParams(t *testing.T) {
	t.Parallel()

	router := newReportRouter(t)

	targets := []string{
		"/api/report",
		"/api/report?id=123123",
		"/api/report?id=123123&year=2025",
		"/api/report?year=2025&month=2",
	}
	for _, target := range targets {
		rec := doRequest(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}

		var body struct {
			ID      string `json:"id"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: %v", target, err)
		}
		if body.ID != "VALIDATION_ERROR" {
			t.Fatalf("%s: id = %s, want VALIDATION_ERROR", target, body.ID)
		}
		if body.Message != "Missing required query parameters: id, year, and month are required" {
			t.Fatalf("%s: unexpected message %q", target, body.Message)
		}
	}
}

func TestGetReportNonNumericParams(t *testing.T) {
	t.Parallel()

	router := newReportRouter(t)

	targets := []string{
		"/api/report?id=abc&year=2025&month=2",
		"/api/report?id=123123&year=twenty&month=2",
		"/api/report?id=123123&year=2025&month=feb",
	}
	for _, target := range targets {
		rec := doRequest(t, router, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestGetReportAcceptsUseridAlias(t *testing.T) {
	t.Parallel()

	router := newReportRouter(t)

	rec := doRequest(t, router, "/api/report?userid=123123&year=2025&month=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}

	var data report.Data
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.UserID != 123123 || data.Year != 2025 || data.Month != 2 {
		t.Fatalf("unexpected header: %+v", data)
	}
	if len(data.Costs) != 5 {
		t.Fatalf("expected 5 category buckets, got %d", len(data.Costs))
	}
}

func TestGetReportUnknownUser(t *testing.T) {
	t.Parallel()

	router := newReportRouter(t)

	rec := doRequest(t, router, "/api/report?id=999&year=2025&month=2")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.ID != "NOT_FOUND" || body.Message != "User not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
