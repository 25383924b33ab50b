package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	httpadapter "messdelivery/internal/adapters/in/http"
	"messdelivery/internal/core/application/usecases/commands"
	"messdelivery/internal/core/application/usecases/queries"
	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCommand[C any] struct {
	mock.Mock
}

func (m *mockCommand[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockResult[C, R any] struct {
	mock.Mock
}

func (m *mockResult[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(R)
	return r, args.Error(1)
}

type fakeResolver map[string]profile.Caller

func (f fakeResolver) Resolve(_ context.Context, token string) (profile.Caller, error) {
	caller, ok := f[token]
	if !ok {
		return profile.Caller{}, ports.ErrInvalidToken
	}
	return caller, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Login(_ context.Context, email, password string) (string, time.Time, error) {
	if email == "meena@example.com" && password == "s3cret!" {
		return "issued-token", time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC), nil
	}
	return "", time.Time{}, ports.ErrInvalidCredentials
}

type fakeFiles struct {
	dir string
}

func (f fakeFiles) Open(bucket, path, token string) (*os.File, error) {
	if token != "good" {
		return nil, errs.NewAccessDeniedError("link holder")
	}
	return os.Open(filepath.Join(f.dir, bucket, path))
}

type handlers struct {
	createDelivery *mockCommand[commands.CreateDeliveryCommand]
	accept         *mockCommand[commands.AcceptFromPoolCommand]
	advance        *mockCommand[commands.AdvanceStatusCommand]
	attach         *mockResult[commands.AttachProofCommand, string]
	request        *mockCommand[commands.RequestSubscriptionCommand]
	review         *mockCommand[commands.ReviewSubscriptionCommand]
	staff          *mockResult[commands.CreateDeliveryStaffCommand, kernel.UUID]
	markRead       *mockCommand[commands.MarkNotificationReadCommand]
	pool           *mockResult[queries.GetPublicPoolQuery, []queries.DeliveryView]
	assigned       *mockResult[queries.GetAssignedDeliveriesQuery, []queries.DeliveryView]
	messDeliveries *mockResult[queries.GetMessDeliveriesQuery, []queries.DeliveryView]
	mine           *mockResult[queries.GetStudentDeliveriesQuery, []queries.DeliveryView]
	messStaff      *mockResult[queries.GetMessStaffQuery, []queries.StaffMemberView]
	proofs         *mockResult[queries.GetDeliveryProofsQuery, queries.DeliveryProofsView]
	notifications  *mockResult[queries.GetNotificationsQuery, []queries.NotificationView]
}

type testServer struct {
	e        *echo.Echo
	h        handlers
	owner    profile.Caller
	student  profile.Caller
	courier  profile.Caller
	filesDir string
}

func newCaller(t *testing.T, role profile.Role) profile.Caller {
	t.Helper()
	caller, err := profile.NewCaller(kernel.NewUUID(), role)
	require.NoError(t, err)
	return caller
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		h: handlers{
			createDelivery: new(mockCommand[commands.CreateDeliveryCommand]),
			accept:         new(mockCommand[commands.AcceptFromPoolCommand]),
			advance:        new(mockCommand[commands.AdvanceStatusCommand]),
			attach:         new(mockResult[commands.AttachProofCommand, string]),
			request:        new(mockCommand[commands.RequestSubscriptionCommand]),
			review:         new(mockCommand[commands.ReviewSubscriptionCommand]),
			staff:          new(mockResult[commands.CreateDeliveryStaffCommand, kernel.UUID]),
			markRead:       new(mockCommand[commands.MarkNotificationReadCommand]),
			pool:           new(mockResult[queries.GetPublicPoolQuery, []queries.DeliveryView]),
			assigned:       new(mockResult[queries.GetAssignedDeliveriesQuery, []queries.DeliveryView]),
			messDeliveries: new(mockResult[queries.GetMessDeliveriesQuery, []queries.DeliveryView]),
			mine:           new(mockResult[queries.GetStudentDeliveriesQuery, []queries.DeliveryView]),
			messStaff:      new(mockResult[queries.GetMessStaffQuery, []queries.StaffMemberView]),
			proofs:         new(mockResult[queries.GetDeliveryProofsQuery, queries.DeliveryProofsView]),
			notifications:  new(mockResult[queries.GetNotificationsQuery, []queries.NotificationView]),
		},
		owner:    newCaller(t, profile.MessOwner),
		student:  newCaller(t, profile.Student),
		courier:  newCaller(t, profile.DeliveryPersonnel),
		filesDir: t.TempDir(),
	}

	resolver := fakeResolver{"owner": ts.owner, "student": ts.student, "courier": ts.courier}
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateDelivery:       ts.h.createDelivery,
		AcceptFromPool:       ts.h.accept,
		AdvanceStatus:        ts.h.advance,
		AttachProof:          ts.h.attach,
		RequestSubscription:  ts.h.request,
		ReviewSubscription:   ts.h.review,
		CreateDeliveryStaff:  ts.h.staff,
		MarkNotificationRead: ts.h.markRead,
		PublicPool:           ts.h.pool,
		AssignedDeliveries:   ts.h.assigned,
		MessDeliveries:       ts.h.messDeliveries,
		StudentDeliveries:    ts.h.mine,
		MessStaff:            ts.h.messStaff,
		DeliveryProofs:       ts.h.proofs,
		Notifications:        ts.h.notifications,
	}, resolver, fakeIssuer{})

	e, err := httpadapter.NewRouter(context.Background(), server, httpadapter.RouterConfig{
		Logger: zap.NewNop(),
		Files:  fakeFiles{dir: ts.filesDir},
	})
	require.NoError(t, err)
	ts.e = e
	return ts
}

func (ts *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for name, fileName := range files {
		part, err := w.CreateFormFile(name, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("\xff\xd8\xff\xe0 not really a jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "messdelivery_http_requests_total")
}

func TestAuthentication(t *testing.T) {
	ts := newTestServer(t)

	tests := map[string]string{
		"missing token": "",
		"unknown token": "forged",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/pool", nil), token)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", errorBody(t, rec).Code)
		})
	}
}

func TestIssueToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/auth/token",
		map[string]string{"email": "meena@example.com", "password": "s3cret!"}), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body httpadapter.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "issued-token", body.AccessToken)
	assert.Equal(t, "Bearer", body.TokenType)

	rec = ts.do(jsonRequest(http.MethodPost, "/api/v1/auth/token",
		map[string]string{"email": "meena@example.com", "password": "nope"}), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateDelivery(t *testing.T) {
	ts := newTestServer(t)
	subscriptionID, messID, personID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	ts.h.createDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateDeliveryCommand) bool {
		return cmd.SubscriptionID().IsEqual(subscriptionID) &&
			cmd.MessID().IsEqual(messID) &&
			cmd.Assignee() != nil && cmd.Assignee().IsEqual(personID) &&
			cmd.Date() != nil && cmd.Date().IsEqual(kernel.NewDate(2026, time.March, 2))
	})).Return(nil).Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/deliveries", map[string]string{
		"subscription_id":    subscriptionID.String(),
		"mess_id":            messID.String(),
		"delivery_person_id": personID.String(),
		"delivery_date":      "2026-03-02",
	}), "owner")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body httpadapter.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, err := kernel.UUIDFromGoogle(body.ID)
	require.NoError(t, err)
	ts.h.createDelivery.AssertExpectations(t)
}

func TestCreateDelivery_MissingMess(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/deliveries", map[string]string{
		"subscription_id": kernel.NewUUID().String(),
	}), "owner")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorBody(t, rec).Code)
	ts.h.createDelivery.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestHandlerErrorsMapToStatus(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
		code   string
	}{
		"lost race":      {errs.NewAlreadyClaimedError("delivery", "d1"), http.StatusConflict, "already_claimed"},
		"not found":      {errs.NewObjectNotFoundError("delivery", "d1"), http.StatusNotFound, "not_found"},
		"wrong role":     {errs.NewAccessDeniedError("delivery person"), http.StatusForbidden, "access_denied"},
		"bad transition": {errs.NewInvalidTransitionError("delivered", "assigned"), http.StatusUnprocessableEntity, "invalid_transition"},
		"storage down":   {errs.NewUpstreamError("postgres", errors.New("timeout")), http.StatusBadGateway, "upstream_unavailable"},
		"unexpected":     {errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.h.accept.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()

			rec := ts.do(httptest.NewRequest(http.MethodPost,
				"/api/v1/deliveries/"+kernel.NewUUID().String()+"/accept", nil), "courier")

			assert.Equal(t, tt.status, rec.Code)
			body := errorBody(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, http.StatusText(tt.status), body.Error)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "boom")
			}
		})
	}
}

func TestAcceptFromPool(t *testing.T) {
	ts := newTestServer(t)
	deliveryID := kernel.NewUUID()
	ts.h.accept.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AcceptFromPoolCommand) bool {
		return cmd.DeliveryID().IsEqual(deliveryID) && cmd.Caller().ID().IsEqual(ts.courier.ID())
	})).Return(nil).Once()

	rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/accept", nil), "courier")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.h.accept.AssertExpectations(t)
}

func TestAcceptFromPool_MalformedID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/deliveries/not-a-uuid/accept", nil), "courier")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.h.accept.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAdvanceStatus(t *testing.T) {
	ts := newTestServer(t)
	deliveryID := kernel.NewUUID()
	ts.h.advance.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceStatusCommand) bool {
		return cmd.DeliveryID().IsEqual(deliveryID) && cmd.Status() == delivery.PickedUp
	})).Return(nil).Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/status",
		map[string]string{"status": "picked_up"}), "courier")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.h.advance.AssertExpectations(t)
}

func TestAdvanceStatus_UnknownStatus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/status",
		map[string]string{"status": "teleported"}), "courier")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.h.advance.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAttachProof(t *testing.T) {
	ts := newTestServer(t)
	deliveryID := kernel.NewUUID()
	ts.h.attach.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AttachProofCommand) bool {
		return cmd.Slot() == delivery.PickupFood && cmd.File().FileName == "thali.jpg"
	})).Return(deliveryID.String()+"/pickup_food.jpg", nil).Once()

	rec := ts.do(multipartRequest(t, http.MethodPut,
		"/api/v1/deliveries/"+deliveryID.String()+"/proofs/pickup_food",
		nil, map[string]string{"file": "thali.jpg"}), "courier")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body httpadapter.ProofResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pickup_food", body.Slot)
	assert.Equal(t, deliveryID.String()+"/pickup_food.jpg", body.Path)
}

func TestAttachProof_Rejected(t *testing.T) {
	ts := newTestServer(t)
	deliveryID := kernel.NewUUID().String()

	t.Run("unknown slot", func(t *testing.T) {
		rec := ts.do(multipartRequest(t, http.MethodPut, "/api/v1/deliveries/"+deliveryID+"/proofs/selfie",
			nil, map[string]string{"file": "me.jpg"}), "courier")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		rec := ts.do(multipartRequest(t, http.MethodPut, "/api/v1/deliveries/"+deliveryID+"/proofs/pickup_food",
			map[string]string{"note": "forgot"}, nil), "courier")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	ts.h.attach.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetDeliveryProofs(t *testing.T) {
	ts := newTestServer(t)
	deliveryID := kernel.NewUUID()
	expires := time.Date(2026, 3, 2, 12, 5, 0, 0, time.UTC)
	ts.h.proofs.On("Handle", mock.Anything, mock.Anything).Return(queries.DeliveryProofsView{
		DeliveryID: deliveryID,
		Proofs: []queries.ProofView{{
			Slot:      delivery.DropoffFood,
			Path:      deliveryID.String() + "/dropoff_food.png",
			URL:       "https://storage.example.com/signed",
			ExpiresAt: expires,
		}},
	}, nil).Once()

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/"+deliveryID.String()+"/proofs", nil), "student")

	require.Equal(t, http.StatusOK, rec.Code)
	var body httpadapter.DeliveryProofsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Proofs, 1)
	assert.Equal(t, "dropoff_food", body.Proofs[0].Slot)
	assert.Equal(t, "https://storage.example.com/signed", body.Proofs[0].URL)
	assert.True(t, expires.Equal(body.Proofs[0].ExpiresAt))
}

func TestListings(t *testing.T) {
	ts := newTestServer(t)
	personID := kernel.NewUUID()
	view := queries.DeliveryView{
		ID:               kernel.NewUUID(),
		SubscriptionID:   kernel.NewUUID(),
		MessID:           kernel.NewUUID(),
		DeliveryPersonID: &personID,
		Status:           delivery.FoodReady,
		DeliveryDate:     kernel.NewDate(2026, time.March, 2),
	}
	ts.h.pool.On("Handle", mock.Anything, mock.Anything).Return([]queries.DeliveryView{}, nil)
	ts.h.assigned.On("Handle", mock.Anything, mock.Anything).Return([]queries.DeliveryView{view}, nil)
	ts.h.mine.On("Handle", mock.Anything, mock.Anything).Return([]queries.DeliveryView{view}, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/pool", nil), "courier")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	for _, target := range []string{"/api/v1/deliveries/assigned", "/api/v1/deliveries/mine"} {
		rec = ts.do(httptest.NewRequest(http.MethodGet, target, nil), "courier")
		require.Equal(t, http.StatusOK, rec.Code, target)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "food_ready", body[0]["status"])
		assert.Equal(t, "2026-03-02", body[0]["delivery_date"])
		assert.Equal(t, personID.String(), body[0]["delivery_person_id"])
	}
}

func TestGetMessDeliveries(t *testing.T) {
	ts := newTestServer(t)
	messID := kernel.NewUUID()
	ts.h.messDeliveries.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetMessDeliveriesQuery) bool {
		return q.MessID().IsEqual(messID) && q.Date().IsEqual(kernel.NewDate(2026, time.March, 2))
	})).Return([]queries.DeliveryView{}, nil).Once()

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/mess/"+messID.String()+"?date=2026-03-02", nil), "owner")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/mess/"+messID.String(), nil), "owner")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/deliveries/mess/"+messID.String()+"?date=March", nil), "owner")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.h.messDeliveries.AssertExpectations(t)
}

func TestRequestSubscription(t *testing.T) {
	ts := newTestServer(t)
	messID := kernel.NewUUID()
	ts.h.request.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RequestSubscriptionCommand) bool {
		return cmd.MessID().IsEqual(messID) &&
			cmd.StartDate().IsEqual(kernel.NewDate(2026, time.March, 1)) &&
			cmd.EndDate().IsEqual(kernel.NewDate(2026, time.March, 31)) &&
			cmd.Payment().FileName == "upi.png"
	})).Return(nil).Once()

	rec := ts.do(multipartRequest(t, http.MethodPost, "/api/v1/subscriptions", map[string]string{
		"mess_id":    messID.String(),
		"start_date": "2026-03-01",
		"end_date":   "2026-03-31",
	}, map[string]string{"payment_screenshot": "upi.png"}), "student")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ts.h.request.AssertExpectations(t)
}

func TestRequestSubscription_MissingScreenshot(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(multipartRequest(t, http.MethodPost, "/api/v1/subscriptions", map[string]string{
		"mess_id":    kernel.NewUUID().String(),
		"start_date": "2026-03-01",
		"end_date":   "2026-03-31",
	}, nil), "student")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", errorBody(t, rec).Code)
}

func TestReviewSubscription(t *testing.T) {
	ts := newTestServer(t)
	subscriptionID := kernel.NewUUID().String()

	ts.h.review.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ReviewSubscriptionCommand) bool {
		return cmd.Approve() && cmd.Confirmation() != nil && cmd.Confirmation().FileName == "ok.png"
	})).Return(nil).Once()
	ts.h.review.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ReviewSubscriptionCommand) bool {
		return !cmd.Approve()
	})).Return(nil).Once()

	rec := ts.do(multipartRequest(t, http.MethodPost, "/api/v1/subscriptions/"+subscriptionID+"/review",
		map[string]string{"decision": "approve"}, map[string]string{"confirmation_screenshot": "ok.png"}), "owner")
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = ts.do(multipartRequest(t, http.MethodPost, "/api/v1/subscriptions/"+subscriptionID+"/review",
		map[string]string{"decision": "reject"}, nil), "owner")
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = ts.do(multipartRequest(t, http.MethodPost, "/api/v1/subscriptions/"+subscriptionID+"/review",
		map[string]string{"decision": "maybe"}, nil), "owner")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.h.review.AssertExpectations(t)
}

func TestCreateStaff(t *testing.T) {
	ts := newTestServer(t)
	messID, userID := kernel.NewUUID(), kernel.NewUUID()
	ts.h.staff.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateDeliveryStaffCommand) bool {
		return cmd.Email() == "ravi@example.com" && cmd.PhoneNumber() == "" && cmd.MessID().IsEqual(messID)
	})).Return(userID, nil).Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/staff", map[string]string{
		"email":     "ravi@example.com",
		"password":  "s3cret!",
		"full_name": "Ravi",
		"mess_id":   messID.String(),
	}), "owner")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body httpadapter.CreateStaffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User created and assigned successfully", body.Message)
	assert.Equal(t, userID.Bytes(), body.UserID)
}

func TestCreateStaff_MissingFields(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(jsonRequest(http.MethodPost, "/api/v1/staff", map[string]string{
		"email":   "ravi@example.com",
		"mess_id": kernel.NewUUID().String(),
	}), "owner")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.h.staff.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetMessStaff(t *testing.T) {
	ts := newTestServer(t)
	ts.h.messStaff.On("Handle", mock.Anything, mock.Anything).Return([]queries.StaffMemberView{
		{ID: kernel.NewUUID(), FullName: "Ravi", PhoneNumber: "+91 98450 00000"},
	}, nil).Once()

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/messes/"+kernel.NewUUID().String()+"/staff", nil), "owner")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []httpadapter.StaffMemberResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Ravi", body[0].FullName)
}

func TestNotifications(t *testing.T) {
	ts := newTestServer(t)
	ts.h.notifications.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetNotificationsQuery) bool {
		return q.Limit() == 10
	})).Return([]queries.NotificationView{{ID: kernel.NewUUID(), DeliveryID: kernel.NewUUID(), Message: "Your delivery status is now: Delivered."}}, nil).Once()
	ts.h.markRead.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=10", nil), "student")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your delivery status is now: Delivered.")

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=lots", nil), "student")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+kernel.NewUUID().String()+"/read", nil), "student")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	ts.h.notifications.AssertExpectations(t)
	ts.h.markRead.AssertExpectations(t)
}

func TestServeFile(t *testing.T) {
	ts := newTestServer(t)
	dir := filepath.Join(ts.filesDir, "delivery_proofs", "d1")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pickup_food.jpg"), []byte("jpeg bytes"), 0o600))

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/files/delivery_proofs/d1/pickup_food.jpg?token=good", nil), "")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(body))

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/files/delivery_proofs/d1/pickup_food.jpg?token=bad", nil), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSwaggerDocument(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "/api/v1/deliveries/pool"))
}
