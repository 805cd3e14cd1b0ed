package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/NejeNejeNeje/ropa-sub001/internal/common"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/match"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/swipe"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/user"
	circlemocks "github.com/NejeNejeNeje/ropa-sub001/internal/services/circles/mocks"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
	karmamocks "github.com/NejeNejeNeje/ropa-sub001/internal/services/karma/mocks"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/swipes"
	swipemocks "github.com/NejeNejeNeje/ropa-sub001/internal/services/swipes/mocks"
	usermocks "github.com/NejeNejeNeje/ropa-sub001/internal/services/users/mocks"
)

type testDeps struct {
	swipes  *swipemocks.MockService
	circles *circlemocks.MockService
	karma   *karmamocks.MockService
	users   *usermocks.MockService
	router  http.Handler
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &testDeps{
		swipes:  swipemocks.NewMockService(ctrl),
		circles: circlemocks.NewMockService(ctrl),
		karma:   karmamocks.NewMockService(ctrl),
		users:   usermocks.NewMockService(ctrl),
	}
	d.router = NewRouter(NewHandlers(d.swipes, d.circles, d.karma, d.users))
	return d
}

func TestRegisterOK(t *testing.T) {
	d := newTestDeps(t)
	d.users.EXPECT().
		Register(gomock.Any(), "thrift_fox").
		Return(&user.User{ID: 1, Nickname: "thrift_fox", KarmaPoints: 50, TrustTier: karma.TierBronze}, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"nickname":"thrift_fox"}`))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var u user.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, 50, u.KarmaPoints)
	assert.Equal(t, karma.TierBronze, u.TrustTier)
}

func TestRegisterDuplicateNicknameConflict(t *testing.T) {
	d := newTestDeps(t)
	d.users.EXPECT().
		Register(gomock.Any(), "thrift_fox").
		Return(nil, common.ErrDuplicateNickname)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"nickname":"thrift_fox"}`))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterMissingNickname(t *testing.T) {
	d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordSwipeOK(t *testing.T) {
	d := newTestDeps(t)
	d.swipes.EXPECT().
		RecordSwipe(gomock.Any(), uint(1), uint(2), swipe.DirectionRight).
		Return(swipes.Result{
			Swipe:   &swipe.Swipe{ID: 7, SwiperID: 1, ListingID: 2, Direction: swipe.DirectionRight},
			Matched: true,
			Match:   &match.Match{ID: "m-1", Status: match.StatusPending},
		}, nil)

	body := `{"swiper_id":1,"listing_id":2,"direction":"RIGHT"}`
	req := httptest.NewRequest(http.MethodPost, "/swipes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res swipes.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Matched)
	assert.Equal(t, "m-1", res.Match.ID)
}

func TestRecordSwipeSelfForbidden(t *testing.T) {
	d := newTestDeps(t)
	d.swipes.EXPECT().
		RecordSwipe(gomock.Any(), uint(1), uint(2), swipe.DirectionRight).
		Return(swipes.Result{}, common.ErrSelfSwipeForbidden)

	body := `{"swiper_id":1,"listing_id":2,"direction":"RIGHT"}`
	req := httptest.NewRequest(http.MethodPost, "/swipes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRecordSwipeListingNotFound(t *testing.T) {
	d := newTestDeps(t)
	d.swipes.EXPECT().
		RecordSwipe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(swipes.Result{}, common.ErrListingNotFound)

	body := `{"swiper_id":1,"listing_id":99,"direction":"RIGHT"}`
	req := httptest.NewRequest(http.MethodPost, "/swipes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordSwipeBadBody(t *testing.T) {
	d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodPost, "/swipes", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwipeStatsOK(t *testing.T) {
	d := newTestDeps(t)
	d.swipes.EXPECT().
		Stats(gomock.Any(), uint(3)).
		Return(swipes.Stats{Total: 10, Rights: 4, MatchRate: 25}, nil)

	req := httptest.NewRequest(http.MethodGet, "/swipes/stats?swiper_id=3", nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats swipes.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 10, stats.Total)
	assert.InDelta(t, 25, stats.MatchRate, 0.01)
}

func TestRSVPConflicts(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"full", common.ErrCircleFull, http.StatusConflict},
		{"duplicate", common.ErrDuplicateRSVP, http.StatusConflict},
		{"missing circle", common.ErrCircleNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.circles.EXPECT().RSVP(gomock.Any(), uint(1), uint(2)).Return(tt.err)

			body := `{"user_id":1,"circle_id":2}`
			req := httptest.NewRequest(http.MethodPost, "/circles/rsvp", strings.NewReader(body))
			rec := httptest.NewRecorder()
			d.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRSVPSuccess(t *testing.T) {
	d := newTestDeps(t)
	d.circles.EXPECT().RSVP(gomock.Any(), uint(1), uint(2)).Return(nil)

	body := `{"user_id":1,"circle_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/circles/rsvp", strings.NewReader(body))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCancelRSVP(t *testing.T) {
	d := newTestDeps(t)
	d.circles.EXPECT().CancelRSVP(gomock.Any(), uint(1), uint(2)).Return(nil)

	body := `{"user_id":1,"circle_id":2}`
	req := httptest.NewRequest(http.MethodDelete, "/circles/rsvp", strings.NewReader(body))
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKarmaStatsNotFound(t *testing.T) {
	d := newTestDeps(t)
	d.karma.EXPECT().
		Stats(gomock.Any(), uint(9)).
		Return(karma.Stats{}, common.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/karma/stats?user_id=9", nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKarmaStatsMissingParam(t *testing.T) {
	d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/karma/stats", nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKarmaLogOK(t *testing.T) {
	d := newTestDeps(t)
	d.karma.EXPECT().
		Log(gomock.Any(), uint(4), 10).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/karma/log?user_id=4&limit=10", nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz(t *testing.T) {
	d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMethodNotAllowed(t *testing.T) {
	d := newTestDeps(t)

	req := httptest.NewRequest(http.MethodGet, "/swipes", nil)
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
