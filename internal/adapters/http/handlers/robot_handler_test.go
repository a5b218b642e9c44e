package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/robot-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/ports"
	"github.com/jsamuelsen11/robot-service/mocks"
)

var errStore = errors.New("database is locked")

func newRobotHandler(t *testing.T) (*handlers.RobotHandler, *mocks.MockRobotService) {
	t.Helper()
	svc := mocks.NewMockRobotService(t)
	return handlers.NewRobotHandler(svc), svc
}

// --- CreateRobot ---

func TestCreateRobot_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.RobotDTO) bool {
		return d.ID == nil && d.Name == "AAAAAAAAAA"
	})).Return(&ports.RobotDTO{ID: int64Ptr(1), Name: "AAAAAAAAAA"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/robots", jsonBody(t, dto.RobotRequest{Name: "AAAAAAAAAA"}))
	req.Header.Set("Content-Type", "application/json")
	h.CreateRobot(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if got := rec.Header().Get("Location"); got != "/api/robots/1" {
		t.Errorf("Location = %q, want %q", got, "/api/robots/1")
	}
	if got := rec.Header().Get(dto.HeaderAlert); got != "micro1App.micro1Robot.created" {
		t.Errorf("alert = %q, want %q", got, "micro1App.micro1Robot.created")
	}
	if got := rec.Header().Get(dto.HeaderParams); got != "1" {
		t.Errorf("params = %q, want %q", got, "1")
	}

	resp := decodeJSON[dto.RobotResponse](t, rec)
	if resp.ID == nil || *resp.ID != 1 || resp.Name != "AAAAAAAAAA" {
		t.Errorf("response = %+v, want id 1 name AAAAAAAAAA", resp)
	}
}

func TestCreateRobot_WithIDIsRejected(t *testing.T) {
	t.Parallel()
	h, _ := newRobotHandler(t) // no Save expected

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/robots", jsonBody(t, dto.RobotRequest{ID: int64Ptr(1), Name: "x"}))
	h.CreateRobot(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	if got := rec.Header().Get(dto.HeaderError); got != "error.idexists" {
		t.Errorf("error header = %q, want %q", got, "error.idexists")
	}

	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.ErrorKey != dto.ErrorKeyIDExists || resp.EntityName != dto.RobotEntityName {
		t.Errorf("problem = %+v, want idexists for micro1Robot", resp)
	}
}

func TestCreateRobot_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newRobotHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/robots", bytes.NewBufferString("{not json"))
	h.CreateRobot(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "body")
}

func TestCreateRobot_BodyTooLarge(t *testing.T) {
	t.Parallel()
	h, _ := newRobotHandler(t)

	name := strings.Repeat("a", 2<<20)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/robots", bytes.NewBufferString(`{"name":"`+name+`"}`))
	h.CreateRobot(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "body")
}

func TestCreateRobot_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().Save(mock.Anything, mock.Anything).Return(nil, errStore)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/robots", jsonBody(t, dto.RobotRequest{Name: "x"}))
	h.CreateRobot(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
	if strings.Contains(rec.Body.String(), errStore.Error()) {
		t.Errorf("body leaks store error: %s", rec.Body.String())
	}
}

// --- UpdateRobot ---

func TestUpdateRobot_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().Save(mock.Anything, mock.MatchedBy(func(d *ports.RobotDTO) bool {
		return d.ID != nil && *d.ID == 5 && d.Name == "BBBBBBBBBB"
	})).Return(&ports.RobotDTO{ID: int64Ptr(5), Name: "BBBBBBBBBB"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/robots", jsonBody(t, dto.RobotRequest{ID: int64Ptr(5), Name: "BBBBBBBBBB"}))
	h.UpdateRobot(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get(dto.HeaderAlert); got != "micro1App.micro1Robot.updated" {
		t.Errorf("alert = %q, want %q", got, "micro1App.micro1Robot.updated")
	}
	if got := rec.Header().Get(dto.HeaderParams); got != "5" {
		t.Errorf("params = %q, want %q", got, "5")
	}

	resp := decodeJSON[dto.RobotResponse](t, rec)
	if resp.Name != "BBBBBBBBBB" {
		t.Errorf("Name = %q, want %q", resp.Name, "BBBBBBBBBB")
	}
}

func TestUpdateRobot_WithoutIDIsRejected(t *testing.T) {
	t.Parallel()
	h, _ := newRobotHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/robots", jsonBody(t, dto.RobotRequest{Name: "x"}))
	h.UpdateRobot(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	if got := rec.Header().Get(dto.HeaderError); got != "error.idnull" {
		t.Errorf("error header = %q, want %q", got, "error.idnull")
	}
	if got := rec.Header().Get(dto.HeaderParams); got != "micro1Robot" {
		t.Errorf("params = %q, want %q", got, "micro1Robot")
	}
}

// --- ListRobots ---

func TestListRobots_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().FindAll(mock.Anything, robot.Sort(nil)).Return([]ports.RobotDTO{
		{ID: int64Ptr(1), Name: "a"},
		{ID: int64Ptr(2), Name: "b"},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots", nil)
	h.ListRobots(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[[]dto.RobotResponse](t, rec)
	if len(resp) != 2 {
		t.Errorf("len = %d, want 2", len(resp))
	}
}

func TestListRobots_SortIsForwarded(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	want := robot.Sort{
		{Field: robot.FieldID, Direction: robot.Desc},
		{Field: robot.FieldName, Direction: robot.Asc},
	}
	svc.EXPECT().FindAll(mock.Anything, want).Return([]ports.RobotDTO{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots?sort=id,desc&sort=name", nil)
	h.ListRobots(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want %q", body, "[]\n")
	}
}

func TestListRobots_InvalidSort(t *testing.T) {
	t.Parallel()
	h, _ := newRobotHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots?sort=color", nil)
	h.ListRobots(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "query.sort")
}

// --- GetRobot ---

func TestGetRobot_Found(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().FindOne(mock.Anything, int64(3)).
		Return(&ports.RobotDTO{ID: int64Ptr(3), Name: "r3"}, true, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots/3", nil)
	req = withChiParams(req, map[string]string{"id": "3"})
	h.GetRobot(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.RobotResponse](t, rec)
	if resp.ID == nil || *resp.ID != 3 {
		t.Errorf("ID = %v, want 3", resp.ID)
	}
}

func TestGetRobot_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().FindOne(mock.Anything, int64(9223372036854775807)).Return(nil, false, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots/9223372036854775807", nil)
	req = withChiParams(req, map[string]string{"id": "9223372036854775807"})
	h.GetRobot(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetRobot_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newRobotHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots/abc", nil)
	req = withChiParams(req, map[string]string{"id": "abc"})
	h.GetRobot(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	requireErrorLocation(t, rec, "path.id")
}

func TestGetRobot_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().FindOne(mock.Anything, int64(1)).Return(nil, false, errStore)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/robots/1", nil)
	req = withChiParams(req, map[string]string{"id": "1"})
	h.GetRobot(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- DeleteRobot ---

func TestDeleteRobot_Success(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(4)).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/robots/4", nil)
	req = withChiParams(req, map[string]string{"id": "4"})
	h.DeleteRobot(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
	if got := rec.Header().Get(dto.HeaderAlert); got != "micro1App.micro1Robot.deleted" {
		t.Errorf("alert = %q, want %q", got, "micro1App.micro1Robot.deleted")
	}
	if got := rec.Header().Get(dto.HeaderParams); got != "4" {
		t.Errorf("params = %q, want %q", got, "4")
	}
}

func TestDeleteRobot_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newRobotHandler(t)

	svc.EXPECT().Delete(mock.Anything, int64(4)).Return(errStore)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/robots/4", nil)
	req = withChiParams(req, map[string]string{"id": "4"})
	h.DeleteRobot(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}
