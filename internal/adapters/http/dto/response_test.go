package dto_test

import (
	"net/http"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/robot-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

func int64Ptr(v int64) *int64 { return &v }

func TestToRobotResponse_JSON(t *testing.T) {
	t.Parallel()

	resp := dto.ToRobotResponse(&ports.RobotDTO{ID: int64Ptr(1), Name: "AAAAAAAAAA"})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != `{"id":1,"name":"AAAAAAAAAA"}` {
		t.Errorf("JSON = %s, want %s", data, `{"id":1,"name":"AAAAAAAAAA"}`)
	}
}

func TestToRobotListResponse_EmptyEncodesAsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToRobotListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("JSON = %s, want []", data)
	}
}

func TestToRobotListResponse_PreservesOrder(t *testing.T) {
	t.Parallel()

	got := dto.ToRobotListResponse([]ports.RobotDTO{
		{ID: int64Ptr(2), Name: "b"},
		{ID: int64Ptr(1), Name: "a"},
	})
	if len(got) != 2 || *got[0].ID != 2 || *got[1].ID != 1 {
		t.Errorf("ToRobotListResponse() = %+v, want input order", got)
	}
}

func TestAlertHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		set        func(http.Header)
		wantAlert  string
		wantParams string
	}{
		{
			name:       "created",
			set:        func(h http.Header) { dto.SetCreationAlert(h, dto.RobotEntityName, "1") },
			wantAlert:  "micro1App.micro1Robot.created",
			wantParams: "1",
		},
		{
			name:       "updated",
			set:        func(h http.Header) { dto.SetUpdateAlert(h, dto.RobotEntityName, "2") },
			wantAlert:  "micro1App.micro1Robot.updated",
			wantParams: "2",
		},
		{
			name:       "deleted",
			set:        func(h http.Header) { dto.SetDeletionAlert(h, dto.RobotEntityName, "3") },
			wantAlert:  "micro1App.micro1Robot.deleted",
			wantParams: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			tt.set(h)

			if got := h.Get(dto.HeaderAlert); got != tt.wantAlert {
				t.Errorf("%s = %q, want %q", dto.HeaderAlert, got, tt.wantAlert)
			}
			if got := h.Get(dto.HeaderParams); got != tt.wantParams {
				t.Errorf("%s = %q, want %q", dto.HeaderParams, got, tt.wantParams)
			}
		})
	}
}

func TestSetFailureAlert(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	dto.SetFailureAlert(h, dto.RobotEntityName, dto.ErrorKeyIDNull)

	if got := h.Get(dto.HeaderError); got != "error.idnull" {
		t.Errorf("%s = %q, want %q", dto.HeaderError, got, "error.idnull")
	}
	if got := h.Get(dto.HeaderParams); got != "micro1Robot" {
		t.Errorf("%s = %q, want %q", dto.HeaderParams, got, "micro1Robot")
	}
}
