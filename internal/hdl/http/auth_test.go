package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avolkov/taskgate/internal/auth"
	"github.com/avolkov/taskgate/internal/config"
	"github.com/avolkov/taskgate/internal/ctrl"
	"github.com/avolkov/taskgate/internal/dto"
	"github.com/avolkov/taskgate/internal/hdl"
	"github.com/avolkov/taskgate/internal/hdl/http/utils"
	"github.com/avolkov/taskgate/internal/hdl/validation"
	"github.com/avolkov/taskgate/tests/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Register(t *testing.T) {
	const uri = "/public/register"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, validation.New("dev"), mctrl)

	tests := []struct {
		name       string
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:   "Success",
			status: http.StatusCreated,
			payload: map[string]any{
				"username": "alice",
				"password": "validpassword123",
			},
			expect: func() {
				mctrl.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, "user created", res.Message)
			},
		},
		{
			name:   "ErrDecodeRequest",
			status: http.StatusBadRequest,
			payload: map[string]any{
				"username": 0,
				"password": "validpassword123",
			},
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrDecodeRequest.Error(), res.Message)
			},
		},
		{
			name:   "ErrShortUsername",
			status: http.StatusBadRequest,
			payload: map[string]any{
				"username": "ab",
				"password": "validpassword123",
			},
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrValidationFailed.Error(), res.Message)
				assert.NotEmpty(t, res.Details)
			},
		},
		{
			name:   "ErrShortPassword",
			status: http.StatusBadRequest,
			payload: map[string]any{
				"username": "alice",
				"password": "short",
			},
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrValidationFailed.Error(), res.Message)
				assert.NotEmpty(t, res.Details)
			},
		},
		{
			name:   "ErrAlreadyExists",
			status: http.StatusConflict,
			payload: map[string]any{
				"username": "alice",
				"password": "validpassword123",
			},
			expect: func() {
				mctrl.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(ctrl.ErrAlreadyExists)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, ctrl.ErrAlreadyExists.Error(), res.Message)
			},
		},
		{
			name:   "ErrInternal",
			status: http.StatusInternalServerError,
			payload: map[string]any{
				"username": "alice",
				"password": "validpassword123",
			},
			expect: func() {
				mctrl.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrInternal.Error(), res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			tt.assertions(rec)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	const uri = "/public/login"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, validation.New("dev"), mctrl)

	testPair := &dto.TokenPairResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}

	tests := []struct {
		name       string
		skipDevice bool
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:   "Success",
			status: http.StatusOK,
			payload: map[string]any{
				"username": "alice",
				"password": "validpassword123",
			},
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), "test-user-agent", gomock.Any()).
					Return(testPair, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &dto.TokenPairResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, testPair, res)
			},
		},
		{
			name:       "ErrNoDeviceInfo",
			skipDevice: true,
			status:     http.StatusBadRequest,
			payload: map[string]any{
				"username": "alice",
				"password": "validpassword123",
			},
			expect: func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrNoDeviceInfo.Error(), res.Message)
			},
		},
		{
			name:   "ErrInvalidCredentials",
			status: http.StatusUnauthorized,
			payload: map[string]any{
				"username": "alice",
				"password": "wrongpassword",
			},
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), "test-user-agent", gomock.Any()).
					Return(nil, auth.ErrInvalidCredentials)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), res.Message)
			},
		},
		{
			name:   "ErrInternal",
			status: http.StatusInternalServerError,
			payload: map[string]any{
				"username": "alice",
				"password": "validpassword123",
			},
			expect: func() {
				mctrl.EXPECT().
					Login(gomock.Any(), "test-user-agent", gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrInternal.Error(), res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			if !tt.skipDevice {
				req = req.WithContext(
					context.WithValue(req.Context(), config.DeviceKey, "test-user-agent"),
				)
			}
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			tt.assertions(rec)
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	const uri = "/public/refresh"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, validation.New("dev"), mctrl)

	tests := []struct {
		name       string
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "Success",
			status:  http.StatusOK,
			payload: map[string]any{"refreshToken": "refresh-token"},
			expect: func() {
				mctrl.EXPECT().
					Refresh(gomock.Any(), gomock.Any()).
					Return(&dto.AccessTokenResponse{AccessToken: "new-access-token"}, nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &dto.AccessTokenResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, "new-access-token", res.AccessToken)
			},
		},
		{
			name:    "ErrMissingToken",
			status:  http.StatusBadRequest,
			payload: map[string]any{},
			expect:  func() {},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrValidationFailed.Error(), res.Message)
			},
		},
		{
			name:    "ErrInvalidRefreshToken",
			status:  http.StatusUnauthorized,
			payload: map[string]any{"refreshToken": "revoked-token"},
			expect: func() {
				mctrl.EXPECT().
					Refresh(gomock.Any(), gomock.Any()).
					Return(nil, auth.ErrInvalidRefreshToken)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidRefreshToken.Error(), res.Message)
			},
		},
		{
			name:    "ErrInternal",
			status:  http.StatusInternalServerError,
			payload: map[string]any{"refreshToken": "refresh-token"},
			expect: func() {
				mctrl.EXPECT().
					Refresh(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, hdl.ErrInternal.Error(), res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.refresh(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			tt.assertions(rec)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	const uri = "/public/logout"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, validation.New("dev"), mctrl)

	tests := []struct {
		name       string
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "Success",
			status:  http.StatusOK,
			payload: map[string]any{"refreshToken": "refresh-token"},
			expect: func() {
				mctrl.EXPECT().
					Logout(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, "logged out", res.Message)
			},
		},
		{
			name:    "ErrInvalidRefreshToken",
			status:  http.StatusUnauthorized,
			payload: map[string]any{"refreshToken": "garbage"},
			expect: func() {
				mctrl.EXPECT().
					Logout(gomock.Any(), gomock.Any()).
					Return(auth.ErrInvalidRefreshToken)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidRefreshToken.Error(), res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.logout(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			tt.assertions(rec)
		})
	}
}

func TestHandler_LogoutAll(t *testing.T) {
	const uri = "/public/logout-all"
	mock := gomock.NewController(t)
	defer mock.Finish()

	mctrl := mocks.NewMockAppCtrl(mock)
	mauth := mocks.NewMockPort(mock)
	h := New(mauth, validation.New("dev"), mctrl)

	tests := []struct {
		name       string
		status     int
		payload    map[string]any
		expect     func()
		assertions func(r *httptest.ResponseRecorder)
	}{
		{
			name:    "Success",
			status:  http.StatusOK,
			payload: map[string]any{"refreshToken": "refresh-token"},
			expect: func() {
				mctrl.EXPECT().
					LogoutAll(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.MessageResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, "logged out from all devices", res.Message)
			},
		},
		{
			name:    "ErrInvalidRefreshToken",
			status:  http.StatusUnauthorized,
			payload: map[string]any{"refreshToken": "garbage"},
			expect: func() {
				mctrl.EXPECT().
					LogoutAll(gomock.Any(), gomock.Any()).
					Return(auth.ErrInvalidRefreshToken)
			},
			assertions: func(r *httptest.ResponseRecorder) {
				res := &utils.ErrorsResponse{}
				assert.Nil(t, json.NewDecoder(r.Result().Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidRefreshToken.Error(), res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()

			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest(http.MethodPost, uri, bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.logoutAll(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			tt.assertions(rec)
		})
	}
}
