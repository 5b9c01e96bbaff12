// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Gavrilov

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mgavrilov/blackraven/internal/service"
	"github.com/mgavrilov/blackraven/internal/utils"
	"github.com/mgavrilov/blackraven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.jwt.token").
		Return(models.Token{UserID: 42}, nil)

	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dossiers", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		parseToken bool
	}{
		{name: "missing header"},
		{name: "header without token", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
		{name: "expired token", header: "Bearer expired.jwt", parseToken: true, parseErr: service.ErrTokenIsExpired},
		{name: "garbage token", header: "Bearer garbage.jwt", parseToken: true, parseErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, mocks := newTestHandler(t, ctrl)

			if tt.parseToken {
				mocks.auth.EXPECT().
					ParseToken(gomock.Any(), gomock.Any()).
					Return(models.Token{}, tt.parseErr)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/dossiers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
