package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"120000", 120000, false},
		{" 65000.50 ", 65000.5, false},
		{"-12.5", -12.5, false},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDecimal(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidDecimal, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestFormatTicketNumber(t *testing.T) {
	assert.Equal(t, "MT-2025-001", FormatTicketNumber(2025, 1))
	assert.Equal(t, "MT-2024-042", FormatTicketNumber(2024, 42))
	assert.Equal(t, "MT-2025-1234", FormatTicketNumber(2025, 1234))
}

func TestPtrVal(t *testing.T) {
	p := Ptr(7)
	assert.Equal(t, 7, *p)
	assert.Equal(t, 7, Val(p))
	assert.Equal(t, "", Val[string](nil))
}

func TestPasswordHash(t *testing.T) {
	PasswordHashCost = bcrypt.MinCost
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))
}

type sampleRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Amount *string `json:"amount" validate:"omitempty,decimal"`
	Hidden string  `json:"-" validate:"omitempty,min=3"`
}

func TestValidator_UsesJSONNamesAndDecimalTag(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(sampleRequest{Email: "a@b.co", Amount: Ptr("10.25")}))

	err := v.Struct(sampleRequest{Amount: Ptr("ten")})
	details := FormatValidationErrors(err)
	require.Len(t, details, 2)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "validation_required", details[0].Code)
	assert.Equal(t, "amount", details[1].Field)
	assert.Equal(t, "validation_decimal", details[1].Code)

	assert.Nil(t, FormatValidationErrors(errors.New("not a validator error")))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", ClientIP(r))

	r.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "garbage, 203.0.113.9")
	assert.Equal(t, "203.0.113.9", ClientIP(r))
	assert.Equal(t, "192.0.2.10", RemoteIP(r))
}

func TestHandleAppError(t *testing.T) {
	rr := httptest.NewRecorder()
	HandleAppError(rr, NewNotFoundError("Unit not found"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"code":"not_found","message":"Unit not found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	HandleAppError(rr, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrCodeInternal)
}

func TestRequestIDContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}

type passwordRequest struct {
	Password string `json:"password" validate:"required,maxbytes=72"`
}

func TestValidator_MaxBytesCountsBytes(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(passwordRequest{Password: strings.Repeat("a", MaxPasswordBytes)}))
	// 36 runes, 72 bytes
	require.NoError(t, v.Struct(passwordRequest{Password: strings.Repeat("é", 36)}))

	for _, pw := range []string{strings.Repeat("a", 73), strings.Repeat("é", 37)} {
		details := FormatValidationErrors(v.Struct(passwordRequest{Password: pw}))
		require.Len(t, details, 1, "len %d", len(pw))
		assert.Equal(t, "password", details[0].Field)
		assert.Equal(t, "validation_maxbytes", details[0].Code)
		assert.Equal(t, "Field 'password' must not exceed 72 bytes", details[0].Message)
	}
}

type patchRequest struct {
	Note Nullable[string]    `json:"note" validate:"omitempty,min=3"`
	Due  Nullable[time.Time] `json:"due"`
}

func TestNullable_TellsAbsentFromNull(t *testing.T) {
	var absent patchRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Note.Set)
	assert.False(t, absent.Due.Set)

	var null patchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"note":null,"due":null}`), &null))
	assert.True(t, null.Note.Set)
	assert.Nil(t, null.Note.Value)
	assert.True(t, null.Due.Set)
	assert.Nil(t, null.Due.Value)

	var given patchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"note":"call back","due":"2025-03-14T09:30:00Z"}`), &given))
	require.NotNil(t, given.Note.Value)
	assert.Equal(t, "call back", *given.Note.Value)
	require.NotNil(t, given.Due.Value)
	assert.True(t, given.Due.Value.Equal(time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)))

	require.Error(t, json.Unmarshal([]byte(`{"note":7}`), &given))

	out, err := json.Marshal(patchRequest{Note: NewNullable("hi"), Due: NewNull[time.Time]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"note":"hi","due":null}`, string(out))
}

func TestValidator_SeesThroughNullable(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(patchRequest{}))
	require.NoError(t, v.Struct(patchRequest{Note: NewNull[string]()}))
	require.NoError(t, v.Struct(patchRequest{Note: NewNullable("long enough")}))

	details := FormatValidationErrors(v.Struct(patchRequest{Note: NewNullable("ab")}))
	require.Len(t, details, 1)
	assert.Equal(t, "note", details[0].Field)
	assert.Equal(t, "validation_min", details[0].Code)
}
