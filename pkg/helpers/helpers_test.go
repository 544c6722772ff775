package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CompareHashAndPassword(hash, "secret1"))
	assert.False(t, CompareHashAndPassword(hash, "secret2"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "secret1"))
}

func TestHashPasswordCostFallback(t *testing.T) {
	hash, err := HashPassword("secret1", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", 7*24*time.Hour)

	token, exp, err := m.IssueToken("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", claims.UserID)
}

func TestJWTRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.IssueToken("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTRejectsTampered(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, _, err := m.IssueToken("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)

	other := NewJWTManager("another-secret", time.Hour)
	_, err = other.VerifyToken(token)
	assert.Error(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	_, err = m.VerifyToken(parts[0] + "." + parts[1] + "." + string(sig))
	assert.Error(t, err)

	_, err = m.VerifyToken("garbage")
	assert.Error(t, err)
}

func TestJWTRejectsNoneAlgorithm(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	claims := &Claims{
		UserID: "64b7f0c2a1b2c3d4e5f60718",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.VerifyToken(unsigned)
	assert.Error(t, err)
}

func TestLoggerFormatByEnv(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "photocards", "production").Info("hello")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "hello", entry["msg"])

	buf.Reset()
	newLogger(&buf, "photocards", "development").Debug("dev only")
	assert.Contains(t, buf.String(), "dev only")
	assert.NotContains(t, buf.String(), "{")
}

func TestRequestFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodDelete, "/cards/abc", nil)
	c.Set(FieldRequestID, "req-1")
	c.Set(FieldRealIP, "203.0.113.7")

	fields := RequestFields(c)
	assert.Equal(t, http.MethodDelete, fields["method"])
	assert.Equal(t, "/cards/abc", fields["path"])
	assert.Equal(t, "req-1", fields[FieldRequestID])
	assert.Equal(t, "203.0.113.7", fields[FieldRealIP])
	assert.NotContains(t, fields, FieldUserID)

	c.Set(CtxUserIDKey, "64b7f0c2a1b2c3d4e5f60718")
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", RequestFields(c)[FieldUserID])
}

func TestLogErrorCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "photocards", "production")
	buf.Reset()

	LogError(logger, "card delete failed", errors.New("db down"), UserFields("u1", "c1"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "db down", entry["error"])
	assert.Equal(t, "u1", entry[FieldUserID])
	assert.Equal(t, "c1", entry[FieldCardID])

	buf.Reset()
	LogInfo(logger, "user registered", UserFields("u2", ""))
	entry = map[string]any{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "u2", entry[FieldUserID])
	assert.NotContains(t, entry, FieldCardID)
}
