package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenPrueba emite un JWT firmado con un secreto arbitrario: el almacén no
// verifica la firma, solo decodifica los claims.
func tokenPrueba(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: "u1",
		Nombre: "Ana",
		Rol:    "admin",
		Local:  "centro",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-ajeno"))
	require.NoError(t, err)
	return tok
}

func almacenPrueba(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "credencial"))
}

func TestStoreGuardaYReleeDelArchivo(t *testing.T) {
	s := almacenPrueba(t)
	assert.Empty(t, s.Token())

	require.NoError(t, s.Save("abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", s.Token())
}

func TestStoreClearEsIdempotente(t *testing.T) {
	s := almacenPrueba(t)
	require.NoError(t, s.Save("tok"))

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
}

func TestStoreDecodificaClaimsSinVerificarFirma(t *testing.T) {
	s := almacenPrueba(t)
	require.NoError(t, s.Save(tokenPrueba(t, time.Now().Add(time.Hour))))

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "Ana", claims.Nombre)
	assert.Equal(t, "admin", claims.Rol)
	assert.Equal(t, "centro", claims.Local)
}

func TestStoreSinCredencial(t *testing.T) {
	s := almacenPrueba(t)
	_, err := s.Claims()
	assert.ErrorIs(t, err, ErrSinCredencial)
	assert.False(t, s.Activa())
}

func TestStoreActivaRespetaExpiracion(t *testing.T) {
	s := almacenPrueba(t)

	require.NoError(t, s.Save(tokenPrueba(t, time.Now().Add(time.Hour))))
	assert.True(t, s.Activa())

	require.NoError(t, s.Save(tokenPrueba(t, time.Now().Add(-time.Minute))))
	assert.False(t, s.Activa(), "un token vencido no cuenta como sesión")
}

func TestStoreTokenCorruptoNoEsActiva(t *testing.T) {
	s := almacenPrueba(t)
	require.NoError(t, s.Save("esto-no-es-un-jwt"))

	_, err := s.Claims()
	assert.Error(t, err)
	assert.False(t, s.Activa())
}
