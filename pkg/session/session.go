package session

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSinCredencial indica que no hay token almacenado.
var ErrSinCredencial = errors.New("session: sin credencial almacenada")

// Claims proyección de sesión que la UI necesita mostrar. El token lo emite y
// valida el backend; aquí solo se decodifica sin verificar la firma (el
// secreto no vive en esta capa).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Local  string `json:"local"` // sucursal asignada al usuario
}

// Store almacén de credencial respaldado en archivo. El token se relee del
// disco en cada llamada a Token(), de modo que una credencial recién emitida
// por otro proceso se usa sin reiniciar la aplicación.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore construye el almacén sobre la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token devuelve el token vigente leyéndolo del archivo. Cadena vacía si no hay.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// Save persiste el token (0600: la credencial es sensible).
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear elimina la credencial almacenada. Idempotente.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Claims decodifica los claims del token almacenado SIN verificar la firma.
// Sirve solo para la proyección de sesión (nombre, rol, expiración); la
// autorización real la decide el backend en cada petición.
func (s *Store) Claims() (*Claims, error) {
	tok := s.Token()
	if tok == "" {
		return nil, ErrSinCredencial
	}
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// Activa informa si hay token y, de haber claim de expiración, si aún no venció.
func (s *Store) Activa() bool {
	claims, err := s.Claims()
	if err != nil {
		return false
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}
