package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// LoginRequest entrada de autenticación.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// SesionResponse proyección local del token, sin ir a la red.
type SesionResponse struct {
	UserID   string     `json:"user_id"`
	Nombre   string     `json:"nombre"`
	Rol      string     `json:"rol"`
	Local    string     `json:"local"`
	ExpiraEn *time.Time `json:"expira_en,omitempty"`
}

// FromClaims adapta los claims del token a su DTO de respuesta.
func FromClaims(c *session.Claims) SesionResponse {
	r := SesionResponse{UserID: c.UserID, Nombre: c.Nombre, Rol: c.Rol, Local: c.Local}
	if c.ExpiresAt != nil {
		t := c.ExpiresAt.Time
		r.ExpiraEn = &t
	}
	return r
}

// UsuarioResponse proyección de sesión del backend, para la cabecera de la UI.
type UsuarioResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Rol            string          `json:"rol"`
	Local          string          `json:"local"`
	SaldoCajaChica decimal.Decimal `json:"saldo_caja_chica"`
}

// FromUsuario adapta la entidad a su DTO de respuesta.
func FromUsuario(u entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:             u.ID,
		Nombre:         u.Nombre,
		Rol:            u.Rol,
		Local:          u.Local,
		SaldoCajaChica: u.SaldoCajaChica,
	}
}
