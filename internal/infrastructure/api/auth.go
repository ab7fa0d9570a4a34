package api

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/domain"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// AuthClient autenticación contra el backend. El token emitido se guarda en
// el almacén de sesión; esta capa no lo valida, solo lo transporta.
type AuthClient struct {
	c *Client
}

// NewAuthClient construye el cliente.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Data  struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Login intercambia usuario/contraseña por un token de sesión.
func (a *AuthClient) Login(ctx context.Context, usuario, password string) (string, error) {
	var resp loginResponse
	if err := a.c.Post(ctx, "/auth/login", loginRequest{Usuario: usuario, Password: password}, &resp); err != nil {
		return "", err
	}
	tok := resp.Token
	if tok == "" {
		tok = resp.Data.Token
	}
	if tok == "" {
		return "", &domain.APIError{Kind: domain.KindDesconocido, Message: "el backend no devolvió token"}
	}
	return tok, nil
}

type perfilWire struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	Rol            string `json:"rol"`
	Local          string `json:"local"`
	SaldoCajaChica Monto  `json:"saldo_caja_chica"`
}

// Perfil proyección de sesión/usuario del backend (nombre, rol, saldo de
// caja chica para la cabecera de la UI).
func (a *AuthClient) Perfil(ctx context.Context) (entity.Usuario, error) {
	var w perfilWire
	if err := a.c.Get(ctx, "/auth/perfil", nil, &w); err != nil {
		return entity.Usuario{}, err
	}
	return entity.Usuario{
		ID:             w.ID,
		Nombre:         w.Nombre,
		Rol:            w.Rol,
		Local:          w.Local,
		SaldoCajaChica: w.SaldoCajaChica.Decimal,
	}, nil
}
