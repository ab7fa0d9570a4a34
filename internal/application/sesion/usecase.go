package sesion

import (
	"context"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// UseCase ciclo de vida de la sesión: login, logout y proyección de perfil.
type UseCase struct {
	cache *cache.Cache
	tabla cache.TablaInvalidacion
	api   *api.AuthClient
	store *session.Store
	opts  cache.Opciones
}

// NewUseCase construye el caso de uso.
func NewUseCase(c *cache.Cache, cliente *api.AuthClient, store *session.Store) *UseCase {
	return &UseCase{cache: c, tabla: claves.Tabla, api: cliente, store: store, opts: cache.Opciones{Retry: -1}}
}

// Login autentica, persiste la credencial e invalida la proyección de sesión.
func (uc *UseCase) Login(ctx context.Context, usuario, password string) error {
	token, err := uc.api.Login(ctx, usuario, password)
	if err != nil {
		return err
	}
	if err := uc.store.Save(token); err != nil {
		return err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutLogin)
	return nil
}

// Logout descarta la credencial local. No hay llamada al backend: el token
// expira solo y el backend no mantiene estado de sesión revocable.
func (uc *UseCase) Logout() error {
	if err := uc.store.Clear(); err != nil {
		return err
	}
	uc.tabla.Aplicar(uc.cache, claves.MutLogout)
	return nil
}

// Activa informa si hay credencial vigente almacenada.
func (uc *UseCase) Activa() bool { return uc.store.Activa() }

// Claims proyección local del token, sin ir a la red.
func (uc *UseCase) Claims() (*session.Claims, error) { return uc.store.Claims() }

// Perfil proyección de sesión del backend (nombre, rol, saldo de caja chica),
// cacheada bajo la clave de sesión.
func (uc *UseCase) Perfil(ctx context.Context) (entity.Usuario, error) {
	return cache.FetchAs(ctx, uc.cache, claves.Sesion(), uc.api.Perfil, uc.opts)
}
