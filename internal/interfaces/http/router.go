package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/auditoria"
	"github.com/tu-usuario/super-backoffice/internal/application/estado"
	"github.com/tu-usuario/super-backoffice/internal/application/etiquetas"
	"github.com/tu-usuario/super-backoffice/internal/application/facturas"
	"github.com/tu-usuario/super-backoffice/internal/application/gastos"
	"github.com/tu-usuario/super-backoffice/internal/application/inventario"
	"github.com/tu-usuario/super-backoffice/internal/application/nominas"
	"github.com/tu-usuario/super-backoffice/internal/application/notascredito"
	"github.com/tu-usuario/super-backoffice/internal/application/sesion"
	"github.com/tu-usuario/super-backoffice/internal/application/vencimientos"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SesionUC       *sesion.UseCase
	FacturasUC     *facturas.UseCase
	NotasUC        *notascredito.UseCase
	NominasUC      *nominas.UseCase
	GastosUC       *gastos.UseCase
	InventarioUC   *inventario.UseCase
	VencimientosUC *vencimientos.UseCase
	AuditoriaUC    *auditoria.UseCase
	EtiquetasUC    *etiquetas.UseCase
	EstadoUC       *estado.UseCase
	Store          *session.Store
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	sesionHandler := NewSesionHandler(deps.SesionUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", sesionHandler.Login)
	authGroup.Post("/logout", sesionHandler.Logout)

	// Rutas protegidas (requieren credencial vigente)
	protected := api.Group("/", RequiereSesion(deps.Store))

	protected.Get("/auth/sesion", sesionHandler.Sesion)
	protected.Get("/auth/perfil", sesionHandler.Perfil)

	facturasGroup := protected.Group("/facturas")
	facturasHandler := NewFacturasHandler(deps.FacturasUC)
	facturasGroup.Get("/", facturasHandler.List)
	facturasGroup.Get("/folio/:folio", facturasHandler.GetByFolio)
	facturasGroup.Post("/", facturasHandler.Create)

	notasGroup := protected.Group("/notas-credito")
	notasHandler := NewNotasHandler(deps.NotasUC)
	notasGroup.Get("/", notasHandler.List)
	notasGroup.Post("/", notasHandler.Create)
	notasGroup.Put("/:id/monto", notasHandler.UpdateMonto)

	nominasGroup := protected.Group("/nominas")
	nominasHandler := NewNominasHandler(deps.NominasUC)
	nominasGroup.Get("/", nominasHandler.List)
	nominasGroup.Get("/:id", nominasHandler.GetByID)
	nominasGroup.Put("/:id/cheques/:numero/conciliar", nominasHandler.ConciliarCheque)

	gastosHandler := NewGastosHandler(deps.GastosUC)
	gastosGroup := protected.Group("/gastos")
	gastosGroup.Get("/", gastosHandler.List)
	gastosGroup.Get("/estadisticas", gastosHandler.Estadisticas)
	gastosGroup.Post("/", gastosHandler.Create)
	gastosGroup.Put("/:id/estado", gastosHandler.UpdateEstado)
	cajaGroup := protected.Group("/caja-chica")
	cajaGroup.Get("/saldo", gastosHandler.Saldo)
	cajaGroup.Get("/estado", gastosHandler.Estado)

	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	invGroup.Get("/movimientos", inventarioHandler.List)
	invGroup.Post("/movimientos", inventarioHandler.Register)

	vencGroup := protected.Group("/vencimientos")
	vencimientosHandler := NewVencimientosHandler(deps.VencimientosUC)
	vencGroup.Get("/", vencimientosHandler.List)
	vencGroup.Post("/", vencimientosHandler.Register)
	vencGroup.Put("/:id/estado", vencimientosHandler.UpdateEstado)

	audGroup := protected.Group("/auditorias")
	auditoriaHandler := NewAuditoriaHandler(deps.AuditoriaUC)
	audGroup.Get("/precios", auditoriaHandler.List)
	audGroup.Post("/precios", auditoriaHandler.Register)

	etiquetasHandler := NewEtiquetasHandler(deps.EtiquetasUC)
	protected.Post("/etiquetas/preview", etiquetasHandler.Preview)

	estadoHandler := NewEstadoHandler(deps.EstadoUC)
	protected.Get("/estado", estadoHandler.Get)
	protected.Post("/estado/refrescar", estadoHandler.Refresh)

	// Navegación de vistas: el guard de sesión decide entre /login y la vista
	// por defecto sin producir ciclos de redirección.
	vistas := app.Group("/", GuardiaVistas(deps.Store))
	vistas.Get("/login", func(c *fiber.Ctx) error {
		return c.SendString("login")
	})
	vistas.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(VistaPorDefecto, fiber.StatusFound)
	})
	vistas.Get("/facturas", func(c *fiber.Ctx) error {
		return c.SendString("facturas")
	})
}
