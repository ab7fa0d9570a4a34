package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/super-backoffice/internal/application/auditoria"
	"github.com/tu-usuario/super-backoffice/internal/application/estado"
	"github.com/tu-usuario/super-backoffice/internal/application/etiquetas"
	"github.com/tu-usuario/super-backoffice/internal/application/facturas"
	"github.com/tu-usuario/super-backoffice/internal/application/gastos"
	"github.com/tu-usuario/super-backoffice/internal/application/inventario"
	"github.com/tu-usuario/super-backoffice/internal/application/nominas"
	"github.com/tu-usuario/super-backoffice/internal/application/notascredito"
	appsesion "github.com/tu-usuario/super-backoffice/internal/application/sesion"
	"github.com/tu-usuario/super-backoffice/internal/application/vencimientos"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
	httpRouter "github.com/tu-usuario/super-backoffice/internal/interfaces/http"
	"github.com/tu-usuario/super-backoffice/pkg/config"
	"github.com/tu-usuario/super-backoffice/pkg/logger"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	store := session.NewStore(cfg.Session.CredencialPath)
	c := cache.New(cfg.Cache.StaleTime(), cfg.Cache.RetryMax, log)

	cliente := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), store, log)

	authClient := api.NewAuthClient(cliente)
	facturasClient := api.NewFacturasClient(cliente)
	notasClient := api.NewNotasCreditoClient(cliente)
	nominasClient := api.NewNominasClient(cliente)
	cajaClient := api.NewCajaChicaClient(cliente)
	inventarioClient := api.NewInventarioClient(cliente)
	vencimientosClient := api.NewVencimientosClient(cliente)
	auditoriaClient := api.NewAuditoriaClient(cliente)
	etiquetasClient := api.NewEtiquetasClient(cfg.Backend.LabelaryURL)
	metricasClient := api.NewMetricasClient(cliente)

	sesionUC := appsesion.NewUseCase(c, authClient, store)
	facturasUC := facturas.NewUseCase(c, facturasClient)
	notasUC := notascredito.NewUseCase(c, notasClient)
	nominasUC := nominas.NewUseCase(c, nominasClient)
	gastosUC := gastos.NewUseCase(c, cajaClient)
	inventarioUC := inventario.NewUseCase(c, inventarioClient)
	vencimientosUC := vencimientos.NewUseCase(c, vencimientosClient)
	auditoriaUC := auditoria.NewUseCase(c, auditoriaClient)
	etiquetasUC := etiquetas.NewUseCase(etiquetasClient)
	estadoUC := estado.NewUseCase(c, metricasClient, cfg.Poll.Interval(), cfg.Poll.Timeout(), cfg.Poll.MaxFailures, log)

	ctx, stopPolling := context.WithCancel(context.Background())
	go estadoUC.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SesionUC:       sesionUC,
		FacturasUC:     facturasUC,
		NotasUC:        notasUC,
		NominasUC:      nominasUC,
		GastosUC:       gastosUC,
		InventarioUC:   inventarioUC,
		VencimientosUC: vencimientosUC,
		AuditoriaUC:    auditoriaUC,
		EtiquetasUC:    etiquetasUC,
		EstadoUC:       estadoUC,
		Store:          store,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopPolling()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
