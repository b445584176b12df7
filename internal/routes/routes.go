package routes

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/c14220110/radiologi-backend/config"
	"github.com/c14220110/radiologi-backend/internal/common/middlewares"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/controllers"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/models"
	pemeriksaanRoutes "github.com/c14220110/radiologi-backend/internal/pemeriksaan/routes"
	"github.com/c14220110/radiologi-backend/internal/pemeriksaan/services"
	"github.com/c14220110/radiologi-backend/ws"
)

// Dependencies adalah komponen yang sudah dibuat di main dan dipakai semua route.
type Dependencies struct {
	Config *config.Config
	Store  services.PemeriksaanStore
	Hub    *ws.Hub
	Log    *slog.Logger
	// Secret untuk token sesi (JWT_SECRET_KEY).
	Secret []byte
}

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, d Dependencies) *services.SesiRegistry {
	e.Use(middleware.Recover())
	// Token sesi dibaca client dari header respons, jadi header itu harus di-expose.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		ExposeHeaders: []string{middlewares.HeaderSesiToken, echo.HeaderContentDisposition},
	}))

	broadcast := func(ev models.Event) {
		if d.Hub != nil {
			d.Hub.BroadcastEvent(ev)
		}
	}
	notifier := services.LogNotifier{Log: d.Log}

	// Inisialisasi registry sesi: satu listing dan satu form per browser
	sesi := services.NewSesiRegistry(d.Config.SessionTTL,
		func() *services.Listing {
			return services.NewListing(d.Store, services.ListingOptions{
				Notifier: notifier,
				Log:      d.Log,
				OnDelete: broadcast,
			})
		},
		func() *services.Form {
			return services.NewForm(d.Store, services.FormOptions{
				Validator: services.Validator{StrictTarif: d.Config.TarifStrict},
				Notifier:  notifier,
				Log:       d.Log,
				OnSuccess: broadcast,
			})
		},
	)

	// Inisialisasi controller
	pemeriksaanController := controllers.NewPemeriksaanController(sesi, d.Log, d.Config.Location())
	tarifController := controllers.NewTarifController()

	// Grup API utama
	api := e.Group("/api")
	pemeriksaanRoutes.RegisterTarifRoutes(api, tarifController)
	pemeriksaanRoutes.RegisterPemeriksaanRoutes(api, pemeriksaanController,
		middlewares.SesiMiddleware(d.Secret, d.Config.SessionTTL))

	if d.Hub != nil {
		e.GET("/ws", ws.ServeWS(d.Hub))
	}
	return sesi
}
