package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/KmDRF/empacatalog/internal/cart"
	"github.com/KmDRF/empacatalog/internal/catalog"
	"github.com/KmDRF/empacatalog/internal/config"
	"github.com/KmDRF/empacatalog/internal/handler"
	"github.com/KmDRF/empacatalog/internal/infra"
	"github.com/KmDRF/empacatalog/internal/middleware"
	"github.com/KmDRF/empacatalog/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Carrito/Store.
func New(cfg *config.Config, store *catalog.Store, carrito *cart.Carrito, mailer *infra.Mailer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// Every cart mutation is observable: log the fresh totals after each one.
	carrito.Suscribir(func() {
		t := carrito.Totales()
		log.Debug().
			Int("unidades", t.Cantidad).
			Str("valor", t.Valor.String()).
			Msg("carrito actualizado")
	})

	// ── Services ─────────────────────────────────────────────────────────────
	catalogoSvc := service.NewCatalogoService(store)
	carritoSvc := service.NewCarritoService(carrito)
	pedidoSvc := service.NewPedidoService(carrito, mailer, cfg.ExportPath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	pedidoH := handler.NewPedidoHandler(pedidoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(store))

	v1 := r.Group("/v1")
	{
		v1.GET("/productos", catalogoH.Listar)
		v1.GET("/productos/:id", catalogoH.ObtenerPorID)
		v1.GET("/marcas", catalogoH.Marcas)
		v1.GET("/tipos", catalogoH.Tipos)

		v1.GET("/carrito", carritoH.Ver)
		v1.POST("/carrito/items", carritoH.AgregarItem)
		v1.PATCH("/carrito/items/:id", carritoH.CambiarCantidad)
		v1.DELETE("/carrito/items/:id", carritoH.QuitarItem)

		v1.GET("/pedido/export", pedidoH.Exportar)
		v1.GET("/pedido/mailto", pedidoH.Mailto)
		v1.GET("/pedido/pdf", pedidoH.PDF)
		v1.POST("/pedido/enviar", pedidoH.Enviar)
	}

	return r
}
