package http

import (
	"github.com/gofiber/fiber/v2"
)

// Router agrupa los handlers y registra las rutas de la API.
type Router struct {
	Auth     *AuthHandler
	Stock    *StockHandler
	Movement *MovementHandler
	Transfer *TransferHandler
	Caja     *CajaHandler
	User     *UserHandler
	Branch   *BranchHandler
	Product  *ProductHandler

	// Session valida el token y deja la identidad en Locals.
	Session fiber.Handler
}

// Register monta las rutas sobre la app.
//
// GET /stock, GET /movimientos y sus escrituras son públicos, igual que el
// login. Dashboard, traslados y catálogos exigen sesión; la gestión de
// usuarios y las altas de catálogo exigen además rol admin.
func (r *Router) Register(app *fiber.App) {
	app.Post("/auth/login", r.Auth.Login)
	app.Post("/auth/logout", r.Auth.Logout)

	app.Get("/stock", r.Stock.List)
	app.Patch("/stock", r.Stock.Update)

	app.Get("/movimientos", r.Movement.List)
	app.Post("/movimientos", r.Movement.Create)

	dashboard := app.Group("/dashboard", r.Session)
	dashboard.Get("/caja", r.Caja.Current)
	dashboard.Post("/caja/abrir", r.Caja.Abrir)
	dashboard.Post("/caja/cerrar", r.Caja.Cerrar)
	dashboard.Get("/caja/:id/comprobante", r.Caja.Comprobante)

	traslados := app.Group("/traslados", r.Session)
	traslados.Get("/", r.Transfer.List)
	traslados.Post("/", r.Transfer.Create)

	usuarios := app.Group("/usuarios", r.Session, RequireAdmin())
	usuarios.Get("/", r.User.List)
	usuarios.Post("/", r.User.Create)

	sucursales := app.Group("/sucursales", r.Session)
	sucursales.Get("/", r.Branch.List)
	sucursales.Get("/:id", r.Branch.Get)
	sucursales.Post("/", RequireAdmin(), r.Branch.Create)

	productos := app.Group("/productos", r.Session)
	productos.Get("/", r.Product.List)
	productos.Get("/:id", r.Product.Get)
	productos.Post("/", RequireAdmin(), r.Product.Create)
}
