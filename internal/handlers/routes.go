package handlers

import (
	"github.com/labstack/echo/v4"
)

// Routes bundles every handler the console serves
type Routes struct {
	Console *ConsoleHandler
	Audit   *AuditHandler
	Health  *HealthCheckHandler
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/", r.Console.Page)
	e.GET("/health", r.Health.HealthCheck)

	console := e.Group("/console")
	console.POST("/customers/search", r.Console.SearchCustomers)
	console.POST("/customers/add", r.Console.SearchOrAddCustomer)
	console.POST("/products", r.Console.AddProduct)
	console.POST("/purchases", r.Console.MakePurchase)
	console.GET("/customers", r.Console.ListCustomers)
	console.GET("/products", r.Console.ListProducts)
	console.GET("/purchases", r.Console.ListPurchases)
	console.GET("/total", r.Console.ShowTotal)
	console.GET("/regions/:region", r.Console.Region)
	console.GET("/audit", r.Audit.ListAuditLogs)
}
