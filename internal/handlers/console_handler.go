package handlers

import (
	"net/http"

	"storefront-console/internal/dto"
	"storefront-console/internal/errors"
	"storefront-console/internal/models"
	"storefront-console/internal/services"
	"storefront-console/internal/view"

	"github.com/labstack/echo/v4"
)

// ConsoleBoard is the read side of the page plus form retention
type ConsoleBoard interface {
	KeepForm(form models.Form, values map[string]string)
	Snapshot(region models.Region) (models.RenderInstruction, bool)
	Page() view.Page
}

// ConsoleHandler serves the console page and every user action on it
type ConsoleHandler struct {
	lookup     services.CustomerLookupControllerInterface
	storefront services.StorefrontServiceInterface
	board      ConsoleBoard
	logger     services.ConsoleLoggerInterface
}

func NewConsoleHandler(
	lookup services.CustomerLookupControllerInterface,
	storefront services.StorefrontServiceInterface,
	board ConsoleBoard,
	logger services.ConsoleLoggerInterface,
) *ConsoleHandler {
	return &ConsoleHandler{
		lookup:     lookup,
		storefront: storefront,
		board:      board,
		logger:     logger,
	}
}

// Page renders the whole console
func (h *ConsoleHandler) Page(c echo.Context) error {
	return c.Render(http.StatusOK, view.TemplatePage, h.board.Page())
}

// SearchCustomers looks customers up without creating one on a miss
func (h *ConsoleHandler) SearchCustomers(c echo.Context) error {
	return h.lookupCustomers(c, false)
}

// SearchOrAddCustomer looks customers up and adds one when nothing matches
func (h *ConsoleHandler) SearchOrAddCustomer(c echo.Context) error {
	return h.lookupCustomers(c, true)
}

func (h *ConsoleHandler) lookupCustomers(c echo.Context, createIfMissing bool) error {
	var form dto.CustomerLookupForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, "customer_lookup", err)
	}
	h.board.KeepForm(models.FormCustomer, form.Values())

	result := h.lookup.Lookup(c.Request().Context(), form.Criteria(), createIfMissing)

	return h.respond(c, dto.ActionResponse{
		Action: models.AuditActionCustomerSearch,
		Region: models.RegionSearchResults,
		Render: result.Render,
		States: result.States,
	})
}

func (h *ConsoleHandler) AddProduct(c echo.Context) error {
	var form dto.AddProductForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, models.AuditActionProductAdded, err)
	}
	h.board.KeepForm(models.FormAddProduct, form.Values())

	return h.respondResult(c, h.storefront.AddProduct(c.Request().Context(), form))
}

func (h *ConsoleHandler) MakePurchase(c echo.Context) error {
	var form dto.MakePurchaseForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, models.AuditActionPurchaseMade, err)
	}
	h.board.KeepForm(models.FormMakePurchase, form.Values())

	return h.respondResult(c, h.storefront.MakePurchase(c.Request().Context(), form))
}

func (h *ConsoleHandler) ListCustomers(c echo.Context) error {
	return h.respondResult(c, h.storefront.ListCustomers(c.Request().Context()))
}

func (h *ConsoleHandler) ListProducts(c echo.Context) error {
	return h.respondResult(c, h.storefront.ListProducts(c.Request().Context()))
}

func (h *ConsoleHandler) ListPurchases(c echo.Context) error {
	return h.respondResult(c, h.storefront.ListPurchases(c.Request().Context()))
}

func (h *ConsoleHandler) ShowTotal(c echo.Context) error {
	return h.respondResult(c, h.storefront.ShowTotal(c.Request().Context()))
}

// Region returns what a single page region currently shows
func (h *ConsoleHandler) Region(c echo.Context) error {
	region, ok := models.ParseRegion(c.Param("region"))
	if !ok {
		return SendError(c, errors.ConsoleUnknownRegion, errors.WithDetails("region: "+c.Param("region")))
	}

	render, filled := h.board.Snapshot(region)
	if wantsHTML(c) {
		return c.Render(http.StatusOK, view.TemplateRegion, view.RegionView{Region: string(region), Render: render})
	}

	return c.JSON(http.StatusOK, dto.RegionResponse{
		Region: region,
		Render: render,
		Empty:  !filled,
	})
}

func (h *ConsoleHandler) respondResult(c echo.Context, result *models.ActionResult) error {
	return h.respond(c, dto.ActionResponse{
		Action: result.Action,
		Region: result.Region,
		Render: result.Render,
	})
}

// respond sends a browser back to the page and everything else the JSON outcome
func (h *ConsoleHandler) respond(c echo.Context, resp dto.ActionResponse) error {
	if wantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	resp.TraceID = getTraceID(c)
	return c.JSON(http.StatusOK, resp)
}

func (h *ConsoleHandler) badRequest(c echo.Context, operation string, err error) error {
	h.logger.LogValidationFailure(c.Request().Context(), operation, err.Error())
	return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
}
