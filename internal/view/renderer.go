package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"storefront-console/internal/models"

	"github.com/labstack/echo/v4"
)

// Template names understood by Renderer
const (
	TemplatePage   = "page.html"
	TemplateRegion = "region.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data behind TemplatePage
type Page struct {
	Regions map[string]models.RenderInstruction
	Forms   map[string]map[string]string
}

// RegionView is the data behind TemplateRegion
type RegionView struct {
	Region string
	Render models.RenderInstruction
}

// Renderer renders the console templates for echo.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("console").Funcs(template.FuncMap{
		"region":  regionView,
		"field":   formField,
		"variant": variantClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse console templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func regionView(page Page, name string) RegionView {
	return RegionView{Region: name, Render: page.Regions[name]}
}

func formField(page Page, form, field string) string {
	return page.Forms[form][field]
}

func variantClass(v models.Variant) string {
	if v == "" {
		return "empty"
	}
	return strings.ToLower(string(v))
}
