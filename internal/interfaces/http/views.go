package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/pkg/numfmt"
)

//go:embed views
var viewsFS embed.FS

const layoutMain = "layouts/main"

// NewViewEngine construye el motor de plantillas HTML con las vistas embebidas.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		// solo falla si el directorio embebido no existe
		panic(err)
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("qty", func(d decimal.Decimal) string { return numfmt.Quantity(d) })
	engine.AddFunc("negative", func(d decimal.Decimal) bool { return d.IsNegative() })
	engine.AddFunc("datetime", func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") })
	engine.AddFunc("orDash", func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	})
	return engine
}
