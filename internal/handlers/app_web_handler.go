package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
)

// AppWebHandler serves the static booking page and admin console.
type AppWebHandler struct {
	publicDir string
}

func NewAppWebHandler(publicDir string) *AppWebHandler {
	return &AppWebHandler{publicDir: publicDir}
}

func (h *AppWebHandler) Index(c *gin.Context) {
	h.serve(c, "index.html")
}

func (h *AppWebHandler) Admin(c *gin.Context) {
	h.serve(c, "admin.html")
}

// Asset is the NoRoute fallback. Unknown /api paths stay JSON 404s.
func (h *AppWebHandler) Asset(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") || path == "/api" ||
		(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		httperr.NotFound(c, "route_not_found", "Route not found")
		return
	}

	h.serve(c, path)
}

func (h *AppWebHandler) serve(c *gin.Context, name string) {
	// Clean against "/" so ".." can never climb out of publicDir.
	rel := filepath.Clean("/" + filepath.FromSlash(name))
	full := filepath.Join(h.publicDir, rel)

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		httperr.NotFound(c, "not_found", "Not found")
		return
	}

	c.File(full)
}
