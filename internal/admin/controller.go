package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crm-master-api/internal/util"
)

type AdminController struct {
	AdminService AdminServicePort
}

// Export handles GET /admin/export?resources=countries,states&format=excel
func (ac *AdminController) Export(c *gin.Context) {
	resources := util.SplitCommaList(c.QueryArray("resources"))
	if len(resources) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resources query parameter is required"})
		return
	}

	format := ExportFormat(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	if format == "" {
		format = FormatExcel
	}

	contentType, filename, data, err := ac.AdminService.Export(resources, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
