package master

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type MasterController struct {
	Service MasterServiceAPI
}

func resourceParam(c *gin.Context) string {
	return strings.TrimSpace(c.Param("resource"))
}

func idParam(c *gin.Context) (int, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid record id is required"})
		return 0, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownResource):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrBadPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// List responds with the raw row array; the client wraps it in its own
// result envelope.
func (mc *MasterController) List(c *gin.Context) {
	filters := map[string]string{}
	for k, vs := range c.Request.URL.Query() {
		if len(vs) > 0 {
			filters[k] = vs[0]
		}
	}

	rows, err := mc.Service.List(resourceParam(c), filters)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (mc *MasterController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	row, err := mc.Service.Get(resourceParam(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (mc *MasterController) Create(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is required"})
		return
	}

	row, err := mc.Service.Create(resourceParam(c), payload)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (mc *MasterController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is required"})
		return
	}

	row, err := mc.Service.Update(resourceParam(c), id, payload)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (mc *MasterController) Patch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	row, err := mc.Service.Patch(resourceParam(c), id, fields)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (mc *MasterController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := mc.Service.Delete(resourceParam(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
