package crud

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/session"
	"crm-master-api/internal/transport"
)

type incomeCategory struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status int    `json:"status"`
}

func (c incomeCategory) RecordID() repo.ID  { return repo.Canon(c.ID) }
func (c incomeCategory) RecordStatus() int  { return c.Status }
func (c incomeCategory) WithStatus(s int) incomeCategory {
	c.Status = s
	return c
}

func newTestCollection(t *testing.T, handler http.Handler) *repo.Collection[incomeCategory] {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := transport.NewClient(srv.URL, session.NewStore(), zap.NewNop())
	client.Retries = 0
	cache := resource.NewCache(time.Minute, 16)
	return repo.NewCollection[incomeCategory]("incomeCategories", client, cache, zap.NewNop())
}

func emptyListHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
}
