package finyear

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"crm-master-api/internal/cascade"
	"crm-master-api/internal/notify"
	"crm-master-api/internal/repo"
	"crm-master-api/internal/resource"
	"crm-master-api/internal/session"
	"crm-master-api/internal/transport"
)

func TestValidateYear(t *testing.T) {
	tests := []struct {
		name string
		year FinancialYear
		want string
	}{
		{
			name: "valid",
			year: FinancialYear{Name: "FY 2025-26", StartDate: "2025-04-01", EndDate: "2026-03-31"},
			want: "",
		},
		{
			name: "missing name",
			year: FinancialYear{StartDate: "2025-04-01", EndDate: "2026-03-31"},
			want: "Name is required",
		},
		{
			name: "bad start date",
			year: FinancialYear{Name: "FY", StartDate: "01/04/2025", EndDate: "2026-03-31"},
			want: "Start date must be YYYY-MM-DD",
		},
		{
			name: "bad end date",
			year: FinancialYear{Name: "FY", StartDate: "2025-04-01", EndDate: ""},
			want: "End date must be YYYY-MM-DD",
		},
		{
			name: "end before start",
			year: FinancialYear{Name: "FY", StartDate: "2026-03-31", EndDate: "2025-04-01"},
			want: "End date must be after start date",
		},
		{
			name: "end equals start",
			year: FinancialYear{Name: "FY", StartDate: "2025-04-01", EndDate: "2025-04-01"},
			want: "End date must be after start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateYear(tt.year); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestModule_ToggleYear_CascadesToRules(t *testing.T) {
	var mu sync.Mutex
	var patches []string
	rows := map[string]string{
		"financialYears": `[{"id":1,"name":"FY 2025-26","start_date":"2025-04-01","end_date":"2026-03-31","status":1}]`,
		"numberingRules": `[{"id":10,"financial_year_id":1,"document_type":"invoice","prefix":"INV","sequence_start":1,"status":1},
			{"id":11,"financial_year_id":1,"document_type":"receipt","prefix":"RCP","sequence_start":1,"status":0},
			{"id":12,"financial_year_id":2,"document_type":"invoice","prefix":"OLD","sequence_start":1,"status":1}]`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if r.Method == http.MethodPatch {
			mu.Lock()
			patches = append(patches, parts[0]+"/"+parts[1])
			mu.Unlock()
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(rows[parts[0]]))
	}))
	t.Cleanup(srv.Close)

	client := transport.NewClient(srv.URL, session.NewStore(), zap.NewNop())
	client.Retries = 0
	m := NewModule(client, resource.NewCache(time.Minute, 16),
		cascade.New(&notify.Recorder{}, zap.NewNop()), zap.NewNop())
	m.LoadAll(context.Background())

	y, _ := m.Years.Find("1")
	out, err := m.ToggleYear(context.Background(), y)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// year + its one active rule; the inactive rule and the other
	// year's rule are untouched
	if out.Patches != 2 {
		t.Fatalf("expected 2 patches, got %d (%v)", out.Patches, patches)
	}
	if r10, _ := m.Rules.Find("10"); r10.Status != repo.StatusInactive {
		t.Fatalf("active rule not deactivated")
	}
	if r12, _ := m.Rules.Find("12"); r12.Status != repo.StatusActive {
		t.Fatalf("other year's rule must not change")
	}
}
