package policy

import (
	"context"
	"encoding/json"
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

type fakeBackend struct {
	mu      sync.Mutex
	rows    map[string][]map[string]any
	patches []string
	deletes []string
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

		b.mu.Lock()
		defer b.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && len(parts) == 1:
			rows := b.rows[parts[0]]
			if rows == nil {
				rows = []map[string]any{}
			}
			json.NewEncoder(w).Encode(rows)
		case r.Method == http.MethodPatch && len(parts) == 2:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			b.patches = append(b.patches, parts[0]+"/"+parts[1])
			for _, row := range b.rows[parts[0]] {
				if repo.Canon(row["id"]) == parts[1] {
					row["status"] = body["status"]
				}
			}
			w.Write([]byte(`{}`))
		case r.Method == http.MethodDelete && len(parts) == 2:
			b.deletes = append(b.deletes, parts[0]+"/"+parts[1])
			kept := b.rows[parts[0]][:0]
			for _, row := range b.rows[parts[0]] {
				if repo.Canon(row["id"]) != parts[1] {
					kept = append(kept, row)
				}
			}
			b.rows[parts[0]] = kept
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		}
	})
}

func newTestModule(t *testing.T, backend *fakeBackend) *Module {
	t.Helper()

	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := transport.NewClient(srv.URL, session.NewStore(), zap.NewNop())
	client.Retries = 0
	cache := resource.NewCache(time.Minute, 64)
	engine := cascade.New(&notify.Recorder{}, zap.NewNop())

	m := NewModule(client, cache, engine, zap.NewNop())
	m.LoadAll(context.Background())
	return m
}

func seedHierarchy() *fakeBackend {
	return &fakeBackend{rows: map[string][]map[string]any{
		"businessVerticals": {
			{"id": 1, "name": "Retail", "status": 1},
		},
		"insuranceTypes": {
			{"id": 10, "business_vertical_id": 1, "name": "Health", "status": 1},
			{"id": 11, "business_vertical_id": 1, "name": "Motor", "status": 0},
		},
		"insuranceSubTypes": {
			{"id": 20, "insurance_type_id": 10, "business_vertical_id": 1, "name": "Family Floater", "status": 1},
		},
		"processFlows": {
			{"id": 30, "insurance_sub_type_id": 20, "name": "KYC", "sequence": 1, "status": 1},
		},
		"fields": {
			{"id": 40, "insurance_sub_type_id": 20, "name": "Sum Insured", "input_type": "number", "required": true, "status": 1},
			{"id": 41, "insurance_sub_type_id": 20, "name": "Nominee", "input_type": "text", "required": false, "status": 0},
		},
		"documents": {
			{"id": 50, "insurance_sub_type_id": 20, "name": "PAN Card", "mandatory": true, "status": 1},
		},
	}}
}

func TestModule_ToggleVertical_ReachesAllThreeLeafCollections(t *testing.T) {
	backend := seedHierarchy()
	m := newTestModule(t, backend)

	v, _ := m.Verticals.Find("1")
	out, err := m.ToggleVertical(context.Background(), v)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// vertical + Health + sub type + flow + active field + document;
	// Motor and the inactive field are skipped
	if out.Patches != 6 {
		t.Fatalf("expected 6 patches, got %d (%v)", out.Patches, backend.patches)
	}

	if f, _ := m.Flows.Find("30"); f.Status != repo.StatusInactive {
		t.Fatalf("flow not deactivated")
	}
	if f, _ := m.Fields.Find("40"); f.Status != repo.StatusInactive {
		t.Fatalf("field not deactivated")
	}
	if d, _ := m.Documents.Find("50"); d.Status != repo.StatusInactive {
		t.Fatalf("document not deactivated")
	}
	if typ, _ := m.Types.Find("11"); typ.Status != repo.StatusInactive {
		t.Fatalf("Motor was inactive and must stay inactive") // no change expected
	}
}

func TestModule_ToggleSubType_OnlyLeafDepth(t *testing.T) {
	backend := seedHierarchy()
	m := newTestModule(t, backend)

	st, _ := m.SubTypes.Find("20")
	out, err := m.ToggleSubType(context.Background(), st)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if out.Patches != 4 {
		t.Fatalf("expected 4 patches (sub type, flow, field, document), got %d", out.Patches)
	}
	if typ, _ := m.Types.Find("10"); typ.Status != repo.StatusActive {
		t.Fatalf("ancestors must not be touched")
	}
}

func TestModule_ToggleVertical_TwiceRestoresLeaves(t *testing.T) {
	backend := seedHierarchy()
	m := newTestModule(t, backend)

	v, _ := m.Verticals.Find("1")
	if _, err := m.ToggleVertical(context.Background(), v); err != nil {
		t.Fatalf("down: %v", err)
	}
	v, _ = m.Verticals.Find("1")
	if _, err := m.ToggleVertical(context.Background(), v); err != nil {
		t.Fatalf("up: %v", err)
	}

	if f, _ := m.Fields.Find("40"); f.Status != repo.StatusActive {
		t.Fatalf("previously active field must come back")
	}
	if f, _ := m.Fields.Find("41"); f.Status != repo.StatusInactive {
		t.Fatalf("independently inactive field must stay down")
	}
	if typ, _ := m.Types.Find("11"); typ.Status != repo.StatusInactive {
		t.Fatalf("independently inactive type must stay down")
	}
}

func TestModule_DeleteDocument_HardDeletes(t *testing.T) {
	backend := seedHierarchy()
	m := newTestModule(t, backend)

	if err := m.DeleteDocument(context.Background(), "50"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	backend.mu.Lock()
	deletes := len(backend.deletes)
	backend.mu.Unlock()
	if deletes != 1 {
		t.Fatalf("expected 1 DELETE, got %d", deletes)
	}
	if _, ok := m.Documents.Find("50"); ok {
		t.Fatalf("document should be gone after refetch")
	}
}

func TestSubType_ChangingVertical_ResetsTypeKey(t *testing.T) {
	st := InsuranceSubType{ID: 20, InsuranceTypeID: 10, BusinessVerticalID: 1}

	got := st.WithVertical(2)

	if got.BusinessVerticalID != 2 || got.InsuranceTypeID != 0 {
		t.Fatalf("unexpected keys: %+v", got)
	}
}
