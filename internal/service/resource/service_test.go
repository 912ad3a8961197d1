package resource

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
)

type mockResourceStore struct {
	resources []*model.Resource
	views     map[string]int
	viewsErr  error
}

func (m *mockResourceStore) GetByID(id string) (*model.Resource, error) {
	for _, r := range m.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResourceStore) List(category, resourceType string, emergency *bool, offset, limit int) ([]*model.Resource, int64, error) {
	var out []*model.Resource
	for _, r := range m.resources {
		if category != "" && r.Category != category {
			continue
		}
		if resourceType != "" && r.Type != resourceType {
			continue
		}
		if emergency != nil && r.IsEmergency != *emergency {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (m *mockResourceStore) ListAllActive() ([]*model.Resource, error) {
	var out []*model.Resource
	for _, r := range m.resources {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockResourceStore) IncrementViews(id string) error {
	if m.viewsErr != nil {
		return m.viewsErr
	}
	if m.views == nil {
		m.views = make(map[string]int)
	}
	m.views[id]++
	return nil
}

func catalog() *mockResourceStore {
	return &mockResourceStore{resources: []*model.Resource{
		{ID: "r-1", Title: "Breathing Exercises", Category: "articles", Type: "article", IsActive: true},
		{ID: "r-2", Title: "Crisis Line", Category: "helplines", Type: "helpline", IsEmergency: true, IsActive: true},
		{ID: "r-3", Title: "Retired Guide", Category: "articles", Type: "article", IsActive: false},
	}}
}

func TestList(t *testing.T) {
	svc := NewService(catalog())

	resources, total, err := svc.List(context.Background(), "articles", "", nil, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(resources) != 2 {
		t.Errorf("articles: got %d/%d", len(resources), total)
	}

	emergency := true
	resources, _, err = svc.List(context.Background(), "", "", &emergency, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resources) != 1 || resources[0].ID != "r-2" {
		t.Errorf("emergency filter: %+v", resources)
	}
}

func TestGet(t *testing.T) {
	store := catalog()
	svc := NewService(store)
	ctx := context.Background()

	resource, err := svc.Get(ctx, "r-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resource.Title != "Breathing Exercises" {
		t.Errorf("title = %q", resource.Title)
	}
	if store.views["r-1"] != 1 {
		t.Errorf("views = %d, want 1", store.views["r-1"])
	}

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("missing resource: got %v", err)
	}

	// A failed view count never fails the read.
	store.viewsErr = errors.New("db down")
	if _, err := svc.Get(ctx, "r-1"); err != nil {
		t.Errorf("get with failing view count: %v", err)
	}
}

func TestListResources(t *testing.T) {
	svc := NewService(catalog())

	resources, err := svc.ListResources(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resources) != 2 {
		t.Errorf("expected only active entries, got %d", len(resources))
	}
	for _, r := range resources {
		if !r.IsActive {
			t.Errorf("inactive resource in catalog: %+v", r)
		}
	}
}
