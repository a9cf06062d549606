package model_test

import (
	"fmt"
	"sync"
	"testing"

	"gorm.io/gorm/schema"

	"github.com/commission-tracker/backend/internal/integration/persistence/model"
)

func TestModels_SchemasParse(t *testing.T) {
	cache := &sync.Map{}

	for _, m := range model.Models() {
		t.Run(fmt.Sprintf("%T", m), func(t *testing.T) {
			if _, err := schema.Parse(m, cache, schema.NamingStrategy{}); err != nil {
				t.Fatalf("failed to parse schema: %v", err)
			}
		})
	}
}

func TestBrandModel_StringListColumns(t *testing.T) {
	s, err := schema.Parse(&model.BrandModel{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse schema: %v", err)
	}

	for _, name := range []string{"Categories", "Stages"} {
		field := s.LookUpField(name)
		if field == nil {
			t.Fatalf("field %s not found", name)
		}
		if field.DataType == "" {
			t.Errorf("expected %s to carry a data type", name)
		}
		if _, ok := s.Relationships.Relations[name]; ok {
			t.Errorf("expected %s to be a column, not a relation", name)
		}
	}
}
