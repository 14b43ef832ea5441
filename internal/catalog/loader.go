package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/validation"
)

//go:embed data/catalog.json data/catalog.schema.json
var embedded embed.FS

// Definition is the on-disk shape of a catalog.
type Definition struct {
	Version     string                `json:"version" validate:"required"`
	Description string                `json:"description,omitempty"`
	Items       []domain.ItemTemplate `json:"items" validate:"required,min=1,dive"`
	Cases       []domain.Case         `json:"cases" validate:"dive"`
	FreeGrants  []FreeGrant           `json:"free_grants,omitempty" validate:"dive"`
	Shop        []domain.ShopListing  `json:"shop,omitempty" validate:"dive"`
}

// Loader reads catalog documents, validates them and builds registries.
type Loader struct {
	schemas validation.SchemaValidator
}

// NewLoader creates a loader with the catalog schema registered.
func NewLoader() (*Loader, error) {
	schema, err := embedded.ReadFile("data/catalog.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}
	schemas := validation.NewSchemaValidator()
	if err := schemas.RegisterSchema(SchemaName, schema); err != nil {
		return nil, err
	}
	return &Loader{schemas: schemas}, nil
}

// Load reads the catalog at path, or the built-in default catalog when path is empty.
func (l *Loader) Load(ctx context.Context, path string) (*Registry, error) {
	var (
		data []byte
		err  error
	)
	source := path
	if path == "" {
		source = "embedded:data/catalog.json"
		data, err = embedded.ReadFile("data/catalog.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	reg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"source", source,
		"items", len(reg.items),
		"cases", len(reg.cases),
		"listings", len(reg.shop))
	return reg, nil
}

// Parse validates a catalog document against the schema and builds a registry.
func (l *Loader) Parse(data []byte) (*Registry, error) {
	if err := l.schemas.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	return NewRegistry(def)
}

// Default returns the built-in catalog.
func Default() (*Registry, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	return l.Load(context.Background(), "")
}

// NewRegistry validates a definition and builds an immutable registry from it.
// Ids must be unique per kind; every reference must resolve.
func NewRegistry(def Definition) (*Registry, error) {
	if err := validation.Struct(def); err != nil {
		return nil, fmt.Errorf(ErrFmtInvalidDefinition, domain.ErrInvalidInput, validation.Summary(err))
	}

	r := &Registry{
		items:     make([]domain.ItemTemplate, 0, len(def.Items)),
		itemIndex: make(map[string]int, len(def.Items)),
		cases:     make([]domain.Case, 0, len(def.Cases)),
		caseIndex: make(map[string]int, len(def.Cases)),
	}

	for _, t := range def.Items {
		if _, exists := r.itemIndex[t.ID]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateItem, domain.ErrDuplicateID, t.ID)
		}
		r.itemIndex[t.ID] = len(r.items)
		r.items = append(r.items, t)
	}

	for _, c := range def.Cases {
		if _, exists := r.caseIndex[c.ID]; exists {
			return nil, fmt.Errorf(ErrFmtDuplicateCase, domain.ErrDuplicateID, c.ID)
		}
		for _, id := range c.Pool {
			if _, ok := r.itemIndex[id]; !ok {
				return nil, fmt.Errorf(ErrFmtPoolUnknownItem, domain.ErrItemNotFound, c.ID, id)
			}
		}
		c.Pool = append([]string(nil), c.Pool...)
		r.caseIndex[c.ID] = len(r.cases)
		r.cases = append(r.cases, c)
	}

	granted := make(map[string]bool, len(def.FreeGrants))
	for _, g := range def.FreeGrants {
		if granted[g.CaseID] {
			return nil, fmt.Errorf(ErrFmtDuplicateGrant, domain.ErrDuplicateID, g.CaseID)
		}
		if _, ok := r.caseIndex[g.CaseID]; !ok {
			return nil, fmt.Errorf(ErrFmtGrantUnknownCase, domain.ErrCaseNotFound, g.CaseID)
		}
		granted[g.CaseID] = true
		r.grants = append(r.grants, g)
	}

	listed := make(map[string]bool, len(def.Shop))
	for _, l := range def.Shop {
		if listed[l.ID] {
			return nil, fmt.Errorf(ErrFmtDuplicateListing, domain.ErrDuplicateID, l.ID)
		}
		if _, err := r.ListingPrice(domain.ShopListing{ID: l.ID, Type: l.Type}); err != nil {
			return nil, fmt.Errorf(ErrFmtListingUnknownRef+": %w", err, l.ID, domain.ErrListingNotFound)
		}
		listed[l.ID] = true
		r.shop = append(r.shop, l)
	}

	return r, nil
}
