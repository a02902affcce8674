package services

import (
	"dunestore/internal/catalog"
	"dunestore/internal/domain"
	"dunestore/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

// Forest builds the category tree from the current flat records.
func (s *CatalogService) Forest() (catalog.Forest, error) {
	cats, err := s.Cats.List()
	if err != nil {
		return catalog.Forest{}, err
	}
	return catalog.Build(cats), nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

// ProductsInCategory lists active products tagged with the named
// category or any of its descendants. An empty name means no filter.
func (s *CatalogService) ProductsInCategory(name string) ([]domain.Product, error) {
	if name == "" {
		return s.Prods.ListActive()
	}
	f, err := s.Forest()
	if err != nil {
		return nil, err
	}
	scope := f.NamesInScope(name)
	names := make([]string, 0, len(scope))
	for n := range scope {
		names = append(names, n)
	}
	return s.Prods.ListByCategoryNames(names)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// ProductSchema resolves the form schema a product inherits: its own
// category's fields, or the nearest ancestor's when the category
// defines none.
func (s *CatalogService) ProductSchema(p domain.Product) (domain.FormSchema, error) {
	cats, err := s.Cats.List()
	if err != nil {
		return domain.FormSchema{}, err
	}
	byName := make(map[string]domain.Category, len(cats))
	byID := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		byName[c.Name] = c
		byID[c.ID] = c
	}

	cur, ok := byName[p.Category]
	for hops := 0; ok && hops < len(cats)+1; hops++ {
		if cur.FieldsJSON != "" {
			return domain.ParseFormSchema(cur.FieldsJSON)
		}
		if cur.ParentID == nil {
			break
		}
		cur, ok = byID[*cur.ParentID]
	}
	return domain.FormSchema{}, nil
}

func (s *CatalogService) Search(q string, limit int) ([]domain.Product, error) {
	return s.Prods.Search(q, limit)
}
