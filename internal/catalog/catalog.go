package catalog

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"warung/internal/domain"
)

// формат файла каталога
type catalogFile struct {
	Categories []struct {
		Name     string `yaml:"name"`
		Products []struct {
			ID          int64  `yaml:"id"`
			Name        string `yaml:"name"`
			Price       int64  `yaml:"price"`
			Description string `yaml:"description"`
			Image       string `yaml:"image"`
			IsNew       bool   `yaml:"is_new"`
		} `yaml:"products"`
	} `yaml:"categories"`
}

// Load читает YAML-каталог. Невалидные и дублирующиеся записи
// пропускаются с предупреждением, остальное сохраняет порядок файла.
func Load(path string) ([]domain.Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[int64]bool)
	out := make([]domain.Category, 0, len(f.Categories))
	for _, c := range f.Categories {
		cat := domain.Category{Name: c.Name}
		for _, p := range c.Products {
			prod := domain.Product{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price,
				Description: p.Description,
				Image:       p.Image,
				IsNew:       p.IsNew,
			}
			if !prod.Valid() {
				log.Printf("catalog: skipping invalid product %q (id=%d)", p.Name, p.ID)
				continue
			}
			if seen[prod.ID] {
				log.Printf("catalog: skipping duplicate product id=%d", prod.ID)
				continue
			}
			seen[prod.ID] = true
			cat.Products = append(cat.Products, prod)
		}
		if c.Name == "" || len(cat.Products) == 0 {
			continue
		}
		out = append(out, cat)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("catalog %s has no valid products", path)
	}
	return out, nil
}
