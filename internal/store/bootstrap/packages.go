package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

// LoadPackageCatalog reads the server package definitions from a JSON
// array keyed by package id. Every package must carry a positive price
// and a deployment location, otherwise startup fails instead of silently
// selling a broken plan.
func LoadPackageCatalog(path string) (domain.PackageCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package catalog: %w", err)
	}

	return ParsePackageCatalog(data)
}

func ParsePackageCatalog(data []byte) (domain.PackageCatalog, error) {
	var packages []domain.ServerPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("failed to parse package catalog: %w", err)
	}

	catalog := make(domain.PackageCatalog, len(packages))
	for _, pkg := range packages {
		if pkg.Id == "" {
			return nil, fmt.Errorf("package without id in catalog")
		}
		if _, exists := catalog[pkg.Id]; exists {
			return nil, fmt.Errorf("duplicate package id %q in catalog", pkg.Id)
		}
		if pkg.Price <= 0 {
			return nil, fmt.Errorf("package %q has non-positive price", pkg.Id)
		}
		if pkg.LocationId == 0 {
			return nil, fmt.Errorf("package %q has no deployment location", pkg.Id)
		}

		catalog[pkg.Id] = pkg
	}

	return catalog, nil
}
