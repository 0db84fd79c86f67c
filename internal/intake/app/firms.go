package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/service"
)

// firmsFile is the YAML layout of INTAKE_FIRMS_FILE:
//
//	firms:
//	  - id: "1"
//	    name: Smith & Co
//	    is_corporate: false
//	    sync_client_contact_info: true
//	    update_client_missing_data: true
//	    phone_rule: phone.matches("^04[0-9]{8}$")
type firmsFile struct {
	Firms []firmEntry `yaml:"firms"`
}

type firmEntry struct {
	ID                      string `yaml:"id"`
	Name                    string `yaml:"name"`
	IsCorporate             bool   `yaml:"is_corporate"`
	SyncClientContactInfo   *bool  `yaml:"sync_client_contact_info"`
	UpdateClientMissingData *bool  `yaml:"update_client_missing_data"`
	PhoneRule               string `yaml:"phone_rule"`
}

var ErrInvalidFirmsFile = errors.New("invalid firms file")

// LoadFirmsFile parses a firms seed file. Integration settings left out of an
// entry default to enabled.
func LoadFirmsFile(path string) ([]domain.Firm, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read firms file: %w", err)
	}
	return parseFirms(raw)
}

func parseFirms(raw []byte) ([]domain.Firm, error) {
	var doc firmsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFirmsFile, err)
	}

	seen := make(map[string]bool, len(doc.Firms))
	firms := make([]domain.Firm, 0, len(doc.Firms))
	for i, e := range doc.Firms {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidFirmsFile, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate firm id %q", ErrInvalidFirmsFile, id)
		}
		seen[id] = true

		firms = append(firms, domain.Firm{
			ID:          id,
			Name:        e.Name,
			IsCorporate: e.IsCorporate,
			Settings: domain.IntegrationSettings{
				SyncClientContactInfo:   e.SyncClientContactInfo == nil || *e.SyncClientContactInfo,
				UpdateClientMissingData: e.UpdateClientMissingData == nil || *e.UpdateClientMissingData,
			},
			PhoneRule: e.PhoneRule,
		})
	}
	return firms, nil
}

// SeedFirms upserts every firm through the firm service, so seeded phone
// rules are validated the same way as API writes.
func SeedFirms(ctx context.Context, svc *service.FirmService, firms []domain.Firm) error {
	for _, f := range firms {
		if _, err := svc.SaveFirm(ctx, f); err != nil {
			return fmt.Errorf("seed firm %q: %w", f.ID, err)
		}
	}
	return nil
}
