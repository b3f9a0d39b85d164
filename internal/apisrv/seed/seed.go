// Package seed loads a YAML manifest of tenants, accounts, leads, and
// assistants into the store. Development bootstrap only; the server never
// seeds in production.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
)

type manifest struct {
	Tenants []tenantSpec `yaml:"tenants"`
}

type tenantSpec struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Accounts   []accountSpec   `yaml:"accounts"`
	Leads      []leadSpec      `yaml:"leads"`
	Assistants []assistantSpec `yaml:"assistants"`
}

type accountSpec struct {
	Name     string `yaml:"name"`
	Industry string `yaml:"industry"`
	Website  string `yaml:"website"`
}

type assistantSpec struct {
	Name         string `yaml:"name"`
	Model        string `yaml:"model"`
	Instructions string `yaml:"instructions"`
}

type leadSpec struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Phone  string `yaml:"phone"`
	Source string `yaml:"source"`
	Status string `yaml:"status"`
}

// Load reads the manifest at path and creates its objects. Existing tenants
// are left alone, so seeding is idempotent across restarts.
func Load(ctx context.Context, store db.Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read seed manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("unable to parse seed manifest: %w", err)
	}

	ctx = db.StoreCtx(ctx, store)
	for _, t := range m.Tenants {
		tenantID := apicommon.TenantId(t.ID)
		if t.ID == "" {
			tenantID = apicommon.NewTenantId()
		}
		if !tenantID.IsValid() {
			return fmt.Errorf("seed manifest: invalid tenant id %q", t.ID)
		}
		tenant := &models.Tenant{TenantID: tenantID, Name: t.Name}
		if err := store.CreateTenant(ctx, tenant); err != nil {
			if errors.Is(err, dberror.ErrAlreadyExists) {
				log.Ctx(ctx).Info().Str("tenant_id", tenantID.String()).Msg("seed tenant already exists, skipping")
				continue
			}
			return err
		}
		for _, a := range t.Accounts {
			account := &models.Account{
				TenantID: tenantID,
				Name:     a.Name,
				Industry: a.Industry,
				Website:  a.Website,
			}
			if err := store.CreateAccount(ctx, account); err != nil {
				return err
			}
		}
		for _, l := range t.Leads {
			status := l.Status
			if status == "" {
				status = "new"
			}
			lead := &models.Lead{
				TenantID: tenantID,
				Name:     l.Name,
				Email:    l.Email,
				Phone:    l.Phone,
				Source:   l.Source,
				Status:   status,
			}
			if err := store.CreateLead(ctx, lead); err != nil {
				return err
			}
		}
		for _, a := range t.Assistants {
			assistant := &models.Assistant{
				TenantID:     tenantID,
				Name:         a.Name,
				Model:        a.Model,
				Instructions: a.Instructions,
			}
			if err := store.CreateAssistant(ctx, assistant); err != nil {
				return err
			}
		}
		log.Ctx(ctx).Info().
			Str("tenant_id", tenantID.String()).
			Int("accounts", len(t.Accounts)).
			Int("leads", len(t.Leads)).
			Int("assistants", len(t.Assistants)).
			Msg("seeded tenant")
	}
	return nil
}
