// Package external is the location for the dnd5e-api client. It turns SRD
// weapons into attack profile templates for builds.
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/Pallarran/Ultimate-D-D-Tools/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var dashes = regexp.MustCompile(`-+`)

// Slug turns a weapon name or key into the API's key format,
// e.g. "Light Crossbow" -> "light-crossbow"
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = dashes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client defines the weapon catalog lookups the service needs
type Client interface {
	// GetWeapon fetches one weapon by key or name
	// Returns errors.NotFound when the API has no such equipment
	// Returns errors.InvalidArgument when the equipment is not a weapon
	GetWeapon(ctx context.Context, weaponID string) (*WeaponData, error)

	// ListWeapons returns every weapon in an equipment category such as
	// "martial-weapons"; an empty category means "weapon"
	ListWeapons(ctx context.Context, category string) ([]*WeaponData, error)
}

// equipmentSource is the part of dnd5e.Interface this package calls
type equipmentSource interface {
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
	GetEquipmentCategory(key string) (*entities.EquipmentCategory, error)
}

type client struct {
	dnd5eClient equipmentSource
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetWeapon(_ context.Context, weaponID string) (*WeaponData, error) {
	key := Slug(weaponID)
	if key == "" {
		return nil, errors.InvalidArgument("weapon ID is required")
	}

	slog.Info("Calling D&D 5e API to get weapon", "weapon", weaponID, "api", key)
	item, err := c.dnd5eClient.GetEquipment(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("failed to get equipment %s", key))
	}

	weapon := convertWeapon(item)
	if weapon == nil {
		return nil, errors.InvalidArgumentf("equipment %s is not a weapon", key)
	}
	return weapon, nil
}

func (c *client) ListWeapons(_ context.Context, category string) ([]*WeaponData, error) {
	if category == "" {
		category = "weapon"
	}

	equipmentCategory, err := c.dnd5eClient.GetEquipmentCategory(category)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to get equipment category %s", category))
	}

	return c.loadWeapons(equipmentCategory.Equipment)
}

// loadWeapons loads weapon details for a list of reference items
// concurrently. Non-weapons are skipped; order follows refs.
func (c *client) loadWeapons(refs []*entities.ReferenceItem) ([]*WeaponData, error) {
	slog.Info("Loading weapon details concurrently", "count", len(refs))
	loaded := make([]*WeaponData, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			item, err := c.dnd5eClient.GetEquipment(key)
			if err != nil {
				slog.Error("Failed to get equipment details", "equipment", key, "error", err)
				errChan <- fmt.Errorf("failed to get equipment %s: %w", key, err)
				return
			}
			loaded[idx] = convertWeapon(item)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load weapons")
		}
	}

	weapons := make([]*WeaponData, 0, len(loaded))
	for _, w := range loaded {
		if w != nil {
			weapons = append(weapons, w)
		}
	}
	return weapons, nil
}

// convertWeapon returns nil for anything that is not a weapon
func convertWeapon(item dnd5e.EquipmentInterface) *WeaponData {
	eq, ok := item.(*entities.Weapon)
	if !ok || eq == nil {
		return nil
	}

	weapon := &WeaponData{
		ID:             eq.Key,
		Name:           eq.Name,
		WeaponCategory: eq.WeaponCategory,
		WeaponRange:    eq.WeaponRange,
	}
	if eq.EquipmentCategory != nil {
		weapon.Category = eq.EquipmentCategory.Key
	}
	if eq.Damage != nil {
		weapon.DamageDice = eq.Damage.DamageDice
		if eq.Damage.DamageType != nil {
			weapon.DamageType = eq.Damage.DamageType.Name
		}
	}
	for _, prop := range eq.Properties {
		if prop != nil {
			weapon.Properties = append(weapon.Properties, prop.Name)
		}
	}
	return weapon
}
