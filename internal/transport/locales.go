package transport

import (
	"context"
	"net/http"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/rpggio/termstate/internal/model"
)

const knownLocalesKey = "locales"

// ListKnownLocales returns the global locale catalogue. The catalogue rarely
// changes and is cached for Options.LocalesTTL.
func (c *Client) ListKnownLocales(ctx context.Context) ([]model.Locale, error) {
	if x, ok := c.locales.Get(knownLocalesKey); ok {
		return x.([]model.Locale), nil
	}
	locales, err := get[[]model.Locale](ctx, c, http.MethodGet, nil, "locales")
	if err != nil {
		return nil, err
	}
	c.locales.Set(knownLocalesKey, locales, cache.DefaultExpiration)
	c.logger.Debug("cached known locales", zap.Int("count", len(locales)), zap.Duration("ttl", c.localesTTL))
	return locales, nil
}

func (c *Client) ListProjectLocales(ctx context.Context, projectID string) ([]model.ProjectLocale, error) {
	return get[[]model.ProjectLocale](ctx, c, http.MethodGet, nil, "projects", projectID, "translations")
}

func (c *Client) AddProjectLocale(ctx context.Context, projectID, localeCode string) (*model.ProjectLocale, error) {
	body := map[string]string{"code": localeCode}
	return ptr[model.ProjectLocale](ctx, c, http.MethodPost, body, "projects", projectID, "translations")
}

func (c *Client) DeleteProjectLocale(ctx context.Context, projectID, localeCode string) error {
	return c.do(ctx, http.MethodDelete, nil, nil, "projects", projectID, "translations", localeCode)
}

func (c *Client) ListTranslations(ctx context.Context, projectID, localeCode string) ([]model.Translation, error) {
	return get[[]model.Translation](ctx, c, http.MethodGet, nil, "projects", projectID, "translations", localeCode)
}

func (c *Client) UpdateTranslation(ctx context.Context, projectID, localeCode, termID, value string) (*model.Translation, error) {
	body := map[string]string{"termId": termID, "value": value}
	return ptr[model.Translation](ctx, c, http.MethodPatch, body, "projects", projectID, "translations", localeCode)
}
