package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
)

// Client fetches creature and item data from the two external sources the
// catalog is built from: a JSON API for the canonical creature list and a
// wiki for the per-entity info tables.
type Client struct {
	httpClient   *http.Client
	tibiaDataURL string
	wikiURL      string
	itemCategory string
}

type Option func(*Client)

// WithHTTPClient overrides the outbound transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(cfg config.ScrapeConfig, opts ...Option) (*Client, error) {
	if cfg.TibiaDataURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tibiadata url is required")
	}
	if cfg.WikiURL == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wiki url is required")
	}

	client := &Client{
		httpClient:   &http.Client{Timeout: cfg.HTTPTimeout},
		tibiaDataURL: strings.TrimRight(cfg.TibiaDataURL, "/"),
		wikiURL:      strings.TrimRight(cfg.WikiURL, "/"),
		itemCategory: cfg.ItemCategory,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type creatureListResponse struct {
	Creatures struct {
		CreatureList []struct {
			Name string `json:"name"`
		} `json:"creature_list"`
	} `json:"creatures"`
}

// CreatureNames returns the canonical creature name list.
func (c *Client) CreatureNames(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.tibiaDataURL+"/creatures")
	if err != nil {
		return nil, err
	}

	var payload creatureListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode creature list")
	}

	names := make([]string, 0, len(payload.Creatures.CreatureList))
	for _, creature := range payload.Creatures.CreatureList {
		if creature.Name != "" {
			names = append(names, creature.Name)
		}
	}
	return names, nil
}

// CreatureInfo fetches the wiki page for a creature and parses its info table.
func (c *Client) CreatureInfo(ctx context.Context, name string) (map[string]string, error) {
	return c.wikiInfo(ctx, name)
}

// ItemInfo fetches the wiki page for an item and parses its info table.
func (c *Client) ItemInfo(ctx context.Context, name string) (map[string]string, error) {
	return c.wikiInfo(ctx, name)
}

// ItemNames scrapes the configured category listing page for item names.
func (c *Client) ItemNames(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.wikiURL+"/"+pageSlug("Category:"+c.itemCategory))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parse category page")
	}

	var names []string
	seen := map[string]bool{}
	doc.Find(".category-page__member-link").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())
		if name == "" || strings.HasPrefix(name, "Category:") || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})
	return names, nil
}

func (c *Client) wikiInfo(ctx context.Context, name string) (map[string]string, error) {
	body, err := c.get(ctx, c.wikiURL+"/"+pageSlug(name))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "parse wiki page")
	}

	return ParseInfoTable(doc), nil
}

// ParseInfoTable flattens every two-column table row into a lowercase
// label -> value map. Later duplicates win, matching how the wiki repeats
// summary rows below the infobox.
func ParseInfoTable(doc *goquery.Document) map[string]string {
	info := map[string]string{}
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th, td")
		if cells.Length() != 2 {
			return
		}
		label := normalizeLabel(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if label == "" {
			return
		}
		info[label] = value
	})
	return info
}

func normalizeLabel(raw string) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.TrimSuffix(label, ":")
	return strings.Join(strings.Fields(label), " ")
}

func pageSlug(name string) string {
	return url.PathEscape(strings.ReplaceAll(name, " ", "_"))
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("User-Agent", "tibiaset-ingest/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch "+rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, rawURL)).
			WithHTTPStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read response body")
	}
	return body, nil
}
