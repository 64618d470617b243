// Package store implements the content store admin API client: paginated
// listing, single-record fetch, and full-record replace for products,
// collections, and pages. Every response's rate-limit header feeds the
// store-side rate governor.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/storelingo/storelingo"
	"go.uber.org/zap"
)

// accessTokenHeader carries the bearer credential on every request.
const accessTokenHeader = "X-Store-Access-Token"

// callLimitHeader reports API usage as "used/max" on every response.
const callLimitHeader = "X-Store-Api-Call-Limit"

// DefaultPageLimit is the records-per-page default for list calls.
const DefaultPageLimit = 50

// Client is an HTTP client for the store admin API. Calls against the store
// share one rate domain and are expected to be sequential; the governor
// paces them when the allowance runs low.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	governor   *storelingo.RateGovernor
	logger     *zap.Logger
}

// Config holds configuration for the store client.
type Config struct {
	BaseURL     string // e.g. "https://my-store.example.com"
	AccessToken string
	HTTPClient  *http.Client             // optional, defaults to a 30s-timeout client
	Governor    *storelingo.RateGovernor // optional, defaults to a fresh governor
	Logger      *zap.Logger              // optional, defaults to no-op
}

// NewClient creates a store client. The base URL and access token are
// required; there is no credential persistence anywhere in the library.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, &storelingo.ConfigurationError{Message: "store base URL is required"}
	}
	if cfg.AccessToken == "" {
		return nil, &storelingo.ConfigurationError{Message: "store access token is required"}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	governor := cfg.Governor
	if governor == nil {
		governor = storelingo.NewRateGovernor()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.AccessToken,
		httpClient: httpClient,
		governor:   governor,
		logger:     logger,
	}, nil
}

// Governor returns the client's rate governor.
func (c *Client) Governor() *storelingo.RateGovernor {
	return c.governor
}

// PageRequest selects one page of a list call. An empty PageInfo means the
// first page; Limit of 0 means DefaultPageLimit.
type PageRequest struct {
	Limit    int
	PageInfo string
}

// ProductPage is one page of products plus the cursor for the next page
// ("" when there is none).
type ProductPage struct {
	Products     []storelingo.Product
	NextPageInfo string
}

// CollectionPage is one page of collections.
type CollectionPage struct {
	Collections  []storelingo.Collection
	NextPageInfo string
}

// PagePage is one page of content pages.
type PagePage struct {
	Pages        []storelingo.Page
	NextPageInfo string
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, page PageRequest) (*ProductPage, error) {
	var envelope struct {
		Products []storelingo.Product `json:"products"`
	}
	next, err := c.list(ctx, "/admin/api/products.json", page, &envelope)
	if err != nil {
		return nil, err
	}
	return &ProductPage{Products: envelope.Products, NextPageInfo: next}, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*storelingo.Product, error) {
	var envelope struct {
		Product storelingo.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/api/products/"+strconv.FormatInt(id, 10)+".json", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Product, nil
}

// UpdateProduct replaces a product with the given record.
func (c *Client) UpdateProduct(ctx context.Context, p *storelingo.Product) error {
	body := map[string]*storelingo.Product{"product": p}
	return c.do(ctx, http.MethodPut, "/admin/api/products/"+strconv.FormatInt(p.ID, 10)+".json", nil, body, nil)
}

// ListCollections fetches one page of collections.
func (c *Client) ListCollections(ctx context.Context, page PageRequest) (*CollectionPage, error) {
	var envelope struct {
		Collections []storelingo.Collection `json:"collections"`
	}
	next, err := c.list(ctx, "/admin/api/collections.json", page, &envelope)
	if err != nil {
		return nil, err
	}
	return &CollectionPage{Collections: envelope.Collections, NextPageInfo: next}, nil
}

// GetCollection fetches one collection by id.
func (c *Client) GetCollection(ctx context.Context, id int64) (*storelingo.Collection, error) {
	var envelope struct {
		Collection storelingo.Collection `json:"collection"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/api/collections/"+strconv.FormatInt(id, 10)+".json", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Collection, nil
}

// UpdateCollection replaces a collection with the given record.
func (c *Client) UpdateCollection(ctx context.Context, col *storelingo.Collection) error {
	body := map[string]*storelingo.Collection{"collection": col}
	return c.do(ctx, http.MethodPut, "/admin/api/collections/"+strconv.FormatInt(col.ID, 10)+".json", nil, body, nil)
}

// ListPages fetches one page of content pages.
func (c *Client) ListPages(ctx context.Context, page PageRequest) (*PagePage, error) {
	var envelope struct {
		Pages []storelingo.Page `json:"pages"`
	}
	next, err := c.list(ctx, "/admin/api/pages.json", page, &envelope)
	if err != nil {
		return nil, err
	}
	return &PagePage{Pages: envelope.Pages, NextPageInfo: next}, nil
}

// GetPage fetches one content page by id.
func (c *Client) GetPage(ctx context.Context, id int64) (*storelingo.Page, error) {
	var envelope struct {
		Page storelingo.Page `json:"page"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/api/pages/"+strconv.FormatInt(id, 10)+".json", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Page, nil
}

// UpdatePage replaces a content page with the given record.
func (c *Client) UpdatePage(ctx context.Context, pg *storelingo.Page) error {
	body := map[string]*storelingo.Page{"page": pg}
	return c.do(ctx, http.MethodPut, "/admin/api/pages/"+strconv.FormatInt(pg.ID, 10)+".json", nil, body, nil)
}

// list performs a paginated GET and returns the next-page cursor.
func (c *Client) list(ctx context.Context, path string, page PageRequest, out interface{}) (string, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if page.PageInfo != "" {
		query.Set("page_info", page.PageInfo)
	}

	var next string
	err := c.doWith(ctx, http.MethodGet, path, query, nil, out, func(resp *http.Response) {
		next = nextPageInfo(resp.Header.Get("Link"))
	})
	return next, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	return c.doWith(ctx, method, path, query, in, out, nil)
}

// doWith performs one governed HTTP call: pace, send, feed the governor from
// the call-limit header, map non-2xx to UpstreamError, decode JSON.
func (c *Client) doWith(ctx context.Context, method, path string, query url.Values, in, out interface{}, inspect func(*http.Response)) error {
	if err := c.governor.BeforeCall(ctx); err != nil {
		return &storelingo.UpstreamError{Message: "rate pacing interrupted", Cause: err}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &storelingo.UpstreamError{Message: "encoding request body", Cause: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &storelingo.UpstreamError{Message: "building request", Cause: err}
	}
	req.Header.Set(accessTokenHeader, c.token)
	req.Header.Set("User-Agent", storelingo.UserAgent())
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.governor.AfterCall(storelingo.CallMeta{})
		return &storelingo.UpstreamError{Message: method + " " + path + " failed", Cause: err}
	}
	defer resp.Body.Close()

	c.governor.AfterCall(callMeta(resp.Header.Get(callLimitHeader)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readErrorMessage(resp.Body)
		c.logger.Warn("store call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &storelingo.UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	if inspect != nil {
		inspect(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &storelingo.UpstreamError{Message: "decoding response body", Cause: err}
		}
	}
	return nil
}

// callMeta parses the "used/max" call-limit header. A missing or malformed
// header yields empty metadata, leaving governor state unchanged.
func callMeta(header string) storelingo.CallMeta {
	parts := strings.SplitN(header, "/", 2)
	if len(parts) != 2 {
		return storelingo.CallMeta{}
	}
	used, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	max, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || max < used {
		return storelingo.CallMeta{}
	}
	return storelingo.CallMeta{Remaining: max - used, HasRemaining: true}
}

// nextPageInfo extracts the page_info cursor from a Link response header,
// e.g. `<https://host/admin/api/products.json?page_info=abc>; rel="next"`.
func nextPageInfo(link string) string {
	for _, part := range strings.Split(link, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start < 0 || end <= start {
			continue
		}
		u, err := url.Parse(part[start+1 : end])
		if err != nil {
			continue
		}
		return u.Query().Get("page_info")
	}
	return ""
}

// readErrorMessage pulls a human-readable message out of an error payload,
// falling back to the raw body.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "request failed"
	}

	var payload struct {
		Errors interface{} `json:"errors"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Errors != nil {
		return fmt.Sprintf("%v", payload.Errors)
	}
	return string(data)
}
