package inventory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"assetbot/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PageSize caps every list request. Results beyond it are not fetched.
const PageSize = 500

// ErrUnexpectedStatus marks a non-2xx response from Snipe-IT.
var ErrUnexpectedStatus = errors.New("snipe-it api error")

//go:generate mockgen -source=inventory_client.go -destination=mock_inventory_client.go -package=inventory

type Client interface {
	GetAssets(ctx context.Context) ([]models.AssetRecord, error)
	GetCategories(ctx context.Context) ([]models.CategoryRecord, error)
	GetFieldsets(ctx context.Context) ([]models.FieldsetRecord, error)
	GetModels(ctx context.Context) ([]models.ModelRecord, error)
}

type snipeITClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, logger *zap.Logger) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &snipeITClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *snipeITClient) GetAssets(ctx context.Context) ([]models.AssetRecord, error) {
	rows, err := fetchRows[hardwareRow](ctx, c, "/hardware")
	if err != nil {
		return nil, err
	}
	assets := make([]models.AssetRecord, 0, len(rows))
	for _, r := range rows {
		status := models.UnknownValue
		if r.StatusLabel != nil && r.StatusLabel.StatusMeta != "" {
			status = r.StatusLabel.StatusMeta
		}
		lastCheckout := models.NeverValue
		if r.LastCheckout != nil && r.LastCheckout.Formatted != "" {
			lastCheckout = r.LastCheckout.Formatted
		}
		assets = append(assets, models.AssetRecord{
			ID:           r.ID,
			Name:         stringOr(r.Name, models.UnknownValue),
			AssetTag:     stringOr(r.AssetTag, models.UnknownValue),
			Serial:       stringOr(r.Serial, models.UnknownValue),
			Model:        refName(r.Model, models.UnknownValue),
			ModelID:      refID(r.Model),
			Category:     refName(r.Category, models.UnknownValue),
			Status:       status,
			AssignedTo:   refName(r.AssignedTo, models.UnassignedValue),
			Location:     refName(r.Location, models.UnknownValue),
			LastCheckout: lastCheckout,
			CustomFields: customFields(r.CustomFields),
		})
	}
	return assets, nil
}

func (c *snipeITClient) GetCategories(ctx context.Context) ([]models.CategoryRecord, error) {
	rows, err := fetchRows[categoryRow](ctx, c, "/categories")
	if err != nil {
		return nil, err
	}
	categories := make([]models.CategoryRecord, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, models.CategoryRecord{
			ID:           r.ID,
			Name:         stringOr(r.Name, models.UnknownValue),
			CategoryType: stringOr(r.CategoryType, models.UnknownValue),
			AssetsCount:  r.AssetsCount,
		})
	}
	return categories, nil
}

func (c *snipeITClient) GetFieldsets(ctx context.Context) ([]models.FieldsetRecord, error) {
	rows, err := fetchRows[fieldsetRow](ctx, c, "/fieldsets")
	if err != nil {
		return nil, err
	}
	fieldsets := make([]models.FieldsetRecord, 0, len(rows))
	for _, r := range rows {
		fields := []models.CustomField{}
		if r.Fields != nil {
			for _, f := range r.Fields.Rows {
				fields = append(fields, models.CustomField{ID: f.ID, Name: f.Name, DBColumn: f.DBColumnName})
			}
		}
		fieldsets = append(fieldsets, models.FieldsetRecord{
			ID:     r.ID,
			Name:   stringOr(r.Name, models.UnknownValue),
			Fields: fields,
		})
	}
	return fieldsets, nil
}

func (c *snipeITClient) GetModels(ctx context.Context) ([]models.ModelRecord, error) {
	rows, err := fetchRows[modelRow](ctx, c, "/models")
	if err != nil {
		return nil, err
	}
	out := make([]models.ModelRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ModelRecord{
			ID:           r.ID,
			Name:         stringOr(r.Name, models.UnknownValue),
			Manufacturer: refName(r.Manufacturer, models.UnknownValue),
			Category:     refName(r.Category, models.UnknownValue),
			FieldsetID:   refID(r.Fieldset),
		})
	}
	return out, nil
}

func fetchRows[T any](ctx context.Context, c *snipeITClient, path string) ([]T, error) {
	endpoint := fmt.Sprintf("%s%s?limit=%d", c.baseURL, path, PageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build request for %s", path)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("snipe-it request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.Wrapf(ErrUnexpectedStatus, "GET %s: %d", path, resp.StatusCode)
	}

	var payload listResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if payload.Status == "error" {
		return nil, errors.Errorf("snipe-it %s: %v", path, payload.Messages)
	}
	if payload.Rows == nil {
		payload.Rows = []T{}
	}
	c.logger.Debug("fetched snipe-it rows",
		zap.String("path", path),
		zap.Int("rows", len(payload.Rows)),
		zap.Int("total", payload.Total))
	return payload.Rows, nil
}
