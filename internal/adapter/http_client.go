package adapter

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/shopman/internal/config"
	"github.com/MKhiriev/shopman/internal/logger"
	"github.com/MKhiriev/shopman/internal/utils"
	"github.com/MKhiriev/shopman/models"
)

type httpRemoteAuthority struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteAuthority constructs an HTTP/JSON implementation of
// [RemoteAuthority]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAuthority(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteAuthority, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteAuthority{client: client, logger: logger}, nil
}

// Ping implements [RemoteAuthority] via GET /api/ping.
func (h *httpRemoteAuthority) Ping(ctx context.Context) error {
	resp, err := h.request(ctx, "").Get("/api/ping")
	if err != nil {
		return networkError("ping", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx, "").
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, networkError("version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// GetListByName implements [RemoteAuthority] via GET /api/lists?name=.
func (h *httpRemoteAuthority) GetListByName(ctx context.Context, nameLowercase string) (models.List, error) {
	var list models.List

	resp, err := h.request(ctx, "").
		SetQueryParam("name", nameLowercase).
		SetResult(&list).
		Get("/api/lists")
	if err != nil {
		return models.List{}, networkError("get list", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.List{}, err
	}

	return list, nil
}

func (h *httpRemoteAuthority) CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error) {
	var list models.List

	resp, err := h.request(ctx, "").
		SetBody(req).
		SetResult(&list).
		Post("/api/lists")
	if err != nil {
		return models.List{}, networkError("create list", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.List{}, err
	}

	return list, nil
}

// VerifyPassword implements [RemoteAuthority] via
// POST /api/lists/{listID}/verify and returns the bearer token.
func (h *httpRemoteAuthority) VerifyPassword(ctx context.Context, listID string, req models.VerifyPasswordRequest) (string, error) {
	var verified models.VerifyPasswordResponse

	resp, err := h.request(ctx, "").
		SetBody(req).
		SetResult(&verified).
		Post(listPath(listID, "verify"))
	if err != nil {
		return "", networkError("verify password", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if !verified.Success || verified.Token == "" {
		return "", fmt.Errorf("%w: no token issued", ErrUnauthorized)
	}

	return verified.Token, nil
}

func (h *httpRemoteAuthority) UpdatePassword(ctx context.Context, listID string, req models.UpdatePasswordRequest, token string) error {
	resp, err := h.request(ctx, token).
		SetBody(req).
		Put(listPath(listID, "password"))
	if err != nil {
		return networkError("update password", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) DeleteList(ctx context.Context, listID string, req models.DeleteListRequest, token string) error {
	resp, err := h.request(ctx, token).
		SetBody(req).
		Delete(listPath(listID))
	if err != nil {
		return networkError("delete list", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) GetItems(ctx context.Context, listID, token string) ([]models.Item, error) {
	items := make([]models.Item, 0)

	resp, err := h.request(ctx, token).
		SetResult(&items).
		Get(listPath(listID, "items"))
	if err != nil {
		return nil, networkError("get items", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpRemoteAuthority) AddItem(ctx context.Context, listID string, fields models.ItemFields, token string) (models.Item, error) {
	var item models.Item

	resp, err := h.request(ctx, token).
		SetBody(models.AddItemRequest{Item: fields}).
		SetResult(&item).
		Post(listPath(listID, "items"))
	if err != nil {
		return models.Item{}, networkError("add item", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpRemoteAuthority) UpdateItem(ctx context.Context, itemID string, update models.ItemUpdate, token string) (models.Item, error) {
	var item models.Item

	resp, err := h.request(ctx, token).
		SetBody(update).
		SetResult(&item).
		Patch(itemPath(itemID))
	if err != nil {
		return models.Item{}, networkError("update item", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpRemoteAuthority) DeleteItem(ctx context.Context, itemID, token string) error {
	resp, err := h.request(ctx, token).Delete(itemPath(itemID))
	if err != nil {
		return networkError("delete item", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) ArchiveBought(ctx context.Context, listID, token string) (models.BulkResult, error) {
	return h.bulk(ctx, "archive bought", h.request(ctx, token).SetResult(&models.BulkResult{}), resty.MethodPost, listPath(listID, "archives"))
}

func (h *httpRemoteAuthority) DeleteItems(ctx context.Context, listID string, scope models.BulkScope, token string) (models.BulkResult, error) {
	req := h.request(ctx, token).
		SetQueryParam("scope", string(scope)).
		SetResult(&models.BulkResult{})
	return h.bulk(ctx, "delete items", req, resty.MethodDelete, listPath(listID, "items"))
}

func (h *httpRemoteAuthority) GetArchives(ctx context.Context, listID, token string) ([]models.Archive, error) {
	var archives models.ArchivesResponse

	resp, err := h.request(ctx, token).
		SetResult(&archives).
		Get(listPath(listID, "archives"))
	if err != nil {
		return nil, networkError("get archives", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if archives.Archives == nil {
		return []models.Archive{}, nil
	}
	return archives.Archives, nil
}

func (h *httpRemoteAuthority) DeleteArchive(ctx context.Context, listID, archiveID, token string) (models.BulkResult, error) {
	req := h.request(ctx, token).SetResult(&models.BulkResult{})
	return h.bulk(ctx, "delete archive", req, resty.MethodDelete, listPath(listID, "archives", archiveID))
}

func (h *httpRemoteAuthority) Undo(ctx context.Context, listID string, undo models.UndoData, token string) (models.UndoResult, error) {
	var result models.UndoResult

	resp, err := h.request(ctx, token).
		SetBody(models.UndoRequest{UndoData: undo}).
		SetResult(&result).
		Post(listPath(listID, "undo"))
	if err != nil {
		return models.UndoResult{}, networkError("undo", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UndoResult{}, err
	}

	return result, nil
}

func (h *httpRemoteAuthority) Subscribe(ctx context.Context, listID string, sub models.PushSubscription, token string) error {
	resp, err := h.request(ctx, token).
		SetBody(sub).
		Post(listPath(listID, "subscriptions"))
	if err != nil {
		return networkError("subscribe", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) Unsubscribe(ctx context.Context, listID, endpoint, token string) error {
	resp, err := h.request(ctx, token).
		SetBody(models.PushSubscription{Endpoint: endpoint}).
		Delete(listPath(listID, "subscriptions"))
	if err != nil {
		return networkError("unsubscribe", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteAuthority) bulk(ctx context.Context, op string, req *resty.Request, method, path string) (models.BulkResult, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpRemoteAuthority.bulk").Str("op", op).Msg("request failed")
		return models.BulkResult{}, networkError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BulkResult{}, err
	}

	return *resp.Result().(*models.BulkResult), nil
}

// request starts a JSON request carrying token as a bearer credential.
func (h *httpRemoteAuthority) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrNetwork, err)
}

func listPath(listID string, segments ...string) string {
	path := "/api/lists/" + url.PathEscape(listID)
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return path
}

func itemPath(itemID string) string {
	return "/api/items/" + url.PathEscape(itemID)
}
