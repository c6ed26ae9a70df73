package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/beer-battle/internal/config"
	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/models"
)

const (
	healthPath     = "/api/health"
	documentsPath  = "/api/collections/{collection}/documents"
	documentPath   = "/api/collections/{collection}/documents/{id}"
	ownerQueryName = "owner"

	onlineProbeTimeout = 3 * time.Second

	// tokenRefreshMargin renews a cached owner token this long before it
	// expires.
	tokenRefreshMargin = 30 * time.Second
)

type httpDocumentStore struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	signKey       string
	issuer        string
	tokenDuration time.Duration

	mu     sync.Mutex
	tokens map[string]ownerToken

	logger *logger.Logger
}

type ownerToken struct {
	value     string
	expiresAt time.Time
}

// NewHTTPDocumentStore builds the HTTP implementation of [DocumentStore]
// for the server at adapterCfg.HTTPAddress.
func NewHTTPDocumentStore(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (DocumentStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid adapter http address: %w", ErrInvalidAdapterConfig, err)
	}
	if appCfg.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: token sign key is empty", ErrInvalidAdapterConfig)
	}

	return &httpDocumentStore{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:        utils.NewHasher(appCfg.HashKey),
		signKey:       appCfg.TokenSignKey,
		issuer:        appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		tokens:        make(map[string]ownerToken),
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpDocumentStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrTransport, err)
	}
	return mapHTTPError(resp)
}

func (h *httpDocumentStore) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, onlineProbeTimeout)
	defer cancel()

	return h.Ping(ctx) == nil
}

func (h *httpDocumentStore) Put(ctx context.Context, collection string, doc models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	req, err := h.ownerRequest(ctx, doc.OwnerID)
	if err != nil {
		return err
	}
	if h.hasher.Enabled() {
		req.SetHeader(utils.HashHeader, h.hasher.HashString(body))
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParams(map[string]string{"collection": collection, "id": doc.ID}).
		SetBody(body).
		Put(documentPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpDocumentStore.Put").
			Str("collection", collection).
			Str("id", doc.ID).
			Msg("put request failed")
		return fmt.Errorf("%w: put document: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpDocumentStore) Get(ctx context.Context, collection, id, ownerID string) (models.Document, error) {
	req, err := h.ownerRequest(ctx, ownerID)
	if err != nil {
		return models.Document{}, err
	}

	resp, err := req.
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		SetQueryParam(ownerQueryName, ownerID).
		Get(documentPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: get document: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err = decodeJSON(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func (h *httpDocumentStore) ListByOwner(ctx context.Context, collection, ownerID string) ([]models.Document, error) {
	req, err := h.ownerRequest(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetPathParam("collection", collection).
		SetQueryParam(ownerQueryName, ownerID).
		Get(documentsPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpDocumentStore.ListByOwner").
			Str("collection", collection).
			Msg("list request failed")
		return nil, fmt.Errorf("%w: list documents: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	docs := make([]models.Document, 0)
	if err = decodeJSON(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	return docs, nil
}

func (h *httpDocumentStore) Delete(ctx context.Context, collection, id, ownerID string) error {
	req, err := h.ownerRequest(ctx, ownerID)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"collection": collection, "id": id}).
		SetQueryParam(ownerQueryName, ownerID).
		Delete(documentPath)
	if err != nil {
		return fmt.Errorf("%w: delete document: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func (h *httpDocumentStore) DeleteByOwner(ctx context.Context, collection, ownerID string) error {
	req, err := h.ownerRequest(ctx, ownerID)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("collection", collection).
		SetQueryParam(ownerQueryName, ownerID).
		Delete(documentsPath)
	if err != nil {
		return fmt.Errorf("%w: delete documents: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// ownerRequest starts a request authenticated as ownerID.
func (h *httpDocumentStore) ownerRequest(ctx context.Context, ownerID string) (*resty.Request, error) {
	token, err := h.token(ownerID)
	if err != nil {
		return nil, err
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// token returns a cached token for ownerID, minting a new one when the
// cached one is about to expire.
func (h *httpDocumentStore) token(ownerID string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.tokens[ownerID]; ok && time.Until(t.expiresAt) > tokenRefreshMargin {
		return t.value, nil
	}

	value, err := utils.GenerateOwnerToken(h.issuer, ownerID, h.tokenDuration, h.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: owner token: %w", ErrUnauthorized, err)
	}

	h.tokens[ownerID] = ownerToken{value: value, expiresAt: time.Now().Add(h.tokenDuration)}
	return value, nil
}

// decodeJSON keeps numbers as json.Number so integer fields such as
// millisecond timestamps survive exactly.
func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
