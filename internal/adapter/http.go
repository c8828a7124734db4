package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/press-pay/internal/config"
	"github.com/MKhiriev/press-pay/internal/logger"
	"github.com/MKhiriev/press-pay/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty-backed [ServerAdapter].
// It normalises cfg.ServerURL (a bare host:port gets an http scheme) and
// applies cfg.RequestTimeout to every call. A token in cfg is stored as if
// SetToken had been called.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) ServiceInfo(ctx context.Context) (string, error) {
	var info models.ServiceInfoResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return "", fmt.Errorf("service info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return info.Service, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/register", request)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", request)
}

// authenticate posts body to path and stores the returned token.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	h.logger.Debug().Str("path", path).Str("role", string(auth.Role)).Msg("session token stored")
	return auth, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, error) {
	var me models.IdentityResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	resp, err := req.SetResult(&me).Get("/auth/me")
	if err != nil {
		return models.Identity{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return me.User, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, request models.CreateEntryRequest) (models.ClothesEntry, error) {
	var created models.EntryResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ClothesEntry{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/clothes")
	if err != nil {
		return models.ClothesEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClothesEntry{}, err
	}

	return created.Entry, nil
}

func (h *httpServerAdapter) ListEntries(ctx context.Context) ([]models.ClothesEntry, error) {
	var list models.EntriesResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.SetResult(&list).Get("/clothes")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Entries, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, id int64, request models.UpdateEntryRequest) (models.ClothesEntry, error) {
	var updated models.EntryResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ClothesEntry{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(request).
		SetResult(&updated).
		Put("/clothes/{id}")
	if err != nil {
		return models.ClothesEntry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClothesEntry{}, err
	}

	return updated.Entry, nil
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/clothes/{id}")
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a request carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrEmptyToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
