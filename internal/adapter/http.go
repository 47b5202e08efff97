package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/cursion-setup/internal/config"
	"github.com/MKhiriev/cursion-setup/internal/logger"
	"github.com/MKhiriev/cursion-setup/internal/utils"
	"github.com/MKhiriev/cursion-setup/models"
)

const licensePath = "/v1/auth/account/license"

type httpLicenseAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPLicenseAdapter constructs an HTTP/REST implementation of
// [LicenseAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, request timeout and an X-Request-ID generator.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPLicenseAdapter(adapterCfg config.InstallerAdapter, ids utils.IDGenerator, log *logger.Logger) (LicenseAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, ids)

	return &httpLicenseAdapter{client: client, logger: log.WithComponent("license-adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// VerifyLicense implements [LicenseAdapter]. It POSTs {"license_key": key} to
// POST /v1/auth/account/license.
//
// The endpoint answers rejections with a JSON body and success=false, under
// either a 2xx or a 4xx status; both are reported as [ErrLicenseRejected]. A
// 4xx status without a decodable body is reported through mapHTTPError, as is
// every 5xx.
func (h *httpLicenseAdapter) VerifyLicense(ctx context.Context, key string) (models.License, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LicenseRequest{LicenseKey: key}).
		Post(licensePath)
	if err != nil {
		return models.License{}, fmt.Errorf("verify license request: %w", err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Dur("elapsed", resp.Time()).
		Msg("license endpoint answered")

	if resp.StatusCode() >= http.StatusInternalServerError {
		return models.License{}, mapHTTPError(resp)
	}

	body, decodeErr := decodeLicenseResponse(resp.Body())
	if decodeErr != nil {
		if err = mapHTTPError(resp); err != nil {
			return models.License{}, err
		}
		return models.License{}, fmt.Errorf("%w: decode license response: %w", ErrMalformedResponse, decodeErr)
	}

	if !body.Success {
		reason := body.Message
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		if statusErr := mapHTTPError(resp); statusErr != nil {
			return models.License{}, fmt.Errorf("%w: %w", ErrLicenseRejected, statusErr)
		}
		return models.License{}, fmt.Errorf("%w: %s", ErrLicenseRejected, reason)
	}

	if err = mapHTTPError(resp); err != nil {
		return models.License{}, err
	}

	data, err := stringifyData(body.Data)
	if err != nil {
		return models.License{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return models.License{Key: key, Data: data}, nil
}

// decodeLicenseResponse keeps numbers as [json.Number] so that large IDs are
// written back with their exact digits.
func decodeLicenseResponse(raw []byte) (models.LicenseResponse, error) {
	var body models.LicenseResponse

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return models.LicenseResponse{}, err
	}
	return body, nil
}

// stringifyData renders every license data value as the text written to an
// env file: strings verbatim, null as empty, anything else as compact JSON.
func stringifyData(data map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(data))
	for k, v := range data {
		switch value := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = value
		default:
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("license data %q", k), err)
			}
			out[k] = string(raw)
		}
	}
	return out, nil
}
