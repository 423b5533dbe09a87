package nxapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	URL                string
	Username           string
	Password           string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type Client struct {
	c        *http.Client
	url      string
	redacted string
	username string
	password string
	l        *logrus.Logger
	recorder Recorder
}

type Option func(*Client)

func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

func New(cfg Config, l *logrus.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse NX-API url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported NX-API url scheme %q", u.Scheme)
	}

	if l == nil {
		l = logrus.New()
	}

	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	c := &Client{
		c:        &http.Client{Transport: tr, Timeout: cfg.Timeout},
		url:      cfg.URL,
		redacted: u.Redacted(),
		username: cfg.Username,
		password: cfg.Password,
		l:        l,
	}

	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// Interfaces runs "show interface brief". The returned slice is never nil, even on error.
func (c *Client) Interfaces(ctx context.Context) ([]Interface, error) {
	payload, err := c.post(ctx, CommandShowInterfaceBrief)
	if err != nil {
		return []Interface{}, err
	}

	c.l.Debugf("NX-API full response: %v", payload)

	interfaces := interfacesFromRows(lookup(payload, interfacesPath...))
	c.l.Debugf("parsed interfaces: %v", interfaces)

	return interfaces, nil
}

// DeviceInfo runs "show version". The returned map is never nil, even on error.
func (c *Client) DeviceInfo(ctx context.Context) (DeviceInfo, error) {
	payload, err := c.post(ctx, CommandShowVersion)
	if err != nil {
		return DeviceInfo{}, err
	}

	c.l.Debugf("NX-API device info response: %v", payload)

	return deviceInfoFromBody(lookup(payload, bodyPath...)), nil
}

func (c *Client) NonVlanInterfaces(ctx context.Context) ([]Interface, error) {
	interfaces, err := c.Interfaces(ctx)
	if err != nil {
		return []Interface{}, err
	}

	return FilterNonVlan(interfaces), nil
}

func (c *Client) post(ctx context.Context, command string) (any, error) {
	ex := Exchange{
		Command: command,
		URL:     c.redacted,
		Started: time.Now(),
	}

	payload, err := c.do(ctx, command, &ex)

	ex.Duration = time.Since(ex.Started)
	ex.Err = err
	c.record(ex)

	if err != nil {
		c.l.WithFields(logrus.Fields{
			"command": command,
			"url":     c.redacted,
		}).WithError(err).Warn("NX-API request failed")
		return nil, fmt.Errorf("%s: %w", command, err)
	}

	return payload, nil
}

func (c *Client) do(ctx context.Context, command string, ex *Exchange) (any, error) {
	b, err := json.Marshal(NewCommandEnvelope(command))
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ex.StatusCode = resp.StatusCode
	c.l.Debugf("%d POST %s (%s)", resp.StatusCode, c.redacted, command)
	if err = errorFromStatusCode(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err = dec.Decode(&payload); err != nil {
		return nil, errors.Join(ErrorMalformedResponse, fmt.Errorf("decode body: %w", err))
	}

	return payload, nil
}

func (c *Client) record(ex Exchange) {
	if c.recorder == nil {
		return
	}

	if err := c.recorder.Record(ex); err != nil {
		c.l.WithError(err).Warn("recording NX-API exchange")
	}
}
