package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"splitwise-platform/internal/domain/models"
	"splitwise-platform/internal/infrastructure/http/handlers/dto"
	"splitwise-platform/internal/utils"
)

// Client talks to the registry REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) appURL(app string, parts ...string) string {
	u := c.baseURL + "/eureka/apps/" + url.PathEscape(models.NormalizeAppName(app))
	for _, p := range parts {
		u += "/" + url.PathEscape(p)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, target string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// expect drains the body and maps the status to an error.
func expect(resp *http.Response, op string, ok ...int) error {
	defer resp.Body.Close()
	for _, code := range ok {
		if resp.StatusCode == code {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, utils.ErrInstanceNotFound)
	}
	var e utils.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)
	return fmt.Errorf("%s: registry responded %d %s", op, resp.StatusCode, e.Error.Message)
}

func (c *Client) Register(ctx context.Context, inst *models.Instance) error {
	const op = "discovery.Client.Register"

	info := dto.InstanceInfo{
		InstanceID: inst.InstanceID,
		App:        models.NormalizeAppName(inst.App),
		HostName:   inst.HostName,
		IPAddr:     inst.IPAddr,
		Port:       inst.Port,
		Status:     string(inst.Status),
		Metadata:   inst.Metadata,
	}
	if inst.LeaseDuration > 0 {
		info.LeaseInfo = &dto.LeaseInfo{DurationInSecs: int64(inst.LeaseDuration / time.Second)}
	}

	resp, err := c.do(ctx, http.MethodPost, c.appURL(inst.App), dto.InstanceEnvelope{Instance: info})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expect(resp, op, http.StatusNoContent, http.StatusOK)
}

// Renew returns an error wrapping utils.ErrInstanceNotFound when the registry forgot the lease.
func (c *Client) Renew(ctx context.Context, app, id string) error {
	const op = "discovery.Client.Renew"

	resp, err := c.do(ctx, http.MethodPut, c.appURL(app, id), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expect(resp, op, http.StatusOK)
}

func (c *Client) Cancel(ctx context.Context, app, id string) error {
	const op = "discovery.Client.Cancel"

	resp, err := c.do(ctx, http.MethodDelete, c.appURL(app, id), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expect(resp, op, http.StatusOK)
}

func (c *Client) Applications(ctx context.Context) ([]*models.Application, error) {
	const op = "discovery.Client.Applications"

	resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/eureka/apps", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, expect(resp, op)
	}
	defer resp.Body.Close()

	var env dto.ApplicationsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}
	apps := make([]*models.Application, 0, len(env.Applications.Applications))
	for _, a := range env.Applications.Applications {
		apps = append(apps, fromApplicationInfo(a))
	}
	return apps, nil
}

// Instances returns every instance of app; an unknown app yields an empty slice.
func (c *Client) Instances(ctx context.Context, app string) ([]*models.Instance, error) {
	const op = "discovery.Client.Instances"

	resp, err := c.do(ctx, http.MethodGet, c.appURL(app), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return []*models.Instance{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, expect(resp, op)
	}
	defer resp.Body.Close()

	var env dto.ApplicationEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}
	return fromApplicationInfo(env.Application).Instances, nil
}

func fromApplicationInfo(a dto.ApplicationInfo) *models.Application {
	res := &models.Application{Name: a.Name, Instances: make([]*models.Instance, 0, len(a.Instances))}
	for _, i := range a.Instances {
		if i.App == "" {
			i.App = a.Name
		}
		res.Instances = append(res.Instances, dto.FromInstanceInfo(i))
	}
	return res
}
