package syncsdk

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"
	"github.com/jonboulle/clockwork"
	"github.com/studiosync/syncserver/internal/checksum"
	"github.com/studiosync/syncserver/internal/server/auth"
	"github.com/studiosync/syncserver/internal/server/export"
	syncapi "github.com/studiosync/syncserver/internal/server/handlers/sync"
	"github.com/studiosync/syncserver/internal/version"
)

const (
	pathHealth = "/api/health"
	pathSync   = "/api/sync"
	pathExport = "/api/sync/export"
)

type Config struct {
	BaseURL   string
	ProjectID string
	Secret    string
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoServerURL
	}
	if c.ProjectID == "" {
		return ErrNoProjectID
	}
	if c.Secret == "" {
		return ErrNoSecret
	}
	return nil
}

// Client talks to a sync server on behalf of one project
type Client struct {
	client    *req.Client
	projectID string
	signer    *auth.Verifier
	clock     clockwork.Clock
}

func New(config *Config) (*Client, error) {
	return NewWithClock(config, clockwork.NewRealClock())
}

func NewWithClock(config *Config, clock clockwork.Clock) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client := req.C().
		SetBaseURL(config.BaseURL).
		SetUserAgent(version.UserAgent()).
		SetTimeout(2 * time.Minute).
		SetCommonRetryCount(2).
		SetCommonRetryFixedInterval(500 * time.Millisecond).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal).
		SetCommonErrorResult(&APIError{})

	return &Client{
		client:    client,
		projectID: config.ProjectID,
		signer:    auth.NewVerifierWithClock(&auth.Config{Secret: config.Secret}, clock),
		clock:     clock,
	}, nil
}

// File is a local file to push. The checksum is computed by Push.
type File struct {
	Path    string
	Content string
}

// Push sends files as one sync batch
func (c *Client) Push(ctx context.Context, files []File) (*syncapi.SyncResult, error) {
	body := syncapi.SyncRequest{Files: make([]syncapi.SyncFile, 0, len(files))}
	for _, f := range files {
		body.Files = append(body.Files, syncapi.SyncFile{
			Path:     f.Path,
			Content:  f.Content,
			Checksum: checksum.Checksum(f.Content),
		})
	}

	var result syncapi.SyncResult
	res, err := c.signedRequest(ctx).
		SetBody(&body).
		SetSuccessResult(&result).
		Post(pathSync)

	if err := handleAPIError(res, err, "sync push"); err != nil {
		return nil, err
	}

	return &result, nil
}

// Export pulls every exportable file of the project
func (c *Client) Export(ctx context.Context) ([]export.ExportedFile, error) {
	var resp struct {
		Files []export.ExportedFile `json:"files"`
	}

	res, err := c.signedRequest(ctx).
		SetSuccessResult(&resp).
		Get(pathExport)

	if err := handleAPIError(res, err, "sync export"); err != nil {
		return nil, err
	}

	return resp.Files, nil
}

func (c *Client) Health(ctx context.Context) error {
	res, err := c.client.R().SetContext(ctx).Get(pathHealth)
	return handleAPIError(res, err, "health")
}

func (c *Client) signedRequest(ctx context.Context) *req.Request {
	ts := c.clock.Now().UnixMilli()
	return c.client.R().
		SetContext(ctx).
		SetHeader(auth.HeaderProject, c.projectID).
		SetHeader(auth.HeaderTimestamp, strconv.FormatInt(ts, 10)).
		SetHeader(auth.HeaderSignature, c.signer.Sign(c.projectID, ts))
}
