package ncleg

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"firewatch-backend/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/ncleg")

const (
	DefaultBaseURL   = "https://www.ncleg.gov"
	DefaultUserAgent = "firewatch-dashboard/1.0 (+https://www.local673.org)"
	DefaultTimeout   = time.Second * 30
)

var instrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput must be called before NewClient to capture
// raw request/response dumps for debugging scrapes.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	instrumentOutput = output
}

type ClientOptions struct {
	// defaults to DefaultBaseURL
	BaseURL string
	// "H" or "S", defaults to "H"
	Chamber string
	// legislative session the bill lookup pages live under, e.g. "2025"
	Session string
	// defaults to DefaultUserAgent
	UserAgent string
	// defaults to DefaultTimeout
	Timeout time.Duration
}

// Client fetches and parses pages from the general assembly site. It
// performs no caching and no retries, both are the caller's call.
type Client struct {
	http    *resty.Client
	chamber string
	session string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Chamber == "" {
		opts.Chamber = "H"
	}
	if opts.Session == "" {
		return nil, fmt.Errorf("a legislative session is required")
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	baseUrl, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, "scrapers/ncleg/http", instrumentOutput)

	return &Client{
		http:    client,
		chamber: opts.Chamber,
		session: opts.Session,
	}, nil
}

func (c *Client) Chamber() string {
	return c.chamber
}

func (c *Client) Session() string {
	return c.session
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, &FetchError{URL: path, Err: err}
	}
	if !res.IsSuccess() {
		return nil, &FetchError{URL: path, Status: res.StatusCode()}
	}
	return res.Body(), nil
}

// MemberList fetches and parses the chamber's member list page.
func (c *Client) MemberList(ctx context.Context) ([]Member, error) {
	ctx, span := tracer.Start(ctx, "MemberList")
	defer span.End()

	body, err := c.get(ctx, fmt.Sprintf("/Members/MemberList/%s", c.chamber))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch member list")
		return nil, err
	}
	members, err := ParseMemberList(bytes.NewReader(body), c.chamber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse member list")
		return nil, err
	}
	span.SetAttributes(attribute.Int("members", len(members)))
	return members, nil
}

// ContactInfo fetches and parses the chamber's contact info page.
func (c *Client) ContactInfo(ctx context.Context) ([]ContactRow, error) {
	ctx, span := tracer.Start(ctx, "ContactInfo")
	defer span.End()

	body, err := c.get(ctx, fmt.Sprintf("/Members/ContactInfo/%s", c.chamber))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch contact info")
		return nil, err
	}
	rows, err := ParseContactInfo(bytes.NewReader(body), c.chamber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse contact info")
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

// MemberVotes fetches and parses one member's vote history page.
func (c *Client) MemberVotes(ctx context.Context, memberID string) ([]VoteRow, error) {
	ctx, span := tracer.Start(ctx, "MemberVotes")
	defer span.End()
	span.SetAttributes(attribute.String("member_id", memberID))

	body, err := c.get(ctx, fmt.Sprintf("/Members/Votes/%s/%s", c.chamber, memberID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch vote history")
		return nil, err
	}
	votes, err := ParseVoteHistory(bytes.NewReader(body), memberID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse vote history")
		return nil, err
	}
	span.SetAttributes(attribute.Int("votes", len(votes)))
	return votes, nil
}

// Bill fetches and parses one bill lookup page for the configured
// session.
func (c *Client) Bill(ctx context.Context, billID string) (Bill, error) {
	ctx, span := tracer.Start(ctx, "Bill")
	defer span.End()
	span.SetAttributes(attribute.String("bill_id", billID))

	body, err := c.get(ctx, fmt.Sprintf("/BillLookup/%s/%s", c.session, billID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch bill page")
		return Bill{}, err
	}
	bill, err := ParseBill(bytes.NewReader(body), billID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse bill page")
		return Bill{}, err
	}
	return bill, nil
}
