package schedule

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

const (
	// DefaultBaseURL is the schedule endpoint of the suburban train site
	DefaultBaseURL = "http://express-prigorod.ru/schedule"
	// DefaultEncoding is the WHATWG label of the codec the site expects
	DefaultEncoding = "windows-1251"
	// DefaultTimeout bounds a single schedule request
	DefaultTimeout = 10 * time.Second
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL  string
	Encoding string
	Timeout  time.Duration
	Parser   Parser
	Logger   *log.Logger
}

// Client fetches and parses schedules from the suburban train site
type Client struct {
	httpClient *http.Client
	baseURL    string
	codec      encoding.Encoding
	parser     Parser
	logger     *log.Logger
}

// NewClient creates a new schedule client
func NewClient(opts Options) (*Client, error) {
	codec := encoding.Encoding(charmap.Windows1251)
	if opts.Encoding != "" {
		var err error
		codec, err = LookupEncoding(opts.Encoding)
		if err != nil {
			return nil, err
		}
	}

	c := &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		codec:      codec,
		parser:     opts.Parser,
		logger:     opts.Logger,
	}

	if c.httpClient.Timeout <= 0 {
		c.httpClient.Timeout = DefaultTimeout
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.parser == nil {
		c.parser = PageParser{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}

	return c, nil
}

// LookupEncoding resolves a WHATWG encoding label such as "windows-1251" or "cp1251"
func LookupEncoding(label string) (encoding.Encoding, error) {
	codec, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return codec, nil
}

// FetchTrips downloads the schedule between two stations and parses it into trips
func (c *Client) FetchTrips(ctx context.Context, dispatch, arrival string) ([]Trip, error) {
	reqURL, err := c.scheduleURL(dispatch, arrival)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", "prigorodctl/1.0")

	c.logger.Printf("GET %s", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	c.logger.Printf("status %d", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetch, resp.StatusCode)
	}

	page, err := io.ReadAll(c.codec.NewDecoder().Reader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: could not read response body: %v", ErrFetch, err)
	}

	trips, err := c.parser.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}

	c.logger.Printf("parsed %d trips", len(trips))
	return trips, nil
}

// scheduleURL encodes both station names with the site codec before percent-escaping them
func (c *Client) scheduleURL(dispatch, arrival string) (string, error) {
	enc := c.codec.NewEncoder()

	encDispatch, err := enc.String(dispatch)
	if err != nil {
		return "", fmt.Errorf("%w: cannot encode station %q: %v", ErrFetch, dispatch, err)
	}
	encArrival, err := enc.String(arrival)
	if err != nil {
		return "", fmt.Errorf("%w: cannot encode station %q: %v", ErrFetch, arrival, err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL: %v", ErrFetch, err)
	}

	q := u.Query()
	q.Set("dispatch", encDispatch)
	q.Set("arrival", encArrival)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
