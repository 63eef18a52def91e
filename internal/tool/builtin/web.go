package builtin

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

const webTimeout = 30 * time.Second

// maxWebSize caps fetched response bodies (1 MB).
const maxWebSize = 1 * 1024 * 1024

func webTool() tool.Tool {
	client := &http.Client{Timeout: webTimeout}

	return tool.Spec{
		ToolName:        "web",
		ToolDescription: "Fetch a public http or https URL and return the response body.",
		Parameters: []tool.Param{
			{Name: "url", Type: "string", Description: "URL to fetch", Required: true},
		},
		Handler: func(ctx context.Context, args map[string]any, _ tool.ExecutionEnv) (tool.Result, error) {
			rawURL := stringArg(args, "url")

			if err := checkURL(rawURL); err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
			if err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}
			req.Header.Set("User-Agent", "eagle/1.0")

			resp, err := client.Do(req)
			if err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(io.LimitReader(resp.Body, maxWebSize))
			if err != nil {
				return tool.Result{Content: err.Error(), IsError: true}, nil
			}

			if resp.StatusCode >= 400 {
				return tool.Result{
					Content: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body)),
					IsError: true,
				}, nil
			}
			return tool.Result{Content: string(body)}, nil
		},
	}
}

// checkURL rejects non-HTTP schemes and addresses that resolve to
// loopback or private networks.
func checkURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q, only http and https are allowed", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("URL has no host")
	}
	if host == "localhost" {
		return fmt.Errorf("refusing to fetch local address %q", host)
	}
	if ip := net.ParseIP(host); ip != nil && isBlockedIP(ip) {
		return fmt.Errorf("refusing to fetch local address %q", host)
	}
	return nil
}

func isBlockedIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}
