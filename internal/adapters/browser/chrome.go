// Package browser drives headless Chrome over the DevTools protocol to lay
// document pages out, capture them as images, and print them to PDF.
package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/sync/singleflight"

	"github.com/sahilbrid/nyaay-saathi/internal/platform/config"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/httpclient"
	"github.com/sahilbrid/nyaay-saathi/internal/ports"
)

const checkerName = "browser"

// ErrNoDebuggerURL is returned when a remote endpoint does not advertise a
// WebSocket debugger URL.
var ErrNoDebuggerURL = errors.New("remote browser did not report a debugger url")

type versionInfo struct {
	Browser              string `json:"Browser"`
	WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
}

// Chrome implements ports.Rasterizer and ports.Printer. The browser is
// started or connected on first use and shared by all callers.
type Chrome struct {
	cfg    config.BrowserConfig
	client *httpclient.Client
	logger *slog.Logger

	connecting singleflight.Group

	mu       sync.RWMutex
	browser  *rod.Browser
	launched *launcher.Launcher
}

var (
	_ ports.Rasterizer    = (*Chrome)(nil)
	_ ports.Printer       = (*Chrome)(nil)
	_ ports.HealthChecker = (*Chrome)(nil)
)

// New returns an unconnected Chrome. client is used to discover the debugger
// URL of a remote browser and may be nil when cfg.RemoteURL is empty.
func New(cfg config.BrowserConfig, client *httpclient.Client, logger *slog.Logger) *Chrome {
	return &Chrome{cfg: cfg, client: client, logger: logger}
}

// Name implements ports.HealthChecker.
func (c *Chrome) Name() string {
	return checkerName
}

// HealthCheck pings a connected browser. A local browser that has not been
// started yet is healthy; a remote one is judged by its discovery client.
func (c *Chrome) HealthCheck(ctx context.Context) error {
	b := c.current()
	if b == nil {
		if c.cfg.RemoteURL != "" && c.client != nil {
			return c.client.HealthCheck(ctx)
		}
		return nil
	}
	if _, err := b.Context(ctx).Version(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}

// Rasterize lays page out at widthPx CSS pixels and returns a full-height
// capture at scale device pixels per CSS pixel.
func (c *Chrome) Rasterize(ctx context.Context, page string, widthPx int, scale float64) (image.Image, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p, err := c.openPage(ctx, page, widthPx, scale)
	if err != nil {
		return nil, err
	}
	defer c.closePage(ctx, p)

	shot, err := p.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capturing page: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decoding capture: %w", err)
	}
	return img, nil
}

// PrintPDF prints page with the browser's own A4 page breaking.
func (c *Chrome) PrintPDF(ctx context.Context, page string) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p, err := c.openPage(ctx, page, 0, 1)
	if err != nil {
		return nil, err
	}
	defer c.closePage(ctx, p)

	stream, err := p.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("printing page: %w", err)
	}

	out, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading pdf stream: %w", err)
	}
	return out, nil
}

// Close shuts the browser down. A remote browser is only disconnected.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.browser != nil {
		err = c.browser.Close()
		c.browser = nil
	}
	if c.launched != nil {
		c.launched.Cleanup()
		c.launched = nil
	}
	return err
}

func (c *Chrome) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

// openPage creates a blank tab, applies the viewport when widthPx is set,
// and loads the HTML into it.
func (c *Chrome) openPage(ctx context.Context, html string, widthPx int, scale float64) (*rod.Page, error) {
	b, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	p, err := b.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if widthPx > 0 {
		if err := p.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             widthPx,
			Height:            widthPx,
			DeviceScaleFactor: scale,
			Mobile:            false,
		}); err != nil {
			c.closePage(ctx, p)
			return nil, fmt.Errorf("setting viewport: %w", err)
		}
	}

	if err := p.SetDocumentContent(html); err != nil {
		c.closePage(ctx, p)
		return nil, fmt.Errorf("loading document: %w", err)
	}
	if err := p.WaitLoad(); err != nil {
		c.closePage(ctx, p)
		return nil, fmt.Errorf("waiting for load: %w", err)
	}
	return p, nil
}

func (c *Chrome) closePage(ctx context.Context, p *rod.Page) {
	if err := p.Close(); err != nil {
		c.logger.DebugContext(ctx, "closing page failed", slog.Any("error", err))
	}
}

func (c *Chrome) current() *rod.Browser {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.browser
}

// connect returns the shared browser, starting it once for concurrent
// callers.
func (c *Chrome) connect(ctx context.Context) (*rod.Browser, error) {
	if b := c.current(); b != nil {
		return b, nil
	}

	// The shared launch runs under the configured timeout, not the context of
	// the caller that started it.
	ch := c.connecting.DoChan("connect", func() (any, error) {
		if b := c.current(); b != nil {
			return b, nil
		}

		launchCtx, cancel := c.withTimeout(context.WithoutCancel(ctx))
		defer cancel()

		controlURL, l, err := c.controlURL(launchCtx)
		if err != nil {
			return nil, err
		}

		b := rod.New().ControlURL(controlURL)
		if err := b.Connect(); err != nil {
			if l != nil {
				l.Cleanup()
			}
			return nil, fmt.Errorf("connecting to browser: %w", err)
		}

		c.mu.Lock()
		c.browser, c.launched = b, l
		c.mu.Unlock()

		c.logger.InfoContext(ctx, "browser connected",
			slog.Bool("remote", l == nil),
		)
		return b, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*rod.Browser), nil
	}
}

// controlURL resolves the DevTools WebSocket URL. A ws:// remote URL is used
// as is; an http(s):// one is asked for its /json/version document. Without
// a remote URL a local browser is launched and its launcher returned.
func (c *Chrome) controlURL(ctx context.Context) (string, *launcher.Launcher, error) {
	remote := strings.TrimRight(c.cfg.RemoteURL, "/")
	switch {
	case strings.HasPrefix(remote, "ws://"), strings.HasPrefix(remote, "wss://"):
		return remote, nil, nil
	case remote != "":
		u, err := c.discover(ctx, remote)
		return u, nil, err
	}

	l := launcher.New().Headless(c.cfg.Headless)
	if c.cfg.Bin != "" {
		l = l.Bin(c.cfg.Bin)
	}
	u, err := l.Launch()
	if err != nil {
		return "", nil, fmt.Errorf("launching browser: %w", err)
	}
	return u, l, nil
}

func (c *Chrome) discover(ctx context.Context, remote string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("discovering %s: no http client configured", remote)
	}

	var info versionInfo
	if err := c.client.GetJSON(ctx, remote+"/json/version", &info); err != nil {
		return "", fmt.Errorf("discovering browser: %w", err)
	}
	if info.WebSocketDebuggerURL == "" {
		return "", ErrNoDebuggerURL
	}

	c.logger.DebugContext(ctx, "discovered remote browser",
		slog.String("browser", info.Browser),
	)
	return info.WebSocketDebuggerURL, nil
}
