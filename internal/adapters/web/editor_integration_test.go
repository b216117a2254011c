//go:build integration

package web_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startChrome runs headless Chrome in a container that can reach hostPort
// on the test host, and returns a chromedp context attached to it.
func startChrome(t *testing.T, hostPort int) context.Context {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:           "chromedp/headless-shell:latest",
			ExposedPorts:    []string{"9222/tcp"},
			HostAccessPorts: []int{hostPort},
			WaitingFor: wait.ForAll(
				wait.ForLog("DevTools listening").WithStartupTimeout(60*time.Second),
				wait.ForHTTP("/json/version").WithPort("9222/tcp").WithStartupTimeout(60*time.Second),
			),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("starting chrome container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "9222")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	allocCtx, cancelAlloc := chromedp.NewRemoteAllocator(ctx, fmt.Sprintf("ws://%s:%s", host, port.Port()))
	t.Cleanup(cancelAlloc)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	t.Cleanup(cancelBrowser)

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, 60*time.Second)
	t.Cleanup(cancelTimeout)
	return timeoutCtx
}

func TestEditor_InsertEmbedInBrowser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	// Arrange
	srv := newTestServer(t, 60, 10)
	ln, err := net.Listen("tcp", "0.0.0.0:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = srv.app.Listener(ln) }()
	t.Cleanup(func() { _ = srv.app.Shutdown() })

	hostPort := ln.Addr().(*net.TCPAddr).Port
	ctx := startChrome(t, hostPort)
	base := fmt.Sprintf("http://%s:%d", testcontainers.HostInternal, hostPort)

	var (
		src      string
		hasSrc   bool
		toast    string
		existing string
	)

	// Act
	err = chromedp.Run(ctx,
		chromedp.Navigate(base+"/"),
		chromedp.WaitVisible("#embed-url", chromedp.ByQuery),
		chromedp.SendKeys("#embed-url", "https://youtu.be/dQw4w9WgXcQ", chromedp.ByQuery),
		chromedp.Click("#dialog button[type=submit]", chromedp.ByQuery),
		chromedp.WaitReady("#preview iframe", chromedp.ByQuery),
		chromedp.AttributeValue("#preview iframe", "src", &src, &hasSrc, chromedp.ByQuery),
		chromedp.Text(".toast-success", &toast, chromedp.ByQuery),
		chromedp.Text("#preview p", &existing, chromedp.ByQuery),
	)

	// Assert
	if err != nil {
		t.Fatalf("browser run: %v", err)
	}
	if !hasSrc || src != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("iframe src = %q", src)
	}
	if toast != "YouTube embed inserted successfully!" {
		t.Errorf("toast = %q", toast)
	}
	if existing != "Hello World!" {
		t.Errorf("existing content = %q, want Hello World!", existing)
	}
}

func TestEditor_UnsupportedURLShowsError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	srv := newTestServer(t, 60, 10)
	ln, err := net.Listen("tcp", "0.0.0.0:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = srv.app.Listener(ln) }()
	t.Cleanup(func() { _ = srv.app.Shutdown() })

	hostPort := ln.Addr().(*net.TCPAddr).Port
	ctx := startChrome(t, hostPort)
	base := fmt.Sprintf("http://%s:%d", testcontainers.HostInternal, hostPort)

	var toast string
	var embeds int
	err = chromedp.Run(ctx,
		chromedp.Navigate(base+"/"),
		chromedp.WaitVisible("#embed-url", chromedp.ByQuery),
		chromedp.SendKeys("#embed-url", "https://google.com", chromedp.ByQuery),
		chromedp.Click("#dialog button[type=submit]", chromedp.ByQuery),
		chromedp.WaitVisible(".toast-error", chromedp.ByQuery),
		chromedp.Text(".toast-error", &toast, chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll("#preview iframe, #preview blockquote").length`, &embeds),
	)
	if err != nil {
		t.Fatalf("browser run: %v", err)
	}
	if toast != "Could not detect platform. Please use a valid social media URL." {
		t.Errorf("toast = %q", toast)
	}
	if embeds != 0 {
		t.Errorf("embeds = %d, want 0", embeds)
	}
}
