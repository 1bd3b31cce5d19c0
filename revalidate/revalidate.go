// Package revalidate tells the frontend which page paths went stale after a
// mutation. The frontend owns the page cache; this side only notifies.
package revalidate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/logx"
)

type Notifier interface {
	Notify(paths ...string)
}

// HTTPNotifier posts stale paths to the frontend revalidation webhook.
// Failures are logged and dropped; a stale page is not worth failing the
// originating mutation.
type HTTPNotifier struct {
	URL    string
	Secret string
	Client *http.Client
}

type payload struct {
	Secret string   `json:"secret"`
	Paths  []string `json:"paths"`
}

func (n *HTTPNotifier) Notify(paths ...string) {
	if len(paths) == 0 {
		return
	}
	body, err := json.Marshal(payload{Secret: n.Secret, Paths: paths})
	if err != nil {
		logx.Errorf("revalidate: encode payload: %v", err)
		return
	}
	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		logx.Warnf("revalidate: webhook unreachable: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		logx.Warnf("revalidate: webhook returned %d for %v", resp.StatusCode, paths)
	}
}

// Noop is used when no webhook is configured and by unit tests.
type Noop struct{}

func (Noop) Notify(paths ...string) {}

func NewFromConfig() Notifier {
	if config.RevalidateURL == "" {
		return Noop{}
	}
	return &HTTPNotifier{
		URL:    config.RevalidateURL,
		Secret: config.RevalidateSecret,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}
