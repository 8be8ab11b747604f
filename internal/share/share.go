// Package share renders the profile share card: a QR code for the
// application URL and a copy-to-clipboard action.
package share

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/atotto/clipboard"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/sunyue-dev/time-exchange/internal/logging"
)

const qrSize = 400

// Service turns a URL string into a displayable QR-code image and copies
// share links to the system clipboard. QR rendering first asks the remote
// image service; if the request fails the code is encoded locally, so the
// share card works offline too.
type Service struct {
	endpoint string
	httpc    *http.Client
	log      logging.Logger
}

func NewService(endpoint string, log logging.Logger) *Service {
	return &Service{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// QRCode returns PNG image bytes encoding link.
func (s *Service) QRCode(ctx context.Context, link string) ([]byte, error) {
	if png, err := s.fetchRemote(ctx, link); err == nil {
		return png, nil
	} else {
		s.log.Warn(ctx, "remote QR service unavailable, encoding locally", "error", err)
	}

	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

func (s *Service) fetchRemote(ctx context.Context, link string) ([]byte, error) {
	u := fmt.Sprintf("%s?size=%dx%d&data=%s", s.endpoint, qrSize, qrSize, url.QueryEscape(link))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// CopyLink writes link to the system clipboard. The error signals failure to
// the caller so the screen can show its local alert.
func (s *Service) CopyLink(link string) error {
	if err := clipboard.WriteAll(link); err != nil {
		return fmt.Errorf("failed to copy link: %w", err)
	}
	return nil
}
