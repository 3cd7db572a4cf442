// Package qr renders the QR artifact each artwork carries: a PNG of
// the artwork's public detail URL, persisted through the storage
// boundary.
package qr

import (
	"bytes"
	"fmt"

	"gallery-app/internal/infra/storage"

	qrcode "github.com/skip2/go-qrcode"
)

// Generate encodes detailURL as a 512px PNG and stores it, returning
// the artifact's public URL.
func Generate(st storage.Store, token, detailURL string) (string, error) {
	png, err := qrcode.Encode(detailURL, qrcode.Medium, 512)
	if err != nil {
		return "", err
	}
	return st.Store("qr", fmt.Sprintf("%s.png", token), bytes.NewReader(png))
}
