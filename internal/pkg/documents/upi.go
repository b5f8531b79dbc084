package documents

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// UPIRequest describes a UPI collect link
type UPIRequest struct {
	PayeeVPA  string
	PayeeName string
	Amount    float64
	Reference string
	Note      string
}

// URI renders the upi://pay deep link understood by Indian payment apps
func (r UPIRequest) URI() (string, error) {
	if r.PayeeVPA == "" {
		return "", errors.New("UPI payee VPA is not configured")
	}
	if r.Amount <= 0 {
		return "", errors.New("nothing due to collect")
	}

	q := url.Values{}
	q.Set("pa", r.PayeeVPA)
	if r.PayeeName != "" {
		q.Set("pn", r.PayeeName)
	}
	q.Set("am", fmt.Sprintf("%.2f", r.Amount))
	q.Set("cu", "INR")
	if r.Reference != "" {
		q.Set("tr", r.Reference)
	}
	if r.Note != "" {
		q.Set("tn", r.Note)
	}
	return "upi://pay?" + q.Encode(), nil
}

// UPIQRCode encodes the collect link as a PNG of the given pixel size
func UPIQRCode(r UPIRequest, size int) ([]byte, error) {
	uri, err := r.URI()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(uri, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode UPI QR: %w", err)
	}
	return png, nil
}
