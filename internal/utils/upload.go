package utils

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
)

// DecodeDataURL strips the data-URL header and decodes the base64 payload.
// Payloads already sent as bare base64 are accepted too.
func DecodeDataURL(dataURL string) ([]byte, error) {
	payload := dataURL
	if strings.HasPrefix(dataURL, "data:") {
		idx := strings.Index(dataURL, ",")
		if idx < 0 {
			return nil, errors.New("malformed data URL")
		}
		payload = dataURL[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// UploadImage writes the image bytes under objectPath in the configured bucket
// and returns the public URL. Existing objects at the same path are replaced.
// The write is tied to c, so it stops when the request is aborted.
func UploadImage(c context.Context, ctx *appcontext.Context, objectPath string, data []byte) (string, error) {
	w := ctx.GCSClient.Bucket(ctx.GCSBucketName).Object(objectPath).NewWriter(c)

	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return "https://storage.googleapis.com/" + ctx.GCSBucketName + "/" + objectPath, nil
}
