package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// pictureField is the multipart form field the backend expects.
const pictureField = "profilePicture"

// UploadProfilePicture sends the image as a multipart form. The caller has
// already enforced the client-side type and size limits.
func (c *Client) UploadProfilePicture(ctx context.Context, upload ports.PictureUpload) (*ports.PictureResult, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, pictureField, upload.Filename))
	header.Set("Content-Type", upload.ContentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, fmt.Errorf("write image data: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/profile-picture/upload", nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var resp struct {
		Message        string       `json:"message"`
		ProfilePicture string       `json:"profilePicture"`
		User           *domain.User `json:"user"`
	}
	if err := c.send(req, &resp); err != nil {
		return nil, err
	}
	return &ports.PictureResult{
		Message:        resp.Message,
		ProfilePicture: resp.ProfilePicture,
		User:           resp.User,
	}, nil
}

// DeleteProfilePicture removes the caller's profile picture.
func (c *Client) DeleteProfilePicture(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/profile-picture/delete", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
