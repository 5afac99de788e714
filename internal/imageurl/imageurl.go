// Package imageurl resolves profile-picture references. The backend stores
// either an absolute URL (external hosting) or a server-relative path; an
// absent value falls back to a local placeholder.
package imageurl

import "strings"

// Placeholder is shown whenever an account has no profile picture.
const Placeholder = "assets/profile-placeholder.png"

// Resolve turns a stored profile-picture reference into a displayable URL.
// origin is the API server origin without the /api path segment.
func Resolve(picture, origin string) string {
	if picture == "" {
		return Placeholder
	}
	if strings.HasPrefix(picture, "http://") || strings.HasPrefix(picture, "https://") {
		return picture
	}
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(picture, "/")
}
