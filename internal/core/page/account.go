package page

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/core/domain"
	"github.com/craftlink/craftlink/internal/core/guard"
	"github.com/craftlink/craftlink/internal/core/ports"
)

// maxPictureSize is the client-side upload limit.
const maxPictureSize = 5 * 1024 * 1024 // 5MB

// pictureTypes maps the accepted image extensions to their MIME types.
var pictureTypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// AccountAction selects what the account page should do.
type AccountAction string

const (
	AccountView          AccountAction = "view"
	AccountUpdate        AccountAction = "update"
	AccountUploadPicture AccountAction = "upload-picture"
	AccountDeletePicture AccountAction = "delete-picture"
)

// AccountForm is the account page's input. The craft fields apply to the
// update action; PicturePath to upload-picture.
type AccountForm struct {
	Action      AccountAction
	CraftType   string
	Location    string
	Experience  int
	Bio         string
	Skills      string
	PicturePath string
}

// Account is the profile-details page: view and edit the caller's own
// profile, and manage the profile picture. Picture mutations are pushed into
// the session store so every open page observes them without a reload.
type Account struct {
	Deps
}

func NewAccount(d Deps) *Account {
	return &Account{Deps: d}
}

func (p *Account) Run(ctx context.Context, form AccountForm) error {
	_, ok, err := p.mount(ctx, guard.Authenticated())
	if err != nil || !ok {
		return err
	}
	if form.Action == "" {
		form.Action = AccountView
	}

	var user *domain.User
	var artisan *domain.Artisan
	load := func(ctx context.Context) error {
		var err error
		user, err = p.Backend.Profile(ctx)
		if err != nil {
			return err
		}
		if user.Role == domain.RoleArtisan {
			artisan, err = p.Backend.OwnArtisanProfile(ctx)
		}
		return err
	}
	if ok, err := p.fetch(ctx, "profile", load); err != nil || !ok {
		return err
	}

	switch form.Action {
	case AccountUpdate:
		return p.update(ctx, user, form)
	case AccountUploadPicture:
		return p.uploadPicture(ctx, form.PicturePath)
	case AccountDeletePicture:
		return p.deletePicture(ctx)
	default:
		p.render(user, artisan)
		return nil
	}
}

func (p *Account) update(ctx context.Context, user *domain.User, form AccountForm) error {
	if user.Role != domain.RoleArtisan {
		p.banner("Only artisans have a craft profile to edit.")
		return nil
	}

	update := domain.ArtisanProfileUpdate{
		CraftType:  strings.TrimSpace(form.CraftType),
		Location:   strings.TrimSpace(form.Location),
		Experience: form.Experience,
		Bio:        form.Bio,
		Skills:     splitSkills(form.Skills),
	}

	p.println("Saving profile...")
	artisan, err := p.Backend.UpdateArtisanProfile(ctx, update)
	if err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to update profile"))
		return nil
	}
	p.println("Profile updated.")
	p.render(user, artisan)
	return nil
}

// uploadPicture enforces the client-side file checks before any network
// traffic, then persists the new picture reference into the session.
func (p *Account) uploadPicture(ctx context.Context, path string) error {
	if path == "" {
		p.banner("No image file given.")
		return nil
	}
	contentType, ok := pictureTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		p.banner("Only image files (JPEG, JPG, PNG, GIF) are allowed")
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		p.banner(fmt.Sprintf("Cannot read %s: %v", path, err))
		return nil
	}
	if info.Size() > maxPictureSize {
		p.banner("Image size must be less than 5MB")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		p.banner(fmt.Sprintf("Cannot read %s: %v", path, err))
		return nil
	}

	p.println("Uploading profile picture...")
	result, err := p.Backend.UploadProfilePicture(ctx, ports.PictureUpload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to upload profile picture"))
		return nil
	}

	picture := result.ProfilePicture
	if picture == "" && result.User != nil {
		picture = result.User.ProfilePicture
	}
	if err := p.Session.UpdateUser(domain.UserPatch{ProfilePicture: &picture}); err != nil {
		return err
	}
	p.println("Profile picture uploaded successfully!")
	p.printf("  Picture: %s\n", p.picture(picture))
	return nil
}

func (p *Account) deletePicture(ctx context.Context) error {
	if !p.Confirm.Confirm("Delete your profile picture?") {
		p.println("Cancelled.")
		return nil
	}

	p.println("Deleting profile picture...")
	if _, err := p.Backend.DeleteProfilePicture(ctx); err != nil {
		if api.IsUnauthorized(err) {
			return p.forceLogout(ctx)
		}
		p.banner(api.Message(err, "Failed to delete profile picture"))
		return nil
	}

	empty := ""
	if err := p.Session.UpdateUser(domain.UserPatch{ProfilePicture: &empty}); err != nil {
		return err
	}
	p.println("Profile picture deleted.")
	p.printf("  Picture: %s\n", p.picture(""))
	return nil
}

func (p *Account) render(user *domain.User, artisan *domain.Artisan) {
	p.printf("%s <%s>\n", user.Name, user.Email)
	p.printf("  Phone: %s | Role: %s\n", user.Phone, user.Role)
	p.printf("  Picture: %s\n", p.picture(user.ProfilePicture))
	if artisan != nil {
		p.printf("  Craft: %s in %s — %d years\n", artisan.CraftType, artisan.Location, artisan.Experience)
		if artisan.Bio != "" {
			p.printf("  Bio: %s\n", artisan.Bio)
		}
		if len(artisan.Skills) > 0 {
			p.printf("  Skills: %s\n", strings.Join(artisan.Skills, ", "))
		}
	}
}
